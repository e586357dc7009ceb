package model

// View is the top-level screen the user asked for
type View string

const (
	ViewPlayer View = "player"
	ViewAdmin  View = "admin"
	ViewLogin  View = "login"
)

// Screen is what actually gets rendered after guards are applied
type Screen string

const (
	ScreenLoading   Screen = "loading"
	ScreenLogin     Screen = "login"
	ScreenDashboard Screen = "dashboard"
	ScreenPlayer    Screen = "player"
)
