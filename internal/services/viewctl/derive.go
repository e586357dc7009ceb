package viewctl

import "github.com/mcoot/tourneyview/internal/model"

// State is a snapshot of the session
type State struct {
	IsAdminLoggedIn bool       `json:"isAdminLoggedIn"`
	CurrentView     model.View `json:"currentView"`
	Loading         bool       `json:"loading"`
}

// DeriveView returns the view implied by the login flag
func DeriveView(loggedIn bool) model.View {
	if loggedIn {
		return model.ViewAdmin
	}
	return model.ViewPlayer
}

// Screen decides what to render for a state. The admin view only
// shows the dashboard to a logged-in session; anything unrecognised
// falls through to the player view.
func Screen(s State) model.Screen {
	if s.Loading {
		return model.ScreenLoading
	}
	switch s.CurrentView {
	case model.ViewLogin:
		return model.ScreenLogin
	case model.ViewAdmin:
		if s.IsAdminLoggedIn {
			return model.ScreenDashboard
		}
		return model.ScreenLogin
	default:
		return model.ScreenPlayer
	}
}
