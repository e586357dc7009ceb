package handler

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/mcoot/tourneyview/internal/model"
	"github.com/mcoot/tourneyview/internal/services/viewctl"
	"github.com/mcoot/tourneyview/internal/web/middleware"
	"github.com/mcoot/tourneyview/internal/web/templates/layout"
	"github.com/mcoot/tourneyview/internal/web/templates/pages"
)

// ViewHandler renders whichever screen the session currently derives
type ViewHandler struct {
	controller *viewctl.Controller
}

// NewViewHandler creates a new ViewHandler
func NewViewHandler(controller *viewctl.Controller) *ViewHandler {
	return &ViewHandler{controller: controller}
}

// Home renders the current screen
func (h *ViewHandler) Home(w http.ResponseWriter, r *http.Request) {
	state := h.controller.State()
	tournament := h.controller.Tournament()
	pd := pageData(r, state, tournament)

	var component templ.Component
	switch viewctl.Screen(state) {
	case model.ScreenLoading:
		pd.Title = "Loading"
		component = pages.Loading(pd)
	case model.ScreenLogin:
		pd.Title = "Admin Login"
		component = pages.Login(pages.LoginData{PageData: pd})
	case model.ScreenDashboard:
		pd.Title = "Admin Dashboard"
		component = pages.Dashboard(pages.TournamentData{
			PageData:   pd,
			Tournament: tournament,
			Standings:  tournament.Standings(),
		})
	default:
		pd.Title = tournament.Name
		pd.LiveUpdates = true
		component = pages.PlayerView(pages.TournamentData{
			PageData:   pd,
			Tournament: tournament,
			Standings:  tournament.Standings(),
		})
	}

	render(w, r, http.StatusOK, component)
}

func pageData(r *http.Request, state viewctl.State, t model.Tournament) layout.PageData {
	return layout.PageData{
		Flash:            middleware.GetFlash(r.Context()),
		CurrentView:      state.CurrentView,
		IsAdminLoggedIn:  state.IsAdminLoggedIn,
		TournamentName:   t.Name,
		TournamentStatus: t.Status,
	}
}

func render(w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
