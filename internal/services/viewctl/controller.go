package viewctl

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mcoot/tourneyview/internal/model"
	"github.com/mcoot/tourneyview/internal/services/persist"
	"github.com/mcoot/tourneyview/internal/storage"
)

// CredentialChecker decides whether a login attempt matches the admin identity
type CredentialChecker interface {
	Check(user, pass string) bool
}

// Controller owns the session state and the tournament for this process.
// All transitions are serialised so that concurrent requests observe the
// same ordering a single event loop would.
type Controller struct {
	persist     *persist.Adapter
	credentials CredentialChecker
	logger      *slog.Logger

	mu         sync.Mutex
	state      State
	tournament model.Tournament
	observers  []func(model.Tournament)
}

// NewController creates a controller in the loading state.
// Call Init before serving it.
func NewController(adapter *persist.Adapter, credentials CredentialChecker, logger *slog.Logger) *Controller {
	return &Controller{
		persist:     adapter,
		credentials: credentials,
		logger:      logger.With(slog.String("component", "viewctl")),
		state: State{
			CurrentView: model.ViewPlayer,
			Loading:     true,
		},
		tournament: model.DefaultTournament(),
	}
}

// Init reads persisted state, derives the initial view and clears loading
func (c *Controller) Init(ctx context.Context) {
	loggedIn := persist.Read(ctx, c.persist, storage.KeyIsAdminLoggedIn, false)
	tournament := persist.Read(ctx, c.persist, storage.KeyTournamentData, model.DefaultTournament())

	c.mu.Lock()
	defer c.mu.Unlock()

	c.tournament = tournament.Clone()
	c.state.IsAdminLoggedIn = loggedIn
	c.state.CurrentView = DeriveView(loggedIn)
	c.state.Loading = false

	c.logger.Info("session initialised",
		slog.Bool("admin_logged_in", loggedIn),
		slog.String("view", string(c.state.CurrentView)),
		slog.String("tournament", tournament.Name))
}

// Login checks the admin pair. On success the login flag is persisted
// and the view moves to admin; on failure nothing changes.
func (c *Controller) Login(ctx context.Context, user, pass string) bool {
	if !c.credentials.Check(user, pass) {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.setLoggedIn(ctx, true)
	c.state.CurrentView = model.ViewAdmin
	c.logger.Info("admin logged in")
	return true
}

// Logout clears the login flag and shows the login screen
func (c *Controller) Logout(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setLoggedIn(ctx, false)
	c.state.CurrentView = model.ViewLogin
	c.logger.Info("admin logged out")
}

// Navigate records the requested view. No guard is applied here;
// Screen keeps the dashboard away from a logged-out session.
func (c *Controller) Navigate(view model.View) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.CurrentView = view
}

// SetTournament replaces the tournament and writes it through to storage.
// Access control belongs to the caller.
func (c *Controller) SetTournament(ctx context.Context, t model.Tournament) {
	c.mu.Lock()
	snapshot, observers := c.replaceTournament(ctx, t)
	c.mu.Unlock()

	notify(observers, snapshot)
}

// UpdateTournament applies fn to a copy of the current tournament and
// stores the result. fn runs under the controller lock with the session
// as it stands, so a login check inside fn cannot race a Logout.
func (c *Controller) UpdateTournament(ctx context.Context, fn func(State, model.Tournament) (model.Tournament, error)) (model.Tournament, error) {
	c.mu.Lock()
	next, err := fn(c.state, c.tournament.Clone())
	if err != nil {
		c.mu.Unlock()
		return model.Tournament{}, err
	}
	snapshot, observers := c.replaceTournament(ctx, next)
	c.mu.Unlock()

	notify(observers, snapshot)
	return snapshot.Clone(), nil
}

// OnTournamentChange registers fn to be called after every tournament write
func (c *Controller) OnTournamentChange(fn func(model.Tournament)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// State returns a snapshot of the session
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Screen returns what should currently be rendered
func (c *Controller) Screen() model.Screen {
	return Screen(c.State())
}

// IsAdminLoggedIn reports the login flag
func (c *Controller) IsAdminLoggedIn() bool {
	return c.State().IsAdminLoggedIn
}

// Tournament returns a copy of the current tournament
func (c *Controller) Tournament() model.Tournament {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tournament.Clone()
}

// setLoggedIn persists the flag and re-derives the view when it changes.
// Caller must hold c.mu.
func (c *Controller) setLoggedIn(ctx context.Context, loggedIn bool) {
	if err := persist.Write(ctx, c.persist, storage.KeyIsAdminLoggedIn, loggedIn); err != nil {
		c.logger.Warn("login flag not persisted", slog.String("error", err.Error()))
	}
	if c.state.IsAdminLoggedIn != loggedIn {
		c.state.IsAdminLoggedIn = loggedIn
		c.state.CurrentView = DeriveView(loggedIn)
	}
}

// replaceTournament swaps in t and writes it through. Caller must hold c.mu.
func (c *Controller) replaceTournament(ctx context.Context, t model.Tournament) (model.Tournament, []func(model.Tournament)) {
	c.tournament = t.Clone()
	if err := persist.Write(ctx, c.persist, storage.KeyTournamentData, c.tournament); err != nil {
		c.logger.Warn("tournament not persisted", slog.String("error", err.Error()))
	}
	return c.tournament.Clone(), c.observers
}

func notify(observers []func(model.Tournament), t model.Tournament) {
	for _, fn := range observers {
		fn(t.Clone())
	}
}
