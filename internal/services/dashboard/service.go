package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/mcoot/tourneyview/internal/dependencies/clock"
	"github.com/mcoot/tourneyview/internal/dependencies/ids"
	"github.com/mcoot/tourneyview/internal/model"
	"github.com/mcoot/tourneyview/internal/services/viewctl"
)

// ErrNotAdmin is returned when an edit is attempted without an admin session
var ErrNotAdmin = errors.New("admin login required")

// Service applies admin edits to the tournament. Every edit builds a new
// tournament value and hands it to the controller as a full replace.
type Service struct {
	controller *viewctl.Controller
	clock      clock.Clock
	ids        ids.Generator
	logger     *slog.Logger
}

// New creates a dashboard Service
func New(controller *viewctl.Controller, clk clock.Clock, idGen ids.Generator, logger *slog.Logger) *Service {
	return &Service{
		controller: controller,
		clock:      clk,
		ids:        idGen,
		logger:     logger.With(slog.String("component", "dashboard")),
	}
}

// Replace stores t as the whole tournament
func (s *Service) Replace(ctx context.Context, t model.Tournament) (model.Tournament, error) {
	return s.edit(ctx, "replace", func(model.Tournament) (model.Tournament, error) {
		if strings.TrimSpace(t.Name) == "" {
			return model.Tournament{}, model.ErrNameRequired
		}
		if t.Status == "" {
			t.Status = model.StatusUpcoming
		}
		if !slices.Contains(model.AllStatuses, t.Status) {
			return model.Tournament{}, model.ErrInvalidStatus
		}
		return t.Clone(), nil
	})
}

// Rename changes the tournament name
func (s *Service) Rename(ctx context.Context, name string) (model.Tournament, error) {
	name = strings.TrimSpace(name)
	return s.edit(ctx, "rename", func(t model.Tournament) (model.Tournament, error) {
		if name == "" {
			return t, model.ErrNameRequired
		}
		t.Name = name
		return t, nil
	})
}

// SetStatus moves the tournament to another lifecycle stage
func (s *Service) SetStatus(ctx context.Context, status model.TournamentStatus) (model.Tournament, error) {
	return s.edit(ctx, "set_status", func(t model.Tournament) (model.Tournament, error) {
		if !slices.Contains(model.AllStatuses, status) {
			return t, model.ErrInvalidStatus
		}
		t.Status = status
		return t, nil
	})
}

// Settings carries optional name and status changes; nil fields are left alone
type Settings struct {
	Name   *string
	Status *model.TournamentStatus
}

// UpdateSettings applies name and status changes as a single edit
func (s *Service) UpdateSettings(ctx context.Context, in Settings) (model.Tournament, error) {
	return s.edit(ctx, "update_settings", func(t model.Tournament) (model.Tournament, error) {
		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return t, model.ErrNameRequired
			}
			t.Name = name
		}
		if in.Status != nil {
			if !slices.Contains(model.AllStatuses, *in.Status) {
				return t, model.ErrInvalidStatus
			}
			t.Status = *in.Status
		}
		return t, nil
	})
}

// AddPlayer enters a new player under a generated ID
func (s *Service) AddPlayer(ctx context.Context, name string) (model.Tournament, error) {
	name = strings.TrimSpace(name)
	return s.edit(ctx, "add_player", func(t model.Tournament) (model.Tournament, error) {
		if name == "" {
			return t, model.ErrNameRequired
		}
		t.Players = append(t.Players, model.Player{
			ID:   model.PlayerID(s.ids.NewID("p_")),
			Name: name,
		})
		return t, nil
	})
}

// RemovePlayer withdraws a player together with all of their matches
func (s *Service) RemovePlayer(ctx context.Context, id model.PlayerID) (model.Tournament, error) {
	return s.edit(ctx, "remove_player", func(t model.Tournament) (model.Tournament, error) {
		if _, ok := t.FindPlayer(id); !ok {
			return t, model.ErrPlayerNotFound
		}
		t.Players = slices.DeleteFunc(t.Players, func(p model.Player) bool { return p.ID == id })
		t.Matches = slices.DeleteFunc(t.Matches, func(m model.Match) bool { return m.Involves(id) })
		return t, nil
	})
}

// AddMatch pairs two existing players in a round
func (s *Service) AddMatch(ctx context.Context, round int, a, b model.PlayerID) (model.Tournament, error) {
	return s.edit(ctx, "add_match", func(t model.Tournament) (model.Tournament, error) {
		if round < 1 {
			return t, model.ErrInvalidRound
		}
		if a == b {
			return t, model.ErrSamePlayer
		}
		for _, id := range []model.PlayerID{a, b} {
			if _, ok := t.FindPlayer(id); !ok {
				return t, model.ErrPlayerNotFound
			}
		}
		t.Matches = append(t.Matches, model.Match{
			ID:      model.MatchID(s.ids.NewID("m_")),
			Round:   round,
			PlayerA: a,
			PlayerB: b,
		})
		return t, nil
	})
}

// RecordResult sets the winner of a match. An empty winner clears the result.
func (s *Service) RecordResult(ctx context.Context, matchID model.MatchID, winner model.PlayerID) (model.Tournament, error) {
	return s.edit(ctx, "record_result", func(t model.Tournament) (model.Tournament, error) {
		i := t.MatchIndex(matchID)
		if i < 0 {
			return t, model.ErrMatchNotFound
		}
		if winner != "" && !t.Matches[i].Involves(winner) {
			return t, model.ErrInvalidWinner
		}
		t.Matches[i].Winner = winner
		return t, nil
	})
}

// Reset restores the seed tournament
func (s *Service) Reset(ctx context.Context) (model.Tournament, error) {
	return s.edit(ctx, "reset", func(model.Tournament) (model.Tournament, error) {
		return model.DefaultTournament(), nil
	})
}

func (s *Service) edit(ctx context.Context, op string, fn func(model.Tournament) (model.Tournament, error)) (model.Tournament, error) {
	t, err := s.controller.UpdateTournament(ctx, func(state viewctl.State, current model.Tournament) (model.Tournament, error) {
		if !state.IsAdminLoggedIn {
			return current, ErrNotAdmin
		}
		next, err := fn(current)
		if err != nil {
			return next, err
		}
		next.UpdatedAt = s.clock.Now()
		return next, nil
	})
	if err != nil {
		s.logger.Info("tournament edit rejected", slog.String("op", op), slog.String("error", err.Error()))
		return model.Tournament{}, err
	}

	s.logger.Info("tournament edited", slog.String("op", op), slog.String("name", t.Name))
	return t, nil
}
