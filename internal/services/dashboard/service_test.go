package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/tourneyview/internal/dependencies/mocks"
	"github.com/mcoot/tourneyview/internal/model"
	"github.com/mcoot/tourneyview/internal/services/auth"
	"github.com/mcoot/tourneyview/internal/services/persist"
	"github.com/mcoot/tourneyview/internal/services/viewctl"
	"github.com/mcoot/tourneyview/internal/storage/memory"
	"github.com/mcoot/tourneyview/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	clock      *mocks.MockClock
	controller *viewctl.Controller
	service    *Service
	ctx        context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	authService, err := auth.New(auth.Config{Username: "admin", Password: "pw"}, testutil.NopLogger())
	s.Require().NoError(err)

	adapter := persist.New(memory.New(), testutil.NopLogger())
	s.controller = viewctl.NewController(adapter, authService, testutil.NopLogger())
	s.controller.Init(s.ctx)
	s.Require().True(s.controller.Login(s.ctx, "admin", "pw"))

	s.service = New(s.controller, s.clock, mocks.NewMockIDs(), testutil.NopLogger())
}

func (s *ServiceSuite) TestEditsRequireAdmin() {
	s.controller.Logout(s.ctx)

	_, err := s.service.Rename(s.ctx, "Sneaky")
	s.ErrorIs(err, ErrNotAdmin)
	_, err = s.service.Reset(s.ctx)
	s.ErrorIs(err, ErrNotAdmin)

	s.Equal(model.DefaultTournament().Name, s.controller.Tournament().Name)
}

func (s *ServiceSuite) TestRename() {
	t, err := s.service.Rename(s.ctx, "  Winter Open ")
	s.Require().NoError(err)

	s.Equal("Winter Open", t.Name)
	s.Equal("Winter Open", s.controller.Tournament().Name)
	s.Equal(s.clock.Now(), t.UpdatedAt)
}

func (s *ServiceSuite) TestRenameRequiresName() {
	_, err := s.service.Rename(s.ctx, "   ")
	s.ErrorIs(err, model.ErrNameRequired)
}

func (s *ServiceSuite) TestSetStatus() {
	t, err := s.service.SetStatus(s.ctx, model.StatusOngoing)
	s.Require().NoError(err)
	s.Equal(model.StatusOngoing, t.Status)

	_, err = s.service.SetStatus(s.ctx, "Cancelled")
	s.ErrorIs(err, model.ErrInvalidStatus)
	s.Equal(model.StatusOngoing, s.controller.Tournament().Status)
}

func (s *ServiceSuite) TestUpdateSettings() {
	name := "Spring Open"
	status := model.StatusFinished

	t, err := s.service.UpdateSettings(s.ctx, Settings{Name: &name, Status: &status})
	s.Require().NoError(err)
	s.Equal("Spring Open", t.Name)
	s.Equal(model.StatusFinished, t.Status)

	// Nil fields are untouched
	status = model.StatusOngoing
	t, err = s.service.UpdateSettings(s.ctx, Settings{Status: &status})
	s.Require().NoError(err)
	s.Equal("Spring Open", t.Name)
	s.Equal(model.StatusOngoing, t.Status)
}

func (s *ServiceSuite) TestUpdateSettingsIsAllOrNothing() {
	name := "Spring Open"
	bad := model.TournamentStatus("Paused")

	_, err := s.service.UpdateSettings(s.ctx, Settings{Name: &name, Status: &bad})
	s.ErrorIs(err, model.ErrInvalidStatus)
	s.Equal(model.DefaultTournament().Name, s.controller.Tournament().Name)
}

func (s *ServiceSuite) TestAddPlayer() {
	t, err := s.service.AddPlayer(s.ctx, "Eve")
	s.Require().NoError(err)

	s.Len(t.Players, 5)
	added := t.Players[4]
	s.Equal("Eve", added.Name)
	s.Equal(model.PlayerID("p_1"), added.ID)
}

func (s *ServiceSuite) TestAddPlayerRequiresName() {
	_, err := s.service.AddPlayer(s.ctx, "")
	s.ErrorIs(err, model.ErrNameRequired)
}

func (s *ServiceSuite) TestRemovePlayerDropsTheirMatches() {
	_, err := s.service.AddMatch(s.ctx, 1, "p1", "p2")
	s.Require().NoError(err)
	_, err = s.service.AddMatch(s.ctx, 1, "p3", "p4")
	s.Require().NoError(err)

	t, err := s.service.RemovePlayer(s.ctx, "p1")
	s.Require().NoError(err)

	s.Len(t.Players, 3)
	s.Require().Len(t.Matches, 1)
	s.Equal(model.PlayerID("p3"), t.Matches[0].PlayerA)
}

func (s *ServiceSuite) TestRemoveUnknownPlayer() {
	_, err := s.service.RemovePlayer(s.ctx, "ghost")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestAddMatchValidation() {
	_, err := s.service.AddMatch(s.ctx, 0, "p1", "p2")
	s.ErrorIs(err, model.ErrInvalidRound)

	_, err = s.service.AddMatch(s.ctx, 1, "p1", "p1")
	s.ErrorIs(err, model.ErrSamePlayer)

	_, err = s.service.AddMatch(s.ctx, 1, "p1", "ghost")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	s.Empty(s.controller.Tournament().Matches)
}

func (s *ServiceSuite) TestRecordResult() {
	t, err := s.service.AddMatch(s.ctx, 1, "p1", "p2")
	s.Require().NoError(err)
	matchID := t.Matches[0].ID

	t, err = s.service.RecordResult(s.ctx, matchID, "p2")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("p2"), t.Matches[0].Winner)
	s.Equal(1, t.Standings()[0].Wins)

	t, err = s.service.RecordResult(s.ctx, matchID, "")
	s.Require().NoError(err)
	s.False(t.Matches[0].IsComplete())
}

func (s *ServiceSuite) TestRecordResultValidation() {
	t, err := s.service.AddMatch(s.ctx, 1, "p1", "p2")
	s.Require().NoError(err)

	_, err = s.service.RecordResult(s.ctx, "m_missing", "p1")
	s.ErrorIs(err, model.ErrMatchNotFound)

	_, err = s.service.RecordResult(s.ctx, t.Matches[0].ID, "p3")
	s.ErrorIs(err, model.ErrInvalidWinner)
}

func (s *ServiceSuite) TestReplace() {
	next := model.Tournament{
		Name:    "Imported",
		Players: []model.Player{{ID: "x", Name: "X"}},
	}

	t, err := s.service.Replace(s.ctx, next)
	s.Require().NoError(err)

	s.Equal("Imported", t.Name)
	s.Equal(model.StatusUpcoming, t.Status)
	s.NotNil(t.Matches)
	s.Equal(t, s.controller.Tournament())
}

func (s *ServiceSuite) TestReplaceValidation() {
	_, err := s.service.Replace(s.ctx, model.Tournament{})
	s.ErrorIs(err, model.ErrNameRequired)

	_, err = s.service.Replace(s.ctx, model.Tournament{Name: "X", Status: "Paused"})
	s.ErrorIs(err, model.ErrInvalidStatus)
}

func (s *ServiceSuite) TestReset() {
	_, err := s.service.Rename(s.ctx, "Changed")
	s.Require().NoError(err)
	s.clock.Advance(time.Hour)

	t, err := s.service.Reset(s.ctx)
	s.Require().NoError(err)

	s.Equal(model.DefaultTournament().Name, t.Name)
	s.Equal(model.DefaultTournament().Players, t.Players)
	s.Equal(s.clock.Now(), t.UpdatedAt)
}

func (s *ServiceSuite) TestEditVisibleToPlayerView() {
	_, err := s.service.Rename(s.ctx, "Live Update")
	s.Require().NoError(err)

	// The player view reads straight from the controller
	s.controller.Navigate(model.ViewPlayer)
	s.Equal(model.ScreenPlayer, s.controller.Screen())
	s.Equal("Live Update", s.controller.Tournament().Name)
}
