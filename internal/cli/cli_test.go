package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/tourneyview/internal/api"
	"github.com/mcoot/tourneyview/internal/factory"
	"github.com/mcoot/tourneyview/internal/testutil"
)

type CLISuite struct {
	suite.Suite
	app    *factory.TestApp
	server *httptest.Server
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	s.app = factory.NewTestApp()
	router := api.NewRouter(api.RouterConfig{
		Logger:     testutil.NopLogger(),
		Controller: s.app.Controller,
		Dashboard:  s.app.DashboardService,
	})
	s.server = httptest.NewServer(router)
}

func (s *CLISuite) TearDownTest() {
	s.server.Close()
	s.app.Hub.Close()
}

// run executes the CLI against the test server and returns stdout
func (s *CLISuite) run(args ...string) (string, error) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--server", s.server.URL}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (s *CLISuite) mustRun(args ...string) string {
	out, err := s.run(args...)
	s.Require().NoError(err, out)
	return out
}

func (s *CLISuite) TestHealth() {
	out := s.mustRun("health")
	s.Contains(out, "Status: OK")
}

func (s *CLISuite) TestSessionShowJSON() {
	out := s.mustRun("session", "show", "-o", "json")

	var sess Session
	s.Require().NoError(json.Unmarshal([]byte(out), &sess))
	s.False(sess.IsAdminLoggedIn)
	s.Equal("player", sess.CurrentView)
	s.Equal("player", sess.Screen)
}

func (s *CLISuite) TestLoginAndLogout() {
	out := s.mustRun("session", "login", "--user", factory.TestAdminUsername, "--pass", factory.TestAdminPassword)
	s.Contains(out, "Admin logged in: yes")
	s.Contains(out, "Screen: dashboard")

	out = s.mustRun("session", "logout")
	s.Contains(out, "Admin logged in: no")
	s.Contains(out, "View: login")
}

func (s *CLISuite) TestLoginFailureReturnsAPIError() {
	_, err := s.run("session", "login", "--user", "admin", "--pass", "wrong")

	var apiErr *APIError
	s.Require().True(errors.As(err, &apiErr))
	s.Equal("INVALID_CREDENTIALS", apiErr.Code)
}

func (s *CLISuite) TestViewWithoutLoginRendersLogin() {
	out := s.mustRun("session", "view", "admin")
	s.Contains(out, "View: admin")
	s.Contains(out, "Screen: login")
}

func (s *CLISuite) TestTournamentShow() {
	out := s.mustRun("tournament", "show")
	s.Contains(out, "Tournament: Community Cup")
	s.Contains(out, "Status: Upcoming")
	s.Contains(out, "Alice")
	s.Contains(out, "No matches scheduled")
}

func (s *CLISuite) TestEditsRequireAdmin() {
	_, err := s.run("tournament", "rename", "--name", "Nope")

	var apiErr *APIError
	s.Require().True(errors.As(err, &apiErr))
	s.Equal("ADMIN_REQUIRED", apiErr.Code)
}

func (s *CLISuite) TestAdminWorkflow() {
	s.mustRun("session", "login", "--user", factory.TestAdminUsername, "--pass", factory.TestAdminPassword)

	out := s.mustRun("tournament", "rename", "--name", "Club Night")
	s.Contains(out, "Tournament: Club Night")

	out = s.mustRun("tournament", "status", "Ongoing")
	s.Contains(out, "Status: Ongoing")

	out = s.mustRun("tournament", "player", "add", "--name", "Eve")
	s.Contains(out, "Eve")

	out = s.mustRun("tournament", "match", "add", "--round", "1", "--a", "p1", "--b", "p2", "-o", "json")
	var t Tournament
	s.Require().NoError(json.Unmarshal([]byte(out), &t))
	s.Require().Len(t.Matches, 1)
	matchID := t.Matches[0].ID

	out = s.mustRun("tournament", "match", "result", matchID, "--winner", "p1")
	s.Contains(out, "Round 1:")
	s.Contains(out, "Alice vs Bob - winner Alice")

	out = s.mustRun("tournament", "player", "remove", "p2")
	s.NotContains(out, "Bob")
	s.Contains(out, "No matches scheduled")

	out = s.mustRun("tournament", "reset")
	s.Contains(out, "Tournament: Community Cup")
}

func (s *CLISuite) TestReplaceFromFile() {
	s.mustRun("session", "login", "--user", factory.TestAdminUsername, "--pass", factory.TestAdminPassword)

	path := filepath.Join(s.T().TempDir(), "t.json")
	s.Require().NoError(os.WriteFile(path, []byte(`{
		"name": "From File",
		"status": "Finished",
		"players": [{"id": "a", "name": "Ana"}, {"id": "b", "name": "Ben"}],
		"matches": [{"id": "m1", "round": 1, "player_a": "a", "player_b": "b", "winner": "b"}]
	}`), 0o600))

	out := s.mustRun("tournament", "replace", "--file", path)
	s.Contains(out, "Tournament: From File")
	s.Contains(out, "Ana vs Ben - winner Ben")

	s.Equal("From File", s.app.Controller.Tournament().Name)
}

func (s *CLISuite) TestReplaceRejectsInvalidJSON() {
	path := filepath.Join(s.T().TempDir(), "bad.json")
	s.Require().NoError(os.WriteFile(path, []byte("{nope"), 0o600))

	_, err := s.run("tournament", "replace", "--file", path)
	s.ErrorContains(err, "not valid JSON")
}

func (s *CLISuite) TestInvalidOutputFormat() {
	_, err := s.run("health", "-o", "yaml")
	s.ErrorContains(err, "unknown output format")
}

func TestClientNonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Get("/api/v1/health", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("unexpected APIError: %v", apiErr)
	}
}
