package e2e_test

import (
	"bufio"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/tourneyview/internal/api"
	"github.com/mcoot/tourneyview/internal/factory"
	"github.com/mcoot/tourneyview/internal/services/auth"
	"github.com/mcoot/tourneyview/internal/testutil"
	"github.com/mcoot/tourneyview/internal/web"
)

const (
	adminUser = "admin"
	adminPass = "e2e-password"
)

var (
	buildOnce  sync.Once
	binaryPath string
	buildErr   error
	buildOut   []byte
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	projectRoot := findProjectRoot(t)

	// Build the CLI binary once per test run
	buildOnce.Do(func() {
		binaryPath = filepath.Join(projectRoot, "bin", "tourney-test")
		cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/tourney")
		cmd.Dir = projectRoot
		buildOut, buildErr = cmd.CombinedOutput()
	})
	require.NoError(t, buildErr, "failed to build CLI: %s", string(buildOut))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) command(ctx context.Context, args ...string) *exec.Cmd {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)
	return exec.CommandContext(ctx, r.binaryPath, fullArgs...)
}

func (r *cliRunner) run(args ...string) (string, error) {
	output, err := r.command(context.Background(), args...).CombinedOutput()
	return string(output), err
}

func (r *cliRunner) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := r.run(args...)
	require.NoError(t, err, "tourney %s: %s", strings.Join(args, " "), out)
	return out
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server over a SQLite database
type testServer struct {
	url      string
	shutdown func()
}

func startTestServer(t *testing.T, dbPath string) *testServer {
	t.Helper()

	logger := testutil.NopLogger()
	app, err := factory.New(context.Background(), factory.Config{
		AuthConfig:  auth.Config{Username: adminUser, Password: adminPass},
		Logger:      logger,
		StorageType: factory.StorageTypeSQLite,
		SQLitePath:  dbPath,
	})
	require.NoError(t, err)

	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:     logger,
		Controller: app.Controller,
		Dashboard:  app.DashboardService,
	})
	webRouter := web.NewRouter(web.RouterConfig{
		Logger:     logger,
		Controller: app.Controller,
		Dashboard:  app.DashboardService,
		Hub:        app.Hub,
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	cfg := api.DefaultServerConfig()
	cfg.ShutdownTimeout = 2 * time.Second
	server := api.NewServer(mux, cfg, logger)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := server.Serve(listener); err != nil {
			t.Logf("server error: %v", err)
		}
	}()

	serverURL := "http://" + listener.Addr().String()
	waitForServer(t, serverURL+"/api/v1/health")

	var once sync.Once
	ts := &testServer{
		url: serverURL,
		shutdown: func() {
			once.Do(func() {
				app.Hub.Close()
				_ = server.Shutdown(context.Background())
				<-done
				_ = app.Close()
			})
		},
	}
	t.Cleanup(ts.shutdown)
	return ts
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type sessionResponse struct {
	IsAdminLoggedIn bool   `json:"is_admin_logged_in"`
	CurrentView     string `json:"current_view"`
	Screen          string `json:"screen"`
}

type tournamentResponse struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Players []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"players"`
	Matches []struct {
		ID         string `json:"id"`
		Winner     string `json:"winner"`
		IsComplete bool   `json:"is_complete"`
	} `json:"matches"`
	Standings []struct {
		Player struct {
			Name string `json:"name"`
		} `json:"player"`
		Wins int `json:"wins"`
	} `json:"standings"`
}

func parse[T any](t *testing.T, out string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(out), &v), out)
	return v
}

func TestCLI_HealthCheck(t *testing.T) {
	server := startTestServer(t, filepath.Join(t.TempDir(), "t.db"))
	cli := newCLIRunner(t, server.url)

	out := cli.mustRun(t, "health")
	assert.Contains(t, out, `"status": "ok"`)
}

func TestCLI_SessionFlow(t *testing.T) {
	server := startTestServer(t, filepath.Join(t.TempDir(), "t.db"))
	cli := newCLIRunner(t, server.url)

	s := parse[sessionResponse](t, cli.mustRun(t, "session", "show"))
	assert.False(t, s.IsAdminLoggedIn)
	assert.Equal(t, "player", s.Screen)

	// Admin view without login renders the login form
	s = parse[sessionResponse](t, cli.mustRun(t, "session", "view", "admin"))
	assert.Equal(t, "login", s.Screen)

	out, err := cli.run("session", "login", "--user", adminUser, "--pass", "wrong")
	assert.Error(t, err)
	assert.Contains(t, out, "INVALID_CREDENTIALS")

	s = parse[sessionResponse](t, cli.mustRun(t, "session", "login", "--user", adminUser, "--pass", adminPass))
	assert.True(t, s.IsAdminLoggedIn)
	assert.Equal(t, "dashboard", s.Screen)

	s = parse[sessionResponse](t, cli.mustRun(t, "session", "logout"))
	assert.False(t, s.IsAdminLoggedIn)
	assert.Equal(t, "login", s.CurrentView)
}

func TestCLI_TournamentEditing(t *testing.T) {
	server := startTestServer(t, filepath.Join(t.TempDir(), "t.db"))
	cli := newCLIRunner(t, server.url)

	out, err := cli.run("tournament", "reset")
	assert.Error(t, err)
	assert.Contains(t, out, "ADMIN_REQUIRED")

	cli.mustRun(t, "session", "login", "--user", adminUser, "--pass", adminPass)

	tr := parse[tournamentResponse](t, cli.mustRun(t, "tournament", "rename", "--name", "E2E Open"))
	assert.Equal(t, "E2E Open", tr.Name)

	tr = parse[tournamentResponse](t, cli.mustRun(t, "tournament", "status", "Ongoing"))
	assert.Equal(t, "Ongoing", tr.Status)

	tr = parse[tournamentResponse](t, cli.mustRun(t, "tournament", "match", "add", "--round", "1", "--a", "p3", "--b", "p4"))
	require.Len(t, tr.Matches, 1)

	tr = parse[tournamentResponse](t, cli.mustRun(t, "tournament", "match", "result", tr.Matches[0].ID, "--winner", "p4"))
	assert.True(t, tr.Matches[0].IsComplete)
	assert.Equal(t, "Dave", tr.Standings[0].Player.Name)

	tr = parse[tournamentResponse](t, cli.mustRun(t, "tournament", "player", "add", "--name", "Eve"))
	assert.Len(t, tr.Players, 5)

	// The public read sees the admin's edits
	tr = parse[tournamentResponse](t, cli.mustRun(t, "tournament", "show"))
	assert.Equal(t, "E2E Open", tr.Name)
	assert.Len(t, tr.Players, 5)
}

func TestCLI_StatePersistsAcrossRestart(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "t.db")

	first := startTestServer(t, dbPath)
	cli := newCLIRunner(t, first.url)
	cli.mustRun(t, "session", "login", "--user", adminUser, "--pass", adminPass)
	cli.mustRun(t, "tournament", "rename", "--name", "Durable Cup")
	first.shutdown()

	second := startTestServer(t, dbPath)
	cli = newCLIRunner(t, second.url)

	s := parse[sessionResponse](t, cli.mustRun(t, "session", "show"))
	assert.True(t, s.IsAdminLoggedIn)
	assert.Equal(t, "admin", s.CurrentView)

	tr := parse[tournamentResponse](t, cli.mustRun(t, "tournament", "show"))
	assert.Equal(t, "Durable Cup", tr.Name)
}

func TestCLI_EventsStream(t *testing.T) {
	server := startTestServer(t, filepath.Join(t.TempDir(), "t.db"))
	cli := newCLIRunner(t, server.url)
	cli.mustRun(t, "session", "login", "--user", adminUser, "--pass", adminPass)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cmd := cli.command(ctx, "events", "--json")
	stdout, err := cmd.StdoutPipe()
	require.NoError(t, err)
	require.NoError(t, cmd.Start())
	defer func() {
		cancel()
		_ = cmd.Wait()
	}()

	events := make(chan string, 16)
	go func() {
		defer close(events)
		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			var evt struct {
				Event string `json:"event"`
			}
			if json.Unmarshal(scanner.Bytes(), &evt) == nil {
				events <- evt.Event
			}
		}
	}()

	waitForEvent(t, events, "connected")
	cli.mustRun(t, "tournament", "status", "Finished")
	waitForEvent(t, events, "tournament-updated")
}

func waitForEvent(t *testing.T, events <-chan string, name string) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case evt, ok := <-events:
			if !ok {
				t.Fatalf("event stream closed before %q", name)
			}
			if evt == name {
				return
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %q", name)
		}
	}
}
