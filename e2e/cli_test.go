package e2e_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/blockhive/internal/api"
	"github.com/mcoot/blockhive/internal/api/response"
	"github.com/mcoot/blockhive/internal/factory"
	"github.com/mcoot/blockhive/internal/services/game"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "blockhive-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/blockhive")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

// runJSON runs a command and decodes its JSON output
func runJSON[T any](t *testing.T, r *cliRunner, args ...string) T {
	t.Helper()

	output, err := r.run(args...)
	require.NoError(t, err, "command %v failed: %s", args, output)

	var v T
	require.NoError(t, json.Unmarshal([]byte(output), &v), "unexpected output: %s", output)
	return v
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

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *http.Server
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// Short animation windows keep the tests quick
	gameCfg := game.DefaultConfig()
	gameCfg.PlaceDelay = 10 * time.Millisecond
	gameCfg.ClearDelay = 10 * time.Millisecond

	app, err := factory.New(context.Background(), factory.Config{
		Logger:     logger,
		GameConfig: gameCfg,
	})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
		Hub:            app.Hub,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		server: server,
		addr:   serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
			_ = app.Close()
		},
	}
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

func TestCLI_Health(t *testing.T) {
	server := startTestServer(t)
	defer server.shutdown()

	cli := newCLIRunner(t, server.addr)

	health := runJSON[response.Health](t, cli, "health")
	assert.Equal(t, "ok", health.Status)
}

func TestCLI_GameFlow(t *testing.T) {
	server := startTestServer(t)
	defer server.shutdown()

	cli := newCLIRunner(t, server.addr)

	// Step 1: Fresh game
	state := runJSON[response.GameState](t, cli, "game", "show")
	assert.Equal(t, "idle", state.State)
	assert.Equal(t, 0, state.Score)
	require.Len(t, state.Tray, 3)

	// Step 2: Pick up and put back
	state = runJSON[response.GameState](t, cli, "game", "drag", "1")
	assert.Equal(t, "dragging", state.State)
	state = runJSON[response.GameState](t, cli, "game", "release")
	assert.Equal(t, "idle", state.State)

	// Step 3: Place the first piece wherever hints say it fits
	hints := runJSON[response.Hints](t, cli, "game", "hints")
	require.NotEmpty(t, hints.Moves)
	move := hints.Moves[0]
	require.NotEmpty(t, move.Anchors)
	anchor := move.Anchors[0]

	drop := runJSON[response.DropResponse](t, cli, "game", "place", "--",
		fmt.Sprint(move.PieceID), fmt.Sprint(anchor.Q), fmt.Sprint(anchor.R))
	assert.True(t, drop.Outcome.Accepted)
	assert.Positive(t, drop.Outcome.PointsAwarded)

	// Step 4: The placement window closes on its own
	require.Eventually(t, func() bool {
		output, err := cli.run("game", "show")
		if err != nil {
			return false
		}
		var s response.GameState
		if err := json.Unmarshal([]byte(output), &s); err != nil {
			return false
		}
		return !s.Animating
	}, 5*time.Second, 50*time.Millisecond)

	// Step 5: Switch difficulty
	state = runJSON[response.GameState](t, cli, "game", "difficulty", "easy")
	assert.Equal(t, "easy", state.Difficulty)
	assert.Equal(t, 3, state.BoardRadius)
	assert.Equal(t, 0, state.Score)
	assert.GreaterOrEqual(t, state.HighScore, drop.Outcome.PointsAwarded)
}

func TestCLI_Errors(t *testing.T) {
	server := startTestServer(t)
	defer server.shutdown()

	cli := newCLIRunner(t, server.addr)

	output, err := cli.run("game", "drag", "99")
	assert.Error(t, err)
	assert.Contains(t, output, "PIECE_NOT_IN_TRAY")

	output, err = cli.run("game", "difficulty", "nightmare")
	assert.Error(t, err)
	assert.Contains(t, output, "UNKNOWN_DIFFICULTY")
}

func TestCLI_Locate(t *testing.T) {
	server := startTestServer(t)
	defer server.shutdown()

	cli := newCLIRunner(t, server.addr)

	loc := runJSON[response.Location](t, cli, "locate", "41.6", "0")
	assert.Equal(t, "1,0", loc.Key)
	assert.True(t, loc.InBounds)

	levels := runJSON[[]response.Difficulty](t, cli, "difficulties")
	require.Len(t, levels, 3)
	assert.Equal(t, "hard", levels[2].Name)
}

func TestCLI_Events(t *testing.T) {
	server := startTestServer(t)
	defer server.shutdown()

	cli := newCLIRunner(t, server.addr)

	// connected and the initial state arrive without any action
	output, err := cli.run("events", "--limit", "2")
	require.NoError(t, err, output)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"event":"connected"`)
	assert.Contains(t, lines[1], `"event":"state"`)
}
