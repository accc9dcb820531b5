package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }

func (s *stubExec) Login(ctx context.Context) error {
	s.calls = append(s.calls, "login")
	s.loggedIn = true
	return nil
}

func (s *stubExec) Logout(ctx context.Context) error {
	s.calls = append(s.calls, "logout")
	s.loggedIn = false
	return nil
}

func (s *stubExec) Whoami(ctx context.Context) error {
	s.calls = append(s.calls, "whoami")
	return nil
}

func (s *stubExec) Drivers(ctx context.Context) error {
	s.calls = append(s.calls, "drivers")
	return nil
}

func (s *stubExec) Vehicles(ctx context.Context) error {
	s.calls = append(s.calls, "vehicles")
	return nil
}

func (s *stubExec) Routes(ctx context.Context) error {
	s.calls = append(s.calls, "routes")
	return nil
}

func runScript(t *testing.T, a *stubExec, script string) []string {
	t.Helper()

	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		for _, arg := range args {
			if s, ok := arg.(string); ok {
				lines = append(lines, s)
			}
		}
		return 0, nil
	}
	defer func() { printlnFn = orig }()

	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), a, func() string { return "test" }, scanner)
	return lines
}

func TestREPL_DispatchesCommands(t *testing.T) {
	a := &stubExec{}
	runScript(t, a, "login\nwhoami\ndrivers\nvehicles\nroutes\nlogout\nexit\n")

	require.Equal(t, []string{"login", "whoami", "drivers", "vehicles", "routes", "logout"}, a.calls)
}

func TestREPL_UnknownCommand(t *testing.T) {
	a := &stubExec{}
	lines := runScript(t, a, "frobnicate\nexit\n")

	require.Empty(t, a.calls)
	require.Contains(t, lines, "Unknown command: frobnicate")
}

func TestREPL_HelpReflectsAuthState(t *testing.T) {
	a := &stubExec{}
	lines := runScript(t, a, "help\nlogin\nhelp\nquit\n")

	require.Contains(t, lines, "Available commands: login, exit")
	require.Contains(t, lines, "Available commands: whoami, drivers, vehicles, routes, logout, exit")
}

func TestREPL_SkipsBlankLines(t *testing.T) {
	a := &stubExec{}
	runScript(t, a, "\n   \nwhoami\nexit\n")

	require.Equal(t, []string{"whoami"}, a.calls)
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	a := &stubExec{}
	runScript(t, a, "whoami\n") // no exit, scanner just runs dry

	require.Equal(t, []string{"whoami"}, a.calls)
}
