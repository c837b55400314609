package cmd

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bekkevard/chatgpt-toggle/internal/model"
	"github.com/bekkevard/chatgpt-toggle/internal/platform"
)

// fakeBackend is a scripted desktop registered under the "test" backend.
type fakeBackend struct {
	windows  []model.Window
	frontApp string
	calls    []string

	// stall makes ListWindows wait for its context to end.
	stall bool
}

func (f *fakeBackend) ListWindows(ctx context.Context, opts platform.ListOptions) ([]model.Window, error) {
	if f.stall {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(5 * time.Second):
			return nil, errors.New("list windows: context was never cancelled")
		}
	}
	out := []model.Window{}
	for _, w := range f.windows {
		if opts.App != "" && !strings.EqualFold(w.App, opts.App) {
			continue
		}
		if opts.OnScreenOnly && !w.OnScreen {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

func (f *fakeBackend) IsRunning(_ context.Context, app string) (bool, error) {
	for _, w := range f.windows {
		if strings.EqualFold(w.App, app) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBackend) FrontmostApp(context.Context) (string, error) { return f.frontApp, nil }

func (f *fakeBackend) RaiseWindow(context.Context, platform.WindowOptions) error {
	f.calls = append(f.calls, "raise")
	return nil
}

func (f *fakeBackend) RaiseIndex(context.Context, platform.WindowOptions) error {
	f.calls = append(f.calls, "cycle")
	return nil
}

func (f *fakeBackend) PushToBack(context.Context, platform.WindowOptions) error {
	f.calls = append(f.calls, "push-back")
	return nil
}

func (f *fakeBackend) HideApp(context.Context, string) error {
	f.calls = append(f.calls, "hide")
	return nil
}

func (f *fakeBackend) Launch(context.Context, platform.LaunchOptions) error {
	f.calls = append(f.calls, "launch")
	return nil
}

var testBackend = &fakeBackend{}

func init() {
	platform.Register("test", -100, func() bool { return false }, func() (*platform.Provider, error) {
		return &platform.Provider{
			Name:          "test",
			Lister:        testBackend,
			Inspector:     testBackend,
			WindowManager: testBackend,
			Launcher:      testBackend,
		}, nil
	})
}

// useTestBackend points the persistent flags at the fake backend and an
// empty config dir, and resets the fake.
func useTestBackend(t *testing.T, windows []model.Window, frontApp string) *fakeBackend {
	t.Helper()
	flags := rootCmd.PersistentFlags()
	set := func(name, value string) {
		old, _ := flags.GetString(name)
		if err := flags.Set(name, value); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { flags.Set(name, old) })
	}
	set("backend", "test")
	set("config", filepath.Join(t.TempDir(), "config.yaml"))

	*testBackend = fakeBackend{windows: windows, frontApp: frontApp}
	return testBackend
}
