package focus

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bekkevard/chatgpt-toggle/internal/model"
	"github.com/bekkevard/chatgpt-toggle/internal/platform"
)

// Target identifies the window to toggle.
type Target struct {
	App     string
	Markers []string
}

// Locator builds an Observation from the platform's window and process
// queries.
type Locator struct {
	lister    platform.WindowLister
	inspector platform.AppInspector
	logger    *slog.Logger
}

// NewLocator returns a Locator. inspector may be nil; the app is then
// considered running when it owns windows and never OS-frontmost.
func NewLocator(lister platform.WindowLister, inspector platform.AppInspector, logger *slog.Logger) *Locator {
	return &Locator{lister: lister, inspector: inspector, logger: logger}
}

// Observe queries the window list twice: all windows to find the target
// even when hidden, then on-screen windows to find what is in front.
func (l *Locator) Observe(ctx context.Context, target Target) (Observation, error) {
	obs := Observation{App: target.App}
	if l.lister == nil {
		return obs, fmt.Errorf("window listing not available on this platform")
	}

	running := l.isRunning(ctx, target.App)

	all, err := l.lister.ListWindows(ctx, platform.ListOptions{App: target.App})
	if err != nil {
		return obs, fmt.Errorf("list windows: %w", err)
	}
	owned := model.OwnedBy(all, target.App)
	model.Reindex(owned)

	obs.AppRunning = running || len(owned) > 0
	obs.WindowCount = len(owned)
	if !obs.AppRunning {
		return obs, nil
	}

	matcher := model.NewTitleMatcher(target.Markers)
	obs.Target = matcher.FirstMatch(owned)
	if obs.Target == nil {
		return obs, nil
	}

	visible, err := l.lister.ListWindows(ctx, platform.ListOptions{App: target.App, OnScreenOnly: true})
	if err != nil {
		return obs, fmt.Errorf("list on-screen windows: %w", err)
	}
	if front := model.OwnedBy(visible, target.App); len(front) > 0 {
		w := front[0]
		obs.FrontWindow = &w
		obs.TargetFrontmost = matcher.Match(w.Title)
	}

	obs.AppFrontmost = strings.EqualFold(l.frontmostApp(ctx), target.App)
	return obs, nil
}

func (l *Locator) isRunning(ctx context.Context, app string) bool {
	if l.inspector == nil {
		return false
	}
	running, err := l.inspector.IsRunning(ctx, app)
	if err != nil {
		l.logger.Debug("running check failed", "app", app, "error", err)
		return false
	}
	return running
}

func (l *Locator) frontmostApp(ctx context.Context) string {
	if l.inspector == nil {
		return ""
	}
	app, err := l.inspector.FrontmostApp(ctx)
	if err != nil {
		l.logger.Debug("frontmost app lookup failed", "error", err)
		return ""
	}
	return app
}
