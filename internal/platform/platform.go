package platform

import (
	"context"

	"github.com/bekkevard/chatgpt-toggle/internal/model"
)

// WindowLister enumerates windows through the OS window server.
type WindowLister interface {
	// ListWindows returns windows front to back, optionally filtered.
	ListWindows(ctx context.Context, opts ListOptions) ([]model.Window, error)
}

// AppInspector answers process-level questions about running applications.
type AppInspector interface {
	IsRunning(ctx context.Context, app string) (bool, error)
	// FrontmostApp returns the name of the application holding input focus.
	FrontmostApp(ctx context.Context) (string, error)
}

// WindowManager sends window-order commands to a named application.
type WindowManager interface {
	// RaiseWindow activates the application and brings the first window
	// matching opts.Markers to the top of its stack.
	RaiseWindow(ctx context.Context, opts WindowOptions) error
	// RaiseIndex brings the window at opts.Index to the top of the stack.
	// A backend that can see the application's own window order may instead
	// raise the window after the first one matching opts.Markers.
	RaiseIndex(ctx context.Context, opts WindowOptions) error
	// PushToBack moves the first matching window to the bottom of the stack.
	PushToBack(ctx context.Context, opts WindowOptions) error
	// HideApp hides every window of the application.
	HideApp(ctx context.Context, app string) error
}

// Launcher spawns the target application.
type Launcher interface {
	Launch(ctx context.Context, opts LaunchOptions) error
}
