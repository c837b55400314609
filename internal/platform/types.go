package platform

import "github.com/bekkevard/chatgpt-toggle/internal/model"

// ListOptions controls window listing.
type ListOptions struct {
	App          string // Filter by application name (case-insensitive)
	OnScreenOnly bool   // Exclude hidden, minimized and off-space windows
}

// WindowOptions addresses a window of a named application.
type WindowOptions struct {
	App     string   // Application name
	Markers []string // Case-insensitive title substrings
	Index   int      // 1-based window index (RaiseIndex only)
	ID      int      // Window-server id when the backend can address it directly
}

// LaunchOptions describes how to spawn a new application window.
type LaunchOptions struct {
	Path string // Executable path or name on PATH
	URL  string // Passed as --app=<url>
}

// Args returns the command-line arguments for the launch.
func (o LaunchOptions) Args() []string {
	if o.URL == "" {
		return nil
	}
	return []string{"--app=" + o.URL}
}

// Matches filters windows with the options' markers.
func (o WindowOptions) Matches(w model.Window) bool {
	return model.NewTitleMatcher(o.Markers).Match(w.Title)
}
