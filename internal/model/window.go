package model

// Window is one application window as reported by the window server.
// Snapshots are taken fresh on every invocation and never persisted.
type Window struct {
	App      string `yaml:"app"             json:"app"`
	PID      int    `yaml:"pid,omitempty"   json:"pid,omitempty"`
	ID       int    `yaml:"id,omitempty"    json:"id,omitempty"`
	Title    string `yaml:"title"           json:"title"`
	Index    int    `yaml:"index,omitempty" json:"index,omitempty"` // 1-based, front to back within App
	OnScreen bool   `yaml:"on_screen"       json:"on_screen"`
}
