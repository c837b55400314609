// Package applescript drives applications through the macOS scripting
// bridge by shelling out to osascript.
package applescript

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes AppleScript source and returns its trimmed stdout.
type Runner interface {
	Run(ctx context.Context, script string) (string, error)
}

// OSAScript runs scripts with the osascript binary.
type OSAScript struct {
	Path string
}

// NewOSAScript returns a Runner using osascript from PATH.
func NewOSAScript() *OSAScript {
	return &OSAScript{Path: "osascript"}
}

func (o *OSAScript) Run(ctx context.Context, script string) (string, error) {
	cmd := exec.CommandContext(ctx, o.Path, "-e", script)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", &ScriptError{Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}
	return strings.TrimSpace(stdout.String()), nil
}

// ScriptError is returned when osascript exits non-zero or cannot start.
type ScriptError struct {
	Stderr string
	Err    error
}

func (e *ScriptError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("osascript: %s (%v)", e.Stderr, e.Err)
	}
	return fmt.Sprintf("osascript: %v", e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}
