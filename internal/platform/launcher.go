package platform

import (
	"context"
	"fmt"
	"os/exec"
)

// ExecLauncher starts the application as a detached child process.
type ExecLauncher struct{}

// Launch starts opts.Path and returns without waiting for it. The child is
// reaped in the background so a long-lived caller does not collect zombies.
func (ExecLauncher) Launch(ctx context.Context, opts LaunchOptions) error {
	if opts.Path == "" {
		return fmt.Errorf("launch: no application path configured")
	}
	// Not CommandContext: the browser must outlive this process.
	cmd := exec.Command(opts.Path, opts.Args()...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %s: %w", opts.Path, err)
	}
	go cmd.Wait()
	return nil
}
