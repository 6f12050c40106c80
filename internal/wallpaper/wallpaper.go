// Package wallpaper applies wallpapers through hyprpaper and reloads
// the desktop components that display the generated colours.
package wallpaper

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-hclog"
	ps "github.com/mitchellh/go-ps"
)

// Monitor is one entry of `hyprctl monitors -j`.
type Monitor struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Focused bool   `json:"focused"`
}

// Manager drives hyprctl and the processes around it.
type Manager struct {
	Log hclog.Logger

	// hyprpaperStartupDelay gives a freshly spawned hyprpaper time to
	// open its IPC socket before the first preload.
	hyprpaperStartupDelay time.Duration
}

// NewManager creates a wallpaper manager.
func NewManager(log hclog.Logger) *Manager {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Manager{Log: log, hyprpaperStartupDelay: 500 * time.Millisecond}
}

// Monitors lists the monitors known to the running hyprland instance.
func (m *Manager) Monitors(ctx context.Context) ([]Monitor, error) {
	out, err := exec.CommandContext(ctx, "hyprctl", "monitors", "-j").Output()
	if err != nil {
		return nil, fmt.Errorf("failed to list monitors: %w", err)
	}
	return parseMonitors(out)
}

func parseMonitors(data []byte) ([]Monitor, error) {
	var monitors []Monitor
	if err := json.Unmarshal(data, &monitors); err != nil {
		return nil, fmt.Errorf("failed to parse monitor list: %w", err)
	}
	return monitors, nil
}

// EnsureHyprpaper starts hyprpaper when it is not already running.
func (m *Manager) EnsureHyprpaper(ctx context.Context) error {
	running, err := processRunning("hyprpaper")
	if err != nil {
		return err
	}
	if running {
		return nil
	}

	m.Log.Debug("hyprpaper not running, starting it")
	cmd := exec.CommandContext(ctx, "hyprpaper")
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start hyprpaper: %w", err)
	}
	// Detach; hyprpaper keeps running after iro exits.
	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("failed to detach hyprpaper: %w", err)
	}
	time.Sleep(m.hyprpaperStartupDelay)
	return nil
}

// Set applies the wallpaper via hyprpaper. An empty monitor name sets
// it on all monitors. A stale cached image for the same path is
// unloaded first so symlinked wallpapers pick up their new target.
func (m *Manager) Set(ctx context.Context, path, monitor string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	if err := m.EnsureHyprpaper(ctx); err != nil {
		return err
	}

	// Ignore errors - the wallpaper might not be loaded yet.
	_ = exec.CommandContext(ctx, "hyprctl", "hyprpaper", "unload", absPath).Run()

	if out, err := exec.CommandContext(ctx, "hyprctl", "hyprpaper", "preload", absPath).CombinedOutput(); err != nil {
		return fmt.Errorf("failed to preload wallpaper: %w (output: %s)", err, string(out))
	}

	if out, err := exec.CommandContext(ctx, "hyprctl", "hyprpaper", "wallpaper", monitor+","+absPath).CombinedOutput(); err != nil {
		return fmt.Errorf("failed to set wallpaper: %w (output: %s)", err, string(out))
	}

	if monitor == "" {
		m.Log.Info("set wallpaper on all monitors", "path", absPath)
	} else {
		m.Log.Info("set wallpaper", "monitor", monitor, "path", absPath)
	}
	return nil
}

// SetAll applies the wallpaper individually to every listed monitor.
// When the monitor list cannot be obtained it falls back to the
// all-monitors form.
func (m *Manager) SetAll(ctx context.Context, path string) error {
	monitors, err := m.Monitors(ctx)
	if err != nil {
		m.Log.Debug("monitor listing failed, falling back to all-monitor set", "error", err)
		return m.Set(ctx, path, "")
	}
	for _, mon := range monitors {
		if err := m.Set(ctx, path, mon.Name); err != nil {
			return err
		}
	}
	return nil
}

// Reload restarts waybar (if running) and reloads hyprland so both pick
// up the regenerated colour files.
func (m *Manager) Reload(ctx context.Context) error {
	running, err := processRunning("waybar")
	if err != nil {
		return err
	}
	if running {
		m.Log.Debug("restarting waybar")
		_ = exec.CommandContext(ctx, "pkill", "waybar").Run()
		cmd := exec.CommandContext(ctx, "waybar")
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("failed to restart waybar: %w", err)
		}
		if err := cmd.Process.Release(); err != nil {
			return fmt.Errorf("failed to detach waybar: %w", err)
		}
	}

	if out, err := exec.CommandContext(ctx, "hyprctl", "reload").CombinedOutput(); err != nil {
		return fmt.Errorf("failed to reload hyprland: %w (output: %s)", err, string(out))
	}
	return nil
}

// processRunning reports whether a process with the given executable
// name exists.
func processRunning(name string) (bool, error) {
	processes, err := ps.Processes()
	if err != nil {
		return false, fmt.Errorf("failed to get process list: %w", err)
	}
	for _, p := range processes {
		if p.Executable() == name {
			return true, nil
		}
	}
	return false, nil
}
