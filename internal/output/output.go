// Package output renders the generated scheme into application config
// files: a kitty colour section, hyprland colour variables, a waybar
// stylesheet and a shell export script. Sections are patched in place
// between generated-section markers so user config around them
// survives regeneration.
package output

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/hashicorp/go-hclog"

	"github.com/irofield/iro/internal/colour"
)

//go:embed templates/*.tmpl
var templates embed.FS

// templateFuncs are the helpers available to all output templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		// strip removes the leading "#" for formats that want bare hex.
		"strip": func(hex string) string {
			return strings.TrimPrefix(hex, "#")
		},
	}
}

// schemeData is the view rendered into every template.
type schemeData struct {
	Background string
	Foreground string
	Accent     string
	Secondary  string
	Surface    string
	Error      string
	Colors     []string
	Mode       string
	Style      string
}

func newSchemeData(s *colour.Scheme) schemeData {
	return schemeData{
		Background: s.Background.Hex(),
		Foreground: s.Foreground.Hex(),
		Accent:     s.Accent.Hex(),
		Secondary:  s.Secondary.Hex(),
		Surface:    s.Surface.Hex(),
		Error:      s.Error.Hex(),
		Colors:     s.HexColors(),
		Mode:       s.Mode.String(),
		Style:      s.StyleName,
	}
}

// render executes the named embedded template against the scheme.
func render(name string, s *colour.Scheme) ([]byte, error) {
	content, err := templates.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", name, err)
	}
	tmpl, err := template.New(name).Funcs(templateFuncs()).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, newSchemeData(s)); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Writer writes scheme output into the user's config tree.
type Writer struct {
	// ConfigRoot is the base config directory, normally ~/.config.
	ConfigRoot string

	Log hclog.Logger
}

// NewWriter creates a Writer rooted at the user's config directory.
func NewWriter(log hclog.Logger) *Writer {
	root := os.Getenv("XDG_CONFIG_HOME")
	if root == "" {
		root = filepath.Join(os.Getenv("HOME"), ".config")
	}
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Writer{ConfigRoot: root, Log: log}
}

// WriteAll renders every output target and returns the paths written.
// A target whose parent application directory does not exist is
// skipped, not treated as an error; the shell script target is always
// written.
func (w *Writer) WriteAll(s *colour.Scheme) ([]string, error) {
	var written []string

	targets := []struct {
		name  string
		write func(*colour.Scheme) (string, bool, error)
	}{
		{"kitty", w.WriteKitty},
		{"hyprland", w.WriteHyprland},
		{"waybar", w.WriteWaybar},
	}
	for _, target := range targets {
		path, ok, err := target.write(s)
		if err != nil {
			return written, fmt.Errorf("failed to write %s colours: %w", target.name, err)
		}
		if !ok {
			w.Log.Debug("skipping output target", "target", target.name)
			continue
		}
		w.Log.Debug("wrote output target", "target", target.name, "path", path)
		written = append(written, path)
	}

	path, err := w.WriteShell(s)
	if err != nil {
		return written, fmt.Errorf("failed to write shell colours: %w", err)
	}
	written = append(written, path)
	return written, nil
}

// WriteKitty patches the generated colour section into kitty.conf. The
// boolean result reports whether kitty config was found.
func (w *Writer) WriteKitty(s *colour.Scheme) (string, bool, error) {
	return w.patchInto(filepath.Join(w.ConfigRoot, "kitty", "kitty.conf"), "kitty.conf.tmpl", s)
}

// WriteHyprland patches the generated colour variables into
// hyprland.conf.
func (w *Writer) WriteHyprland(s *colour.Scheme) (string, bool, error) {
	return w.patchInto(filepath.Join(w.ConfigRoot, "hypr", "hyprland.conf"), "hyprland.conf.tmpl", s)
}

// WriteWaybar writes the waybar colour stylesheet whole. Waybar
// imports it from its own style.css.
func (w *Writer) WriteWaybar(s *colour.Scheme) (string, bool, error) {
	dir := filepath.Join(w.ConfigRoot, "waybar")
	if _, err := os.Stat(dir); err != nil {
		return "", false, nil
	}

	content, err := render("waybar.css.tmpl", s)
	if err != nil {
		return "", false, err
	}

	path := filepath.Join(dir, "iro-colors.css")
	if err := backupOnce(path, w.Log); err != nil {
		return "", false, err
	}
	if err := os.WriteFile(path, content, 0o644); err != nil { // #nosec G306 - User config file
		return "", false, err
	}
	return path, true, nil
}

// WriteShell writes the colour export script, creating the iro config
// directory if needed. The script is executable so it can be sourced
// or run directly.
func (w *Writer) WriteShell(s *colour.Scheme) (string, error) {
	content, err := render("colors.sh.tmpl", s)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(w.ConfigRoot, "iro")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config dir: %w", err)
	}
	path := filepath.Join(dir, "colors.sh")
	if err := os.WriteFile(path, content, 0o755); err != nil { // #nosec G306 - Script needs execute permission
		return "", err
	}
	return path, nil
}

// patchInto renders the template and splices it into the target config
// between markers. Missing target files are reported as skipped.
func (w *Writer) patchInto(path, tmplName string, s *colour.Scheme) (string, bool, error) {
	existing, err := os.ReadFile(path) // #nosec G304 - User config path controlled by application
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}

	section, err := render(tmplName, s)
	if err != nil {
		return "", false, err
	}

	if err := backupOnce(path, w.Log); err != nil {
		return "", false, err
	}

	patched := patchSection(existing, section)
	info, err := os.Stat(path)
	if err != nil {
		return "", false, err
	}
	if err := os.WriteFile(path, patched, info.Mode().Perm()); err != nil {
		return "", false, err
	}
	return path, true, nil
}
