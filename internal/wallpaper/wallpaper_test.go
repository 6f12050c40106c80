package wallpaper

import "testing"

func TestParseMonitors(t *testing.T) {
	data := []byte(`[
		{"id": 0, "name": "eDP-1", "width": 2256, "height": 1504, "focused": true},
		{"id": 1, "name": "DP-3", "width": 3840, "height": 2160, "focused": false}
	]`)

	monitors, err := parseMonitors(data)
	if err != nil {
		t.Fatalf("parseMonitors() error: %v", err)
	}
	if len(monitors) != 2 {
		t.Fatalf("parsed %d monitors, want 2", len(monitors))
	}
	if monitors[0].Name != "eDP-1" || !monitors[0].Focused {
		t.Errorf("monitor 0 = %+v", monitors[0])
	}
	if monitors[1].Name != "DP-3" || monitors[1].Width != 3840 {
		t.Errorf("monitor 1 = %+v", monitors[1])
	}
}

func TestParseMonitorsEmpty(t *testing.T) {
	monitors, err := parseMonitors([]byte(`[]`))
	if err != nil {
		t.Fatalf("parseMonitors() error: %v", err)
	}
	if len(monitors) != 0 {
		t.Errorf("parsed %d monitors, want 0", len(monitors))
	}
}

func TestParseMonitorsInvalid(t *testing.T) {
	if _, err := parseMonitors([]byte("hyprctl: command failed")); err == nil {
		t.Error("parseMonitors() accepted non-JSON output")
	}
}

func TestParseMonitorsIgnoresUnknownFields(t *testing.T) {
	data := []byte(`[{"id": 0, "name": "HDMI-A-1", "width": 1920, "height": 1080,
		"refreshRate": 60.0, "scale": 1.0, "focused": false}]`)
	monitors, err := parseMonitors(data)
	if err != nil {
		t.Fatalf("parseMonitors() error: %v", err)
	}
	if monitors[0].Name != "HDMI-A-1" || monitors[0].Height != 1080 {
		t.Errorf("monitor = %+v", monitors[0])
	}
}
