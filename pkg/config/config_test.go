package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TERMBAR_WIDTH", "TERMBAR_FALLBACK_EXTRA", "TERMBAR_WHEEL", "TERMBAR_AUTOFIT", "TERMBAR_STREAM"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	c, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatal(err)
	}
	if c.GetWidth() != 50 || c.GetFallbackExtra() != 20 || c.GetWheel() != `/-\|` {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if c.GetAutoFit() || c.GetStream() != StreamStdout {
		t.Errorf("unexpected defaults: %+v", c)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"width": 30, "wheel": "abc", "auto_fit": true, "stream": "stderr"}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.GetWidth() != 30 || c.GetWheel() != "abc" || !c.GetAutoFit() || c.GetStream() != StreamStderr {
		t.Errorf("file values not applied: %+v", c)
	}
	if c.GetFallbackExtra() != 20 {
		t.Errorf("absent field should keep default, got %d", c.GetFallbackExtra())
	}

	t.Setenv("TERMBAR_WIDTH", "12")
	t.Setenv("TERMBAR_AUTOFIT", "false")
	c, err = Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.GetWidth() != 12 || c.GetAutoFit() {
		t.Errorf("environment should override file: %+v", c)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		file string
	}{
		{name: "width not a number", env: map[string]string{"TERMBAR_WIDTH": "wide"}},
		{name: "width zero", env: map[string]string{"TERMBAR_WIDTH": "0"}},
		{name: "bad autofit", env: map[string]string{"TERMBAR_AUTOFIT": "maybe"}},
		{name: "bad stream", env: map[string]string{"TERMBAR_STREAM": "printer"}},
		{name: "bad json", file: `{"width":`},
		{name: "empty wheel", file: `{"wheel": ""}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := filepath.Join(t.TempDir(), "config.json")
			if tt.file != "" {
				if err := os.WriteFile(path, []byte(tt.file), 0644); err != nil {
					t.Fatal(err)
				}
			}
			if _, err := Load(path); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestParseStream(t *testing.T) {
	for in, want := range map[string]Stream{"stdout": StreamStdout, "STDERR": StreamStderr, "2": StreamStderr} {
		got, err := ParseStream(in)
		if err != nil || got != want {
			t.Errorf("ParseStream(%q) = %q, %v", in, got, err)
		}
	}
}

func TestFreeze(t *testing.T) {
	c := Defaults()
	w := c.Checkout()
	w.SetWidth(20)
	c.Freeze()
	if c.GetWidth() != 20 {
		t.Errorf("got %d", c.GetWidth())
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic modifying a frozen config")
		}
	}()
	w.SetWidth(30)
}
