// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/lipuma"
	"github.com/gogpu/lipuma/tool"
)

const testScript = `
[[gesture]]
action = "line"
from = [10.0, 10.0]
to = [200.0, 40.0]
steps = 4

[[gesture]]
action = "line"
from = [300.0, 300.0]
to = [350.0, 320.0]

[[gesture]]
action = "select"
from = [0.0, 0.0]
to = [250.0, 100.0]

[[gesture]]
action = "delete"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("partial", func(t *testing.T) {
		path := writeFile(t, "lipuma.toml", "[settings]\noctaves = 3\nseed = 42\n")
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatal(err)
		}
		want := tool.DefaultSettings()
		want.Octaves = 3
		want.Seed = 42
		if cfg.Settings != want {
			t.Errorf("Settings = %+v, want %+v", cfg.Settings, want)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		path := writeFile(t, "lipuma.toml", "[settings]\nlacunarity = 1.5\n")
		if _, err := LoadConfig(path); !errors.Is(err, tool.ErrInvalidSettings) {
			t.Errorf("LoadConfig() error = %v, want ErrInvalidSettings", err)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		path := writeFile(t, "lipuma.toml", "[settings]\nwdith = 3.0\n")
		if _, err := LoadConfig(path); err == nil || !strings.Contains(err.Error(), "wdith") {
			t.Errorf("LoadConfig() error = %v, want unknown key", err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("LoadConfig() of a missing file succeeded")
		}
	})
}

func TestDecodeScript(t *testing.T) {
	s, err := DecodeScript(strings.NewReader(testScript))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Gestures) != 4 {
		t.Fatalf("len(Gestures) = %d, want 4", len(s.Gestures))
	}
	if g := s.Gestures[0]; g.From != [2]float64{10, 10} || g.Steps != 4 {
		t.Errorf("first gesture = %+v", g)
	}

	bad := []string{
		"[[gesture]]\naction = \"erase\"\n",
		"[[gesture]]\naction = \"line\"\nsteps = -1\n",
	}
	for _, src := range bad {
		if _, err := DecodeScript(strings.NewReader(src)); !errors.Is(err, ErrBadGesture) {
			t.Errorf("DecodeScript(%q) error = %v, want ErrBadGesture", src, err)
		}
	}
}

func TestScript_Replay(t *testing.T) {
	s, err := DecodeScript(strings.NewReader(testScript))
	if err != nil {
		t.Fatal(err)
	}
	session := tool.NewSession(tool.DefaultSettings())
	session.Resize(800, 600)
	if err := s.Replay(session); err != nil {
		t.Fatal(err)
	}

	// The selection covered the first line only, which was then deleted.
	if n := session.Scene().Len(); n != 1 {
		t.Fatalf("scene has %d objects, want 1", n)
	}
	for obj := range session.Scene().All() {
		if !obj.AABB().Contains(lipuma.Pt(325, 310)) {
			t.Errorf("survivor %v is not the second line", obj.AABB())
		}
	}
}

func TestScript_PanAndZoom(t *testing.T) {
	s := Script{Gestures: []Gesture{
		{Action: "pan", From: [2]float64{100, 100}, To: [2]float64{150, 100}},
		{Action: "zoom", From: [2]float64{0, 0}, Delta: 10},
	}}
	session := tool.NewSession(tool.DefaultSettings())
	if err := s.Replay(session); err != nil {
		t.Fatal(err)
	}
	m := session.Viewport().Transform
	if m.MaxScale() <= 1 || m.C <= 50 {
		t.Errorf("viewport transform = %+v, want panned and zoomed", m)
	}
}

func TestRenderCommand(t *testing.T) {
	script := writeFile(t, "gestures.toml", testScript)
	config := writeFile(t, "lipuma.toml", "[settings]\nseed = 7\n")
	out := filepath.Join(t.TempDir(), "scene.png")

	var stdout, stderr bytes.Buffer
	orig := lipuma.Logger()
	t.Cleanup(func() { lipuma.SetLogger(orig) })

	c := New(&stdout, &stderr)
	args := []string{"--config", config, "-v", "render", "--script", script, "--output", out, "--width", "400", "--height", "300"}
	if err := c.Execute(context.Background(), args); err != nil {
		t.Fatalf("Execute() error = %v\nstderr: %s", err, stderr.String())
	}

	if c.Settings().Seed != 7 {
		t.Errorf("config seed = %d, want 7", c.Settings().Seed)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 300 {
		t.Errorf("image size = %v, want 400x300", b.Size())
	}
	if !strings.Contains(stderr.String(), "Rendered 4 gestures") {
		t.Errorf("stderr missing progress line: %s", stderr.String())
	}
	if !strings.Contains(stderr.String(), "tool: line committed") {
		t.Errorf("verbose run did not forward core debug logs: %s", stderr.String())
	}
}

func TestRenderCommand_BadSize(t *testing.T) {
	var stdout, stderr bytes.Buffer
	c := New(&stdout, &stderr)
	err := c.Execute(context.Background(), []string{"render", "--width", "0"})
	if err == nil || !strings.Contains(err.Error(), "invalid image size") {
		t.Errorf("Execute() error = %v, want invalid image size", err)
	}
}
