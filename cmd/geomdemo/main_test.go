package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRun_Commands(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.yaml")
	if err := run("init", "", options{output: scenePath}); err != nil {
		t.Fatalf("init: %v", err)
	}

	tests := []struct {
		cmd  string
		opts options
	}{
		{"flatten", options{}},
		{"sweep", options{n: 3, workers: 2}},
		{"camera", options{}},
		{"glyph", options{output: filepath.Join(dir, "glyph.png"), text: "Ok", size: 48}},
	}
	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			if err := run(tt.cmd, scenePath, tt.opts); err != nil {
				t.Fatalf("%s: %v", tt.cmd, err)
			}
		})
	}

	f, err := os.Open(filepath.Join(dir, "glyph.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("glyph.png: %v", err)
	}
}

func TestRun_Errors(t *testing.T) {
	if err := run("bogus", "", options{}); err == nil {
		t.Error("unknown command succeeded")
	}
	if err := run("flatten", filepath.Join(t.TempDir(), "none.yaml"), options{}); err == nil {
		t.Error("missing config succeeded")
	}
	if err := run("glyph", "", options{}); err == nil {
		t.Error("glyph without text succeeded")
	}
}
