package model

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestLookupPattern(t *testing.T) {
	p, ok := LookupPattern("Glider")
	if !ok || p.Name != "glider" {
		t.Fatalf("LookupPattern(Glider) = %+v, %v", p, ok)
	}
	if _, ok = LookupPattern("spaceship"); ok {
		t.Fatal("LookupPattern found an unknown pattern")
	}
	if got, want := PatternNames(), []string{"blinker", "block", "glider", "plus"}; !slices.Equal(got, want) {
		t.Fatalf("PatternNames() = %v, want %v", got, want)
	}
}

func TestPatternSize(t *testing.T) {
	glider, _ := LookupPattern("glider")
	if h, w := glider.Size(); h != 3 || w != 3 {
		t.Fatalf("glider size = %dx%d, want 3x3", h, w)
	}
	blinker, _ := LookupPattern("blinker")
	if h, w := blinker.Size(); h != 3 || w != 1 {
		t.Fatalf("blinker size = %dx%d, want 3x1", h, w)
	}
}

func TestStampWraps(t *testing.T) {
	glider, _ := LookupPattern("glider")
	u := New(8, 8)
	glider.Stamp(u, 7, 7)

	want := New(8, 8)
	setCells(want, [2]int{7, 0}, [2]int{0, 1}, [2]int{1, 7}, [2]int{1, 0}, [2]int{1, 1})
	if !u.Equal(want) {
		t.Fatalf("stamped glider:\n%s\nwant:\n%s", u, want)
	}

	glider.Stamp(New(0, 0), 3, 3)
}

func TestStampKeepsLiveCells(t *testing.T) {
	blinker, _ := LookupPattern("blinker")
	u := New(5, 5)
	u.SetCell(4, 4)
	blinker.Stamp(u, 0, 0)
	if u.Population() != 4 {
		t.Fatalf("population = %d after stamping a blinker next to one cell", u.Population())
	}
}

func TestParsePattern(t *testing.T) {
	src := "!Name: Glider\n!The smallest spaceship\n.O.\n..O\nOOO\n"
	p, err := ParsePattern("glider.cells", strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParsePattern: %v", err)
	}
	if p.Name != "Glider" || p.Description != "The smallest spaceship" {
		t.Fatalf("name/description = %q/%q", p.Name, p.Description)
	}
	glider, _ := LookupPattern("glider")
	if !slices.Equal(p.Cells, glider.Cells) {
		t.Fatalf("cells = %v, want %v", p.Cells, glider.Cells)
	}
}

func TestParsePatternStarsAndShortLines(t *testing.T) {
	p, err := ParsePattern("custom", strings.NewReader("*\n\n.*"))
	if err != nil {
		t.Fatalf("ParsePattern: %v", err)
	}
	if want := [][2]int{{0, 0}, {2, 1}}; !slices.Equal(p.Cells, want) {
		t.Fatalf("cells = %v, want %v", p.Cells, want)
	}
}

func TestParsePatternErrors(t *testing.T) {
	tests := map[string]string{
		"bad character": ".O.\n.x.\n",
		"no live cells": "!only comments\n...\n",
		"empty":         "",
	}
	for name, src := range tests {
		if _, err := ParsePattern(name, strings.NewReader(src)); err == nil {
			t.Errorf("%s: ParsePattern succeeded", name)
		}
	}
}

func TestParsePatternErrorPosition(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{src: "O.x\n", want: "line 1 column 3"},
		{src: "O..\n.O★O\n", want: "line 2 column 3"},
		{src: "\ufeffO\n", want: "line 1 column 1"},
		{src: "!Name: é\nOOé\n", want: "line 1 column 3"},
	}
	for _, tc := range tests {
		_, err := ParsePattern("p", strings.NewReader(tc.src))
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Errorf("ParsePattern(%q) error = %v, want %q", tc.src, err, tc.want)
		}
	}
}

func TestLoadPatternFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blinker.cells")
	if err := os.WriteFile(path, []byte("O\nO\nO\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadPatternFile(path)
	if err != nil {
		t.Fatalf("LoadPatternFile: %v", err)
	}
	blinker, _ := LookupPattern("blinker")
	if p.Name != "blinker" || !slices.Equal(p.Cells, blinker.Cells) {
		t.Fatalf("loaded %+v", p)
	}

	_, err = LoadPatternFile(filepath.Join(t.TempDir(), "missing.cells"))
	if !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("missing file error = %v", err)
	}
}
