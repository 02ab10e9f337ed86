package wire

import (
	"errors"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	a := mustParseWire(t, "R2")
	b := mustParseWire(t, "U1,R1,D1")

	got, err := Render(a, b, RenderOptions{})
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	expected := strings.Join([]string{
		".....",
		".22..",
		".oX1.",
		".....",
	}, "\n")
	if got != expected {
		t.Errorf("Render() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestRenderDemo(t *testing.T) {
	a := mustParseWire(t, "R8,U5,L5,D3")
	b := mustParseWire(t, "U7,R6,D4,L4")

	got, err := Render(a, b, RenderOptions{})
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	if n := strings.Count(got, string(CharCross)); n != 2 {
		t.Errorf("expected 2 crossings in plot, got %d:\n%s", n, got)
	}
	if n := strings.Count(got, string(CharOrigin)); n != 1 {
		t.Errorf("expected exactly one origin marker, got %d", n)
	}
}

func TestRenderTooLarge(t *testing.T) {
	a := mustParseWire(t, "R100")
	b := mustParseWire(t, "U5")

	_, err := Render(a, b, RenderOptions{MaxWidth: 80, MaxHeight: 40})
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("Render() error = %v, expected ErrTooLarge", err)
	}
}
