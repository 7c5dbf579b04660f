package trmorph

import "testing"

func TestGenerateSurfaceDativeBuffer(t *testing.T) {
	tr := newSuffixTransition(nil, nil, "+yA", nil)

	// consonant-final stem: no buffer, plain harmonized A
	attrs := ComputeAttrs("ev", AttrSet(0))
	if got := generateSurface(tr, attrs); got != "e" {
		t.Errorf("generateSurface(+yA, ev) = %q, want %q", got, "e")
	}

	// vowel-final stem: buffer y surfaces
	attrs = ComputeAttrs("araba", AttrSet(0))
	if got := generateSurface(tr, attrs); got != "ya" {
		t.Errorf("generateSurface(+yA, araba) = %q, want %q", got, "ya")
	}
}

func TestGenerateSurfacePossessiveBufferVowel(t *testing.T) {
	tr := newSuffixTransition(nil, nil, "+Im", nil)

	attrs := ComputeAttrs("ev", AttrSet(0))
	if got := generateSurface(tr, attrs); got != "im" {
		t.Errorf("generateSurface(+Im, ev) = %q, want %q", got, "im")
	}

	attrs = ComputeAttrs("oda", AttrSet(0))
	if got := generateSurface(tr, attrs); got != "m" {
		t.Errorf("generateSurface(+Im, oda) = %q, want %q", got, "m")
	}
}

func TestGenerateSurfaceDevoicing(t *testing.T) {
	tr := newSuffixTransition(nil, nil, ">dI", nil)

	attrs := ComputeAttrs("laş", AttrSet(0))
	if got := generateSurface(tr, attrs); got != "tı" {
		t.Errorf("generateSurface(>dI, laş) = %q, want %q", got, "tı")
	}

	attrs = ComputeAttrs("gel", AttrSet(0))
	if got := generateSurface(tr, attrs); got != "di" {
		t.Errorf("generateSurface(>dI, gel) = %q, want %q", got, "di")
	}
}

func TestGenerateSurfaceProgressiveYBuffer(t *testing.T) {
	tr := newSuffixTransition(nil, nil, "+y+Iyor", nil)

	attrs := ComputeAttrs("oku", AttrSet(0))
	if got := generateSurface(tr, attrs); got != "yor" {
		t.Errorf("generateSurface(+y+Iyor, oku) = %q, want %q", got, "yor")
	}

	attrs = ComputeAttrs("gel", AttrSet(0))
	if got := generateSurface(tr, attrs); got != "iyor" {
		t.Errorf("generateSurface(+y+Iyor, gel) = %q, want %q", got, "iyor")
	}
}

func TestParseTemplateInvariant(t *testing.T) {
	tokens := parseTemplate("!lArIn")
	if tokens[0].kind != tokInvariant || tokens[0].r != 'l' {
		t.Fatalf("expected first token to be invariant 'l', got %+v", tokens[0])
	}
}
