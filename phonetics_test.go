package trmorph

import "testing"

func TestComputeAttrsVowelBackRounded(t *testing.T) {
	attrs := ComputeAttrs("oku", AttrSet(0))
	if !attrs.Has(LastVowelBack) || !attrs.Has(LastVowelRounded) {
		t.Fatalf("expected back+rounded last vowel for %q, got %v", "oku", attrs)
	}
	if !attrs.Has(LastLetterVowel) {
		t.Fatalf("expected LastLetterVowel for %q", "oku")
	}
}

func TestComputeAttrsConsonantFinal(t *testing.T) {
	attrs := ComputeAttrs("kitap", AttrSet(0))
	if !attrs.Has(LastLetterConsonant) || !attrs.Has(LastLetterVoiceless) || !attrs.Has(LastLetterVoicelessStop) {
		t.Fatalf("expected voiceless stop final for %q, got %v", "kitap", attrs)
	}
}

func TestComputeAttrsNoVowelInheritsPredecessor(t *testing.T) {
	pred := ComputeAttrs("oku", AttrSet(0))
	attrs := ComputeAttrs("m", pred)
	if !attrs.Has(HasNoVowel) {
		t.Fatalf("expected HasNoVowel for single-consonant suffix %q", "m")
	}
	if !attrs.Has(LastVowelBack) {
		t.Fatalf("expected inherited LastVowelBack from predecessor")
	}
}

func TestHarmonizeIFourWay(t *testing.T) {
	cases := []struct {
		word string
		want rune
	}{
		{"kitap", 'ı'}, // back, unrounded
		{"ev", 'i'},    // frontal, unrounded
		{"oku", 'u'},   // back, rounded
		{"göz", 'ü'},   // frontal, rounded
	}
	for _, c := range cases {
		attrs := ComputeAttrs(c.word, AttrSet(0))
		got := HarmonizeI(attrs)
		if got != c.want {
			t.Errorf("HarmonizeI(%q) = %q, want %q", c.word, got, c.want)
		}
	}
}

func TestVoiceDevoiceRoundTrip(t *testing.T) {
	for _, r := range []rune{'ç', 'k', 'p', 't'} {
		v := Voice(r)
		if v == r {
			t.Errorf("Voice(%q) did not change the letter", r)
		}
		if Devoice(v) != r && !(r == 'k' && Devoice(v) == 'k') {
			t.Errorf("Devoice(Voice(%q)) = %q, want %q", r, Devoice(v), r)
		}
	}
}

func TestNormalizeCircumflex(t *testing.T) {
	if got := NormalizeCircumflex("kâğıt"); got != "kağıt" {
		t.Errorf("NormalizeCircumflex(%q) = %q, want %q", "kâğıt", got, "kağıt")
	}
}
