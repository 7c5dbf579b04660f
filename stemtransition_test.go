package trmorph

import "testing"

func dummyRootState(item *DictionaryItem, attrs AttrSet) *MorphemeState {
	return newState("dummy_S", mNoun, false, false, true)
}

func TestApplyVoicing(t *testing.T) {
	got, ok := applyVoicing("kitap")
	if !ok || got != "kitab" {
		t.Fatalf("applyVoicing(kitap) = (%q, %v), want (%q, true)", got, ok, "kitab")
	}
	if _, ok := applyVoicing("ev"); ok {
		t.Fatalf("applyVoicing(ev) should not voice a root whose final letter has no voiced counterpart")
	}
}

func TestApplyVoicingNKSpecialCase(t *testing.T) {
	got, ok := applyVoicing("renk")
	if !ok || got != "reng" {
		t.Fatalf("applyVoicing(renk) = (%q, %v), want (%q, true)", got, ok, "reng")
	}
}

func TestApplyLastVowelDrop(t *testing.T) {
	got, ok := applyLastVowelDrop("ağız")
	if !ok || got != "ağz" {
		t.Fatalf("applyLastVowelDrop(ağız) = (%q, %v), want (%q, true)", got, ok, "ağz")
	}
}

func TestGenerateStemTransitionsVoicing(t *testing.T) {
	item := &DictionaryItem{Lemma: "kitap", Root: "kitap", Pos: PosNoun, Attrs: RootAttrSet(0).Add(Voicing)}
	transitions := generateStemTransitions(item, dummyRootState)
	if len(transitions) != 2 {
		t.Fatalf("expected 2 stem transitions (plain + voiced), got %d", len(transitions))
	}
	surfaces := map[string]bool{}
	for _, st := range transitions {
		surfaces[st.Surface] = true
	}
	if !surfaces["kitap"] || !surfaces["kitab"] {
		t.Fatalf("expected surfaces {kitap, kitab}, got %v", surfaces)
	}
}

func TestDemonstrativePronounVariants(t *testing.T) {
	item := &DictionaryItem{Lemma: "bu", Root: "bu", Pos: PosPronoun, SecondaryPos: SecDemons}
	transitions := generateStemTransitions(item, dummyRootState)
	if len(transitions) != 2 {
		t.Fatalf("expected 2 stem transitions (bu, bun), got %d", len(transitions))
	}
	if transitions[0].Surface != "bu" || transitions[1].Surface != "bun" {
		t.Fatalf("expected surfaces [bu bun], got [%s %s]", transitions[0].Surface, transitions[1].Surface)
	}
}

func TestPrefixMatches(t *testing.T) {
	idx := newStemTransitionIndex()
	item := &DictionaryItem{Lemma: "elma", Root: "elma", Pos: PosNoun}
	idx.add(&StemTransition{Item: item, Surface: "elma"})

	matches := idx.PrefixMatches("elmalar")
	if len(matches) != 1 || matches[0].Surface != "elma" {
		t.Fatalf("expected single prefix match %q, got %v", "elma", matches)
	}
	if len(idx.PrefixMatches("kelime")) != 0 {
		t.Fatal("expected no prefix matches for unrelated word")
	}
}
