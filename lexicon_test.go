package trmorph

import "testing"

func TestParseLinePlain(t *testing.T) {
	item, err := parseLine("elma")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Lemma != "elma" || item.Pos != PosNoun {
		t.Fatalf("unexpected item: %+v", item)
	}
}

func TestParseLineWithAttributes(t *testing.T) {
	item, err := parseLine("kitap [A:Voicing]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !item.Attrs.Has(Voicing) {
		t.Fatalf("expected Voicing attribute, got %+v", item.Attrs)
	}
}

func TestParseLineWithPos(t *testing.T) {
	item, err := parseLine("bu [P:Pron,Demons]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Pos != PosPronoun || item.SecondaryPos != SecDemons {
		t.Fatalf("unexpected pos/secondary pos: %v/%v", item.Pos, item.SecondaryPos)
	}
}

func TestParseLineMalformedBracket(t *testing.T) {
	if _, err := parseLine("kitap [A:Voicing"); err == nil {
		t.Fatal("expected error for unterminated bracket")
	}
}

func TestParseLineMalformedField(t *testing.T) {
	if _, err := parseLine("kitap [Voicing]"); err == nil {
		t.Fatal("expected error for metadata field missing a colon")
	}
}

func TestParseLineComment(t *testing.T) {
	item, err := parseLine("# a comment")
	if err != nil || item != nil {
		t.Fatalf("expected comment line to parse to nil, nil; got %+v, %v", item, err)
	}
}

func TestGenerateRootStripsVerbEnding(t *testing.T) {
	if got := generateRoot("okumak", PosVerb); got != "oku" {
		t.Fatalf("generateRoot(okumak) = %q, want %q", got, "oku")
	}
}

func TestLexiconAddAssignsStableID(t *testing.T) {
	lex := newRootLexicon()
	a := &DictionaryItem{Lemma: "yüz", Pos: PosNoun}
	b := &DictionaryItem{Lemma: "yüz", Pos: PosNoun}
	lex.add(a)
	lex.add(b)
	if a.ID != "yüz_Noun" {
		t.Fatalf("expected first item's id to be unsuffixed, got %q", a.ID)
	}
	if b.ID != "yüz_Noun_2" {
		t.Fatalf("expected second item's id to be suffixed, got %q", b.ID)
	}
}
