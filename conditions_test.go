package trmorph

import "testing"

func fakePath(tail string, attrs AttrSet) *SearchPath {
	item := &DictionaryItem{Lemma: "test", Pos: PosNoun}
	st := &StemTransition{Item: item, Surface: "test", Attrs: attrs}
	return &SearchPath{StemTr: st, Tail: tail, Attrs: attrs}
}

func TestHasTail(t *testing.T) {
	c := HasTail()
	if !c.Accept(fakePath("m", AttrSet(0))) {
		t.Fatal("expected HasTail to accept non-empty tail")
	}
	if c.Accept(fakePath("", AttrSet(0))) {
		t.Fatal("expected HasTail to reject empty tail")
	}
}

func TestHasRootAttribute(t *testing.T) {
	item := &DictionaryItem{Lemma: "kitap", Attrs: RootAttrSet(0).Add(Voicing)}
	st := &StemTransition{Item: item}
	p := &SearchPath{StemTr: st}

	if !HasRootAttribute(Voicing).Accept(p) {
		t.Fatal("expected HasRootAttribute(Voicing) to accept")
	}
	if HasRootAttribute(Doubling).Accept(p) {
		t.Fatal("expected HasRootAttribute(Doubling) to reject")
	}
}

func TestNotAndOrCombinators(t *testing.T) {
	item := &DictionaryItem{Attrs: RootAttrSet(0).Add(CompoundP3sgRoot)}
	p := &SearchPath{StemTr: &StemTransition{Item: item}}

	neg := Not(HasRootAttribute(CompoundP3sgRoot))
	if neg.Accept(p) {
		t.Fatal("expected negated condition to reject when attribute is present")
	}

	and := And(HasRootAttribute(CompoundP3sgRoot), HasRootAttribute(CompoundP3sgRoot))
	if !and.Accept(p) {
		t.Fatal("expected AND of two true conditions to accept")
	}

	or := Or(HasRootAttribute(Doubling), HasRootAttribute(CompoundP3sgRoot))
	if !or.Accept(p) {
		t.Fatal("expected OR with one true branch to accept")
	}
}

func TestCombinatorFlattening(t *testing.T) {
	a := HasTail()
	b := HasRootAttribute(Voicing)
	c := HasRootAttribute(Doubling)
	nested := And(And(a, b), c)
	flat, ok := nested.(andCondition)
	if !ok {
		t.Fatalf("expected And to return andCondition, got %T", nested)
	}
	if len(flat.conds) != 3 {
		t.Fatalf("expected nested AND to flatten to 3 conditions, got %d", len(flat.conds))
	}
}
