package trmorph

// Condition is the predicate algebra gating a SuffixTransition, evaluated
// against the SearchPath attempting to cross it. Modeled as a closed
// interface with one concrete type per predicate (rather than Python's
// class-per-predicate hierarchy), per spec.md §9's "Dynamic dispatch on
// Condition" design note. Mirrors every predicate in
// zeyrek/conditions.py and spec.md §4.2's table.
type Condition interface {
	Accept(p *SearchPath) bool
}

// --- combinators -----------------------------------------------------

type andCondition struct{ conds []Condition }

func And(conds ...Condition) Condition { return flatten("AND", conds) }
func Or(conds ...Condition) Condition  { return flatten("OR", conds) }

func flatten(op string, conds []Condition) Condition {
	var flat []Condition
	for _, c := range conds {
		if c == nil {
			continue
		}
		switch v := c.(type) {
		case andCondition:
			if op == "AND" {
				flat = append(flat, v.conds...)
				continue
			}
		case orCondition:
			if op == "OR" {
				flat = append(flat, v.conds...)
				continue
			}
		}
		flat = append(flat, c)
	}
	if op == "AND" {
		return andCondition{flat}
	}
	return orCondition{flat}
}

func (c andCondition) Accept(p *SearchPath) bool {
	for _, cond := range c.conds {
		if !cond.Accept(p) {
			return false
		}
	}
	return true
}

type orCondition struct{ conds []Condition }

func (c orCondition) Accept(p *SearchPath) bool {
	for _, cond := range c.conds {
		if cond.Accept(p) {
			return true
		}
	}
	return false
}

type notCondition struct{ cond Condition }

// Not negates a condition.
func Not(c Condition) Condition { return notCondition{c} }

func (c notCondition) Accept(p *SearchPath) bool { return !c.cond.Accept(p) }

// --- leaf predicates ---------------------------------------------------

type hasRootAttribute struct{ attr RootAttribute }

func HasRootAttribute(a RootAttribute) Condition { return hasRootAttribute{a} }
func (c hasRootAttribute) Accept(p *SearchPath) bool {
	return p.DictItem().Attrs.Has(c.attr)
}

type hasAnyRootAttribute struct{ attrs []RootAttribute }

func HasAnyRootAttribute(attrs ...RootAttribute) Condition { return hasAnyRootAttribute{attrs} }
func (c hasAnyRootAttribute) Accept(p *SearchPath) bool {
	return p.DictItem().Attrs.HasAny(c.attrs)
}

type hasPhoneticAttribute struct{ attr PhoneticAttribute }

func HasPhoneticAttribute(a PhoneticAttribute) Condition { return hasPhoneticAttribute{a} }
func (c hasPhoneticAttribute) Accept(p *SearchPath) bool { return p.Attrs.Has(c.attr) }

type dictionaryItemIs struct{ item *DictionaryItem }

func DictionaryItemIs(item *DictionaryItem) Condition { return dictionaryItemIs{item} }
func (c dictionaryItemIs) Accept(p *SearchPath) bool {
	return c.item != nil && p.DictItem() == c.item
}

type dictionaryItemIsAny struct{ items []*DictionaryItem }

func DictionaryItemIsAny(items ...*DictionaryItem) Condition { return dictionaryItemIsAny{items} }
func (c dictionaryItemIsAny) Accept(p *SearchPath) bool {
	di := p.DictItem()
	for _, it := range c.items {
		if it == di {
			return true
		}
	}
	return false
}

type secondaryPosIs struct{ pos SecondaryPos }

func SecondaryPosIs(p SecondaryPos) Condition { return secondaryPosIs{p} }
func (c secondaryPosIs) Accept(p *SearchPath) bool { return p.DictItem().SecondaryPos == c.pos }

type hasTail struct{}

// HasTail accepts when the path still has input letters to consume.
func HasTail() Condition      { return hasTail{} }
func (hasTail) Accept(p *SearchPath) bool { return len(p.Tail) != 0 }

type hasAnySuffixSurface struct{}

func HasAnySuffixSurface() Condition { return hasAnySuffixSurface{} }
func (hasAnySuffixSurface) Accept(p *SearchPath) bool { return p.ContainsSuffixWithSurface }

type hasTailSequence struct{ morphemes []*Morpheme }

func HasTailSequence(ms ...*Morpheme) Condition { return hasTailSequence{ms} }
func (c hasTailSequence) Accept(p *SearchPath) bool {
	ts := p.Transitions
	if len(ts) < len(c.morphemes) {
		return false
	}
	tail := ts[len(ts)-len(c.morphemes):]
	for i, m := range c.morphemes {
		if tail[i].Transition.To.Morpheme != m {
			return false
		}
	}
	return true
}

type containsMorphemeSequence struct{ morphemes []*Morpheme }

func ContainsMorphemeSequence(ms ...*Morpheme) Condition { return containsMorphemeSequence{ms} }
func (c containsMorphemeSequence) Accept(p *SearchPath) bool {
	ts := p.Transitions
	for i := 0; i+len(c.morphemes) <= len(ts); i++ {
		match := true
		for j, m := range c.morphemes {
			if ts[i+j].Transition.To.Morpheme != m {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

type containsMorpheme struct{ morphemes []*Morpheme }

func ContainsMorpheme(ms ...*Morpheme) Condition { return containsMorpheme{ms} }
func (c containsMorpheme) Accept(p *SearchPath) bool {
	for _, t := range p.Transitions {
		for _, m := range c.morphemes {
			if t.Transition.To.Morpheme == m {
				return true
			}
		}
	}
	return false
}

type previousMorphemeIs struct{ m *Morpheme }

func PreviousMorphemeIs(m *Morpheme) Condition { return previousMorphemeIs{m} }
func (c previousMorphemeIs) Accept(p *SearchPath) bool {
	prev := p.PreviousState()
	return prev != nil && prev.Morpheme == c.m
}

type previousMorphemeIsAny struct{ ms []*Morpheme }

func PreviousMorphemeIsAny(ms ...*Morpheme) Condition { return previousMorphemeIsAny{ms} }
func (c previousMorphemeIsAny) Accept(p *SearchPath) bool {
	prev := p.PreviousState()
	if prev == nil {
		return false
	}
	for _, m := range c.ms {
		if prev.Morpheme == m {
			return true
		}
	}
	return false
}

type previousStateIs struct{ s *MorphemeState }

func PreviousStateIs(s *MorphemeState) Condition { return previousStateIs{s} }
func (c previousStateIs) Accept(p *SearchPath) bool {
	prev := p.PreviousState()
	return prev != nil && prev == c.s
}

type previousStateIsNot struct{ s *MorphemeState }

func PreviousStateIsNot(s *MorphemeState) Condition { return previousStateIsNot{s} }
func (c previousStateIsNot) Accept(p *SearchPath) bool {
	prev := p.PreviousState()
	return prev == nil || prev != c.s
}

type previousStateIsAny struct{ ss []*MorphemeState }

func PreviousStateIsAny(ss ...*MorphemeState) Condition { return previousStateIsAny{ss} }
func (c previousStateIsAny) Accept(p *SearchPath) bool {
	prev := p.PreviousState()
	if prev == nil {
		return false
	}
	for _, s := range c.ss {
		if prev == s {
			return true
		}
	}
	return false
}

type rootSurfaceIs struct{ surface string }

func RootSurfaceIs(s string) Condition { return rootSurfaceIs{s} }
func (c rootSurfaceIs) Accept(p *SearchPath) bool { return p.StemTransition().Surface == c.surface }

type rootSurfaceIsAny struct{ surfaces []string }

func RootSurfaceIsAny(ss ...string) Condition { return rootSurfaceIsAny{ss} }
func (c rootSurfaceIsAny) Accept(p *SearchPath) bool {
	surf := p.StemTransition().Surface
	for _, s := range c.surfaces {
		if surf == s {
			return true
		}
	}
	return false
}

type lastDerivationIs struct{ s *MorphemeState }

func LastDerivationIs(s *MorphemeState) Condition { return lastDerivationIs{s} }
func (c lastDerivationIs) Accept(p *SearchPath) bool {
	for i := len(p.Transitions) - 1; i >= 0; i-- {
		st := p.Transitions[i].Transition.To
		if st.Derivative {
			return st == c.s
		}
	}
	return false
}

type lastDerivationIsAny struct{ ss []*MorphemeState }

func LastDerivationIsAny(ss ...*MorphemeState) Condition { return lastDerivationIsAny{ss} }
func (c lastDerivationIsAny) Accept(p *SearchPath) bool {
	for i := len(p.Transitions) - 1; i >= 0; i-- {
		st := p.Transitions[i].Transition.To
		if st.Derivative {
			for _, s := range c.ss {
				if st == s {
					return true
				}
			}
			return false
		}
	}
	return false
}

type hasDerivation struct{}

func HasDerivation() Condition { return hasDerivation{} }
func (hasDerivation) Accept(p *SearchPath) bool {
	for _, t := range p.Transitions {
		if t.Transition.To.Derivative {
			return true
		}
	}
	return false
}

type currentGroupContainsAny struct{ ss []*MorphemeState }

func CurrentGroupContainsAny(ss ...*MorphemeState) Condition { return currentGroupContainsAny{ss} }
func (c currentGroupContainsAny) Accept(p *SearchPath) bool {
	for i := len(p.Transitions) - 1; i >= 0; i-- {
		st := p.Transitions[i].Transition.To
		for _, s := range c.ss {
			if st == s {
				return true
			}
		}
		if st.Derivative {
			return false
		}
	}
	return false
}

type previousGroupContains struct{ ss []*MorphemeState }

func PreviousGroupContains(ss ...*MorphemeState) Condition { return previousGroupContains{ss} }
func (c previousGroupContains) Accept(p *SearchPath) bool {
	ts := p.Transitions
	i := len(ts) - 1
	for i >= 0 && !ts[i].Transition.To.Derivative {
		i--
	}
	if i < 0 {
		return false
	}
	for j := i - 1; j >= 0; j-- {
		st := ts[j].Transition.To
		for _, s := range c.ss {
			if st == s {
				return true
			}
		}
		if st.Derivative {
			return false
		}
	}
	return false
}

type previousGroupContainsMorpheme struct{ ms []*Morpheme }

func PreviousGroupContainsMorpheme(ms ...*Morpheme) Condition {
	return previousGroupContainsMorpheme{ms}
}
func (c previousGroupContainsMorpheme) Accept(p *SearchPath) bool {
	ts := p.Transitions
	i := len(ts) - 1
	for i >= 0 && !ts[i].Transition.To.Derivative {
		i--
	}
	if i < 0 {
		return false
	}
	for j := i - 1; j >= 0; j-- {
		st := ts[j].Transition.To
		for _, m := range c.ms {
			if st.Morpheme == m {
				return true
			}
		}
		if st.Derivative {
			return false
		}
	}
	return false
}

type noSurfaceAfterDerivation struct{}

func NoSurfaceAfterDerivation() Condition { return noSurfaceAfterDerivation{} }
func (noSurfaceAfterDerivation) Accept(p *SearchPath) bool {
	for i := len(p.Transitions) - 1; i >= 0; i-- {
		t := p.Transitions[i]
		if t.Transition.To.Derivative {
			return true
		}
		if t.Surface != "" {
			return false
		}
	}
	return true
}
