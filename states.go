package trmorph

// MorphemeState is a node in the morphotactics graph. Built once at
// construction and never mutated thereafter (see SPEC_FULL.md §4 on the
// teacher's pointer-based graph representation). Mirrors
// zeyrek/morphotactics.py:MorphemeState and spec.md §3.
type MorphemeState struct {
	ID         string
	Morpheme   *Morpheme
	Terminal   bool
	Derivative bool
	PosRoot    bool
	Outgoing   []*SuffixTransition
	Incoming   []*SuffixTransition
}

func newState(id string, m *Morpheme, terminal, derivative, posRoot bool) *MorphemeState {
	return &MorphemeState{ID: id, Morpheme: m, Terminal: terminal, Derivative: derivative, PosRoot: posRoot}
}

// add wires a new outgoing SuffixTransition from s to to, with the given
// surface template and optional condition. Mirrors MorphemeState.add in
// zeyrek/morphotactics.py.
func (s *MorphemeState) add(to *MorphemeState, template string, cond Condition) *SuffixTransition {
	t := newSuffixTransition(s, to, template, cond)
	s.Outgoing = append(s.Outgoing, t)
	to.Incoming = append(to.Incoming, t)
	return t
}

// addEmpty wires an epsilon (empty-template) transition.
func (s *MorphemeState) addEmpty(to *MorphemeState, cond Condition) *SuffixTransition {
	return s.add(to, "", cond)
}
