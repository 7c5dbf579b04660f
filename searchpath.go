package trmorph

// SurfaceTransition records one crossed SuffixTransition together with the
// concrete surface text it contributed. Mirrors the (transition, surface)
// pairs zeyrek/morphotactics.py appends to SearchPath.transitions.
type SurfaceTransition struct {
	Transition *SuffixTransition
	Surface    string
}

// SearchPath is one candidate walk through the morphotactics graph, from a
// StemTransition's target state toward a terminal state. Search explores
// many SearchPaths breadth-first; each step produces a new, independent
// SearchPath rather than mutating an existing one (see spec.md §9's
// "SearchPath as copy-on-step" note), so two paths that share a prefix
// never alias each other's Transitions slice.
type SearchPath struct {
	StemTr                    *StemTransition
	Tail                      string
	CurrentState              *MorphemeState
	Attrs                     AttrSet
	Transitions               []SurfaceTransition
	ContainsSuffixWithSurface bool
}

// initialSearchPath seeds a SearchPath at a StemTransition's target state,
// with the remainder of the word still to consume as Tail.
func initialSearchPath(st *StemTransition, word string) *SearchPath {
	tail := word
	if len(st.Surface) <= len(word) && word[:len(st.Surface)] == st.Surface {
		tail = word[len(st.Surface):]
	}
	return &SearchPath{
		StemTr:       st,
		Tail:         tail,
		CurrentState: st.State,
		Attrs:        st.Attrs,
	}
}

// copy returns an independent SearchPath advanced by crossing transition
// with the given surface and tail remainder, recomputing Attrs unless the
// transition consumed exactly the remaining tail (in which case the
// predecessor's attrs carry forward, per spec.md §4.4). An epsilon
// transition leaves Attrs unchanged, so a modified stem's ExpectsVowel and
// CannotTerminate survive until a suffix with surface text is crossed.
func (p *SearchPath) copy(transition *SuffixTransition, surface, newTail string, exact bool) *SearchPath {
	next := make([]SurfaceTransition, len(p.Transitions), len(p.Transitions)+1)
	copy(next, p.Transitions)
	next = append(next, SurfaceTransition{Transition: transition, Surface: surface})

	attrs := p.Attrs
	if !exact {
		attrs = ComputeAttrs(surface, p.Attrs)
	}
	if surface != "" {
		attrs = attrs.Discard(CannotTerminate).Discard(ExpectsVowel).Discard(ExpectsConsonant)
	}
	switch transition.lastTemplateTokenKind() {
	case tokVowelDrop: // `~X`, LAST_VOICED
		attrs = attrs.Add(ExpectsConsonant).Add(CannotTerminate)
	case tokInvariant: // `!X`, LAST_NOT_VOICED
		attrs = attrs.Add(ExpectsVowel).Add(CannotTerminate)
	}

	return &SearchPath{
		StemTr:                    p.StemTr,
		Tail:                      newTail,
		CurrentState:              transition.To,
		Attrs:                     attrs,
		Transitions:               next,
		ContainsSuffixWithSurface: p.ContainsSuffixWithSurface || surface != "",
	}
}

// DictItem returns the dictionary entry this path's stem transition was
// derived from.
func (p *SearchPath) DictItem() *DictionaryItem { return p.StemTr.Item }

// StemTransition returns the path's originating stem transition.
func (p *SearchPath) StemTransition() *StemTransition { return p.StemTr }

// PreviousState returns the MorphemeState the path was in before its last
// crossed transition, or nil if no transitions have been crossed yet.
func (p *SearchPath) PreviousState() *MorphemeState {
	if len(p.Transitions) == 0 {
		return nil
	}
	if len(p.Transitions) == 1 {
		return p.StemTr.State
	}
	return p.Transitions[len(p.Transitions)-2].Transition.To
}

// Terminal reports whether the path may legally end here: the current
// state must be terminal and CannotTerminate must not be set.
func (p *SearchPath) Terminal() bool {
	return p.CurrentState.Terminal && !p.Attrs.Has(CannotTerminate)
}
