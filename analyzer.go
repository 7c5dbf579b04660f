package trmorph

// maxRepeatingSuffixTypeCount bounds how many times the same suffix
// MorphemeState may recur on one SearchPath before it is pruned as
// cyclic. Resolved to 3, within the conservative 2-3 range spec.md §9
// leaves open, since some Turkish derivations (e.g. stacked causatives)
// legitimately repeat a state twice.
const maxRepeatingSuffixTypeCount = 3

// maxSearchPaths caps the breadth-first frontier size; beyond it,
// pruneCyclicPaths runs before continuing. Mirrors the threshold noted in
// zeyrek/rulebasedanalyzer.py's search().
const maxSearchPaths = 30

// Analyzer walks the morphotactics graph from every StemTransition whose
// surface prefixes the input word, collecting every path that consumes
// the word exactly and ends on a terminal state. Mirrors
// zeyrek/rulebasedanalyzer.py:RuleBasedAnalyzer.
type Analyzer struct {
	Morphotactics *TurkishMorphotactics
	Stems         *StemTransitionIndex
}

// NewAnalyzer builds an Analyzer over an already-built graph and index.
func NewAnalyzer(m *TurkishMorphotactics, stems *StemTransitionIndex) *Analyzer {
	return &Analyzer{Morphotactics: m, Stems: stems}
}

// Analyze returns every SingleAnalysis for word. An empty result means no
// decomposition was found; it is not an error (spec.md §7).
func (a *Analyzer) Analyze(word string) []SingleAnalysis {
	var results []SingleAnalysis
	for _, st := range a.Stems.PrefixMatches(word) {
		path := initialSearchPath(st, word)
		for _, final := range a.search([]*SearchPath{path}) {
			results = append(results, ParseAnalysis(final))
		}
	}
	return results
}

// search explores the breadth-first frontier of SearchPaths until none
// remain, returning every path that terminated successfully. Mirrors
// RuleBasedAnalyzer.search / advance.
func (a *Analyzer) search(paths []*SearchPath) []*SearchPath {
	var results []*SearchPath
	for len(paths) > 0 {
		if len(paths) > maxSearchPaths {
			paths = pruneCyclicPaths(paths)
		}
		var next []*SearchPath
		for _, p := range paths {
			if p.Tail == "" && p.Terminal() {
				results = append(results, p)
			}
			// An empty-tail path may still reach a terminal state through
			// epsilon transitions (e.g. nounA3pl_S -> nounPnon_S ->
			// nounNom_ST), so every path is advanced regardless;
			// advance() itself skips any transition that still requires
			// surface once the tail is exhausted.
			next = append(next, a.advance(p)...)
		}
		paths = next
	}
	return results
}

// advance tries every outgoing SuffixTransition of p.CurrentState,
// returning the successor SearchPaths for those that accept. Mirrors
// RuleBasedAnalyzer.advance.
func (a *Analyzer) advance(p *SearchPath) []*SearchPath {
	var out []*SearchPath
	for _, t := range p.CurrentState.Outgoing {
		if p.Tail == "" && t.hasSurfaceForm() {
			continue
		}
		surface := generateSurface(t, p.Attrs)
		if len(surface) > len(p.Tail) || p.Tail[:len(surface)] != surface {
			continue
		}
		if t.Condition != nil && !t.Condition.Accept(p) {
			continue
		}
		newTail := p.Tail[len(surface):]
		exact := surface == p.Tail
		out = append(out, p.copy(t, surface, newTail, exact))
	}
	return out
}

// pruneCyclicPaths discards paths whose Transitions visit the same
// MorphemeState more than maxRepeatingSuffixTypeCount times, breaking
// graphs with epsilon cycles out of a runaway search. Mirrors
// RuleBasedAnalyzer.prune_cyclic_paths.
func pruneCyclicPaths(paths []*SearchPath) []*SearchPath {
	var out []*SearchPath
	for _, p := range paths {
		counts := make(map[*MorphemeState]int)
		cyclic := false
		for _, t := range p.Transitions {
			counts[t.Transition.To]++
			if counts[t.Transition.To] > maxRepeatingSuffixTypeCount {
				cyclic = true
				break
			}
		}
		if !cyclic {
			out = append(out, p)
		}
	}
	return out
}
