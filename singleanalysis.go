package trmorph

// MorphemeSurface pairs a crossed morpheme with the literal surface text
// the transition producing it contributed, per spec.md §4.5/§6's
// (morpheme_id, surface) output shape. The HTTP server returns the
// surface per morpheme; DefaultFormatter prints morpheme names only.
type MorphemeSurface struct {
	Morpheme *Morpheme
	Surface  string
}

// SingleAnalysis is one fully decomposed reading of a word: the
// dictionary entry it roots from, the literal stem text consumed, the
// ordered (morpheme, surface) pairs crossed (nominative/no-possession
// elided per spec.md §4.5), the inflectional group boundaries, and the
// resolved final part of speech. Mirrors zeyrek/rulebasedanalyzer.py's
// SingleAnalysis NamedTuple.
type SingleAnalysis struct {
	DictItem        *DictionaryItem
	Stem            string
	Suffix          string
	Morphemes       []MorphemeSurface
	GroupBoundaries []int
	Pos             PrimaryPos
}

// ParseAnalysis builds a SingleAnalysis from a terminated SearchPath.
// Mirrors RuleBasedAnalyzer.parse_analysis: Dummy compound entries
// resolve to their ref item, Nom/Pnon morphemes are dropped from the
// surfaced morpheme list, and group boundaries mark each derivation
// boundary plus the start.
func ParseAnalysis(path *SearchPath) SingleAnalysis {
	item := path.DictItem()
	resolved := item
	if item.Attrs.Has(Dummy) && item.RefItem != nil {
		resolved = item.RefItem
	}

	var morphemes []MorphemeSurface
	groupBoundaries := []int{0}
	var suffix string
	for _, st := range path.Transitions {
		m := st.Transition.To.Morpheme
		suffix += st.Surface
		if m == mNom || m == mPnon {
			continue
		}
		// A derivational morpheme starts the next inflection group, so its
		// own index is where that group begins: the boundary is recorded
		// before it joins morphemes, not after.
		if st.Transition.To.Derivative {
			groupBoundaries = append(groupBoundaries, len(morphemes))
		}
		morphemes = append(morphemes, MorphemeSurface{Morpheme: m, Surface: st.Surface})
	}

	// pos is the first POS-bearing morpheme within the last inflection
	// group, falling back to the dictionary item's own POS when that
	// group carries none, per spec.md §4.5.
	pos := resolved.Pos
	lastGroupStart := groupBoundaries[len(groupBoundaries)-1]
	for _, ms := range morphemes[lastGroupStart:] {
		if ms.Morpheme.Pos != nil {
			pos = *ms.Morpheme.Pos
			break
		}
	}

	return SingleAnalysis{
		DictItem:        resolved,
		Stem:            path.StemTr.Surface,
		Suffix:          suffix,
		Morphemes:       morphemes,
		GroupBoundaries: groupBoundaries,
		Pos:             pos,
	}
}
