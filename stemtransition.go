package trmorph

// StemTransition is the entry point into the morphotactics graph for one
// concrete root surface form. A DictionaryItem with phonotactic
// modifiers (Voicing, Doubling, ...) produces more than one
// StemTransition, one per surface variant the root can take before a
// suffix attaches. Mirrors zeyrek/morphotactics.py:StemTransition and
// spec.md §3/§4.3.
type StemTransition struct {
	Item    *DictionaryItem
	State   *MorphemeState
	Surface string
	Attrs   AttrSet
}

// RootStateFunc resolves the morphotactics entry state for a dictionary
// item given the AttrSet of its (possibly modified) root surface,
// implementing spec.md §4.2's root-state selector precedence rules. It is
// supplied by the morphotactics graph builder so this file stays
// independent of the concrete state set.
type RootStateFunc func(item *DictionaryItem, attrs AttrSet) *MorphemeState

// StemTransitionIndex is the map-based index over every generated
// StemTransition, mirroring zeyrek/morphotactics.py's
// StemTransitionsMapBased single_stems/multi_stems split: a surface shared
// by exactly one StemTransition lives in single, a surface shared by
// several (a collision between items or variants) lives in multi. Both are
// plain map lookups.
type StemTransitionIndex struct {
	single map[string]*StemTransition
	multi  map[string][]*StemTransition
	all    []*StemTransition
}

func newStemTransitionIndex() *StemTransitionIndex {
	return &StemTransitionIndex{
		single: make(map[string]*StemTransition),
		multi:  make(map[string][]*StemTransition),
	}
}

func (idx *StemTransitionIndex) add(st *StemTransition) {
	idx.all = append(idx.all, st)
	if existing, ok := idx.single[st.Surface]; ok {
		delete(idx.single, st.Surface)
		idx.multi[st.Surface] = []*StemTransition{existing, st}
		return
	}
	if group, ok := idx.multi[st.Surface]; ok {
		idx.multi[st.Surface] = append(group, st)
		return
	}
	idx.single[st.Surface] = st
}

// PrefixMatches returns every StemTransition whose Surface is a prefix of
// word, walking word rune by rune and accumulating candidates at each
// step. Mirrors StemTransitionsMapBased.prefix_matches.
func (idx *StemTransitionIndex) PrefixMatches(word string) []*StemTransition {
	runes := []rune(word)
	var matches []*StemTransition
	for end := 1; end <= len(runes); end++ {
		prefix := string(runes[:end])
		if st, ok := idx.single[prefix]; ok {
			matches = append(matches, st)
		}
		matches = append(matches, idx.multi[prefix]...)
	}
	return matches
}

// BuildStemTransitionIndex generates every StemTransition for lex's items
// and indexes them. rootState resolves each variant's entry state.
func BuildStemTransitionIndex(lex *RootLexicon, rootState RootStateFunc) *StemTransitionIndex {
	idx := newStemTransitionIndex()
	for _, item := range lex.Items() {
		for _, st := range generateStemTransitions(item, rootState) {
			idx.add(st)
		}
	}
	return idx
}

// specialRootVariants hand-tailors the canonical/modified surface pair for
// the small closed set of lexical items whose oblique stem isn't produced
// by a general phonotactic rule, mirroring
// zeyrek/morphotactics.py:handle_special_roots and spec.md §4.3's named
// special-root table. Each entry's plain surface (the dictionary root)
// gets PhoneticAttribute.UnModifiedPronoun; each listed alternate gets
// ModifiedPronoun, per spec.md §4.3 ("Flags UnModifiedPronoun/
// ModifiedPronoun distinguish them").
var specialRootVariants = map[string][]string{
	// Demonstrative pronouns: n-inserting oblique root.
	"bu": {"bun"},
	"şu": {"şun"},
	"o":  {"on"},
	// Personal pronouns ben/sen: oblique root voices/backs the vowel.
	"ben": {"ban"},
	"sen": {"san"},
	// Irregular verb roots demek/yemek: most suffixes attach to a
	// vowel-raised root (de->di, ye->yi) rather than the citation root.
	"demek": {"di"},
	"yemek": {"yi"},
	// Directional/locative nouns: a colloquial vowel-dropped oblique root
	// ("içerde" alongside "içeride") coexists with the unmodified one.
	"içeri":  {"içer"},
	"dışarı": {"dışar"},
	"yukarı": {"yukar"},
	"şura":   {"şur"},
	"bura":   {"bur"},
	"ora":    {"or"},
	"ileri":  {"iler"},
	// Quantifier pronouns: the bare quantity adjective doubles as the
	// oblique root (çoğu/çok, öbürü/öbür, birçoğu/birçok, birbiri/bir).
	"çoğu":    {"çok"},
	"öbürü":   {"öbür"},
	"birçoğu": {"birçok"},
	"birbiri": {"bir"},
}

// generateStemTransitions expands one DictionaryItem into its plain and
// phonotactically-modified surface variants. Mirrors
// StemTransitionsMapBased.generate_transitions /
// generate_modified_root_nodes.
func generateStemTransitions(item *DictionaryItem, rootState RootStateFunc) []*StemTransition {
	root := item.Root
	baseAttrs := ComputeAttrs(root, AttrSet(0))

	if variants, ok := specialRootVariants[item.Lemma]; ok {
		plainAttrs := baseAttrs.Add(UnModifiedPronoun)
		plain := &StemTransition{Item: item, Surface: root, Attrs: plainAttrs, State: rootState(item, plainAttrs)}
		out := []*StemTransition{plain}
		for _, modified := range variants {
			attrs := ComputeAttrs(modified, AttrSet(0)).Add(ModifiedPronoun)
			out = append(out, &StemTransition{Item: item, Surface: modified, Attrs: attrs, State: rootState(item, attrs)})
		}
		return out
	}

	plain := &StemTransition{Item: item, Surface: root, Attrs: baseAttrs}
	plain.State = rootState(item, baseAttrs)
	out := []*StemTransition{plain}

	if item.Attrs.Has(NoRootMutation) {
		return out
	}

	// addVariant appends a phonotactically-modified stem transition,
	// marking it ExpectsVowel+CannotTerminate per spec.md §4.3 so the
	// search only continues this variant in front of a vowel-initial
	// suffix.
	hasVariant := false
	addVariant := func(surface string, attrs AttrSet) {
		attrs = attrs.Add(ExpectsVowel).Add(CannotTerminate)
		out = append(out, &StemTransition{Item: item, Surface: surface, Attrs: attrs, State: rootState(item, attrs)})
		hasVariant = true
	}

	if item.Attrs.Has(Voicing) {
		if modified, ok := applyVoicing(root); ok {
			addVariant(modified, ComputeAttrs(modified, AttrSet(0)))
		}
	}
	if item.Attrs.Has(Doubling) {
		modified := applyDoubling(root)
		addVariant(modified, ComputeAttrs(modified, AttrSet(0)))
	}
	if item.Attrs.Has(LastVowelDrop) {
		if modified, ok := applyLastVowelDrop(root); ok {
			addVariant(modified, ComputeAttrs(modified, AttrSet(0)))
		}
	}
	if item.Attrs.Has(InverseHarmony) {
		attrs := baseAttrs
		if attrs.Has(LastVowelBack) {
			attrs = attrs.Discard(LastVowelBack).Add(LastVowelFrontal)
		} else {
			attrs = attrs.Discard(LastVowelFrontal).Add(LastVowelBack)
		}
		if attrs != baseAttrs {
			addVariant(root, attrs)
		}
	}
	if item.Attrs.Has(ProgressiveVowelDrop) {
		if modified, ok := applyProgressiveVowelDrop(root); ok {
			addVariant(modified, ComputeAttrs(modified, AttrSet(0)).Add(LastLetterDropped))
		}
	}
	if item.Attrs.HasAny([]RootAttribute{CompoundP3sg, CompoundP3sgRoot}) {
		if modified := root + compoundPossessiveSuffix(root); modified != root {
			addVariant(modified, ComputeAttrs(modified, AttrSet(0)))
		}
	}

	if hasVariant {
		plain.Attrs = plain.Attrs.Add(ExpectsConsonant)
		plain.State = rootState(item, plain.Attrs)
	}
	return out
}

// compoundPossessiveSuffix returns the fused third-person-singular
// possessive marker ("+sI") a CompoundP3sg/CompoundP3sgRoot-flagged
// compound noun carries implicitly in its citation form, e.g.
// "zeytinyağ" -> "zeytinyağı". Mirrors the fixed "+sI" fusion
// zeyrek/lexicon.py applies when expanding a compound's Roots field.
func compoundPossessiveSuffix(root string) string {
	attrs := ComputeAttrs(root, AttrSet(0))
	i := HarmonizeI(attrs)
	if attrs.Has(LastLetterVowel) {
		return "s" + string(i)
	}
	return string(i)
}

// applyVoicing voices the root's final consonant: ç->c, k->ğ (or nk->ng
// for the "nk" special case), p->b, t->d. Mirrors
// generate_modified_root_nodes's Voicing branch.
func applyVoicing(root string) (string, bool) {
	runes := []rune(root)
	if len(runes) == 0 {
		return "", false
	}
	last := runes[len(runes)-1]
	voiced := Voice(last)
	if voiced == last {
		return "", false
	}
	if last == 'k' && len(runes) >= 2 && runes[len(runes)-2] == 'n' {
		voiced = 'g'
	}
	runes[len(runes)-1] = voiced
	return string(runes), true
}

// applyDoubling duplicates the root's final consonant (e.g. "hat" ->
// "hatt"), surfacing before a vowel-initial suffix.
func applyDoubling(root string) string {
	runes := []rune(root)
	if len(runes) == 0 {
		return root
	}
	last := runes[len(runes)-1]
	return root + string(last)
}

// applyLastVowelDrop removes the root's final vowel, or the vowel before
// a final consonant, producing e.g. "ağız" -> "ağz".
func applyLastVowelDrop(root string) (string, bool) {
	runes := []rune(root)
	for i := len(runes) - 1; i >= 0; i-- {
		if isVowel(runes[i]) {
			return string(append(append([]rune{}, runes[:i]...), runes[i+1:]...)), true
		}
	}
	return "", false
}

// applyProgressiveVowelDrop removes the root's final letter outright,
// used for a small set of roots whose final vowel drops before a
// vowel-initial suffix (e.g. "başla" -> "başl").
func applyProgressiveVowelDrop(root string) (string, bool) {
	runes := []rune(root)
	if len(runes) == 0 {
		return "", false
	}
	return string(runes[:len(runes)-1]), true
}
