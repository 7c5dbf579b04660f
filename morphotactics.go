package trmorph

// TurkishMorphotactics is the assembled graph of MorphemeStates and
// SuffixTransitions every analysis walks. Built once in
// NewTurkishMorphotactics and never mutated afterward (spec.md §5).
// Mirrors the construction style of zeyrek/morphotactics.py's
// TurkishMorphotactics.__init__, which wires states as literal
// graph-building code rather than data tables: a noun paradigm (full
// case and possessive sets), a verb paradigm (finite tenses crossed with
// full person agreement, plus the Become/Caus/Agt/Able derivation
// chain), a pronoun paradigm (demonstrative, personal, and quantifier
// roots sharing one inflection chain), and a bare-root state per
// remaining part of speech (Adverb, Conjunction, Interjection, Numeral,
// Postposition, Determiner, Punctuation) for words that take no
// suffixation at all.
type TurkishMorphotactics struct {
	states map[string]*MorphemeState

	nounRoot_S         *MorphemeState
	nounProper_S       *MorphemeState
	nounAbbrv_S        *MorphemeState
	nounNoSuffix_S     *MorphemeState
	nounCompoundRoot_S *MorphemeState
	nounA3sg_S         *MorphemeState
	nounA3pl_S         *MorphemeState
	nounPnon_S         *MorphemeState
	nounP1sg_S         *MorphemeState
	nounP2sg_S         *MorphemeState
	nounP3sg_S         *MorphemeState
	nounP1pl_S         *MorphemeState
	nounP2pl_S         *MorphemeState
	nounP3pl_S         *MorphemeState
	nounNom_ST         *MorphemeState
	nounDat_ST         *MorphemeState
	nounAcc_ST         *MorphemeState
	nounLoc_ST         *MorphemeState
	nounAbl_ST         *MorphemeState
	nounGen_ST         *MorphemeState
	nounIns_ST         *MorphemeState

	adjRoot_ST *MorphemeState

	verbRoot_S             *MorphemeState
	verbRoot_VowelDrop_S   *MorphemeState
	vImplicitRecipRoot_S   *MorphemeState
	vImplicitReflexRoot_S  *MorphemeState
	vPast_S                *MorphemeState
	vAorist_S              *MorphemeState
	vFuture_S              *MorphemeState
	vProg1_S               *MorphemeState
	vAble_S                *MorphemeState
	vA1sg_ST               *MorphemeState
	vA2sg_ST               *MorphemeState
	vA3sg_ST               *MorphemeState
	vA1pl_ST               *MorphemeState
	vA2pl_ST               *MorphemeState
	vA3pl_ST               *MorphemeState
	vBecome_S              *MorphemeState
	vCaus_S                *MorphemeState

	nAgt_ST *MorphemeState

	pronDemonsRoot_S *MorphemeState
	pronPersRoot_S   *MorphemeState
	pronA3sg_S       *MorphemeState
	pronPnon_S       *MorphemeState
	pronNom_ST       *MorphemeState
	pronDat_ST       *MorphemeState
	pronAcc_ST       *MorphemeState
	pronLoc_ST       *MorphemeState
	pronAbl_ST       *MorphemeState
	pronGen_ST       *MorphemeState

	advRoot_ST    *MorphemeState
	conjRoot_ST   *MorphemeState
	interjRoot_ST *MorphemeState
	numRoot_ST    *MorphemeState
	postpRoot_ST  *MorphemeState
	detRoot_ST    *MorphemeState
	puncRoot_ST   *MorphemeState

	// namedRootStateOverrides resolves a handful of lexical items straight
	// to a dedicated entry state by dictionary id, the highest-precedence
	// rule in spec.md §4.2's root-state selector.
	namedRootStateOverrides map[string]*MorphemeState
}

// NewTurkishMorphotactics builds and wires the graph.
func NewTurkishMorphotactics() *TurkishMorphotactics {
	m := &TurkishMorphotactics{states: make(map[string]*MorphemeState)}

	m.nounRoot_S = m.declare("noun_S", mNoun, false, false, true)
	m.nounProper_S = m.declare("nounProper_S", mNoun, false, false, true)
	m.nounAbbrv_S = m.declare("nounAbbrv_S", mNoun, false, false, true)
	m.nounNoSuffix_S = m.declare("nounNoSuffix_S", mNoun, true, false, true)
	m.nounCompoundRoot_S = m.declare("nounCompoundRoot_S", mNoun, false, false, true)
	m.nounA3sg_S = m.declare("nounA3sg_S", mA3sg, false, false, false)
	m.nounA3pl_S = m.declare("nounA3pl_S", mA3pl, false, false, false)
	m.nounPnon_S = m.declare("nounPnon_S", mPnon, false, false, false)
	m.nounP1sg_S = m.declare("nounP1sg_S", mP1sg, false, false, false)
	m.nounP2sg_S = m.declare("nounP2sg_S", mP2sg, false, false, false)
	m.nounP3sg_S = m.declare("nounP3sg_S", mP3sg, false, false, false)
	m.nounP1pl_S = m.declare("nounP1pl_S", mP1pl, false, false, false)
	m.nounP2pl_S = m.declare("nounP2pl_S", mP2pl, false, false, false)
	m.nounP3pl_S = m.declare("nounP3pl_S", mP3pl, false, false, false)
	m.nounNom_ST = m.declare("nounNom_ST", mNom, true, false, false)
	m.nounDat_ST = m.declare("nounDat_ST", mDat, true, false, false)
	m.nounAcc_ST = m.declare("nounAcc_ST", mAcc, true, false, false)
	m.nounLoc_ST = m.declare("nounLoc_ST", mLoc, true, false, false)
	m.nounAbl_ST = m.declare("nounAbl_ST", mAbl, true, false, false)
	m.nounGen_ST = m.declare("nounGen_ST", mGen, true, false, false)
	m.nounIns_ST = m.declare("nounIns_ST", mIns, true, false, false)

	m.adjRoot_ST = m.declare("adj_ST", mAdj, true, false, true)

	m.verbRoot_S = m.declare("verb_S", mVerb, false, false, true)
	m.verbRoot_VowelDrop_S = m.declare("verbVowelDrop_S", mVerb, false, false, true)
	m.vImplicitRecipRoot_S = m.declare("vImplicitRecipRoot_S", mVerb, false, false, true)
	m.vImplicitReflexRoot_S = m.declare("vImplicitReflexRoot_S", mVerb, false, false, true)
	m.vPast_S = m.declare("vPast_S", mPast, false, false, false)
	m.vAorist_S = m.declare("vAorist_S", mAor, false, false, false)
	m.vFuture_S = m.declare("vFuture_S", mFut, false, false, false)
	m.vProg1_S = m.declare("vProg1_S", mProg1, false, false, false)
	m.vAble_S = m.declare("vAble_S", mAble, false, true, false)
	m.vA1sg_ST = m.declare("vA1sg_ST", mA1sg, true, false, false)
	m.vA2sg_ST = m.declare("vA2sg_ST", mA2sg, true, false, false)
	m.vA3sg_ST = m.declare("vA3sg_ST", mA3sg, true, false, false)
	m.vA1pl_ST = m.declare("vA1pl_ST", mA1pl, true, false, false)
	m.vA2pl_ST = m.declare("vA2pl_ST", mA2pl, true, false, false)
	m.vA3pl_ST = m.declare("vA3pl_ST", mA3pl, true, false, false)
	m.vBecome_S = m.declare("vBecome_S", mBecome, false, true, false)
	m.vCaus_S = m.declare("vCaus_S", mCaus, false, true, false)

	m.nAgt_ST = m.declare("nAgt_ST", mAgt, true, true, false)

	m.pronDemonsRoot_S = m.declare("pronDemons_S", mPron, false, false, true)
	m.pronPersRoot_S = m.declare("pronPers_S", mPron, false, false, true)
	m.pronA3sg_S = m.declare("pronA3sg_S", mA3sg, false, false, false)
	m.pronPnon_S = m.declare("pronPnon_S", mPnon, false, false, false)
	m.pronNom_ST = m.declare("pronNom_ST", mNom, true, false, false)
	m.pronDat_ST = m.declare("pronDat_ST", mDat, true, false, false)
	m.pronAcc_ST = m.declare("pronAcc_ST", mAcc, true, false, false)
	m.pronLoc_ST = m.declare("pronLoc_ST", mLoc, true, false, false)
	m.pronAbl_ST = m.declare("pronAbl_ST", mAbl, true, false, false)
	m.pronGen_ST = m.declare("pronGen_ST", mGen, true, false, false)

	m.advRoot_ST = m.declare("adv_ST", mAdv, true, false, true)
	m.conjRoot_ST = m.declare("conj_ST", mConj, true, false, true)
	m.interjRoot_ST = m.declare("interj_ST", mInterj, true, false, true)
	m.numRoot_ST = m.declare("num_ST", mNum, true, false, true)
	m.postpRoot_ST = m.declare("postp_ST", mPostp, true, false, true)
	m.detRoot_ST = m.declare("det_ST", mDet, true, false, true)
	m.puncRoot_ST = m.declare("punc_ST", mPunc, true, false, true)

	m.wireNoun()
	m.wireAdjective()
	m.wireVerb()
	m.wirePronoun()

	m.namedRootStateOverrides = map[string]*MorphemeState{
		"imek_Verb": m.verbRoot_S,
	}

	return m
}

func (m *TurkishMorphotactics) declare(id string, morph *Morpheme, terminal, derivative, posRoot bool) *MorphemeState {
	s := newState(id, morph, terminal, derivative, posRoot)
	m.states[id] = s
	return s
}

// State looks up a declared MorphemeState by id, for tests and tooling.
func (m *TurkishMorphotactics) State(id string) (*MorphemeState, bool) {
	s, ok := m.states[id]
	return s, ok
}

func (m *TurkishMorphotactics) wireNoun() {
	for _, root := range []*MorphemeState{m.nounRoot_S, m.nounProper_S, m.nounAbbrv_S, m.nounCompoundRoot_S} {
		root.addEmpty(m.nounA3sg_S, nil)
		root.add(m.nounA3pl_S, "lAr", nil)
	}

	notCompoundRoot := Not(HasRootAttribute(CompoundP3sgRoot))
	m.nounA3sg_S.addEmpty(m.nounPnon_S, nil)
	m.nounA3sg_S.add(m.nounP1sg_S, "+Im", notCompoundRoot)
	m.nounA3sg_S.add(m.nounP2sg_S, "+In", notCompoundRoot)
	m.nounA3sg_S.add(m.nounP3sg_S, "+sI", notCompoundRoot)
	m.nounA3sg_S.add(m.nounP1pl_S, "+ImIz", notCompoundRoot)
	m.nounA3sg_S.add(m.nounP2pl_S, "+InIz", notCompoundRoot)
	m.nounA3sg_S.add(m.nounP3pl_S, "lArI", notCompoundRoot)
	m.nounA3pl_S.addEmpty(m.nounPnon_S, nil)
	m.nounA3pl_S.add(m.nounP1pl_S, "+ImIz", nil)
	m.nounA3pl_S.add(m.nounP2pl_S, "+InIz", nil)
	m.nounA3pl_S.add(m.nounP3pl_S, "I", nil)

	for _, from := range []*MorphemeState{
		m.nounPnon_S, m.nounP1sg_S, m.nounP2sg_S, m.nounP3sg_S,
		m.nounP1pl_S, m.nounP2pl_S, m.nounP3pl_S,
	} {
		from.addEmpty(m.nounNom_ST, nil)
		from.add(m.nounDat_ST, "+yA", nil)
		from.add(m.nounAcc_ST, "+yI", nil)
		from.add(m.nounLoc_ST, "dA", nil)
		from.add(m.nounAbl_ST, "dAn", nil)
		from.add(m.nounGen_ST, "+nIn", nil)
		from.add(m.nounIns_ST, "+ylA", nil)
	}

	// Agentive nominalizer: oku+yucu (Verb -> Noun), wired from the verb
	// side in wireVerb since its From state is verbRoot_S.
	_ = m.nAgt_ST
}

func (m *TurkishMorphotactics) wireAdjective() {
	m.adjRoot_ST.add(m.vBecome_S, "lAş", nil)
}

// wireFiniteForms attaches the shared tense/agreement paradigm to any
// verb-category root: the definite past (distinct person suffixes),
// the lexically-flagged aorist (AoristI/AoristA select the allomorph),
// the future, the first progressive, ability, and the agentive
// nominalizer. The Caus derivation is wired separately in wireVerb.
func (m *TurkishMorphotactics) wireFiniteForms(from *MorphemeState) {
	from.add(m.vPast_S, ">dI", nil)
	from.add(m.vAorist_S, "+Ir", HasRootAttribute(AoristI))
	from.add(m.vAorist_S, "+Ar", HasRootAttribute(AoristA))
	from.add(m.vFuture_S, "+yAcAk", nil)
	from.add(m.vProg1_S, "+Iyor", nil)
	from.add(m.vAble_S, "+yAbil", nil)
	from.add(m.nAgt_ST, "+yIcI", nil)
}

func (m *TurkishMorphotactics) wireVerb() {
	m.wireFiniteForms(m.verbRoot_S)
	m.wireFiniteForms(m.verbRoot_VowelDrop_S)
	m.wireFiniteForms(m.vImplicitRecipRoot_S)
	m.wireFiniteForms(m.vImplicitReflexRoot_S)

	// Causative chains off Become (and off a bare verb root) before the
	// finite/Agt fan-out, e.g. beyaz+laş[Become]+tır[Caus]+ıcı[Agt].
	m.verbRoot_S.add(m.vCaus_S, ">dIr", nil)
	m.vBecome_S.add(m.vCaus_S, ">dIr", nil)

	m.wirePastPersons(m.vPast_S)
	m.wirePresentPersons(m.vAorist_S)
	m.wirePresentPersons(m.vFuture_S)
	m.wirePresentPersons(m.vProg1_S)

	m.vAble_S.add(m.vPast_S, ">dI", nil)
	m.vAble_S.add(m.vAorist_S, "+Ir", HasRootAttribute(AoristI))
	m.vAble_S.add(m.vAorist_S, "+Ar", HasRootAttribute(AoristA))
	m.vAble_S.add(m.vFuture_S, "+yAcAk", nil)
	m.vAble_S.add(m.vProg1_S, "+Iyor", nil)

	// vBecome_S/vCaus_S behave like fresh verb roots: they feed the same
	// conjugation states as verbRoot_S.
	m.wireFiniteForms(m.vBecome_S)
	m.wireFiniteForms(m.vCaus_S)
}

// wirePastPersons wires the definite-past person suffix set (-m,-n,Ø,-k,
// -nIz,-lAr), distinct from every other finite tense's person set.
func (m *TurkishMorphotactics) wirePastPersons(from *MorphemeState) {
	from.add(m.vA1sg_ST, "+m", nil)
	from.add(m.vA2sg_ST, "+n", nil)
	from.addEmpty(m.vA3sg_ST, nil)
	from.add(m.vA1pl_ST, "+k", nil)
	from.add(m.vA2pl_ST, "+nIz", nil)
	from.add(m.vA3pl_ST, "lAr", nil)
}

// wirePresentPersons wires the aorist/future/progressive person suffix
// set (-Im,sIn,Ø,-yIz,sInIz,-lAr).
func (m *TurkishMorphotactics) wirePresentPersons(from *MorphemeState) {
	from.add(m.vA1sg_ST, "+Im", nil)
	from.add(m.vA2sg_ST, "sIn", nil)
	from.addEmpty(m.vA3sg_ST, nil)
	from.add(m.vA1pl_ST, "+yIz", nil)
	from.add(m.vA2pl_ST, "sInIz", nil)
	from.add(m.vA3pl_ST, "lAr", nil)
}

func (m *TurkishMorphotactics) wirePronoun() {
	for _, root := range []*MorphemeState{m.pronDemonsRoot_S, m.pronPersRoot_S} {
		root.addEmpty(m.pronA3sg_S, nil)
	}
	m.pronA3sg_S.addEmpty(m.pronPnon_S, nil)
	m.pronPnon_S.addEmpty(m.pronNom_ST, nil)
	m.pronPnon_S.add(m.pronDat_ST, "+yA", nil)
	m.pronPnon_S.add(m.pronAcc_ST, "+yI", nil)
	m.pronPnon_S.add(m.pronLoc_ST, "dA", nil)
	m.pronPnon_S.add(m.pronAbl_ST, "dAn", nil)
	m.pronPnon_S.add(m.pronGen_ST, "+nIn", nil)
}

// GetRootState implements RootStateFunc: it resolves the entry state for a
// dictionary item's (possibly phonotactically modified) root surface, per
// spec.md §4.2's root-state selector precedence: named id overrides
// first, then the LastLetterDropped/Reciprocal/Reflexive special cases,
// then PrimaryPos (refined by SecondaryPos for nouns/pronouns).
// Demonstrative/personal/quantifier pronoun entries with an oblique
// variant share a single entry state across their plain and modified
// surfaces; the tail/surface matching performed during search (not this
// selector) is what keeps the variants from cross-contaminating analyses.
func (m *TurkishMorphotactics) GetRootState(item *DictionaryItem, attrs AttrSet) *MorphemeState {
	if s, ok := m.namedRootStateOverrides[item.ID]; ok {
		return s
	}
	if attrs.Has(LastLetterDropped) {
		return m.verbRoot_VowelDrop_S
	}
	if item.Attrs.Has(Reciprocal) {
		return m.vImplicitRecipRoot_S
	}
	if item.Attrs.Has(Reflexive) {
		return m.vImplicitReflexRoot_S
	}

	switch item.Pos {
	case PosVerb:
		return m.verbRoot_S
	case PosAdjective:
		return m.adjRoot_ST
	case PosPronoun:
		switch item.SecondaryPos {
		case SecPersonal:
			return m.pronPersRoot_S
		default:
			return m.pronDemonsRoot_S
		}
	case PosAdverb:
		return m.advRoot_ST
	case PosConjunction:
		return m.conjRoot_ST
	case PosInterjection:
		return m.interjRoot_ST
	case PosNumeral:
		return m.numRoot_ST
	case PosPostPositive:
		return m.postpRoot_ST
	case PosDeterminer:
		return m.detRoot_ST
	case PosPunctuation:
		return m.puncRoot_ST
	default:
		switch item.SecondaryPos {
		case SecProperNoun:
			return m.nounProper_S
		case SecAbbreviation:
			return m.nounAbbrv_S
		case SecEmoticon, SecRomanNumeral:
			return m.nounNoSuffix_S
		}
		if item.Attrs.Has(CompoundP3sgRoot) {
			return m.nounCompoundRoot_S
		}
		return m.nounRoot_S
	}
}
