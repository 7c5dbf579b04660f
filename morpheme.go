package trmorph

// Morpheme is a minimal meaning-bearing unit: a root category marker or a
// suffix. Identity is by ID. Mirrors zeyrek/morphotactics.py's Morpheme
// NamedTuple and spec.md §3.
type Morpheme struct {
	ID           string
	Name         string
	Pos          *PrimaryPos
	Derivational bool
	Informal     bool
}

func pos(p PrimaryPos) *PrimaryPos { return &p }

// The morpheme catalogue, declared once at startup like zeyrek's ~90-entry
// module-level table: one root-category marker per part of speech, the
// person/possessive/case paradigms, the tense markers, and the
// derivational suffixes the graph in morphotactics.go wires.
var (
	mNoun   = &Morpheme{ID: "Noun", Name: "Noun", Pos: pos(PosNoun)}
	mAdj    = &Morpheme{ID: "Adj", Name: "Adjective", Pos: pos(PosAdjective)}
	mVerb   = &Morpheme{ID: "Verb", Name: "Verb", Pos: pos(PosVerb)}
	mPron   = &Morpheme{ID: "Pron", Name: "Pronoun", Pos: pos(PosPronoun)}
	mAdv    = &Morpheme{ID: "Adv", Name: "Adverb", Pos: pos(PosAdverb)}
	mConj   = &Morpheme{ID: "Conj", Name: "Conjunction", Pos: pos(PosConjunction)}
	mInterj = &Morpheme{ID: "Interj", Name: "Interjection", Pos: pos(PosInterjection)}
	mNum    = &Morpheme{ID: "Num", Name: "Numeral", Pos: pos(PosNumeral)}
	mPostp  = &Morpheme{ID: "Postp", Name: "Postposition", Pos: pos(PosPostPositive)}
	mDet    = &Morpheme{ID: "Det", Name: "Determiner", Pos: pos(PosDeterminer)}
	mPunc   = &Morpheme{ID: "Punc", Name: "Punctuation", Pos: pos(PosPunctuation)}

	mA1sg = &Morpheme{ID: "A1sg", Name: "FirstPersonSingular"}
	mA2sg = &Morpheme{ID: "A2sg", Name: "SecondPersonSingular"}
	mA3sg = &Morpheme{ID: "A3sg", Name: "ThirdPersonSingular"}
	mA1pl = &Morpheme{ID: "A1pl", Name: "FirstPersonPlural"}
	mA2pl = &Morpheme{ID: "A2pl", Name: "SecondPersonPlural"}
	mA3pl = &Morpheme{ID: "A3pl", Name: "ThirdPersonPlural"}

	mPnon = &Morpheme{ID: "Pnon", Name: "NoPossession"}
	mP1sg = &Morpheme{ID: "P1sg", Name: "FirstPersonSingularPossessive"}
	mP2sg = &Morpheme{ID: "P2sg", Name: "SecondPersonSingularPossessive"}
	mP3sg = &Morpheme{ID: "P3sg", Name: "ThirdPersonSingularPossessive"}
	mP1pl = &Morpheme{ID: "P1pl", Name: "FirstPersonPluralPossessive"}
	mP2pl = &Morpheme{ID: "P2pl", Name: "SecondPersonPluralPossessive"}
	mP3pl = &Morpheme{ID: "P3pl", Name: "ThirdPersonPluralPossessive"}

	mNom = &Morpheme{ID: "Nom", Name: "Nominative"}
	mDat = &Morpheme{ID: "Dat", Name: "Dative"}
	mAcc = &Morpheme{ID: "Acc", Name: "Accusative"}
	mLoc = &Morpheme{ID: "Loc", Name: "Locative"}
	mAbl = &Morpheme{ID: "Abl", Name: "Ablative"}
	mGen = &Morpheme{ID: "Gen", Name: "Genitive"}
	mIns = &Morpheme{ID: "Ins", Name: "Instrumental"}

	mBecome = &Morpheme{ID: "Become", Name: "Become", Pos: pos(PosVerb), Derivational: true}
	mCaus   = &Morpheme{ID: "Caus", Name: "Causative", Pos: pos(PosVerb), Derivational: true}
	mAgt    = &Morpheme{ID: "Agt", Name: "Agentive", Pos: pos(PosNoun), Derivational: true}
	mAble   = &Morpheme{ID: "Able", Name: "Ability", Pos: pos(PosVerb), Derivational: true}

	mPast   = &Morpheme{ID: "Past", Name: "PastTense"}
	mAor    = &Morpheme{ID: "Aor", Name: "Aorist"}
	mFut    = &Morpheme{ID: "Fut", Name: "Future"}
	mProg1  = &Morpheme{ID: "Prog1", Name: "ProgressiveI"}
)

// catalogue lists every declared morpheme.
var catalogue = []*Morpheme{
	mNoun, mAdj, mVerb, mPron, mAdv, mConj, mInterj, mNum, mPostp, mDet, mPunc,
	mA1sg, mA2sg, mA3sg, mA1pl, mA2pl, mA3pl,
	mPnon, mP1sg, mP2sg, mP3sg, mP1pl, mP2pl, mP3pl,
	mNom, mDat, mAcc, mLoc, mAbl, mGen, mIns,
	mBecome, mCaus, mAgt, mAble,
	mPast, mAor, mFut, mProg1,
}
