package trmorph

// PrimaryPos is the primary part-of-speech of a dictionary item or morpheme.
// Mirrors zeyrek/attributes.py:PrimaryPos.
type PrimaryPos string

const (
	PosNoun         PrimaryPos = "Noun"
	PosAdjective    PrimaryPos = "Adj"
	PosVerb         PrimaryPos = "Verb"
	PosPronoun      PrimaryPos = "Pron"
	PosAdverb       PrimaryPos = "Adv"
	PosConjunction  PrimaryPos = "Conj"
	PosInterjection PrimaryPos = "Interj"
	PosPunctuation  PrimaryPos = "Punc"
	PosQuestion     PrimaryPos = "Ques"
	PosPostPositive PrimaryPos = "Postp"
	PosDeterminer   PrimaryPos = "Det"
	PosNumeral      PrimaryPos = "Num"
	PosDuplicator   PrimaryPos = "Dup"
	PosUnknown      PrimaryPos = "Unk"
)

// SecondaryPos refines PrimaryPos, e.g. Noun+ProperNoun.
// Mirrors zeyrek/attributes.py:SecondaryPos.
type SecondaryPos string

const (
	SecNone         SecondaryPos = ""
	SecProperNoun   SecondaryPos = "ProperNoun"
	SecAbbreviation SecondaryPos = "Abbreviation"
	SecEmoticon     SecondaryPos = "Emoticon"
	SecRomanNumeral SecondaryPos = "RomanNumeral"
	SecDemons       SecondaryPos = "Demons"
	SecPersonal     SecondaryPos = "Pers"
	SecQuant        SecondaryPos = "Quant"
	SecReflex       SecondaryPos = "Reflex"
	SecQues         SecondaryPos = "Ques"
	SecCardinal     SecondaryPos = "Card"
)

// RootAttribute is a closed enum of lexical/phonotactic flags on a
// DictionaryItem. Represented as a bitset (~30 values per spec.md §3),
// mirroring zeyrek/attributes.py:RootAttribute.
type RootAttribute uint64

const (
	Voicing RootAttribute = 1 << iota
	NoVoicing
	Doubling
	LastVowelDrop
	ProgressiveVowelDrop
	InverseHarmony
	PassiveIn
	CausativeT
	AoristI
	AoristA
	CompoundP3sg
	CompoundP3sgRoot
	ImplicitPlural
	ImplicitP1sg
	ImplicitP2sg
	FamilyMember
	NoQuote
	Dummy
	Reflexive
	Reciprocal
	ImplicitDative
	PronunciationGuessed
	NoRootMutation
	ExtendedCompoundRoot
	Runtime
	Unknown
)

// RootAttrSet is a set of RootAttribute values.
type RootAttrSet uint64

func (s RootAttrSet) Has(a RootAttribute) bool  { return uint64(s)&uint64(a) != 0 }
func (s RootAttrSet) HasAny(as []RootAttribute) bool {
	for _, a := range as {
		if s.Has(a) {
			return true
		}
	}
	return false
}
func (s RootAttrSet) Add(a RootAttribute) RootAttrSet { return RootAttrSet(uint64(s) | uint64(a)) }
