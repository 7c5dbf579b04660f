package trmorph

import "strings"

// PhoneticAttribute is a closed enum over the phonetic properties of an
// accumulated surface form. Represented as a bitset for O(1) membership
// tests, per the "AttrSet / RootAttribute sets" design note.
// Mirrors zeyrek/attributes.py's PhoneticAttribute enum.
type PhoneticAttribute uint32

const (
	LastVowelFrontal PhoneticAttribute = 1 << iota
	LastVowelBack
	LastVowelRounded
	LastVowelUnrounded
	LastLetterVowel
	LastLetterConsonant
	LastLetterVoiceless
	LastLetterVoicelessStop
	LastLetterVoiced
	LastLetterDropped
	FirstLetterVowel
	FirstLetterConsonant
	HasNoVowel
	ExpectsVowel
	ExpectsConsonant
	CannotTerminate
	ModifiedPronoun
	UnModifiedPronoun
)

// AttrSet is a set of PhoneticAttribute values.
type AttrSet PhoneticAttribute

func (s AttrSet) Has(a PhoneticAttribute) bool { return PhoneticAttribute(s)&a != 0 }
func (s AttrSet) Add(a PhoneticAttribute) AttrSet {
	return AttrSet(PhoneticAttribute(s) | a)
}
func (s AttrSet) Discard(a PhoneticAttribute) AttrSet {
	return AttrSet(PhoneticAttribute(s) &^ a)
}

// Turkish alphabet classification tables. Runes, not bytes: ı, ö, ü, ğ, ş, ç
// are multi-byte in UTF-8, so every classification below works over
// []rune, matching the teacher's preference for table-driven character
// classification (normalize.go's replacer tables) generalized to runes.
const (
	vowelsBack      = "aıou"
	vowelsFrontal   = "eiöü"
	vowelsRounded   = "oöuü"
	vowelsUnrounded = "aeıi"
	voicelessStops  = "çkpt"
	voicelessAll    = "çfhkpsşt"
)

func isVowel(r rune) bool {
	return strings.ContainsRune(vowelsBack+vowelsFrontal, r)
}

func isVoicelessConsonant(r rune) bool {
	return strings.ContainsRune(voicelessAll, r)
}

func isVoicelessStop(r rune) bool {
	return strings.ContainsRune(voicelessStops, r)
}

// lastVowel scans s backward and returns the last vowel rune encountered,
// or 0.
func lastVowel(s string) rune {
	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		if isVowel(runes[i]) {
			return runes[i]
		}
	}
	return 0
}

func containsVowel(s string) bool {
	return lastVowel(s) != 0
}

func vowelCount(s string) int {
	n := 0
	for _, r := range s {
		if isVowel(r) {
			n++
		}
	}
	return n
}

// ComputeAttrs derives the PhoneticAttribute set for the accumulated surface
// `word`, given the predecessor's AttrSet (used when `word` has no vowel of
// its own, e.g. a single consonant suffix). Mirrors
// zeyrek/attributes.py:calculate_phonetic_attributes and spec.md §4.1.
func ComputeAttrs(word string, predecessor AttrSet) AttrSet {
	if word == "" {
		return predecessor
	}
	runes := []rune(word)
	var attrs AttrSet
	last := runes[len(runes)-1]
	if isVowel(last) {
		attrs = attrs.Add(LastLetterVowel)
	} else {
		attrs = attrs.Add(LastLetterConsonant)
		if isVoicelessConsonant(last) {
			attrs = attrs.Add(LastLetterVoiceless)
		}
		if isVoicelessStop(last) {
			attrs = attrs.Add(LastLetterVoicelessStop)
		}
	}
	first := runes[0]
	if isVowel(first) {
		attrs = attrs.Add(FirstLetterVowel)
	} else {
		attrs = attrs.Add(FirstLetterConsonant)
	}

	lv := lastVowel(word)
	if lv == 0 {
		// No vowel anywhere: inherit predecessor, force consonant-only attrs.
		attrs = predecessor
		attrs = attrs.Add(LastLetterConsonant).Add(FirstLetterConsonant).Add(HasNoVowel)
		attrs = attrs.Discard(LastLetterVowel).Discard(ExpectsConsonant)
		return attrs
	}
	if strings.ContainsRune(vowelsBack, lv) {
		attrs = attrs.Add(LastVowelBack)
	} else {
		attrs = attrs.Add(LastVowelFrontal)
	}
	if strings.ContainsRune(vowelsRounded, lv) {
		attrs = attrs.Add(LastVowelRounded)
	} else {
		attrs = attrs.Add(LastVowelUnrounded)
	}
	return attrs
}

// Voice maps a voiceless stop to its voiced counterpart: ç→c, k→ğ, p→b,
// t→d. Mirrors zeyrek/tr.py:voice.
func Voice(r rune) rune {
	switch r {
	case 'ç':
		return 'c'
	case 'k':
		return 'ğ'
	case 'p':
		return 'b'
	case 't':
		return 'd'
	}
	return r
}

// Devoice maps a voiced consonant to its voiceless counterpart.
// Mirrors zeyrek/tr.py:devoice.
func Devoice(r rune) rune {
	switch r {
	case 'b':
		return 'p'
	case 'c':
		return 'ç'
	case 'd':
		return 't'
	case 'g':
		return 'k'
	case 'ğ':
		return 'k'
	}
	return r
}

// circumflexReplacer normalizes the three Turkish circumflexed vowels to
// their plain counterparts, mirroring zeyrek/tr.py:normalize_circumflex and
// the teacher's atoneReplacer table style (normalize.go, adapted here for
// Turkish instead of Latin vowel-quantity marks).
var circumflexReplacer = strings.NewReplacer(
	"â", "a", "Â", "A",
	"î", "i", "Î", "I",
	"û", "u", "Û", "U",
)

// NormalizeCircumflex maps â/î/û (and uppercase) to a/i/u.
func NormalizeCircumflex(s string) string {
	return circumflexReplacer.Replace(s)
}

// HarmonizeI resolves the `I` template placeholder against the last vowel
// recorded in attrs: {back,unrounded}->ı {back,rounded}->u
// {frontal,unrounded}->i {frontal,rounded}->ü.
func HarmonizeI(attrs AttrSet) rune {
	switch {
	case attrs.Has(LastVowelBack) && attrs.Has(LastVowelRounded):
		return 'u'
	case attrs.Has(LastVowelBack):
		return 'ı'
	case attrs.Has(LastVowelRounded):
		return 'ü'
	default:
		return 'i'
	}
}

// HarmonizeA resolves the `A` template placeholder: back->a frontal->e.
func HarmonizeA(attrs AttrSet) rune {
	if attrs.Has(LastVowelBack) {
		return 'a'
	}
	return 'e'
}
