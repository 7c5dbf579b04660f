package trmorph

import "strings"

// tokenKind classifies one unit of a surface template.
type tokenKind int

const (
	tokLiteral      tokenKind = iota // passed through unchanged, e.g. "l" in "lAr"
	tokVowelI                        // `I`: harmonizes to ı/i/u/ü
	tokVowelA                        // `A`: harmonizes to a/e
	tokBuffer                        // `+X` (X a consonant): included only if the preceding letter is a vowel
	tokBufferVowelI                  // `+I`: harmonized vowel, included only if the preceding letter is a consonant
	tokBufferVowelA                  // `+A`: as tokBufferVowelI but harmonizes to a/e
	tokDevoice                       // `>X`: devoiced if the preceding letter is voiceless
	tokVowelDrop                     // `~X` (LAST_VOICED): literal text; crossing forces ExpectsConsonant+CannotTerminate
	tokInvariant                     // `!X` (LAST_NOT_VOICED): literal text; crossing forces ExpectsVowel+CannotTerminate
)

// templateToken is one parsed unit of a SuffixTransition's surface template.
type templateToken struct {
	kind tokenKind
	r    rune
}

// parseTemplate tokenizes a surface template string using the sigils
// documented in spec.md §4.2: a bare `I`/`A` harmonizes, `+X` marks an
// optional buffer letter, `>X` marks a devoicing-alternating letter, `~X`
// marks a vowel-drop boundary, `!X` marks an invariant literal, anything
// else is a plain literal rune. Mirrors the surface-template handling in
// zeyrek/morphotactics.py's SurfaceTransition construction.
func parseTemplate(template string) []templateToken {
	runes := []rune(template)
	tokens := make([]templateToken, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '+', '>', '~', '!':
			if i+1 >= len(runes) {
				tokens = append(tokens, templateToken{tokLiteral, r})
				continue
			}
			i++
			next := runes[i]
			kind := map[rune]tokenKind{'+': tokBuffer, '>': tokDevoice, '~': tokVowelDrop, '!': tokInvariant}[r]
			tokens = append(tokens, classifyLetter(next, kind))
		case 'I':
			tokens = append(tokens, templateToken{tokVowelI, 0})
		case 'A':
			tokens = append(tokens, templateToken{tokVowelA, 0})
		default:
			tokens = append(tokens, templateToken{tokLiteral, r})
		}
	}
	return tokens
}

// classifyLetter builds the token for a sigil-prefixed letter. `!I`/`!A`
// stay invariant literals. `+I`/`+A` become buffer-vowel tokens, emitted
// only when the preceding letter is a consonant (the mirror image of a
// `+` consonant buffer, which emits only after a vowel) — this is what
// lets "+Im" surface as "m" after "oda" but "im" after "ev".
func classifyLetter(r rune, markerKind tokenKind) templateToken {
	if markerKind == tokInvariant {
		return templateToken{tokInvariant, r}
	}
	if markerKind == tokBuffer {
		if r == 'I' {
			return templateToken{tokBufferVowelI, r}
		}
		if r == 'A' {
			return templateToken{tokBufferVowelA, r}
		}
	}
	if r == 'I' {
		return templateToken{tokVowelI, r}
	}
	if r == 'A' {
		return templateToken{tokVowelA, r}
	}
	return templateToken{markerKind, r}
}

// resolve computes the concrete rune this token contributes given the
// attrs accumulated so far, and whether the token should be emitted at
// all (false for a buffer letter after a consonant-final stem).
func (t templateToken) resolve(attrs AttrSet) (r rune, emit bool) {
	switch t.kind {
	case tokVowelI:
		return HarmonizeI(attrs), true
	case tokVowelA:
		return HarmonizeA(attrs), true
	case tokBuffer:
		if attrs.Has(LastLetterVowel) {
			return t.r, true
		}
		return 0, false
	case tokBufferVowelI:
		if attrs.Has(LastLetterConsonant) {
			return HarmonizeI(attrs), true
		}
		return 0, false
	case tokBufferVowelA:
		if attrs.Has(LastLetterConsonant) {
			return HarmonizeA(attrs), true
		}
		return 0, false
	case tokDevoice:
		if attrs.Has(LastLetterVoiceless) {
			return Devoice(t.r), true
		}
		return t.r, true
	case tokVowelDrop, tokInvariant, tokLiteral:
		return t.r, true
	}
	return t.r, true
}

// SuffixTransition is an edge in the morphotactics graph: crossing it
// consumes a generated surface form and moves from From to To, gated by
// Condition. Mirrors zeyrek/morphotactics.py's SuffixTransition and
// spec.md §3.
type SuffixTransition struct {
	From      *MorphemeState
	To        *MorphemeState
	Template  string
	Tokens    []templateToken
	Condition Condition
}

func newSuffixTransition(from, to *MorphemeState, template string, cond Condition) *SuffixTransition {
	t := &SuffixTransition{From: from, To: to, Template: template, Tokens: parseTemplate(template)}
	t.Condition = combineWithImplicit(t.Tokens, cond)
	return t
}

// combineWithImplicit ANDs the caller's condition with the implicit
// ExpectsVowel/ExpectsConsonant requirement derived from the template's
// leading token, per spec.md §4.2: a transition starting with a bare
// consonant literal requires the predecessor to not be mid-ExpectsVowel,
// and vice versa. A buffer or harmonized-vowel leading token places no
// extra requirement since it can satisfy either environment.
func combineWithImplicit(tokens []templateToken, cond Condition) Condition {
	if len(tokens) == 0 {
		return cond
	}
	first := tokens[0]
	var implicit Condition
	switch first.kind {
	case tokLiteral, tokInvariant, tokVowelDrop:
		if isVowel(first.r) {
			implicit = Not(hasPhoneticAttribute{ExpectsConsonant})
		} else {
			implicit = Not(hasPhoneticAttribute{ExpectsVowel})
		}
	}
	if implicit == nil {
		return cond
	}
	if cond == nil {
		return implicit
	}
	return And(cond, implicit)
}

// hasSurfaceForm reports whether the transition has a non-empty template
// (false only for an epsilon transition). A template whose buffer tokens
// all resolve to empty in some environment still counts as having a
// surface form.
func (t *SuffixTransition) hasSurfaceForm() bool {
	return t.Template != ""
}

// lastTemplateTokenKind returns the kind of this transition's final
// template token, the thing that actually drives the post-crossing
// CannotTerminate/ExpectsVowel/ExpectsConsonant bookkeeping in
// searchpath.go's copy(): LAST_VOICED (`~X`, tokVowelDrop) forces the next
// suffix to start with a consonant, LAST_NOT_VOICED (`!X`, tokInvariant)
// forces it to start with a vowel. Mirrors the LAST_VOICED/LAST_NOT_VOICED
// dispatch in zeyrek/rulebasedanalyzer.py's advance().
func (t *SuffixTransition) lastTemplateTokenKind() tokenKind {
	if len(t.Tokens) == 0 {
		return tokLiteral
	}
	return t.Tokens[len(t.Tokens)-1].kind
}

// generateSurface produces the concrete surface form this transition
// contributes given the accumulated AttrSet at the From state, resolving
// harmonization, buffer-letter elision, and devoicing per token.
func generateSurface(t *SuffixTransition, attrs AttrSet) string {
	var b strings.Builder
	for _, tok := range t.Tokens {
		r, emit := tok.resolve(attrs)
		if emit {
			b.WriteRune(r)
		}
	}
	return b.String()
}
