package trmorph

import (
	"fmt"
	"strconv"
	"strings"
)

// DictionaryItem is one lexicon entry: a lemma plus the part-of-speech and
// phonotactic attributes that drive stem generation and graph entry.
// Mirrors zeyrek/lexicon.py:DictionaryItem and spec.md §3.
type DictionaryItem struct {
	ID           string
	Lemma        string
	Root         string
	Pos          PrimaryPos
	SecondaryPos SecondaryPos
	Attrs        RootAttrSet
	Index        int
	RefItemID    string
	RefItem      *DictionaryItem
}

func (d *DictionaryItem) String() string { return d.ID }

// RootLexicon is the loaded, indexed set of DictionaryItems. It is mutated
// only while loading and inside AddDictionary (under the MorphAnalyzer's
// write lock); lookups are otherwise read-only (spec.md §5).
type RootLexicon struct {
	items    []*DictionaryItem
	byID     map[string]*DictionaryItem
	byLemma  map[string][]*DictionaryItem
	idCounts map[string]int
}

func newRootLexicon() *RootLexicon {
	return &RootLexicon{
		byID:     make(map[string]*DictionaryItem),
		byLemma:  make(map[string][]*DictionaryItem),
		idCounts: make(map[string]int),
	}
}

// Items returns every loaded DictionaryItem.
func (l *RootLexicon) Items() []*DictionaryItem { return l.items }

// ByLemma returns every item sharing the given surface lemma.
func (l *RootLexicon) ByLemma(lemma string) []*DictionaryItem { return l.byLemma[lemma] }

// ByID looks up an item by its stable generated id.
func (l *RootLexicon) ByID(id string) (*DictionaryItem, bool) {
	it, ok := l.byID[id]
	return it, ok
}

// add registers item, assigning it a stable id and resolving Dummy
// ref-item links against items already present. Mirrors
// lexicon_helpers.py:generate_dict_id's lemma_Pos[_SecPos][_n] scheme.
func (l *RootLexicon) add(item *DictionaryItem) {
	base := fmt.Sprintf("%s_%s", item.Lemma, item.Pos)
	if item.SecondaryPos != SecNone {
		base = fmt.Sprintf("%s_%s", base, item.SecondaryPos)
	}
	n := l.idCounts[base]
	l.idCounts[base] = n + 1
	if n > 0 {
		item.ID = fmt.Sprintf("%s_%d", base, n+1)
	} else {
		item.ID = base
	}
	item.Index = n

	l.items = append(l.items, item)
	l.byID[item.ID] = item
	l.byLemma[item.Lemma] = append(l.byLemma[item.Lemma], item)

	if item.Attrs.Has(Dummy) && item.RefItemID != "" {
		if ref, ok := l.byID[item.RefItemID]; ok {
			item.RefItem = ref
		}
	}
}

// parseLine parses one dictionary source line of the form
//
//	lemma [key:val;key:val;...]
//
// Mirrors lexicon_helpers.py:parse_line_data and spec.md §6's dictionary
// line format (P/A/Ref/Roots/Pr/Index keys).
func parseLine(line string) (*DictionaryItem, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}
	lemma := line
	meta := ""
	if i := strings.IndexByte(line, '['); i >= 0 {
		if !strings.HasSuffix(line, "]") {
			return nil, fmt.Errorf("trmorph: malformed dictionary line, unterminated bracket: %q", line)
		}
		lemma = strings.TrimSpace(line[:i])
		meta = line[i+1 : len(line)-1]
	}
	if lemma == "" {
		return nil, fmt.Errorf("trmorph: malformed dictionary line, empty lemma: %q", line)
	}

	item := &DictionaryItem{Lemma: lemma}
	item.Pos = inferPrimaryPos(lemma)
	item.SecondaryPos = inferSecondaryPos(lemma)

	for _, field := range splitNonEmpty(meta, ';') {
		kv := strings.SplitN(field, ":", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("trmorph: malformed dictionary metadata field %q in line %q", field, line)
		}
		key, val := strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1])
		switch key {
		case "P":
			parts := strings.Split(val, ",")
			item.Pos = PrimaryPos(strings.TrimSpace(parts[0]))
			if len(parts) > 1 {
				item.SecondaryPos = SecondaryPos(strings.TrimSpace(parts[1]))
			}
		case "A":
			for _, a := range splitNonEmpty(val, ',') {
				attr, ok := rootAttributeByName[strings.TrimSpace(a)]
				if !ok {
					return nil, fmt.Errorf("trmorph: unknown root attribute %q in line %q", a, line)
				}
				item.Attrs = item.Attrs.Add(attr)
			}
		case "Ref":
			item.RefItemID = val
			item.Attrs = item.Attrs.Add(Dummy)
		case "Index":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("trmorph: invalid Index %q in line %q: %w", val, line, err)
			}
			item.Index = n
		case "Roots", "Pr":
			// Compound-root expansion hints and pronunciation overrides are
			// read but not yet consumed by stem generation.
		default:
			return nil, fmt.Errorf("trmorph: unknown dictionary metadata key %q in line %q", key, line)
		}
	}

	item.Root = generateRoot(lemma, item.Pos)
	return item, nil
}

func splitNonEmpty(s string, sep byte) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, string(sep)) {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

var rootAttributeByName = map[string]RootAttribute{
	"Voicing":               Voicing,
	"NoVoicing":             NoVoicing,
	"Doubling":              Doubling,
	"LastVowelDrop":         LastVowelDrop,
	"ProgressiveVowelDrop":  ProgressiveVowelDrop,
	"InverseHarmony":        InverseHarmony,
	"PassiveIn":             PassiveIn,
	"CausativeT":            CausativeT,
	"AoristI":               AoristI,
	"AoristA":               AoristA,
	"CompoundP3sg":          CompoundP3sg,
	"CompoundP3sgRoot":      CompoundP3sgRoot,
	"ImplicitPlural":        ImplicitPlural,
	"ImplicitP1sg":          ImplicitP1sg,
	"ImplicitP2sg":          ImplicitP2sg,
	"FamilyMember":          FamilyMember,
	"NoQuote":               NoQuote,
	"Dummy":                 Dummy,
	"Reflexive":             Reflexive,
	"Reciprocal":            Reciprocal,
	"ImplicitDative":        ImplicitDative,
	"PronunciationGuessed":  PronunciationGuessed,
	"NoRootMutation":        NoRootMutation,
	"ExtendedCompoundRoot":  ExtendedCompoundRoot,
}

// isVerbLemma reports whether lemma is given in its infinitive form
// (-mek/-mak), the lexicon convention for verb entries. Mirrors
// lexicon_helpers.py:is_verb.
func isVerbLemma(lemma string) bool {
	return strings.HasSuffix(lemma, "mek") || strings.HasSuffix(lemma, "mak")
}

// inferPrimaryPos guesses a PrimaryPos from the bare lemma when no
// explicit P: field is given: an uppercase first letter marks a proper
// noun-flagged common noun, an infinitive ending marks a verb, otherwise
// noun. Mirrors lexicon_helpers.py:infer_primary_pos.
func inferPrimaryPos(lemma string) PrimaryPos {
	if isVerbLemma(lemma) && inferSecondaryPos(lemma) != SecProperNoun {
		return PosVerb
	}
	return PosNoun
}

func inferSecondaryPos(lemma string) SecondaryPos {
	if lemma == "" {
		return SecNone
	}
	r := []rune(lemma)[0]
	if strings.ContainsRune("ABCÇDEFGĞHIİJKLMNOÖPRSŞTUÜVYZ", r) {
		return SecProperNoun
	}
	return SecNone
}

// generateRoot derives the phonotactic root used for stem-transition
// generation from a dictionary lemma: verbs drop the -mek/-mak infinitive
// ending, and circumflexed vowels normalize to their plain form. Mirrors
// lexicon_helpers.py:generate_root.
func generateRoot(lemma string, p PrimaryPos) string {
	root := lemma
	if p == PosVerb && isVerbLemma(lemma) {
		root = root[:len(root)-3]
	}
	root = NormalizeCircumflex(root)
	root = strings.ReplaceAll(root, "-", "")
	root = strings.ReplaceAll(root, "'", "")
	return strings.ToLower(root)
}
