package trmorph

import "strings"

// DefaultFormatter renders a SingleAnalysis as
// "[lemma:POS,SecPos] stem:morpheme1+morpheme2|derivation→morpheme3",
// the join syntax spec.md §6 calls out as the default external
// presentation: inflectional morphemes join with "+", each derivational
// morpheme is set off as "|Name→" ahead of the group it introduces.
// Morphemes are printed by Name; their surface text is not printed.
func DefaultFormatter(a SingleAnalysis) string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(a.DictItem.Lemma)
	b.WriteByte(':')
	b.WriteString(string(a.Pos))
	if a.DictItem.SecondaryPos != SecNone {
		b.WriteByte(',')
		b.WriteString(string(a.DictItem.SecondaryPos))
	}
	b.WriteString("] ")
	b.WriteString(a.Stem)
	b.WriteByte(':')

	joined := false
	for _, ms := range a.Morphemes {
		if ms.Morpheme.Derivational {
			b.WriteByte('|')
			b.WriteString(ms.Morpheme.Name)
			b.WriteString("→")
			joined = false
			continue
		}
		if joined {
			b.WriteByte('+')
		}
		b.WriteString(ms.Morpheme.Name)
		joined = true
	}
	return b.String()
}

// UDFormatter renders a SingleAnalysis as a Universal Dependencies style
// "lemma_UPOS" plus a pipe-separated feature list, one FEAT per crossed
// non-derivational morpheme. Supplements the default formatter with the
// richer presentation zeyrek/formatters.py offers alongside its default
// join-based one.
func UDFormatter(a SingleAnalysis) string {
	var feats []string
	for _, ms := range a.Morphemes {
		if !ms.Morpheme.Derivational {
			feats = append(feats, ms.Morpheme.Name)
		}
	}
	upos := strings.ToUpper(string(a.Pos))
	if len(feats) == 0 {
		return a.DictItem.Lemma + "_" + upos
	}
	return a.DictItem.Lemma + "_" + upos + "\t" + strings.Join(feats, "|")
}
