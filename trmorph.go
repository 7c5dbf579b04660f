package trmorph

import "sync"

// MorphAnalyzer is the package's public facade: a lexicon, the
// morphotactics graph built over it, and the stem-transition index
// connecting the two, wrapped in a RWMutex so AddDictionary can rebuild
// the index without racing concurrent analyses (spec.md §5). Mirrors the
// shape of the teacher's Lemmatizer facade (collatinus.go: New/Morpho/
// Lemma/LemmatizeWord/LemmatizeText) generalized to the Turkish domain.
type MorphAnalyzer struct {
	mu            sync.RWMutex
	lexicon       *RootLexicon
	morphotactics *TurkishMorphotactics
	analyzer      *Analyzer
}

// New builds a MorphAnalyzer from every *.dict file in dataDir.
func New(dataDir string) (*MorphAnalyzer, error) {
	lex, err := loadLexiconFromDir(dataDir)
	if err != nil {
		return nil, err
	}
	return newFromLexicon(lex), nil
}

// NewDefault builds a MorphAnalyzer from the bundled dictionaries.
func NewDefault() (*MorphAnalyzer, error) {
	lex, err := loadDefaultLexicon()
	if err != nil {
		return nil, err
	}
	return newFromLexicon(lex), nil
}

func newFromLexicon(lex *RootLexicon) *MorphAnalyzer {
	m := NewTurkishMorphotactics()
	stems := BuildStemTransitionIndex(lex, m.GetRootState)
	return &MorphAnalyzer{
		lexicon:       lex,
		morphotactics: m,
		analyzer:      NewAnalyzer(m, stems),
	}
}

// AnalyzeWord returns every SingleAnalysis for one already-tokenized,
// lowercased word.
func (ma *MorphAnalyzer) AnalyzeWord(word string) []SingleAnalysis {
	ma.mu.RLock()
	defer ma.mu.RUnlock()
	return ma.analyzer.Analyze(word)
}

// AnalyzeSentence tokenizes text and analyzes each resulting word.
func (ma *MorphAnalyzer) AnalyzeSentence(text string) []WordAnalyses {
	words := Tokenize(text)
	results := make([]WordAnalyses, len(words))
	for i, w := range words {
		results[i] = WordAnalyses{Word: w, Analyses: ma.AnalyzeWord(NormalizeForLookup(w))}
	}
	return results
}

// Lemmatize returns the distinct dictionary lemmas among word's analyses.
func (ma *MorphAnalyzer) Lemmatize(word string) []string {
	seen := make(map[string]bool)
	var lemmas []string
	for _, a := range ma.AnalyzeWord(NormalizeForLookup(word)) {
		if !seen[a.DictItem.Lemma] {
			seen[a.DictItem.Lemma] = true
			lemmas = append(lemmas, a.DictItem.Lemma)
		}
	}
	return lemmas
}

// AddDictionary loads additional dictionary lines into the lexicon and
// rebuilds the stem-transition index. The write lock is held for the whole
// load and rebuild, so calls are serialized with each other and with
// concurrent AnalyzeWord calls (spec.md §5).
func (ma *MorphAnalyzer) AddDictionary(lines []string) error {
	ma.mu.Lock()
	defer ma.mu.Unlock()

	for _, line := range lines {
		item, err := parseLine(line)
		if err != nil {
			return err
		}
		if item == nil {
			continue
		}
		ma.lexicon.add(item)
	}
	ma.analyzer.Stems = BuildStemTransitionIndex(ma.lexicon, ma.morphotactics.GetRootState)
	return nil
}

// WordAnalyses pairs one tokenized word with its analyses, for
// AnalyzeSentence's result slice.
type WordAnalyses struct {
	Word     string
	Analyses []SingleAnalysis
}
