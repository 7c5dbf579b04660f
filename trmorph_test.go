package trmorph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestAnalyzer(t *testing.T) *MorphAnalyzer {
	t.Helper()
	ma, err := NewDefault()
	require.NoError(t, err)
	return ma
}

func morphemeIDs(a SingleAnalysis) []string {
	ids := make([]string, len(a.Morphemes))
	for i, ms := range a.Morphemes {
		ids[i] = ms.Morpheme.ID
	}
	return ids
}

func TestScenarioElma(t *testing.T) {
	ma := newTestAnalyzer(t)
	analyses := ma.AnalyzeWord("elma")
	require.NotEmpty(t, analyses)
	require.Equal(t, "elma", analyses[0].DictItem.Lemma)
	require.Equal(t, "elma", analyses[0].Stem)
}

func TestScenarioElmalar(t *testing.T) {
	ma := newTestAnalyzer(t)
	analyses := ma.AnalyzeWord("elmalar")
	require.NotEmpty(t, analyses)
	require.Contains(t, morphemeIDs(analyses[0]), "A3pl")
}

func TestScenarioEvime(t *testing.T) {
	ma := newTestAnalyzer(t)
	analyses := ma.AnalyzeWord("evime")
	require.NotEmpty(t, analyses)
	ids := morphemeIDs(analyses[0])
	require.Contains(t, ids, "P1sg")
	require.Contains(t, ids, "Dat")
}

func TestScenarioBeyazlasti(t *testing.T) {
	ma := newTestAnalyzer(t)
	analyses := ma.AnalyzeWord("beyazlaştı")
	require.NotEmpty(t, analyses)
	require.Equal(t, "beyaz", analyses[0].DictItem.Lemma)
	ids := morphemeIDs(analyses[0])
	require.Contains(t, ids, "Become")
	require.Contains(t, ids, "Past")
}

func TestScenarioBeyazlastirici(t *testing.T) {
	ma := newTestAnalyzer(t)
	analyses := ma.AnalyzeWord("beyazlaştırıcı")
	require.NotEmpty(t, analyses)
	ids := morphemeIDs(analyses[0])
	require.Contains(t, ids, "Become")
	require.Contains(t, ids, "Caus")
	require.Contains(t, ids, "Agt")
}

func TestScenarioOkuyabiliyorum(t *testing.T) {
	ma := newTestAnalyzer(t)
	analyses := ma.AnalyzeWord("okuyabiliyorum")
	require.NotEmpty(t, analyses)
	require.Equal(t, "okumak", analyses[0].DictItem.Lemma)
	ids := morphemeIDs(analyses[0])
	require.Contains(t, ids, "Able")
	require.Contains(t, ids, "Prog1")
	require.Contains(t, ids, "A1sg")
}

func TestScenarioKitabi(t *testing.T) {
	ma := newTestAnalyzer(t)
	analyses := ma.AnalyzeWord("kitabı")
	require.NotEmpty(t, analyses)
	require.Equal(t, "kitap", analyses[0].DictItem.Lemma)
	require.Contains(t, morphemeIDs(analyses[0]), "Acc")
}

func TestScenarioBunu(t *testing.T) {
	ma := newTestAnalyzer(t)
	analyses := ma.AnalyzeWord(NormalizeForLookup("Bunu"))
	require.NotEmpty(t, analyses)
	require.Equal(t, "bu", analyses[0].DictItem.Lemma)
	require.Contains(t, morphemeIDs(analyses[0]), "Acc")
}

func TestLemmatize(t *testing.T) {
	ma := newTestAnalyzer(t)
	lemmas := ma.Lemmatize("evime")
	require.Contains(t, lemmas, "ev")
}

func TestAnalyzeSentence(t *testing.T) {
	ma := newTestAnalyzer(t)
	results := ma.AnalyzeSentence("elma kitabı")
	require.Len(t, results, 2)
	require.Equal(t, "elma", results[0].Word)
	require.Equal(t, "kitabı", results[1].Word)
}

func TestAddDictionaryRebuildsIndex(t *testing.T) {
	ma := newTestAnalyzer(t)
	require.Empty(t, ma.AnalyzeWord("masa"))

	err := ma.AddDictionary([]string{"masa"})
	require.NoError(t, err)

	analyses := ma.AnalyzeWord("masa")
	require.NotEmpty(t, analyses)
	require.Equal(t, "masa", analyses[0].DictItem.Lemma)
}

func TestUnknownWordReturnsNoAnalyses(t *testing.T) {
	ma := newTestAnalyzer(t)
	require.Empty(t, ma.AnalyzeWord("zzzqqq"))
}
