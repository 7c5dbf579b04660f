package trmorph

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

//go:embed data/*.dict
var bundledDictionaries embed.FS

// bundledDictionaryFiles lists the default lexicon files shipped with the
// module: the six named resources zeyrek's TurkishMorphology.default()
// loads (master, non-tdk, proper nouns curated and corpus-derived,
// abbreviations, person names).
var bundledDictionaryFiles = []string{
	"data/master.dict",
	"data/non-tdk.dict",
	"data/proper.dict",
	"data/proper-from-corpus.dict",
	"data/abbreviations.dict",
	"data/person-names.dict",
}

// loadLines reads dictionary entries from r into lex, one DictionaryItem
// per non-blank, non-comment line. Mirrors the teacher's loader.go
// bufio.Scanner line loop.
func loadLines(r io.Reader, lex *RootLexicon) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		item, err := parseLine(scanner.Text())
		if err != nil {
			return fmt.Errorf("trmorph: line %d: %w", line, err)
		}
		if item == nil {
			continue
		}
		lex.add(item)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("trmorph: scanning dictionary: %w", err)
	}
	return nil
}

// loadDefaultLexicon builds a RootLexicon from the bundled dictionaries.
func loadDefaultLexicon() (*RootLexicon, error) {
	lex := newRootLexicon()
	for _, name := range bundledDictionaryFiles {
		f, err := bundledDictionaries.Open(name)
		if err != nil {
			return nil, fmt.Errorf("trmorph: opening bundled dictionary %s: %w", name, err)
		}
		err = loadLines(f, lex)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("trmorph: loading bundled dictionary %s: %w", name, err)
		}
	}
	return lex, nil
}

// loadLexiconFromDir builds a RootLexicon from every *.dict file in dir,
// the on-disk override convention mirroring the teacher's dataDir
// parameter to New(dataDir).
func loadLexiconFromDir(dir string) (*RootLexicon, error) {
	lex := newRootLexicon()
	matches, err := filepath.Glob(filepath.Join(dir, "*.dict"))
	if err != nil {
		return nil, fmt.Errorf("trmorph: globbing %s: %w", dir, err)
	}
	for _, path := range matches {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("trmorph: opening %s: %w", path, err)
		}
		err = loadLines(f, lex)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("trmorph: loading %s: %w", path, err)
		}
	}
	return lex, nil
}
