// Command repl is an interactive shell for exploring the analyzer.
package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/chzyer/readline"
	flag "github.com/spf13/pflag"

	"github.com/trmorph/trmorph"
)

func main() {
	dataDir := flag.String("data", "", "dictionary directory, defaults to the bundled dictionaries")
	flag.Parse()

	var ma *trmorph.MorphAnalyzer
	var err error
	if *dataDir != "" {
		ma, err = trmorph.New(*dataDir)
	} else {
		ma, err = trmorph.NewDefault()
	}
	if err != nil {
		log.Fatalf("trmorph: building analyzer: %v", err)
	}

	rl, err := readline.New("trmorph> ")
	if err != nil {
		log.Fatalf("trmorph: starting readline: %v", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			return
		}
		if err != nil {
			log.Fatalf("trmorph: reading input: %v", err)
		}
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		analyses := ma.AnalyzeWord(trmorph.NormalizeForLookup(word))
		if len(analyses) == 0 {
			fmt.Println("  (no analysis)")
			continue
		}
		for _, a := range analyses {
			fmt.Printf("  %s\n", trmorph.DefaultFormatter(a))
		}
	}
}
