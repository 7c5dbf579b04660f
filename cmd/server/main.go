// Command server exposes a Turkish morphological analyzer over HTTP.
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/cors"
	flag "github.com/spf13/pflag"

	"github.com/trmorph/trmorph"
)

// config is the server's runtime configuration, loadable from a TOML
// file and overridable by flags.
type config struct {
	Addr      string `toml:"addr"`
	DataDir   string `toml:"data_dir"`
	JWTSecret string `toml:"jwt_secret"`
}

func loadConfig(path string) (config, error) {
	cfg := config{Addr: ":8080", JWTSecret: "dev-secret-change-me"}
	if path == "" {
		return cfg, nil
	}
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}

type analyzeRequest struct {
	Word string `json:"word"`
}

type analyzeTextRequest struct {
	Text string `json:"text"`
}

type morphemeJSON struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Surface string `json:"surface"`
}

type analysisJSON struct {
	Lemma     string         `json:"lemma"`
	Stem      string         `json:"stem"`
	Suffix    string         `json:"suffix"`
	Pos       string         `json:"pos"`
	Morphemes []morphemeJSON `json:"morphemes"`
	Default   string         `json:"default"`
}

func toAnalysisJSON(a trmorph.SingleAnalysis) analysisJSON {
	morphemes := make([]morphemeJSON, 0, len(a.Morphemes))
	for _, ms := range a.Morphemes {
		morphemes = append(morphemes, morphemeJSON{ID: ms.Morpheme.ID, Name: ms.Morpheme.Name, Surface: ms.Surface})
	}
	return analysisJSON{
		Lemma:     a.DictItem.Lemma,
		Stem:      a.Stem,
		Suffix:    a.Suffix,
		Pos:       string(a.Pos),
		Morphemes: morphemes,
		Default:   trmorph.DefaultFormatter(a),
	}
}

type analyzeResponse struct {
	Word     string         `json:"word"`
	Analyses []analysisJSON `json:"analyses"`
}

type wordAnalysesJSON struct {
	Word     string         `json:"word"`
	Analyses []analysisJSON `json:"analyses"`
}

type analyzeTextResponse struct {
	Words []wordAnalysesJSON `json:"words"`
}

type lemmatizeResponse struct {
	Word   string   `json:"word"`
	Lemmas []string `json:"lemmas"`
}

type dictionaryRequest struct {
	Lines []string `json:"lines"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("trmorph: writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func handleAnalyze(ma *trmorph.MorphAnalyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		word := trmorph.NormalizeForLookup(req.Word)
		analyses := ma.AnalyzeWord(word)
		out := make([]analysisJSON, 0, len(analyses))
		for _, a := range analyses {
			out = append(out, toAnalysisJSON(a))
		}
		writeJSON(w, http.StatusOK, analyzeResponse{Word: req.Word, Analyses: out})
	}
}

func handleAnalyzeText(ma *trmorph.MorphAnalyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req analyzeTextRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		results := ma.AnalyzeSentence(req.Text)
		words := make([]wordAnalysesJSON, 0, len(results))
		for _, wa := range results {
			analyses := make([]analysisJSON, 0, len(wa.Analyses))
			for _, a := range wa.Analyses {
				analyses = append(analyses, toAnalysisJSON(a))
			}
			words = append(words, wordAnalysesJSON{Word: wa.Word, Analyses: analyses})
		}
		writeJSON(w, http.StatusOK, analyzeTextResponse{Words: words})
	}
}

func handleLemmatize(ma *trmorph.MorphAnalyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, lemmatizeResponse{
			Word:   req.Word,
			Lemmas: ma.Lemmatize(req.Word),
		})
	}
}

func handleAddDictionary(ma *trmorph.MorphAnalyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dictionaryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if err := ma.AddDictionary(req.Lines); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"added": len(req.Lines)})
	}
}

// bearerAuth gates a handler behind a valid HS256 JWT bearer token,
// mirroring the token-middleware pattern used for the mutating
// dictionary endpoint.
func bearerAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			const prefix = "Bearer "
			if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
				writeError(w, http.StatusUnauthorized, errMissingBearer)
				return
			}
			raw := header[len(prefix):]
			_, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{"HS256"}))
			if err != nil {
				writeError(w, http.StatusUnauthorized, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

var errMissingBearer = jwtErr("missing bearer token")

type jwtErr string

func (e jwtErr) Error() string { return string(e) }

// requestID stamps every response with a UUID correlation id.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	addr := flag.String("addr", "", "listen address, overrides config")
	dataDir := flag.String("data", "", "dictionary directory, defaults to the bundled dictionaries")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("trmorph: loading config: %v", err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	var ma *trmorph.MorphAnalyzer
	if cfg.DataDir != "" {
		ma, err = trmorph.New(cfg.DataDir)
	} else {
		ma, err = trmorph.NewDefault()
	}
	if err != nil {
		log.Fatalf("trmorph: building analyzer: %v", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(requestID)
	r.Use(cors.Default().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Post("/api/analyze", handleAnalyze(ma))
	r.Post("/api/analyze/text", handleAnalyzeText(ma))
	r.Post("/api/lemmatize", handleLemmatize(ma))
	r.Group(func(r chi.Router) {
		r.Use(bearerAuth(cfg.JWTSecret))
		r.Post("/api/dictionary", handleAddDictionary(ma))
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	log.Printf("trmorph: listening on %s", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("trmorph: server error: %v", err)
	}
	os.Exit(0)
}
