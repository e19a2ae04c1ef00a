// Package server exposes the kotus engine as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/syllables?word=<word>
//	GET  /api/classify?word=<word>
//	GET  /api/decline?word=<noun>&case=<case>&number=<sg|pl>
//	GET  /api/conjugate?word=<verb>&mood=&tense=&voice=&number=&person=
//	GET  /api/paradigm?word=<word>
//	POST /api/analyze/text   body: {"text":"..."}
//	GET  /api/classes
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/cours-de-latin/kotus"
	"github.com/cours-de-latin/kotus/internal/config"
)

// ---- JSON response types ------------------------------------------------

type syllablesResponse struct {
	Word      string `json:"word"`
	Syllables int    `json:"syllables"`
}

type formsResponse struct {
	Word  string   `json:"word"`
	Form  string   `json:"form"`
	Forms []string `json:"forms"`
}

type paradigmCell struct {
	Form  string   `json:"form"`
	Forms []string `json:"forms"`
}

type paradigmResponse struct {
	Word  string         `json:"word"`
	Nouns []paradigmCell `json:"nouns,omitempty"`
	Verbs []paradigmCell `json:"verbs,omitempty"`
}

type analyzeTextResponse struct {
	Results []kotus.TokenAnalysis `json:"results"`
}

type classJSON struct {
	Code    int    `json:"code"`
	Example string `json:"example"`
}

type classesResponse struct {
	Declensions  []classJSON `json:"declensions"`
	Conjugations []classJSON `json:"conjugations"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("encode error", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

// writeEngineError maps engine errors to HTTP statuses: invalid or
// unsupported forms are client errors, anything else is a server fault.
func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, kotus.ErrInvalidForm), errors.Is(err, kotus.ErrUnsupportedForm), errors.Is(err, kotus.ErrUnknownClass):
		s.writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error("engine failure", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func requireWord(r *http.Request) (string, error) {
	word := kotus.Normalize(r.URL.Query().Get("word"))
	if word == "" {
		return "", fmt.Errorf("missing 'word' query parameter")
	}
	return word, nil
}

// verbFormFromQuery reads mood, tense, voice, number and person. Voice
// defaults to active and tense to present.
func verbFormFromQuery(r *http.Request) (kotus.VerbForm, error) {
	q := r.URL.Query()
	get := func(key, def string) string {
		if v := q.Get(key); v != "" {
			return v
		}
		return def
	}

	var f kotus.VerbForm
	var err error
	if f.Mood, err = kotus.ParseMood(get("mood", "ind")); err != nil {
		return f, err
	}
	if f.Tense, err = kotus.ParseTense(get("tense", "pre")); err != nil {
		return f, err
	}
	if f.Voice, err = kotus.ParseVoice(get("voice", "act")); err != nil {
		return f, err
	}
	if f.Number, err = kotus.ParseNumber(q.Get("number")); err != nil {
		return f, err
	}
	if p := q.Get("person"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			return f, fmt.Errorf("person %q: %w", p, kotus.ErrInvalidForm)
		}
		f.Person = kotus.Person(n)
	}
	return f, nil
}

// ---- handlers -----------------------------------------------------------

func (s *Server) handleSyllables(w http.ResponseWriter, r *http.Request) {
	word, err := requireWord(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, syllablesResponse{Word: word, Syllables: kotus.CountSyllables(word)})
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	word, err := requireWord(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	a := kotus.Analyze(word)
	status := http.StatusOK
	if !a.Recognized() {
		status = http.StatusNotFound
	}
	s.writeJSON(w, status, a)
}

func (s *Server) handleDecline(w http.ResponseWriter, r *http.Request) {
	word, err := requireWord(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c, err := kotus.ParseCase(r.URL.Query().Get("case"))
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	n, err := kotus.ParseNumber(r.URL.Query().Get("number"))
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	form := kotus.NounForm{Case: c, Number: n}
	if err := form.Validate(); err != nil {
		s.writeEngineError(w, err)
		return
	}

	forms, err := kotus.DeclineNoun(word, c, n)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	if len(forms) == 0 {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("noun %q not recognized", word))
		return
	}
	s.writeJSON(w, http.StatusOK, formsResponse{Word: word, Form: form.String(), Forms: forms})
}

func (s *Server) handleConjugate(w http.ResponseWriter, r *http.Request) {
	word, err := requireWord(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	f, err := verbFormFromQuery(r)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	forms, err := kotus.ConjugateVerb(word, f)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	if len(forms) == 0 {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("verb %q not recognized", word))
		return
	}
	s.writeJSON(w, http.StatusOK, formsResponse{Word: word, Form: f.String(), Forms: forms})
}

func (s *Server) handleParadigm(w http.ResponseWriter, r *http.Request) {
	word, err := requireWord(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := paradigmResponse{Word: word}
	nouns, err := kotus.NounParadigm(word)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	for _, f := range kotus.GenSgLikeForms {
		if forms, ok := nouns[f]; ok {
			resp.Nouns = append(resp.Nouns, paradigmCell{Form: f.String(), Forms: forms})
		}
	}
	verbs, err := kotus.VerbParadigm(word)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	for _, f := range kotus.VerbForms {
		if forms, ok := verbs[f]; ok {
			resp.Verbs = append(resp.Verbs, paradigmCell{Form: f.String(), Forms: forms})
		}
	}

	status := http.StatusOK
	if len(resp.Nouns) == 0 && len(resp.Verbs) == 0 {
		status = http.StatusNotFound
	}
	s.writeJSON(w, status, resp)
}

func (s *Server) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
		s.writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
		return
	}
	results := kotus.AnalyzeText(body.Text)
	if results == nil {
		results = []kotus.TokenAnalysis{}
	}
	s.writeJSON(w, http.StatusOK, analyzeTextResponse{Results: results})
}

func (s *Server) handleClasses(w http.ResponseWriter, r *http.Request) {
	var resp classesResponse
	for d := kotus.MinDeclension; d <= kotus.MaxDeclension; d++ {
		resp.Declensions = append(resp.Declensions, classJSON{Code: int(d), Example: d.Example()})
	}
	for c := kotus.MinConjugation; c <= kotus.MaxConjugation; c++ {
		resp.Conjugations = append(resp.Conjugations, classJSON{Code: int(c), Example: c.Example()})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// ---- server -------------------------------------------------------------

// Server routes API requests to the engine.
type Server struct {
	handler http.Handler
	logger  *zap.Logger
}

// New builds the API handler with CORS applied for the configured origins.
func New(cfg config.ServerConfig, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/syllables", s.handleSyllables)
	mux.HandleFunc("GET /api/classify", s.handleClassify)
	mux.HandleFunc("GET /api/decline", s.handleDecline)
	mux.HandleFunc("GET /api/conjugate", s.handleConjugate)
	mux.HandleFunc("GET /api/paradigm", s.handleParadigm)
	mux.HandleFunc("POST /api/analyze/text", s.handleAnalyzeText)
	mux.HandleFunc("GET /api/classes", s.handleClasses)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	s.handler = c.Handler(s.logRequests(mux))
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)))
	})
}
