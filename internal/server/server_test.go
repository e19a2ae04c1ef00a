package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cours-de-latin/kotus"
	"github.com/cours-de-latin/kotus/internal/config"
)

func newTestServer() *Server {
	return New(config.DefaultConfig().Server, zap.NewNop())
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestSyllables(t *testing.T) {
	rec := get(t, newTestServer(), "/api/syllables?word=alue")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, syllablesResponse{Word: "alue", Syllables: 3}, decode[syllablesResponse](t, rec))
}

func TestMissingWord(t *testing.T) {
	rec := get(t, newTestServer(), "/api/classify")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClassify(t *testing.T) {
	s := newTestServer()

	rec := get(t, s, "/api/classify?word=k%C3%A4si")
	require.Equal(t, http.StatusOK, rec.Code)
	a := decode[kotus.Analysis](t, rec)
	require.Len(t, a.Nouns, 1)
	assert.Equal(t, kotus.Declension(27), a.Nouns[0].Declension)
	assert.True(t, a.Nouns[0].Gradation)

	rec = get(t, s, "/api/classify?word=r2d2")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDecline(t *testing.T) {
	s := newTestServer()

	rec := get(t, s, "/api/decline?word=talo&case=gen&number=sg")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"talon"}, decode[formsResponse](t, rec).Forms)

	rec = get(t, s, "/api/decline?word=talo&case=par&number=sg")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "unsupported case")

	rec = get(t, s, "/api/decline?word=talo&case=xyz&number=sg")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, s, "/api/decline?word=r2d2&case=gen&number=sg")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestConjugate(t *testing.T) {
	s := newTestServer()

	rec := get(t, s, "/api/conjugate?word=soutaa&tense=pst&number=sg&person=3")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"sousi", "souti"}, decode[formsResponse](t, rec).Forms)

	rec = get(t, s, "/api/conjugate?word=sanoa&mood=pot&number=sg&person=1")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "potential mood is not generated")

	rec = get(t, s, "/api/conjugate?word=sanoa&mood=imp&number=sg&person=1")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "no 1st singular imperative")
}

func TestParadigm(t *testing.T) {
	rec := get(t, newTestServer(), "/api/paradigm?word=talo")
	require.Equal(t, http.StatusOK, rec.Code)
	p := decode[paradigmResponse](t, rec)
	require.Len(t, p.Nouns, len(kotus.GenSgLikeForms))
	assert.Equal(t, paradigmCell{Form: "nom pl", Forms: []string{"talot"}}, p.Nouns[0])
	assert.Empty(t, p.Verbs)
}

func TestAnalyzeText(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze/text", strings.NewReader(`{"text":"Talo ja käsi."}`))
	s.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[analyzeTextResponse](t, rec)
	require.Len(t, resp.Results, 3)
	assert.Equal(t, "Talo", resp.Results[0].Token)
	assert.Equal(t, "talo", resp.Results[0].Word)

	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/analyze/text", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClasses(t *testing.T) {
	rec := get(t, newTestServer(), "/api/classes")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[classesResponse](t, rec)
	assert.Len(t, resp.Declensions, 49)
	assert.Len(t, resp.Conjugations, 27)
	assert.Equal(t, classJSON{Code: 52, Example: "sanoa"}, resp.Conjugations[0])
}

func TestMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/classify?word=talo", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORS(t *testing.T) {
	s := New(config.ServerConfig{Addr: ":0", CORSOrigins: []string{"https://example.org"}}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/syllables?word=talo", nil)
	req.Header.Set("Origin", "https://example.org")
	s.ServeHTTP(rec, req)
	assert.Equal(t, "https://example.org", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/syllables?word=talo", nil)
	req.Header.Set("Origin", "https://elsewhere.test")
	s.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, "127.0.0.1:0", newTestServer(), zap.NewNop()) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
