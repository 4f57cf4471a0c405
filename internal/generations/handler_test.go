package generations

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"resumegen-backend/internal/shared/server/middleware"
)

func newHandlerRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Identity())
	api := r.Group("/api/v1")
	NewHandler(svc).RegisterRoutes(api)
	return r
}

func TestCreateGenerationEndpoint(t *testing.T) {
	t.Parallel()

	svc, repo := newGenService(t, &stubLLM{result: "GENERATED"}, true)
	r := newHandlerRouter(svc)

	body := `{"kind":"resume","jobDescription":"Seeking a backend engineer with Go experience."}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", resp.Code, resp.Body.String())
	}

	var g Generation
	if err := json.Unmarshal(resp.Body.Bytes(), &g); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if g.ID == "" || g.Status != StatusQueued {
		t.Fatalf("unexpected record: %+v", g)
	}
	if strings.Contains(resp.Body.String(), `"prompt":`) {
		t.Fatalf("assembled prompt must not leak into the API response")
	}

	waitForTerminal(t, repo, "local", g.ID)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/generations/"+g.ID, nil)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("get expected 200, got %d", resp.Code)
	}
	var done Generation
	if err := json.Unmarshal(resp.Body.Bytes(), &done); err != nil {
		t.Fatalf("decode get: %v", err)
	}
	if done.Status != StatusCompleted || done.Result != "GENERATED" {
		t.Fatalf("unexpected terminal record: %+v", done)
	}
}

func TestCreateGenerationUnknownKind(t *testing.T) {
	t.Parallel()

	svc, _ := newGenService(t, &stubLLM{result: "x"}, true)
	r := newHandlerRouter(svc)

	body := `{"kind":"novel","jobDescription":"Seeking a writer."}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	var payload map[string]map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["error"]["code"] != "validation_error" {
		t.Fatalf("unexpected error payload: %v", payload)
	}
}

func TestCreateGenerationProfileIncomplete(t *testing.T) {
	t.Parallel()

	svc, _ := newGenService(t, &stubLLM{result: "x"}, false)
	r := newHandlerRouter(svc)

	body := `{"kind":"resume","jobDescription":"Seeking a backend engineer."}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}
	var payload map[string]map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["error"]["code"] != "profile_incomplete" {
		t.Fatalf("unexpected error payload: %v", payload)
	}
}

func TestPreviewEndpoint(t *testing.T) {
	t.Parallel()

	svc, repo := newGenService(t, &stubLLM{result: "x"}, true)
	r := newHandlerRouter(svc)

	body := `{"kind":"cover_letter","jobDescription":"Seeking a backend engineer.","options":{"tone":"mysterious"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generations/preview", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var payload struct {
		Kind       string   `json:"kind"`
		Prompt     string   `json:"prompt"`
		PromptHash string   `json:"promptHash"`
		Warnings   []string `json:"warnings"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Kind != "cover_letter" || payload.Prompt == "" || len(payload.PromptHash) != 64 {
		t.Fatalf("unexpected preview: kind=%q hashLen=%d", payload.Kind, len(payload.PromptHash))
	}
	if len(payload.Warnings) == 0 {
		t.Fatalf("expected tone substitution warning")
	}

	// Give any stray goroutine no chance to hide a write.
	time.Sleep(20 * time.Millisecond)
	items, err := repo.ListByIdentity(req.Context(), "local", 0, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("preview must not persist")
	}
}

func TestListGenerationsEndpoint(t *testing.T) {
	t.Parallel()

	svc, repo := newGenService(t, &stubLLM{result: "x"}, true)
	r := newHandlerRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/generations", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"generations":[]`) {
		t.Fatalf("empty list must serialize as []: %s", resp.Body.String())
	}

	body := `{"kind":"resume","jobDescription":"Seeking a backend engineer."}`
	createReq := httptest.NewRequest(http.MethodPost, "/api/v1/generations", strings.NewReader(body))
	createReq.Header.Set("Content-Type", "application/json")
	createResp := httptest.NewRecorder()
	r.ServeHTTP(createResp, createReq)
	if createResp.Code != http.StatusAccepted {
		t.Fatalf("create expected 202, got %d", createResp.Code)
	}
	var g Generation
	if err := json.Unmarshal(createResp.Body.Bytes(), &g); err != nil {
		t.Fatalf("decode create: %v", err)
	}
	waitForTerminal(t, repo, "local", g.ID)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/generations?limit=10", nil)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	var payload struct {
		Generations []Generation `json:"generations"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(payload.Generations) != 1 {
		t.Fatalf("expected 1 generation, got %d", len(payload.Generations))
	}
}

func TestGetGenerationNotFound(t *testing.T) {
	t.Parallel()

	svc, _ := newGenService(t, &stubLLM{result: "x"}, true)
	r := newHandlerRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/generations/does-not-exist", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestOptionsEndpoint(t *testing.T) {
	t.Parallel()

	svc, _ := newGenService(t, &stubLLM{result: "x"}, true)
	r := newHandlerRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/options", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var payload struct {
		Tones            []string `json:"tones"`
		Industries       []string `json:"industries"`
		ExperienceLevels []string `json:"experienceLevels"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Tones) == 0 || len(payload.Industries) == 0 || len(payload.ExperienceLevels) == 0 {
		t.Fatalf("expected enumerated options: %+v", payload)
	}
}
