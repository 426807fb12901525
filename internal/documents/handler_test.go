package documents_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"careervault-backend/internal/shared/config"
	"careervault-backend/internal/shared/server"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		LLMProvider:     "none",
		QualityCacheTTL: time.Minute,
		Env:             "dev",
	}
	return server.NewRouter(cfg)
}

func uploadFile(t *testing.T, router *gin.Engine, fileName, content string) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fileWriter, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fileWriter.Write([]byte(content)); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestDocumentsUploadAndCurrent(t *testing.T) {
	router := newTestRouter(t)

	resp := uploadFile(t, router, "resume.txt", "Senior Product Manager with Python and AWS experience")
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		DocumentID string `json:"documentId"`
		FileName   string `json:"fileName"`
		HasText    bool   `json:"hasText"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.DocumentID == "" {
		t.Fatalf("expected documentId, got empty")
	}
	if !created.HasText {
		t.Fatalf("plain text upload should have extracted text")
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/documents/current", nil)
	addGuestHeader(reqGet)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)

	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respGet.Code)
	}

	var current struct {
		DocumentID string `json:"documentId"`
		FileName   string `json:"fileName"`
	}
	if err := json.NewDecoder(respGet.Body).Decode(&current); err != nil {
		t.Fatalf("decode current response: %v", err)
	}
	if current.FileName != "resume.txt" {
		t.Fatalf("expected fileName resume.txt, got %s", current.FileName)
	}
}

func TestDocumentTextEndpoint(t *testing.T) {
	router := newTestRouter(t)

	resp := uploadFile(t, router, "resume.txt", "Led migration to Kubernetes")
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	var created struct {
		DocumentID string `json:"documentId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	reqText := httptest.NewRequest(http.MethodGet, "/api/v1/documents/"+created.DocumentID+"/text", nil)
	addGuestHeader(reqText)
	respText := httptest.NewRecorder()
	router.ServeHTTP(respText, reqText)

	if respText.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", respText.Code, respText.Body.String())
	}
	var out struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(respText.Body).Decode(&out); err != nil {
		t.Fatalf("decode text response: %v", err)
	}
	if out.Text != "Led migration to Kubernetes" {
		t.Fatalf("unexpected extracted text %q", out.Text)
	}
}

func TestScoreAgainstUploadedDocument(t *testing.T) {
	router := newTestRouter(t)

	resp := uploadFile(t, router, "resume.txt", "Python developer who shipped AWS infrastructure")
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	var created struct {
		DocumentID string `json:"documentId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	payload, err := json.Marshal(map[string]any{
		"jobTitle":   "Backend Engineer",
		"documentId": created.DocumentID,
		"keywordDecisions": []map[string]string{
			{"keyword": "python", "decision": "add"},
		},
	})
	if err != nil {
		t.Fatalf("marshal score request: %v", err)
	}

	reqScore := httptest.NewRequest(http.MethodPost, "/api/v1/matches/score", bytes.NewReader(payload))
	reqScore.Header.Set("Content-Type", "application/json")
	addGuestHeader(reqScore)
	respScore := httptest.NewRecorder()
	router.ServeHTTP(respScore, reqScore)

	if respScore.Code != http.StatusCreated {
		t.Fatalf("expected 201 scoring by documentId, got %d: %s", respScore.Code, respScore.Body.String())
	}
	var scored struct {
		Breakdown struct {
			KeywordScore int `json:"keywordScore"`
		} `json:"breakdown"`
	}
	if err := json.NewDecoder(respScore.Body).Decode(&scored); err != nil {
		t.Fatalf("decode score response: %v", err)
	}
	if scored.Breakdown.KeywordScore != 100 {
		t.Fatalf("python appears in the document, expected 100, got %d", scored.Breakdown.KeywordScore)
	}
}

func TestDocumentTextUnknownID(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents/nope/text", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func addGuestHeader(req *http.Request) {
	req.Header.Set("X-Guest-Id", "test-guest")
}
