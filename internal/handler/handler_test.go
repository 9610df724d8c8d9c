package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/passadmin/passadmin-go/internal/crypto"
	"github.com/passadmin/passadmin-go/internal/model"
	"github.com/passadmin/passadmin-go/internal/service"
)

func newTestGeneratorHandler() *GeneratorHandler {
	gen := crypto.NewGenerator(crypto.NewMathSource(11))
	return NewGeneratorHandler(service.NewGeneratorService(gen, service.DefaultGeneratorOptions()))
}

func TestHandleGenerate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantLength int
		wantSep    bool
	}{
		{name: "empty body uses defaults", body: "", wantStatus: http.StatusOK, wantLength: 12, wantSep: true},
		{name: "empty object uses defaults", body: `{}`, wantStatus: http.StatusOK, wantLength: 12, wantSep: true},
		{name: "explicit options", body: `{"length": 16, "separators": false}`, wantStatus: http.StatusOK, wantLength: 16},
		{name: "too short", body: `{"length": 5}`, wantStatus: http.StatusBadRequest},
		{name: "too long", body: `{"length": 4096}`, wantStatus: http.StatusBadRequest},
		{name: "malformed json", body: `{"length":`, wantStatus: http.StatusBadRequest},
		{name: "wrong type", body: `{"length": "twelve"}`, wantStatus: http.StatusBadRequest},
	}

	h := newTestGeneratorHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.HandleGenerate(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}

			if tt.wantStatus != http.StatusOK {
				var errBody map[string]string
				if err := json.NewDecoder(rec.Body).Decode(&errBody); err != nil || errBody["error"] == "" {
					t.Errorf("expected error body, got %q (%v)", rec.Body.String(), err)
				}
				return
			}

			var resp model.GenerateResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Length != tt.wantLength {
				t.Errorf("length = %d, want %d", resp.Length, tt.wantLength)
			}
			if resp.Separators != tt.wantSep {
				t.Errorf("separators = %v, want %v", resp.Separators, tt.wantSep)
			}
			wantChars := tt.wantLength
			if tt.wantSep {
				wantChars += (tt.wantLength - 1) / 4
			}
			if len(resp.Password) != wantChars {
				t.Errorf("password %q has %d characters, want %d", resp.Password, len(resp.Password), wantChars)
			}
		})
	}
}

func TestHandleGenerate_TooShortMessage(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(`{"length": 4}`))
	rec := httptest.NewRecorder()

	newTestGeneratorHandler().HandleGenerate(rec, req)

	if !strings.Contains(rec.Body.String(), "at least 8 characters for best security") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestHandleGenerate_BodyTooLarge(t *testing.T) {
	body := `{"length": 12, "pad": "` + strings.Repeat("x", maxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newTestGeneratorHandler().HandleGenerate(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusRequestEntityTooLarge)
	}
}

func TestHandleStrength(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantScore  int
		wantFailed int
	}{
		{name: "strong", body: `{"password": "Abcdefg1!"}`, wantStatus: http.StatusOK, wantScore: 5},
		{name: "lowercase only", body: `{"password": "abcdefgh"}`, wantStatus: http.StatusOK, wantScore: 2, wantFailed: 3},
		{name: "empty password", body: `{"password": ""}`, wantStatus: http.StatusOK, wantScore: 0, wantFailed: 5},
		{name: "empty body", body: "", wantStatus: http.StatusBadRequest},
		{name: "malformed json", body: `password=abc`, wantStatus: http.StatusBadRequest},
	}

	h := NewStrengthHandler(service.NewStrengthService())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/strength", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.HandleStrength(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp model.StrengthResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", resp.Score, tt.wantScore)
			}
			if len(resp.Failed) != tt.wantFailed {
				t.Errorf("failed = %v, want %d entries", resp.Failed, tt.wantFailed)
			}
			if len(resp.Criteria) != 5 {
				t.Errorf("criteria = %v, want all five", resp.Criteria)
			}
		})
	}
}
