package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/debugger-labs/debugger-go/pkg/market"
	"github.com/debugger-labs/debugger-go/pkg/model"
)

type fakeCore struct {
	submitRes *market.SubmitResult
	submitErr error
	got       model.Submission

	listings []model.EnrichedListing
	listErr  error
}

func (f *fakeCore) Submit(_ context.Context, sub model.Submission) (*market.SubmitResult, error) {
	f.got = sub
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.submitRes, nil
}

func (f *fakeCore) ListAll(context.Context) ([]model.EnrichedListing, error) {
	return f.listings, f.listErr
}

func doRequest(t *testing.T, core *fakeCore, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	srv := NewServer(core)
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestRoot_Liveness(t *testing.T) {
	rec := doRequest(t, &fakeCore{}, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "running") {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestSubmit_Created(t *testing.T) {
	core := &fakeCore{submitRes: &market.SubmitResult{TokenID: 7, TokenURI: "https://o3.akave.ai/m/7.json"}}
	body := `{"developerAddress":"0xabc","price":"0.1","code":"c","error":"e","solution":"s"}`

	rec := doRequest(t, core, http.MethodPost, "/api/datasets/submit", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("got status %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Message  string `json:"message"`
		TokenID  uint64 `json:"tokenId"`
		TokenURI string `json:"tokenURI"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if resp.TokenID != 7 || resp.TokenURI != "https://o3.akave.ai/m/7.json" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if core.got.DeveloperAddress != "0xabc" {
		t.Fatalf("submission not forwarded: %+v", core.got)
	}
}

func TestSubmit_MissingFields(t *testing.T) {
	core := &fakeCore{submitErr: model.ErrMissingFields}
	rec := doRequest(t, core, http.MethodPost, "/api/datasets/submit", `{"price":"0.1"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if resp["message"] != "Missing required fields." {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}

func TestSubmit_InvalidPrice(t *testing.T) {
	core := &fakeCore{submitErr: model.ErrInvalidPrice}
	rec := doRequest(t, core, http.MethodPost, "/api/datasets/submit", `{"price":"-1"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
}

func TestSubmit_PipelineError(t *testing.T) {
	core := &fakeCore{submitErr: errors.New("analysis failed: groq unavailable")}
	body := `{"developerAddress":"0xabc","price":"0.1","code":"c","error":"e","solution":"s"}`

	rec := doRequest(t, core, http.MethodPost, "/api/datasets/submit", body)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("got status %d, want 500", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if resp["message"] != "Failed to submit dataset." || resp["error"] == "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestSubmit_MalformedBody(t *testing.T) {
	rec := doRequest(t, &fakeCore{}, http.MethodPost, "/api/datasets/submit", "{not json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
}

func TestList_OK(t *testing.T) {
	core := &fakeCore{listings: []model.EnrichedListing{
		{TokenID: 2, Name: "two", Price: "0.2"},
		{TokenID: 1, Name: "one", Price: "0.1"},
	}}
	rec := doRequest(t, core, http.MethodGet, "/api/datasets", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d", rec.Code)
	}

	var got []model.EnrichedListing
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if len(got) != 2 || got[0].TokenID != 2 {
		t.Fatalf("unexpected listings: %+v", got)
	}
}

func TestList_EmptyIsArray(t *testing.T) {
	core := &fakeCore{listings: []model.EnrichedListing{}}
	rec := doRequest(t, core, http.MethodGet, "/api/datasets", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty JSON array, got %q", rec.Body.String())
	}
}

func TestList_Error(t *testing.T) {
	core := &fakeCore{listErr: errors.New("rpc down")}
	rec := doRequest(t, core, http.MethodGet, "/api/datasets", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("got status %d, want 500", rec.Code)
	}
}
