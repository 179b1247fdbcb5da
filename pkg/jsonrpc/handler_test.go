package jsonrpc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type stubBackend struct {
	height    uint64
	pingErr   error
	heightErr error
}

func (s *stubBackend) Ping(ctx context.Context) (string, error) {
	if s.pingErr != nil {
		return "", s.pingErr
	}
	return "pong", nil
}

func (s *stubBackend) GetBlockHeight(ctx context.Context) (uint64, error) {
	if s.heightErr != nil {
		return 0, s.heightErr
	}
	return s.height, nil
}

func postRPC(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/rpc", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSinglePingRequest(t *testing.T) {
	h := NewHandler(&stubBackend{height: 42})
	rec := postRPC(t, h, `{"jsonrpc":"2.0","method":"ping","id":1}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	var result string
	if err := json.Unmarshal(resp.Result, &result); err != nil || result != "pong" {
		t.Fatalf("result = %q, err = %v", result, err)
	}
}

func TestUnknownMethodReturnsMethodNotFoundAnd404(t *testing.T) {
	h := NewHandler(&stubBackend{})
	rec := postRPC(t, h, `{"jsonrpc":"2.0","method":"nope","id":1}`)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var resp Response
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Error == nil || resp.Error.Code != MethodNotFound {
		t.Fatalf("expected MethodNotFound error, got %+v", resp.Error)
	}
}

func TestWrongVersionReturnsInvalidRequest(t *testing.T) {
	h := NewHandler(&stubBackend{})
	rec := postRPC(t, h, `{"jsonrpc":"1.0","method":"ping","id":1}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp Response
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Error == nil || resp.Error.Code != InvalidRequest {
		t.Fatalf("expected InvalidRequest error, got %+v", resp.Error)
	}
}

func TestParseErrorOnMalformedJSON(t *testing.T) {
	h := NewHandler(&stubBackend{})
	rec := postRPC(t, h, `{not json`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp Response
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Error == nil || resp.Error.Code != ParseError {
		t.Fatalf("expected ParseError, got %+v", resp.Error)
	}
}

func TestBackendFailureReturnsInternalError(t *testing.T) {
	h := NewHandler(&stubBackend{pingErr: errors.New("boom")})
	rec := postRPC(t, h, `{"jsonrpc":"2.0","method":"ping","id":1}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var resp Response
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Error == nil || resp.Error.Code != InternalError {
		t.Fatalf("expected InternalError, got %+v", resp.Error)
	}
}

// Scenario 7: batch [ping, get_block_height, unknown] -> 3 responses, HTTP 200.
func TestBatchRequestAlwaysReturnsHTTP200(t *testing.T) {
	h := NewHandler(&stubBackend{height: 7})
	body := `[
		{"jsonrpc":"2.0","method":"ping","id":1},
		{"jsonrpc":"2.0","method":"get_block_height","id":2},
		{"jsonrpc":"2.0","method":"nope","id":3}
	]`
	rec := postRPC(t, h, body)

	if rec.Code != http.StatusOK {
		t.Fatalf("batch status = %d, want 200", rec.Code)
	}
	var responses []Response
	if err := json.Unmarshal(rec.Body.Bytes(), &responses); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(responses) != 3 {
		t.Fatalf("expected 3 responses, got %d", len(responses))
	}

	var pong string
	if err := json.Unmarshal(responses[0].Result, &pong); err != nil || pong != "pong" {
		t.Fatalf("responses[0] = %+v", responses[0])
	}
	var height uint64
	if err := json.Unmarshal(responses[1].Result, &height); err != nil || height != 7 {
		t.Fatalf("responses[1] = %+v", responses[1])
	}
	if responses[2].Error == nil || responses[2].Error.Code != MethodNotFound {
		t.Fatalf("responses[2] = %+v, want MethodNotFound", responses[2])
	}
}
