package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// NewHandler returns the http.Handler serving POST /rpc, dispatching
// single or batched requests to backend.
func NewHandler(backend Backend) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var raw json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			resp := errorResponse(nil, ParseError, fmt.Sprintf("parse error: %v", err))
			w.WriteHeader(HTTPStatusForError(ParseError))
			json.NewEncoder(w).Encode(resp)
			return
		}

		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			var items []json.RawMessage
			if err := json.Unmarshal(raw, &items); err != nil {
				resp := errorResponse(nil, ParseError, fmt.Sprintf("parse error: %v", err))
				w.WriteHeader(HTTPStatusForError(ParseError))
				json.NewEncoder(w).Encode(resp)
				return
			}
			responses := make([]Response, len(items))
			for i, item := range items {
				responses[i] = processSingle(r.Context(), backend, item)
			}
			// Batch responses always return HTTP 200, whatever the
			// individual results' error codes are.
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(responses)
			return
		}

		resp := processSingle(r.Context(), backend, raw)
		status := http.StatusOK
		if resp.Error != nil {
			status = HTTPStatusForError(resp.Error.Code)
		}
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(resp)
	})
}

func processSingle(ctx context.Context, backend Backend, raw json.RawMessage) Response {
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		id := extractID(raw)
		return errorResponse(id, ParseError, fmt.Sprintf("parse error: %v", err))
	}

	if req.JSONRPC != "2.0" || req.Method == "" {
		return errorResponse(req.ID, InvalidRequest, "invalid request: missing fields or wrong jsonrpc version")
	}

	switch req.Method {
	case "ping":
		result, err := backend.Ping(ctx)
		if err != nil {
			return errorResponse(req.ID, InternalError, err.Error())
		}
		return successResponse(req.ID, result)
	case "get_block_height":
		height, err := backend.GetBlockHeight(ctx)
		if err != nil {
			return errorResponse(req.ID, InternalError, err.Error())
		}
		return successResponse(req.ID, height)
	default:
		return errorResponse(req.ID, MethodNotFound, fmt.Sprintf("method not found: %s", req.Method))
	}
}

func extractID(raw json.RawMessage) json.RawMessage {
	var partial struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(raw, &partial); err != nil {
		return nil
	}
	return partial.ID
}
