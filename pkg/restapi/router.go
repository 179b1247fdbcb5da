package restapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/solelabs/mbongo/pkg/types"
)

// NewRouter builds the gorilla/mux router serving backend over the paths
// spec'd for this facade: /blocks, /blocks/{hash}, /transactions/{hash},
// /accounts/{address}, /validators, plus /openapi.json and /docs for
// discovery.
func NewRouter(backend Backend) http.Handler {
	rs := &restServer{backend: backend}

	readLimiter := newIPRateLimiter(20, 30)
	readMW := rateLimitMiddleware(readLimiter)

	router := mux.NewRouter()
	router.Use(jsonContentType)

	router.Handle("/blocks", readMW(http.HandlerFunc(rs.listBlocks))).Methods(http.MethodGet)
	router.Handle("/blocks/{hash}", readMW(http.HandlerFunc(rs.getBlock))).Methods(http.MethodGet)
	router.Handle("/transactions/{hash}", readMW(http.HandlerFunc(rs.getTransaction))).Methods(http.MethodGet)
	router.Handle("/accounts/{address}", readMW(http.HandlerFunc(rs.getAccount))).Methods(http.MethodGet)
	router.Handle("/validators", readMW(http.HandlerFunc(rs.listValidators))).Methods(http.MethodGet)
	router.HandleFunc("/openapi.json", rs.openAPI).Methods(http.MethodGet)
	router.HandleFunc("/docs", rs.docs).Methods(http.MethodGet)

	return corsMiddleware(router)
}

type restServer struct {
	backend Backend
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, err error) {
	kind := Internal
	if e, ok := err.(*Error); ok {
		kind = e.Kind
	}
	status := http.StatusInternalServerError
	switch kind {
	case NotFound:
		status = http.StatusNotFound
	case InvalidInput:
		status = http.StatusBadRequest
	case Internal:
		status = http.StatusInternalServerError
	}
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
}

func (rs *restServer) listBlocks(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, NewInvalidInputError("limit must be a non-negative integer"))
			return
		}
		limit = n
	}
	blocks, err := rs.backend.ListBlocks(limit)
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(blocks)
}

func (rs *restServer) getBlock(w http.ResponseWriter, r *http.Request) {
	hash, err := types.ParseHash(mux.Vars(r)["hash"])
	if err != nil {
		writeError(w, NewInvalidInputError(err.Error()))
		return
	}
	block, err := rs.backend.GetBlock(hash)
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(block)
}

func (rs *restServer) getTransaction(w http.ResponseWriter, r *http.Request) {
	hash, err := types.ParseHash(mux.Vars(r)["hash"])
	if err != nil {
		writeError(w, NewInvalidInputError(err.Error()))
		return
	}
	tx, err := rs.backend.GetTransaction(hash)
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(tx)
}

func (rs *restServer) getAccount(w http.ResponseWriter, r *http.Request) {
	addr, err := types.ParseAddress(mux.Vars(r)["address"])
	if err != nil {
		writeError(w, NewInvalidInputError(err.Error()))
		return
	}
	account, err := rs.backend.GetAccount(addr)
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(account)
}

func (rs *restServer) listValidators(w http.ResponseWriter, r *http.Request) {
	validators, err := rs.backend.ListValidators()
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(validators)
}

func (rs *restServer) openAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(openAPISpec))
}

func (rs *restServer) docs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(docsHTML))
}

const openAPISpec = `{
  "openapi": "3.0.0",
  "info": {"title": "mbongo chain REST API", "version": "1.0.0"},
  "paths": {
    "/blocks": {"get": {"summary": "List recent blocks"}},
    "/blocks/{hash}": {"get": {"summary": "Get a block by hash"}},
    "/transactions/{hash}": {"get": {"summary": "Get a transaction by hash"}},
    "/accounts/{address}": {"get": {"summary": "Get account balance and nonce"}},
    "/validators": {"get": {"summary": "List active validators"}}
  }
}`

const docsHTML = `<!DOCTYPE html>
<html><head><title>mbongo chain API</title></head>
<body>
<h1>mbongo chain REST API</h1>
<p>See <a href="/openapi.json">/openapi.json</a> for the machine-readable spec.</p>
<ul>
<li>GET /blocks</li>
<li>GET /blocks/{hash}</li>
<li>GET /transactions/{hash}</li>
<li>GET /accounts/{address}</li>
<li>GET /validators</li>
</ul>
</body></html>`
