package api

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/ssargent/gobpt/pkg/index"
)

// Server holds the API server state: just the one index it fronts.
type Server struct {
	idx *index.Index
}

// NewServer creates a new API server over idx.
func NewServer(idx *index.Index) *Server {
	return &Server{idx: idx}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]interface{}{"status": "healthy", "height": s.idx.Height()})
}

func (s *Server) handlePut(w http.ResponseWriter, r *http.Request) {
	key, err := unescapedKeyParam(r)
	if err != nil {
		sendError(w, "Invalid key encoding", http.StatusBadRequest)
		return
	}
	if key == "" {
		sendError(w, "key is required", http.StatusBadRequest)
		return
	}

	value, err := io.ReadAll(r.Body)
	if err != nil {
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	existed, err := s.idx.Put([]byte(key), value)
	if err != nil {
		sendError(w, fmt.Sprintf("Failed to put key: %v", err), http.StatusInternalServerError)
		return
	}
	sendSuccess(w, map[string]interface{}{"key": key, "overwritten": existed})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	key, err := unescapedKeyParam(r)
	if err != nil {
		sendError(w, "Invalid key encoding", http.StatusBadRequest)
		return
	}
	if key == "" {
		sendError(w, "key is required", http.StatusBadRequest)
		return
	}

	value, ok := s.idx.Get([]byte(key))
	if !ok {
		sendError(w, "Key not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(value)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	key, err := unescapedKeyParam(r)
	if err != nil {
		sendError(w, "Invalid key encoding", http.StatusBadRequest)
		return
	}
	if key == "" {
		sendError(w, "key is required", http.StatusBadRequest)
		return
	}

	existed, err := s.idx.Delete([]byte(key))
	if err != nil {
		sendError(w, fmt.Sprintf("Failed to delete key: %v", err), http.StatusInternalServerError)
		return
	}
	if !existed {
		sendError(w, "Key not found", http.StatusNotFound)
		return
	}
	sendSuccess(w, map[string]string{"message": "key deleted"})
}

// handleKeys streams every key in ascending order, the leaf-chain
// traversal pkg/index.Index.Range exposes; it is not a range query
// (Non-goal), so there is no start/end/prefix parameter to accept.
func (s *Server) handleKeys(w http.ResponseWriter, r *http.Request) {
	var keys []string
	s.idx.Range(func(key, value []byte) bool {
		keys = append(keys, string(key))
		return true
	})
	sendSuccess(w, map[string]interface{}{"keys": keys})
}

func unescapedKeyParam(r *http.Request) (string, error) {
	return url.QueryUnescape(chi.URLParam(r, "key"))
}
