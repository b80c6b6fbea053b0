// Package cmstest provides a scripted CMS for tests.
package cmstest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/ritmdance/studio/cms"
	"github.com/ritmdance/studio/config"
	"github.com/ritmdance/studio/container"
)

// Request is a request received by the Server
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Body     []byte
}

type response struct {
	status int
	body   string
}

// Server answers CMS requests with canned bodies keyed by URL path.
// Unknown paths get a 404.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string]response
	requests  []Request
}

func NewServer() *Server {
	s := &Server{responses: map[string]response{}}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	return s
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Body:     body,
	})
	res, ok := s.responses[r.URL.Path]
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"data":null,"error":{"status":404,"name":"NotFoundError"}}`)
		return
	}

	w.WriteHeader(res.status)
	_, _ = io.WriteString(w, res.body)
}

// Handle scripts the response for path
func (s *Server) Handle(path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[path] = response{status: status, body: body}
}

// JSON scripts a 200 response for path
func (s *Server) JSON(path, body string) {
	s.Handle(path, http.StatusOK, body)
}

// Requests returns the requests received so far
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Container wires a container whose CMS client talks to this server, with
// no cache and no worker
func (s *Server) Container(cfg *config.Config) *container.Container {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &container.Container{
		Config: cfg,
		CMS:    cms.NewClient(cms.Options{BaseURL: s.URL}),
	}
}
