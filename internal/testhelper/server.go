// Package testhelper provides a fake collection server for client tests
package testhelper

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// Location mirrors the resource location payload served on OPTIONS
type Location struct {
	ID              string `json:"id"`
	Area            string `json:"area"`
	ResourceName    string `json:"resourceName"`
	RouteTemplate   string `json:"routeTemplate"`
	ResourceVersion int    `json:"resourceVersion"`
	MinVersion      string `json:"minVersion"`
	MaxVersion      string `json:"maxVersion"`
	ReleasedVersion string `json:"releasedVersion"`
}

// ResourceAreasLocation is where connections look up the host of an area
var ResourceAreasLocation = Location{
	ID:              "e81700f7-3be2-46de-8624-2eb35882fcaa",
	Area:            "Location",
	ResourceName:    "ResourceAreas",
	RouteTemplate:   "_apis/{resource}/{areaId}",
	ResourceVersion: 1,
	MinVersion:      "3.2",
	MaxVersion:      "5.0",
	ReleasedVersion: "0.0",
}

// Request is a recorded request
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// Server answers location lookups for registered areas and routes other requests
// to registered handlers. Unmatched requests get a 404.
type Server struct {
	*httptest.Server

	mu           sync.Mutex
	areas        map[string][]Location
	routes       map[string]http.HandlerFunc
	requests     []Request
	optionsCalls map[string]int
}

// NewServer starts a server that is closed when the test ends
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		areas:        make(map[string][]Location),
		routes:       make(map[string]http.HandlerFunc),
		optionsCalls: make(map[string]int),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serveHTTP))
	t.Cleanup(s.Close)
	return s
}

// AddLocations registers locations served for OPTIONS /_apis/{area}
func (s *Server) AddLocations(area string, locations ...Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(area)
	s.areas[key] = append(s.areas[key], locations...)
}

// Handle registers h for method and path (without query)
func (s *Server) Handle(method, path string, h http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[method+" "+path] = h
}

// HandleJSON registers a handler replying with body encoded as JSON
func (s *Server) HandleJSON(method, path string, status int, body any) {
	s.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	})
}

// HandleText registers a handler replying with a raw body
func (s *Server) HandleText(method, path, contentType, body string) {
	s.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		_, _ = io.WriteString(w, body)
	})
}

// OnPremises answers resource area lookups the way on-premises servers do, with
// a null value, which makes every area client talk to this server
func (s *Server) OnPremises() {
	s.AddLocations("Location", ResourceAreasLocation)
	s.HandleJSON(http.MethodGet, "/_apis/ResourceAreas", http.StatusOK, map[string]any{
		"count": 0,
		"value": nil,
	})
}

// Requests returns the non-OPTIONS requests received so far
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// LastRequest returns the most recent non-OPTIONS request
func (s *Server) LastRequest(t testing.TB) Request {
	t.Helper()
	reqs := s.Requests()
	if len(reqs) == 0 {
		t.Fatal("no requests received")
	}
	return reqs[len(reqs)-1]
}

// OptionsCalls returns how many location lookups area received
func (s *Server) OptionsCalls(area string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.optionsCalls[strings.ToLower(area)]
}

func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		if area, ok := strings.CutPrefix(r.URL.Path, "/_apis/"); ok && !strings.Contains(area, "/") {
			s.serveLocations(w, r, strings.ToLower(area))
			return
		}
	}

	body, _ := io.ReadAll(r.Body)
	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method:   r.Method,
		Path:     r.URL.EscapedPath(),
		RawQuery: r.URL.RawQuery,
		Header:   r.Header.Clone(),
		Body:     body,
	})
	h, ok := s.routes[r.Method+" "+r.URL.EscapedPath()]
	s.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	h(w, r)
}

func (s *Server) serveLocations(w http.ResponseWriter, r *http.Request, area string) {
	s.mu.Lock()
	s.optionsCalls[area]++
	locations, ok := s.areas[area]
	s.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"count": len(locations),
		"value": locations,
	})
}
