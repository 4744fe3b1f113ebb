package testutils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
)

// FakeRoastServer stands in for the roast generation service. It answers
// every request with one canned roast per team in the request body and
// remembers the last prompt it was sent so tests can assert on it.
type FakeRoastServer struct {
	s *httptest.Server

	mu         sync.Mutex
	lastPrompt string
	failNext   bool
}

func NewFakeRoastServer() *FakeRoastServer {
	f := &FakeRoastServer{}
	f.s = httptest.NewServer(http.HandlerFunc(f.handle))
	return f
}

func (f *FakeRoastServer) Close() {
	f.s.Close()
}

func (f *FakeRoastServer) URL() string {
	return f.s.URL
}

// LastPrompt returns the prompt from the most recent generation request.
func (f *FakeRoastServer) LastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastPrompt
}

// FailNext makes the next generation request answer with a 502.
func (f *FakeRoastServer) FailNext() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failNext = true
}

func (f *FakeRoastServer) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != "/generate" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var req struct {
		Prompt string `json:"prompt"`
		Teams  []struct {
			TeamID string `json:"team_id"`
		} `json:"teams"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.lastPrompt = req.Prompt
	fail := f.failNext
	f.failNext = false
	f.mu.Unlock()

	if fail {
		http.Error(w, "model overloaded", http.StatusBadGateway)
		return
	}

	roasts := make(map[string]string, len(req.Teams))
	for _, t := range req.Teams {
		roasts[t.TeamID] = fmt.Sprintf("canned roast for team %s", t.TeamID)
	}

	w.Header().Add("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"roasts": roasts})
}
