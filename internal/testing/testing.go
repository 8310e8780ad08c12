// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/spotbird/spotmix/internal/models"
	"github.com/spotbird/spotmix/internal/services"
)

// MockService is a scripted test double for [services.Service]: each call
// returns the preset outcome and records the inputs it was given.
type MockService struct {
	AuthOutcome   services.Outcome[services.SessionResult]
	GenresOutcome services.Outcome[[]string]
	ExecOutcome   services.Outcome[[]models.ResultLink]

	AuthCalls   []string
	GenresCalls int
	ExecCalls   []models.PlaylistRequest
	ExecTokens  []string
}

func (m *MockService) Authenticate(ctx context.Context, token string) services.Outcome[services.SessionResult] {
	m.AuthCalls = append(m.AuthCalls, token)
	return m.AuthOutcome
}

func (m *MockService) FetchGenres(ctx context.Context) services.Outcome[[]string] {
	m.GenresCalls++
	return m.GenresOutcome
}

func (m *MockService) ExecuteGeneration(ctx context.Context, token string, req models.PlaylistRequest) services.Outcome[[]models.ResultLink] {
	m.ExecTokens = append(m.ExecTokens, token)
	m.ExecCalls = append(m.ExecCalls, req)
	return m.ExecOutcome
}

func (m *MockService) Name() string { return "mock" }

// MemStore is an in-memory credential store.
type MemStore struct {
	Token  string
	Saves  int
	Clears int
}

func (s *MemStore) Load() (string, bool) { return s.Token, s.Token != "" }

func (s *MemStore) Save(token string) {
	s.Token = token
	s.Saves++
}

func (s *MemStore) Clear() {
	s.Token = ""
	s.Clears++
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}
