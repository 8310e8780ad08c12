package models

import (
	"fmt"
	"strings"
)

// UserProfile holds the profile fields the backend returns on authentication.
// Immutable once received; discarded with the owning [Session].
type UserProfile struct {
	DisplayName string
	ID          string
	ImageURL    string
}

// Session represents an authenticated session with the backend.
// The token is opaque; the client stores and forwards it, never parses it.
type Session struct {
	Token   string
	Profile *UserProfile
}

// Authenticated reports whether the session holds a token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// DisplayName returns the profile display name, or fallback when absent.
func (s Session) DisplayName(fallback string) string {
	if s.Profile != nil && s.Profile.DisplayName != "" {
		return s.Profile.DisplayName
	}
	return fallback
}

// PlaylistRequest is the payload for a generation run, built from form state
// at submission time.
type PlaylistRequest struct {
	Name        string
	Description string
	TrackCount  int
	Genres      []string
}

// Validate checks the request before it is allowed to reach the backend.
// Track count must already be a positive integer; non-numeric input is a
// form-level concern and never produces a PlaylistRequest at all.
func (r PlaylistRequest) Validate() error {
	if r.TrackCount <= 0 {
		return fmt.Errorf("track count must be a positive number, got %d", r.TrackCount)
	}
	if len(r.Genres) == 0 {
		return fmt.Errorf("select at least one genre")
	}
	for _, g := range r.Genres {
		if strings.TrimSpace(g) == "" {
			return fmt.Errorf("empty genre identifier")
		}
	}
	return nil
}

// ResultLink is a playlist created by a successful generation run.
// Link order matches the backend response order.
type ResultLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Severity classifies a [Notification] for presentation.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return ""
	}
}

// Notification is a transient message with a fixed display lifetime.
// At most one is live at a time; a newer one replaces the current one.
type Notification struct {
	Message  string
	Severity Severity
}

// ErrorKind classifies an [ErrorContext].
type ErrorKind int

const (
	ErrorRateLimited ErrorKind = iota
	ErrorAuthFailed
	ErrorForbidden
	ErrorGeneric
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorRateLimited:
		return "rate_limited"
	case ErrorAuthFailed:
		return "auth_failed"
	case ErrorForbidden:
		return "forbidden"
	case ErrorGeneric:
		return "generic"
	default:
		return ""
	}
}

// ErrorContext is the payload of the paused error view. It exists only while
// that view is active. RetryAfter is in seconds; zero means the backend gave
// no wait hint.
type ErrorContext struct {
	Kind       ErrorKind
	Message    string
	RetryAfter int
}
