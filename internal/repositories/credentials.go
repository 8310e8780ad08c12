package repositories

import (
	"database/sql"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/spotbird/spotmix/internal/shared"
)

// tokenKey is the well-known key the access token is persisted under.
const tokenKey = "spotify_token"

// CredentialStore persists a single opaque token string. It performs no
// validation; that belongs to the caller.
//
// Persistence being unavailable is non-fatal: Load degrades to "no saved
// token" and Save/Clear log and move on. A nil database is treated the same
// way, so callers never need to special-case a failed open.
type CredentialStore struct {
	db     *sql.DB
	logger *log.Logger
}

// NewCredentialStore creates a CredentialStore on the given database, which
// may be nil when local storage could not be opened.
func NewCredentialStore(db *sql.DB, logger *log.Logger) *CredentialStore {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &CredentialStore{db: db, logger: shared.WithLogger(logger, "component", "store")}
}

// Load retrieves the saved token. The second return value is false when no
// token is stored or storage is unavailable.
func (s *CredentialStore) Load() (string, bool) {
	if s.db == nil {
		return "", false
	}

	var token string
	err := s.db.QueryRow("SELECT value FROM credentials WHERE key = ?", tokenKey).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		s.logger.Debug("credential load failed", "error", err)
		return "", false
	}
	if token == "" {
		return "", false
	}

	return token, true
}

// Save stores the token, replacing any previous value.
func (s *CredentialStore) Save(token string) {
	if s.db == nil {
		return
	}

	query := `
		INSERT INTO credentials (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := s.db.Exec(query, tokenKey, token); err != nil {
		s.logger.Warn("credential save failed", "error", err)
	}
}

// Clear removes the saved token.
func (s *CredentialStore) Clear() {
	if s.db == nil {
		return
	}

	if _, err := s.db.Exec("DELETE FROM credentials WHERE key = ?", tokenKey); err != nil {
		s.logger.Warn("credential clear failed", "error", err)
	}
}
