// Package repositories provides the persistence layer for locally stored
// client state. The only persisted value is the backend access token, kept in
// a SQLite credentials table.
package repositories
