// Package models defines the data model for the playlist generation client.
//
// The types here are deliberately free of transport and storage concerns:
// [Session] and [UserProfile] describe the authenticated user, [PlaylistRequest]
// the generation payload built from form state, [ResultLink] a created playlist,
// and [ErrorContext]/[Notification] the presentation payloads of the error and
// toast surfaces. [GenreSelection] is the in-memory toggle set backing the
// genre picker.
package models
