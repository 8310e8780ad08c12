// Package ui implements the interactive terminal client using bubbletea's Elm
// architecture.
//
// The [Model] is a finite view-state machine over six views:
//  1. [LoggedOutView] : token entry
//  2. [AuthenticatingView] : silent session recovery on startup
//  3. [DashboardView] : generation form and genre picker
//  4. [ProcessingView] : synthetic progress while a run is outstanding
//  5. [SuccessView] : result links
//  6. [ErrorPausedView] : rate-limit pause with retry guidance
//
// Update is the single reducer: user keys and resolved backend outcomes are
// the only inputs, and every transition keeps the view and its payload fields
// consistent (result links exist only in SuccessView, the error context only
// in ErrorPausedView).
//
// Timers are identity-checked. The progress simulator's ticks carry the uuid
// of the run that scheduled them and the notification expiry carries the
// sequence of the toast it was armed for, so a stale timer can never disturb
// newer state. The same applies to in-flight backend calls: a resolution whose
// request id no longer matches the current one is dropped.
package ui
