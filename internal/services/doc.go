// Package services implements the client side of the playlist generation
// backend contract.
//
// Every remote call resolves to a classified [Outcome] rather than a bare
// error: the backend reports failures in a well-formed body with a `status`
// discriminator, and only transport-level problems (network failure, timeout,
// malformed body) surface as [Transport]. Retry policy lives entirely with the
// caller; nothing here retries automatically.
package services
