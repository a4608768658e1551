// Package refresh coordinates access-token renewal for a session.
//
// The coordinator guarantees at most one in-flight refresh per session owner:
// concurrent callers that find the session stale share the single backend
// call and observe its one outcome instead of racing each other. This matters
// because the backend rotates refresh tokens on use; a second concurrent
// refresh would consume an already-rotated token and log the user out.
//
// Failure handling is intentionally blunt. Any error during a refresh, from a
// network timeout to a malformed grant, clears the session entirely: a
// partially failed refresh cannot be assumed valid, and forcing
// re-authentication beats running with inconsistent state. No automatic retry
// is attempted; redirecting to login is the caller's job.
package refresh
