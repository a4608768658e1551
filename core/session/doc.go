// Package session holds the in-memory representation of the current user
// session: the access token together with the claims decoded from it.
//
// A Session is a value type and is either fully populated or fully empty;
// there is no partial state. State is the observable owner of the current
// Session for one process (one browser-tab equivalent) and notifies
// subscribers on every change so UI-facing code can react to login and
// logout without polling.
//
// No network calls originate here. Refreshing an expired session is the job
// of core/refresh.
package session
