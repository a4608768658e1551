// Package handler wires the HTTP surface: the auth endpoints the browser
// talks to, a couple of session-aware routes, and the request middleware
// stack. All session reads go through the gate's request context; handlers
// never touch cookies directly except through the gate.
package handler
