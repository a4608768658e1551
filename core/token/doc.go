// Package token decodes and verifies the HS256 access tokens issued by the
// auth backend.
//
// The package deliberately exposes two operations with very different trust
// levels:
//
//   - Decode reads the payload without any signature check. It exists so that
//     session state can estimate token expiry locally; its output must never
//     be used for authorization decisions.
//   - Verifier.Verify performs full cryptographic verification (signature,
//     expiry, optional issuer/audience) and is the only path that may populate
//     an authenticated request context.
//
// Expiry is carried as unix seconds on the wire (standard JWT exp claim) and
// converted to time.Time at this boundary only.
package token
