// Package auth implements the token based authentication core: signed token
// issuance and verification, credential checks at login and registration, and
// the per request principal model.
//
// Tokens:
//   - TokenService signs a fixed claim set (subject, issued-at, expires-at,
//     role) with HMAC-SHA256 over a shared secret. Verification always happens
//     before any claim is read; expiry is reported distinctly from signature
//     or structural failures so logs can separate stale tokens from tampering,
//     while the HTTP boundary collapses all of them into one 401.
//
// Credentials:
//   - Auther re-verifies a username/password pair against the stored bcrypt
//     hash on every login and only then mints a token. Unknown usernames and
//     bad passwords produce the same boundary error.
//
// Principals:
//   - A Principal (username, role, derived authorities) is built fresh for
//     each authenticated request and travels in the request context, never in
//     shared mutable state.
package auth
