// Package notion implements driven.SearchTransport over the Notion
// quick-find HTTP API.
//
// Requests are authenticated with the token_v2 session cookie, taken from
// an oauth2.TokenSource, and throttled by a token bucket so interactive
// typing cannot flood the backend.
package notion
