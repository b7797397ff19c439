// Package services contains the HTTP client layer for the Zenith backend.
//
// The [Backend] interface covers every endpoint the client consumes; the
// [ZenithService] implementation speaks to a single backend origin, attaching
// the session's bearer token on protected calls via [oauth2] and throttling
// requests through a client-side rate limiter.
//
// [APIService] is a lower-level escape hatch for raw GET/POST requests against
// the same origin, used by the debugging CLI commands.
package services
