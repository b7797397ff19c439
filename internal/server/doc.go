// Package server provides the local HTTP routing used during the Spotify
// authorization hand-off.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first),
// following the standard Go pattern. The [BasicRouter] implementation uses
// [http.ServeMux] internally with method filtering.
//
// # Callback Landing Handler
//
// The Zenith backend owns the Spotify OAuth code exchange. After login the
// client opens the authorization URL in the user's browser; once the backend
// finishes the exchange, the browser lands on [CallbackHandler], which shows
// a completion page and signals the waiting CLI through a channel. Only the
// first request is processed.
package server
