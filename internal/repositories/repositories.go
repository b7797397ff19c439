// package repositories provides the local storage persistence layer.
//
// The storage table is a key-value mirror of the browser localStorage the
// Zenith web client uses: a flat namespace of string keys with last-write-wins
// semantics and no validation. [SessionStore] layers the well-known keys
// (token, username, theme, per-user profile fields) on top of the raw
// [StorageRepository].
package repositories
