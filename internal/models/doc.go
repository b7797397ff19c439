// Package models defines the client-side data model for the Zenith mood client.
//
// All entities are transient copies of backend state except [Session] and
// [Profile], which are persisted in the local storage database:
//   - [Session] : Bearer token and username, created at login and destroyed at logout
//   - [MoodScores] : The four survey scores submitted to playlist generation
//   - [Playlist] : A saved playlist owned by the backend, fetched read-only
//   - [Track] : A track inside a generated playlist, fetched per viewer open
//   - [Song] : An entry from the shared song catalog
//   - [Profile] : Locally edited profile fields, never sent to the backend
package models
