// Package models defines the core domain models for Scribe.
//
// # Models
//
//   - User: registered account held by the identity provider
//   - Transcript: one persisted transcription, owned by exactly one user
//
// # Design Principles
//
// 1. **Ownership by path**: transcripts live under users/{userId}/transcriptions;
//    the store scopes every read and write by user ID instead of checking
//    ownership after the fact.
// 2. **Server time**: timestamps are assigned by the store, never by clients.
// 3. **Avoid circular references**: relationships are ID strings, not pointers.
package models
