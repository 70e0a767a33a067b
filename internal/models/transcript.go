package models

import "fmt"

// Transcript is one successful transcription saved to a user's history.
// Records are append-only: the app creates them and never updates or
// deletes them.
type Transcript struct {
	// ID is the store-assigned identifier (UUID format).
	ID string

	// UserID is the owner; it is the {userId} segment of the storage path.
	UserID string

	// Text is the transcribed text. Never empty.
	Text string

	// Model identifies the transcription model that produced Text.
	Model string

	// CreatedAt is the server-assigned creation time in Unix nanoseconds.
	// It increases strictly across writes for the same user.
	CreatedAt int64
}

// Path returns the document path of the transcript.
func (t *Transcript) Path() string {
	return TranscriptPath(t.UserID, t.ID)
}

// TranscriptCollection returns the collection path for a user's transcripts.
func TranscriptCollection(userID string) string {
	return fmt.Sprintf("users/%s/transcriptions", userID)
}

// TranscriptPath returns the document path for one transcript.
func TranscriptPath(userID, id string) string {
	return TranscriptCollection(userID) + "/" + id
}
