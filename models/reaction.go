package models

import "time"

type ReactionKind string

const (
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
)

// Opposite returns the other reaction kind.
func (k ReactionKind) Opposite() ReactionKind {
	if k == ReactionLike {
		return ReactionDislike
	}
	return ReactionLike
}

// Valid reports whether k is one of the two supported kinds.
func (k ReactionKind) Valid() bool {
	return k == ReactionLike || k == ReactionDislike
}

// Reaction is one user's reaction to one note. The unique index makes a user
// hold at most one reaction per note, so like/dislike mutual exclusivity
// cannot be violated by construction.
type Reaction struct {
	ID        uint         `gorm:"primaryKey"`
	NoteID    uint         `gorm:"uniqueIndex:idx_reactions_note_user;not null"`
	UserID    string       `gorm:"uniqueIndex:idx_reactions_note_user;not null;size:128"`
	Kind      ReactionKind `gorm:"not null;size:10"`
	CreatedAt time.Time
}
