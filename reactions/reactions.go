// Package reactions implements the like/dislike toggle on notes.
//
// A user holds at most one reaction row per note; the rows are the source of
// truth and the note's Likes/Dislikes counters are adjusted with atomic SQL
// expressions inside the same transaction, so counters and rows cannot
// drift under concurrent toggles from different users.
package reactions

import (
	"errors"
	"fmt"
	"log"

	"noteshare/apperrors"
	"noteshare/models"

	"gorm.io/gorm"
)

// Summary is the counter pair returned to callers after a toggle.
type Summary struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}

// Toggle applies the tri-state reaction cycle for one user on one note:
// an existing opposite reaction is switched, an existing identical reaction
// is removed, and no reaction becomes a new one. It returns the counters
// after the change.
func Toggle(db *gorm.DB, notePublicID, userID string, kind models.ReactionKind) (Summary, error) {
	if userID == "" {
		return Summary{}, fmt.Errorf("%w: missing user id", apperrors.ErrInvalidRequest)
	}
	if !kind.Valid() {
		return Summary{}, fmt.Errorf("%w: unknown reaction kind %q", apperrors.ErrInvalidRequest, kind)
	}

	var note models.Note
	if err := db.Where("public_id = ?", notePublicID).First(&note).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Summary{}, fmt.Errorf("%w: note %s", apperrors.ErrNotFound, notePublicID)
		}
		return Summary{}, err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var existing models.Reaction
		result := tx.Where("note_id = ? AND user_id = ?", note.ID, userID).First(&existing)

		switch {
		case result.Error == nil && existing.Kind == kind.Opposite():
			// Switch: flip the row, move one count across.
			if err := tx.Model(&existing).Update("kind", kind).Error; err != nil {
				return err
			}
			if err := decrement(tx, note.ID, kind.Opposite()); err != nil {
				return err
			}
			return increment(tx, note.ID, kind)

		case result.Error == nil:
			// Toggle off: drop the row, give the count back.
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			return decrement(tx, note.ID, kind)

		case errors.Is(result.Error, gorm.ErrRecordNotFound):
			reaction := models.Reaction{NoteID: note.ID, UserID: userID, Kind: kind}
			if err := tx.Create(&reaction).Error; err != nil {
				return err
			}
			return increment(tx, note.ID, kind)

		default:
			return result.Error
		}
	})
	if err != nil {
		return Summary{}, err
	}

	var after models.Note
	if err := db.Select("likes", "dislikes").Where("id = ?", note.ID).First(&after).Error; err != nil {
		return Summary{}, err
	}
	return Summary{Likes: after.Likes, Dislikes: after.Dislikes}, nil
}

func counterColumn(kind models.ReactionKind) string {
	if kind == models.ReactionLike {
		return "likes"
	}
	return "dislikes"
}

func increment(tx *gorm.DB, noteID uint, kind models.ReactionKind) error {
	col := counterColumn(kind)
	return tx.Model(&models.Note{}).Where("id = ?", noteID).
		UpdateColumn(col, gorm.Expr(col+" + 1")).Error
}

// decrement clamps at zero. A counter already at zero when a reaction row is
// being removed means rows and counters were out of step beforehand; that is
// logged as a data-integrity error, not propagated.
func decrement(tx *gorm.DB, noteID uint, kind models.ReactionKind) error {
	col := counterColumn(kind)
	var current models.Note
	if err := tx.Select("likes", "dislikes").Where("id = ?", noteID).First(&current).Error; err != nil {
		return err
	}
	value := current.Likes
	if kind == models.ReactionDislike {
		value = current.Dislikes
	}
	if value <= 0 {
		log.Printf("reactions: data integrity error: %s counter already 0 on note %d during removal", col, noteID)
		return nil
	}
	return tx.Model(&models.Note{}).Where("id = ?", noteID).
		UpdateColumn(col, gorm.Expr("CASE WHEN "+col+" > 0 THEN "+col+" - 1 ELSE 0 END")).Error
}
