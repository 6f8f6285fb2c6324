// Package social maintains the follow graph. Each relationship is one row
// in the follows table, so the follower and following views of an edge can
// never disagree and no reconciliation sweep is needed.
package social

import (
	"errors"
	"fmt"

	"noteshare/apperrors"
	"noteshare/models"

	"gorm.io/gorm"
)

// Follow makes currentUID follow targetUID. The caller's profile is created
// lazily by the auth middleware before this runs; the target must already
// exist.
func Follow(db *gorm.DB, currentUID, targetUID string) error {
	if currentUID == "" || targetUID == "" {
		return fmt.Errorf("%w: missing user id", apperrors.ErrInvalidRequest)
	}
	if currentUID == targetUID {
		return fmt.Errorf("%w: cannot follow yourself", apperrors.ErrInvalidRequest)
	}

	var target models.User
	if err := db.Where("auth_id = ?", targetUID).First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %s", apperrors.ErrNotFound, targetUID)
		}
		return err
	}

	following, err := IsFollowing(db, currentUID, targetUID)
	if err != nil {
		return err
	}
	if following {
		return fmt.Errorf("%w: already following this user", apperrors.ErrConflict)
	}

	edge := models.Follow{FollowerID: currentUID, FolloweeID: targetUID}
	if err := db.Create(&edge).Error; err != nil {
		// Losing the race to a concurrent insert is still a duplicate follow.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: already following this user", apperrors.ErrConflict)
		}
		return err
	}
	return nil
}

// Unfollow removes the edge if present. Unfollowing someone you never
// followed is a no-op, not an error.
func Unfollow(db *gorm.DB, currentUID, targetUID string) error {
	if currentUID == "" || targetUID == "" {
		return fmt.Errorf("%w: missing user id", apperrors.ErrInvalidRequest)
	}
	return db.Where("follower_id = ? AND followee_id = ?", currentUID, targetUID).
		Delete(&models.Follow{}).Error
}

// IsFollowing reports whether currentUID follows targetUID.
func IsFollowing(db *gorm.DB, currentUID, targetUID string) (bool, error) {
	var count int64
	err := db.Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", currentUID, targetUID).
		Count(&count).Error
	return count > 0, err
}

// Counts computes the aggregates shown on a profile. Always counted at read
// time, never cached.
func Counts(db *gorm.DB, authID string) (models.UserCounts, error) {
	var counts models.UserCounts

	if err := db.Model(&models.Note{}).Where("uploader_uid = ?", authID).
		Count(&counts.SharedNotes).Error; err != nil {
		return counts, err
	}
	if err := db.Model(&models.Follow{}).Where("followee_id = ?", authID).
		Count(&counts.Followers).Error; err != nil {
		return counts, err
	}
	if err := db.Model(&models.Follow{}).Where("follower_id = ?", authID).
		Count(&counts.Following).Error; err != nil {
		return counts, err
	}
	return counts, nil
}
