package models

import "time"

// Follow is a single directed edge in the follow graph: FollowerID follows
// FolloweeID. One row carries both sides of the relationship, so follower
// and following views can never disagree. Both columns hold auth IDs.
type Follow struct {
	ID         uint   `gorm:"primaryKey"`
	FollowerID string `gorm:"uniqueIndex:idx_follows_edge;not null;size:128"`
	FolloweeID string `gorm:"uniqueIndex:idx_follows_edge;not null;size:128"`
	CreatedAt  time.Time
}
