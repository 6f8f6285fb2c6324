package models

import "gorm.io/gorm"

const (
	// DefaultUsername is assigned when the identity provider gives us nothing better.
	DefaultUsername = "New User"
	// DefaultAvatarURL is the sentinel avatar served until the user uploads one.
	DefaultAvatarURL = "/avatars/default.png"
)

// User represents a user profile. AuthID is the subject issued by the
// external identity provider; it is unique and never changes.
type User struct {
	gorm.Model `json:"-"`
	AuthID     string `gorm:"uniqueIndex;not null;size:128" json:"authId"`
	Username   string `gorm:"size:100" json:"username"`
	College    string `gorm:"size:200" json:"college"`
	Profession string `gorm:"size:200" json:"profession"`
	Bio        string `gorm:"size:2000" json:"bio"`
	AvatarURL  string `gorm:"size:500" json:"avatarUrl"`
}

// UserCounts carries the read-time aggregates attached to profile responses.
// Nothing here is cached; every value is counted per request.
type UserCounts struct {
	SharedNotes int64 `json:"sharedNotes"`
	Followers   int64 `json:"followers"`
	Following   int64 `json:"following"`
}
