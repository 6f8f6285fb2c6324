package models

import "gorm.io/gorm"

// Note represents an uploaded study note. Likes and Dislikes are kept in
// step with the reaction rows inside the same transaction; the rows are the
// source of truth.
type Note struct {
	gorm.Model  `json:"-"`
	PublicID    string `gorm:"uniqueIndex;size:100" json:"id"`
	Title       string `gorm:"not null;size:200" json:"title"`
	Description string `gorm:"size:2000" json:"description"`
	Year        string `gorm:"size:50" json:"year"`
	Semester    string `gorm:"size:50" json:"semester"`
	Subject     string `gorm:"size:200" json:"subject"`

	// Uploader is the display name at upload time; it may drift from the
	// live username. UploaderUID is immutable.
	Uploader    string `gorm:"size:100" json:"uploader"`
	UploaderUID string `gorm:"index;not null;size:128" json:"uploaderUid"`

	Filename string `gorm:"size:500" json:"filename"`
	FileURL  string `gorm:"size:500" json:"fileUrl"`

	Likes    int `gorm:"default:0" json:"likes"`
	Dislikes int `gorm:"default:0" json:"dislikes"`

	Reactions []Reaction `gorm:"foreignKey:NoteID" json:"-"`
}
