package models

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Title     string    `gorm:"size:200;uniqueIndex;not null" json:"title"`
	Problem   string    `gorm:"type:text;uniqueIndex;not null" json:"problem"` // What is going wrong
	Effort    string    `gorm:"type:text;uniqueIndex;not null" json:"effort"`  // What was tried already
	Tags      []Tag     `gorm:"many2many:question_tags;" json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeSave re-checks the free-text minimums at the storage layer. The form
// layer validates too, this is the last line before persistence.
func (q *Question) BeforeSave(tx *gorm.DB) error {
	if err := ValidateMinLength("problem", q.Problem); err != nil {
		return err
	}
	return ValidateMinLength("effort", q.Effort)
}

// Modified reports whether the question was edited after creation. The
// auto-touch on insert puts updated_at a few microseconds after created_at,
// so anything within a second counts as untouched.
func (q *Question) Modified() bool {
	return q.UpdatedAt.Sub(q.CreatedAt) > time.Second
}
