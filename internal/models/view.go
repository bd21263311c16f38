package models

import (
	"time"
)

// QuestionViewIP is the raw view-event log: one row per observed
// (question, user, ip) combination, kept for later analysis. A returning
// visitor from the same address only touches updated_at; the same identity
// showing up from a new address gets a new row.
//
// The uniqueness key includes the nullable user_id, so the index is created
// with NULLS NOT DISTINCT in db.Migrate. A plain uniqueIndex tag would treat
// every anonymous row as distinct and the upsert would never conflict.
type QuestionViewIP struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	QuestionID uint      `gorm:"not null;index" json:"question_id"`
	Question   Question  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"question"`
	UserID     *uint     `gorm:"index" json:"user_id"` // NULL for anonymous visitors
	User       *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	IPAddress  string    `gorm:"size:50;not null" json:"ip_address"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// QuestionView is the canonical "this identity has viewed this question"
// fact, the table the views count is taken from. Exactly one of UserID and
// IPID is set: registered users are keyed directly, anonymous visitors
// through the raw event row that carries their address. Partial unique
// indexes on (question_id, user_id) and (question_id, ip_id) are created in
// db.Init.
type QuestionView struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	QuestionID uint            `gorm:"not null;index" json:"question_id"`
	Question   Question        `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"question"`
	UserID     *uint           `gorm:"index" json:"user_id"`
	User       *User           `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	IPID       *uint           `gorm:"index" json:"ip_id"`
	IP         *QuestionViewIP `gorm:"foreignKey:IPID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"ip"`
	CreatedAt  time.Time       `json:"created_at"`
}
