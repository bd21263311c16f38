package services

import (
	"time"

	"soclone/internal/db"
	"soclone/internal/models"

	"gorm.io/gorm/clause"
)

// ViewService keeps the per-question view statistics: a raw event log of
// every (question, identity, ip) combination seen, and the deduplicated
// unique-view table the displayed count comes from.
type ViewService struct{}

func NewViewService() *ViewService {
	return &ViewService{}
}

// RecordView registers a view of a question by the given identity. userID is
// nil for anonymous visitors, whose ip stands in as identity. Calling it any
// number of times for the same (question, identity) leaves exactly one
// unique-view row; both writes are single INSERT .. ON CONFLICT statements
// against storage-enforced unique indexes, so concurrent requests cannot
// create duplicates.
func (s *ViewService) RecordView(questionID uint, userID *uint, ip string) error {
	var question models.Question
	if err := db.DB.Select("id").First(&question, questionID).Error; err != nil {
		return err // gorm.ErrRecordNotFound propagates to the caller
	}

	// Raw event log. A repeat visit from the same address only refreshes
	// updated_at; a new address for the same identity makes a new row.
	event := models.QuestionViewIP{
		QuestionID: questionID,
		UserID:     userID,
		IPAddress:  ip,
	}
	err := db.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "question_id"}, {Name: "user_id"}, {Name: "ip_address"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{"updated_at": time.Now()}),
	}).Create(&event).Error
	if err != nil {
		return err
	}

	view := models.QuestionView{QuestionID: questionID}
	conflict := clause.OnConflict{DoNothing: true}

	if userID != nil {
		view.UserID = userID
		conflict.Columns = []clause.Column{{Name: "question_id"}, {Name: "user_id"}}
		conflict.TargetWhere = clause.Where{Exprs: []clause.Expression{
			clause.Expr{SQL: "user_id IS NOT NULL"},
		}}
	} else {
		// Anonymous identity is keyed through the raw event carrying the ip.
		// The lookup is scoped to this question on purpose: an address with
		// views on several questions must bind to the event for the question
		// just viewed, not to whichever row happens to come back first.
		var latest models.QuestionViewIP
		if err := db.DB.
			Where("question_id = ? AND ip_address = ?", questionID, ip).
			Order("updated_at DESC").
			First(&latest).Error; err != nil {
			return err
		}
		view.IPID = &latest.ID
		conflict.Columns = []clause.Column{{Name: "question_id"}, {Name: "ip_id"}}
		conflict.TargetWhere = clause.Where{Exprs: []clause.Expression{
			clause.Expr{SQL: "ip_id IS NOT NULL"},
		}}
	}

	return db.DB.Clauses(conflict).Create(&view).Error
}

// ViewCount returns the number of distinct identities that viewed a question.
func (s *ViewService) ViewCount(questionID uint) (int64, error) {
	var count int64
	err := db.DB.Model(&models.QuestionView{}).
		Where("question_id = ?", questionID).
		Count(&count).Error
	return count, err
}
