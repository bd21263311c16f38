package services

import (
	"fmt"
	"time"

	"soclone/internal/db"
	"soclone/internal/models"

	"gorm.io/gorm/clause"
)

// VoteTarget selects which entity family a usefulness vote lands on.
type VoteTarget string

const (
	TargetQuestion VoteTarget = "question"
	TargetAnswer   VoteTarget = "answer"
)

// ParseVoteTarget maps the :type route param to a VoteTarget.
func ParseVoteTarget(s string) (VoteTarget, error) {
	switch VoteTarget(s) {
	case TargetQuestion, TargetAnswer:
		return VoteTarget(s), nil
	}
	return "", fmt.Errorf("unknown vote target %q", s)
}

// RatingService records usefulness votes on questions and answers through one
// shared upsert path, and aggregates net scores.
type RatingService struct{}

func NewRatingService() *RatingService {
	return &RatingService{}
}

// Rate applies the voter's usefulness vote to the target, creating the vote
// row on first vote and flipping it in place on repeat votes. The write is a
// single INSERT .. ON CONFLICT DO UPDATE keyed by the per-target unique
// index, so racing votes from the same user converge to one row, last write
// wins. Returns the id of the question to land back on (for answers, the
// parent question).
func (s *RatingService) Rate(target VoteTarget, targetID, userID uint, useful bool) (uint, error) {
	var (
		vote       interface{}
		questionID uint
		key        []clause.Column
	)

	switch target {
	case TargetQuestion:
		var question models.Question
		if err := db.DB.Select("id").First(&question, targetID).Error; err != nil {
			return 0, err
		}
		questionID = question.ID
		vote = &models.QuestionVote{QuestionID: targetID, UserID: userID, IsUseful: useful}
		key = []clause.Column{{Name: "question_id"}, {Name: "user_id"}}
	case TargetAnswer:
		var answer models.Answer
		if err := db.DB.Select("id, question_id").First(&answer, targetID).Error; err != nil {
			return 0, err
		}
		questionID = answer.QuestionID
		vote = &models.AnswerVote{AnswerID: targetID, UserID: userID, IsUseful: useful}
		key = []clause.Column{{Name: "answer_id"}, {Name: "user_id"}}
	default:
		return 0, fmt.Errorf("unknown vote target %q", target)
	}

	err := db.DB.Clauses(clause.OnConflict{
		Columns: key,
		DoUpdates: clause.Assignments(map[string]interface{}{
			"is_useful":  useful,
			"updated_at": time.Now(),
		}),
	}).Create(vote).Error
	if err != nil {
		return 0, err
	}
	return questionID, nil
}

// Rating computes likes minus dislikes for the target in one aggregate
// query; vote rows are never loaded into memory.
func (s *RatingService) Rating(target VoteTarget, targetID uint) (int, error) {
	var (
		model interface{}
		col   string
	)
	switch target {
	case TargetQuestion:
		model, col = &models.QuestionVote{}, "question_id"
	case TargetAnswer:
		model, col = &models.AnswerVote{}, "answer_id"
	default:
		return 0, fmt.Errorf("unknown vote target %q", target)
	}

	var rating int
	err := db.DB.Model(model).
		Select("COALESCE(SUM(CASE WHEN is_useful THEN 1 ELSE -1 END), 0)").
		Where(col+" = ?", targetID).
		Scan(&rating).Error
	return rating, err
}
