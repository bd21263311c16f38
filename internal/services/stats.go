package services

import (
	"soclone/internal/db"
	"soclone/internal/models"

	"gorm.io/gorm"
)

// QuestionRow is a question as shown on list and detail pages, with the
// per-row counts projected alongside it.
type QuestionRow struct {
	models.Question
	Answers  int64 `json:"answers"`
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
	Views    int64 `json:"views"`
}

// Rating is the net usefulness score of the question row.
func (r *QuestionRow) Rating() int64 {
	return r.Likes - r.Dislikes
}

// AnswerRow is an answer with its net usefulness score.
type AnswerRow struct {
	models.Answer
	Rating int64 `json:"rating"`
}

// StatsService is the read side for list and detail pages. All counts are
// correlated scalar subqueries evaluated inside the one row-producing query,
// never one count query per row.
type StatsService struct{}

func NewStatsService() *StatsService {
	return &StatsService{}
}

const questionRowSelect = `questions.*,
	(SELECT COUNT(*) FROM answers a WHERE a.question_id = questions.id) AS answers,
	(SELECT COUNT(*) FROM question_votes v WHERE v.question_id = questions.id AND v.is_useful) AS likes,
	(SELECT COUNT(*) FROM question_votes v WHERE v.question_id = questions.id AND NOT v.is_useful) AS dislikes,
	(SELECT COUNT(*) FROM question_views s WHERE s.question_id = questions.id) AS views`

// LatestQuestions returns one page of questions, newest first, with their
// counts, owners and tags filled in.
func (s *StatsService) LatestQuestions(page, perPage int) ([]QuestionRow, int64, error) {
	var total int64
	if err := db.DB.Model(&models.Question{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []QuestionRow
	err := db.DB.Model(&models.Question{}).
		Select(questionRowSelect).
		Order("questions.created_at DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	if err := s.fillQuestionUsers(rows); err != nil {
		return nil, 0, err
	}
	if err := s.fillQuestionTags(rows); err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// QuestionDetail returns a single question row with its counts.
func (s *StatsService) QuestionDetail(id uint) (*QuestionRow, error) {
	var rows []QuestionRow
	err := db.DB.Model(&models.Question{}).
		Select(questionRowSelect).
		Where("questions.id = ?", id).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	if err := s.fillQuestionUsers(rows); err != nil {
		return nil, err
	}
	if err := s.fillQuestionTags(rows); err != nil {
		return nil, err
	}
	return &rows[0], nil
}

// AnswersFor returns a question's answers, oldest first, each with its net
// rating as a correlated subquery projection.
func (s *StatsService) AnswersFor(questionID uint) ([]AnswerRow, error) {
	var rows []AnswerRow
	err := db.DB.Model(&models.Answer{}).
		Select(`answers.*,
			(SELECT COALESCE(SUM(CASE WHEN v.is_useful THEN 1 ELSE -1 END), 0)
			 FROM answer_votes v WHERE v.answer_id = answers.id) AS rating`).
		Where("answers.question_id = ?", questionID).
		Order("answers.created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint, 0, len(rows))
	for _, r := range rows {
		userIDs = append(userIDs, r.UserID)
	}
	users, err := s.loadUsers(userIDs)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if u, ok := users[rows[i].UserID]; ok {
			rows[i].User = u
		}
	}
	return rows, nil
}

// fillQuestionUsers batch-loads the owning users for a page of rows.
func (s *StatsService) fillQuestionUsers(rows []QuestionRow) error {
	if len(rows) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.UserID)
	}
	users, err := s.loadUsers(ids)
	if err != nil {
		return err
	}
	for i := range rows {
		if u, ok := users[rows[i].UserID]; ok {
			rows[i].User = u
		}
	}
	return nil
}

func (s *StatsService) loadUsers(ids []uint) (map[uint]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []models.User
	if err := db.DB.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID, nil
}

// fillQuestionTags batch-loads tag sets through the join table.
func (s *StatsService) fillQuestionTags(rows []QuestionRow) error {
	if len(rows) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}

	type link struct {
		QuestionID uint
		TagID      uint
	}
	var links []link
	err := db.DB.Table("question_tags").
		Where("question_id IN ?", ids).
		Scan(&links).Error
	if err != nil {
		return err
	}
	if len(links) == 0 {
		return nil
	}

	tagIDs := make([]uint, 0, len(links))
	for _, l := range links {
		tagIDs = append(tagIDs, l.TagID)
	}
	var tags []models.Tag
	if err := db.DB.Where("id IN ?", tagIDs).Find(&tags).Error; err != nil {
		return err
	}
	tagByID := make(map[uint]models.Tag, len(tags))
	for _, t := range tags {
		tagByID[t.ID] = t
	}

	tagsByQuestion := make(map[uint][]models.Tag, len(rows))
	for _, l := range links {
		if t, ok := tagByID[l.TagID]; ok {
			tagsByQuestion[l.QuestionID] = append(tagsByQuestion[l.QuestionID], t)
		}
	}
	for i := range rows {
		rows[i].Tags = tagsByQuestion[rows[i].ID]
	}
	return nil
}
