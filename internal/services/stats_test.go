//go:build integration

package services

import (
	"testing"
	"time"

	"soclone/internal/db"
	"soclone/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func findRow(rows []QuestionRow, id uint) *QuestionRow {
	for i := range rows {
		if rows[i].ID == id {
			return &rows[i]
		}
	}
	return nil
}

func TestLatestQuestionsCounts(t *testing.T) {
	views := NewViewService()
	rating := NewRatingService()
	owner := seedUser(t)
	q := seedQuestion(t, owner)

	seedAnswer(t, owner, q)
	seedAnswer(t, owner, q)
	_, err := rating.Rate(TargetQuestion, q.ID, seedUser(t).ID, true)
	require.NoError(t, err)
	_, err = rating.Rate(TargetQuestion, q.ID, seedUser(t).ID, false)
	require.NoError(t, err)
	require.NoError(t, views.RecordView(q.ID, nil, "203.0.113.30"))
	require.NoError(t, views.RecordView(q.ID, nil, "203.0.113.31"))
	require.NoError(t, views.RecordView(q.ID, nil, "203.0.113.31"))

	stats := NewStatsService()
	rows, total, err := stats.LatestQuestions(1, 10000)
	require.NoError(t, err)
	require.GreaterOrEqual(t, total, int64(1))

	row := findRow(rows, q.ID)
	require.NotNil(t, row)
	require.EqualValues(t, 2, row.Answers)
	require.EqualValues(t, 1, row.Likes)
	require.EqualValues(t, 1, row.Dislikes)
	require.EqualValues(t, 0, row.Rating())
	require.EqualValues(t, 2, row.Views)
	require.Equal(t, owner.Username, row.User.Username)
}

func TestLatestQuestionsNewestFirst(t *testing.T) {
	owner := seedUser(t)
	older := seedQuestion(t, owner)
	newer := seedQuestion(t, owner)
	require.NoError(t, db.DB.Model(older).
		UpdateColumn("created_at", time.Now().Add(-time.Hour)).Error)

	stats := NewStatsService()
	rows, _, err := stats.LatestQuestions(1, 10000)
	require.NoError(t, err)

	var newerAt, olderAt = -1, -1
	for i := range rows {
		switch rows[i].ID {
		case newer.ID:
			newerAt = i
		case older.ID:
			olderAt = i
		}
	}
	require.NotEqual(t, -1, newerAt)
	require.NotEqual(t, -1, olderAt)
	require.Less(t, newerAt, olderAt)
}

func TestQuestionDetail(t *testing.T) {
	owner := seedUser(t)
	q := seedQuestion(t, owner)
	tag := models.Tag{Name: "frobnication", UserID: &owner.ID}
	require.NoError(t, db.DB.Create(&tag).Error)
	require.NoError(t, db.DB.Model(q).Association("Tags").Append(&tag))

	stats := NewStatsService()
	row, err := stats.QuestionDetail(q.ID)
	require.NoError(t, err)
	require.Equal(t, q.Title, row.Title)
	require.Equal(t, owner.Username, row.User.Username)
	require.Len(t, row.Tags, 1)
	require.Equal(t, "frobnication", row.Tags[0].Name)
}

func TestQuestionDetailNotFound(t *testing.T) {
	stats := NewStatsService()
	_, err := stats.QuestionDetail(99999999)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAnswersForOrderAndRating(t *testing.T) {
	rating := NewRatingService()
	owner := seedUser(t)
	q := seedQuestion(t, owner)
	first := seedAnswer(t, owner, q)
	second := seedAnswer(t, owner, q)
	require.NoError(t, db.DB.Model(first).
		UpdateColumn("created_at", time.Now().Add(-time.Hour)).Error)

	_, err := rating.Rate(TargetAnswer, second.ID, seedUser(t).ID, true)
	require.NoError(t, err)

	stats := NewStatsService()
	rows, err := stats.AnswersFor(q.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, first.ID, rows[0].ID, "answers come back oldest first")
	require.EqualValues(t, 0, rows[0].Rating)
	require.EqualValues(t, 1, rows[1].Rating)
	require.Equal(t, owner.Username, rows[0].User.Username)
}

func TestQuestionModifiedFlag(t *testing.T) {
	q := seedQuestion(t, seedUser(t))
	require.False(t, q.Modified(), "freshly created question is untouched")

	require.NoError(t, db.DB.Model(q).
		UpdateColumn("updated_at", q.CreatedAt.Add(2*time.Second)).Error)

	stats := NewStatsService()
	row, err := stats.QuestionDetail(q.ID)
	require.NoError(t, err)
	require.True(t, row.Modified())
}
