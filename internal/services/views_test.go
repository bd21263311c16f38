//go:build integration

package services

import (
	"sync"
	"testing"

	"soclone/internal/db"
	"soclone/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRecordViewDedupesAnonymousRepeat(t *testing.T) {
	views := NewViewService()
	q := seedQuestion(t, seedUser(t))

	for i := 0; i < 3; i++ {
		require.NoError(t, views.RecordView(q.ID, nil, "203.0.113.10"))
	}

	count, err := views.ViewCount(q.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	var events int64
	require.NoError(t, db.DB.Model(&models.QuestionViewIP{}).
		Where("question_id = ?", q.ID).Count(&events).Error)
	require.EqualValues(t, 1, events, "repeat visit should only touch the existing event")
}

func TestRecordViewDedupesRepeatUser(t *testing.T) {
	views := NewViewService()
	user := seedUser(t)
	q := seedQuestion(t, user)

	require.NoError(t, views.RecordView(q.ID, &user.ID, "203.0.113.11"))
	require.NoError(t, views.RecordView(q.ID, &user.ID, "203.0.113.11"))

	count, err := views.ViewCount(q.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

// The same person viewing anonymously and then logged in from the same
// address counts twice: the two identities are distinct on purpose.
func TestRecordViewAnonymousThenLoggedIn(t *testing.T) {
	views := NewViewService()
	user := seedUser(t)
	q := seedQuestion(t, user)
	const ip = "203.0.113.12"

	require.NoError(t, views.RecordView(q.ID, nil, ip))
	require.NoError(t, views.RecordView(q.ID, &user.ID, ip))

	count, err := views.ViewCount(q.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}

func TestRecordViewNewAddressCounts(t *testing.T) {
	views := NewViewService()
	q := seedQuestion(t, seedUser(t))

	require.NoError(t, views.RecordView(q.ID, nil, "203.0.113.13"))
	require.NoError(t, views.RecordView(q.ID, nil, "203.0.113.14"))

	count, err := views.ViewCount(q.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}

func TestRecordViewUnknownQuestion(t *testing.T) {
	views := NewViewService()
	err := views.RecordView(99999999, nil, "203.0.113.15")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// One address viewing two questions counts once on each, and each view row
// must hang off the event for its own question, not whichever event for the
// address was written first.
func TestRecordViewSameAddressTwoQuestions(t *testing.T) {
	views := NewViewService()
	user := seedUser(t)
	q1 := seedQuestion(t, user)
	q2 := seedQuestion(t, user)
	const ip = "203.0.113.16"

	require.NoError(t, views.RecordView(q1.ID, nil, ip))
	require.NoError(t, views.RecordView(q2.ID, nil, ip))

	for _, q := range []*models.Question{q1, q2} {
		count, err := views.ViewCount(q.ID)
		require.NoError(t, err)
		require.EqualValues(t, 1, count)

		var view models.QuestionView
		require.NoError(t, db.DB.Preload("IP").
			Where("question_id = ?", q.ID).First(&view).Error)
		require.NotNil(t, view.IPID)
		require.Equal(t, q.ID, view.IP.QuestionID)
	}
}

// Concurrent views of the same question by the same identity must collapse
// to a single event and a single unique-view row.
func TestRecordViewConcurrent(t *testing.T) {
	views := NewViewService()
	q := seedQuestion(t, seedUser(t))
	const ip = "203.0.113.17"

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- views.RecordView(q.ID, nil, ip)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	var events int64
	require.NoError(t, db.DB.Model(&models.QuestionViewIP{}).
		Where("question_id = ? AND ip_address = ?", q.ID, ip).
		Count(&events).Error)
	require.EqualValues(t, 1, events)

	count, err := views.ViewCount(q.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}
