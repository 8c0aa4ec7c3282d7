package services

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/spicalc/internal/app/models"
	"github.com/yigit/spicalc/internal/app/repositories"
	"github.com/yigit/spicalc/internal/pkg/apperrors"
)

type recordingPublisher struct {
	mu     sync.Mutex
	states []models.SessionState
}

func (p *recordingPublisher) PublishState(state models.SessionState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.states = append(p.states, state)
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.states)
}

func newTestCalculatorService(t *testing.T, maxCourses int) (CalculatorService, *recordingPublisher) {
	t.Helper()
	repo := repositories.NewSessionRepository(repositories.SessionOptions{}, zerolog.Nop())
	pub := &recordingPublisher{}
	return NewCalculatorService(repo, newTestAggregator(t), pub, maxCourses, zerolog.Nop()), pub
}

func fillCourse(t *testing.T, svc CalculatorService, sessionID, courseID, grade, credit string) {
	t.Helper()
	ctx := context.Background()
	_, err := svc.UpdateCourse(ctx, sessionID, courseID, models.CourseFieldGrade, grade)
	require.NoError(t, err)
	_, err = svc.UpdateCourse(ctx, sessionID, courseID, models.CourseFieldCredit, credit)
	require.NoError(t, err)
}

func TestCalculatorSessionFlow(t *testing.T) {
	svc, pub := newTestCalculatorService(t, 0)
	ctx := context.Background()

	st, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	require.Len(t, st.Courses, 1)
	sid := st.ID

	fillCourse(t, svc, sid, st.Courses[0].ID, "A", "3")

	st, err = svc.AddCourse(ctx, sid)
	require.NoError(t, err)
	require.Len(t, st.Courses, 2)
	fillCourse(t, svc, sid, st.Courses[1].ID, "B", "4")

	_, err = svc.SetPriorHistory(ctx, sid, models.PriorHistory{PriorAggregate: "8.00", PriorUnitCount: "2"})
	require.NoError(t, err)

	st, err = svc.Calculate(ctx, sid)
	require.NoError(t, err)
	require.NotNil(t, st.Result)
	assert.Equal(t, "8.86", st.Result.CurrentTermIndex)
	assert.Equal(t, "8.29", st.Result.CombinedIndex)
	assert.Empty(t, st.Error)

	// 4 updates, 1 add, 1 prior, 1 calculate
	assert.Equal(t, 7, pub.count())

	got, err := svc.GetSession(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, st.Result, got.Result)

	// Any edit clears the result
	st, err = svc.UpdateCourse(ctx, sid, st.Courses[0].ID, models.CourseFieldCredit, "2")
	require.NoError(t, err)
	assert.Nil(t, st.Result)
}

func TestCalculateRecordsValidationErrorInState(t *testing.T) {
	svc, _ := newTestCalculatorService(t, 0)
	ctx := context.Background()

	st, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	st, err = svc.Calculate(ctx, st.ID)
	require.NoError(t, err)
	assert.Nil(t, st.Result)
	assert.Equal(t, models.MsgEmptyInput, st.Error)
	assert.True(t, errors.Is(st.Errors, apperrors.ErrEmptyInput))
}

func TestCalculateKeepsSPIWhenPriorHistoryInvalid(t *testing.T) {
	svc, _ := newTestCalculatorService(t, 0)
	ctx := context.Background()

	st, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	fillCourse(t, svc, st.ID, st.Courses[0].ID, "A", "3")
	_, err = svc.SetPriorHistory(ctx, st.ID, models.PriorHistory{PriorAggregate: "7.0"})
	require.NoError(t, err)

	st, err = svc.Calculate(ctx, st.ID)
	require.NoError(t, err)
	require.NotNil(t, st.Result)
	assert.Equal(t, "10.00", st.Result.CurrentTermIndex)
	assert.Empty(t, st.Result.CombinedIndex)
	assert.Equal(t, models.MsgMismatchedPriorFields, st.Error)
}

func TestRemoveLastCourseReturnsStateAndError(t *testing.T) {
	svc, pub := newTestCalculatorService(t, 0)
	ctx := context.Background()

	st, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	st, err = svc.RemoveCourse(ctx, st.ID, st.Courses[0].ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrMinimumCourses))
	assert.Len(t, st.Courses, 1)
	assert.Equal(t, models.MsgMinimumCourses, st.Error)
	assert.Equal(t, 1, pub.count())
}

func TestAddCourseRespectsLimit(t *testing.T) {
	svc, _ := newTestCalculatorService(t, 2)
	ctx := context.Background()

	st, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	_, err = svc.AddCourse(ctx, st.ID)
	require.NoError(t, err)

	st, err = svc.AddCourse(ctx, st.ID)
	assert.ErrorIs(t, err, apperrors.ErrCourseLimitReached)
	assert.Len(t, st.Courses, 2)
}

func TestUpdateCourseRejectsUnknownField(t *testing.T) {
	svc, pub := newTestCalculatorService(t, 0)
	ctx := context.Background()

	st, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	_, err = svc.UpdateCourse(ctx, st.ID, st.Courses[0].ID, models.CourseField("points"), "9")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCourseField)
	assert.Zero(t, pub.count())
}

func TestUnknownSession(t *testing.T) {
	svc, _ := newTestCalculatorService(t, 0)
	ctx := context.Background()

	_, err := svc.GetSession(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	_, err = svc.Calculate(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	assert.ErrorIs(t, svc.DeleteSession(ctx, "missing"), apperrors.ErrSessionNotFound)
	assert.False(t, svc.SessionExists(ctx, "missing"))
}

func TestResetAndDeleteSession(t *testing.T) {
	svc, _ := newTestCalculatorService(t, 0)
	ctx := context.Background()

	st, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	sid := st.ID
	_, err = svc.AddCourse(ctx, sid)
	require.NoError(t, err)

	st, err = svc.ResetSession(ctx, sid)
	require.NoError(t, err)
	assert.Len(t, st.Courses, 1)

	require.NoError(t, svc.DeleteSession(ctx, sid))
	assert.False(t, svc.SessionExists(ctx, sid))
}

func TestEvaluate(t *testing.T) {
	svc, pub := newTestCalculatorService(t, 3)
	ctx := context.Background()

	res, err := svc.Evaluate(ctx, courses([2]string{"A", "3"}, [2]string{"B", "4"}), models.PriorHistory{})
	require.NoError(t, err)
	assert.Equal(t, "8.86", res.CurrentTermIndex)

	res, err = svc.Evaluate(ctx, courses([2]string{"A", "3"}), models.PriorHistory{PriorAggregate: "8", PriorUnitCount: "2.5"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidPriorUnitCount))
	require.NotNil(t, res)
	assert.Equal(t, "10.00", res.CurrentTermIndex)

	res, err = svc.Evaluate(ctx, nil, models.PriorHistory{})
	assert.True(t, errors.Is(err, apperrors.ErrEmptyInput))
	assert.Nil(t, res)

	_, err = svc.Evaluate(ctx, courses([2]string{"A", "1"}, [2]string{"A", "1"}, [2]string{"A", "1"}, [2]string{"A", "1"}), models.PriorHistory{})
	assert.ErrorIs(t, err, apperrors.ErrCourseLimitReached)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = svc.Evaluate(cancelled, courses([2]string{"A", "3"}), models.PriorHistory{})
	assert.ErrorIs(t, err, context.Canceled)

	assert.Zero(t, pub.count(), "stateless evaluation publishes nothing")
}

func TestGradeService(t *testing.T) {
	svc := NewGradeService(newTestAggregator(t).Table())

	assert.Len(t, svc.ListGrades(), 8)
	p, ok := svc.PointsFor("B-")
	assert.True(t, ok)
	assert.Equal(t, 7, p)
	_, ok = svc.PointsFor("Z")
	assert.False(t, ok)
}

func TestConcurrentEditsPublishInOrder(t *testing.T) {
	svc, pub := newTestCalculatorService(t, 0)
	ctx := context.Background()

	st, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	sid, cid := st.ID, st.Courses[0].ID
	fillCourse(t, svc, sid, cid, "A", "3")

	const workers, edits = 8, 50
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < edits; i++ {
				_, err := svc.UpdateCourse(ctx, sid, cid, models.CourseFieldCredit, strconv.Itoa(w*edits+i+1))
				assert.NoError(t, err)
				_, err = svc.Calculate(ctx, sid)
				assert.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()

	final, err := svc.GetSession(ctx, sid)
	require.NoError(t, err)

	pub.mu.Lock()
	defer pub.mu.Unlock()
	require.NotEmpty(t, pub.states)
	for i := 1; i < len(pub.states); i++ {
		prev, cur := pub.states[i-1], pub.states[i]
		require.Greater(t, cur.Version, prev.Version, "snapshot %d published out of order", i)
		require.GreaterOrEqual(t, cur.Revision, prev.Revision, "snapshot %d published out of order", i)
	}
	last := pub.states[len(pub.states)-1]
	assert.Equal(t, final.Version, last.Version)
	assert.Equal(t, final.Revision, last.Revision)
	assert.NotNil(t, last.Result)
}
