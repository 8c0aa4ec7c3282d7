package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/spicalc/internal/app/models"
	"github.com/yigit/spicalc/internal/pkg/apperrors"
)

func newTestAggregator(t *testing.T) *Aggregator {
	t.Helper()
	table, err := models.NewGradeTable(models.DefaultGrades, 0, 10)
	require.NoError(t, err)
	agg, err := NewAggregator(table, 0, 10)
	require.NoError(t, err)
	return agg
}

func courses(rows ...[2]string) []models.CourseEntry {
	out := make([]models.CourseEntry, len(rows))
	for i, r := range rows {
		out[i] = models.CourseEntry{ID: string(rune('a' + i)), Grade: r[0], Credit: r[1]}
	}
	return out
}

func TestAggregateCurrentTermOnly(t *testing.T) {
	agg := newTestAggregator(t)

	calc, verr := agg.Aggregate(courses([2]string{"A", "3"}, [2]string{"B", "4"}), models.PriorHistory{})

	require.Nil(t, verr)
	res := calc.Result()
	require.NotNil(t, res)
	assert.Equal(t, "8.86", res.CurrentTermIndex)
	assert.Empty(t, res.CombinedIndex)
	assert.Equal(t, "62/7", calc.CurrentTerm.RatString())
}

func TestAggregateCombinesWithUnroundedCurrentTerm(t *testing.T) {
	agg := newTestAggregator(t)

	calc, verr := agg.Aggregate(
		courses([2]string{"A", "3"}, [2]string{"B", "4"}),
		models.PriorHistory{PriorAggregate: "8.00", PriorUnitCount: "2"},
	)

	require.Nil(t, verr)
	res := calc.Result()
	assert.Equal(t, "8.86", res.CurrentTermIndex)
	assert.Equal(t, "8.29", res.CombinedIndex)
	assert.Equal(t, "58/7", calc.Combined.RatString())
}

func TestAggregateZeroPriorUnits(t *testing.T) {
	agg := newTestAggregator(t)

	calc, verr := agg.Aggregate(courses([2]string{"A-", "4"}), models.PriorHistory{PriorAggregate: "5", PriorUnitCount: "0"})

	require.Nil(t, verr)
	assert.Equal(t, "9.00", calc.Result().CombinedIndex)
}

func TestAggregateCourseRowFailures(t *testing.T) {
	tests := []struct {
		name    string
		courses []models.CourseEntry
		kind    error
		message string
	}{
		{"no courses", nil, apperrors.ErrEmptyInput, models.MsgEmptyInput},
		{"pristine", courses([2]string{"", ""}), apperrors.ErrEmptyInput, models.MsgEmptyInput},
		{"missing grade", courses([2]string{"A", "3"}, [2]string{"", "3"}), apperrors.ErrMissingGrade, models.MsgMissingGrade},
		{"zero credit", courses([2]string{"A", "0"}), apperrors.ErrInvalidCredit, models.MsgInvalidCredit},
		{"negative credit", courses([2]string{"A", "-2"}), apperrors.ErrInvalidCredit, models.MsgInvalidCredit},
		{"text credit", courses([2]string{"A", "three"}), apperrors.ErrInvalidCredit, models.MsgInvalidCredit},
		{"trailing garbage credit", courses([2]string{"A", "3abc"}), apperrors.ErrInvalidCredit, models.MsgInvalidCredit},
		{"blank credit", courses([2]string{"A", ""}), apperrors.ErrInvalidCredit, models.MsgInvalidCredit},
		{"unknown grade", courses([2]string{"E", "3"}), apperrors.ErrInvalidGrade, "Invalid grade 'E' selected. Please choose from the list."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := newTestAggregator(t)

			calc, verr := agg.Aggregate(tt.courses, models.PriorHistory{PriorAggregate: "8", PriorUnitCount: "1"})

			require.NotNil(t, verr)
			assert.Equal(t, []string{tt.message}, verr.Messages)
			assert.True(t, errors.Is(verr, tt.kind))
			assert.Nil(t, calc.Result())
		})
	}
}

func TestAggregateStopsAtFirstBadRow(t *testing.T) {
	agg := newTestAggregator(t)

	// Row 1 has a bad credit, row 2 has no grade; only row 1 is reported.
	_, verr := agg.Aggregate(courses([2]string{"A", "x"}, [2]string{"", "3"}), models.PriorHistory{})

	require.NotNil(t, verr)
	assert.Len(t, verr.Messages, 1)
	assert.True(t, errors.Is(verr, apperrors.ErrInvalidCredit))
}

func TestAggregateMissingGradeCheckedBeforeCredit(t *testing.T) {
	agg := newTestAggregator(t)

	_, verr := agg.Aggregate(courses([2]string{"", "0"}, [2]string{"A", "3"}), models.PriorHistory{})

	require.NotNil(t, verr)
	assert.True(t, errors.Is(verr, apperrors.ErrMissingGrade))
}

func TestAggregatePriorHistoryFailuresKeepCurrentTerm(t *testing.T) {
	tests := []struct {
		name     string
		prior    models.PriorHistory
		kinds    []error
		messages []string
	}{
		{
			name:     "aggregate without units",
			prior:    models.PriorHistory{PriorAggregate: "7.0"},
			kinds:    []error{apperrors.ErrMismatchedPriorFields},
			messages: []string{models.MsgMismatchedPriorFields},
		},
		{
			name:     "units without aggregate",
			prior:    models.PriorHistory{PriorUnitCount: "3"},
			kinds:    []error{apperrors.ErrMismatchedPriorFields},
			messages: []string{models.MsgMismatchedPriorFields},
		},
		{
			name:     "fractional units",
			prior:    models.PriorHistory{PriorAggregate: "8", PriorUnitCount: "2.5"},
			kinds:    []error{apperrors.ErrInvalidPriorUnitCount},
			messages: []string{models.MsgInvalidPriorUnitCount},
		},
		{
			name:     "whole number written with decimal point",
			prior:    models.PriorHistory{PriorAggregate: "8", PriorUnitCount: "2.0"},
			kinds:    []error{apperrors.ErrInvalidPriorUnitCount},
			messages: []string{models.MsgInvalidPriorUnitCount},
		},
		{
			name:     "negative units",
			prior:    models.PriorHistory{PriorAggregate: "8", PriorUnitCount: "-1"},
			kinds:    []error{apperrors.ErrInvalidPriorUnitCount},
			messages: []string{models.MsgInvalidPriorUnitCount},
		},
		{
			name:     "aggregate above range",
			prior:    models.PriorHistory{PriorAggregate: "10.5", PriorUnitCount: "2"},
			kinds:    []error{apperrors.ErrInvalidPriorAggregate},
			messages: []string{"Please enter a valid previous CPI between 0 and 10."},
		},
		{
			name:  "both invalid",
			prior: models.PriorHistory{PriorAggregate: "abc", PriorUnitCount: "x"},
			kinds: []error{apperrors.ErrInvalidPriorAggregate, apperrors.ErrInvalidPriorUnitCount},
			messages: []string{
				"Please enter a valid previous CPI between 0 and 10.",
				models.MsgInvalidPriorUnitCount,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := newTestAggregator(t)

			calc, verr := agg.Aggregate(courses([2]string{"A", "3"}, [2]string{"B", "4"}), tt.prior)

			require.NotNil(t, verr)
			assert.Equal(t, tt.messages, verr.Messages)
			for _, kind := range tt.kinds {
				assert.True(t, errors.Is(verr, kind))
			}

			res := calc.Result()
			require.NotNil(t, res, "current-term index survives prior failures")
			assert.Equal(t, "8.86", res.CurrentTermIndex)
			assert.Empty(t, res.CombinedIndex)
		})
	}
}

func TestAggregateBoundaryPriorAggregates(t *testing.T) {
	agg := newTestAggregator(t)

	for _, a := range []string{"0", "10", "10.00", " 9.5 "} {
		_, verr := agg.Aggregate(courses([2]string{"F", "2"}), models.PriorHistory{PriorAggregate: a, PriorUnitCount: "1"})
		assert.Nil(t, verr, a)
	}
}

func TestAggregateIsIdempotent(t *testing.T) {
	agg := newTestAggregator(t)
	in := courses([2]string{"A+", "2"}, [2]string{"C-", "3.5"}, [2]string{"B-", "1"})
	prior := models.PriorHistory{PriorAggregate: "7.25", PriorUnitCount: "4"}

	first, verr := agg.Aggregate(in, prior)
	require.Nil(t, verr)
	second, verr := agg.Aggregate(in, prior)
	require.Nil(t, verr)

	assert.Equal(t, first.Result(), second.Result())
}

func TestAggregateDecimalCredits(t *testing.T) {
	agg := newTestAggregator(t)

	// (10*1.5 + 9*1.5) / 3 = 9.5
	calc, verr := agg.Aggregate(courses([2]string{"A", "1.5"}, [2]string{"A-", "1.5"}), models.PriorHistory{})

	require.Nil(t, verr)
	assert.Equal(t, "9.50", calc.Result().CurrentTermIndex)
}

func TestNewAggregatorValidation(t *testing.T) {
	table, err := models.NewGradeTable(models.DefaultGrades, 0, 10)
	require.NoError(t, err)

	_, err = NewAggregator(nil, 0, 10)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = NewAggregator(table, 10, 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	agg, err := NewAggregator(table, 0, 4)
	require.NoError(t, err)
	assert.Same(t, table, agg.Table())
}
