package services

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/yigit/spicalc/internal/app/models"
	"github.com/yigit/spicalc/internal/pkg/apperrors"
	"github.com/yigit/spicalc/internal/pkg/numfmt"
)

// IndexDigits is the number of fraction digits shown for SPI and CPI
const IndexDigits = 2

// Aggregator turns course rows and prior history into SPI/CPI.
// It holds only immutable configuration; every method is a pure function of
// its arguments.
type Aggregator struct {
	table    *models.GradeTable
	priorMin *big.Rat
	priorMax *big.Rat
}

// NewAggregator creates an Aggregator over table. Prior aggregates must lie in
// [priorMin, priorMax].
func NewAggregator(table *models.GradeTable, priorMin, priorMax float64) (*Aggregator, error) {
	if table == nil || table.Len() == 0 {
		return nil, fmt.Errorf("%w: grade table is empty", apperrors.ErrValidationFailed)
	}
	lo := new(big.Rat).SetFloat64(priorMin)
	hi := new(big.Rat).SetFloat64(priorMax)
	if lo == nil || hi == nil || lo.Cmp(hi) > 0 {
		return nil, fmt.Errorf("%w: invalid prior aggregate bounds [%v, %v]", apperrors.ErrValidationFailed, priorMin, priorMax)
	}
	return &Aggregator{table: table, priorMin: lo, priorMax: hi}, nil
}

// Table returns the grade table
func (a *Aggregator) Table() *models.GradeTable {
	return a.table
}

// Calculation is the exact outcome of Aggregate. CurrentTerm is nil when the
// course rows failed; Combined is nil when no CPI was produced.
type Calculation struct {
	CurrentTerm *big.Rat
	Combined    *big.Rat
}

// Result renders the calculation with IndexDigits fraction digits, or nil
// when there is no SPI.
func (c Calculation) Result() *models.CalculationResult {
	if c.CurrentTerm == nil {
		return nil
	}
	r := &models.CalculationResult{CurrentTermIndex: numfmt.FormatHalfUp(c.CurrentTerm, IndexDigits)}
	if c.Combined != nil {
		r.CombinedIndex = numfmt.FormatHalfUp(c.Combined, IndexDigits)
	}
	return r
}

// Aggregate computes SPI over courses and, when prior history is supplied,
// the CPI. Course row failures abort with a single message. Prior history
// failures are collected and returned alongside a valid SPI.
func (a *Aggregator) Aggregate(courses []models.CourseEntry, prior models.PriorHistory) (Calculation, *apperrors.ValidationError) {
	spi, verr := a.CurrentTermIndex(courses)
	if verr != nil {
		return Calculation{}, verr
	}

	calc := Calculation{CurrentTerm: spi}
	cpi, verr := a.CombinedIndex(spi, prior)
	if verr.HasErrors() {
		return calc, verr
	}
	calc.Combined = cpi
	return calc, nil
}

// CurrentTermIndex returns Σ(points·credit) / Σcredit over courses.
// It stops at the first invalid row.
func (a *Aggregator) CurrentTermIndex(courses []models.CourseEntry) (*big.Rat, *apperrors.ValidationError) {
	if len(courses) == 0 || models.IsPristine(courses) {
		return nil, apperrors.NewValidationError(apperrors.ErrEmptyInput, models.MsgEmptyInput)
	}

	pointSum := new(big.Rat)
	creditSum := new(big.Rat)

	for _, course := range courses {
		grade := strings.TrimSpace(course.Grade)
		if grade == "" {
			return nil, apperrors.NewValidationError(apperrors.ErrMissingGrade, models.MsgMissingGrade)
		}

		credit, err := numfmt.ParseDecimal(course.Credit)
		if err != nil || credit.Sign() <= 0 {
			return nil, apperrors.NewValidationError(apperrors.ErrInvalidCredit, models.MsgInvalidCredit)
		}

		points, ok := a.table.Lookup(grade)
		if !ok {
			return nil, apperrors.NewValidationError(apperrors.ErrInvalidGrade, fmt.Sprintf(models.MsgInvalidGradeFormat, grade))
		}

		weighted := new(big.Rat).Mul(big.NewRat(int64(points), 1), credit)
		pointSum.Add(pointSum, weighted)
		creditSum.Add(creditSum, credit)
	}

	if creditSum.Sign() == 0 {
		return nil, apperrors.NewValidationError(apperrors.ErrZeroCredits, models.MsgZeroCredits)
	}

	return new(big.Rat).Quo(pointSum, creditSum), nil
}

// CombinedIndex blends the prior aggregate over N prior units with the
// current-term index counted as one more unit:
//
//	(prior·N + current) / (N + 1)
//
// It returns (nil, nil) when no prior history was entered.
func (a *Aggregator) CombinedIndex(current *big.Rat, prior models.PriorHistory) (*big.Rat, *apperrors.ValidationError) {
	aggText := strings.TrimSpace(prior.PriorAggregate)
	unitText := strings.TrimSpace(prior.PriorUnitCount)

	if aggText == "" && unitText == "" {
		return nil, nil
	}

	verr := &apperrors.ValidationError{}
	if aggText == "" || unitText == "" {
		verr.Add(apperrors.ErrMismatchedPriorFields, models.MsgMismatchedPriorFields)
		return nil, verr
	}

	agg, err := numfmt.ParseDecimal(aggText)
	if err != nil || agg.Cmp(a.priorMin) < 0 || agg.Cmp(a.priorMax) > 0 {
		verr.Add(apperrors.ErrInvalidPriorAggregate,
			fmt.Sprintf(models.MsgInvalidPriorAggregate, a.priorMin.RatString(), a.priorMax.RatString()))
	}

	units, err := numfmt.ParseWhole(unitText)
	if err != nil {
		verr.Add(apperrors.ErrInvalidPriorUnitCount, models.MsgInvalidPriorUnitCount)
	}

	if verr.HasErrors() {
		return nil, verr
	}

	n := new(big.Rat).SetInt(units)
	num := new(big.Rat).Mul(agg, n)
	num.Add(num, current)
	den := new(big.Rat).Add(n, big.NewRat(1, 1))
	if den.Sign() == 0 {
		verr.Add(apperrors.ErrCombinationFailed, models.MsgCombinationFailed)
		return nil, verr
	}

	combined := new(big.Rat).Quo(num, den)
	if !numfmt.IsFinite(combined) {
		verr.Add(apperrors.ErrCombinationFailed, models.MsgCombinationFailed)
		return nil, verr
	}
	return combined, nil
}
