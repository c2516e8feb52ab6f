package model

import (
	"fmt"
	"math"

	"loglogplot/pkg/stats"
)

// DefaultSkip is the number of leading data rows left out of the fit (and the plot).
const DefaultSkip = 1

// Fit is the result of a power-law fit y = 10^Intercept * x^Slope,
// i.e. log10(y) = Slope*log10(x) + Intercept.
type Fit struct {
	Slope     float64
	Intercept float64
	// N is the number of points used.
	N int
	// R2 and RMSE are measured in log10 space.
	R2   float64
	RMSE float64
	// NonPositive counts x or y values <= 0 among the fitted rows.
	NonPositive int
	// Rank is 1 when all fitted x are equal and the line is the minimum-norm solution.
	Rank int
}

// Valid reports whether both coefficients are finite numbers.
func (f Fit) Valid() bool {
	return !math.IsNaN(f.Slope) && !math.IsNaN(f.Intercept) &&
		!math.IsInf(f.Slope, 0) && !math.IsInf(f.Intercept, 0)
}

// Eval returns the fitted y for a given x.
func (f Fit) Eval(x float64) float64 {
	return math.Pow(10, f.Intercept) * math.Pow(x, f.Slope)
}

func (f Fit) String() string {
	return fmt.Sprintf("m: %f, b: %f", f.Slope, f.Intercept)
}

// FitLogLog drops the first skip rows, takes log10 of both columns and fits a
// straight line by least squares. Values <= 0 are not filtered: they turn into
// NaN/-Inf and the coefficients come out NaN. Callers can check Fit.NonPositive.
func FitLogLog(x, y []float64, skip int) (Fit, error) {
	if len(x) != len(y) {
		return Fit{}, fmt.Errorf("length mismatch: %d x values, %d y values", len(x), len(y))
	}
	if skip < 0 {
		skip = 0
	}
	if skip > len(x) {
		skip = len(x)
	}
	x, y = x[skip:], y[skip:]

	lx := stats.Log10(x)
	ly := stats.Log10(y)

	var lr LinearRegression
	if err := lr.Fit(lx, ly); err != nil {
		return Fit{}, err
	}

	fit := Fit{
		Slope:       lr.Slope,
		Intercept:   lr.Intercept,
		N:           len(x),
		Rank:        lr.Rank,
		NonPositive: stats.CountNonPositive(x) + stats.CountNonPositive(y),
	}
	if fit.Valid() {
		pred := lr.Predict(lx)
		fit.R2 = R2(ly, pred)
		fit.RMSE = RMSE(ly, pred)
	} else {
		fit.R2 = math.NaN()
		fit.RMSE = math.NaN()
	}
	return fit, nil
}
