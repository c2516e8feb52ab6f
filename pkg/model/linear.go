package model

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"loglogplot/pkg/stats"
)

// ErrInsufficientData is returned when fewer than two points are left to fit.
var ErrInsufficientData = errors.New("at least two points are required for a degree-1 fit")

// LinearRegression is an ordinary least-squares fit of y = Slope*x + Intercept.
// It is the degree-1 polynomial fit, solved with an SVD of the design matrix.
type LinearRegression struct {
	Slope     float64
	Intercept float64
	// Rank of the scaled design matrix. 1 means every x was equal and the
	// coefficients are the minimum-norm solution.
	Rank int
}

var _ Regressor = (*LinearRegression)(nil)

// Fit solves the least-squares problem for the given points.
// NaN or infinite inputs are not rejected: they yield NaN coefficients.
func (m *LinearRegression) Fit(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("length mismatch: %d x values, %d y values", len(x), len(y))
	}
	if len(x) < 2 {
		return fmt.Errorf("%w (got %d)", ErrInsufficientData, len(x))
	}
	if !stats.Finite(x) || !stats.Finite(y) {
		m.Slope, m.Intercept, m.Rank = math.NaN(), math.NaN(), 0
		return nil
	}

	n := len(x)
	// design matrix [x 1] with unit-norm columns
	scale := [2]float64{floats.Norm(x, 2), math.Sqrt(float64(n))}
	if scale[0] == 0 {
		scale[0] = 1
	}
	a := mat.NewDense(n, 2, nil)
	for i, v := range x {
		a.Set(i, 0, v/scale[0])
		a.Set(i, 1, 1/scale[1])
	}

	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return errors.New("least squares: SVD did not converge")
	}
	// singular values below n*eps relative to the largest are treated as zero
	m.Rank = svd.Rank(float64(n) * 0x1p-52)

	var coef mat.Dense
	svd.SolveTo(&coef, mat.NewVecDense(n, y), m.Rank)
	m.Slope = coef.At(0, 0) / scale[0]
	m.Intercept = coef.At(1, 0) / scale[1]
	return nil
}

// Predict returns Slope*x + Intercept for every x.
func (m *LinearRegression) Predict(x []float64) []float64 {
	pred := make([]float64, len(x))
	for i, v := range x {
		pred[i] = m.Slope*v + m.Intercept
	}
	return pred
}
