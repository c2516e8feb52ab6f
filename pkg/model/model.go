package model

// Regressor is a single-feature supervised model.
type Regressor interface {
	Fit(x, y []float64) error
	Predict(x []float64) []float64
}
