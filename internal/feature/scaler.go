package feature

import "math"

// Scaler standardizes numeric columns to zero mean and unit variance.
// A constant column keeps divisor 1 so it standardizes to zeros.
type Scaler struct {
	mean []float64
	std  []float64
}

// Fit computes per-column mean and standard deviation over rows.
func (s *Scaler) Fit(rows [][]float64) {
	if len(rows) == 0 {
		s.mean, s.std = nil, nil
		return
	}
	cols := len(rows[0])
	s.mean = make([]float64, cols)
	s.std = make([]float64, cols)
	for _, r := range rows {
		for j, v := range r {
			s.mean[j] += v
		}
	}
	n := float64(len(rows))
	for j := range s.mean {
		s.mean[j] /= n
	}
	for _, r := range rows {
		for j, v := range r {
			d := v - s.mean[j]
			s.std[j] += d * d
		}
	}
	for j := range s.std {
		s.std[j] = math.Sqrt(s.std[j] / n)
		if s.std[j] == 0 {
			s.std[j] = 1
		}
	}
}

// Transform standardizes one row against the fitted columns. A scaler
// fitted on an empty corpus passes rows through unscaled.
func (s *Scaler) Transform(row []float64) []float64 {
	if len(s.mean) == 0 {
		return append([]float64(nil), row...)
	}
	out := make([]float64, len(row))
	for j, v := range row {
		out[j] = (v - s.mean[j]) / s.std[j]
	}
	return out
}
