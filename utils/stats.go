package utils

import (
	"errors"
	"math"
)

// ErrDegenerateTable is returned when a contingency table has a zero
// marginal, which makes expected frequencies undefined.
var ErrDegenerateTable = errors.New("contingency table has a zero marginal")

// ChiSquare2x2 runs a chi-square test of independence on a 2x2 contingency
// table [[a, b], [c, d]] and returns the statistic and p-value.
//
// Yates' continuity correction is applied, the standard treatment for 2x2
// tables: each observed count is shifted 0.5 toward its expected frequency
// before the statistic is computed. Inputs are float64 on purpose:
// callers may pass continuous pseudo-counts.
func ChiSquare2x2(a, b, c, d float64) (chi2, pValue float64, err error) {
	row1 := a + b
	row2 := c + d
	col1 := a + c
	col2 := b + d
	total := row1 + row2

	if total == 0 || row1 == 0 || row2 == 0 || col1 == 0 || col2 == 0 {
		return 0, 0, ErrDegenerateTable
	}

	observed := [2][2]float64{{a, b}, {c, d}}
	expected := [2][2]float64{
		{row1 * col1 / total, row1 * col2 / total},
		{row2 * col1 / total, row2 * col2 / total},
	}

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			o := observed[i][j] + 0.5*sign(expected[i][j]-observed[i][j])
			diff := o - expected[i][j]
			chi2 += diff * diff / expected[i][j]
		}
	}

	return chi2, chiSquareSurvival1(chi2), nil
}

// chiSquareSurvival1 is P(X > x) for a chi-square distribution with one
// degree of freedom: erfc(sqrt(x/2)).
func chiSquareSurvival1(x float64) float64 {
	if x <= 0 {
		return 1
	}
	return math.Erfc(math.Sqrt(x / 2))
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
