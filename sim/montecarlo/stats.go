package montecarlo

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// VariableStatistics summarises the trial dimension of one variable in one year.
type VariableStatistics struct {
	Mean   float64 `json:"promedio"`
	Median float64 `json:"mediana"`
	StdDev float64 `json:"desviacion_estandar"`
	P5     float64 `json:"percentil_5"`
	P25    float64 `json:"percentil_25"`
	P75    float64 `json:"percentil_75"`
	P95    float64 `json:"percentil_95"`
	Min    float64 `json:"minimo"`
	Max    float64 `json:"maximo"`
}

// ComputeStatistics summarises samples. The input is not modified.
// Standard deviation is the population (1/n) form. An empty sample yields
// the zero value.
func ComputeStatistics(samples []float64) VariableStatistics {
	if len(samples) == 0 {
		return VariableStatistics{}
	}
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	mean, std := sorted[0], 0.0
	if len(sorted) > 1 {
		mean, std = stat.PopMeanStdDev(sorted, nil)
	}
	return VariableStatistics{
		Mean:   mean,
		Median: CalculatePercentile(sorted, 50),
		StdDev: std,
		P5:     CalculatePercentile(sorted, 5),
		P25:    CalculatePercentile(sorted, 25),
		P75:    CalculatePercentile(sorted, 75),
		P95:    CalculatePercentile(sorted, 95),
		Min:    floats.Min(sorted),
		Max:    floats.Max(sorted),
	}
}

// CalculatePercentile returns the p-th percentile (0..100) of an ascending
// sorted slice, interpolating linearly between the two closest order
// statistics: rank = p/100·(n−1).
func CalculatePercentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}

	rank := p / 100.0 * float64(n-1)
	lowerIdx := int(math.Floor(rank))
	upperIdx := int(math.Ceil(rank))

	if lowerIdx <= 0 && rank <= 0 {
		return sorted[0]
	}
	if upperIdx >= n {
		return sorted[n-1]
	}
	if lowerIdx == upperIdx {
		return sorted[lowerIdx]
	}
	lowerVal := sorted[lowerIdx]
	upperVal := sorted[upperIdx]
	return lowerVal + (upperVal-lowerVal)*(rank-float64(lowerIdx))
}
