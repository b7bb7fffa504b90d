package collection

import (
	"math"
	"slices"

	"github.com/kbukum/fnkit/num"
	"github.com/kbukum/fnkit/pipe"
	"github.com/kbukum/fnkit/validation"
)

// Summary holds descriptive statistics of a numeric sample.
type Summary struct {
	Min            float64 `json:"min"`
	Max            float64 `json:"max"`
	Sum            float64 `json:"sum"`
	Middle         float64 `json:"middle"`
	Median         float64 `json:"median"`
	ArithmeticMean float64 `json:"arithmetic_mean"`
	GeometricMean  float64 `json:"geometric_mean"`
	QuadraticMean  float64 `json:"quadratic_mean"`
}

// Stats summarizes the numbers fn extracts from data. Middle is the midpoint
// of min and max. GeometricMean is NaN when a value is negative.
func Stats[T any, N num.Number](data []T, fn func(T) N) (Summary, error) {
	if err := validation.New().NotEmpty("data", len(data)).Error(); err != nil {
		return Summary{}, err
	}
	values := make([]float64, len(data))
	for i, v := range data {
		values[i] = float64(fn(v))
	}
	slices.Sort(values)

	n := float64(len(values))
	var sum, sumSquares, sumLogs float64
	for _, v := range values {
		sum += v
		sumSquares += v * v
		sumLogs += math.Log(v)
	}
	s := Summary{
		Min:            values[0],
		Max:            values[len(values)-1],
		Sum:            sum,
		ArithmeticMean: sum / n,
		GeometricMean:  math.Exp(sumLogs / n),
		QuadraticMean:  math.Sqrt(sumSquares / n),
		Median:         median(values),
	}
	s.Middle = (s.Min + s.Max) / 2
	return s, nil
}

// StatsWith is the pipeline form of Stats.
func StatsWith[T any, N num.Number](fn func(T) N) pipe.Stage {
	return pipe.ApplyE("stats", func(data []T) (Summary, error) { return Stats(data, fn) })
}

// median expects sorted values.
func median(sorted []float64) float64 {
	half := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[half]
	}
	return (sorted[half-1] + sorted[half]) / 2
}
