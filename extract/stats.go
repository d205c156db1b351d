package extract

import "math"

// DefaultTargetCV is the default coefficient-of-variation target for
// spread-reduction analysis (5% relative dispersion).
const DefaultTargetCV = 0.05

// CalculateVariance returns the population variance (divide by N) of the
// series' values. An empty series has variance 0.
func CalculateVariance(series []AccountCodeValue) float64 {
	if len(series) == 0 {
		return 0
	}

	mean := seriesMean(series)
	var sum float64
	for _, v := range series {
		d := v.Value - mean
		sum += d * d
	}
	return sum / float64(len(series))
}

// CalculateCoefficientOfVariation returns sigma/mu for the series. A zero
// mean would divide by zero; by contract the CV is 0 in that case.
func CalculateCoefficientOfVariation(series []AccountCodeValue) float64 {
	mean := seriesMean(series)
	if mean == 0 {
		return 0
	}
	return math.Sqrt(CalculateVariance(series)) / mean
}

func seriesMean(series []AccountCodeValue) float64 {
	if len(series) == 0 {
		return 0
	}
	var sum float64
	for _, v := range series {
		sum += v.Value
	}
	return sum / float64(len(series))
}

// SpreadTarget is an optimization target for one account code: reduce the
// relative dispersion of the entities' values toward the target CV.
type SpreadTarget struct {
	AccountCode string
	CurrentCV   float64
	TargetCV    float64
	Mean        float64
	Entities    []AccountCodeValue
}

// TargetOptions configures spread-target generation.
type TargetOptions struct {
	// TargetCV is the desired coefficient of variation. Zero means
	// DefaultTargetCV.
	TargetCV float64
}

// BuildSpreadTargets generates spread-reduction targets for the requested
// codes. Series with fewer than two entities, or whose values are all
// zero, carry no usable dispersion signal and are skipped silently.
// Zero-containing series stay in as long as any value is non-zero.
func BuildSpreadTargets(series map[string][]AccountCodeValue, codes []string, opts TargetOptions) []SpreadTarget {
	targetCV := opts.TargetCV
	if targetCV == 0 {
		targetCV = DefaultTargetCV
	}

	var targets []SpreadTarget
	for _, code := range codes {
		values := series[code]
		if len(values) < 2 || allZero(values) {
			continue
		}

		targets = append(targets, SpreadTarget{
			AccountCode: code,
			CurrentCV:   CalculateCoefficientOfVariation(values),
			TargetCV:    targetCV,
			Mean:        seriesMean(values),
			Entities:    values,
		})
	}
	return targets
}

func allZero(series []AccountCodeValue) bool {
	for _, v := range series {
		if v.Value != 0 {
			return false
		}
	}
	return true
}
