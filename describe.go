package fvec

// Precision selects the accumulator used by Describe.
type Precision int

const (
	// PrecisionLegacy accumulates in single precision, matching historical output.
	PrecisionLegacy Precision = iota

	// PrecisionDouble accumulates in double precision.
	PrecisionDouble
)

// String returns the precision name.
func (p Precision) String() string {
	switch p {
	case PrecisionLegacy:
		return "legacy"
	case PrecisionDouble:
		return "double"
	default:
		return "unknown"
	}
}

// Stats summarises a sample buffer.
type Stats struct {
	Length      int
	Mean        float64
	Variance    float64
	RMS         float64
	Min         float64
	Max         float64
	MaxIndex    int
	AbsMax      float64
	AbsMaxIndex int
}

// Describe computes the summary statistics of x with the legacy
// single precision accumulators.
func Describe(x []float32) (Stats, error) {
	return DescribeWith(x, PrecisionLegacy)
}

// DescribeWith computes the summary statistics of x using the requested
// accumulator precision for mean, variance and RMS. Extremes are exact
// either way.
func DescribeWith(x []float32, p Precision) (Stats, error) {
	var (
		s   Stats
		err error
	)

	if p == PrecisionDouble {
		s.Mean, s.Variance, err = MeanVariance64(x)
		if err != nil {
			return Stats{}, err
		}
		s.RMS, _ = RMS64(x)
	} else {
		s.Mean, s.Variance, err = MeanVariance(x)
		if err != nil {
			return Stats{}, err
		}
		s.RMS, _ = RMS(x)
	}

	// Length is known to be at least one past this point.
	s.Length = len(x)
	s.Min, _, _ = MinMax(x)
	s.Max, s.MaxIndex, _ = Max(x)
	s.AbsMax, s.AbsMaxIndex, _ = AbsMax(x)
	return s, nil
}
