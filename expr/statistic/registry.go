package statistic

import (
	"regexp"
	"slices"
	"strconv"

	"github.com/ansel1/merry"

	"github.com/microflex/microflex/expr/stats"
	"github.com/microflex/microflex/expr/types"
	"github.com/microflex/microflex/pkg/numeric"
)

var ErrUnknownStatistic = merry.New("unknown statistic")

var percentileRe = regexp.MustCompile(`^p([0-9]+(\.[0-9]+)?)$`)

var descriptions = []types.Description{
	{Name: "mean", Group: "Location", Description: "Arithmetic mean."},
	{Name: "gmean", Group: "Location", Description: "Geometric mean, exp of the mean of the natural logarithms. Values must be positive."},
	{Name: "qmean", Group: "Location", Description: "Quadratic mean (root mean square)."},
	{Name: "median", Group: "Location", Description: "50th percentile."},
	{Name: "mode", Group: "Location", Description: "Most frequent value, ties go to the smaller value."},
	{Name: "variance", Group: "Spread", Description: "Unbiased sample variance, divided by n-1."},
	{Name: "pvariance", Group: "Spread", Description: "Population variance, divided by n."},
	{Name: "skewness", Group: "Shape", Description: "Bias corrected sample skewness. Needs three values."},
	{Name: "kurtosis", Group: "Shape", Description: "Bias corrected sample excess kurtosis. Needs four values."},
	{Name: "sum", Group: "Totals", Description: "Sum of the values."},
	{Name: "sumsq", Group: "Totals", Description: "Sum of the squared values. Combined with weights this is the weighted sum of squares."},
	{Name: "n", Group: "Totals", Description: "Number of values."},
	{Name: "min", Group: "Extremes", Description: "Smallest value."},
	{Name: "max", Group: "Extremes", Description: "Largest value."},
	{
		Name:        "pNN",
		Group:       "Location",
		Description: "NN-th percentile, 1 <= NN <= 100, interpolated between closest ranks at p(n+1)/100. p99.9 is accepted too.",
		Params: []types.Param{
			{Name: "NN", Required: true, Type: types.Percent},
		},
	},
}

// Descriptions lists every statistic known to Lookup.
func Descriptions() []types.Description {
	return slices.Clone(descriptions)
}

// Names returns the names accepted by Lookup, percentiles excluded.
func Names() []string {
	out := make([]string, 0, len(descriptions))
	for _, d := range descriptions {
		if d.Name != "pNN" {
			out = append(out, d.Name)
		}
	}
	return out
}

// CheckValid reports whether name is a known statistic.
func CheckValid(name string) error {
	if slices.Contains(Names(), name) {
		return nil
	}
	if m := percentileRe.FindStringSubmatch(name); m != nil {
		p, _ := strconv.ParseFloat(m[1], 64)
		if p < 1 || p > 100 {
			return stats.ErrInvalidPercentile.Here().Appendf("statistic %s", name)
		}
		return nil
	}
	return ErrUnknownStatistic.Here().Append(name)
}

// Lookup returns a calculator for the statistic called name in domain d.
func Lookup[T any](d numeric.Domain[T], name string) (*Calculator[T], error) {
	if err := CheckValid(name); err != nil {
		return nil, err
	}
	return New(d, name, funcFor[T](name)), nil
}

func plain[T any](f func(numeric.Domain[T], []T) T) Func[T] {
	return func(d numeric.Domain[T], values []T) (T, error) {
		return f(d, values), nil
	}
}

func funcFor[T any](name string) Func[T] {
	switch name {
	case "mean":
		return plain(stats.Mean[T])
	case "gmean":
		return plain(stats.GeometricMean[T])
	case "qmean":
		return plain(stats.QuadraticMean[T])
	case "median":
		return plain(stats.Median[T])
	case "mode":
		return plain(stats.Mode[T])
	case "variance":
		return plain(stats.Variance[T])
	case "pvariance":
		return plain(stats.PopulationVariance[T])
	case "skewness":
		return plain(stats.Skewness[T])
	case "kurtosis":
		return plain(stats.Kurtosis[T])
	case "sum":
		return plain(stats.Sum[T])
	case "sumsq":
		return plain(stats.SumOfSquares[T])
	case "n":
		return plain(stats.N[T])
	case "min":
		return plain(stats.Min[T])
	case "max":
		return plain(stats.Max[T])
	}
	p, _ := strconv.ParseFloat(percentileRe.FindStringSubmatch(name)[1], 64)
	return Percentile[T](p)
}

// Percentile returns the p-th percentile as a Func.
func Percentile[T any](p float64) Func[T] {
	return func(d numeric.Domain[T], values []T) (T, error) {
		return stats.Percentile(d, values, p)
	}
}
