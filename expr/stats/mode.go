package stats

import "github.com/microflex/microflex/pkg/numeric"

// Mode returns the most frequent value. Ties at the highest count go to the
// smaller value. A value seen for the first time only competes while no value
// has been seen twice, so later singletons never displace the mode once any
// count reached two.
func Mode[T any](d numeric.Domain[T], values []T) T {
	if len(values) == 0 {
		return d.Undefined()
	}

	mode, maxCount := values[0], 1
	counts := make(map[string]int, len(values))
	for _, v := range values {
		key := d.Format(v)
		count, seen := counts[key]
		if !seen {
			if maxCount == 1 && d.Cmp(v, mode) < 0 {
				mode = v
			}
			counts[key] = 1
			continue
		}

		count++
		counts[key] = count
		if count == maxCount && d.Cmp(v, mode) < 0 {
			mode = v
		}
		if count > maxCount {
			maxCount = count
			mode = v
		}
	}
	return d.Clone(mode)
}
