package report

import "sort"

// Metric selects the figure groups are ranked by.
type Metric int

const (
	ByRevenue Metric = iota
	ByQuantity
)

func (m Metric) String() string {
	switch m {
	case ByQuantity:
		return "quantity"
	default:
		return "revenue"
	}
}

// Rank returns a copy of groups sorted descending by metric. Ties keep their
// input order. A positive limit truncates the result; limit <= 0 keeps all.
func Rank(groups []Group, metric Metric, limit int) []Group {
	out := make([]Group, len(groups))
	copy(out, groups)

	sort.SliceStable(out, func(i, j int) bool {
		if metric == ByQuantity {
			return out[i].Quantity > out[j].Quantity
		}
		return out[i].Revenue.GreaterThan(out[j].Revenue)
	})

	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}
