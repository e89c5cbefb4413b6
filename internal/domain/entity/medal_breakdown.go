package entity

// MedalBreakdown is the tier split of an account's cumulative completion
// count: the total partitioned into the largest possible multiples of 100,
// 50, 5 and 1, in that strict order.
type MedalBreakdown struct {
	Bronze  int
	Silver  int
	Gold    int
	Perfect int
}

// CompletionCounters holds the two independent per-account completion
// counters. Medals are derived from their sum only.
type CompletionCounters struct {
	Overall  int
	Category int
}

// Total returns the combined completion count feeding the medal breakdown.
func (c CompletionCounters) Total() int {
	return c.Overall + c.Category
}
