package budget

import "github.com/budget-guard/backend/internal/domain/entity"

// Medal tier sizes, in completions per medal.
const (
	perfectSize = 100
	goldSize    = 50
	silverSize  = 5
)

// MedalBreakdown maps a cumulative completion total to its tier breakdown by
// successive division: the largest possible number of perfect medals first,
// then gold, then silver, with the remainder as bronze. A total of 150 yields
// one perfect and one gold, not three gold.
func MedalBreakdown(total int) entity.MedalBreakdown {
	if total < 0 {
		total = 0
	}

	breakdown := entity.MedalBreakdown{}
	breakdown.Perfect = total / perfectSize
	total %= perfectSize
	breakdown.Gold = total / goldSize
	total %= goldSize
	breakdown.Silver = total / silverSize
	total %= silverSize
	breakdown.Bronze = total

	return breakdown
}
