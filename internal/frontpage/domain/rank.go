package domain

import (
	"math"
	"time"
)

// Rank scores an item by engagement with time decay:
//
//	(ups + 1) / (ageHours + 2)^1.5 + (comments > 0 ? log10(comments + 1) * 0.5 : 0)
//
// ageHours is clamped at zero so items from the future rank as brand new.
func Rank(ups, comments int, createdUTC float64, now time.Time) float64 {
	ageHours := math.Max(0, (float64(now.Unix())-createdUTC)/3600)

	// Negative ups would make the score negative.
	score := float64(max(ups, 0)+1) / math.Pow(ageHours+2, 1.5)
	if comments > 0 {
		score += math.Log10(float64(comments)+1) * 0.5
	}
	return score
}
