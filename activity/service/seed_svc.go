package service

import (
	"math/rand/v2"
	"time"

	"github.com/activitylog/api/activity/domain"
)

var (
	SeedUsers   = []string{"user123", "admin456", "guest789"}
	SeedActions = []domain.Action{
		domain.ActionLogin,
		domain.ActionLogout,
		domain.ActionProfileUpdate,
		domain.ActionPasswordChange,
		domain.ActionAccountCreation,
		domain.ActionFailedLogin,
	}
	seedBrowsers = []string{"Chrome", "Firefox", "Safari"}
	seedOS       = []string{"Windows", "MacOS", "Linux"}
)

const seedSuccessRate = 0.8

// GenerateSeedActivities builds count demo activities backdated by a whole
// number of days in [0, maxAgeDays). Roughly four in five succeed.
func GenerateSeedActivities(rng *rand.Rand, now time.Time, count, maxAgeDays int) []*domain.Activity {
	if maxAgeDays <= 0 {
		maxAgeDays = 1
	}
	out := make([]*domain.Activity, 0, max(count, 0))
	for range count {
		status := domain.StatusSuccess
		if rng.Float64() >= seedSuccessRate {
			status = domain.StatusFailure
		}
		out = append(out, &domain.Activity{
			UserID:    SeedUsers[rng.IntN(len(SeedUsers))],
			Action:    SeedActions[rng.IntN(len(SeedActions))],
			Timestamp: now.AddDate(0, 0, -rng.IntN(maxAgeDays)),
			Details: map[string]any{
				"browser": seedBrowsers[rng.IntN(len(seedBrowsers))],
				"os":      seedOS[rng.IntN(len(seedOS))],
			},
			Status: status,
		})
	}
	return out
}
