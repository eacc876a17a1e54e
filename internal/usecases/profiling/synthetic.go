package profiling

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"

	"github.com/vfg2006/influencer-match-api/internal/domain"
)

var (
	syntheticCategories = []string{"Technology", "Gaming", "Lifestyle", "Beauty & Fashion", "Food & Cooking", "Health & Fitness"}
	syntheticInterests  = []string{"Technology", "Gaming", "Fashion", "Fitness", "Cooking", "Travel"}
	syntheticAgeRanges  = []string{"18-24", "25-34", "35-44", "45-54"}
	syntheticGenders    = []string{"Male", "Female", "Mixed"}
	syntheticIncomes    = []string{"Low", "Middle", "High"}
	syntheticLocations  = []string{"US", "Europe", "Global"}
	syntheticFrequency  = []string{"Weekly", "Bi-weekly", "Daily"}
)

// syntheticProfile gera um perfil plausível quando a análise do canal não está
// disponível. O mesmo external id sempre produz o mesmo perfil.
func syntheticProfile(candidate domain.ChannelCandidate) *domain.Creator {
	r := rand.New(rand.NewPCG(seedFor(candidate.ExternalID), 0x5eed))

	subscribers := int64(10_000 + r.IntN(990_001))
	avgViews := int64(5_000 + r.IntN(int(subscribers/2)-5_000+1))

	name := candidate.Title
	if name == "" {
		suffix := candidate.ExternalID
		if len(suffix) > 4 {
			suffix = suffix[len(suffix)-4:]
		}
		name = fmt.Sprintf("Creator %s", suffix)
	}

	return &domain.Creator{
		ExternalID:      candidate.ExternalID,
		Name:            name,
		ChannelTitle:    name,
		Description:     candidate.Description,
		ThumbnailURL:    candidate.ThumbnailURL,
		SubscriberCount: subscribers,
		ViewCount:       subscribers * int64(5+r.IntN(16)),
		VideoCount:      int64(50 + r.IntN(451)),
		AvgViews:        avgViews,
		EngagementRate:  roundTo(0.02+r.Float64()*0.06, 4),
		CPM:             roundTo(10+r.Float64()*15, 2),
		Categories:      sample(r, syntheticCategories, 1+r.IntN(3)),
		Demographics: domain.Demographics{
			AgeRange:    pick(r, syntheticAgeRanges),
			Gender:      pick(r, syntheticGenders),
			Interests:   sample(r, syntheticInterests, 2+r.IntN(3)),
			IncomeLevel: pick(r, syntheticIncomes),
			Location:    pick(r, syntheticLocations),
		},
		UploadFrequency: pick(r, syntheticFrequency),
	}
}

func seedFor(externalID string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(externalID))
	return h.Sum64()
}

func pick(r *rand.Rand, values []string) string {
	return values[r.IntN(len(values))]
}

func sample(r *rand.Rand, values []string, n int) []string {
	perm := r.Perm(len(values))
	out := make([]string, 0, n)
	for _, i := range perm[:n] {
		out = append(out, values[i])
	}
	return out
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
