package youtube

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/vfg2006/influencer-match-api/internal/domain"
	"github.com/vfg2006/influencer-match-api/pkg/utils"
)

const generalCategory = "General"

var (
	wordPattern  = regexp.MustCompile(`\w+`)
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
)

// categoryKeywords segue a ordem em que as categorias são reportadas
var categoryKeywords = []struct {
	category string
	words    []string
}{
	{"Technology", []string{"tech", "review", "unboxing", "gadget", "phone", "laptop"}},
	{"Beauty & Fashion", []string{"beauty", "makeup", "fashion", "style", "skincare"}},
	{"Gaming", []string{"gaming", "game", "play", "stream", "gamer"}},
	{"Lifestyle", []string{"lifestyle", "daily", "vlog", "life", "routine"}},
	{"Food & Cooking", []string{"food", "cooking", "recipe", "restaurant", "eat"}},
}

// DetectCategories classifica o canal pelas palavras dos títulos e descrições
func DetectCategories(videos []Video) []string {
	if len(videos) == 0 {
		return []string{}
	}

	words := make(map[string]struct{})
	for _, v := range videos {
		for _, w := range wordPattern.FindAllString(strings.ToLower(v.Title+" "+v.Description), -1) {
			words[w] = struct{}{}
		}
	}

	categories := make([]string, 0, len(categoryKeywords))
	for _, ck := range categoryKeywords {
		for _, w := range ck.words {
			if _, ok := words[w]; ok {
				categories = append(categories, ck.category)
				break
			}
		}
	}

	if len(categories) == 0 {
		return []string{generalCategory}
	}

	return categories
}

// EngagementRate é a média de (likes + comentários) / visualizações dos vídeos com visualização
func EngagementRate(videos []Video) float64 {
	total := 0.0
	valid := 0
	for _, v := range videos {
		if v.Views <= 0 {
			continue
		}
		total += float64(v.Likes+v.Comments) / float64(v.Views)
		valid++
	}

	if valid == 0 {
		return 0
	}

	return total / float64(valid)
}

func AverageViews(videos []Video) int64 {
	if len(videos) == 0 {
		return 0
	}

	var total int64
	for _, v := range videos {
		total += v.Views
	}

	return total / int64(len(videos))
}

// EstimateCPM ajusta o CPM base pelo tamanho do canal e pela categoria principal
func EstimateCPM(subscribers int64, categories []string) float64 {
	cpm := domain.DefaultCPM

	switch {
	case subscribers > 1_000_000:
		cpm *= 1.5
	case subscribers > 100_000:
		cpm *= 1.2
	case subscribers < 10_000:
		cpm *= 0.7
	}

	switch {
	case hasCategory(categories, "Technology"):
		cpm *= 1.3
	case hasCategory(categories, "Beauty & Fashion"):
		cpm *= 1.1
	case hasCategory(categories, "Gaming"):
		cpm *= 0.9
	}

	return utils.RoundWithTwoDecimalPlace(cpm)
}

// UploadFrequency descreve o intervalo médio entre os envios recentes
func UploadFrequency(videos []Video) string {
	dates := publishedDates(videos)
	if len(dates) < 2 {
		return domain.UploadFrequencyUnknown
	}

	span := dates[0].Sub(dates[len(dates)-1])
	avgDays := float64(int(span.Hours()/24)) / float64(len(dates)-1)

	switch {
	case avgDays < 1:
		return "Daily"
	case avgDays < 7:
		return "Multiple times per week"
	case avgDays < 14:
		return "Weekly"
	case avgDays < 30:
		return "Bi-weekly"
	default:
		return "Monthly"
	}
}

func LastUpload(videos []Video) *time.Time {
	dates := publishedDates(videos)
	if len(dates) == 0 {
		return nil
	}
	return &dates[0]
}

// publishedDates devolve as datas válidas da mais recente para a mais antiga
func publishedDates(videos []Video) []time.Time {
	dates := make([]time.Time, 0, len(videos))
	for _, v := range videos {
		if !v.PublishedAt.IsZero() {
			dates = append(dates, v.PublishedAt)
		}
	}

	sort.Slice(dates, func(i, j int) bool {
		return dates[i].After(dates[j])
	})

	return dates
}

func hasCategory(categories []string, target string) bool {
	for _, c := range categories {
		if c == target {
			return true
		}
	}
	return false
}

// ContactEmail devolve o primeiro email publicado na descrição do canal
func ContactEmail(description string) *string {
	match := emailPattern.FindString(description)
	if match == "" {
		return nil
	}
	email := strings.ToLower(match)
	return &email
}
