package youtube_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/influencer-match-api/infrastructure/integrator/youtube"
)

func daysAgo(days int) time.Time {
	return time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC).AddDate(0, 0, -days)
}

func TestDetectCategories(t *testing.T) {
	tests := []struct {
		name     string
		videos   []youtube.Video
		expected []string
	}{
		{
			name:     "Sem vídeos",
			videos:   nil,
			expected: []string{},
		},
		{
			name: "Várias categorias na ordem fixa",
			videos: []youtube.Video{
				{Title: "Unboxing do novo Phone", Description: "Minha rotina: daily vlog"},
				{Title: "Best Recipe ever"},
			},
			expected: []string{"Technology", "Lifestyle", "Food & Cooking"},
		},
		{
			name:     "Palavra parcial não conta",
			videos:   []youtube.Video{{Title: "Gameplay completo"}},
			expected: []string{"General"},
		},
		{
			name:     "Jogos",
			videos:   []youtube.Video{{Title: "Live stream de sábado"}},
			expected: []string{"Gaming"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, youtube.DetectCategories(tt.videos))
		})
	}
}

func TestEngagementRate(t *testing.T) {
	videos := []youtube.Video{
		{Views: 1000, Likes: 40, Comments: 10},
		{Views: 2000, Likes: 150, Comments: 50},
		{Views: 0, Likes: 10},
	}

	assert.InDelta(t, 0.075, youtube.EngagementRate(videos), 1e-9)
	assert.Equal(t, 0.0, youtube.EngagementRate(nil))
	assert.Equal(t, 0.0, youtube.EngagementRate([]youtube.Video{{Views: 0}}))
}

func TestAverageViews(t *testing.T) {
	assert.Equal(t, int64(0), youtube.AverageViews(nil))
	assert.Equal(t, int64(1333), youtube.AverageViews([]youtube.Video{{Views: 1000}, {Views: 3000}, {Views: 0}}))
}

func TestEstimateCPM(t *testing.T) {
	tests := []struct {
		name        string
		subscribers int64
		categories  []string
		expected    float64
	}{
		{name: "Canal médio sem categoria", subscribers: 50_000, categories: nil, expected: 15},
		{name: "Canal grande de tecnologia", subscribers: 2_000_000, categories: []string{"Technology"}, expected: 29.25},
		{name: "Canal pequeno de jogos", subscribers: 5_000, categories: []string{"Gaming"}, expected: 9.45},
		{name: "Tecnologia tem prioridade", subscribers: 200_000, categories: []string{"Gaming", "Technology"}, expected: 23.4},
		{name: "Beleza", subscribers: 50_000, categories: []string{"Beauty & Fashion"}, expected: 16.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, youtube.EstimateCPM(tt.subscribers, tt.categories))
		})
	}
}

func TestUploadFrequency(t *testing.T) {
	tests := []struct {
		name     string
		days     []int
		expected string
	}{
		{name: "Um vídeo", days: []int{1}, expected: "Unknown"},
		{name: "Diário", days: []int{0, 0, 0}, expected: "Daily"},
		{name: "Várias vezes por semana", days: []int{0, 3, 6}, expected: "Multiple times per week"},
		{name: "Semanal", days: []int{0, 7, 14}, expected: "Weekly"},
		{name: "Quinzenal", days: []int{28, 14, 0}, expected: "Bi-weekly"},
		{name: "Mensal", days: []int{0, 40}, expected: "Monthly"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			videos := make([]youtube.Video, 0, len(tt.days))
			for _, d := range tt.days {
				videos = append(videos, youtube.Video{PublishedAt: daysAgo(d)})
			}
			assert.Equal(t, tt.expected, youtube.UploadFrequency(videos))
		})
	}
}

func TestLastUpload(t *testing.T) {
	assert.Nil(t, youtube.LastUpload(nil))

	last := youtube.LastUpload([]youtube.Video{{PublishedAt: daysAgo(5)}, {PublishedAt: daysAgo(1)}, {}})
	if assert.NotNil(t, last) {
		assert.Equal(t, daysAgo(1), *last)
	}
}

func TestContactEmail(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expected    *string
	}{
		{name: "Sem email", description: "Reviews toda semana", expected: nil},
		{name: "Descrição vazia", description: "", expected: nil},
		{
			name:        "Email comercial no fim da frase",
			description: "Reviews de tecnologia.\nParcerias: Contato@TechReviewer.com.br.",
			expected:    strPtr("contato@techreviewer.com.br"),
		},
		{
			name:        "Primeiro email publicado",
			description: "negocios@canal.com ou fas@canal.com",
			expected:    strPtr("negocios@canal.com"),
		},
		{name: "Arroba sem domínio", description: "siga @techreviewer", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, youtube.ContactEmail(tt.description))
		})
	}
}

func strPtr(s string) *string {
	return &s
}
