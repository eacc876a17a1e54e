package youtube_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/influencer-match-api/infrastructure/integrator/youtube"
	"github.com/vfg2006/influencer-match-api/infrastructure/integrator/youtube/mocks"
	"github.com/vfg2006/influencer-match-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestYouTubeIntegrator_AnalyzeChannel(t *testing.T) {
	ctx := context.Background()

	channel := &youtube.Channel{
		ID:                "UC123",
		Title:             "Tech Reviewer Pro",
		Description:       "Reviews",
		Subscribers:       250_000,
		Views:             10_000_000,
		Videos:            300,
		UploadsPlaylistID: "UU123",
	}
	videos := []youtube.Video{
		{ID: "v1", Title: "Phone review", Views: 10_000, Likes: 500, Comments: 100, PublishedAt: daysAgo(0)},
		{ID: "v2", Title: "Laptop unboxing", Views: 20_000, Likes: 800, Comments: 200, PublishedAt: daysAgo(7)},
	}

	tests := []struct {
		name     string
		setup    func(client *mocks.MockClient, estimator *mocks.MockDemographicsEstimator)
		validate func(t *testing.T, creator *domain.Creator, err error)
	}{
		{
			name: "Perfil completo",
			setup: func(client *mocks.MockClient, estimator *mocks.MockDemographicsEstimator) {
				client.EXPECT().GetChannel(ctx, "UC123").Return(channel, nil)
				client.EXPECT().RecentVideos(ctx, "UU123", int64(10)).Return(videos, nil)
				estimator.EXPECT().
					EstimateDemographics(ctx, domain.ChannelContent{
						Title:       "Tech Reviewer Pro",
						Description: "Reviews",
						VideoTitles: []string{"Phone review", "Laptop unboxing"},
					}).
					Return(domain.Demographics{AgeRange: "18-24"}, nil)
			},
			validate: func(t *testing.T, creator *domain.Creator, err error) {
				require.NoError(t, err)
				assert.Equal(t, "UC123", creator.ExternalID)
				assert.Equal(t, "Tech Reviewer Pro", creator.Name)
				assert.Equal(t, int64(15_000), creator.AvgViews)
				assert.InDelta(t, 0.055, creator.EngagementRate, 1e-9)
				assert.Equal(t, []string{"Technology"}, creator.Categories)
				assert.Equal(t, 23.4, creator.CPM)
				assert.Equal(t, "Weekly", creator.UploadFrequency)
				assert.Equal(t, "18-24", creator.Demographics.AgeRange)
				require.NotNil(t, creator.LastUploadAt)
				assert.Equal(t, daysAgo(0), *creator.LastUploadAt)
				assert.Nil(t, creator.Email)
			},
		},
		{
			name: "Falha nos vídeos e no público mantém o perfil",
			setup: func(client *mocks.MockClient, estimator *mocks.MockDemographicsEstimator) {
				client.EXPECT().GetChannel(ctx, "UC123").Return(channel, nil)
				client.EXPECT().RecentVideos(ctx, "UU123", int64(10)).Return(nil, errors.New("quota"))
				estimator.EXPECT().EstimateDemographics(ctx, gomock.Any()).Return(domain.Demographics{}, errors.New("timeout"))
			},
			validate: func(t *testing.T, creator *domain.Creator, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(0), creator.AvgViews)
				assert.Empty(t, creator.Categories)
				assert.Equal(t, domain.UnknownDemographics(), creator.Demographics)
				assert.Equal(t, "Unknown", creator.UploadFrequency)
			},
		},
		{
			name: "Canal inexistente",
			setup: func(client *mocks.MockClient, estimator *mocks.MockDemographicsEstimator) {
				client.EXPECT().GetChannel(ctx, "UC123").Return(nil, nil)
			},
			validate: func(t *testing.T, creator *domain.Creator, err error) {
				assert.Nil(t, creator)
				assert.ErrorIs(t, err, youtube.ErrChannelNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockClient(ctrl)
			estimator := mocks.NewMockDemographicsEstimator(ctrl)
			tt.setup(client, estimator)

			creator, err := youtube.New(client, estimator, 0).AnalyzeChannel(ctx, "UC123")
			tt.validate(t, creator, err)
		})
	}
}

func TestYouTubeIntegrator_AnalyzeChannelWithoutEstimator(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().GetChannel(ctx, "UC9").Return(&youtube.Channel{ID: "UC9", Title: "Sem uploads"}, nil)

	creator, err := youtube.New(client, nil, 5).AnalyzeChannel(ctx, "UC9")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDemographics(), creator.Demographics)
}

func TestYouTubeIntegrator_AnalyzeChannelContactEmail(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().GetChannel(ctx, "UC7").Return(&youtube.Channel{
		ID:          "UC7",
		Title:       "Cozinha Rápida",
		Description: "Receitas fáceis. Para publicidade: publi@cozinharapida.com",
	}, nil)

	creator, err := youtube.New(client, nil, 0).AnalyzeChannel(ctx, "UC7")
	require.NoError(t, err)
	require.NotNil(t, creator.Email)
	assert.Equal(t, "publi@cozinharapida.com", *creator.Email)
}

func TestYouTubeIntegrator_SearchChannels(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		SearchChannels(ctx, "fone review unboxing", int64(20)).
		Return([]domain.ChannelCandidate{{ExternalID: "UC1"}}, nil)

	candidates, err := youtube.New(client, nil, 0).SearchChannels(ctx, "fone review unboxing", 20)
	require.NoError(t, err)
	assert.Len(t, candidates, 1)
}
