package youtube

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-match-api/internal/domain"
)

const (
	defaultRecentVideos = 10
	demographicsTitles  = 5
)

var ErrChannelNotFound = errors.New("youtube channel not found")

// DemographicsEstimator estima o público do canal a partir do conteúdo
type DemographicsEstimator interface {
	EstimateDemographics(ctx context.Context, content domain.ChannelContent) (domain.Demographics, error)
}

type YouTubeIntegrator struct {
	client       Client
	demographics DemographicsEstimator
	recentVideos int64
}

func New(client Client, demographics DemographicsEstimator, recentVideos int64) *YouTubeIntegrator {
	if recentVideos <= 0 {
		recentVideos = defaultRecentVideos
	}

	return &YouTubeIntegrator{
		client:       client,
		demographics: demographics,
		recentVideos: recentVideos,
	}
}

func (s *YouTubeIntegrator) SearchChannels(ctx context.Context, query string, maxResults int) ([]domain.ChannelCandidate, error) {
	candidates, err := s.client.SearchChannels(ctx, query, int64(maxResults))
	if err != nil {
		logrus.WithError(err).WithField("query", query).Error("youtube: falha na busca de canais")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"query":      query,
		"candidates": len(candidates),
	}).Debug("youtube: busca concluída")

	return candidates, nil
}

// AnalyzeChannel monta o perfil do criador com estatísticas do canal e dos vídeos recentes
func (s *YouTubeIntegrator) AnalyzeChannel(ctx context.Context, externalID string) (*domain.Creator, error) {
	channel, err := s.client.GetChannel(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, fmt.Errorf("%w: %s", ErrChannelNotFound, externalID)
	}

	var videos []Video
	if channel.UploadsPlaylistID != "" {
		videos, err = s.client.RecentVideos(ctx, channel.UploadsPlaylistID, s.recentVideos)
		if err != nil {
			logrus.WithError(err).WithField("external_id", externalID).Warn("youtube: vídeos recentes indisponíveis")
			videos = nil
		}
	}

	categories := DetectCategories(videos)

	return &domain.Creator{
		ExternalID:      externalID,
		Name:            channel.Title,
		ChannelTitle:    channel.Title,
		Description:     channel.Description,
		Email:           ContactEmail(channel.Description),
		ThumbnailURL:    channel.ThumbnailURL,
		SubscriberCount: channel.Subscribers,
		ViewCount:       channel.Views,
		VideoCount:      channel.Videos,
		AvgViews:        AverageViews(videos),
		EngagementRate:  EngagementRate(videos),
		CPM:             EstimateCPM(channel.Subscribers, categories),
		Categories:      categories,
		Demographics:    s.estimateDemographics(ctx, channel, videos),
		UploadFrequency: UploadFrequency(videos),
		LastUploadAt:    LastUpload(videos),
	}, nil
}

func (s *YouTubeIntegrator) estimateDemographics(ctx context.Context, channel *Channel, videos []Video) domain.Demographics {
	if s.demographics == nil {
		return domain.DefaultDemographics()
	}

	titles := make([]string, 0, demographicsTitles)
	for i := 0; i < len(videos) && i < demographicsTitles; i++ {
		titles = append(titles, videos[i].Title)
	}

	demographics, err := s.demographics.EstimateDemographics(ctx, domain.ChannelContent{
		Title:       channel.Title,
		Description: channel.Description,
		VideoTitles: titles,
	})
	if err != nil {
		logrus.WithError(err).WithField("external_id", channel.ID).Warn("youtube: estimativa de público falhou")
		return domain.UnknownDemographics()
	}

	return demographics
}
