package youtube

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-match-api/internal/domain"
	"google.golang.org/api/option"
	youtubeapi "google.golang.org/api/youtube/v3"
)

// Channel reúne estatísticas e dados do canal
type Channel struct {
	ID                string
	Title             string
	Description       string
	ThumbnailURL      string
	Subscribers       int64
	Views             int64
	Videos            int64
	UploadsPlaylistID string
}

type Video struct {
	ID          string
	Title       string
	Description string
	PublishedAt time.Time
	Views       int64
	Likes       int64
	Comments    int64
}

type Client interface {
	SearchChannels(ctx context.Context, query string, maxResults int64) ([]domain.ChannelCandidate, error)
	GetChannel(ctx context.Context, channelID string) (*Channel, error)
	RecentVideos(ctx context.Context, playlistID string, maxResults int64) ([]Video, error)
}

type client struct {
	service *youtubeapi.Service
}

func NewClient(ctx context.Context, apiKey string) (Client, error) {
	service, err := youtubeapi.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("youtube: failed to create service: %w", err)
	}

	return &client{service: service}, nil
}

func (c *client) SearchChannels(ctx context.Context, query string, maxResults int64) ([]domain.ChannelCandidate, error) {
	resp, err := c.service.Search.
		List([]string{"snippet"}).
		Q(query).
		Type("channel").
		Order("relevance").
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube: search %q: %w", query, err)
	}

	candidates := make([]domain.ChannelCandidate, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Snippet == nil {
			continue
		}

		channelID := item.Snippet.ChannelId
		if channelID == "" && item.Id != nil {
			channelID = item.Id.ChannelId
		}

		candidates = append(candidates, domain.ChannelCandidate{
			ExternalID:   channelID,
			Title:        item.Snippet.ChannelTitle,
			Description:  item.Snippet.Description,
			ThumbnailURL: defaultThumbnail(item.Snippet.Thumbnails),
		})
	}

	return candidates, nil
}

func (c *client) GetChannel(ctx context.Context, channelID string) (*Channel, error) {
	resp, err := c.service.Channels.
		List([]string{"snippet", "statistics", "contentDetails"}).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube: channel %s: %w", channelID, err)
	}

	if len(resp.Items) == 0 {
		return nil, nil
	}

	item := resp.Items[0]
	channel := &Channel{ID: item.Id}

	if item.Snippet != nil {
		channel.Title = item.Snippet.Title
		channel.Description = item.Snippet.Description
		channel.ThumbnailURL = defaultThumbnail(item.Snippet.Thumbnails)
	}

	if item.Statistics != nil {
		channel.Subscribers = int64(item.Statistics.SubscriberCount)
		channel.Views = int64(item.Statistics.ViewCount)
		channel.Videos = int64(item.Statistics.VideoCount)
	}

	if item.ContentDetails != nil && item.ContentDetails.RelatedPlaylists != nil {
		channel.UploadsPlaylistID = item.ContentDetails.RelatedPlaylists.Uploads
	}

	return channel, nil
}

// RecentVideos lista os últimos envios da playlist e busca as estatísticas em uma única chamada
func (c *client) RecentVideos(ctx context.Context, playlistID string, maxResults int64) ([]Video, error) {
	items, err := c.service.PlaylistItems.
		List([]string{"snippet", "contentDetails"}).
		PlaylistId(playlistID).
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube: playlist %s: %w", playlistID, err)
	}

	videos := make([]Video, 0, len(items.Items))
	ids := make([]string, 0, len(items.Items))
	for _, item := range items.Items {
		if item.ContentDetails == nil || item.Snippet == nil {
			continue
		}

		publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
		if err != nil {
			logrus.WithField("video_id", item.ContentDetails.VideoId).Debug("youtube: data de publicação inválida")
		}

		ids = append(ids, item.ContentDetails.VideoId)
		videos = append(videos, Video{
			ID:          item.ContentDetails.VideoId,
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			PublishedAt: publishedAt,
		})
	}

	if len(ids) == 0 {
		return videos, nil
	}

	stats, err := c.service.Videos.
		List([]string{"statistics"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube: video statistics: %w", err)
	}

	byID := make(map[string]*youtubeapi.VideoStatistics, len(stats.Items))
	for _, item := range stats.Items {
		byID[item.Id] = item.Statistics
	}

	for i := range videos {
		if s := byID[videos[i].ID]; s != nil {
			videos[i].Views = int64(s.ViewCount)
			videos[i].Likes = int64(s.LikeCount)
			videos[i].Comments = int64(s.CommentCount)
		}
	}

	return videos, nil
}

func defaultThumbnail(thumbnails *youtubeapi.ThumbnailDetails) string {
	if thumbnails == nil || thumbnails.Default == nil {
		return ""
	}
	return thumbnails.Default.Url
}
