package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/influencer-match-api/infrastructure/database/postgres"
	"github.com/vfg2006/influencer-match-api/internal/domain"
)

const creatorsTable = "creators"

var creatorColumns = []string{
	"id", "external_id", "name", "channel_title", "description", "thumbnail_url",
	"subscriber_count", "view_count", "video_count", "avg_views", "engagement_rate", "cpm",
	"email", "categories", "demographics", "upload_frequency", "last_upload_at",
	"last_analyzed_at", "created_at",
}

type CreatorRepository interface {
	GetByID(ctx context.Context, creatorID string) (*domain.Creator, error)
	GetByExternalID(ctx context.Context, externalID string) (*domain.Creator, error)
	// InsertIfAbsent grava o criador apenas se o external_id ainda não existir e
	// devolve a linha persistida, que pode ter sido criada por outra requisição.
	InsertIfAbsent(ctx context.Context, creator *domain.Creator) (*domain.Creator, error)
	UpdateAnalysis(ctx context.Context, creator *domain.Creator) error
}

type creatorRepository struct {
	conn *postgres.Connection
}

func NewCreatorRepository(conn *postgres.Connection) CreatorRepository {
	return &creatorRepository{
		conn: conn,
	}
}

func (r *creatorRepository) GetByID(ctx context.Context, creatorID string) (*domain.Creator, error) {
	return r.getCreator(ctx, squirrel.Eq{"id": creatorID})
}

func (r *creatorRepository) GetByExternalID(ctx context.Context, externalID string) (*domain.Creator, error) {
	return r.getCreator(ctx, squirrel.Eq{"external_id": externalID})
}

func (r *creatorRepository) getCreator(ctx context.Context, where squirrel.Eq) (*domain.Creator, error) {
	creatorsSQL, creatorsArgs, err := squirrel.
		Select(creatorColumns...).
		From(creatorsTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	creator, err := scanCreator(r.conn.QueryRowContext(ctx, creatorsSQL, creatorsArgs...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDatabaseError(err)
	}

	return creator, nil
}

func (r *creatorRepository) InsertIfAbsent(ctx context.Context, creator *domain.Creator) (*domain.Creator, error) {
	demographics, err := json.Marshal(creator.Demographics)
	if err != nil {
		return nil, fmt.Errorf("error marshalling demographics: %w", err)
	}

	creatorsSQL, creatorsArgs, err := insertCreatorQuery(creator, demographics).ToSql()
	if err != nil {
		return nil, err
	}

	if _, err := r.conn.ExecContext(ctx, creatorsSQL, creatorsArgs...); err != nil {
		return nil, wrapDatabaseError(err)
	}

	stored, err := r.GetByExternalID(ctx, creator.ExternalID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("%w: creator %s after insert", ErrNotFound, creator.ExternalID)
	}

	return stored, nil
}

func (r *creatorRepository) UpdateAnalysis(ctx context.Context, creator *domain.Creator) error {
	demographics, err := json.Marshal(creator.Demographics)
	if err != nil {
		return fmt.Errorf("error marshalling demographics: %w", err)
	}

	creatorsSQL, creatorsArgs, err := squirrel.
		Update(creatorsTable).
		Set("name", creator.Name).
		Set("channel_title", creator.ChannelTitle).
		Set("description", creator.Description).
		Set("thumbnail_url", creator.ThumbnailURL).
		Set("subscriber_count", creator.SubscriberCount).
		Set("view_count", creator.ViewCount).
		Set("video_count", creator.VideoCount).
		Set("avg_views", creator.AvgViews).
		Set("engagement_rate", creator.EngagementRate).
		Set("cpm", creator.CPM).
		Set("email", creator.Email).
		Set("categories", stringArray(creator.Categories)).
		Set("demographics", demographics).
		Set("upload_frequency", creator.UploadFrequency).
		Set("last_upload_at", creator.LastUploadAt).
		Set("last_analyzed_at", creator.LastAnalyzedAt).
		Where(squirrel.Eq{"external_id": creator.ExternalID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.ExecContext(ctx, creatorsSQL, creatorsArgs...)
	if err != nil {
		return wrapDatabaseError(err)
	}

	return expectAffected(result, fmt.Sprintf("creator %s", creator.ExternalID))
}

// insertCreatorQuery mantém a primeira gravação de cada canal
func insertCreatorQuery(creator *domain.Creator, demographics []byte) squirrel.InsertBuilder {
	return squirrel.
		Insert(creatorsTable).
		Columns(creatorColumns[:len(creatorColumns)-1]...).
		Values(
			creator.ID,
			creator.ExternalID,
			creator.Name,
			creator.ChannelTitle,
			creator.Description,
			creator.ThumbnailURL,
			creator.SubscriberCount,
			creator.ViewCount,
			creator.VideoCount,
			creator.AvgViews,
			creator.EngagementRate,
			creator.CPM,
			creator.Email,
			stringArray(creator.Categories),
			demographics,
			creator.UploadFrequency,
			creator.LastUploadAt,
			creator.LastAnalyzedAt,
		).
		Suffix("ON CONFLICT (external_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)
}

func scanCreator(row rowScanner) (*domain.Creator, error) {
	var (
		creator      domain.Creator
		categories   pq.StringArray
		demographics []byte
	)

	if err := row.Scan(
		&creator.ID,
		&creator.ExternalID,
		&creator.Name,
		&creator.ChannelTitle,
		&creator.Description,
		&creator.ThumbnailURL,
		&creator.SubscriberCount,
		&creator.ViewCount,
		&creator.VideoCount,
		&creator.AvgViews,
		&creator.EngagementRate,
		&creator.CPM,
		&creator.Email,
		&categories,
		&demographics,
		&creator.UploadFrequency,
		&creator.LastUploadAt,
		&creator.LastAnalyzedAt,
		&creator.CreatedAt,
	); err != nil {
		return nil, err
	}

	creator.Categories = categories

	if len(demographics) > 0 {
		if err := decodeDemographics(demographics, &creator.Demographics); err != nil {
			return nil, err
		}
	}

	return &creator, nil
}

func decodeDemographics(raw []byte, demographics *domain.Demographics) error {
	if err := json.Unmarshal(raw, demographics); err != nil {
		return fmt.Errorf("error unmarshalling demographics: %w", err)
	}
	return nil
}
