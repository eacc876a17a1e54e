package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/influencer-match-api/infrastructure/database/postgres"
	"github.com/vfg2006/influencer-match-api/internal/domain"
)

const campaignsTable = "campaigns"

var campaignColumns = []string{
	"id", "brand_id", "offering_id", "name", "description", "budget",
	"target_fit_score", "auto_contact", "status", "created_at",
}

type CampaignRepository interface {
	Create(ctx context.Context, campaign *domain.Campaign) error
	GetByID(ctx context.Context, campaignID string) (*domain.Campaign, error)
	UpdateStatus(ctx context.Context, campaignID string, status domain.CampaignStatus) error
	ListActiveAutoContact(ctx context.Context) ([]*domain.Campaign, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *domain.Campaign) error {
	campaignsSQL, campaignsArgs, err := squirrel.
		Insert(campaignsTable).
		Columns("id", "brand_id", "offering_id", "name", "description", "budget", "target_fit_score", "auto_contact", "status").
		Values(
			campaign.ID,
			campaign.BrandID,
			campaign.OfferingID,
			campaign.Name,
			campaign.Description,
			campaign.Budget,
			campaign.TargetFitScore,
			campaign.AutoContact,
			campaign.Status,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if err := r.conn.QueryRowContext(ctx, campaignsSQL, campaignsArgs...).Scan(&campaign.CreatedAt); err != nil {
		return wrapDatabaseError(err)
	}

	return nil
}

func (r *campaignRepository) GetByID(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	campaignsSQL, campaignsArgs, err := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	campaign, err := scanCampaign(r.conn.QueryRowContext(ctx, campaignsSQL, campaignsArgs...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDatabaseError(err)
	}

	return campaign, nil
}

func (r *campaignRepository) UpdateStatus(ctx context.Context, campaignID string, status domain.CampaignStatus) error {
	campaignsSQL, campaignsArgs, err := squirrel.
		Update(campaignsTable).
		Set("status", status).
		Where(squirrel.Eq{"id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.ExecContext(ctx, campaignsSQL, campaignsArgs...)
	if err != nil {
		return wrapDatabaseError(err)
	}

	return expectAffected(result, fmt.Sprintf("campaign %s", campaignID))
}

func (r *campaignRepository) ListActiveAutoContact(ctx context.Context) ([]*domain.Campaign, error) {
	campaignsSQL, campaignsArgs, err := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"status": domain.CampaignStatusActive, "auto_contact": true}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, campaignsSQL, campaignsArgs...)
	if err != nil {
		return nil, wrapDatabaseError(err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}

	return campaigns, rows.Err()
}

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	var campaign domain.Campaign
	if err := row.Scan(
		&campaign.ID,
		&campaign.BrandID,
		&campaign.OfferingID,
		&campaign.Name,
		&campaign.Description,
		&campaign.Budget,
		&campaign.TargetFitScore,
		&campaign.AutoContact,
		&campaign.Status,
		&campaign.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &campaign, nil
}
