package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/influencer-match-api/infrastructure/database/postgres"
	"github.com/vfg2006/influencer-match-api/internal/domain"
)

const offeringsTable = "offerings"

type OfferingRepository interface {
	Create(ctx context.Context, offering *domain.Offering) error
	GetByID(ctx context.Context, offeringID string) (*domain.Offering, error)
	ListByBrand(ctx context.Context, brandID string) ([]*domain.Offering, error)
}

type offeringRepository struct {
	conn *postgres.Connection
}

func NewOfferingRepository(conn *postgres.Connection) OfferingRepository {
	return &offeringRepository{
		conn: conn,
	}
}

func (r *offeringRepository) Create(ctx context.Context, offering *domain.Offering) error {
	offeringsSQL, offeringsArgs, err := squirrel.
		Insert(offeringsTable).
		Columns("id", "brand_id", "name", "description", "category", "price_range").
		Values(offering.ID, offering.BrandID, offering.Name, offering.Description, offering.Category, offering.PriceRange).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if err := r.conn.QueryRowContext(ctx, offeringsSQL, offeringsArgs...).Scan(&offering.CreatedAt); err != nil {
		return wrapDatabaseError(err)
	}

	return nil
}

func (r *offeringRepository) GetByID(ctx context.Context, offeringID string) (*domain.Offering, error) {
	offeringsSQL, offeringsArgs, err := squirrel.
		Select("id", "brand_id", "name", "description", "category", "price_range", "created_at").
		From(offeringsTable).
		Where(squirrel.Eq{"id": offeringID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	offering, err := scanOffering(r.conn.QueryRowContext(ctx, offeringsSQL, offeringsArgs...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDatabaseError(err)
	}

	return offering, nil
}

func (r *offeringRepository) ListByBrand(ctx context.Context, brandID string) ([]*domain.Offering, error) {
	offeringsSQL, offeringsArgs, err := squirrel.
		Select("id", "brand_id", "name", "description", "category", "price_range", "created_at").
		From(offeringsTable).
		Where(squirrel.Eq{"brand_id": brandID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, offeringsSQL, offeringsArgs...)
	if err != nil {
		return nil, wrapDatabaseError(err)
	}
	defer rows.Close()

	offerings := make([]*domain.Offering, 0)
	for rows.Next() {
		offering, err := scanOffering(rows)
		if err != nil {
			return nil, err
		}
		offerings = append(offerings, offering)
	}

	return offerings, rows.Err()
}

func scanOffering(row rowScanner) (*domain.Offering, error) {
	var offering domain.Offering
	if err := row.Scan(
		&offering.ID,
		&offering.BrandID,
		&offering.Name,
		&offering.Description,
		&offering.Category,
		&offering.PriceRange,
		&offering.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &offering, nil
}
