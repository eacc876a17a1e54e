package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/influencer-match-api/infrastructure/database/postgres"
	"github.com/vfg2006/influencer-match-api/internal/domain"
)

const brandsTable = "brands"

var brandColumns = []string{
	"id", "name", "email", "website", "password_hash", "role_id",
	"profile_summary", "profile_keywords", "target_audience", "brand_values",
	"content_categories", "tone", "unique_selling_points", "profile_analyzed_at", "created_at",
}

// ErrBrandEmailTaken indica que o email já pertence a outra marca
var ErrBrandEmailTaken = errors.New("brand email already registered")

type BrandRepository interface {
	Create(ctx context.Context, brand *domain.Brand) error
	GetByID(ctx context.Context, brandID string) (*domain.Brand, error)
	GetByEmail(ctx context.Context, email string) (*domain.Brand, error)
	UpdateProfile(ctx context.Context, brandID string, profile domain.BrandProfile, analyzedAt time.Time) error
}

type brandRepository struct {
	conn *postgres.Connection
}

func NewBrandRepository(conn *postgres.Connection) BrandRepository {
	return &brandRepository{
		conn: conn,
	}
}

func (r *brandRepository) Create(ctx context.Context, brand *domain.Brand) error {
	brandsSQL, brandsArgs, err := squirrel.
		Insert(brandsTable).
		Columns("id", "name", "email", "website", "password_hash", "role_id").
		Values(brand.ID, brand.Name, brand.Email, brand.Website, brand.PasswordHash, brand.RoleID).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if err := r.conn.QueryRowContext(ctx, brandsSQL, brandsArgs...).Scan(&brand.CreatedAt); err != nil {
		if postgres.IsUniqueViolation(err) {
			return ErrBrandEmailTaken
		}
		return wrapDatabaseError(err)
	}

	return nil
}

func (r *brandRepository) GetByID(ctx context.Context, brandID string) (*domain.Brand, error) {
	return r.getBrand(ctx, squirrel.Eq{"id": brandID})
}

func (r *brandRepository) GetByEmail(ctx context.Context, email string) (*domain.Brand, error) {
	return r.getBrand(ctx, squirrel.Eq{"email": email})
}

func (r *brandRepository) getBrand(ctx context.Context, where squirrel.Eq) (*domain.Brand, error) {
	brandsSQL, brandsArgs, err := squirrel.
		Select(brandColumns...).
		From(brandsTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	brand, err := scanBrand(r.conn.QueryRowContext(ctx, brandsSQL, brandsArgs...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDatabaseError(err)
	}

	return brand, nil
}

func (r *brandRepository) UpdateProfile(ctx context.Context, brandID string, profile domain.BrandProfile, analyzedAt time.Time) error {
	brandsSQL, brandsArgs, err := squirrel.
		Update(brandsTable).
		Set("profile_summary", profile.Summary).
		Set("profile_keywords", stringArray(profile.Keywords)).
		Set("target_audience", profile.TargetAudience).
		Set("brand_values", stringArray(profile.Values)).
		Set("content_categories", stringArray(profile.ContentCategories)).
		Set("tone", profile.Tone).
		Set("unique_selling_points", stringArray(profile.UniqueSellingPoints)).
		Set("profile_analyzed_at", analyzedAt).
		Where(squirrel.Eq{"id": brandID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.ExecContext(ctx, brandsSQL, brandsArgs...)
	if err != nil {
		return wrapDatabaseError(err)
	}

	return expectAffected(result, fmt.Sprintf("brand %s", brandID))
}

func scanBrand(row rowScanner) (*domain.Brand, error) {
	var (
		brand               domain.Brand
		keywords            pq.StringArray
		values              pq.StringArray
		categories          pq.StringArray
		uniqueSellingPoints pq.StringArray
	)

	if err := row.Scan(
		&brand.ID,
		&brand.Name,
		&brand.Email,
		&brand.Website,
		&brand.PasswordHash,
		&brand.RoleID,
		&brand.Profile.Summary,
		&keywords,
		&brand.Profile.TargetAudience,
		&values,
		&categories,
		&brand.Profile.Tone,
		&uniqueSellingPoints,
		&brand.ProfileAnalyzedAt,
		&brand.CreatedAt,
	); err != nil {
		return nil, err
	}

	brand.Profile.Keywords = keywords
	brand.Profile.Values = values
	brand.Profile.ContentCategories = categories
	brand.Profile.UniqueSellingPoints = uniqueSellingPoints

	return &brand, nil
}
