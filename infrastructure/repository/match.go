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

const matchesTable = "matches"

var matchColumns = []string{
	"id", "creator_id", "offering_id", "fit_score", "price_estimate", "match_reasons",
	"mismatch_reasons", "status", "contacted_at", "created_at", "updated_at",
}

type MatchRepository interface {
	GetByID(ctx context.Context, matchID string) (*domain.Match, error)
	// InsertIfAbsent mantém a primeira gravação do par (creator, offering)
	InsertIfAbsent(ctx context.Context, match *domain.Match) (*domain.Match, error)
	// UpdateStatus só altera a linha se o status atual for um dos permitidos para o destino.
	// Retorna false quando nenhuma linha foi alterada.
	UpdateStatus(ctx context.Context, matchID string, target domain.MatchStatus, contactedAt *time.Time) (bool, error)
	UpdateScores(ctx context.Context, matchID string, draft domain.MatchDraft) error
	ListByOffering(ctx context.Context, offeringID string, statuses []domain.MatchStatus) ([]*domain.MatchWithCreator, error)
	ListContactable(ctx context.Context, offeringID string, minFitScore float64) ([]*domain.MatchWithCreator, error)
}

type matchRepository struct {
	conn *postgres.Connection
}

func NewMatchRepository(conn *postgres.Connection) MatchRepository {
	return &matchRepository{
		conn: conn,
	}
}

func (r *matchRepository) GetByID(ctx context.Context, matchID string) (*domain.Match, error) {
	return r.getMatch(ctx, squirrel.Eq{"id": matchID})
}

func (r *matchRepository) getMatch(ctx context.Context, where squirrel.Eq) (*domain.Match, error) {
	matchesSQL, matchesArgs, err := squirrel.
		Select(matchColumns...).
		From(matchesTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	match, err := scanMatch(r.conn.QueryRowContext(ctx, matchesSQL, matchesArgs...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDatabaseError(err)
	}

	return match, nil
}

func (r *matchRepository) InsertIfAbsent(ctx context.Context, match *domain.Match) (*domain.Match, error) {
	matchesSQL, matchesArgs, err := insertMatchQuery(match).ToSql()
	if err != nil {
		return nil, err
	}

	if _, err := r.conn.ExecContext(ctx, matchesSQL, matchesArgs...); err != nil {
		return nil, wrapDatabaseError(err)
	}

	stored, err := r.getMatch(ctx, squirrel.Eq{"creator_id": match.CreatorID, "offering_id": match.OfferingID})
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("%w: match %s/%s after insert", ErrNotFound, match.CreatorID, match.OfferingID)
	}

	return stored, nil
}

func (r *matchRepository) UpdateStatus(ctx context.Context, matchID string, target domain.MatchStatus, contactedAt *time.Time) (bool, error) {
	matchesSQL, matchesArgs, err := updateMatchStatusQuery(matchID, target, contactedAt).ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.conn.ExecContext(ctx, matchesSQL, matchesArgs...)
	if err != nil {
		return false, wrapDatabaseError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error checking rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// insertMatchQuery nunca sobrescreve o par (creator, offering) já gravado
func insertMatchQuery(match *domain.Match) squirrel.InsertBuilder {
	return squirrel.
		Insert(matchesTable).
		Columns("id", "creator_id", "offering_id", "fit_score", "price_estimate", "match_reasons", "mismatch_reasons", "status").
		Values(
			match.ID,
			match.CreatorID,
			match.OfferingID,
			match.FitScore,
			match.PriceEstimate,
			stringArray(match.MatchReasons),
			stringArray(match.MismatchReasons),
			match.Status,
		).
		Suffix("ON CONFLICT (creator_id, offering_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)
}

// updateMatchStatusQuery filtra pelo status atual para que a transição seja decidida pelo banco
func updateMatchStatusQuery(matchID string, target domain.MatchStatus, contactedAt *time.Time) squirrel.UpdateBuilder {
	queryBuilder := squirrel.
		Update(matchesTable).
		Set("status", target).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": matchID, "status": domain.AllowedSources(target)}).
		PlaceholderFormat(squirrel.Dollar)

	if contactedAt != nil {
		queryBuilder = queryBuilder.Set("contacted_at", *contactedAt)
	}

	return queryBuilder
}

func (r *matchRepository) UpdateScores(ctx context.Context, matchID string, draft domain.MatchDraft) error {
	matchesSQL, matchesArgs, err := squirrel.
		Update(matchesTable).
		Set("fit_score", draft.FitScore).
		Set("price_estimate", draft.PriceEstimate).
		Set("match_reasons", stringArray(draft.MatchReasons)).
		Set("mismatch_reasons", stringArray(draft.MismatchReasons)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": matchID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.ExecContext(ctx, matchesSQL, matchesArgs...)
	if err != nil {
		return wrapDatabaseError(err)
	}

	return expectAffected(result, fmt.Sprintf("match %s", matchID))
}

func (r *matchRepository) ListByOffering(ctx context.Context, offeringID string, statuses []domain.MatchStatus) ([]*domain.MatchWithCreator, error) {
	where := squirrel.Eq{"m.offering_id": offeringID}
	if len(statuses) > 0 {
		where["m.status"] = statuses
	}

	return r.listWithCreator(ctx, squirrel.And{where})
}

func (r *matchRepository) ListContactable(ctx context.Context, offeringID string, minFitScore float64) ([]*domain.MatchWithCreator, error) {
	return r.listWithCreator(ctx, squirrel.And{
		squirrel.Eq{"m.offering_id": offeringID, "m.status": domain.MatchStatusPending},
		squirrel.GtOrEq{"m.fit_score": minFitScore},
	})
}

func (r *matchRepository) listWithCreator(ctx context.Context, where squirrel.And) ([]*domain.MatchWithCreator, error) {
	columns := append(prefixColumns("m", matchColumns), prefixColumns("c", creatorColumns)...)

	matchesSQL, matchesArgs, err := squirrel.
		Select(columns...).
		From(matchesTable + " m").
		Join(creatorsTable + " c ON c.id = m.creator_id").
		Where(where).
		OrderBy("m.fit_score DESC", "m.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, matchesSQL, matchesArgs...)
	if err != nil {
		return nil, wrapDatabaseError(err)
	}
	defer rows.Close()

	matches := make([]*domain.MatchWithCreator, 0)
	for rows.Next() {
		item, err := scanMatchWithCreator(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, item)
	}

	return matches, rows.Err()
}

func prefixColumns(alias string, columns []string) []string {
	prefixed := make([]string, len(columns))
	for i, column := range columns {
		prefixed[i] = alias + "." + column
	}
	return prefixed
}

func scanMatch(row rowScanner) (*domain.Match, error) {
	match, dest := matchScanTargets()
	if err := row.Scan(dest.targets()...); err != nil {
		return nil, err
	}
	dest.apply(match)
	return match, nil
}

func scanMatchWithCreator(row rowScanner) (*domain.MatchWithCreator, error) {
	match, matchDest := matchScanTargets()

	var (
		categories   pq.StringArray
		demographics []byte
	)
	item := &domain.MatchWithCreator{}
	creator := &item.Creator

	targets := append(matchDest.targets(),
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
	)
	if err := row.Scan(targets...); err != nil {
		return nil, err
	}

	matchDest.apply(match)
	item.Match = *match
	creator.Categories = categories

	if len(demographics) > 0 {
		if err := decodeDemographics(demographics, &creator.Demographics); err != nil {
			return nil, err
		}
	}

	return item, nil
}

type matchArrays struct {
	match           *domain.Match
	matchReasons    pq.StringArray
	mismatchReasons pq.StringArray
}

func matchScanTargets() (*domain.Match, *matchArrays) {
	match := &domain.Match{}
	return match, &matchArrays{match: match}
}

func (m *matchArrays) targets() []any {
	return []any{
		&m.match.ID,
		&m.match.CreatorID,
		&m.match.OfferingID,
		&m.match.FitScore,
		&m.match.PriceEstimate,
		&m.matchReasons,
		&m.mismatchReasons,
		&m.match.Status,
		&m.match.ContactedAt,
		&m.match.CreatedAt,
		&m.match.UpdatedAt,
	}
}

func (m *matchArrays) apply(match *domain.Match) {
	match.MatchReasons = m.matchReasons
	match.MismatchReasons = m.mismatchReasons
}
