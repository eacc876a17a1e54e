package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/influencer-match-api/infrastructure/database/postgres"
	"github.com/vfg2006/influencer-match-api/internal/domain"
)

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &postgres.Connection{DB: db}, mock
}

func TestInsertMatchQuery(t *testing.T) {
	match := &domain.Match{
		ID:           "M001",
		CreatorID:    "CRT001",
		OfferingID:   "OFF001",
		FitScore:     0.8,
		MatchReasons: []string{"High audience engagement"},
		Status:       domain.MatchStatusPending,
	}

	query, args, err := insertMatchQuery(match).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO matches (id,creator_id,offering_id,fit_score,price_estimate,match_reasons,mismatch_reasons,status) "+
			"VALUES ($1,$2,$3,$4,$5,$6,$7,$8) ON CONFLICT (creator_id, offering_id) DO NOTHING",
		query)
	assert.Equal(t, []any{
		"M001", "CRT001", "OFF001", 0.8, 0.0,
		pq.StringArray{"High audience engagement"}, pq.StringArray{},
		domain.MatchStatusPending,
	}, args)
}

func TestUpdateMatchStatusQuery(t *testing.T) {
	contactedAt := time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		target        domain.MatchStatus
		contactedAt   *time.Time
		expectedSet   string
		expectedWhere []string
		expectedArgs  []any
	}{
		{
			name:          "Aprovar aceita pending, approved e rejected",
			target:        domain.MatchStatusApproved,
			expectedSet:   "UPDATE matches SET status = $1, updated_at = NOW() WHERE ",
			expectedWhere: []string{"id = $2", "status IN ($3,$4,$5)"},
			expectedArgs: []any{
				domain.MatchStatusApproved, "M001",
				domain.MatchStatusPending, domain.MatchStatusApproved, domain.MatchStatusRejected,
			},
		},
		{
			name:          "Rejeitar nunca alcança partida contatada",
			target:        domain.MatchStatusRejected,
			expectedSet:   "UPDATE matches SET status = $1, updated_at = NOW() WHERE ",
			expectedWhere: []string{"id = $2", "status IN ($3,$4,$5)"},
			expectedArgs: []any{
				domain.MatchStatusRejected, "M001",
				domain.MatchStatusPending, domain.MatchStatusApproved, domain.MatchStatusRejected,
			},
		},
		{
			name:          "Contatar grava a data e aceita apenas pending e approved",
			target:        domain.MatchStatusContacted,
			contactedAt:   &contactedAt,
			expectedSet:   "UPDATE matches SET status = $1, updated_at = NOW(), contacted_at = $2 WHERE ",
			expectedWhere: []string{"id = $3", "status IN ($4,$5)"},
			expectedArgs: []any{
				domain.MatchStatusContacted, contactedAt, "M001",
				domain.MatchStatusPending, domain.MatchStatusApproved,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := updateMatchStatusQuery("M001", tt.target, tt.contactedAt).ToSql()
			require.NoError(t, err)

			assert.Contains(t, query, tt.expectedSet)
			for _, where := range tt.expectedWhere {
				assert.Contains(t, query, where)
			}
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}

func TestMatchRepository_InsertIfAbsentReturnsStoredRow(t *testing.T) {
	ctx := context.Background()
	conn, mock := newMockConnection(t)
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec(`INSERT INTO matches .* ON CONFLICT \(creator_id, offering_id\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`FROM matches WHERE`).
		WithArgs("CRT001", "OFF001").
		WillReturnRows(sqlmock.NewRows(matchColumns).AddRow(
			"M_FIRST", "CRT001", "OFF001", 0.9, 1500.0,
			[]byte(`{"High audience engagement"}`), []byte(`{}`),
			"approved", nil, createdAt, createdAt,
		))

	stored, err := NewMatchRepository(conn).InsertIfAbsent(ctx, &domain.Match{
		ID:         "M_SECOND",
		CreatorID:  "CRT001",
		OfferingID: "OFF001",
		FitScore:   0.4,
		Status:     domain.MatchStatusPending,
	})
	require.NoError(t, err)

	assert.Equal(t, "M_FIRST", stored.ID)
	assert.Equal(t, 0.9, stored.FitScore)
	assert.Equal(t, domain.MatchStatusApproved, stored.Status)
	assert.Equal(t, []string{"High audience engagement"}, stored.MatchReasons)
	assert.Nil(t, stored.ContactedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	contactedAt := time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		affected int64
		expected bool
	}{
		{name: "Status de origem aceito", affected: 1, expected: true},
		{name: "Status de origem recusado não altera a linha", affected: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)

			mock.ExpectExec(`UPDATE matches SET`).
				WithArgs(domain.MatchStatusContacted, contactedAt, "M001", domain.MatchStatusPending, domain.MatchStatusApproved).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			updated, err := NewMatchRepository(conn).UpdateStatus(ctx, "M001", domain.MatchStatusContacted, &contactedAt)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, updated)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
