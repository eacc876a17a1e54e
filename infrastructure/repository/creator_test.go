package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/influencer-match-api/internal/domain"
)

func TestInsertCreatorQuery(t *testing.T) {
	email := "negocios@techreviewer.com"
	creator := &domain.Creator{
		ID:         "CRT001",
		ExternalID: "UC_tech_001",
		Name:       "Tech Reviewer Pro",
		Email:      &email,
		Categories: []string{"Technology"},
	}

	query, args, err := insertCreatorQuery(creator, []byte(`{}`)).ToSql()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO creators (id,external_id,name,"), query)
	assert.True(t, strings.HasSuffix(query, "VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18) ON CONFLICT (external_id) DO NOTHING"), query)
	assert.NotContains(t, query, "created_at")

	require.Len(t, args, 18)
	assert.Equal(t, "CRT001", args[0])
	assert.Equal(t, "UC_tech_001", args[1])
	assert.Equal(t, &email, args[12])
	assert.Equal(t, pq.StringArray{"Technology"}, args[13])
}

func TestCreatorRepository_InsertIfAbsentReturnsStoredRow(t *testing.T) {
	ctx := context.Background()
	conn, mock := newMockConnection(t)
	analyzedAt := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(`INSERT INTO creators .* ON CONFLICT \(external_id\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`FROM creators WHERE`).
		WithArgs("UC_tech_001").
		WillReturnRows(sqlmock.NewRows(creatorColumns).AddRow(
			"CRT_FIRST", "UC_tech_001", "Tech Reviewer Pro", "Tech Reviewer Pro", "Reviews", "",
			int64(250_000), int64(10_000_000), int64(300), int64(40_000), 0.045, 23.4,
			"negocios@techreviewer.com", []byte(`{Technology}`), []byte(`{"age_range":"18-24"}`),
			"Weekly", nil, analyzedAt, analyzedAt,
		))

	stored, err := NewCreatorRepository(conn).InsertIfAbsent(ctx, &domain.Creator{
		ID:         "CRT_SECOND",
		ExternalID: "UC_tech_001",
		Name:       "Tech Reviewer Pro",
	})
	require.NoError(t, err)

	assert.Equal(t, "CRT_FIRST", stored.ID)
	assert.Equal(t, int64(40_000), stored.AvgViews)
	assert.Equal(t, []string{"Technology"}, stored.Categories)
	assert.Equal(t, "18-24", stored.Demographics.AgeRange)
	require.NotNil(t, stored.Email)
	assert.Equal(t, "negocios@techreviewer.com", *stored.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}
