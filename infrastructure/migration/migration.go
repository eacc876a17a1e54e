package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-match-api/infrastructure/database/postgres"
)

type step struct {
	name      string
	statement string
}

var steps = []step{
	{
		name: "brands",
		statement: `CREATE TABLE IF NOT EXISTS brands (
			id                    VARCHAR(21) PRIMARY KEY,
			name                  TEXT NOT NULL,
			email                 TEXT NOT NULL UNIQUE,
			website               TEXT,
			password_hash         TEXT NOT NULL,
			role_id               INTEGER NOT NULL DEFAULT 3,
			profile_summary       TEXT NOT NULL DEFAULT '',
			profile_keywords      TEXT[] NOT NULL DEFAULT '{}',
			target_audience       TEXT NOT NULL DEFAULT '',
			brand_values          TEXT[] NOT NULL DEFAULT '{}',
			content_categories    TEXT[] NOT NULL DEFAULT '{}',
			tone                  TEXT NOT NULL DEFAULT '',
			unique_selling_points TEXT[] NOT NULL DEFAULT '{}',
			profile_analyzed_at   TIMESTAMPTZ,
			created_at            TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "offerings",
		statement: `CREATE TABLE IF NOT EXISTS offerings (
			id          VARCHAR(21) PRIMARY KEY,
			brand_id    VARCHAR(21) NOT NULL REFERENCES brands(id),
			name        TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category    TEXT,
			price_range TEXT,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "creators",
		statement: `CREATE TABLE IF NOT EXISTS creators (
			id               VARCHAR(21) PRIMARY KEY,
			external_id      TEXT NOT NULL UNIQUE,
			name             TEXT NOT NULL,
			channel_title    TEXT NOT NULL DEFAULT '',
			description      TEXT NOT NULL DEFAULT '',
			thumbnail_url    TEXT NOT NULL DEFAULT '',
			subscriber_count BIGINT NOT NULL DEFAULT 0,
			view_count       BIGINT NOT NULL DEFAULT 0,
			video_count      BIGINT NOT NULL DEFAULT 0,
			avg_views        BIGINT NOT NULL DEFAULT 0,
			engagement_rate  DOUBLE PRECISION NOT NULL DEFAULT 0,
			cpm              DOUBLE PRECISION NOT NULL DEFAULT 15,
			email            TEXT,
			categories       TEXT[] NOT NULL DEFAULT '{}',
			demographics     JSONB NOT NULL DEFAULT '{}',
			upload_frequency TEXT NOT NULL DEFAULT 'Unknown',
			last_upload_at   TIMESTAMPTZ,
			last_analyzed_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "matches",
		statement: `CREATE TABLE IF NOT EXISTS matches (
			id               VARCHAR(21) PRIMARY KEY,
			creator_id       VARCHAR(21) NOT NULL REFERENCES creators(id),
			offering_id      VARCHAR(21) NOT NULL REFERENCES offerings(id),
			fit_score        DOUBLE PRECISION NOT NULL CHECK (fit_score >= 0 AND fit_score <= 1),
			price_estimate   DOUBLE PRECISION NOT NULL CHECK (price_estimate >= 50),
			match_reasons    TEXT[] NOT NULL DEFAULT '{}',
			mismatch_reasons TEXT[] NOT NULL DEFAULT '{}',
			status           TEXT NOT NULL DEFAULT 'pending',
			contacted_at     TIMESTAMPTZ,
			created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (creator_id, offering_id)
		)`,
	},
	{
		name:      "matches_offering_status_idx",
		statement: `CREATE INDEX IF NOT EXISTS matches_offering_status_idx ON matches (offering_id, status, fit_score DESC)`,
	},
	{
		name: "campaigns",
		statement: `CREATE TABLE IF NOT EXISTS campaigns (
			id               VARCHAR(21) PRIMARY KEY,
			brand_id         VARCHAR(21) NOT NULL REFERENCES brands(id),
			offering_id      VARCHAR(21) NOT NULL REFERENCES offerings(id),
			name             TEXT NOT NULL,
			description      TEXT NOT NULL DEFAULT '',
			budget           DOUBLE PRECISION,
			target_fit_score DOUBLE PRECISION NOT NULL DEFAULT 0.7,
			auto_contact     BOOLEAN NOT NULL DEFAULT TRUE,
			status           TEXT NOT NULL DEFAULT 'active',
			created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
}

// Migrate cria as tabelas que ainda não existem em uma única transação
func Migrate(ctx context.Context, conn postgres.Conn) error {
	startTime := time.Now()
	logrus.Infof("Iniciando migração com %d etapas", len(steps))

	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, s := range steps {
			if _, err := tx.ExecContext(ctx, s.statement); err != nil {
				return fmt.Errorf("migration step %s: %w", s.name, err)
			}
			logrus.Debugf("Etapa [%d/%d] %s aplicada", i+1, len(steps), s.name)
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Error("Migração interrompida")
		return err
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
	return nil
}
