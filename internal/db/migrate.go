package db

import (
	"database/sql"
	"fmt"
)

// Schema overview: every entity kind has a secure_* table keyed by the
// original id and a public_* table keyed by the anonymized id. Public tables
// carry no original_id column; sensitive columns hold tokens instead of
// original values. List- and map-valued fields are stored as JSON text.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS token_mappings (
		category   TEXT NOT NULL CHECK(category IN ('users','workstreams','notes')),
		original   TEXT NOT NULL,
		token      TEXT NOT NULL,
		created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now')),
		PRIMARY KEY (category, original)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_token_mappings_token
		ON token_mappings (category, token)`,

	`CREATE TABLE IF NOT EXISTS secure_profiles (
		id                 TEXT PRIMARY KEY,
		anonymized_id      TEXT NOT NULL UNIQUE,
		name               TEXT NOT NULL,
		role               TEXT NOT NULL DEFAULT '',
		hourly_rate        REAL NOT NULL DEFAULT 0,
		daily_rate         REAL NOT NULL DEFAULT 0,
		workstreams        TEXT NOT NULL DEFAULT '[]',
		allocated_hours    TEXT NOT NULL DEFAULT '{}',
		skills             TEXT NOT NULL DEFAULT '[]',
		start_date         TEXT,
		end_date           TEXT,
		utilization_target REAL NOT NULL DEFAULT 1.0
	)`,
	`CREATE TABLE IF NOT EXISTS public_profiles (
		anonymized_id      TEXT PRIMARY KEY,
		name               TEXT NOT NULL,
		role               TEXT NOT NULL DEFAULT '',
		hourly_rate        REAL NOT NULL DEFAULT 0,
		daily_rate         REAL NOT NULL DEFAULT 0,
		workstreams        TEXT NOT NULL DEFAULT '[]',
		allocated_hours    TEXT NOT NULL DEFAULT '{}',
		skills             TEXT NOT NULL DEFAULT '[]',
		start_date         TEXT,
		end_date           TEXT,
		utilization_target REAL NOT NULL DEFAULT 1.0
	)`,

	`CREATE TABLE IF NOT EXISTS secure_workstreams (
		id                TEXT PRIMARY KEY,
		anonymized_id     TEXT NOT NULL UNIQUE,
		name              TEXT NOT NULL,
		description       TEXT NOT NULL DEFAULT '',
		status            TEXT NOT NULL DEFAULT 'planned'
		                  CHECK(status IN ('planned','in_progress','on_hold','completed','cancelled')),
		priority          TEXT NOT NULL DEFAULT 'medium',
		estimated_hours   REAL NOT NULL DEFAULT 0,
		actual_hours      REAL NOT NULL DEFAULT 0,
		completion_pct    REAL NOT NULL DEFAULT 0,
		start_date        TEXT,
		end_date          TEXT,
		assigned_profiles TEXT NOT NULL DEFAULT '[]',
		dependencies      TEXT NOT NULL DEFAULT '[]',
		tags              TEXT NOT NULL DEFAULT '[]'
	)`,
	`CREATE TABLE IF NOT EXISTS public_workstreams (
		anonymized_id     TEXT PRIMARY KEY,
		name              TEXT NOT NULL,
		description       TEXT NOT NULL DEFAULT '',
		status            TEXT NOT NULL DEFAULT 'planned',
		priority          TEXT NOT NULL DEFAULT 'medium',
		estimated_hours   REAL NOT NULL DEFAULT 0,
		actual_hours      REAL NOT NULL DEFAULT 0,
		completion_pct    REAL NOT NULL DEFAULT 0,
		start_date        TEXT,
		end_date          TEXT,
		assigned_profiles TEXT NOT NULL DEFAULT '[]',
		dependencies      TEXT NOT NULL DEFAULT '[]',
		tags              TEXT NOT NULL DEFAULT '[]'
	)`,

	`CREATE TABLE IF NOT EXISTS secure_timesheets (
		id              TEXT PRIMARY KEY,
		anonymized_id   TEXT NOT NULL UNIQUE,
		date            TEXT NOT NULL,
		user_id         TEXT NOT NULL,
		workstream_id   TEXT NOT NULL,
		hours           REAL NOT NULL CHECK(hours >= 0),
		notes           TEXT NOT NULL DEFAULT '',
		approval_status TEXT NOT NULL DEFAULT 'open'
		                CHECK(approval_status IN ('open','submitted','approved','rejected')),
		submitted_at    TEXT,
		approved_at     TEXT,
		approved_by     TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS public_timesheets (
		anonymized_id   TEXT PRIMARY KEY,
		date            TEXT NOT NULL,
		user_id         TEXT NOT NULL,
		workstream_id   TEXT NOT NULL,
		hours           REAL NOT NULL CHECK(hours >= 0),
		notes           TEXT NOT NULL DEFAULT '',
		approval_status TEXT NOT NULL DEFAULT 'open',
		submitted_at    TEXT,
		approved_at     TEXT,
		approved_by     TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_secure_timesheets_workstream
		ON secure_timesheets (workstream_id)`,
	`CREATE INDEX IF NOT EXISTS idx_public_timesheets_date
		ON public_timesheets (date)`,

	`CREATE TABLE IF NOT EXISTS secure_budgets (
		id             TEXT PRIMARY KEY,
		anonymized_id  TEXT NOT NULL UNIQUE,
		workstream_id  TEXT NOT NULL,
		profile_id     TEXT NOT NULL DEFAULT '',
		budget_type    TEXT NOT NULL CHECK(budget_type IN ('labor','non_labor','total')),
		period         TEXT NOT NULL CHECK(period IN ('monthly','quarterly','annually')),
		start_date     TEXT NOT NULL,
		end_date       TEXT NOT NULL,
		planned_hours  REAL NOT NULL DEFAULT 0,
		planned_amount REAL NOT NULL DEFAULT 0,
		actual_hours   REAL NOT NULL DEFAULT 0,
		actual_amount  REAL NOT NULL DEFAULT 0,
		status         TEXT NOT NULL DEFAULT 'draft',
		notes          TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS public_budgets (
		anonymized_id  TEXT PRIMARY KEY,
		workstream_id  TEXT NOT NULL,
		profile_id     TEXT NOT NULL DEFAULT '',
		budget_type    TEXT NOT NULL,
		period         TEXT NOT NULL,
		start_date     TEXT NOT NULL,
		end_date       TEXT NOT NULL,
		planned_hours  REAL NOT NULL DEFAULT 0,
		planned_amount REAL NOT NULL DEFAULT 0,
		actual_hours   REAL NOT NULL DEFAULT 0,
		actual_amount  REAL NOT NULL DEFAULT 0,
		status         TEXT NOT NULL DEFAULT 'draft',
		notes          TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_secure_budgets_workstream
		ON secure_budgets (workstream_id)`,

	`CREATE TABLE IF NOT EXISTS secure_forecasts (
		id               TEXT PRIMARY KEY,
		anonymized_id    TEXT NOT NULL UNIQUE,
		workstream_id    TEXT NOT NULL,
		profile_id       TEXT NOT NULL DEFAULT '',
		period           TEXT NOT NULL CHECK(period IN ('monthly','quarterly','annually')),
		start_date       TEXT NOT NULL,
		end_date         TEXT NOT NULL,
		forecast_hours   REAL NOT NULL DEFAULT 0,
		forecast_amount  REAL NOT NULL DEFAULT 0,
		confidence_level REAL NOT NULL DEFAULT 0 CHECK(confidence_level BETWEEN 0 AND 1),
		assumptions      TEXT NOT NULL DEFAULT '[]',
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS public_forecasts (
		anonymized_id    TEXT PRIMARY KEY,
		workstream_id    TEXT NOT NULL,
		profile_id       TEXT NOT NULL DEFAULT '',
		period           TEXT NOT NULL,
		start_date       TEXT NOT NULL,
		end_date         TEXT NOT NULL,
		forecast_hours   REAL NOT NULL DEFAULT 0,
		forecast_amount  REAL NOT NULL DEFAULT 0,
		confidence_level REAL NOT NULL DEFAULT 0,
		assumptions      TEXT NOT NULL DEFAULT '[]',
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_secure_forecasts_workstream
		ON secure_forecasts (workstream_id)`,
}

// Migrate runs all schema migrations. Statements are idempotent, so the
// whole list re-runs on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
