package repo

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// schemaDDL creates every table if missing. Cascading deletes are a store
// concern: dropping an institution removes its users, sports, teams and
// everything hanging off them.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS user_role (
    id          UUID PRIMARY KEY,
    code        TEXT UNIQUE NOT NULL,
    name        TEXT NOT NULL,
    description TEXT,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS institution (
    id         UUID PRIMARY KEY,
    name       TEXT NOT NULL,
    address    TEXT,
    timezone   TEXT NOT NULL DEFAULT 'UTC',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS app_user (
    id             UUID PRIMARY KEY,
    institution_id UUID REFERENCES institution(id) ON DELETE CASCADE,
    email          TEXT UNIQUE NOT NULL,
    full_name      TEXT NOT NULL,
    role_id        UUID NOT NULL REFERENCES user_role(id),
    phone          TEXT,
    password       TEXT NOT NULL,
    is_active      BOOLEAN NOT NULL DEFAULT TRUE,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS sport (
    id             UUID PRIMARY KEY,
    institution_id UUID NOT NULL REFERENCES institution(id) ON DELETE CASCADE,
    code           TEXT,
    name           TEXT NOT NULL,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS athlete (
    id               UUID PRIMARY KEY,
    institution_id   UUID NOT NULL REFERENCES institution(id) ON DELETE CASCADE,
    user_id          UUID REFERENCES app_user(id) ON DELETE SET NULL,
    first_name       TEXT NOT NULL,
    last_name        TEXT,
    dob              DATE,
    gender           TEXT,
    primary_sport_id UUID REFERENCES sport(id) ON DELETE SET NULL,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS team (
    id             UUID PRIMARY KEY,
    institution_id UUID NOT NULL REFERENCES institution(id) ON DELETE CASCADE,
    name           TEXT NOT NULL,
    sport_id       UUID REFERENCES sport(id) ON DELETE SET NULL,
    coach_id       UUID REFERENCES app_user(id) ON DELETE SET NULL,
    season         TEXT,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS roster (
    id         UUID PRIMARY KEY,
    team_id    UUID NOT NULL REFERENCES team(id) ON DELETE CASCADE,
    athlete_id UUID NOT NULL REFERENCES athlete(id) ON DELETE CASCADE,
    jersey_no  TEXT,
    role       TEXT,
    joined_at  DATE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS session (
    id         UUID PRIMARY KEY,
    team_id    UUID NOT NULL REFERENCES team(id) ON DELETE CASCADE,
    coach_id   UUID REFERENCES app_user(id) ON DELETE SET NULL,
    title      TEXT,
    start_ts   TIMESTAMPTZ NOT NULL,
    end_ts     TIMESTAMPTZ,
    location   TEXT,
    notes      TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS attendance (
    id          UUID PRIMARY KEY,
    session_id  UUID NOT NULL REFERENCES session(id) ON DELETE CASCADE,
    athlete_id  UUID NOT NULL REFERENCES athlete(id) ON DELETE CASCADE,
    status      TEXT NOT NULL,
    recorded_by UUID NOT NULL REFERENCES app_user(id),
    recorded_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS assessment_type (
    id             UUID PRIMARY KEY,
    institution_id UUID NOT NULL REFERENCES institution(id) ON DELETE CASCADE,
    name           TEXT NOT NULL,
    code           TEXT,
    unit           TEXT,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS assessment_result (
    id                 UUID PRIMARY KEY,
    athlete_id         UUID NOT NULL REFERENCES athlete(id) ON DELETE CASCADE,
    assessment_type_id UUID NOT NULL REFERENCES assessment_type(id) ON DELETE CASCADE,
    value              DOUBLE PRECISION NOT NULL,
    notes              TEXT,
    recorded_by        UUID NOT NULL REFERENCES app_user(id),
    recorded_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
    created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS injury (
    id            UUID PRIMARY KEY,
    athlete_id    UUID NOT NULL REFERENCES athlete(id) ON DELETE CASCADE,
    reported_by   UUID NOT NULL REFERENCES app_user(id),
    description   TEXT,
    diagnosis     TEXT,
    date_reported DATE,
    status        TEXT,
    restricted    BOOLEAN NOT NULL DEFAULT FALSE,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_app_user_email ON app_user(email);
CREATE INDEX IF NOT EXISTS idx_athlete_institution ON athlete(institution_id);
CREATE INDEX IF NOT EXISTS idx_team_institution ON team(institution_id);
CREATE INDEX IF NOT EXISTS idx_session_team ON session(team_id);
CREATE INDEX IF NOT EXISTS idx_attendance_session ON attendance(session_id);
CREATE INDEX IF NOT EXISTS idx_assessment_type_institution ON assessment_type(institution_id);
`

const seedRoles = `
INSERT INTO user_role (id, code, name, description) VALUES
    ('8f14e45f-ceea-467f-a0f9-b1a005a4e141', 'admin',   'Administrator', 'Full control inside an institution'),
    ('9bf31c7f-f062-436e-bb5e-fe9a1a7c7b91', 'coach',   'Coach',         'Manages teams, sessions and athlete records'),
    ('45c48cce-2e2d-4fbd-aa1a-fd54c3c6b4b2', 'athlete', 'Athlete',       'Read access to own institution data')
ON CONFLICT (code) DO NOTHING;
`

// EnsureSchema creates tables and seeds the role catalogue. DDL and seed
// run in one transaction so a half-created schema never persists.
func (s *Store) EnsureSchema(ctx context.Context) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, schemaDDL); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, seedRoles)
		return err
	})
}
