package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"

	"github.com/flyready/question-engine/internal/domain"
)

// SetRepo persists and loads question sets using a minimal pgx pool.
type SetRepo struct{ Pool PgxPool }

// PgxPool is a minimal subset of pgxpool used by the repos for easy testing.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// NewSetRepo constructs a SetRepo with the given pool.
func NewSetRepo(p PgxPool) *SetRepo { return &SetRepo{Pool: p} }

// Insert stores a generated set and returns its id (generates one if empty).
func (r *SetRepo) Insert(ctx context.Context, rec domain.SetRecord) (string, error) {
	tracer := otel.Tracer("repo.sets")
	ctx, span := tracer.Start(ctx, "sets.Insert")
	defer span.End()
	id := rec.ID
	if id == "" {
		id = uuid.New().String()
	}
	setJSON, err := json.Marshal(rec.Set)
	if err != nil {
		return "", fmt.Errorf("op=set.insert: encode: %w", err)
	}
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	q := `INSERT INTO question_sets (id, essay_hash, airline, airline_type, version, set_json, created_at) VALUES ($1,$2,$3,$4,$5,$6,$7)`
	if _, err := r.Pool.Exec(ctx, q, id, rec.EssayHash, rec.Airline, string(rec.Type), rec.Version, setJSON, createdAt); err != nil {
		return "", fmt.Errorf("op=set.insert: %w", err)
	}
	return id, nil
}

// ListByEssayHash loads the most recent sets for one essay, newest first.
func (r *SetRepo) ListByEssayHash(ctx context.Context, essayHash string, limit int) ([]domain.SetRecord, error) {
	tracer := otel.Tracer("repo.sets")
	ctx, span := tracer.Start(ctx, "sets.ListByEssayHash")
	defer span.End()
	if limit <= 0 {
		limit = 20
	}
	q := `SELECT id, essay_hash, airline, airline_type, version, set_json, created_at
	FROM question_sets WHERE essay_hash=$1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.Pool.Query(ctx, q, essayHash, limit)
	if err != nil {
		return nil, fmt.Errorf("op=set.list: %w", err)
	}
	defer rows.Close()

	var out []domain.SetRecord
	for rows.Next() {
		var rec domain.SetRecord
		var atype string
		var setJSON []byte
		if err := rows.Scan(&rec.ID, &rec.EssayHash, &rec.Airline, &atype, &rec.Version, &setJSON, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("op=set.list: scan: %w", err)
		}
		rec.Type = domain.AirlineType(atype)
		if err := json.Unmarshal(setJSON, &rec.Set); err != nil {
			return nil, fmt.Errorf("op=set.list: decode: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("op=set.list: rows: %w", err)
	}
	return out, nil
}

// Get loads one set by id.
func (r *SetRepo) Get(ctx context.Context, id string) (domain.SetRecord, error) {
	tracer := otel.Tracer("repo.sets")
	ctx, span := tracer.Start(ctx, "sets.Get")
	defer span.End()
	q := `SELECT id, essay_hash, airline, airline_type, version, set_json, created_at FROM question_sets WHERE id=$1`
	row := r.Pool.QueryRow(ctx, q, id)
	var rec domain.SetRecord
	var atype string
	var setJSON []byte
	if err := row.Scan(&rec.ID, &rec.EssayHash, &rec.Airline, &atype, &rec.Version, &setJSON, &rec.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.SetRecord{}, fmt.Errorf("%w: set %s", domain.ErrNotFound, id)
		}
		return domain.SetRecord{}, fmt.Errorf("op=set.get: %w", err)
	}
	rec.Type = domain.AirlineType(atype)
	if err := json.Unmarshal(setJSON, &rec.Set); err != nil {
		return domain.SetRecord{}, fmt.Errorf("op=set.get: decode: %w", err)
	}
	return rec, nil
}
