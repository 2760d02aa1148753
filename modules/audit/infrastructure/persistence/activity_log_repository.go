package persistence

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/atelier-dourado/backoffice/modules/audit/domain/activitylog"
	"github.com/atelier-dourado/backoffice/pkg/composables"
	"github.com/atelier-dourado/backoffice/pkg/repo"
	"github.com/google/uuid"
)

const (
	activityLogInsertQuery = `
		INSERT INTO activity_logs (id, action, entity, entity_id, description, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	activityLogSelectQuery = `
		SELECT id, action, entity, entity_id, description, user_id, created_at
		FROM activity_logs`

	activityLogCountQuery = `SELECT COUNT(*) FROM activity_logs`
)

type PgActivityLogRepository struct{}

func NewActivityLogRepository() activitylog.Repository {
	return &PgActivityLogRepository{}
}

func buildActivityLogFilters(params *activitylog.FindParams) ([]string, []any) {
	where := []string{"1 = 1"}
	var args []any
	if params == nil {
		return where, args
	}
	if params.Entity != "" {
		args = append(args, params.Entity)
		where = append(where, "entity = $"+strconv.Itoa(len(args)))
	}
	if params.UserID != "" {
		args = append(args, params.UserID)
		where = append(where, "user_id = $"+strconv.Itoa(len(args)))
	}
	return where, args
}

func (r *PgActivityLogRepository) Create(ctx context.Context, entry *activitylog.Entry) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, err = tx.Exec(
		ctx,
		activityLogInsertQuery,
		entry.ID.String(),
		string(entry.Action),
		entry.Entity,
		entry.EntityID,
		entry.Description,
		entry.UserID,
		entry.CreatedAt,
	)
	return err
}

func (r *PgActivityLogRepository) List(ctx context.Context, params *activitylog.FindParams) ([]*activitylog.Entry, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	where, args := buildActivityLogFilters(params)
	query := activityLogSelectQuery + `
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY created_at DESC`
	if params != nil {
		if clause := repo.FormatLimitOffset(params.Limit, params.Offset); clause != "" {
			query += " " + clause
		}
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*activitylog.Entry
	for rows.Next() {
		var entry activitylog.Entry
		var id, action string
		if err := rows.Scan(
			&id,
			&action,
			&entry.Entity,
			&entry.EntityID,
			&entry.Description,
			&entry.UserID,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, err
		}
		entry.ID = parsed
		entry.Action = activitylog.Action(action)
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *PgActivityLogRepository) Count(ctx context.Context, params *activitylog.FindParams) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	where, args := buildActivityLogFilters(params)
	var count int64
	if err := tx.QueryRow(ctx, activityLogCountQuery+` WHERE `+strings.Join(where, " AND "), args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
