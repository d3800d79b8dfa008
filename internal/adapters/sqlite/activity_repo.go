// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/desk/internal/ports/secondary"
)

const activityIDPrefix = "ACT-"

// ActivityRepository implements secondary.ActivityRepository with SQLite.
type ActivityRepository struct {
	db *sql.DB
}

// NewActivityRepository creates a new SQLite activity repository.
func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create persists a new activity entry.
func (r *ActivityRepository) Create(ctx context.Context, record *secondary.ActivityRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO activity_log (id, operator, structure, action, element_id, summary) VALUES (?, ?, ?, ?, ?, ?)`,
		record.ID,
		nullString(record.Operator),
		nullString(record.Structure),
		record.Action,
		nullString(record.ElementID),
		nullString(record.Summary),
	)
	if err != nil {
		return fmt.Errorf("failed to create activity entry: %w", err)
	}

	return nil
}

// GetByID retrieves an activity entry by its ID.
func (r *ActivityRepository) GetByID(ctx context.Context, id string) (*secondary.ActivityRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, operator, structure, action, element_id, summary, created_at FROM activity_log WHERE id = ?`,
		id,
	)

	record, err := scanActivity(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("activity entry %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get activity entry: %w", err)
	}
	return record, nil
}

// List retrieves activity entries matching the given filters, newest first.
func (r *ActivityRepository) List(ctx context.Context, filters secondary.ActivityFilters) ([]*secondary.ActivityRecord, error) {
	query := `SELECT id, operator, structure, action, element_id, summary, created_at FROM activity_log WHERE 1=1`
	args := []any{}

	if filters.Structure != "" {
		query += " AND structure = ?"
		args = append(args, filters.Structure)
	}

	if filters.Action != "" {
		query += " AND action = ?"
		args = append(args, filters.Action)
	}

	if filters.Operator != "" {
		query += " AND operator = ?"
		args = append(args, filters.Operator)
	}

	// Timestamps only have second precision; the numeric id breaks ties.
	query += fmt.Sprintf(" ORDER BY CAST(SUBSTR(id, %d) AS INTEGER) DESC", len(activityIDPrefix)+1)

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	var records []*secondary.ActivityRecord
	for rows.Next() {
		record, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// GetNextID returns the next available activity ID.
func (r *ActivityRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT COALESCE(MAX(CAST(SUBSTR(id, %d) AS INTEGER)), 0) FROM activity_log", len(activityIDPrefix)+1),
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next activity ID: %w", err)
	}

	return fmt.Sprintf("%s%04d", activityIDPrefix, maxID+1), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(row rowScanner) (*secondary.ActivityRecord, error) {
	var (
		operator  sql.NullString
		structure sql.NullString
		elementID sql.NullString
		summary   sql.NullString
		createdAt time.Time
	)

	record := &secondary.ActivityRecord{}
	err := row.Scan(&record.ID,
		&operator,
		&structure,
		&record.Action,
		&elementID,
		&summary,
		&createdAt)
	if err != nil {
		return nil, err
	}

	record.Operator = operator.String
	record.Structure = structure.String
	record.ElementID = elementID.String
	record.Summary = summary.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	return record, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// Ensure ActivityRepository implements the interface
var _ secondary.ActivityRepository = (*ActivityRepository)(nil)
