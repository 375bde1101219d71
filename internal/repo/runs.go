// Package repo holds the database stores.
package repo

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"audionorm/internal/domain/consts"

	"github.com/Masterminds/squirrel"
)

// RunRecord is one row of the normalization run ledger.
type RunRecord struct {
	ID         int64
	FilePath   string
	Stage      string
	Params     map[string]any
	Status     string
	Error      string
	StartedAt  time.Time
	FinishedAt sql.NullTime
}

// RunFilter narrows List results. Zero values don't filter.
type RunFilter struct {
	Since    time.Time
	Status   string
	FilePath string
	Limit    uint64
}

// RunStore records normalization runs.
type RunStore struct {
	DB  *sql.DB
	now func() time.Time
}

// NewRunStore returns a run store backed by the database.
func NewRunStore(db *sql.DB) *RunStore {
	return &RunStore{
		DB:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Begin inserts a running record and returns its ID.
func (rs *RunStore) Begin(filePath, stage string, params map[string]any) (int64, error) {
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal params: %w", err)
	}

	query := squirrel.
		Insert(consts.DBNormalizations).
		Columns(
			consts.QNormFilePath,
			consts.QNormStage,
			consts.QNormParams,
			consts.QNormStatus,
			consts.QNormStartedAt,
		).
		Values(
			filePath,
			stage,
			string(paramsJSON),
			consts.RunStatusRunning,
			rs.now(),
		).
		RunWith(rs.DB)

	result, err := query.Exec()
	if err != nil {
		return 0, fmt.Errorf("failed to insert run for %q: %w", filePath, err)
	}
	return result.LastInsertId()
}

// Finish marks a run as succeeded (runErr == nil) or failed.
func (rs *RunStore) Finish(id int64, runErr error) error {
	status := consts.RunStatusSuccess
	var errText any
	if runErr != nil {
		status = consts.RunStatusFailed
		errText = runErr.Error()
	}

	query := squirrel.
		Update(consts.DBNormalizations).
		Set(consts.QNormStatus, status).
		Set(consts.QNormError, errText).
		Set(consts.QNormFinishedAt, rs.now()).
		Where(squirrel.Eq{consts.QNormID: id}).
		RunWith(rs.DB)

	result, err := query.Exec()
	if err != nil {
		return fmt.Errorf("failed to update run %d: %w", id, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("run %d not found", id)
	}
	return nil
}

// List returns runs newest first.
func (rs *RunStore) List(f RunFilter) ([]RunRecord, error) {
	query := squirrel.
		Select(
			consts.QNormID,
			consts.QNormFilePath,
			consts.QNormStage,
			consts.QNormParams,
			consts.QNormStatus,
			consts.QNormError,
			consts.QNormStartedAt,
			consts.QNormFinishedAt,
		).
		From(consts.DBNormalizations).
		OrderBy(consts.QNormStartedAt+" DESC", consts.QNormID+" DESC")

	if !f.Since.IsZero() {
		query = query.Where(squirrel.GtOrEq{consts.QNormStartedAt: f.Since.UTC()})
	}
	if f.Status != "" {
		query = query.Where(squirrel.Eq{consts.QNormStatus: f.Status})
	}
	if f.FilePath != "" {
		query = query.Where(squirrel.Eq{consts.QNormFilePath: f.FilePath})
	}
	if f.Limit > 0 {
		query = query.Limit(f.Limit)
	}

	rows, err := query.RunWith(rs.DB).Query()
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var (
			r          RunRecord
			paramsJSON sql.NullString
			errText    sql.NullString
		)
		if err := rows.Scan(
			&r.ID,
			&r.FilePath,
			&r.Stage,
			&paramsJSON,
			&r.Status,
			&errText,
			&r.StartedAt,
			&r.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		if paramsJSON.Valid && paramsJSON.String != "" {
			if err := json.Unmarshal([]byte(paramsJSON.String), &r.Params); err != nil {
				return nil, fmt.Errorf("failed to unmarshal params of run %d: %w", r.ID, err)
			}
		}
		r.Error = errText.String
		records = append(records, r)
	}
	return records, rows.Err()
}
