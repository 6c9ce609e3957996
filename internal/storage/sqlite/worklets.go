package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kendallross/studypace/internal/models"
)

// The worklet row keeps a few scalar columns for listing and lookups; the
// full worklet (subtasks, workload, tasks, undo snapshot) is stored as a
// JSON document in the data column.

func (s *Store) AddWorklet(w models.Worklet) error {
	return s.SaveWorklet(w)
}

func (s *Store) SaveWorklet(w models.Worklet) error {
	if w.DeletedAt != nil {
		return fmt.Errorf("cannot save a worklet with deleted_at set; use DeleteWorklet to soft-delete or RestoreWorklet to restore")
	}

	w.UpdatedAt = time.Now()
	if w.CreatedAt.IsZero() {
		w.CreatedAt = w.UpdatedAt
	}

	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("failed to encode worklet: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO worklets (id, kind, name, deadline, data, created_at, updated_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NULL)
		ON CONFLICT (id) DO UPDATE SET
			kind = excluded.kind,
			name = excluded.name,
			deadline = excluded.deadline,
			data = excluded.data,
			updated_at = excluded.updated_at`,
		w.ID, string(w.Kind), w.Name, w.Deadline.Format(time.RFC3339), string(data),
		w.CreatedAt.Format(time.RFC3339), w.UpdatedAt.Format(time.RFC3339),
	)
	return err
}

func (s *Store) GetWorklet(id string) (models.Worklet, error) {
	row := s.db.QueryRow("SELECT data FROM worklets WHERE id = ? AND deleted_at IS NULL", id)
	return scanWorklet(row)
}

func (s *Store) GetAllWorklets() ([]models.Worklet, error) {
	return s.queryWorklets("SELECT data, deleted_at FROM worklets WHERE deleted_at IS NULL ORDER BY deadline")
}

func (s *Store) GetAllWorkletsIncludingDeleted() ([]models.Worklet, error) {
	return s.queryWorklets("SELECT data, deleted_at FROM worklets ORDER BY deadline")
}

func (s *Store) DeleteWorklet(id string) error {
	res, err := s.db.Exec(
		"UPDATE worklets SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL",
		time.Now().Format(time.RFC3339), id,
	)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

func (s *Store) RestoreWorklet(id string) error {
	res, err := s.db.Exec(
		"UPDATE worklets SET deleted_at = NULL WHERE id = ? AND deleted_at IS NOT NULL",
		id,
	)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

func (s *Store) queryWorklets(query string) ([]models.Worklet, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var worklets []models.Worklet
	for rows.Next() {
		var data string
		var deletedAt sql.NullString
		if err := rows.Scan(&data, &deletedAt); err != nil {
			return nil, err
		}
		var w models.Worklet
		if err := json.Unmarshal([]byte(data), &w); err != nil {
			return nil, fmt.Errorf("failed to decode worklet: %w", err)
		}
		// The soft-delete marker lives in the column, not the document
		if deletedAt.Valid {
			if t, err := time.Parse(time.RFC3339, deletedAt.String); err == nil {
				w.DeletedAt = &t
			}
		}
		worklets = append(worklets, w)
	}
	return worklets, rows.Err()
}

func scanWorklet(row *sql.Row) (models.Worklet, error) {
	var data string
	if err := row.Scan(&data); err != nil {
		return models.Worklet{}, err
	}
	var w models.Worklet
	if err := json.Unmarshal([]byte(data), &w); err != nil {
		return models.Worklet{}, fmt.Errorf("failed to decode worklet: %w", err)
	}
	return w, nil
}

func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("worklet not found: %s", id)
	}
	return nil
}
