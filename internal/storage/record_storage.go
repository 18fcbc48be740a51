package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/Susmita-Codes/Pravartak-AI/internal/models"
)

const recordColumns = `id, user_id, session_id, job_role, metrics, analysis, audio_file, created_at`

func (s *Store) CreateInterviewRecord(ctx context.Context, r *models.InterviewRecord) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}
	metrics, err := json.Marshal(r.Metrics)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO interview_records(`+recordColumns+`) VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.UserID, r.SessionID, r.JobRole, string(metrics), r.Analysis, r.AudioFile, formatTime(r.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting interview record: %w", err)
	}
	return nil
}

// SetRecordAudio attaches the merged session audio to a record.
func (s *Store) SetRecordAudio(ctx context.Context, recordID, audioFile string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE interview_records SET audio_file = ? WHERE id = ?`, audioFile, recordID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListInterviewRecords returns the user's records, newest first.
func (s *Store) ListInterviewRecords(ctx context.Context, userID string) ([]models.InterviewRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+recordColumns+` FROM interview_records WHERE user_id = ? ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.InterviewRecord{}
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetInterviewRecord only returns records owned by userID.
func (s *Store) GetInterviewRecord(ctx context.Context, userID, recordID string) (models.InterviewRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM interview_records WHERE id = ? AND user_id = ?`,
		recordID, userID,
	)
	r, err := scanRecord(row)
	if err != nil {
		return r, mapNoRows(err)
	}
	return r, nil
}

// InterviewStats aggregates the user's completed interviews for the dashboard.
func (s *Store) InterviewStats(ctx context.Context, userID string) (models.DashboardStats, error) {
	records, err := s.ListInterviewRecords(ctx, userID)
	if err != nil {
		return models.DashboardStats{}, err
	}

	var stats models.DashboardStats
	stats.InterviewsCompleted = len(records)
	if len(records) == 0 {
		return stats, nil
	}
	var sum float64
	for _, r := range records {
		sum += r.Metrics.AvgContentScore
	}
	stats.AvgInterviewScore = float64(int(sum/float64(len(records))*10+0.5)) / 10
	last := records[0].CreatedAt
	stats.LastInterviewAt = &last
	return stats, nil
}

func scanRecord(row rowScanner) (models.InterviewRecord, error) {
	var (
		r                models.InterviewRecord
		metrics, created string
	)
	if err := row.Scan(&r.ID, &r.UserID, &r.SessionID, &r.JobRole, &metrics, &r.Analysis, &r.AudioFile, &created); err != nil {
		return r, err
	}
	if err := json.Unmarshal([]byte(metrics), &r.Metrics); err != nil {
		return r, fmt.Errorf("decoding metrics of record %s: %w", r.ID, err)
	}
	r.CreatedAt = parseTime(created)
	return r, nil
}
