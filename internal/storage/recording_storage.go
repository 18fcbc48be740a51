package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// AnswerClip is one recorded answer waiting to be merged into the session audio.
// QuestionID 0 means the client did not say which question was answered.
type AnswerClip struct {
	SessionID  string
	UserID     string
	QuestionID int
	FilePath   string
}

// AddAnswerClip registers clip for its owner's session. A clip for a question the
// user already answered in that session replaces the earlier one; the replaced
// file paths are returned so the caller can remove them. Clips without a
// question id are always kept.
func (s *Store) AddAnswerClip(ctx context.Context, clip AnswerClip) ([]string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning clip insert: %w", err)
	}
	defer tx.Rollback()

	var replaced []string
	if clip.QuestionID > 0 {
		rows, err := tx.QueryContext(ctx,
			`SELECT file_path FROM answer_clips WHERE session_id = ? AND user_id = ? AND question_id = ?`,
			clip.SessionID, clip.UserID, clip.QuestionID,
		)
		if err != nil {
			return nil, err
		}
		for rows.Next() {
			var path string
			if err := rows.Scan(&path); err != nil {
				rows.Close()
				return nil, err
			}
			replaced = append(replaced, path)
		}
		if err := rows.Close(); err != nil {
			return nil, err
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM answer_clips WHERE session_id = ? AND user_id = ? AND question_id = ?`,
			clip.SessionID, clip.UserID, clip.QuestionID,
		); err != nil {
			return nil, fmt.Errorf("replacing clip: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO answer_clips(session_id, user_id, question_id, file_path, created_at) VALUES(?, ?, ?, ?, ?)",
		clip.SessionID, clip.UserID, clip.QuestionID, clip.FilePath, formatTime(s.now()),
	); err != nil {
		return nil, fmt.Errorf("inserting clip: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing clip: %w", err)
	}
	return replaced, nil
}

// ListAnswerClips returns userID's clips for the session in question order, then
// arrival order.
func (s *Store) ListAnswerClips(ctx context.Context, userID, sessionID string) ([]AnswerClip, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, user_id, question_id, file_path FROM answer_clips
		WHERE session_id = ? AND user_id = ? ORDER BY question_id, id`,
		sessionID, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clips []AnswerClip
	for rows.Next() {
		var c AnswerClip
		if err := rows.Scan(&c.SessionID, &c.UserID, &c.QuestionID, &c.FilePath); err != nil {
			return nil, err
		}
		clips = append(clips, c)
	}
	return clips, rows.Err()
}

func (s *Store) DeleteAnswerClips(ctx context.Context, userID, sessionID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM answer_clips WHERE session_id = ? AND user_id = ?", sessionID, userID)
	return err
}

func mapNoRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
