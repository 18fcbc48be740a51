package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Susmita-Codes/Pravartak-AI/internal/models"
)

const insightColumns = `id, industry, salary_ranges, growth_rate, demand_level, top_skills, market_outlook, key_trends, recommended_skills, last_updated, next_update`

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) GetInsight(ctx context.Context, industry string) (models.IndustryInsight, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+insightColumns+` FROM industry_insights WHERE industry = ?`, industry)
	return scanInsight(row)
}

// UpsertInsight creates or replaces the snapshot for insight.Industry.
func (s *Store) UpsertInsight(ctx context.Context, insight *models.IndustryInsight) error {
	args, err := insightArgs(insight)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO industry_insights(`+insightColumns+`) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(industry) DO UPDATE SET
			salary_ranges = excluded.salary_ranges,
			growth_rate = excluded.growth_rate,
			demand_level = excluded.demand_level,
			top_skills = excluded.top_skills,
			market_outlook = excluded.market_outlook,
			key_trends = excluded.key_trends,
			recommended_skills = excluded.recommended_skills,
			last_updated = excluded.last_updated,
			next_update = excluded.next_update`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("upserting insight %q: %w", insight.Industry, err)
	}
	return nil
}

// ListStaleInsights returns insights whose next_update is at or before now.
func (s *Store) ListStaleInsights(ctx context.Context, now time.Time) ([]models.IndustryInsight, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+insightColumns+` FROM industry_insights WHERE next_update <= ? ORDER BY next_update`,
		formatTime(now),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.IndustryInsight
	for rows.Next() {
		ins, err := scanInsight(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ins)
	}
	return out, rows.Err()
}

func insertInsightIfAbsent(ctx context.Context, ex execer, insight *models.IndustryInsight) error {
	args, err := insightArgs(insight)
	if err != nil {
		return err
	}
	_, err = ex.ExecContext(ctx,
		`INSERT INTO industry_insights(`+insightColumns+`) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(industry) DO NOTHING`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("inserting insight %q: %w", insight.Industry, err)
	}
	return nil
}

func insightArgs(insight *models.IndustryInsight) ([]any, error) {
	if insight.ID == "" {
		insight.ID = uuid.New().String()
	}
	encoded := make([]string, 0, 4)
	for _, v := range []any{insight.SalaryRanges, insight.TopSkills, insight.KeyTrends, insight.RecommendedSkills} {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		if string(b) == "null" {
			b = []byte("[]")
		}
		encoded = append(encoded, string(b))
	}
	return []any{
		insight.ID, insight.Industry, encoded[0], insight.GrowthRate, insight.DemandLevel,
		encoded[1], insight.MarketOutlook, encoded[2], encoded[3],
		formatTime(insight.LastUpdated), formatTime(insight.NextUpdate),
	}, nil
}

func scanInsight(row rowScanner) (models.IndustryInsight, error) {
	var (
		ins                                models.IndustryInsight
		salaries, top, trends, recommended string
		lastUpdated, nextUpdate            string
	)
	if err := row.Scan(
		&ins.ID, &ins.Industry, &salaries, &ins.GrowthRate, &ins.DemandLevel,
		&top, &ins.MarketOutlook, &trends, &recommended,
		&lastUpdated, &nextUpdate,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ins, ErrNotFound
		}
		return ins, err
	}
	for _, col := range []struct {
		name string
		raw  string
		dst  any
	}{
		{"salary_ranges", salaries, &ins.SalaryRanges},
		{"top_skills", top, &ins.TopSkills},
		{"key_trends", trends, &ins.KeyTrends},
		{"recommended_skills", recommended, &ins.RecommendedSkills},
	} {
		if err := json.Unmarshal([]byte(col.raw), col.dst); err != nil {
			return ins, fmt.Errorf("decoding %s of insight %s: %w", col.name, ins.ID, err)
		}
	}
	ins.LastUpdated = parseTime(lastUpdated)
	ins.NextUpdate = parseTime(nextUpdate)
	return ins, nil
}
