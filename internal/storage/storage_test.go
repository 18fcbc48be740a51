package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Susmita-Codes/Pravartak-AI/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func createUser(t *testing.T, s *Store, email string) models.User {
	t.Helper()
	u := models.User{Email: email, Name: "Test", PasswordHash: "hash"}
	require.NoError(t, s.CreateUser(context.Background(), &u))
	return u
}

func TestOpen_MigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db", "test.db")

	s, err := Open(path)
	require.NoError(t, err)
	first, err := s.AppliedMigrations()
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	second, err := s.AppliedMigrations()
	require.NoError(t, err)

	assert.Len(t, first, len(migrations))
	assert.Equal(t, first, second)
}

func TestUsers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := createUser(t, s, "a@example.com")
	assert.NotEmpty(t, u.ID)

	dup := models.User{Email: "a@example.com", PasswordHash: "x"}
	assert.ErrorIs(t, s.CreateUser(ctx, &dup), ErrEmailExists)

	got, err := s.GetUserByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "hash", got.PasswordHash)
	assert.Equal(t, []string{}, got.Skills)
	assert.False(t, got.IsOnboarded())

	_, err = s.GetUserByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveOnboarding_StoresProfileAndInsight(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := createUser(t, s, "b@example.com")

	now := time.Now()
	insight := &models.IndustryInsight{
		Industry:    "tech-software-development",
		GrowthRate:  12.5,
		DemandLevel: "High",
		TopSkills:   []string{"Go", "Kubernetes"},
		LastUpdated: now,
		NextUpdate:  now.Add(7 * 24 * time.Hour),
	}
	profile := models.UserProfile{Industry: insight.Industry, Experience: 4, Bio: "backend", Skills: []string{"Go"}}

	updated, err := s.SaveOnboarding(ctx, u.ID, profile, insight)
	require.NoError(t, err)
	assert.True(t, updated.IsOnboarded())
	assert.Equal(t, 4, updated.Experience)
	assert.Equal(t, []string{"Go"}, updated.Skills)

	stored, err := s.GetInsight(ctx, insight.Industry)
	require.NoError(t, err)
	assert.Equal(t, "High", stored.DemandLevel)
	assert.Equal(t, []string{"Go", "Kubernetes"}, stored.TopSkills)
	assert.WithinDuration(t, insight.NextUpdate, stored.NextUpdate, time.Millisecond)

	// A second onboarding into the same industry keeps the existing snapshot.
	other := &models.IndustryInsight{Industry: insight.Industry, DemandLevel: "Low", LastUpdated: now, NextUpdate: now}
	_, err = s.SaveOnboarding(ctx, u.ID, profile, other)
	require.NoError(t, err)
	stored, err = s.GetInsight(ctx, insight.Industry)
	require.NoError(t, err)
	assert.Equal(t, "High", stored.DemandLevel)
}

func TestSaveOnboarding_UnknownUserRollsBack(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insight := &models.IndustryInsight{Industry: "finance", LastUpdated: time.Now(), NextUpdate: time.Now()}
	_, err := s.SaveOnboarding(ctx, "nobody", models.UserProfile{Industry: "finance"}, insight)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetInsight(ctx, "finance")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetInsight_CorruptColumn(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	ins := &models.IndustryInsight{Industry: "retail", TopSkills: []string{"Sales"}, LastUpdated: now, NextUpdate: now}
	require.NoError(t, s.UpsertInsight(ctx, ins))
	_, err := s.db.ExecContext(ctx, `UPDATE industry_insights SET key_trends = '{broken' WHERE industry = ?`, "retail")
	require.NoError(t, err)

	_, err = s.GetInsight(ctx, "retail")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "key_trends")
	assert.Contains(t, err.Error(), ins.ID)
}

func TestInsights_UpsertAndStale(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	fresh := &models.IndustryInsight{Industry: "healthcare", LastUpdated: now, NextUpdate: now.Add(time.Hour)}
	stale := &models.IndustryInsight{Industry: "retail", LastUpdated: now.Add(-8 * 24 * time.Hour), NextUpdate: now.Add(-time.Hour)}
	require.NoError(t, s.UpsertInsight(ctx, fresh))
	require.NoError(t, s.UpsertInsight(ctx, stale))

	list, err := s.ListStaleInsights(ctx, now)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "retail", list[0].Industry)

	stale.NextUpdate = now.Add(7 * 24 * time.Hour)
	stale.MarketOutlook = "Positive"
	require.NoError(t, s.UpsertInsight(ctx, stale))

	list, err = s.ListStaleInsights(ctx, now)
	require.NoError(t, err)
	assert.Empty(t, list)

	got, err := s.GetInsight(ctx, "retail")
	require.NoError(t, err)
	assert.Equal(t, "Positive", got.MarketOutlook)
}

func TestInterviewRecordsAndStats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := createUser(t, s, "c@example.com")
	other := createUser(t, s, "d@example.com")

	stats, err := s.InterviewStats(ctx, u.ID)
	require.NoError(t, err)
	assert.Zero(t, stats.InterviewsCompleted)
	assert.Nil(t, stats.LastInterviewAt)

	base := time.Now().Add(-time.Hour)
	for i, score := range []float64{3.0, 4.5} {
		r := &models.InterviewRecord{
			UserID:    u.ID,
			SessionID: "s",
			JobRole:   "Backend Engineer",
			Metrics:   models.InterviewMetrics{AvgContentScore: score, QuestionsAnswered: 3},
			Analysis:  "ok",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, s.CreateInterviewRecord(ctx, r))
	}

	records, err := s.ListInterviewRecords(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 4.5, records[0].Metrics.AvgContentScore)

	require.NoError(t, s.SetRecordAudio(ctx, records[0].ID, "data/s/interview.mp3"))
	got, err := s.GetInterviewRecord(ctx, u.ID, records[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "data/s/interview.mp3", got.AudioFile)

	_, err = s.GetInterviewRecord(ctx, other.ID, records[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)

	stats, err = s.InterviewStats(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.InterviewsCompleted)
	assert.Equal(t, 3.8, stats.AvgInterviewScore)
	require.NotNil(t, stats.LastInterviewAt)
}

func TestAnswerClips(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, q := range []int{2, 1} {
		_, err := s.AddAnswerClip(ctx, AnswerClip{SessionID: "sess", UserID: "u1", QuestionID: q, FilePath: fmt.Sprintf("q%d.webm", q)})
		require.NoError(t, err)
	}
	_, err := s.AddAnswerClip(ctx, AnswerClip{SessionID: "sess", UserID: "u2", QuestionID: 1, FilePath: "other.webm"})
	require.NoError(t, err)

	clips, err := s.ListAnswerClips(ctx, "u1", "sess")
	require.NoError(t, err)
	require.Len(t, clips, 2)
	assert.Equal(t, 1, clips[0].QuestionID)
	assert.Equal(t, "q1.webm", clips[0].FilePath)

	require.NoError(t, s.DeleteAnswerClips(ctx, "u1", "sess"))
	clips, err = s.ListAnswerClips(ctx, "u1", "sess")
	require.NoError(t, err)
	assert.Empty(t, clips)

	others, err := s.ListAnswerClips(ctx, "u2", "sess")
	require.NoError(t, err)
	assert.Len(t, others, 1, "another user's clips on the same session survive")
}

func TestAddAnswerClip_ReplacesSameQuestion(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	replaced, err := s.AddAnswerClip(ctx, AnswerClip{SessionID: "sess", UserID: "u1", QuestionID: 1, FilePath: "first.webm"})
	require.NoError(t, err)
	assert.Empty(t, replaced)

	replaced, err = s.AddAnswerClip(ctx, AnswerClip{SessionID: "sess", UserID: "u1", QuestionID: 1, FilePath: "retake.webm"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first.webm"}, replaced)

	for _, p := range []string{"a.webm", "b.webm"} {
		replaced, err = s.AddAnswerClip(ctx, AnswerClip{SessionID: "sess", UserID: "u1", FilePath: p})
		require.NoError(t, err)
		assert.Empty(t, replaced, "clips without a question id are never replaced")
	}

	clips, err := s.ListAnswerClips(ctx, "u1", "sess")
	require.NoError(t, err)
	var paths []string
	for _, c := range clips {
		paths = append(paths, c.FilePath)
	}
	assert.Equal(t, []string{"a.webm", "b.webm", "retake.webm"}, paths)
}
