package insights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/Susmita-Codes/Pravartak-AI/internal/llm"
	"github.com/Susmita-Codes/Pravartak-AI/internal/llm/llmtest"
	"github.com/Susmita-Codes/Pravartak-AI/internal/models"
	"github.com/Susmita-Codes/Pravartak-AI/internal/storage"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const validReply = "```json\n" + `{
  "salaryRanges": [{"role": "Backend Engineer", "min": 800000, "max": 2400000, "median": 1500000, "location": "Bengaluru"}],
  "growthRate": 12.5,
  "demandLevel": "high",
  "topSkills": ["Go", "Kubernetes"],
  "marketOutlook": "Positive",
  "keyTrends": ["AI tooling"],
  "recommendedSkills": ["Distributed Systems"]
}` + "\n```"

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newGenerator(gen llm.Generator) *Generator {
	g := NewGenerator(gen, 7*24*time.Hour)
	g.now = func() time.Time { return fixedNow }
	return g
}

func TestGenerate_ParsesReply(t *testing.T) {
	fake := llmtest.New(validReply)
	ins := newGenerator(fake).Generate(context.Background(), "tech-software-development")

	assert.Equal(t, "tech-software-development", ins.Industry)
	assert.Equal(t, 12.5, ins.GrowthRate)
	assert.Equal(t, "High", ins.DemandLevel)
	assert.Equal(t, "Positive", ins.MarketOutlook)
	assert.Equal(t, []string{"Go", "Kubernetes"}, ins.TopSkills)
	require.Len(t, ins.SalaryRanges, 1)
	assert.Equal(t, fixedNow, ins.LastUpdated)
	assert.Equal(t, fixedNow.Add(7*24*time.Hour), ins.NextUpdate)
	assert.Contains(t, fake.PromptText(0), "tech software development industry")
}

func TestGenerate_FallsBackToNeutral(t *testing.T) {
	tests := []struct {
		name string
		gen  llm.Generator
	}{
		{"not configured", llm.Unavailable{}},
		{"vendor error", llmtest.Failing(errors.New("429 RESOURCE_EXHAUSTED"))},
		{"garbage reply", llmtest.New("I cannot help with that")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins := newGenerator(tt.gen).Generate(context.Background(), "finance")
			assert.Equal(t, "finance", ins.Industry)
			assert.Equal(t, "Medium", ins.DemandLevel)
			assert.Equal(t, "Neutral", ins.MarketOutlook)
			assert.NotEmpty(t, ins.TopSkills)
			assert.Equal(t, fixedNow.Add(7*24*time.Hour), ins.NextUpdate)
		})
	}
}

func TestNormalize_FillsNilSlices(t *testing.T) {
	n := normalize(models.IndustryInsight{DemandLevel: "extreme"})
	assert.Equal(t, "Medium", n.DemandLevel)
	assert.NotNil(t, n.SalaryRanges)
	assert.NotNil(t, n.TopSkills)
	assert.NotNil(t, n.KeyTrends)
	assert.NotNil(t, n.RecommendedSkills)
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	s, err := storage.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func seed(t *testing.T, s *storage.Store, industry string, next time.Time) {
	t.Helper()
	ins := Neutral(industry)
	ins.LastUpdated = next.Add(-time.Hour)
	ins.NextUpdate = next
	require.NoError(t, s.UpsertInsight(context.Background(), &ins))
}

func TestRefreshStale(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	seed(t, s, "finance", fixedNow.Add(-time.Hour))
	seed(t, s, "healthcare", fixedNow)
	seed(t, s, "retail", fixedNow.Add(time.Hour))

	fake := llmtest.New(validReply)
	r := NewRefresher(s, newGenerator(fake), 2)

	n, err := r.RefreshStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, fake.Calls())

	got, err := s.GetInsight(ctx, "finance")
	require.NoError(t, err)
	assert.Equal(t, 12.5, got.GrowthRate)
	assert.True(t, got.NextUpdate.After(fixedNow))

	untouched, err := s.GetInsight(ctx, "retail")
	require.NoError(t, err)
	assert.Equal(t, float64(5), untouched.GrowthRate)

	// Nothing is stale any more.
	n, err = r.RefreshStale(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRefresh_Empty(t *testing.T) {
	r := NewRefresher(openStore(t), newGenerator(llm.Unavailable{}), 0)
	n, err := r.Refresh(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestScheduler_StartStop(t *testing.T) {
	s := openStore(t)
	seed(t, s, "finance", fixedNow.Add(-time.Hour))

	fake := llmtest.New(validReply)
	sched := NewScheduler(NewRefresher(s, newGenerator(fake), 1), 10*time.Millisecond)

	sched.Start(context.Background())
	sched.Start(context.Background())
	require.Eventually(t, func() bool { return fake.Calls() >= 1 }, time.Second, 5*time.Millisecond)
	sched.Stop()
	sched.Stop()

	got, err := s.GetInsight(context.Background(), "finance")
	require.NoError(t, err)
	assert.Equal(t, "High", got.DemandLevel)
}
