package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Susmita-Codes/Pravartak-AI/internal/models"
)

func titles(recs []models.Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Title
	}
	return out
}

func TestRecommend_NewUser(t *testing.T) {
	recs := Recommend(models.User{}, nil, models.DashboardStats{}, fixedNow)
	assert.Equal(t, []string{"Complete your profile", "Take your first mock interview", "Review your CV"}, titles(recs))
}

func TestRecommend_LowScoreAndMissingSkills(t *testing.T) {
	last := fixedNow.Add(-30 * 24 * time.Hour)
	user := models.User{Industry: "finance", Skills: []string{"excel"}}
	insight := &models.IndustryInsight{RecommendedSkills: []string{"Excel", "SQL", "Python", "Tableau"}}
	stats := models.DashboardStats{InterviewsCompleted: 2, AvgInterviewScore: 2.5, LastInterviewAt: &last}

	recs := Recommend(user, insight, stats, fixedNow)
	assert.Equal(t, []string{
		"Practise behavioral questions",
		"Keep your momentum",
		"Learn SQL",
		"Learn Python",
		"Review your CV",
	}, titles(recs))
	assert.Equal(t, "high", recs[0].Priority)
	assert.Contains(t, recs[0].Description, "2.5/5")
}

func TestRecommend_HighScore(t *testing.T) {
	last := fixedNow.Add(-time.Hour)
	stats := models.DashboardStats{InterviewsCompleted: 3, AvgInterviewScore: 4.3, LastInterviewAt: &last}
	recs := Recommend(models.User{Industry: "finance"}, nil, stats, fixedNow)
	assert.Equal(t, []string{"Try a more senior role", "Review your CV"}, titles(recs))
}
