package insights

import (
	"fmt"
	"strings"
	"time"

	"github.com/Susmita-Codes/Pravartak-AI/internal/models"
)

const (
	lowScore       = 3.0
	highScore      = 4.0
	staleAfter     = 14 * 24 * time.Hour
	maxSkillAdvice = 2
)

// Recommend derives next steps for the dashboard from the profile, its industry
// snapshot and interview history. insight may be nil.
func Recommend(user models.User, insight *models.IndustryInsight, stats models.DashboardStats, now time.Time) []models.Recommendation {
	recs := []models.Recommendation{}

	if !user.IsOnboarded() {
		recs = append(recs, models.Recommendation{
			Title:       "Complete your profile",
			Description: "Tell us your industry, experience and skills to unlock industry insights.",
			Priority:    "high",
			Href:        "/onboarding",
		})
	}

	switch {
	case stats.InterviewsCompleted == 0:
		recs = append(recs, models.Recommendation{
			Title:       "Take your first mock interview",
			Description: "A five-question session gives you a baseline for pace, fillers and content.",
			Priority:    "high",
			Href:        "/interview",
		})
	case stats.AvgInterviewScore < lowScore:
		recs = append(recs, models.Recommendation{
			Title:       "Practise behavioral questions",
			Description: fmt.Sprintf("Your average content score is %.1f/5. Structure answers with the STAR method.", stats.AvgInterviewScore),
			Priority:    "high",
			Href:        "/interview",
		})
	case stats.AvgInterviewScore >= highScore:
		recs = append(recs, models.Recommendation{
			Title:       "Try a more senior role",
			Description: "You are scoring well. Practise for the next step up to stretch yourself.",
			Priority:    "low",
			Href:        "/interview",
		})
	}

	if stats.LastInterviewAt != nil && now.Sub(*stats.LastInterviewAt) > staleAfter {
		recs = append(recs, models.Recommendation{
			Title:       "Keep your momentum",
			Description: "It has been over two weeks since your last mock interview.",
			Priority:    "medium",
			Href:        "/interview",
		})
	}

	if insight != nil {
		for _, skill := range missingSkills(user.Skills, insight.RecommendedSkills, maxSkillAdvice) {
			recs = append(recs, models.Recommendation{
				Title:       "Learn " + skill,
				Description: fmt.Sprintf("%s is in demand in your industry and missing from your profile.", skill),
				Priority:    "medium",
				Href:        "/roadmap",
			})
		}
	}

	recs = append(recs, models.Recommendation{
		Title:       "Review your CV",
		Description: "Check how your resume reads for the role you are targeting.",
		Priority:    "low",
		Href:        "/cv-analyser",
	})
	return recs
}

func missingSkills(have, want []string, limit int) []string {
	owned := make(map[string]bool, len(have))
	for _, s := range have {
		owned[strings.ToLower(strings.TrimSpace(s))] = true
	}
	var out []string
	for _, s := range want {
		if len(out) == limit {
			break
		}
		if !owned[strings.ToLower(strings.TrimSpace(s))] {
			out = append(out, s)
		}
	}
	return out
}
