// Package insights builds and refreshes per-industry market snapshots.
package insights

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Susmita-Codes/Pravartak-AI/internal/llm"
	"github.com/Susmita-Codes/Pravartak-AI/internal/logger"
	"github.com/Susmita-Codes/Pravartak-AI/internal/models"
)

func insightPrompt(industry string) string {
	return fmt.Sprintf(`
Analyze the current state of the %s industry and provide insights in ONLY the following JSON format without any additional notes or explanations:
{
  "salaryRanges": [
    { "role": "string", "min": number, "max": number, "median": number, "location": "string" }
  ],
  "growthRate": number,
  "demandLevel": "High" | "Medium" | "Low",
  "topSkills": ["skill1", "skill2"],
  "marketOutlook": "Positive" | "Neutral" | "Negative",
  "keyTrends": ["trend1", "trend2"],
  "recommendedSkills": ["skill1", "skill2"]
}

IMPORTANT: Return ONLY the JSON. No additional text, notes, or markdown formatting.
Include at least 5 common roles for salary ranges.
Growth rate should be a percentage.
Include at least 5 skills and trends.
`, industry)
}

type Generator struct {
	gen     llm.Generator
	refresh time.Duration
	now     func() time.Time
}

func NewGenerator(gen llm.Generator, refresh time.Duration) *Generator {
	return &Generator{gen: gen, refresh: refresh, now: time.Now}
}

// Generate asks the model for a snapshot of industry. It never fails: an
// unavailable model or an unusable reply yields the neutral snapshot.
func (g *Generator) Generate(ctx context.Context, industry string) models.IndustryInsight {
	now := g.now().UTC()
	insight := Neutral(industry)

	if llm.Configured(g.gen) {
		reply, err := g.gen.Generate(ctx, llm.Text(insightPrompt(displayName(industry))))
		switch {
		case err != nil:
			logger.L().Warn("insight generation failed, using neutral snapshot",
				zap.String("industry", industry),
				zap.String("kind", llm.Classify(err).String()),
				zap.Error(err),
			)
		default:
			var parsed models.IndustryInsight
			if err := llm.DecodeJSON(reply, &parsed); err != nil {
				logger.L().Warn("insight reply is not JSON, using neutral snapshot", zap.String("industry", industry), zap.Error(err))
			} else {
				insight = normalize(parsed)
			}
		}
	}

	insight.Industry = industry
	insight.LastUpdated = now
	insight.NextUpdate = now.Add(g.refresh)
	return insight
}

func normalize(in models.IndustryInsight) models.IndustryInsight {
	in.DemandLevel = oneOf(in.DemandLevel, "Medium", "High", "Medium", "Low")
	in.MarketOutlook = oneOf(in.MarketOutlook, "Neutral", "Positive", "Neutral", "Negative")
	if in.SalaryRanges == nil {
		in.SalaryRanges = []models.SalaryRange{}
	}
	for _, s := range []*[]string{&in.TopSkills, &in.KeyTrends, &in.RecommendedSkills} {
		if *s == nil {
			*s = []string{}
		}
	}
	return in
}

func oneOf(v, def string, allowed ...string) string {
	for _, a := range allowed {
		if strings.EqualFold(strings.TrimSpace(v), a) {
			return a
		}
	}
	return def
}

// displayName turns an onboarding key like "tech-software-development" into words.
func displayName(industry string) string {
	return strings.ReplaceAll(industry, "-", " ")
}

// Neutral is the snapshot used when no model output is available.
func Neutral(industry string) models.IndustryInsight {
	name := displayName(industry)
	return models.IndustryInsight{
		Industry: industry,
		SalaryRanges: []models.SalaryRange{
			{Role: "Entry Level", Min: 300000, Max: 600000, Median: 450000, Location: "India"},
			{Role: "Mid Level", Min: 600000, Max: 1200000, Median: 900000, Location: "India"},
			{Role: "Senior Level", Min: 1200000, Max: 2500000, Median: 1800000, Location: "India"},
		},
		GrowthRate:        5,
		DemandLevel:       "Medium",
		TopSkills:         []string{"Communication", "Problem Solving", "Teamwork", "Adaptability", "Digital Literacy"},
		MarketOutlook:     "Neutral",
		KeyTrends:         []string{"Digital transformation in " + name, "Automation", "Remote and hybrid work", "Upskilling", "Data-driven decisions"},
		RecommendedSkills: []string{"Data Analysis", "Project Management", "Cloud Basics", "AI Literacy", "Leadership"},
	}
}
