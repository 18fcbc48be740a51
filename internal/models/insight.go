package models

import "time"

type SalaryRange struct {
	Role     string  `json:"role"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Median   float64 `json:"median"`
	Location string  `json:"location"`
}

// 산업별 AI 인사이트 스냅샷, NextUpdate 이후 재생성
type IndustryInsight struct {
	ID                string        `json:"id"`
	Industry          string        `json:"industry"`
	SalaryRanges      []SalaryRange `json:"salaryRanges"`
	GrowthRate        float64       `json:"growthRate"`
	DemandLevel       string        `json:"demandLevel"`   // High | Medium | Low
	TopSkills         []string      `json:"topSkills"`
	MarketOutlook     string        `json:"marketOutlook"` // Positive | Neutral | Negative
	KeyTrends         []string      `json:"keyTrends"`
	RecommendedSkills []string      `json:"recommendedSkills"`
	LastUpdated       time.Time     `json:"lastUpdated"`
	NextUpdate        time.Time     `json:"nextUpdate"`
}

func (i IndustryInsight) Stale(now time.Time) bool {
	return !now.Before(i.NextUpdate)
}
