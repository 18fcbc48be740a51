package models

import "time"

type DashboardStats struct {
	InterviewsCompleted int        `json:"interviewsCompleted"`
	AvgInterviewScore   float64    `json:"avgInterviewScore"`
	LastInterviewAt     *time.Time `json:"lastInterviewAt,omitempty"`
}

type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"` // high | medium | low
	Href        string `json:"href"`
}

type Dashboard struct {
	User            User             `json:"user"`
	Insight         *IndustryInsight `json:"insight,omitempty"`
	Stats           DashboardStats   `json:"stats"`
	Recommendations []Recommendation `json:"recommendations"`
}
