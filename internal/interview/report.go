package interview

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Susmita-Codes/Pravartak-AI/internal/models"
)

var ErrEmptyHistory = errors.New("Analysis history is required")

// HistoryItem is one analyzed answer as sent back by the client. Numbers are
// floats because browsers serialize whatever the analysis returned.
type HistoryItem struct {
	WPM           float64 `json:"wpm"`
	PauseCount    float64 `json:"pauseCount"`
	FillerCount   float64 `json:"fillerCount"`
	Score         float64 `json:"score"`
	Confidence    float64 `json:"confidence"`
	Justification string  `json:"justification"`
}

// Metrics is the rounded session summary plus the unrounded means.
type Metrics struct {
	models.InterviewMetrics
	meanWPM        float64
	meanScore      float64
	meanConfidence float64
}

// ComputeMetrics averages per-answer results over the whole session.
func ComputeMetrics(history []HistoryItem) (Metrics, error) {
	if len(history) == 0 {
		return Metrics{}, ErrEmptyHistory
	}

	var wpm, pauses, fillers, score, confidence float64
	for _, item := range history {
		wpm += item.WPM
		pauses += item.PauseCount
		fillers += item.FillerCount
		score += item.Score
		confidence += item.Confidence
	}
	n := float64(len(history))

	m := Metrics{
		meanWPM:        wpm / n,
		meanScore:      score / n,
		meanConfidence: confidence / n,
	}
	m.InterviewMetrics = models.InterviewMetrics{
		AvgWPM:            int(math.Round(m.meanWPM)),
		TotalPauses:       int(math.Round(pauses)),
		TotalFillers:      int(math.Round(fillers)),
		AvgContentScore:   math.Round(m.meanScore*10) / 10,
		AvgConfidence:     int(math.Round(m.meanConfidence * 100)),
		QuestionsAnswered: len(history),
	}
	return m, nil
}

// OfflineReport builds the markdown summary from the metrics alone.
func OfflineReport(jobRole string, m Metrics) string {
	var sb strings.Builder
	role := jobRole
	if strings.TrimSpace(role) == "" {
		role = "the target"
	}

	sb.WriteString(headingOverall + "\n\n")
	fmt.Fprintf(&sb, "You answered %d question(s) for the %s role with an average content score of %.1f out of 5. %s\n\n",
		m.QuestionsAnswered, role, m.AvgContentScore, scoreVerdict(m.AvgContentScore))

	sb.WriteString(headingStrengths + "\n\n")
	for _, s := range strengths(m) {
		sb.WriteString("- " + s + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(headingImprovements + "\n\n")
	for _, s := range improvements(m) {
		sb.WriteString("- " + s + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(headingDelivery + "\n\n")
	fmt.Fprintf(&sb, "- **Pace:** %d WPM. %s\n", m.AvgWPM, paceAdvice(m.AvgWPM))
	fmt.Fprintf(&sb, "- **Pauses:** %d in total. Short, deliberate pauses before key points help the listener follow you.\n", m.TotalPauses)
	fmt.Fprintf(&sb, "- **Filler words:** %d in total. %s\n\n", m.TotalFillers, fillerAdvice(m.TotalFillers, m.QuestionsAnswered))

	sb.WriteString(headingEncourage + "\n\n")
	sb.WriteString("Every practice session builds confidence. Review the feedback for each question, " +
		"rehearse your weakest answers out loud and run another mock interview this week.\n")
	return sb.String()
}

func scoreVerdict(score float64) string {
	switch {
	case score >= 4:
		return "That is a strong result."
	case score >= 3:
		return "That is a solid base to build on."
	default:
		return "There is clear room to grow, and practice will close the gap quickly."
	}
}

func strengths(m Metrics) []string {
	var out []string
	if m.AvgContentScore >= 3.5 {
		out = append(out, "Your answers were relevant and well structured.")
	}
	if m.AvgWPM >= 120 && m.AvgWPM <= 160 {
		out = append(out, "You spoke at a comfortable, easy-to-follow pace.")
	}
	if m.AvgConfidence >= 85 {
		out = append(out, "You came across as confident.")
	}
	if m.QuestionsAnswered > 0 && m.TotalFillers <= m.QuestionsAnswered {
		out = append(out, "You kept filler words to a minimum.")
	}
	if len(out) == 0 {
		out = append(out, "You completed the full interview, which is the most important first step.")
	}
	return out
}

func improvements(m Metrics) []string {
	var out []string
	if m.AvgContentScore < 3.5 {
		out = append(out, "Use the STAR method (Situation, Task, Action, Result) to give your answers a clear shape.")
	}
	if m.AvgContentScore < 4.5 {
		out = append(out, "Back up claims with specific examples and measurable outcomes.")
	}
	if m.AvgConfidence < 85 {
		out = append(out, "Prepare short notes for common questions so you can answer with more certainty.")
	}
	if len(out) == 0 {
		out = append(out, "Push for even more concise answers that lead with the outcome.")
	}
	return out
}

func paceAdvice(wpm int) string {
	switch {
	case wpm < 130:
		return "Slightly slow; aim for 130-150 WPM by trimming long lead-ins."
	case wpm > 150:
		return "Slightly fast; slow down and let key points land."
	default:
		return "Right in the 130-150 WPM target range."
	}
}

func fillerAdvice(total, answered int) string {
	if answered > 0 && total > 2*answered {
		return "Replace fillers like \"um\" and \"like\" with a brief silent pause."
	}
	return "Keep it up; occasional fillers are natural."
}
