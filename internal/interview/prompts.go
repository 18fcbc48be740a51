package interview

import (
	"fmt"
	"strings"
)

func validationPrompt(jobRole string) string {
	return fmt.Sprintf(`
You are an expert career advisor. The user entered the job role: '%s'.
Determine if this is a real, plausible job role that exists in the real world.
Respond ONLY with a single word: "VALID" if it is real, "INVALID" if it is not.
`, jobRole)
}

func questionsPrompt(jobRole string) string {
	return fmt.Sprintf(`
Generate a list of %d common but insightful interview questions for a '%s' position in India.
Return only the questions as a numbered list.
Make sure each question is unique and covers different aspects like:
1. Introduction/Background
2. Technical skills
3. Behavioral situations
4. Problem-solving
5. Leadership/teamwork

Format as:
1. [Question]
2. [Question]
3. [Question]
4. [Question]
5. [Question]
`, QuestionsPerSession, jobRole)
}

const noTranscript = "No transcript available - analysis based on audio characteristics"

func evaluationPrompt(jobRole, question, transcript string) string {
	if strings.TrimSpace(transcript) == "" {
		transcript = noTranscript
	}
	return fmt.Sprintf(`
You are a senior hiring manager for a '%s' position in India. Your task is to evaluate a candidate's answer to an interview question.

The question asked was:
"%s"

The candidate's transcribed answer is:
"%s"

Please provide your evaluation in a strict JSON format with two keys:
1. "score": An integer from 1 to 5, where 1 is poor and 5 is excellent.
2. "justification": A concise, one-sentence explanation for your score, providing constructive feedback.

Consider factors like:
- Relevance to the question
- Use of specific examples
- Structure and clarity
- Completeness of the answer
- Professional language

If no transcript is available, focus on encouraging the candidate and provide a neutral score.

Example Response:
{
  "score": 4,
  "justification": "The candidate provided a solid example using the STAR method, but could have elaborated more on the final outcome."
}

JSON Response:
`, jobRole, question, transcript)
}

// Report section headings shared by the model prompt and the offline report.
const (
	headingOverall      = "## 🎯 Overall Performance"
	headingStrengths    = "## 💪 Strengths"
	headingImprovements = "## 📈 Areas for Improvement"
	headingDelivery     = "## 🎤 Speaking Delivery Tips"
	headingEncourage    = "## 💡 Final Encouragement"
)

func summaryPrompt(jobRole string, m Metrics, history []HistoryItem) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `
You are an expert career coach providing a final summary for a mock interview for a '%s' position.
The candidate has answered %d questions. Here is their performance data:

**Speech Delivery Metrics:**
- Average Speaking Pace: %.0f WPM (Target: 130-150 WPM)
- Total Pauses: %d
- Total Filler Words: %d
- Average Confidence: %.0f%%

**Content Quality:**
- Average Content Score: %.1f out of 5

**Individual Question Performance:**
`, jobRole, len(history), m.meanWPM, m.TotalPauses, m.TotalFillers, m.meanConfidence*100, m.meanScore)

	for i, item := range history {
		justification := item.Justification
		if justification == "" {
			justification = "No feedback available"
		}
		fmt.Fprintf(&sb, `
Question %d:
- Content Score: %g/5
- Speaking Pace: %g WPM
- Filler Words: %g
- Justification: %s
`, i+1, item.Score, item.WPM, item.FillerCount, justification)
	}

	fmt.Fprintf(&sb, `
Provide a comprehensive, encouraging, and actionable summary. Use Markdown formatting.
Structure your feedback into:

%s
Brief overview of their performance

%s
What they did well (2-3 points)

%s
Specific areas to work on (2-3 points with actionable advice)

%s
Specific advice on pace, pauses, and filler words

%s
Motivational closing with next steps

Keep the tone professional yet encouraging. Be specific and actionable in your recommendations.
`, headingOverall, headingStrengths, headingImprovements, headingDelivery, headingEncourage)

	return sb.String()
}
