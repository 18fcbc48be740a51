package models

import "time"

type InterviewQuestion struct {
	ID         int    `json:"id"`
	Category   string `json:"category"`
	Question   string `json:"question"`
	Difficulty string `json:"difficulty"`
	TimeLimit  int    `json:"timeLimit"` // seconds
}

// 음성 지표 (시뮬레이션 값)
type SpeechMetrics struct {
	Transcript  string  `json:"transcript"`
	WPM         int     `json:"wpm"`
	PauseCount  int     `json:"pauseCount"`
	FillerCount int     `json:"fillerCount"`
	Confidence  float64 `json:"confidence"`
	Duration    float64 `json:"duration"`
}

// LLM 답변 평가 결과
type ContentEvaluation struct {
	Score         int    `json:"score"`
	Justification string `json:"justification"`
}

// 답변 1건에 대한 전체 리포트, final-analysis의 history 항목으로 재사용
type AnswerAnalysis struct {
	SpeechMetrics
	ContentEvaluation
	QuestionID int       `json:"questionId,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

type InterviewMetrics struct {
	AvgWPM            int     `json:"avgWpm"`
	TotalPauses       int     `json:"totalPauses"`
	TotalFillers      int     `json:"totalFillers"`
	AvgContentScore   float64 `json:"avgContentScore"`
	AvgConfidence     int     `json:"avgConfidence"` // percent
	QuestionsAnswered int     `json:"questionsAnswered"`
}

type FinalReport struct {
	Analysis string           `json:"analysis"`
	Metrics  InterviewMetrics `json:"metrics"`
	Fallback bool             `json:"fallback,omitempty"`
}

// 완료된 모의 면접 기록
type InterviewRecord struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	SessionID string           `json:"sessionId"`
	JobRole   string           `json:"jobRole"`
	Metrics   InterviewMetrics `json:"metrics"`
	Analysis  string           `json:"analysis"`
	AudioFile string           `json:"audioFile,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}
