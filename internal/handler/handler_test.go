package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Susmita-Codes/Pravartak-AI/internal/archiver"
	"github.com/Susmita-Codes/Pravartak-AI/internal/auth"
	"github.com/Susmita-Codes/Pravartak-AI/internal/config"
	"github.com/Susmita-Codes/Pravartak-AI/internal/counsel"
	"github.com/Susmita-Codes/Pravartak-AI/internal/cv"
	"github.com/Susmita-Codes/Pravartak-AI/internal/insights"
	"github.com/Susmita-Codes/Pravartak-AI/internal/interview"
	"github.com/Susmita-Codes/Pravartak-AI/internal/llm"
	"github.com/Susmita-Codes/Pravartak-AI/internal/llm/llmtest"
	"github.com/Susmita-Codes/Pravartak-AI/internal/models"
	"github.com/Susmita-Codes/Pravartak-AI/internal/roadmap"
	"github.com/Susmita-Codes/Pravartak-AI/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
	store  *storage.Store
	token  string
	userID string
}

type fakeTTS struct{}

func (fakeTTS) Synthesize(context.Context, string) ([]byte, error) { return []byte("ID3mp3"), nil }

func newServer(t *testing.T, gen llm.Generator, opts ...func(*Deps)) *testServer {
	t.Helper()
	store, err := storage.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := config.Defaults()
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.AdminKey = "admin-key"
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000}

	ig := insights.NewGenerator(gen, cfg.Insights.RefreshInterval)
	deps := Deps{
		Store:     store,
		Tokens:    auth.NewTokenManager(cfg.Auth.JWTSecret, time.Hour),
		Coach:     interview.NewCoach(gen),
		CVs:       cv.NewAnalyzer(gen),
		Roadmaps:  roadmap.NewService(gen),
		Counselor: counsel.NewCounselor(gen),
		Insights:  ig,
		Refresher: insights.NewRefresher(store, ig, 2),
		Archive:   archiver.New(store, t.TempDir(), "ffmpeg"),
	}
	for _, opt := range opts {
		opt(&deps)
	}

	s := &testServer{t: t, router: NewRouter(New(deps), &cfg), store: store}
	s.login()
	return s
}

func (s *testServer) login() {
	s.t.Helper()
	rr := s.do(http.MethodPost, "/signup", "", jsonBody(s.t, SignupRequest{Email: "Asha@Example.com", Password: "pw123456", Name: "Asha"}), "")
	require.Equal(s.t, http.StatusOK, rr.Code, rr.Body.String())

	rr = s.do(http.MethodPost, "/login", "", jsonBody(s.t, LoginRequest{Email: "asha@example.com", Password: "pw123456"}), "")
	require.Equal(s.t, http.StatusOK, rr.Code, rr.Body.String())
	var resp LoginResponse
	require.NoError(s.t, json.Unmarshal(rr.Body.Bytes(), &resp))
	s.token, s.userID = resp.Token, resp.User.ID
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func (s *testServer) do(method, path, token string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	if contentType == "" {
		contentType = "application/json"
	}
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func (s *testServer) api(method, path string, body any) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != nil {
		buf = jsonBody(s.t, body)
	}
	return s.do(method, path, s.token, buf, "")
}

func (s *testServer) multipart(path string, fields map[string]string, fileField, fileName, fileType string, data []byte) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(s.t, w.WriteField(k, v))
	}
	if fileField != "" {
		h := make(map[string][]string)
		h["Content-Disposition"] = []string{`form-data; name="` + fileField + `"; filename="` + fileName + `"`}
		h["Content-Type"] = []string{fileType}
		part, err := w.CreatePart(h)
		require.NoError(s.t, err)
		_, err = part.Write(data)
		require.NoError(s.t, err)
	}
	require.NoError(s.t, w.Close())
	return s.do(http.MethodPost, path, s.token, &buf, w.FormDataContentType())
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func TestAuthFlow(t *testing.T) {
	s := newServer(t, llm.Unavailable{})

	rr := s.do(http.MethodPost, "/signup", "", jsonBody(t, SignupRequest{Email: "asha@example.com", Password: "x", Name: "Dup"}), "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "already registered")

	rr = s.do(http.MethodPost, "/signup", "", jsonBody(t, SignupRequest{Email: " ", Password: "x", Name: "n"}), "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.do(http.MethodPost, "/login", "", jsonBody(t, LoginRequest{Email: "asha@example.com", Password: "wrong"}), "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = s.do(http.MethodGet, "/api/profile", "", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = s.api(http.MethodGet, "/api/profile", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	user := decode[models.User](t, rr)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.NotContains(t, rr.Body.String(), "pw123456")
}

func TestHealth(t *testing.T) {
	s := newServer(t, llm.Unavailable{})
	rr := s.do(http.MethodGet, "/healthz", "", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestOnboarding(t *testing.T) {
	s := newServer(t, llm.Unavailable{})

	rr := s.api(http.MethodGet, "/api/onboarding-status", nil)
	assert.JSONEq(t, `{"isOnboarded":false}`, rr.Body.String())

	rr = s.api(http.MethodGet, "/api/insights", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = s.api(http.MethodPut, "/api/profile", models.UserProfile{Experience: 2})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.api(http.MethodPut, "/api/profile", models.UserProfile{Industry: "finance", Experience: 2, Skills: []string{"Excel"}})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "finance", decode[models.User](t, rr).Industry)

	stored, err := s.store.GetInsight(context.Background(), "finance")
	require.NoError(t, err)
	assert.Equal(t, "Neutral", stored.MarketOutlook)

	rr = s.api(http.MethodGet, "/api/onboarding-status", nil)
	assert.JSONEq(t, `{"isOnboarded":true}`, rr.Body.String())

	rr = s.api(http.MethodGet, "/api/insights", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "finance", decode[models.IndustryInsight](t, rr).Industry)

	rr = s.api(http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	dash := decode[models.Dashboard](t, rr)
	require.NotNil(t, dash.Insight)
	assert.Zero(t, dash.Stats.InterviewsCompleted)
	assert.Equal(t, "Take your first mock interview", dash.Recommendations[0].Title)
}

func TestGenerateQuestions_Fallback(t *testing.T) {
	s := newServer(t, llm.Unavailable{})

	rr := s.api(http.MethodPost, "/api/mock-interview/generate-questions", GenerateQuestionsRequest{JobRole: "Software Engineer"})
	require.Equal(t, http.StatusOK, rr.Code)
	resp := decode[GenerateQuestionsResponse](t, rr)

	require.Len(t, resp.Questions, 5)
	var cats []string
	for _, q := range resp.Questions {
		cats = append(cats, q.Category)
	}
	assert.Equal(t, []string{"Introduction", "Technical", "Behavioral", "Problem Solving", "Leadership"}, cats)
	assert.True(t, resp.IsValid)
	assert.True(t, resp.Fallback)
	assert.NotEmpty(t, resp.SessionID)
}

func TestGenerateQuestions_Errors(t *testing.T) {
	tests := []struct {
		name    string
		gen     *llmtest.Fake
		role    string
		want    int
		calls   int
		contain string
	}{
		{"missing role", llmtest.New("VALID"), "  ", http.StatusBadRequest, 0, "Job role is required"},
		{"fictional role", llmtest.New("VALID"), "Jedi Knight", http.StatusBadRequest, 0, "real-world jobs"},
		{"invalid role", llmtest.New("INVALID"), "Chair Sitter", http.StatusBadRequest, 1, `"isValid":false`},
		{"quota", llmtest.Failing(errors.New("googleapi: Error 429: RESOURCE_EXHAUSTED")), "Nurse", http.StatusTooManyRequests, 1, "quota"},
		{"network", llmtest.Failing(errors.New("dial tcp: connection refused")), "Nurse", http.StatusServiceUnavailable, 1, "unreachable"},
		{"other", llmtest.Failing(errors.New("boom")), "Nurse", http.StatusInternalServerError, 1, "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServer(t, tt.gen)
			rr := s.api(http.MethodPost, "/api/mock-interview/generate-questions", GenerateQuestionsRequest{JobRole: tt.role})
			assert.Equal(t, tt.want, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.contain)
			assert.Equal(t, tt.calls, tt.gen.Calls())
		})
	}
}

func TestGenerateQuestions_FromModel(t *testing.T) {
	fake := llmtest.New("VALID", "1. Tell me about yourself.\n2. Explain goroutines.")
	s := newServer(t, fake)

	rr := s.api(http.MethodPost, "/api/mock-interview/generate-questions", GenerateQuestionsRequest{JobRole: "Go Developer"})
	require.Equal(t, http.StatusOK, rr.Code)
	resp := decode[GenerateQuestionsResponse](t, rr)
	require.Len(t, resp.Questions, 2)
	assert.Equal(t, "Explain goroutines.", resp.Questions[1].Question)
	assert.False(t, resp.Fallback)
}

func TestQuestionAudio(t *testing.T) {
	s := newServer(t, llm.Unavailable{})
	rr := s.api(http.MethodPost, "/api/mock-interview/question-audio", QuestionAudioRequest{Question: "Hi"})
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	s = newServer(t, llm.Unavailable{}, func(d *Deps) { d.TTS = fakeTTS{} })
	rr = s.api(http.MethodPost, "/api/mock-interview/question-audio", QuestionAudioRequest{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.api(http.MethodPost, "/api/mock-interview/question-audio", QuestionAudioRequest{Question: "Tell me about yourself."})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "audio/mpeg", rr.Header().Get("Content-Type"))
	assert.Equal(t, "ID3mp3", rr.Body.String())
}

func TestAnalyzeAnswer(t *testing.T) {
	s := newServer(t, llmtest.New(`{"score": 4, "justification": "Clear and structured."}`))

	rr := s.multipart("/api/mock-interview/analyze-answer", map[string]string{"question": "Q"}, "", "", "", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	fields := map[string]string{
		"question":   "Tell me about yourself.",
		"jobRole":    "Software Engineer",
		"transcript": "um I build backend services in Go and like I enjoy it",
		"sessionId":  "sess-1",
		"questionId": "1",
	}
	rr = s.multipart("/api/mock-interview/analyze-answer", fields, "audio", "answer.webm", "audio/webm", bytes.Repeat([]byte{1}, 150000))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	got := decode[models.AnswerAnalysis](t, rr)
	assert.Equal(t, 4, got.Score)
	assert.Equal(t, "Clear and structured.", got.Justification)
	assert.Equal(t, 2, got.FillerCount)
	assert.Equal(t, 15.0, got.Duration)
	assert.Equal(t, 1, got.QuestionID)
	assert.False(t, got.Timestamp.IsZero())

	clips, err := s.store.ListAnswerClips(context.Background(), s.userID, "sess-1")
	require.NoError(t, err)
	require.Len(t, clips, 1)
	assert.Equal(t, 1, clips[0].QuestionID)
}

func TestFinalAnalysisAndHistory(t *testing.T) {
	s := newServer(t, llmtest.Failing(errors.New("connection refused")))

	rr := s.api(http.MethodPost, "/api/mock-interview/final-analysis", FinalAnalysisRequest{JobRole: "Nurse"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Analysis history is required")

	history := []interview.HistoryItem{
		{WPM: 120, PauseCount: 2, FillerCount: 1, Score: 4, Confidence: 0.9},
		{WPM: 141, PauseCount: 3, FillerCount: 0, Score: 3, Confidence: 0.8},
	}
	rr = s.api(http.MethodPost, "/api/mock-interview/final-analysis", FinalAnalysisRequest{JobRole: "Nurse", History: history})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	resp := decode[FinalAnalysisResponse](t, rr)

	assert.Equal(t, models.InterviewMetrics{
		AvgWPM:            131,
		TotalPauses:       5,
		TotalFillers:      1,
		AvgContentScore:   3.5,
		AvgConfidence:     85,
		QuestionsAnswered: 2,
	}, resp.Metrics)
	assert.True(t, resp.Fallback)
	assert.NotEmpty(t, resp.Analysis)
	assert.NotEmpty(t, resp.RecordID)

	rr = s.api(http.MethodGet, "/api/history", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	hist := decode[HistoryResponse](t, rr)
	require.Len(t, hist.History, 1)
	assert.Equal(t, resp.RecordID, hist.History[0].ID)
	assert.Equal(t, "Nurse", hist.History[0].JobRole)

	rr = s.api(http.MethodGet, "/api/history/"+resp.RecordID, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, resp.Metrics, decode[models.InterviewRecord](t, rr).Metrics)

	rr = s.api(http.MethodGet, "/api/history/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = s.api(http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, decode[models.Dashboard](t, rr).Stats.InterviewsCompleted)
}

func TestGetInsights_UnknownUser(t *testing.T) {
	s := newServer(t, llm.Unavailable{})
	ghost, err := auth.NewTokenManager("test-secret", time.Hour).Generate("ghost-user", "ghost@example.com")
	require.NoError(t, err)

	for _, path := range []string{"/api/insights", "/api/dashboard"} {
		rr := s.do(http.MethodGet, path, ghost, nil, "")
		assert.Equal(t, http.StatusNotFound, rr.Code, path)
		assert.Contains(t, rr.Body.String(), "User not found", path)
	}
}

func TestStreamAudio_NotFound(t *testing.T) {
	s := newServer(t, llm.Unavailable{})
	for _, name := range []string{"missing.mp3", "..%2Fsecret.mp3", "x.wav"} {
		rr := s.api(http.MethodGet, "/api/history/audio/"+name, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code, name)
	}
}

func TestAnalyzeCV(t *testing.T) {
	s := newServer(t, llm.Unavailable{})
	resume := []byte("Jane Doe\nGo developer with 5 years of experience.")

	rr := s.multipart("/api/cv-analyser", map[string]string{"jobTitle": ""}, "file", "cv.txt", "text/plain", resume)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.multipart("/api/cv-analyser", map[string]string{"jobTitle": "Backend Engineer"}, "", "", "", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.multipart("/api/cv-analyser", map[string]string{"jobTitle": "Backend Engineer"}, "file", "cv.exe", "application/octet-stream", resume)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), `"success":false`)

	rr = s.multipart("/api/cv-analyser", map[string]string{"jobTitle": "Stormtrooper"}, "file", "cv.txt", "text/plain", resume)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.multipart("/api/cv-analyser", map[string]string{"jobTitle": "Backend Engineer"}, "file", "cv.txt", "text/plain", resume)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "not configured")
}

func TestAnalyzeCV_Success(t *testing.T) {
	fake := llmtest.New("## 1. Current Assessment\nSolid.")
	s := newServer(t, fake)

	rr := s.multipart("/api/cv-analyser", map[string]string{"jobTitle": "Backend Engineer"}, "file", "cv.txt", "text/plain", []byte("Go, SQL, Kubernetes"))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	got := decode[models.CVAnalysis](t, rr)
	assert.True(t, got.Success)
	assert.Equal(t, "cv.txt", got.FileName)
	assert.Equal(t, int64(19), got.FileSize)
	assert.Contains(t, fake.PromptText(0), "Go, SQL, Kubernetes")
}

func TestGenerateRoadmap(t *testing.T) {
	s := newServer(t, llm.Unavailable{})

	rr := s.do(http.MethodPost, "/api/roadmap", s.token, bytes.NewBufferString("{not json"), "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.do(http.MethodPost, "/api/roadmap", s.token, bytes.NewBufferString(`{"career": 42}`), "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.api(http.MethodPost, "/api/roadmap", RoadmapRequest{Career: "Dragon Rider"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.api(http.MethodPost, "/api/roadmap", RoadmapRequest{Career: "Data Analyst"})
	require.Equal(t, http.StatusOK, rr.Code)
	resp := decode[RoadmapResponse](t, rr)
	assert.True(t, resp.Success)
	assert.True(t, resp.Fallback)
	assert.NotEmpty(t, resp.Data.Roadmap)
}

func TestGenerateRoadmap_BadModelReply(t *testing.T) {
	s := newServer(t, llmtest.New(`{"career": "x", "roadmap": "oops"}`))
	rr := s.api(http.MethodPost, "/api/roadmap", RoadmapRequest{Career: "Nurse"})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestChat(t *testing.T) {
	fake := llmtest.New("Start with SQL and statistics.")
	s := newServer(t, fake)

	rr := s.api(http.MethodPost, "/api/chat", ChatRequest{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.api(http.MethodPost, "/api/chat", ChatRequest{Message: "Can you review my resume?"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, counsel.CVRefusal, decode[ChatResponse](t, rr).Response)
	assert.Zero(t, fake.Calls())

	rr = s.api(http.MethodPost, "/api/chat", ChatRequest{Message: "How do I become a data analyst?"})
	require.Equal(t, http.StatusOK, rr.Code)
	got := decode[ChatResponse](t, rr)
	assert.True(t, got.Success)
	assert.Equal(t, "Start with SQL and statistics.", got.Response)
}

func TestChat_NoAI(t *testing.T) {
	s := newServer(t, llm.Unavailable{})
	rr := s.api(http.MethodPost, "/api/chat", ChatRequest{Message: "How do I become a nurse?"})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.False(t, decode[ChatResponse](t, rr).Success)
}

func TestRefreshInsights(t *testing.T) {
	s := newServer(t, llm.Unavailable{})

	rr := s.do(http.MethodPost, "/admin/insights/refresh", "", nil, "")
	assert.Equal(t, http.StatusForbidden, rr.Code)

	req := httptest.NewRequest(http.MethodPost, "/admin/insights/refresh", jsonBody(t, RefreshRequest{Industries: []string{"healthcare", " "}}))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Admin-Key", "admin-key")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"refreshed":1}`, rec.Body.String())

	_, err := s.store.GetInsight(context.Background(), "healthcare")
	assert.NoError(t, err)
}

func TestTranscribe_RequiresSpeech(t *testing.T) {
	s := newServer(t, llm.Unavailable{})
	rr := s.do(http.MethodGet, "/ws/interview/transcribe?token="+s.token, "", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	rr = s.do(http.MethodGet, "/ws/interview/transcribe", "", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
