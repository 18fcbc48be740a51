package roadmap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Susmita-Codes/Pravartak-AI/internal/llm"
	"github.com/Susmita-Codes/Pravartak-AI/internal/llm/llmtest"
)

func TestFallbackSelection(t *testing.T) {
	tests := []struct {
		career     string
		firstStage string
	}{
		{"Frontend Developer", "Programming Fundamentals"},
		{"Civil Engineer", "Programming Fundamentals"},
		{"Data Scientist", "Data Foundation"},
		{"Business Analyst", "Data Foundation"},
		{"Graphic Designer", "Design Fundamentals"},
		{"UX Researcher", "Design Fundamentals"},
		{"Chef", "Foundation Building"},
	}
	for _, tt := range tests {
		t.Run(tt.career, func(t *testing.T) {
			r := Fallback(tt.career)
			assert.Equal(t, tt.career, r.Career)
			require.Len(t, r.Roadmap, 3)
			assert.Equal(t, tt.firstStage, r.Roadmap[0].Title)
		})
	}

	generic := Fallback("Pastry Chef")
	assert.Equal(t, "Learn the fundamentals of Pastry Chef", generic.Roadmap[0].Steps[0])
	assert.Equal(t, "Develop core Pastry Chef competencies", generic.Roadmap[1].Steps[0])
}

func TestFallbackReturnsCopies(t *testing.T) {
	a := Fallback("Developer")
	a.Roadmap[0].Steps[0] = "changed"
	assert.NotEqual(t, "changed", Fallback("Developer").Roadmap[0].Steps[0])
}

func TestGenerate_NoAIUsesFallback(t *testing.T) {
	res, err := NewService(llm.Unavailable{}).Generate(context.Background(), "Data Analyst")
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Equal(t, "Data Foundation", res.Roadmap.Roadmap[0].Title)
}

func TestGenerate_BlocklistSkipsModel(t *testing.T) {
	fake := llmtest.New(`{"roadmap": []}`)
	svc := NewService(fake)

	for _, career := range []string{"Jedi", "vampire hunter", "Starfleet Captain"} {
		_, err := svc.Generate(context.Background(), career)
		assert.ErrorIs(t, err, ErrFictional, career)
	}
	assert.Zero(t, fake.Calls())

	_, err := svc.Generate(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrCareerRequired)
}

func TestGenerate_FromModel(t *testing.T) {
	fake := llmtest.New("```json\n{\"career\": \"Nurse\", \"roadmap\": [{\"title\": \"Study\", \"steps\": [\"Get a BSN\"]}]}\n```")

	res, err := NewService(fake).Generate(context.Background(), "Nurse")
	require.NoError(t, err)
	assert.False(t, res.Fallback)
	require.Len(t, res.Roadmap.Roadmap, 1)
	assert.Equal(t, "Study", res.Roadmap.Roadmap[0].Title)
	assert.Contains(t, fake.PromptText(0), "Please generate a roadmap for the career: 'Nurse'")
}

func TestGenerate_VendorErrorUsesFallback(t *testing.T) {
	res, err := NewService(llmtest.Failing(errors.New("quota exceeded"))).Generate(context.Background(), "Web Developer")
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Equal(t, "Programming Fundamentals", res.Roadmap.Roadmap[0].Title)
}

func TestGenerate_BadReplies(t *testing.T) {
	_, err := NewService(llmtest.New("Here is your roadmap!")).Generate(context.Background(), "Nurse")
	assert.ErrorIs(t, err, ErrInvalidReply)

	_, err = NewService(llmtest.New(`{"career": "Nurse"}`)).Generate(context.Background(), "Nurse")
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = NewService(llmtest.New(`{"roadmap": {"title": "x"}}`)).Generate(context.Background(), "Nurse")
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestGenerate_FillsMissingCareer(t *testing.T) {
	res, err := NewService(llmtest.New(`{"roadmap": []}`)).Generate(context.Background(), "Pilot")
	require.NoError(t, err)
	assert.Equal(t, "Pilot", res.Roadmap.Career)
}
