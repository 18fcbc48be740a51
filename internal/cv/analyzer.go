// Package cv analyzes resumes against a target job title.
package cv

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Susmita-Codes/Pravartak-AI/internal/guard"
	"github.com/Susmita-Codes/Pravartak-AI/internal/llm"
	"github.com/Susmita-Codes/Pravartak-AI/internal/logger"
	"github.com/Susmita-Codes/Pravartak-AI/internal/models"
)

var (
	ErrTitleRequired  = errors.New("Please enter a target job title.")
	ErrFictionalTitle = errors.New("Please enter a real-world job title. Fictional or irrelevant jobs cannot be analyzed.")
)

const systemPrompt = `
You are an expert career coach and professional resume analyzer.
You will be given the contents of a resume (either as text extracted from a document or an image) and a target job title.
Your task is to provide a detailed analysis of the resume for that specific job title.

If the target job title is clearly fictional, nonsensical, or not a real-world profession (e.g., 'Wizard of Oz', 'Superhero Sidekick'), you MUST politely refuse the analysis and state that you can only analyze resumes for real-world jobs.

Your analysis for valid jobs MUST be structured into the following three sections, using Markdown for formatting:

## 1. Current Assessment
Provide an honest evaluation of the resume's current effectiveness for the target role.
- Mention its strengths (e.g., clear layout, strong action verbs).
- Mention its weaknesses (e.g., missing quantifiable results, generic summary).
- Conclude with a score from 1 to 10, where 1 is poor and 10 is excellent.

## 2. Suggestions for Improvement
Provide a list of concrete, actionable suggestions to improve the resume.
- Be specific. For example, instead of "Improve bullet points," suggest "Rephrase bullet points to start with strong action verbs and include a quantifiable result, like 'Increased user engagement by 15%'."
- Suggest missing sections if applicable (e.g., Professional Summary, Technical Skills).

## 3. Skill Gap & Potential Analysis
Identify key skills or qualifications that are critical for the target job title but are missing from the resume.
- List the missing skills (e.g., Python, Project Management, SEO, AWS certification).
- Explain how adding these skills would improve the resume's quality.
- Provide a "Potential Score" out of 10 that the user could achieve if they incorporated both the improvements and the missing skills.

IMPORTANT: You must not do anything other than this analysis. Do not offer to rewrite the resume, do not write a cover letter, and do not engage in any conversation beyond providing these three sections of analysis.
`

type Upload struct {
	JobTitle    string
	FileName    string
	ContentType string
	Data        []byte
}

// Checked is an upload that passed validation and is ready for the model.
type Checked struct {
	Upload
	Kind Kind
	Text string // empty for images
}

type Analyzer struct {
	gen llm.Generator
}

func NewAnalyzer(gen llm.Generator) *Analyzer {
	return &Analyzer{gen: gen}
}

// Validate runs every local check: title, blocklist, type, size and text extraction.
func Validate(u Upload) (Checked, error) {
	u.JobTitle = strings.TrimSpace(u.JobTitle)
	if u.JobTitle == "" {
		return Checked{}, ErrTitleRequired
	}
	if guard.JobTitles.Contains(u.JobTitle) {
		return Checked{}, ErrFictionalTitle
	}
	kind, err := DetectKind(u.FileName, u.ContentType)
	if err != nil {
		return Checked{}, err
	}
	if len(u.Data) > MaxFileSize {
		return Checked{}, ErrTooLarge
	}

	c := Checked{Upload: u, Kind: kind}
	if !kind.Image {
		if c.Text, err = ExtractText(kind, u.Data); err != nil {
			return Checked{}, err
		}
	}
	return c, nil
}

// Analyze validates the upload and asks the model for the three-section review.
func (a *Analyzer) Analyze(ctx context.Context, u Upload) (models.CVAnalysis, error) {
	c, err := Validate(u)
	if err != nil {
		return models.CVAnalysis{}, err
	}
	if !llm.Configured(a.gen) {
		return models.CVAnalysis{}, llm.ErrNotConfigured
	}

	parts := []llm.Part{
		llm.Text(systemPrompt),
		llm.Text(fmt.Sprintf("\nHere is the analysis request:\n**Target Job Title:** %s\n\n**Resume Content:**\n", c.JobTitle)),
	}
	if c.Kind.Image {
		parts = append(parts, llm.Blob(c.Data, c.Kind.MIMEType))
	} else {
		parts = append(parts, llm.Text(c.Text))
	}

	logger.L().Info("analyzing resume",
		zap.String("file", c.FileName),
		zap.String("kind", c.Kind.Ext),
		zap.String("job_title", c.JobTitle),
	)
	analysis, err := a.gen.Generate(ctx, parts...)
	if err != nil {
		return models.CVAnalysis{}, fmt.Errorf("analyzing resume: %w", err)
	}

	return models.CVAnalysis{
		Success:  true,
		Analysis: analysis,
		FileName: c.FileName,
		FileSize: int64(len(c.Data)),
		JobTitle: c.JobTitle,
	}, nil
}

// IsValidationError reports whether err is a client-side problem with the upload.
func IsValidationError(err error) bool {
	for _, target := range []error{ErrTitleRequired, ErrFictionalTitle, ErrUnsupportedType, ErrTooLarge, ErrEmptyDocument, ErrUnreadable} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
