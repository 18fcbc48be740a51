package interview

import (
	"fmt"
	"math"
	"math/rand/v2"
	"regexp"
	"strings"

	"github.com/Susmita-Codes/Pravartak-AI/internal/models"
)

// Random is the source of jitter for simulated metrics.
type Random interface {
	IntN(n int) int
	Float64() float64
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int   { return rand.IntN(n) }
func (globalRandom) Float64() float64 { return rand.Float64() }

// fillerWords count only as whole words, so "so" inside "solution" or "um"
// inside "summary" is not a filler.
var fillerWords = []string{"um", "uh", "like", "so", "you know", "actually", "basically"}

var fillerPatterns = func() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(fillerWords))
	for i, w := range fillerWords {
		out[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`)
	}
	return out
}()

// CountFillers counts filler words in transcript as whole words.
func CountFillers(transcript string) int {
	lower := strings.ToLower(transcript)
	n := 0
	for _, re := range fillerPatterns {
		n += len(re.FindAllStringIndex(lower, -1))
	}
	return n
}

// SimulateSpeech approximates delivery metrics from the recording size and the
// transcript. Nothing here is measured from the audio signal.
func SimulateSpeech(audioSize int64, transcript string, rng Random) models.SpeechMetrics {
	duration := clampFloat(float64(audioSize)/10000, 10, 300)

	transcript = strings.TrimSpace(transcript)
	var wordCount float64
	if transcript != "" {
		wordCount = float64(len(strings.Fields(transcript)))
	} else {
		wordCount = math.Floor(float64(audioSize) / 1000)
	}
	wpm := int(math.Round(wordCount / duration * 60))
	wpm = min(max(wpm, 60), 200)

	var fillers int
	if transcript != "" {
		fillers = CountFillers(transcript)
	} else {
		fillers = rng.IntN(5)
	}

	pauses := int(math.Floor(duration/10)) + rng.IntN(3)
	confidence := 0.8 + rng.Float64()*0.2

	if transcript == "" {
		transcript = fmt.Sprintf("[Simulated transcript for %ds audio]", int(math.Floor(duration)))
	}

	return models.SpeechMetrics{
		Transcript:  transcript,
		WPM:         wpm,
		PauseCount:  pauses,
		FillerCount: fillers,
		Confidence:  confidence,
		Duration:    duration,
	}
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
