/**
* Name: 			archiver.go
* Description: 		모의 면접 답변 녹음 보관 및 병합
* Workflow: 		analyze-answer 시 클립 저장 -> final-analysis 시 ffmpeg로 질문 순서대로 이어 붙여 mp3 생성
 */

package archiver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Susmita-Codes/Pravartak-AI/internal/logger"
	"github.com/Susmita-Codes/Pravartak-AI/internal/storage"
)

const tempDirName = "temp_recordings"

var ErrNoClips = errors.New("no recorded answers for session")

var safeName = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ClipStore records which clips belong to a session so merging survives restarts.
type ClipStore interface {
	AddAnswerClip(ctx context.Context, clip storage.AnswerClip) (replaced []string, err error)
	ListAnswerClips(ctx context.Context, userID, sessionID string) ([]storage.AnswerClip, error)
	DeleteAnswerClips(ctx context.Context, userID, sessionID string) error
}

// runFunc executes ffmpeg and returns its combined output.
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

type Archiver struct {
	store   ClipStore
	dataDir string
	ffmpeg  string
	run     runFunc
}

func New(store ClipStore, dataDir, ffmpegPath string) *Archiver {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	return &Archiver{store: store, dataDir: dataDir, ffmpeg: ffmpegPath, run: runCommand}
}

// SaveClip writes one answer recording to the temp directory and registers it for the
// user's session. Every clip gets its own file; a retake of the same question
// replaces the earlier clip, and questionID 0 appends.
func (a *Archiver) SaveClip(ctx context.Context, userID, sessionID string, questionID int, data []byte, ext string) error {
	if !safeName.MatchString(sessionID) || !safeName.MatchString(userID) {
		return fmt.Errorf("invalid session or user id")
	}
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	if ext == "" || !safeName.MatchString(ext) {
		ext = "webm"
	}

	dir := filepath.Join(a.dataDir, tempDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating temp directory: %w", err)
	}
	if questionID < 0 {
		questionID = 0
	}
	path := filepath.Join(dir, clipFileName(userID, sessionID, questionID, ext))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing clip: %w", err)
	}

	clip := storage.AnswerClip{SessionID: sessionID, UserID: userID, QuestionID: questionID, FilePath: path}
	replaced, err := a.store.AddAnswerClip(ctx, clip)
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("registering clip: %w", err)
	}
	for _, old := range replaced {
		os.Remove(old)
	}
	logger.L().Debug("answer clip saved", zap.String("session_id", sessionID), zap.Int("question_id", questionID), zap.String("path", path))
	return nil
}

// Merge concatenates the session's clips into data/<user>/<session>.mp3 and returns
// the file name. Temp clips are removed whether or not ffmpeg succeeds.
func (a *Archiver) Merge(ctx context.Context, userID, sessionID string) (string, error) {
	clips, err := a.store.ListAnswerClips(ctx, userID, sessionID)
	if err != nil {
		return "", fmt.Errorf("listing clips: %w", err)
	}
	if len(clips) == 0 {
		return "", ErrNoClips
	}

	userDir := filepath.Join(a.dataDir, userID)
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return "", fmt.Errorf("creating user directory: %w", err)
	}
	fileName := sessionID + ".mp3"
	finalPath := filepath.Join(userDir, fileName)

	logger.L().Info("merging answer clips", zap.String("session_id", sessionID), zap.Int("clips", len(clips)), zap.String("output", finalPath))
	output, err := a.run(ctx, a.ffmpeg, concatArgs(clips, finalPath)...)
	if err != nil {
		logger.L().Error("ffmpeg merge failed",
			zap.String("session_id", sessionID),
			zap.Error(err),
			zap.String("output", string(output)),
		)
		err = fmt.Errorf("ffmpeg merge: %w", err)
	}

	for _, c := range clips {
		os.Remove(c.FilePath)
	}
	if derr := a.store.DeleteAnswerClips(ctx, userID, sessionID); derr != nil {
		logger.L().Warn("failed to forget merged clips", zap.String("session_id", sessionID), zap.Error(derr))
	}
	if err != nil {
		return "", err
	}
	return fileName, nil
}

// Path resolves a merged recording for userID, rejecting names that escape the user directory.
func (a *Archiver) Path(userID, fileName string) (string, bool) {
	if fileName != filepath.Base(fileName) || !strings.HasSuffix(fileName, ".mp3") {
		return "", false
	}
	if !safeName.MatchString(strings.TrimSuffix(fileName, ".mp3")) || !safeName.MatchString(userID) {
		return "", false
	}
	return filepath.Join(a.dataDir, userID, fileName), true
}

// clipFileName is <user>_<session>_q<n>_<uuid>.<ext>.
func clipFileName(userID, sessionID string, questionID int, ext string) string {
	return fmt.Sprintf("%s_%s_q%d_%s.%s", userID, sessionID, questionID, uuid.NewString(), ext)
}

// concatArgs builds: -y -i c0 -i c1 ... -filter_complex [0:a][1:a]concat=n=2:v=0:a=1[final] ...
func concatArgs(clips []storage.AnswerClip, out string) []string {
	args := []string{"-y"}
	for _, c := range clips {
		args = append(args, "-i", c.FilePath)
	}

	var filter strings.Builder
	for i := range clips {
		fmt.Fprintf(&filter, "[%d:a]", i)
	}
	fmt.Fprintf(&filter, "concat=n=%d:v=0:a=1[final]", len(clips))

	return append(args,
		"-filter_complex", filter.String(),
		"-map", "[final]",
		"-c:a", "libmp3lame",
		"-q:a", "4",
		out,
	)
}
