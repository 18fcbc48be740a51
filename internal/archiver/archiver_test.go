package archiver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Susmita-Codes/Pravartak-AI/internal/storage"
)

func newArchiver(t *testing.T) (*Archiver, *storage.Store) {
	t.Helper()
	s, err := storage.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return New(s, t.TempDir(), ""), s
}

// recordInputs fakes ffmpeg: it captures the contents of every -i input in order
// and writes a dummy mp3 to the output path.
func recordInputs(t *testing.T, a *Archiver) *[]string {
	t.Helper()
	var inputs []string
	a.run = func(_ context.Context, name string, args ...string) ([]byte, error) {
		assert.Equal(t, "ffmpeg", name)
		inputs = inputs[:0]
		for i := 0; i < len(args)-1; i++ {
			if args[i] != "-i" {
				continue
			}
			data, err := os.ReadFile(args[i+1])
			require.NoError(t, err)
			inputs = append(inputs, string(data))
		}
		return nil, os.WriteFile(args[len(args)-1], []byte("mp3"), 0o644)
	}
	return &inputs
}

func tempClips(t *testing.T, a *Archiver) []string {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(a.dataDir, tempDirName))
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestMerge(t *testing.T) {
	a, s := newArchiver(t)
	ctx := context.Background()
	inputs := recordInputs(t, a)

	require.NoError(t, a.SaveClip(ctx, "user1", "sess-1", 2, []byte("b"), ".webm"))
	require.NoError(t, a.SaveClip(ctx, "user1", "sess-1", 1, []byte("a"), "webm"))

	name, err := a.Merge(ctx, "user1", "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "sess-1.mp3", name)
	assert.Equal(t, []string{"a", "b"}, *inputs, "clips are merged in question order")

	path, ok := a.Path("user1", name)
	require.True(t, ok)
	assert.FileExists(t, path)
	assert.Empty(t, tempClips(t, a))

	clips, err := s.ListAnswerClips(ctx, "user1", "sess-1")
	require.NoError(t, err)
	assert.Empty(t, clips)
}

func TestSaveClip_WithoutQuestionIDKeepsEveryAnswer(t *testing.T) {
	a, _ := newArchiver(t)
	ctx := context.Background()
	inputs := recordInputs(t, a)

	require.NoError(t, a.SaveClip(ctx, "user1", "sess", 0, []byte("answer-one"), "webm"))
	require.NoError(t, a.SaveClip(ctx, "user1", "sess", 0, []byte("answer-two"), "webm"))

	_, err := a.Merge(ctx, "user1", "sess")
	require.NoError(t, err)
	assert.Equal(t, []string{"answer-one", "answer-two"}, *inputs)
}

func TestSaveClip_RetakeReplacesEarlierAnswer(t *testing.T) {
	a, _ := newArchiver(t)
	ctx := context.Background()
	inputs := recordInputs(t, a)

	require.NoError(t, a.SaveClip(ctx, "user1", "sess", 1, []byte("first-take"), "webm"))
	require.NoError(t, a.SaveClip(ctx, "user1", "sess", 1, []byte("second-take"), "webm"))
	require.NoError(t, a.SaveClip(ctx, "user1", "sess", 2, []byte("next-question"), "webm"))
	assert.Len(t, tempClips(t, a), 2, "the replaced take is removed from disk")

	_, err := a.Merge(ctx, "user1", "sess")
	require.NoError(t, err)
	assert.Equal(t, []string{"second-take", "next-question"}, *inputs)
}

func TestMerge_UsersSharingSessionIDStayApart(t *testing.T) {
	a, s := newArchiver(t)
	ctx := context.Background()
	inputs := recordInputs(t, a)

	require.NoError(t, a.SaveClip(ctx, "user1", "sess", 0, []byte("answer-one"), "webm"))
	require.NoError(t, a.SaveClip(ctx, "user1", "sess", 0, []byte("answer-two"), "webm"))
	require.NoError(t, a.SaveClip(ctx, "user2", "sess", 0, []byte("other-user"), "webm"))

	_, err := a.Merge(ctx, "user1", "sess")
	require.NoError(t, err)
	assert.Equal(t, []string{"answer-one", "answer-two"}, *inputs)

	remaining, err := s.ListAnswerClips(ctx, "user2", "sess")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.FileExists(t, remaining[0].FilePath)

	_, err = a.Merge(ctx, "user2", "sess")
	require.NoError(t, err)
	assert.Equal(t, []string{"other-user"}, *inputs)
}

func TestMerge_NoClips(t *testing.T) {
	a, _ := newArchiver(t)
	_, err := a.Merge(context.Background(), "user1", "nothing")
	assert.ErrorIs(t, err, ErrNoClips)
}

func TestMerge_FFmpegFailureStillCleansUp(t *testing.T) {
	a, s := newArchiver(t)
	ctx := context.Background()
	a.run = func(context.Context, string, ...string) ([]byte, error) {
		return []byte("boom"), errors.New("exit status 1")
	}

	require.NoError(t, a.SaveClip(ctx, "user1", "sess-2", 1, []byte("a"), "webm"))
	_, err := a.Merge(ctx, "user1", "sess-2")
	require.Error(t, err)

	clips, err := s.ListAnswerClips(ctx, "user1", "sess-2")
	require.NoError(t, err)
	assert.Empty(t, clips)
}

func TestSaveClip_RejectsUnsafeIDs(t *testing.T) {
	a, _ := newArchiver(t)
	err := a.SaveClip(context.Background(), "user1", "../../etc", 1, []byte("a"), "webm")
	assert.Error(t, err)
}

func TestPath(t *testing.T) {
	a, _ := newArchiver(t)

	_, ok := a.Path("user1", "../other/sess.mp3")
	assert.False(t, ok)
	_, ok = a.Path("user1", "sess.wav")
	assert.False(t, ok)
	_, ok = a.Path("../x", "sess.mp3")
	assert.False(t, ok)

	p, ok := a.Path("user1", "sess.mp3")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(a.dataDir, "user1", "sess.mp3"), p)
}
