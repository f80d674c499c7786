package speech

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineTranscriberReadsLines(t *testing.T) {
	tr := NewLineTranscriber(strings.NewReader("  hello \nworld\n"), nil)

	got, err := tr.Listen(context.Background())
	require.NoError(t, err)
	require.Equal(t, "hello", got)

	got, err = tr.Listen(context.Background())
	require.NoError(t, err)
	require.Equal(t, "world", got)
}

func TestLineTranscriberClosesOnEOF(t *testing.T) {
	tr := NewLineTranscriber(strings.NewReader(""), nil)
	_, err := tr.Listen(context.Background())
	require.ErrorIs(t, err, ErrClosed)
}

func TestLineTranscriberPromptsBeforeEachRead(t *testing.T) {
	var prompts int
	tr := NewLineTranscriber(strings.NewReader("a\nb\n"), func() { prompts++ })

	_, _ = tr.Listen(context.Background())
	_, _ = tr.Listen(context.Background())
	require.Equal(t, 2, prompts)
}

func TestLineTranscriberCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr := NewLineTranscriber(strings.NewReader("pending\n"), nil)
	_, err := tr.Listen(ctx)
	require.ErrorIs(t, err, ErrClosed)
}
