// Package speech defines the input/output collaborator seams: a transcriber
// producing utterances and a speaker voicing responses.
package speech

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
)

var (
	// ErrTimeout indicates no input arrived inside the listen window.
	ErrTimeout = errors.New("no speech detected")
	// ErrUnrecognized indicates audio was captured but not understood.
	ErrUnrecognized = errors.New("could not understand audio")
	// ErrService indicates the transcription collaborator itself failed.
	ErrService = errors.New("speech recognition service unavailable")
	// ErrClosed indicates the input source is exhausted and the loop should end.
	ErrClosed = errors.New("input source closed")
)

// Transcriber produces one utterance per call.
type Transcriber interface {
	Listen(context.Context) (string, error)
}

// LineTranscriber reads typed utterances line by line. It is the default
// front end; a streaming STT implementation satisfies the same interface.
type LineTranscriber struct {
	scanner *bufio.Scanner
	prompt  func()
}

// NewLineTranscriber wraps a reader, invoking prompt (when non-nil) before
// each read.
func NewLineTranscriber(r io.Reader, prompt func()) *LineTranscriber {
	return &LineTranscriber{scanner: bufio.NewScanner(r), prompt: prompt}
}

func (t *LineTranscriber) Listen(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", ErrClosed
	}
	if t.prompt != nil {
		t.prompt()
	}
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", ErrService
		}
		return "", ErrClosed
	}
	return strings.TrimSpace(t.scanner.Text()), nil
}
