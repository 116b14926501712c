package media

import (
	"bytes"
	"sync"

	"github.com/medichat/medichat-client/internal/domain"
	apperrors "github.com/medichat/medichat-client/internal/errors"
	"github.com/medichat/medichat-client/internal/logger"
)

// SourceOpener acquires the audio input device. It fails when the device is
// missing or access is denied.
type SourceOpener func() (domain.AudioSource, error)

// Recorder is a start/stop toggle over an audio source. Chunks are
// accumulated while recording and assembled into a single audio attachment
// on stop. The source is released on every exit path.
type Recorder struct {
	mu     sync.Mutex
	source domain.AudioSource
	buf    bytes.Buffer
	done   chan struct{}
}

// NewRecorder creates an idle recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// IsRecording reports whether a recording is active
func (r *Recorder) IsRecording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.source != nil
}

// Start acquires the device through open and begins accumulating chunks.
// Only one recording may be active at a time.
func (r *Recorder) Start(open SourceOpener) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.source != nil {
		return apperrors.NewValidationError("Recording is already in progress")
	}

	source, err := open()
	if err != nil {
		return apperrors.NewPermissionError("Failed to start recording. Please allow microphone access.").
			WithContext("cause", err.Error())
	}

	r.source = source
	r.buf.Reset()
	r.done = make(chan struct{})

	go func(chunks <-chan []byte, done chan struct{}) {
		defer close(done)
		for chunk := range chunks {
			r.mu.Lock()
			r.buf.Write(chunk)
			r.mu.Unlock()
		}
	}(source.Chunks(), r.done)

	logger.Debug("Recording started")
	return nil
}

// Stop releases the device and returns the assembled audio attachment
func (r *Recorder) Stop() (*domain.Attachment, error) {
	r.mu.Lock()
	source := r.source
	done := r.done
	r.source = nil
	r.mu.Unlock()

	if source == nil {
		return nil, apperrors.NewValidationError("No recording in progress")
	}

	// Release closes the chunk channel, which ends the accumulator
	if err := source.Release(); err != nil {
		logger.Warn("Audio source release failed", "error", err)
	}
	<-done

	r.mu.Lock()
	data := make([]byte, r.buf.Len())
	copy(data, r.buf.Bytes())
	r.buf.Reset()
	r.mu.Unlock()

	logger.Debug("Recording stopped", "bytes", len(data))
	return &domain.Attachment{
		Name:     "recording.wav",
		MIMEType: "audio/wav",
		Data:     data,
	}, nil
}
