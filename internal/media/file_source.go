package media

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/medichat/medichat-client/internal/domain"
)

// DetectMIME maps a file name to the content type the backend expects.
// Only the types on the category allow-lists are recognized.
func DetectMIME(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return "application/pdf"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".wav":
		return "audio/wav"
	case ".mp3":
		return "audio/mpeg"
	default:
		return "application/octet-stream"
	}
}

// ReadFileAttachment loads a file from disk as a candidate attachment for
// the given category, applying the allow-list before anything is kept.
func ReadFileAttachment(category Category, path string) (*domain.Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Select(category, filepath.Base(path), DetectMIME(path), data)
}

// fileSource streams a file's contents in fixed chunks, standing in for a
// microphone on machines without audio capture.
type fileSource struct {
	chunks   chan []byte
	stop     chan struct{}
	stopOnce sync.Once
}

const fileSourceChunkSize = 32 * 1024

// NewFileSource opens an audio file as an AudioSource. The whole file is
// delivered through Chunks; Release stops delivery early.
func NewFileSource(path string) (domain.AudioSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s := &fileSource{
		chunks: make(chan []byte),
		stop:   make(chan struct{}),
	}

	go func() {
		defer close(s.chunks)
		for off := 0; off < len(data); off += fileSourceChunkSize {
			end := off + fileSourceChunkSize
			if end > len(data) {
				end = len(data)
			}
			select {
			case s.chunks <- data[off:end]:
			case <-s.stop:
				return
			}
		}
	}()

	return s, nil
}

func (s *fileSource) Chunks() <-chan []byte { return s.chunks }

func (s *fileSource) Release() error {
	s.stopOnce.Do(func() { close(s.stop) })
	return nil
}
