package media

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/medichat/medichat-client/internal/errors"
)

func TestDetectMIME(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"report.pdf", "application/pdf"},
		{"dinner.jpg", "image/jpeg"},
		{"dinner.JPEG", "image/jpeg"},
		{"scan.png", "image/png"},
		{"clip.gif", "image/gif"},
		{"note.wav", "audio/wav"},
		{"note.mp3", "audio/mpeg"},
		{"notes.txt", "application/octet-stream"},
		{"noext", "application/octet-stream"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectMIME(tt.name), tt.name)
	}
}

func TestReadFileAttachment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))

	att, err := ReadFileAttachment(CategoryPDF, path)
	require.NoError(t, err)
	assert.Equal(t, "report.pdf", att.Name)
	assert.Equal(t, "application/pdf", att.MIMEType)
	assert.Equal(t, []byte("%PDF-1.4"), att.Data)
}

func TestReadFileAttachment_WrongCategory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

	att, err := ReadFileAttachment(CategoryImage, path)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
	assert.Nil(t, att)
}

func TestReadFileAttachment_MissingFile(t *testing.T) {
	_, err := ReadFileAttachment(CategoryPDF, filepath.Join(t.TempDir(), "nope.pdf"))
	require.Error(t, err)
}

func TestFileSource_DeliversWholeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.wav")
	payload := bytes.Repeat([]byte("abcd"), 20*1024) // spans multiple chunks
	require.NoError(t, os.WriteFile(path, payload, 0o600))

	src, err := NewFileSource(path)
	require.NoError(t, err)

	var got []byte
	for chunk := range src.Chunks() {
		got = append(got, chunk...)
	}
	assert.Equal(t, payload, got)
	require.NoError(t, src.Release())
}

func TestFileSource_ConcurrentRelease(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.wav")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("x"), 4*fileSourceChunkSize), 0o600))

	src, err := NewFileSource(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, src.Release())
		}()
	}
	wg.Wait()

	for range src.Chunks() {
	}
}

func TestFileSource_ReleaseStopsDelivery(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.wav")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("x"), 4*fileSourceChunkSize), 0o600))

	src, err := NewFileSource(path)
	require.NoError(t, err)

	<-src.Chunks()
	require.NoError(t, src.Release())
	require.NoError(t, src.Release()) // idempotent

	// the producer goroutine exits and closes the channel
	for range src.Chunks() {
	}
}
