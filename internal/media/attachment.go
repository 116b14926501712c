package media

import (
	"strings"

	"github.com/medichat/medichat-client/internal/domain"
	apperrors "github.com/medichat/medichat-client/internal/errors"
)

// Category is the kind of file a screen asked the user for
type Category string

const (
	CategoryPDF   Category = "pdf"
	CategoryImage Category = "image"
	CategoryAudio Category = "audio"
)

// Allowed content types per category, mirroring the backend's expectations
var allowedTypes = map[Category][]string{
	CategoryPDF:   {"application/pdf"},
	CategoryImage: {"image/jpeg", "image/png", "image/gif"},
	CategoryAudio: {"audio/wav", "audio/mpeg"},
}

// Select validates a chosen file against the category allow-list and
// returns it as an attachment. A rejected file leaves nothing pending.
func Select(category Category, name, mimeType string, data []byte) (*domain.Attachment, error) {
	allowed, ok := allowedTypes[category]
	if !ok {
		return nil, apperrors.NewValidationError("Unknown file category")
	}
	for _, t := range allowed {
		if mimeType == t {
			return &domain.Attachment{Name: name, MIMEType: mimeType, Data: data}, nil
		}
	}
	return nil, apperrors.NewValidationError("Please upload a valid file for the selected type.")
}

// TypeLabel names an attachment kind for system messages
func TypeLabel(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "audio/"):
		return "Audio file"
	case strings.HasPrefix(mimeType, "image/"):
		return "Image"
	case mimeType == "application/pdf":
		return "PDF"
	default:
		return "File"
	}
}
