package chat

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/medichat/medichat-client/internal/domain"
	apperrors "github.com/medichat/medichat-client/internal/errors"
	"github.com/medichat/medichat-client/internal/logger"
	"github.com/medichat/medichat-client/internal/media"
)

// Greeting seeds every fresh conversation
const Greeting = "<p>Hello! I'm MediChat AI, your personal health assistant. How can I assist you today?</p>"

// ReportFollowUp is appended after a successful report upload
const ReportFollowUp = "<p>Please ask any questions about your medical report!</p>"

// Suggested prompts shown on the chat screen
var Suggestions = []string{
	"Explain my symptoms",
	"Analyze my medical report",
	"Track my health metrics",
	"Provide health tips",
}

// Conversation is the append-only message log for one chat session plus the
// single pending attachment. Replies are appended in completion order: a
// later-started send that finishes first lands first. Each send carries a
// sequence id so the ordering stays observable in logs; reordering is
// deliberately not attempted.
type Conversation struct {
	gateway domain.Gateway
	now     func() time.Time

	mu       sync.Mutex
	messages []domain.Message
	pending  *domain.Attachment
	typing   bool
}

// NewConversation creates a conversation seeded with the assistant greeting
func NewConversation(gateway domain.Gateway) *Conversation {
	c := &Conversation{
		gateway: gateway,
		now:     time.Now,
	}
	c.messages = []domain.Message{c.seed()}
	return c
}

func (c *Conversation) seed() domain.Message {
	return domain.Message{
		Role:      domain.RoleAssistant,
		Content:   Greeting,
		Timestamp: c.now().Format("15:04"),
	}
}

// Messages returns a copy of the log
func (c *Conversation) Messages() []domain.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// IsTyping reports whether a send is awaiting its response
func (c *Conversation) IsTyping() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.typing
}

// Pending returns the attachment waiting to be sent, if any
func (c *Conversation) Pending() *domain.Attachment {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Clear resets the log to exactly the seeded greeting and drops any pending
// attachment.
func (c *Conversation) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = []domain.Message{c.seed()}
	c.pending = nil
	c.typing = false
}

func (c *Conversation) append(role domain.Role, content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, domain.Message{
		Role:      role,
		Content:   content,
		Timestamp: c.now().Format("15:04"),
	})
}

// AppendSystem adds a system notice such as recording start/stop
func (c *Conversation) AppendSystem(content string) {
	c.append(domain.RoleSystem, content)
}

// AppendAssistant adds an assistant-voiced notice, used for local failures
// that should read like any other reply.
func (c *Conversation) AppendAssistant(content string) {
	c.append(domain.RoleAssistant, content)
}

func (c *Conversation) setTyping(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.typing = v
}

// SendText sends one chat message. The user message is appended before the
// call; the assistant reply, or an assistant-visible error, after it
// completes. Errors never leave the log without a message.
func (c *Conversation) SendText(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return apperrors.ErrEmptyInput
	}

	sendID := uuid.NewString()
	c.append(domain.RoleUser, "<p>"+text+"</p>")
	c.setTyping(true)
	defer c.setTyping(false)

	logger.Debug("Sending chat message", "send_id", sendID)
	reply, err := c.gateway.Ask(ctx, text)
	if err != nil {
		logger.Warn("Chat send failed", "send_id", sendID, "error", err)
		c.append(domain.RoleAssistant, "<p>"+apperrors.UserMessage(err)+"</p>")
		return err
	}

	logger.Debug("Chat reply received", "send_id", sendID)
	c.append(domain.RoleAssistant, reply)
	return nil
}

// Attach validates a chosen file and makes it the pending attachment,
// replacing any prior unsent one. Rejected files leave nothing pending and
// add a system notice.
func (c *Conversation) Attach(category media.Category, name, mimeType string, data []byte) error {
	att, err := media.Select(category, name, mimeType, data)
	if err != nil {
		c.AppendSystem("<p class=\"text-center\">" + apperrors.UserMessage(err) + "</p>")
		return err
	}

	c.mu.Lock()
	c.pending = att
	c.mu.Unlock()

	c.AppendSystem("<p class=\"text-center\">" + media.TypeLabel(mimeType) + " uploaded: " + name + "</p>")
	return nil
}

// SetPending replaces the pending attachment directly, used for finished
// recordings.
func (c *Conversation) SetPending(att *domain.Attachment) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = att
}

// SendAttachment sends the pending attachment for analysis. On success the
// summary is appended (plus a follow-up prompt for report uploads) and the
// attachment is cleared; on failure one assistant error message is appended
// and the attachment is kept for another try.
func (c *Conversation) SendAttachment(ctx context.Context) error {
	c.mu.Lock()
	att := c.pending
	c.mu.Unlock()

	if att == nil {
		c.append(domain.RoleAssistant, "<p>Please upload a file first.</p>")
		return apperrors.ErrNoAttachment
	}

	var display string
	isReport := false
	switch {
	case strings.HasPrefix(att.MIMEType, "audio/"):
		display = "<p>🎙️ Audio message sent</p>"
	case strings.HasPrefix(att.MIMEType, "image/"):
		display = "<p>🖼️ Image sent for analysis</p>"
		isReport = true
	default:
		display = "<p>📄 PDF sent for analysis</p>"
		isReport = true
	}

	sendID := uuid.NewString()
	c.append(domain.RoleUser, display)
	c.setTyping(true)
	defer c.setTyping(false)

	logger.Debug("Sending attachment", "send_id", sendID, "mime_type", att.MIMEType)
	summary, err := c.gateway.UploadMedicalReport(ctx, att)
	if err != nil {
		logger.Warn("Attachment send failed", "send_id", sendID, "error", err)
		c.append(domain.RoleAssistant, "<p>"+apperrors.UserMessage(err)+"</p>")
		return err
	}

	c.append(domain.RoleAssistant, summary)
	if isReport {
		c.append(domain.RoleAssistant, ReportFollowUp)
	}

	c.mu.Lock()
	c.pending = nil
	c.mu.Unlock()
	return nil
}
