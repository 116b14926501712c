package app

import (
	"context"
	"strings"

	"github.com/medichat/medichat-client/internal/chat"
	"github.com/medichat/medichat-client/internal/domain"
	apperrors "github.com/medichat/medichat-client/internal/errors"
	"github.com/medichat/medichat-client/internal/media"
)

// renderMarkup flattens the backend's paragraph markup for the terminal
func renderMarkup(s string) string {
	s = strings.ReplaceAll(s, "</p>", "\n")
	s = strings.ReplaceAll(s, "<p>", "")
	s = strings.ReplaceAll(s, "<p class=\"text-center\">", "")
	return strings.TrimRight(s, "\n")
}

func chatScreen() *Screen {
	return &Screen{
		Title:        "Chat",
		RequiresAuth: true,
		Run: func(ctx context.Context, a *App) (string, error) {
			a.printf("\n--- Chat ---\n")
			a.printf("Commands: /attach pdf|image|audio <path>, /record [<path>], /send, /clear, /suggest, /back, /logout\n")

			rendered := 0
			show := func() {
				msgs := a.deps.Conversation.Messages()
				for ; rendered < len(msgs); rendered++ {
					m := msgs[rendered]
					a.printf("[%s] %-9s %s\n", m.Timestamp, m.Role, renderMarkup(m.Content))
				}
			}
			show()

			for {
				line, ok := a.prompt("> ")
				if !ok {
					return RouteHome, nil
				}
				line = strings.TrimSpace(line)

				switch {
				case line == "":
					continue
				case line == "/back":
					return RouteHome, nil
				case line == "/logout":
					return a.logout(ctx), nil
				case line == "/clear":
					a.deps.Conversation.Clear()
					rendered = 0
					show()
				case line == "/suggest":
					for _, s := range chat.Suggestions {
						a.printf("  - %s\n", s)
					}
				case line == "/send":
					a.printf("...\n")
					_ = a.deps.Conversation.SendAttachment(ctx)
					show()
				case strings.HasPrefix(line, "/attach"):
					a.attachFromCommand(line)
					show()
				case strings.HasPrefix(line, "/record"):
					a.toggleRecording(line)
					show()
				default:
					a.printf("...\n")
					_ = a.deps.Conversation.SendText(ctx, line)
					show()
				}
			}
		},
	}
}

// attachFromCommand parses "/attach <category> <path>" and stages the file
func (a *App) attachFromCommand(line string) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		a.printf("usage: /attach pdf|image|audio <path>\n")
		return
	}

	category := media.Category(parts[1])
	att, err := media.ReadFileAttachment(category, parts[2])
	if err != nil {
		// Allow-list rejections already land in the log as a system
		// message through Attach below; read failures surface here.
		if apperrors.TypeOf(err) != apperrors.ErrorTypeValidation {
			a.printf("! %s\n", err)
			return
		}
		_ = a.deps.Conversation.Attach(category, parts[2], media.DetectMIME(parts[2]), nil)
		return
	}
	_ = a.deps.Conversation.Attach(category, att.Name, att.MIMEType, att.Data)
}

// toggleRecording starts capture from an audio file standing in for the
// microphone, or stops the active recording and stages the result.
func (a *App) toggleRecording(line string) {
	if a.deps.Recorder.IsRecording() {
		att, err := a.deps.Recorder.Stop()
		if err != nil {
			a.printf("! %s\n", apperrors.UserMessage(err))
			return
		}
		a.deps.Conversation.SetPending(att)
		a.deps.Conversation.AppendSystem("<p class=\"text-center\">Recording stopped.</p>")
		return
	}

	parts := strings.Fields(line)
	if len(parts) != 2 {
		a.printf("usage: /record <audio file> to start, /record to stop\n")
		return
	}
	path := parts[1]

	err := a.deps.Recorder.Start(func() (domain.AudioSource, error) {
		return media.NewFileSource(path)
	})
	if err != nil {
		a.deps.Conversation.AppendAssistant("<p>Failed to start recording. Please allow microphone access.</p>")
		return
	}
	a.deps.Conversation.AppendSystem("<p class=\"text-center\">Recording started...</p>")
}
