package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/mindtrack-backend/internal/domain"
	"github.com/heartmarshall/mindtrack-backend/pkg/markdown"
)

const welcomeSubject = "Welcome to MindTrack"

const welcomeBody = `Hi %s,

Thanks for joining **MindTrack**. A few ways to start:

- Log how you feel today. It takes a few seconds.
- Set a small self-care goal for the week.
- Write down three things you are grateful for.

If you ever need to talk to someone right away, the emergency contacts are
one tap away in the app.

Take care,
The MindTrack team`

// WelcomeMailer sends the post-registration greeting.
type WelcomeMailer struct {
	sender Sender
}

// NewWelcomeMailer creates a WelcomeMailer on top of sender.
func NewWelcomeMailer(sender Sender) *WelcomeMailer {
	return &WelcomeMailer{sender: sender}
}

// SendWelcome greets u by first name.
func (m *WelcomeMailer) SendWelcome(ctx context.Context, u domain.User) error {
	msg, err := welcomeMessage(u)
	if err != nil {
		return err
	}
	if _, err := m.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("email.SendWelcome: %w", err)
	}
	return nil
}

func welcomeMessage(u domain.User) (Message, error) {
	name := domain.FirstName(u.DisplayName, u.Email)

	html, err := markdown.Render(fmt.Sprintf(welcomeBody, escapeMarkdown(name)))
	if err != nil {
		return Message{}, fmt.Errorf("email.welcomeMessage: %w", err)
	}

	return Message{
		To:      []string{u.Email},
		Subject: welcomeSubject,
		HTML:    html,
		Text:    fmt.Sprintf(welcomeBody, name),
	}, nil
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, `*`, `\*`, `_`, `\_`, "`", "\\`", `[`, `\[`, `]`, `\]`, `<`, `&lt;`, `>`, `&gt;`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
