package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/stickerlab/backend/internal/core/port"
)

var _ port.EmailSender = (*SMTPSender)(nil)

// SMTPSender delivers rendered emails over plain SMTP. Auth is
// optional: empty user means an unauthenticated relay.
type SMTPSender struct {
	addr string
	from string
	auth smtp.Auth
}

func NewSMTPSender(addr, from, user, pass string) SMTPSender {
	s := SMTPSender{addr: addr, from: from}
	if user != "" {
		host, _, _ := strings.Cut(addr, ":")
		s.auth = smtp.PlainAuth("", user, pass, host)
	}
	return s
}

func (s SMTPSender) Send(
	ctx context.Context, to []string, msg port.Email,
) error {
	const op = "SMTPSender.Send"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := smtp.SendMail(
		s.addr, s.auth, s.from, to, buildMessage(s.from, to, msg),
	); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func buildMessage(from string, to []string, msg port.Email) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	b.WriteString("\r\n")
	return []byte(b.String())
}
