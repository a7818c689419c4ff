package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPSender delivers messages through a plain SMTP relay.
type SMTPSender struct {
	addr    string
	auth    smtp.Auth
	from    string
	replyTo string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	ReplyTo  string
}

func NewSMTPSender(conf SMTPConfig) *SMTPSender {
	var auth smtp.Auth
	if conf.Username != "" {
		auth = smtp.PlainAuth("", conf.Username, conf.Password, conf.Host)
	}

	return &SMTPSender{
		addr:    fmt.Sprintf("%s:%d", conf.Host, conf.Port),
		auth:    auth,
		from:    conf.From,
		replyTo: conf.ReplyTo,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	if s.replyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", s.replyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(msg.Body)

	if err := smtp.SendMail(s.addr, s.auth, s.from, []string{msg.To}, []byte(b.String())); err != nil {
		return fmt.Errorf("smtp.SendMail -> %w", err)
	}

	return nil
}
