package notification

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
)

// Mailerは外部メール送信の約束。送信失敗は呼び出し側で握る
type Mailer interface {
	Send(ctx context.Context, to string, subject string, body string) error
}

// SMTPMailerは起動時に1回だけ作ってプロセス全体で使い回す
type SMTPMailer struct {
	addr string
	from string
	auth smtp.Auth
}

func NewSMTPMailer(host string, port string, username string, password string, from string) *SMTPMailer {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPMailer{
		addr: host + ":" + port,
		from: from,
		auth: auth,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to string, subject string, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.from, to, subject, body)
	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// LogMailerは開発用。SMTP設定が無い時はこれで動かす
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger.With("component", "log_mailer")}
}

func (m *LogMailer) Send(ctx context.Context, to string, subject string, body string) error {
	m.logger.InfoContext(ctx, "mail (not sent, log only)", "to", to, "subject", subject)
	return nil
}
