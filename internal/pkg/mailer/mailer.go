package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"

	"github.com/google/uuid"
)

// Mailer sends email over SMTP with implicit TLS (port 465).
type Mailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func New(host, port, username, password, from string) *Mailer {
	if from == "" {
		from = username
	}
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// Send delivers a multipart html+text message and returns the generated
// message id.
func (m *Mailer) Send(ctx context.Context, to, subject, html, text string) (string, error) {
	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), m.host)
	msg := buildMessage(m.from, to, subject, messageID, html, text)

	serverAddr := m.host + ":" + m.port

	dialer := &tls.Dialer{
		Config: &tls.Config{ServerName: m.host},
	}
	conn, err := dialer.DialContext(ctx, "tcp", serverAddr)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return "", err
	}
	defer client.Quit()

	if err := m.submit(client, to, msg); err != nil {
		return "", err
	}

	return messageID, nil
}

// submit runs the SMTP conversation on an established client. AUTH is
// skipped when no username is configured, for credential-less dev relays.
func (m *Mailer) submit(client *smtp.Client, to string, msg []byte) error {
	if m.username != "" {
		auth := smtp.PlainAuth("", m.username, m.password, m.host)
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(m.from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

func buildMessage(from, to, subject, messageID, html, text string) []byte {
	const boundary = "wellbook-alt-boundary"

	headers := fmt.Sprintf("From: %s\r\n", from) +
		fmt.Sprintf("To: %s\r\n", to) +
		fmt.Sprintf("Subject: %s\r\n", subject) +
		fmt.Sprintf("Message-ID: %s\r\n", messageID) +
		"MIME-Version: 1.0\r\n"

	// Single-part when only one body is present.
	if html == "" {
		return []byte(headers +
			"Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n" +
			text)
	}
	if text == "" {
		return []byte(headers +
			"Content-Type: text/html; charset=\"utf-8\"\r\n\r\n" +
			html)
	}

	body := fmt.Sprintf("Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary) +
		"--" + boundary + "\r\n" +
		"Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n" +
		text + "\r\n" +
		"--" + boundary + "\r\n" +
		"Content-Type: text/html; charset=\"utf-8\"\r\n\r\n" +
		html + "\r\n" +
		"--" + boundary + "--\r\n"

	return []byte(headers + body)
}
