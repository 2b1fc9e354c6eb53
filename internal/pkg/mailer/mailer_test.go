package mailer

import (
	"bufio"
	"net"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// scriptedServer speaks just enough SMTP over a pipe to accept one message
// and records every command verb the client sends.
func scriptedServer(conn net.Conn, commands *[]string, done chan struct{}) {
	defer close(done)
	defer conn.Close()

	r := bufio.NewReader(conn)
	write := func(s string) { conn.Write([]byte(s + "\r\n")) }

	write("220 localhost ESMTP")

	inData := false
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimRight(line, "\r\n")

		if inData {
			if line == "." {
				inData = false
				write("250 2.0.0 queued")
			}
			continue
		}

		*commands = append(*commands, line)
		upper := strings.ToUpper(line)
		switch {
		case strings.HasPrefix(upper, "EHLO"), strings.HasPrefix(upper, "HELO"):
			conn.Write([]byte("250-localhost\r\n250 AUTH PLAIN\r\n"))
		case strings.HasPrefix(upper, "AUTH"):
			write("235 2.7.0 ok")
		case strings.HasPrefix(upper, "MAIL"):
			write("250 ok")
		case strings.HasPrefix(upper, "RCPT"):
			write("250 ok")
		case upper == "DATA":
			write("354 go ahead")
			inData = true
		case upper == "QUIT":
			write("221 bye")
			return
		default:
			write("500 unrecognized")
		}
	}
}

func runSubmit(t *testing.T, m *Mailer) []string {
	t.Helper()

	clientConn, serverConn := net.Pipe()
	var commands []string
	done := make(chan struct{})
	go scriptedServer(serverConn, &commands, done)

	client, err := smtp.NewClient(clientConn, "localhost")
	assert.NoError(t, err)

	err = m.submit(client, "to@example.com", []byte("Subject: hi\r\n\r\nbody"))
	assert.NoError(t, err)

	client.Close()
	<-done
	return commands
}

func TestSubmit_AuthenticatesWhenCredentialsSet(t *testing.T) {
	m := New("localhost", "2525", "user", "pass", "noreply@example.com")

	commands := runSubmit(t, m)

	authSeen := false
	for _, cmd := range commands {
		if strings.HasPrefix(strings.ToUpper(cmd), "AUTH") {
			authSeen = true
		}
	}
	assert.True(t, authSeen, "expected an AUTH command, got %v", commands)
}

// A relay with no credentials must be usable: no AUTH attempt.
func TestSubmit_SkipsAuthWithoutUsername(t *testing.T) {
	m := New("localhost", "2525", "", "", "noreply@example.com")

	commands := runSubmit(t, m)

	for _, cmd := range commands {
		assert.False(t, strings.HasPrefix(strings.ToUpper(cmd), "AUTH"),
			"unexpected AUTH command in %v", commands)
	}
	assert.Contains(t, strings.Join(commands, "\n"), "MAIL FROM:<noreply@example.com>")
}

func TestBuildMessage_MultipartWhenBothBodies(t *testing.T) {
	msg := string(buildMessage("a@x.com", "b@x.com", "Hello", "<id@x>", "<p>hi</p>", "hi"))

	assert.Contains(t, msg, "multipart/alternative")
	assert.Contains(t, msg, "text/plain")
	assert.Contains(t, msg, "text/html")
	assert.Contains(t, msg, "Message-ID: <id@x>")
}

func TestBuildMessage_SinglePartFallbacks(t *testing.T) {
	htmlOnly := string(buildMessage("a@x.com", "b@x.com", "Hello", "<id@x>", "<p>hi</p>", ""))
	assert.Contains(t, htmlOnly, "text/html")
	assert.NotContains(t, htmlOnly, "multipart")

	textOnly := string(buildMessage("a@x.com", "b@x.com", "Hello", "<id@x>", "", "hi"))
	assert.Contains(t, textOnly, "text/plain")
	assert.NotContains(t, textOnly, "multipart")
}
