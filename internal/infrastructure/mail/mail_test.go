//go:build unit
// +build unit

package mail

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Brownie-08/Portfolio/internal/domain/contact"
	"github.com/Brownie-08/Portfolio/internal/pkg/config"
	"github.com/Brownie-08/Portfolio/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEmail() *contact.Email {
	return &contact.Email{
		To:      []string{"owner@example.com"},
		ReplyTo: "jane@example.com",
		Subject: "[Portfolio] Hello there",
		Body:    "line one\nline two",
	}
}

func TestBuildMessage(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	msg := string(buildMessage("noreply@example.com", testEmail(), now))

	assert.Contains(t, msg, "From: noreply@example.com\r\n")
	assert.Contains(t, msg, "To: owner@example.com\r\n")
	assert.Contains(t, msg, "Reply-To: jane@example.com\r\n")
	assert.Contains(t, msg, "Subject: [Portfolio] Hello there\r\n")
	assert.Contains(t, msg, "Content-Type: text/plain; charset=UTF-8\r\n")
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\nline one\r\nline two\r\n"))
}

func TestBuildMessage_EncodesNonASCIISubject(t *testing.T) {
	email := testEmail()
	email.Subject = "Grüße"
	msg := string(buildMessage("noreply@example.com", email, time.Now()))
	assert.Contains(t, msg, "Subject: =?utf-8?q?")
}

func TestConsoleMailer_Send(t *testing.T) {
	var out bytes.Buffer
	m := newConsoleMailer("noreply@example.com", &out, testutil.SetupTestLogger(t))

	require.NoError(t, m.Send(context.Background(), testEmail()))
	assert.Contains(t, out.String(), "Subject: [Portfolio] Hello there")

	assert.Error(t, m.Send(context.Background(), &contact.Email{Subject: "nobody"}))
}

func TestNewMailer(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	m, err := NewMailer(&config.MailSettings{Backend: config.ConsoleMailBackend, From: "a@example.com"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &consoleMailer{}, m)

	_, err = NewMailer(&config.MailSettings{Backend: config.SMTPMailBackend}, logger)
	assert.Error(t, err)

	_, err = NewMailer(&config.MailSettings{Backend: "pigeon"}, logger)
	assert.Error(t, err)
}

type stubMailer struct {
	mu   sync.Mutex
	sent []string
	send func(ctx context.Context, email *contact.Email) error
}

func (s *stubMailer) Send(ctx context.Context, email *contact.Email) error {
	s.mu.Lock()
	s.sent = append(s.sent, email.Subject)
	s.mu.Unlock()
	if s.send != nil {
		return s.send(ctx, email)
	}
	return nil
}

func TestDispatcher_IsolatesFailures(t *testing.T) {
	stub := &stubMailer{send: func(ctx context.Context, email *contact.Email) error {
		switch email.Subject {
		case "panic":
			panic("boom")
		case "fail":
			return errors.New("smtp down")
		case "slow":
			<-ctx.Done()
			return ctx.Err()
		}
		return nil
	}}
	d := NewDispatcher(stub, 50*time.Millisecond, testutil.SetupTestLogger(t))

	errs := d.Dispatch(context.Background(),
		&contact.Email{Subject: "ok"},
		&contact.Email{Subject: "panic"},
		&contact.Email{Subject: "fail"},
		&contact.Email{Subject: "slow"},
	)

	require.Len(t, errs, 4)
	assert.NoError(t, errs[0])
	assert.ErrorContains(t, errs[1], "panicked")
	assert.ErrorContains(t, errs[2], "smtp down")
	assert.ErrorIs(t, errs[3], context.DeadlineExceeded)
	assert.Len(t, stub.sent, 4)
}

// fakeSMTPServer accepts one session and records the DATA payload
func fakeSMTPServer(t *testing.T) (string, <-chan string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	data := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		r := bufio.NewReader(conn)
		reply := func(s string) { conn.Write([]byte(s + "\r\n")) }
		reply("220 localhost ESMTP")

		for {
			line, err := r.ReadString('\n')
			if err != nil {
				return
			}
			cmd := strings.ToUpper(strings.TrimSpace(line))
			switch {
			case strings.HasPrefix(cmd, "EHLO"), strings.HasPrefix(cmd, "HELO"):
				reply("250 localhost")
			case strings.HasPrefix(cmd, "MAIL"), strings.HasPrefix(cmd, "RCPT"):
				reply("250 OK")
			case cmd == "DATA":
				reply("354 End data with <CR><LF>.<CR><LF>")
				var body strings.Builder
				for {
					l, err := r.ReadString('\n')
					if err != nil {
						return
					}
					if l == ".\r\n" {
						break
					}
					body.WriteString(l)
				}
				data <- body.String()
				reply("250 OK")
			case cmd == "QUIT":
				reply("221 Bye")
				return
			default:
				reply("250 OK")
			}
		}
	}()
	return ln.Addr().String(), data
}

func TestSMTPMailer_Send(t *testing.T) {
	addr, data := fakeSMTPServer(t)
	host, portStr, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	m, err := NewSMTPMailer(&config.MailSettings{
		Backend: config.SMTPMailBackend,
		Host:    host,
		Port:    port,
		From:    "noreply@example.com",
		Timeout: 5 * time.Second,
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	require.NoError(t, m.Send(context.Background(), testEmail()))

	select {
	case body := <-data:
		assert.Contains(t, body, "Reply-To: jane@example.com")
		assert.Contains(t, body, "line two")
	case <-time.After(5 * time.Second):
		t.Fatal("smtp server received no message")
	}
}

func TestSMTPMailer_RequiresRecipients(t *testing.T) {
	m, err := NewSMTPMailer(&config.MailSettings{Host: "localhost", Port: 25}, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	assert.Error(t, m.Send(context.Background(), &contact.Email{}))
}
