package email_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/dmitrymomot/toolgate/pkg/email"
)

type MockDialer struct {
	mock.Mock
}

func (m *MockDialer) DialAndSend(msgs ...*gomail.Message) error {
	args := m.Called(msgs)
	return args.Error(0)
}

var validParams = email.SendEmailParams{
	SendTo:   "user@example.com",
	Subject:  "Welcome to Toolgate",
	BodyHTML: "<p>Activate</p>",
	BodyText: "Activate",
	Tag:      "activation",
}

func TestSendEmailParams_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(p *email.SendEmailParams)
		errMsg string
	}{
		{name: "valid", mutate: func(*email.SendEmailParams) {}},
		{name: "text body is optional", mutate: func(p *email.SendEmailParams) { p.BodyText = "" }},
		{name: "empty SendTo", mutate: func(p *email.SendEmailParams) { p.SendTo = "  " }, errMsg: "SendTo is required"},
		{name: "invalid SendTo", mutate: func(p *email.SendEmailParams) { p.SendTo = "user@" }, errMsg: "SendTo must be a valid email address"},
		{name: "empty Subject", mutate: func(p *email.SendEmailParams) { p.Subject = "" }, errMsg: "Subject is required"},
		{name: "empty BodyHTML", mutate: func(p *email.SendEmailParams) { p.BodyHTML = " " }, errMsg: "BodyHTML is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params := validParams
			tt.mutate(&params)
			err := params.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, email.ErrInvalidParams)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	base := email.Config{SenderEmail: "noreply@example.com"}

	t.Run("dev by default", func(t *testing.T) {
		t.Parallel()
		cfg := base
		cfg.DevOutputDir = t.TempDir()
		sender, err := email.New(cfg)
		require.NoError(t, err)
		assert.IsType(t, &email.DevSender{}, sender)
	})

	t.Run("postmark requires tokens", func(t *testing.T) {
		t.Parallel()
		cfg := base
		cfg.Driver = email.DriverPostmark
		_, err := email.New(cfg)
		assert.ErrorIs(t, err, email.ErrInvalidConfig)

		cfg.PostmarkServerToken = "server"
		cfg.PostmarkAccountToken = "account"
		sender, err := email.New(cfg)
		require.NoError(t, err)
		assert.NotNil(t, sender)
	})

	t.Run("smtp requires host", func(t *testing.T) {
		t.Parallel()
		cfg := base
		cfg.Driver = email.DriverSMTP
		cfg.SMTPPort = 587
		_, err := email.New(cfg)
		assert.ErrorIs(t, err, email.ErrInvalidConfig)

		cfg.SMTPHost = "smtp.example.com"
		sender, err := email.New(cfg)
		require.NoError(t, err)
		assert.NotNil(t, sender)
	})

	t.Run("invalid sender address", func(t *testing.T) {
		t.Parallel()
		_, err := email.New(email.Config{Driver: email.DriverSMTP, SMTPHost: "h", SMTPPort: 25, SenderEmail: "nope"})
		assert.ErrorIs(t, err, email.ErrInvalidConfig)
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Parallel()
		cfg := base
		cfg.Driver = "carrier-pigeon"
		_, err := email.New(cfg)
		assert.ErrorIs(t, err, email.ErrUnknownDriver)
	})
}

func TestPostmarkClient_RejectsInvalidParams(t *testing.T) {
	t.Parallel()

	client, err := email.NewPostmarkClient(email.Config{
		PostmarkServerToken:  "server",
		PostmarkAccountToken: "account",
		SenderEmail:          "noreply@example.com",
	})
	require.NoError(t, err)

	err = client.SendEmail(context.Background(), email.SendEmailParams{SendTo: "user@example.com"})
	assert.ErrorIs(t, err, email.ErrInvalidParams)
}

func TestSMTPSender_SendEmail(t *testing.T) {
	t.Parallel()

	cfg := email.Config{
		SenderEmail:  "noreply@example.com",
		SupportEmail: "support@example.com",
		SMTPHost:     "smtp.example.com",
		SMTPPort:     587,
	}

	t.Run("builds message", func(t *testing.T) {
		t.Parallel()
		dialer := new(MockDialer)
		var sent *gomail.Message
		dialer.On("DialAndSend", mock.Anything).Run(func(args mock.Arguments) {
			sent = args.Get(0).([]*gomail.Message)[0]
		}).Return(nil)

		sender, err := email.NewSMTPSender(cfg, email.WithDialer(dialer))
		require.NoError(t, err)
		require.NoError(t, sender.SendEmail(context.Background(), validParams))

		dialer.AssertExpectations(t)
		require.NotNil(t, sent)
		assert.Equal(t, []string{"noreply@example.com"}, sent.GetHeader("From"))
		assert.Equal(t, []string{"user@example.com"}, sent.GetHeader("To"))
		assert.Equal(t, []string{"Welcome to Toolgate"}, sent.GetHeader("Subject"))
		assert.Equal(t, []string{"support@example.com"}, sent.GetHeader("Reply-To"))
	})

	t.Run("delivery failure", func(t *testing.T) {
		t.Parallel()
		dialer := new(MockDialer)
		dialer.On("DialAndSend", mock.Anything).Return(errors.New("535 auth failed"))

		sender, err := email.NewSMTPSender(cfg, email.WithDialer(dialer))
		require.NoError(t, err)

		err = sender.SendEmail(context.Background(), validParams)
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
		assert.Contains(t, err.Error(), "535 auth failed")
	})

	t.Run("invalid params never dial", func(t *testing.T) {
		t.Parallel()
		dialer := new(MockDialer)

		sender, err := email.NewSMTPSender(cfg, email.WithDialer(dialer))
		require.NoError(t, err)

		err = sender.SendEmail(context.Background(), email.SendEmailParams{SendTo: "bad"})
		assert.ErrorIs(t, err, email.ErrInvalidParams)
		dialer.AssertNotCalled(t, "DialAndSend", mock.Anything)
	})
}

func TestDevSender_SendEmail(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sender := email.NewDevSender(filepath.Join(dir, "out"))

	require.NoError(t, sender.SendEmail(context.Background(), validParams))

	entries, err := os.ReadDir(filepath.Join(dir, "out"))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	byExt := make(map[string]string)
	for _, e := range entries {
		assert.Contains(t, e.Name(), "_activation.")
		data, err := os.ReadFile(filepath.Join(dir, "out", e.Name()))
		require.NoError(t, err)
		byExt[filepath.Ext(e.Name())] = string(data)
	}

	assert.Equal(t, "<p>Activate</p>", byExt[".html"])
	assert.Equal(t, "Activate", byExt[".txt"])

	var meta map[string]any
	require.NoError(t, json.Unmarshal([]byte(byExt[".json"]), &meta))
	assert.Equal(t, "user@example.com", meta["send_to"])
	assert.Equal(t, "Welcome to Toolgate", meta["subject"])
}

func TestDevSender_SubjectAsFilename(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	params := validParams
	params.Tag = ""
	params.BodyText = ""
	params.Subject = "Welcome, Ada!"

	require.NoError(t, email.NewDevSender(dir).SendEmail(context.Background(), params))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.True(t, strings.Contains(e.Name(), "_welcome_ada."), e.Name())
	}
}
