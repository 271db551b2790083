// Package email sends transactional emails through a provider-agnostic
// EmailSender.
//
// Three senders are available and New picks one from Config.Driver:
//   - postmark: Postmark transactional API (github.com/mrz1836/postmark)
//   - smtp: any SMTP relay via gopkg.in/gomail.v2
//   - dev: writes each message to EMAIL_DEV_DIR for local inspection
//
// Every sender validates SendEmailParams first and wraps delivery failures
// in ErrFailedToSendEmail:
//
//	sender, err := email.New(cfg)
//	if err != nil {
//		return err
//	}
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "user@example.com",
//		Subject:  "Welcome!",
//		BodyHTML: html,
//		BodyText: text,
//		Tag:      "activation",
//	})
//
// HTML bodies are usually templ components rendered with templates.Render.
package email
