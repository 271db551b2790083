package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrymomot/toolgate/internal/views"
	"github.com/dmitrymomot/toolgate/pkg/auth"
	"github.com/dmitrymomot/toolgate/pkg/email"
	"github.com/dmitrymomot/toolgate/pkg/email/templates"
)

type baseURLKey struct{}

func withActivationBaseURL(ctx context.Context, base string) context.Context {
	return context.WithValue(ctx, baseURLKey{}, base)
}

func activationBaseURL(ctx context.Context) string {
	base, _ := ctx.Value(baseURLKey{}).(string)
	return base
}

// EmailNotifier sends activation links by email.
type EmailNotifier struct {
	sender email.EmailSender
	brand  views.Brand
}

// NewEmailNotifier creates an auth.ActivationNotifier backed by sender.
func NewEmailNotifier(sender email.EmailSender, brand views.Brand) *EmailNotifier {
	return &EmailNotifier{sender: sender, brand: brand}
}

// SendActivation renders the activation email and sends it to the user.
// The link is built from ACTIVATION_BASE_URL when the register handler put
// it in ctx, otherwise from the public site URL. Request headers are never
// used, so a forged Host cannot redirect the link.
func (n *EmailNotifier) SendActivation(ctx context.Context, user *auth.User, link auth.ActivationLink) error {
	base := activationBaseURL(ctx)
	if base == "" {
		base = n.brand.PublicURL
	}

	params := views.ActivationEmailParams{
		Brand:     n.brand,
		FirstName: user.FirstName,
		Link:      strings.TrimRight(base, "/") + link.Path(),
	}

	html, err := templates.Render(ctx, views.ActivationEmail(params))
	if err != nil {
		return fmt.Errorf("failed to render activation email: %w", err)
	}

	return n.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   user.Email,
		Subject:  views.ActivationSubject(n.brand),
		BodyHTML: html,
		BodyText: views.ActivationEmailText(params),
		Tag:      "activation",
	})
}
