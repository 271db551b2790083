// Package views renders the HTML and text the API serves outside JSON: the
// activation email and the activation confirmation page.
package views

import (
	"context"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Brand holds the product details shown in emails and pages.
type Brand struct {
	AppName   string `env:"APP_NAME" envDefault:"Toolgate"`
	PublicURL string `env:"APP_PUBLIC_URL" envDefault:"http://localhost:8080"`
	LogoURL   string `env:"APP_LOGO_URL"`
}

// Capitalize upper-cases the first letter of name and lower-cases the rest.
func Capitalize(name string) string {
	lower := cases.Lower(language.Und).String(strings.TrimSpace(name))
	r, size := utf8.DecodeRuneInString(lower)
	if r == utf8.RuneError {
		return lower
	}
	return cases.Upper(language.Und).String(string(r)) + lower[size:]
}

// writer accumulates the first write error so components can be written as
// a flat sequence of calls.
type writer struct {
	w   io.Writer
	err error
}

func (w *writer) raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

func (w *writer) text(s string) {
	w.raw(templ.EscapeString(s))
}

func (w *writer) url(s string) {
	w.raw(templ.EscapeString(string(templ.URL(s))))
}

func component(fn func(w *writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		fn(w)
		return w.err
	})
}
