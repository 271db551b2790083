package views

import (
	"fmt"

	"github.com/a-h/templ"
)

// ActivationEmailParams contains data for rendering the activation email.
type ActivationEmailParams struct {
	Brand     Brand
	FirstName string
	Link      string
}

// ActivationSubject returns the subject line of the activation email.
func ActivationSubject(b Brand) string {
	return fmt.Sprintf("Welcome to %s – Let's Build the Future Together!", b.AppName)
}

// ActivationEmailText is the plain-text part of the activation email.
func ActivationEmailText(p ActivationEmailParams) string {
	return fmt.Sprintf("Hi %s,\n\nClick the link below to activate your account:\n\n%s\n", p.FirstName, p.Link)
}

const emailStyle = `body{margin:0;padding:0;background:linear-gradient(to bottom right,#f2f6fc,#e8f0fe);font-family:'Segoe UI',Tahoma,Geneva,Verdana,sans-serif;color:#333}` +
	`.container{max-width:600px;margin:40px auto;background:#fff;border-radius:10px;box-shadow:0 0 10px rgba(0,0,0,.05)}` +
	`.header{background-color:#002B5B;padding:20px;text-align:center}.header img{max-width:180px}` +
	`.content{padding:30px}h1{color:#002B5B;font-size:24px}p{font-size:16px;line-height:1.6}` +
	`.footer{text-align:center;padding:20px;font-size:13px;color:#777}`

// ActivationEmail is the HTML part of the activation email.
func ActivationEmail(p ActivationEmailParams) templ.Component {
	return component(func(w *writer) {
		w.raw(`<!DOCTYPE html><html><head><meta charset="UTF-8"><title>Welcome to `)
		w.text(p.Brand.AppName)
		w.raw(`</title><style>` + emailStyle + `</style></head><body><div class="container"><div class="header">`)
		if p.Brand.LogoURL != "" {
			w.raw(`<img src="`)
			w.url(p.Brand.LogoURL)
			w.raw(`" alt="`)
			w.text(p.Brand.AppName)
			w.raw(` logo">`)
		}
		w.raw(`</div><div class="content"><h1>Hi `)
		w.text(p.FirstName)
		w.raw(`, Welcome to `)
		w.text(p.Brand.AppName)
		w.raw(`</h1><p>We're excited to have you on board!</p><p>Click the button below to activate your account:</p><p><a href="`)
		w.url(p.Link)
		w.raw(`" style="background-color:#002B5B;color:white;padding:10px 20px;text-decoration:none;border-radius:5px;">Activate Account</a></p><p>– The `)
		w.text(p.Brand.AppName)
		w.raw(` Team</p></div><div class="footer">© `)
		w.text(Capitalize(p.FirstName))
		w.raw(`, `)
		w.text(p.Brand.AppName)
		w.raw(`<br><a href="`)
		w.url(p.Brand.PublicURL)
		w.raw(`" style="color:#002B5B;">Visit our website</a></div></div></body></html>`)
	})
}
