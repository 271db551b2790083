package views

import "github.com/a-h/templ"

// ActivatedPage confirms a successful account activation.
func ActivatedPage(b Brand) templ.Component {
	return component(func(w *writer) {
		w.raw(`<!DOCTYPE html><html><head><meta charset="UTF-8"><title>Account Activated</title><style>`)
		w.raw(`body{font-family:'Segoe UI',sans-serif;text-align:center;background:#f5f7fb;padding:60px}`)
		w.raw(`.box{background:white;display:inline-block;padding:40px 30px;border-radius:8px;box-shadow:0 0 15px rgba(0,0,0,.1)}`)
		w.raw(`h1{color:#2ecc71}a{color:#002B5B;text-decoration:none;font-weight:bold}`)
		w.raw(`</style></head><body><div class="box"><h1>Your account has been successfully activated!</h1><p>You can now return to <a href="`)
		w.url(b.PublicURL)
		w.raw(`">`)
		w.text(b.AppName)
		w.raw(`</a> and log in.</p></div></body></html>`)
	})
}
