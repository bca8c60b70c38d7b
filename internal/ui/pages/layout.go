// Package pages holds the server-rendered views. Components are built
// with templ.ComponentFunc; markup stays deliberately plain since visual
// styling lives in the stylesheet, not here.
package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/monjauro/app/internal/ctxkeys"
)

// esc escapes a string for safe HTML interpolation.
func esc(s string) string {
	return templ.EscapeString(s)
}

// appName reads the application name from the sanitized config in ctx.
func appName(ctx context.Context) string {
	cfg := ctxkeys.Config(ctx)
	if cfg == nil {
		return "Monjauro"
	}
	return cfg.AppName
}

// csrfField renders the hidden CSRF token input for a form.
func csrfField(ctx context.Context, w io.Writer) error {
	_, err := fmt.Fprintf(w, `<input type="hidden" name="csrf_token" value="%s">`, esc(ctxkeys.CSRFToken(ctx)))
	return err
}

// layout wraps body in the shared page shell.
func layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		name := appName(ctx)
		_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s · %s</title>
<link rel="stylesheet" href="/assets/css/app.css">
</head>
<body>
<header class="site-header">
<a href="/" class="brand">%s</a>
<nav>
<a href="/app/dashboard">Dashboard</a>
<a href="/app/progress">Progress</a>
<a href="/app/profile">Profile</a>
</nav>
</header>
<main>
`, esc(title), esc(name), esc(name))
		if err != nil {
			return err
		}

		err = body.Render(ctx, w)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(w, `</main>
<footer class="site-footer">
<a href="/legal/terms">Terms</a>
<a href="/legal/privacy">Privacy</a>
</footer>
</body>
</html>
`)
		return err
	})
}

// NotFound is the 404 page.
func NotFound() templ.Component {
	return layout("Not Found", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="empty"><h1>Page not found</h1><p><a href="/">Back to the start</a></p></section>`)
		return err
	}))
}
