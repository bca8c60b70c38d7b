package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/monjauro/app/internal/service"
)

// Legal renders a terms/privacy page. Content is trusted HTML produced
// by the markdown parser, not user input.
func Legal(page *service.LegalPage) templ.Component {
	return layout(page.Title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<article class="legal">
<h1>%s</h1>
<p class="updated">Last updated: %s</p>
%s
</article>
`, esc(page.Title), esc(page.LastUpdated), page.Content)
		return err
	}))
}
