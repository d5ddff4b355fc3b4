// Package view renders the preview pages served by the docs tool.
package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/arcanaland/perch-docs/internal/card"
)

// CardList renders each card as a link in catalog order
func CardList(cards []card.Card) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<ul class="cards">`); err != nil {
			return err
		}
		for _, c := range cards {
			_, err := fmt.Fprintf(w,
				`<li class="card" data-icon="%s"><a class="card__link" href="%s"><div class="card__title">%s</div><div class="card__description">%s</div></a></li>`,
				templ.EscapeString(c.Icon),
				templ.EscapeString(c.Href),
				templ.EscapeString(c.Title),
				templ.EscapeString(c.Description),
			)
			if err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul>`)
		return err
	})
}

// Page wraps body in a complete HTML document
func Page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>%s</title></head><body><main>`,
			templ.EscapeString(title))
		if err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, `</main></body></html>`)
		return err
	})
}
