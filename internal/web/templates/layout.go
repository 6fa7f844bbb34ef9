// Package templates renders the site's HTML components.
package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/cursorworkshop/aegistry/internal/web/routepath"
)

// Layout renders the document shell: head metadata, the fixed scroll
// progress indicator, the page body supplied as children, and the progress
// script. The indicator width is the server-computed initial value; the
// script keeps it live once the page is interactive.
func Layout(title string, metaDescription string, lang string, progressWidth string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="%s"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><meta name="description" content="%s"><title>%s</title><link rel="stylesheet" href="%ssite.css"></head><body>`,
			html.EscapeString(lang),
			html.EscapeString(metaDescription),
			html.EscapeString(title),
			routepath.StaticPrefix,
		); err != nil {
			return err
		}
		if err := ProgressBar(progressWidth).Render(ctx, w); err != nil {
			return err
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<script src="%sprogress.js" defer></script></body></html>`, routepath.StaticPrefix)
		return err
	})
}

// ProgressBar renders the fixed top-of-viewport scroll indicator.
func ProgressBar(width string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="scroll-progress" role="presentation"><div class="scroll-progress-bar" id="scroll-progress" style="width: %s"></div></div>`,
			html.EscapeString(width),
		)
		return err
	})
}
