// Package views renders the HTML pages as templ components.
package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// page is an HTML writer that keeps the first error and drops later writes.
type page struct {
	w   io.Writer
	err error
}

func (p *page) raw(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *page) text(s string) {
	p.raw(templ.EscapeString(s))
}

// attr writes name="value" with the value escaped.
func (p *page) attr(name, value string) {
	p.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// url writes a sanitized URL attribute.
func (p *page) url(name, value string) {
	p.attr(name, string(templ.URL(value)))
}

func (p *page) render(ctx context.Context, c templ.Component) {
	if p.err != nil || c == nil {
		return
	}
	p.err = c.Render(ctx, p.w)
}

// layout wraps body in the shared document shell.
func layout(lang, title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &page{w: w}
		p.raw("<!DOCTYPE html><html")
		p.attr("lang", lang)
		p.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		p.text(title)
		p.raw("</title></head><body><main>")
		p.render(ctx, body)
		p.raw("</main></body></html>")
		return p.err
	})
}

// orDefault returns fallback when s is blank.
func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
