package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"github.com/valenxo/Museo-MET/internal/collection"
	"github.com/valenxo/Museo-MET/internal/i18n"
	"github.com/valenxo/Museo-MET/internal/query"
)

// Index lists the departments and renders the search form.
func Index(loc *message.Printer, lang string, departments []collection.Department) templ.Component {
	title := loc.Sprintf(i18n.IndexTitle)
	return layout(lang, title, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := &page{w: w}
		p.raw("<h1>")
		p.text(title)
		p.raw("</h1>")

		p.raw(`<form id="searchForm" method="get" action="/search"><label>`)
		p.text(loc.Sprintf(i18n.SearchDepartment))
		p.raw(`<select id="department"`)
		p.attr("name", query.ParamDepartmentID)
		p.raw(`><option value="">`)
		p.text(loc.Sprintf(i18n.SearchAny))
		p.raw("</option>")
		for _, d := range departments {
			p.raw("<option")
			p.attr("value", strconv.Itoa(d.DepartmentID))
			p.raw(">")
			p.text(d.DisplayName)
			p.raw("</option>")
		}
		p.raw("</select></label><label>")
		p.text(loc.Sprintf(i18n.SearchKeyword))
		p.raw(`<input type="text" id="keyword"`)
		p.attr("name", query.ParamKeyword)
		p.raw("></label><label>")
		p.text(loc.Sprintf(i18n.SearchLocation))
		p.raw(`<input type="text" id="geoLocation"`)
		p.attr("name", query.ParamLocation)
		p.raw(`></label><button type="submit">`)
		p.text(loc.Sprintf(i18n.SearchSubmit))
		p.raw("</button></form>")

		p.raw("<h2>")
		p.text(loc.Sprintf(i18n.IndexDepartments))
		p.raw(`</h2><ul class="departments">`)
		for _, d := range departments {
			p.raw("<li")
			p.attr("data-department-id", strconv.Itoa(d.DepartmentID))
			p.raw(">")
			p.text(d.DisplayName)
			p.raw("</li>")
		}
		p.raw(`</ul><div id="results"></div><div id="pagination"></div>`)
		return p.err
	}))
}

// Object renders the detail page of a single collection object.
func Object(loc *message.Printer, lang string, obj collection.Object) templ.Component {
	unknown := loc.Sprintf(i18n.Unknown)
	title := orDefault(obj.Title(), unknown)
	return layout(lang, title, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := &page{w: w}
		p.raw(`<article class="object"`)
		p.attr("data-object-id", strconv.Itoa(obj.ID()))
		p.raw("><h1>")
		p.text(title)
		p.raw("</h1>")

		if src := orDefault(obj.PrimaryImage(), obj.PrimaryImageSmall()); src != "" {
			p.raw("<img")
			p.url("src", src)
			p.attr("alt", title)
			p.raw(` class="img-primary">`)
		}

		p.raw("<dl>")
		fields := []struct {
			key   string
			value string
		}{
			{i18n.ObjectArtist, obj.ArtistDisplayName()},
			{i18n.ObjectCulture, obj.Culture()},
			{i18n.ObjectDynasty, obj.Dynasty()},
			{i18n.ObjectPeriod, obj.Period()},
			{i18n.ObjectDate, obj.ObjectDate()},
			{i18n.ObjectMedium, obj.Medium()},
			{i18n.ObjectDepartment, obj.Department()},
		}
		for _, f := range fields {
			p.raw("<dt>")
			p.text(loc.Sprintf(f.key))
			p.raw("</dt><dd>")
			p.text(orDefault(f.value, unknown))
			p.raw("</dd>")
		}
		p.raw("</dl>")

		if images := obj.AdditionalImages(); len(images) > 0 {
			p.raw("<h2>")
			p.text(loc.Sprintf(i18n.ObjectImages))
			p.raw(`</h2><div class="additional-images">`)
			for _, src := range images {
				p.raw("<img")
				p.url("src", src)
				p.attr("alt", title)
				p.raw(` class="img-small" loading="lazy">`)
			}
			p.raw("</div>")
		}

		if link := obj.ObjectURL(); link != "" {
			p.raw("<p><a")
			p.url("href", link)
			p.raw(">")
			p.text(loc.Sprintf(i18n.ObjectSource))
			p.raw("</a></p>")
		}
		p.raw(`<p><a href="/">`)
		p.text(loc.Sprintf(i18n.Back))
		p.raw("</a></p></article>")
		return p.err
	}))
}

// Error renders a minimal error page carrying message.
func Error(loc *message.Printer, lang, msg string) templ.Component {
	return layout(lang, msg, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := &page{w: w}
		p.raw(`<section class="error"><p>`)
		p.text(msg)
		p.raw(`</p><p><a href="/">`)
		p.text(loc.Sprintf(i18n.Back))
		p.raw("</a></p></section>")
		return p.err
	}))
}
