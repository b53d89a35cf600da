package server

import (
	"html"
	"sort"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/rweb"

	"github.com/rohanthewiz/pageurl"
	"github.com/rohanthewiz/pageurl/window"
)

const pageCSS = `
	body { font-family: monospace; margin: 2em; }
	table { border-collapse: collapse; }
	td, th { padding: 2px 12px 2px 0; text-align: left; vertical-align: top; }
	tr.found td { color: #155724; }
	tr.invalid td { color: #721c24; }
	tr.absent td { color: #6c757d; }
	small { color: #6c757d; }
`

// reportPage renders a Report as a whole HTML document.
// Every value comes from the request URL, so all of them are escaped.
type reportPage struct {
	Report pageurl.Report
}

func (p reportPage) Render(b *element.Builder) any {
	rpt := p.Report
	esc := html.EscapeString

	b.Html().R(
		b.Head().R(
			b.Meta("charset", "utf-8"),
			b.Title().T("pageurl "+esc(rpt.Location.Pathname)),
			b.Style().T(pageCSS),
		),
		b.Body().R(
			b.H2().T(esc(rpt.Href)),
			b.Wrap(func() {
				if rpt.Iframed {
					b.P().T("Embedded page")
				}
			}),
			b.Table().R(
				locationRow(b, "pathname", rpt.Location.Pathname),
				locationRow(b, "search", rpt.Location.Search),
				locationRow(b, "hash", rpt.Location.Hash),
				locationRow(b, "origin", rpt.Location.Origin),
			),
			b.H3().T("Fields"),
			b.Table().R(
				b.Wrap(func() {
					for _, fr := range rpt.Fields {
						fieldRow(b, fr)
					}
				}),
			),
			b.Wrap(func() {
				paramsTable(b, rpt.Params)
			}),
		),
	)
	return nil
}

func locationRow(b *element.Builder, name, value string) any {
	return b.Tr().R(
		b.Th().T(name),
		b.Td().T(html.EscapeString(value)),
	)
}

func fieldRow(b *element.Builder, fr pageurl.FieldResult) {
	switch {
	case fr.Found:
		b.TrClass("found").R(
			b.Td().T(fr.Name),
			b.Td().T(html.EscapeString(fr.Value)),
		)
	case fr.Error != "":
		b.TrClass("invalid").R(
			b.Td().T(fr.Name),
			b.Td().R(
				b.T(html.EscapeString(fr.Error)+" "),
				b.Small().T(fr.Code),
			),
		)
	default:
		b.TrClass("absent").R(
			b.Td().T(fr.Name),
			b.Td().T("-"),
		)
	}
}

func paramsTable(b *element.Builder, params map[string]string) {
	if len(params) == 0 {
		return
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.H3().T("Query parameters")
	b.Table().R(
		b.Wrap(func() {
			for _, k := range keys {
				b.Tr().R(
					b.Td().T(html.EscapeString(k)),
					b.Td().T(html.EscapeString(params[k])),
				)
			}
		}),
	)
}

// handlePage describes the URL the page itself was requested at.
func (s *Server) handlePage(ctx rweb.Context) error {
	rpt := pageurl.New(window.FromRequest(ctx.Request())).Report()

	b := element.NewBuilder()
	element.RenderComponents(b, reportPage{Report: rpt})
	return ctx.WriteHTML(b.String())
}
