package server

import (
	"net/http"

	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"

	"github.com/rohanthewiz/pageurl"
	"github.com/rohanthewiz/pageurl/window"
)

// CodeMissingParam marks a request without a required query parameter.
const CodeMissingParam = "missing_param"

// missingParamError reports a required query parameter that was not given.
type missingParamError struct {
	Name string
}

func (e missingParamError) Error() string {
	return e.Name + " is required"
}

func (e missingParamError) Code() string {
	return CodeMissingParam
}

// externalURL resolves path against the origin the client used.
func externalURL(ctx rweb.Context, path string) string {
	return window.FromRequest(ctx.Request()).Origin() + path
}

func (s *Server) handleRoot(ctx rweb.Context) error {
	return ctx.WriteJSON(Payload{
		Type: "pageurl",
		Links: []Link{
			{Rel: relSelf, Href: externalURL(ctx, "/api/v1")},
			{
				Rel:      relInspect,
				Template: externalURL(ctx, "/api/v1/inspect") + "{?href}",
				Params:   []string{"href"},
			},
			{
				Rel:      relAddField,
				Template: externalURL(ctx, "/api/v1/add-field") + "{?url,name,value}",
				Params:   []string{"url", "name", "value"},
			},
			{Rel: relHealth, Href: externalURL(ctx, "/api/v1/health")},
		},
	})
}

func (s *Server) handleInspect(ctx rweb.Context) error {
	href := ctx.Request().QueryParam("href")
	if href == "" {
		return s.writeError(ctx, http.StatusBadRequest, missingParamError{Name: "href"})
	}

	rpt := pageurl.New(window.Parse(href)).Report()
	s.logger.WithField("href", href).Debug("Inspected URL")

	res := reportPayload(rpt)
	self := window.FromRequest(ctx.Request())
	res.Links = []Link{{Rel: relSelf, Href: self.Origin() + self.Pathname() + self.Search()}}
	return ctx.WriteJSON(res)
}

func (s *Server) handleAddField(ctx rweb.Context) error {
	req := ctx.Request()
	name := req.QueryParam("name")
	if name == "" {
		return s.writeError(ctx, http.StatusBadRequest, missingParamError{Name: "name"})
	}

	return ctx.WriteJSON(Payload{
		Type: "url",
		URL:  pageurl.AddField(req.QueryParam("url"), name, req.QueryParam("value")),
	})
}

func (s *Server) handleHealth(ctx rweb.Context) error {
	return ctx.WriteJSON(response("ok"))
}

func (s *Server) writeError(ctx rweb.Context, status int, err error) error {
	s.logger.WithError(serr.Wrap(err, "path", ctx.Request().Path())).Warn("Request rejected")
	ctx.SetStatus(status)
	return ctx.WriteJSON(response(err.Error(), err))
}
