package window

import (
	"github.com/rohanthewiz/rweb"

	"github.com/rohanthewiz/pageurl/consts"
)

// Request is a Window over an incoming rweb request.
// Browsers never send the fragment, so Hash is always empty.
type Request struct {
	req rweb.ItfRequest
}

// FromRequest wraps the request of an rweb handler context.
func FromRequest(req rweb.ItfRequest) *Request {
	return &Request{req: req}
}

func (w *Request) Pathname() string {
	if p := w.req.Path(); p != "" {
		return p
	}
	return consts.StrSlash
}

func (w *Request) Search() string {
	if q := w.req.Query(); q != "" {
		return consts.StrQuestion + q
	}
	return ""
}

func (w *Request) Hash() string {
	return ""
}

// Origin is the externally visible origin. Proxy forwarding headers win
// over the Host header, which wins over the request line.
func (w *Request) Origin() string {
	scheme := firstNonEmpty(w.req.Header(consts.HeaderForwardedProto), w.req.Scheme(), consts.HTTP)
	host := firstNonEmpty(w.req.Header(consts.HeaderForwardedHost), w.req.Header(consts.HeaderHost), w.req.Host())
	return origin(scheme, host)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
