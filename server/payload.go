package server

import (
	"github.com/rohanthewiz/pageurl"
)

// Link relations served from the API root.
const (
	relSelf     = "self"
	relInspect  = "inspect"
	relAddField = "add-field"
	relHealth   = "health"
)

// Link points at a resource. Template links use RFC 6570 form-style
// query expansion, e.g. "/api/v1/inspect{?href}".
type Link struct {
	Rel      string   `json:"rel"`
	Href     string   `json:"href,omitempty"`
	Template string   `json:"template,omitempty"`
	Params   []string `json:"params,omitempty"`
}

// APIError is one error in a payload. Code is set for errors that carry one.
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
}

// Payload is the JSON body of every API response.
type Payload struct {
	Type    string          `json:"type"`
	Message string          `json:"message,omitempty"`
	URL     string          `json:"url,omitempty"`
	Report  *pageurl.Report `json:"report,omitempty"`
	Links   []Link          `json:"links,omitempty"`
	Errors  []APIError      `json:"errors,omitempty"`
}

// FindLink returns the first link with the given relation.
func (p Payload) FindLink(rel string) (Link, bool) {
	for _, l := range p.Links {
		if l.Rel == rel {
			return l, true
		}
	}
	return Link{}, false
}

type errorCoder interface {
	Code() string
}

// newAPIError keeps the error code when err has one.
func newAPIError(err error) APIError {
	e := APIError{Message: err.Error()}
	if errC, ok := err.(errorCoder); ok {
		e.Code = errC.Code()
	}
	return e
}

// reportPayload wraps rpt; every route mismatch is listed as a field error.
func reportPayload(rpt pageurl.Report) Payload {
	res := Payload{Type: "url-report", Report: &rpt}
	for _, fr := range rpt.Fields {
		if fr.Error != "" {
			res.Errors = append(res.Errors, APIError{Message: fr.Error, Code: fr.Code, Field: fr.Name})
		}
	}
	return res
}

func response(msg string, errs ...error) Payload {
	res := Payload{Type: "response", Message: msg}
	for _, err := range errs {
		res.Errors = append(res.Errors, newAPIError(err))
	}
	return res
}
