package server_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rweb"
	"github.com/sirupsen/logrus"

	"github.com/rohanthewiz/pageurl"
	"github.com/rohanthewiz/pageurl/server"
)

func newTestServer() *server.Server {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return server.New("localhost:", logger)
}

func get(t *testing.T, s *server.Server, target string) (server.Payload, rweb.Response) {
	t.Helper()

	resp := s.Request("GET", target, nil)

	var res server.Payload
	assert.Nil(t, json.Unmarshal(resp.Body(), &res))
	return res, resp
}

// expandQuery fills a "{?a,b}" form-style query template.
func expandQuery(template string, vars map[string]string) string {
	open := strings.Index(template, "{?")
	base, names := template[:open], strings.Split(strings.Trim(template[open:], "{?}"), ",")

	q := url.Values{}
	for _, name := range names {
		if v, ok := vars[name]; ok {
			q.Set(name, v)
		}
	}
	return base + "?" + q.Encode()
}

func TestInspectViaRootTemplate(t *testing.T) {
	s := newTestServer()

	root, resp := get(t, s, "http://inspector.test/api/v1")
	assert.Equal(t, resp.Status(), http.StatusOK)

	self, ok := root.FindLink("self")
	assert.True(t, ok)
	assert.Equal(t, self.Href, "http://inspector.test/api/v1")

	link, ok := root.FindLink("inspect")
	assert.True(t, ok)
	assert.Equal(t, link.Template, "http://inspector.test/api/v1/inspect{?href}")

	inspectURL := expandQuery(link.Template, map[string]string{
		"href": "https://www.oppia.org/topic_editor/abcdefghijkl?v=2&next=a+b#frag",
	})

	res, resp := get(t, s, inspectURL)
	assert.Equal(t, resp.Status(), http.StatusOK)
	assert.Equal(t, res.Type, "url-report")
	assert.NotNil(t, res.Report)

	rpt := *res.Report
	assert.Equal(t, rpt.Location.Hash, "#frag")
	assert.Equal(t, rpt.Location.Search, "?v=2&next=a+b")

	topicID, _ := rpt.Field("topic_id")
	assert.True(t, topicID.Found)
	assert.Equal(t, topicID.Value, "abcdefghijkl")

	version, _ := rpt.Field("exploration_version")
	assert.Equal(t, version.Value, "2")

	found := false
	for _, e := range res.Errors {
		if e.Field == "classroom_name" {
			found = true
			assert.Equal(t, e.Message, "Invalid URL for classroom")
			assert.Equal(t, e.Code, pageurl.CodeInvalidURL)
		}
	}
	assert.True(t, found)
}

func TestInspectRequiresHref(t *testing.T) {
	s := newTestServer()

	res, resp := get(t, s, "/api/v1/inspect")
	assert.Equal(t, resp.Status(), http.StatusBadRequest)
	assert.Equal(t, len(res.Errors), 1)
	assert.Equal(t, res.Errors[0].Message, "href is required")
	assert.Equal(t, res.Errors[0].Code, server.CodeMissingParam)
}

func TestAddField(t *testing.T) {
	s := newTestServer()

	res, resp := get(t, s, "/api/v1/add-field?url=%2Fpage&name=q&value=x%20y")
	assert.Equal(t, resp.Status(), http.StatusOK)
	assert.Equal(t, res.URL, "/page?q=x%20y")

	res, resp = get(t, s, "/api/v1/add-field?url=%2Fpage")
	assert.Equal(t, resp.Status(), http.StatusBadRequest)
	assert.Equal(t, res.Errors[0].Message, "name is required")
}

func TestHealth(t *testing.T) {
	s := newTestServer()

	res, resp := get(t, s, "/api/v1/health")
	assert.Equal(t, resp.Status(), http.StatusOK)
	assert.Equal(t, res.Message, "ok")
	assert.Equal(t, len(res.Errors), 0)
}

func TestPageDescribesOwnURL(t *testing.T) {
	s := newTestServer()

	resp := s.Request("GET", "/embed/exploration/abc?v=3&q=%3Cb%3E", nil)
	assert.Equal(t, resp.Status(), http.StatusOK)
	assert.True(t, strings.HasPrefix(resp.Header("Content-Type"), "text/html"))

	body := string(resp.Body())
	assert.True(t, strings.Contains(body, "Embedded page"))
	assert.True(t, strings.Contains(body, "exploration_version"))
	assert.True(t, strings.Contains(body, "/embed/exploration/abc"))
	assert.True(t, strings.Contains(body, "&lt;b&gt;"))
	assert.False(t, strings.Contains(body, "<b>"))
}
