package domain

import (
	"encoding/json"
	"io"

	"github.com/rohanthewiz/serr"
)

// EmailDashboardQueryDict is the wire form of a submitted email query.
type EmailDashboardQueryDict struct {
	ID                string `json:"id"`
	Status            string `json:"status"`
	NumQualifiedUsers int    `json:"num_qualified_users"`
	SubmitterUsername string `json:"submitter_username"`
	CreatedOn         string `json:"created_on"`
}

// EmailDashboardQuery is a query an admin submitted from the email dashboard.
type EmailDashboardQuery struct {
	ID                string
	Status            string
	NumQualifiedUsers int
	SubmitterUsername string
	CreatedOn         string
}

// EmailDashboardQueryFactory builds EmailDashboardQuery records.
type EmailDashboardQueryFactory struct{}

// CreateFromQueryDict builds a query from its wire form.
func (EmailDashboardQueryFactory) CreateFromQueryDict(dict EmailDashboardQueryDict) EmailDashboardQuery {
	return EmailDashboardQuery{
		ID:                dict.ID,
		Status:            dict.Status,
		NumQualifiedUsers: dict.NumQualifiedUsers,
		SubmitterUsername: dict.SubmitterUsername,
		CreatedOn:         dict.CreatedOn,
	}
}

// EmailDashboardQueryResultsBackendDict is one page of recent queries.
type EmailDashboardQueryResultsBackendDict struct {
	Cursor        string                    `json:"cursor"`
	RecentQueries []EmailDashboardQueryDict `json:"recent_queries"`
}

// EmailDashboardQueryResults is one page of recent queries and the cursor
// for the next page.
type EmailDashboardQueryResults struct {
	Cursor        string
	RecentQueries []EmailDashboardQuery
}

// EmailDashboardQueryResultsFactory builds result pages, delegating each
// query to Queries.
type EmailDashboardQueryResultsFactory struct {
	Queries EmailDashboardQueryFactory
}

// CreateFromBackendDict builds a result page from its wire form.
func (f EmailDashboardQueryResultsFactory) CreateFromBackendDict(dict EmailDashboardQueryResultsBackendDict) EmailDashboardQueryResults {
	queries := make([]EmailDashboardQuery, 0, len(dict.RecentQueries))
	for _, qd := range dict.RecentQueries {
		queries = append(queries, f.Queries.CreateFromQueryDict(qd))
	}
	return EmailDashboardQueryResults{Cursor: dict.Cursor, RecentQueries: queries}
}

// DecodeEmailDashboardQueryResults reads a backend JSON payload into a result page.
func (f EmailDashboardQueryResultsFactory) DecodeEmailDashboardQueryResults(r io.Reader) (EmailDashboardQueryResults, error) {
	var dict EmailDashboardQueryResultsBackendDict
	if err := json.NewDecoder(r).Decode(&dict); err != nil {
		return EmailDashboardQueryResults{}, serr.Wrap(err, "Unable to decode email dashboard query results")
	}
	return f.CreateFromBackendDict(dict), nil
}
