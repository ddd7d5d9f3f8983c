package jira_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/controlchart/pkg/domain/model"
	"github.com/secmon-lab/controlchart/pkg/domain/types"
	"github.com/secmon-lab/controlchart/pkg/service/jira"
)

func kyiv(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Kyiv")
	gt.NoError(t, err)
	return loc
}

func issueJSON(key, created string, histories ...map[string]any) map[string]any {
	return map[string]any{
		"key":       key,
		"fields":    map[string]any{"created": created},
		"changelog": map[string]any{"histories": histories},
	}
}

func history(created, from, to string) map[string]any {
	return map[string]any{
		"created": created,
		"items": []map[string]any{
			{"field": "status", "fromString": from, "toString": to},
		},
	}
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	gt.NoError(t, json.NewEncoder(w).Encode(v))
}

func newClient(t *testing.T, srv *httptest.Server, version string, pageSize int) *jira.Client {
	t.Helper()
	client, err := jira.NewClient(jira.Config{
		BaseURL:    srv.URL + "/",
		Email:      "qa@example.com",
		Token:      "secret",
		APIVersion: version,
		PageSize:   pageSize,
		Timeout:    time.Second,
		Location:   kyiv(t),
	})
	gt.NoError(t, err).Required()
	return client
}

func weekQuery(t *testing.T) model.IssueQuery {
	loc := kyiv(t)
	return model.IssueQuery{
		Project:      "GS1",
		Range:        model.PreviousWorkWeek(time.Date(2026, 10, 14, 12, 0, 0, 0, loc), loc),
		TargetStatus: "Ready For QA",
		WithHistory:  true,
	}
}

func TestNewClient(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     jira.Config
		wantErr bool
	}{
		{"valid", jira.Config{BaseURL: "https://example.atlassian.net", Token: "x"}, false},
		{"v3", jira.Config{BaseURL: "https://example.atlassian.net", Token: "x", APIVersion: "3"}, false},
		{"missing URL", jira.Config{Token: "x"}, true},
		{"relative URL", jira.Config{BaseURL: "example.atlassian.net", Token: "x"}, true},
		{"missing token", jira.Config{BaseURL: "https://example.atlassian.net"}, true},
		{"unknown version", jira.Config{BaseURL: "https://example.atlassian.net", Token: "x", APIVersion: "4"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := jira.NewClient(tc.cfg)
			if tc.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestBuildJQL(t *testing.T) {
	jql := jira.BuildJQL(weekQuery(t))
	gt.Equal(t, jql, `project = GS1 AND status changed to "Ready For QA" DURING ("2026-10-05 00:01", "2026-10-09 23:59")`)

	q := weekQuery(t)
	q.TargetStatus = `Say "QA"`
	gt.S(t, jira.BuildJQL(q)).Contains(`status changed to "Say \"QA\""`)
}

func TestSearchIssuesOffsetPagination(t *testing.T) {
	all := []map[string]any{
		issueJSON("GS1-1", "2026-10-05T09:00:00.000+0300",
			history("2026-10-05T10:00:00.000+0300", "To Do", "In Progress"),
			history("2026-10-05T15:00:00.000+0300", "In Progress", "Ready For QA")),
		issueJSON("GS1-2", "2026-10-09T22:00:00.000+0300",
			history("2026-10-12T01:00:00.000+0300", "In Progress", "Ready For QA")),
		issueJSON("GS1-3", "2026-10-06T09:00:00.000+0300"),
	}

	var requests []*http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r)
		gt.Equal(t, r.URL.Path, "/rest/api/2/search")

		user, pass, ok := r.BasicAuth()
		gt.True(t, ok)
		gt.Equal(t, user, "qa@example.com")
		gt.Equal(t, pass, "secret")

		startAt, _ := strconv.Atoi(r.URL.Query().Get("startAt"))
		end := min(startAt+2, len(all))
		writeJSON(t, w, map[string]any{
			"startAt":    startAt,
			"maxResults": 2,
			"total":      len(all),
			"issues":     all[startAt:end],
		})
	}))
	defer srv.Close()

	client := newClient(t, srv, "2", 2)
	issues, err := client.SearchIssues(context.Background(), weekQuery(t))
	gt.NoError(t, err).Required()

	gt.Equal(t, len(requests), 2)
	q := requests[0].URL.Query()
	gt.Equal(t, q.Get("expand"), "changelog")
	gt.Equal(t, q.Get("maxResults"), "2")
	gt.S(t, q.Get("jql")).Contains(`project = GS1`)
	gt.Equal(t, requests[1].URL.Query().Get("startAt"), "2")

	gt.Equal(t, len(issues), 3)
	gt.Equal(t, issues[0].Key, types.IssueKey("GS1-1"))
	gt.True(t, issues[0].CreatedAt.Equal(time.Date(2026, 10, 5, 9, 0, 0, 0, kyiv(t))))
	gt.Equal(t, len(issues[0].History), 2)
	gt.Equal(t, issues[0].History[1].To, types.StatusLabel("Ready For QA"))
	gt.Equal(t, issues[0].History[1].Field, model.StatusField)
	gt.True(t, issues[0].History[1].OccurredAt.Equal(time.Date(2026, 10, 5, 15, 0, 0, 0, kyiv(t))))
	gt.Equal(t, len(issues[2].History), 0)
	gt.NoError(t, issues[1].Validate())
}

func TestSearchIssuesTokenPagination(t *testing.T) {
	var tokens []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, r.URL.Path, "/rest/api/3/search/jql")
		token := r.URL.Query().Get("nextPageToken")
		tokens = append(tokens, token)

		switch token {
		case "":
			writeJSON(t, w, map[string]any{
				"issues":        []map[string]any{issueJSON("GS1-1", "2026-10-05T09:00:00.000+0300")},
				"nextPageToken": "page-2",
			})
		case "page-2":
			writeJSON(t, w, map[string]any{
				"issues": []map[string]any{issueJSON("GS1-2", "2026-10-05T10:00:00.000+0300")},
				"isLast": true,
			})
		default:
			t.Errorf("unexpected token %q", token)
		}
	}))
	defer srv.Close()

	issues, err := newClient(t, srv, "3", 1).SearchIssues(context.Background(), weekQuery(t))
	gt.NoError(t, err).Required()
	gt.Equal(t, tokens, []string{"", "page-2"})
	gt.Equal(t, len(issues), 2)
	gt.Equal(t, issues[1].Key, types.IssueKey("GS1-2"))
}

func TestSearchIssuesMalformedTimestamp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"total": 1,
			"issues": []map[string]any{
				issueJSON("GS1-9", "yesterday", history("2026-10-05T15:00:00.000+0300", "", "Ready For QA")),
			},
		})
	}))
	defer srv.Close()

	issues, err := newClient(t, srv, "2", 10).SearchIssues(context.Background(), weekQuery(t))
	gt.NoError(t, err).Required()
	gt.Equal(t, len(issues), 1)
	gt.True(t, issues[0].CreatedAt.IsZero())
	gt.Error(t, issues[0].Validate())
}

func TestSearchIssuesErrorStatus(t *testing.T) {
	testCases := []struct {
		name     string
		status   int
		sentinel error
	}{
		{"unauthorized", http.StatusUnauthorized, jira.ErrUnauthorized},
		{"forbidden", http.StatusForbidden, jira.ErrForbidden},
		{"not found", http.StatusNotFound, jira.ErrNotFound},
		{"server error", http.StatusInternalServerError, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			_, err := newClient(t, srv, "2", 10).SearchIssues(context.Background(), weekQuery(t))
			gt.Error(t, err)
			if tc.sentinel != nil {
				gt.True(t, errors.Is(err, tc.sentinel))
			}
		})
	}
}

func TestBearerTokenWithoutEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, r.Header.Get("Authorization"), "Bearer pat-token")
		writeJSON(t, w, map[string]any{"version": "9.12.0", "serverTitle": "On-prem Jira"})
	}))
	defer srv.Close()

	client, err := jira.NewClient(jira.Config{BaseURL: srv.URL, Token: "pat-token"})
	gt.NoError(t, err).Required()

	info, err := client.ServerInfo(context.Background())
	gt.NoError(t, err).Required()
	gt.Equal(t, info.Version, "9.12.0")
}
