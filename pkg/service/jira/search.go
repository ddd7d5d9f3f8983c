package jira

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controlchart/pkg/domain/interfaces"
	"github.com/secmon-lab/controlchart/pkg/domain/model"
	"github.com/secmon-lab/controlchart/pkg/domain/types"
)

// jqlTimeLayout is the date format accepted by JQL DURING clauses
const jqlTimeLayout = "2006-01-02 15:04"

const searchFields = "created,status"

var _ interfaces.IssueSearcher = (*Client)(nil)

type searchResponse struct {
	StartAt       int        `json:"startAt"`
	MaxResults    int        `json:"maxResults"`
	Total         int        `json:"total"`
	Issues        []rawIssue `json:"issues"`
	NextPageToken string     `json:"nextPageToken"`
	IsLast        bool       `json:"isLast"`
}

type rawIssue struct {
	Key    string `json:"key"`
	Fields struct {
		Created string `json:"created"`
	} `json:"fields"`
	Changelog *struct {
		Histories []rawHistory `json:"histories"`
	} `json:"changelog"`
}

type rawHistory struct {
	Created string `json:"created"`
	Items   []struct {
		Field      string `json:"field"`
		FromString string `json:"fromString"`
		ToString   string `json:"toString"`
	} `json:"items"`
}

// BuildJQL renders the query for issues of one project that moved to the
// target status during the range
func BuildJQL(query model.IssueQuery) string {
	return fmt.Sprintf(`project = %s AND status changed to "%s" DURING ("%s", "%s")`,
		query.Project,
		escapeJQL(query.TargetStatus.String()),
		query.Range.Start.Format(jqlTimeLayout),
		query.Range.End.Format(jqlTimeLayout),
	)
}

func escapeJQL(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

// SearchIssues implements interfaces.IssueSearcher. All pages are fetched
// before returning.
func (c *Client) SearchIssues(ctx context.Context, query model.IssueQuery) ([]*model.Issue, error) {
	if err := query.Project.Validate(); err != nil {
		return nil, err
	}

	jql := BuildJQL(query)
	logger := ctxlog.From(ctx)
	logger.Debug("Searching issues", "project", query.Project, "jql", jql)

	var raws []rawIssue
	var err error
	if c.apiVersion == "3" {
		raws, err = c.searchByToken(ctx, jql, query.WithHistory)
	} else {
		raws, err = c.searchByOffset(ctx, jql, query.WithHistory)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to search issues", goerr.V("project", query.Project))
	}

	issues := make([]*model.Issue, 0, len(raws))
	for _, raw := range raws {
		issues = append(issues, c.toIssue(ctx, raw))
	}

	logger.Debug("Issues found", "project", query.Project, "count", len(issues))
	return issues, nil
}

func (c *Client) searchParams(jql string, withHistory bool) url.Values {
	params := url.Values{}
	params.Set("jql", jql)
	params.Set("fields", searchFields)
	params.Set("maxResults", strconv.Itoa(c.pageSize))
	if withHistory {
		params.Set("expand", "changelog")
	}
	return params
}

// searchByOffset pages through /search with startAt
func (c *Client) searchByOffset(ctx context.Context, jql string, withHistory bool) ([]rawIssue, error) {
	var issues []rawIssue
	startAt := 0

	for {
		params := c.searchParams(jql, withHistory)
		params.Set("startAt", strconv.Itoa(startAt))

		var resp searchResponse
		if err := c.getJSON(ctx, "/search", params, &resp); err != nil {
			return nil, err
		}
		issues = append(issues, resp.Issues...)

		startAt += len(resp.Issues)
		if len(resp.Issues) == 0 || startAt >= resp.Total {
			return issues, nil
		}
	}
}

// searchByToken pages through /search/jql with nextPageToken
func (c *Client) searchByToken(ctx context.Context, jql string, withHistory bool) ([]rawIssue, error) {
	var issues []rawIssue
	token := ""

	for {
		params := c.searchParams(jql, withHistory)
		if token != "" {
			params.Set("nextPageToken", token)
		}

		var resp searchResponse
		if err := c.getJSON(ctx, "/search/jql", params, &resp); err != nil {
			return nil, err
		}
		issues = append(issues, resp.Issues...)

		if resp.IsLast || resp.NextPageToken == "" {
			return issues, nil
		}
		token = resp.NextPageToken
	}
}

// toIssue converts a search result. Timestamps that cannot be parsed are left
// zero so the issue fails validation and is skipped by the aggregator.
func (c *Client) toIssue(ctx context.Context, raw rawIssue) *model.Issue {
	logger := ctxlog.From(ctx)

	issue := &model.Issue{Key: types.IssueKey(raw.Key)}

	created, err := c.clock.ParseTimestamp(raw.Fields.Created)
	if err != nil {
		logger.Warn("Malformed issue creation time", "issue", raw.Key, "error", err)
	} else {
		issue.CreatedAt = created
	}

	if raw.Changelog == nil {
		return issue
	}

	for _, history := range raw.Changelog.Histories {
		occurredAt, err := c.clock.ParseTimestamp(history.Created)
		if err != nil {
			logger.Warn("Malformed history time", "issue", raw.Key, "error", err)
		}

		for _, item := range history.Items {
			issue.History = append(issue.History, model.StatusChange{
				Field:      item.Field,
				From:       types.StatusLabel(item.FromString),
				To:         types.StatusLabel(item.ToString),
				OccurredAt: occurredAt,
			})
		}
	}

	return issue
}
