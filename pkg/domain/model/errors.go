package model

import "github.com/m-mizutani/goerr/v2"

// Error tags classifying failures of a report run
var (
	ErrTagInvalidIssue = goerr.NewTag("invalid_issue")
	ErrTagFetch        = goerr.NewTag("fetch_failed")
	ErrTagConfig       = goerr.NewTag("invalid_config")
	ErrTagNotify       = goerr.NewTag("notify_failed")
)

// Sentinel errors for domain operations
var (
	ErrInvertedRange = goerr.New("date range start is after end")
	ErrNoProjects    = goerr.New("no projects configured")
)
