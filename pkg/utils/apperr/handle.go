package apperr

import (
	"context"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controlchart/pkg/domain/model"
)

// Handle logs an error escaping a request or scheduled job
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}
	logger := ctxlog.From(ctx)
	logger.Error("application error", "error", err)
}

// StatusCode maps an error to the HTTP status returned to callers
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case goerr.HasTag(err, model.ErrTagConfig):
		return http.StatusBadRequest
	case goerr.HasTag(err, model.ErrTagFetch), goerr.HasTag(err, model.ErrTagNotify):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
