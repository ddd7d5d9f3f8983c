package apperr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/controlchart/pkg/domain/model"
	"github.com/secmon-lab/controlchart/pkg/utils/apperr"
)

func TestStatusCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, http.StatusOK},
		{"config", goerr.New("bad timezone", goerr.T(model.ErrTagConfig)), http.StatusBadRequest},
		{"wrapped config", goerr.Wrap(goerr.New("x", goerr.T(model.ErrTagConfig)), "invalid report configuration"), http.StatusBadRequest},
		{"notify", goerr.New("webhook down", goerr.T(model.ErrTagNotify)), http.StatusBadGateway},
		{"fetch", goerr.New("jira down", goerr.T(model.ErrTagFetch)), http.StatusBadGateway},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, apperr.StatusCode(tc.err), tc.expected)
		})
	}
}
