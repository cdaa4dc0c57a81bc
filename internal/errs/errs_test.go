package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	cases := []struct {
		name   string
		err    *HTTPError
		status int
		code   string
	}{
		{"bad request", NewBadRequestError("bad", true, nil, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", NewNotFoundError("missing", true, nil), http.StatusNotFound, "NOT_FOUND"},
		{"conflict", NewConflictError("taken", true), http.StatusConflict, CodeResourcePersistence},
		{"unauthorized", NewUnauthorizedError("who", true), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", NewForbiddenError("no", true), http.StatusForbidden, "FORBIDDEN"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, tc.err.Status)
			assert.Equal(t, tc.code, tc.err.Code)
			assert.True(t, IsStatus(tc.err, tc.status))
		})
	}
}

func TestCustomCodes(t *testing.T) {
	code := "USER_ALREADY_EXISTS"
	assert.Equal(t, code, NewBadRequestError("x", false, &code, nil, nil).Code)
	assert.Equal(t, code, NewNotFoundError("x", false, &code).Code)
}

func TestIsNotFoundThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", NewNotFoundError("missing", true, nil))

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsNotFound(NewBadRequestError("bad", true, nil, nil, nil)))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}

func TestWithMessage(t *testing.T) {
	original := NewConflictError("taken", true)
	changed := original.WithMessage("already taken")

	assert.Equal(t, "taken", original.Message)
	assert.Equal(t, "already taken", changed.Error())
	assert.Equal(t, original.Status, changed.Status)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores("Not Found"))
}
