package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/ladder-stats/internal/errs"
	"github.com/deppfellow/ladder-stats/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errs.IsStatus(err, status), "expected status %d, got %v", status, err)
}

func newUserService() (*UserService, *mockUserStore) {
	store := &mockUserStore{}
	return NewUserService(store), store
}

var storedUser = model.User{ID: 7, Username: "aanderson", Password: "hunter22", AccountName: "Aanderson_PoE"}

func TestUserService_GetAllUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("redacts every user", func(t *testing.T) {
		svc, store := newUserService()
		store.On("GetAll", ctx).Return([]model.User{storedUser, {ID: 8, Username: "b", Password: "p", AccountName: "B"}}, nil)

		users, err := svc.GetAllUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		for _, u := range users {
			assert.Empty(t, u.Password)
		}
	})

	t.Run("empty store is not found", func(t *testing.T) {
		svc, store := newUserService()
		store.On("GetAll", ctx).Return([]model.User{}, nil)

		_, err := svc.GetAllUsers(ctx)
		requireStatus(t, err, http.StatusNotFound)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		svc, store := newUserService()
		boom := errors.New("connection reset")
		store.On("GetAll", ctx).Return(nil, boom)

		_, err := svc.GetAllUsers(ctx)
		assert.ErrorIs(t, err, boom)
	})
}

func TestUserService_GetUserByID(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid ids never reach the store", func(t *testing.T) {
		svc, store := newUserService()

		for _, id := range []int{0, -3} {
			_, err := svc.GetUserByID(ctx, id)
			requireStatus(t, err, http.StatusBadRequest)
		}
		store.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("missing user is not found", func(t *testing.T) {
		svc, store := newUserService()
		store.On("GetByID", ctx, 99).Return(model.User{}, false, nil)

		_, err := svc.GetUserByID(ctx, 99)
		requireStatus(t, err, http.StatusNotFound)
	})

	t.Run("found user is redacted", func(t *testing.T) {
		svc, store := newUserService()
		store.On("GetByID", ctx, 7).Return(storedUser, true, nil)

		user, err := svc.GetUserByID(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, 7, user.ID)
		assert.Equal(t, "aanderson", user.Username)
		assert.Empty(t, user.Password)
	})
}

func TestUserService_GetUserByUniqueKey(t *testing.T) {
	ctx := context.Background()

	badQueries := []struct {
		name  string
		query model.Query
	}{
		{"no keys", model.Query{}},
		{"two keys", model.Query{"username": "a", "accountName": "b"}},
		{"unknown key", model.Query{"email": "a@b.c"}},
		{"blank value", model.Query{"username": "   "}},
		{"non numeric id", model.Query{"id": "abc"}},
		{"negative id", model.Query{"id": "-1"}},
	}

	for _, tc := range badQueries {
		t.Run(tc.name, func(t *testing.T) {
			svc, store := newUserService()

			_, err := svc.GetUserByUniqueKey(ctx, tc.query)
			requireStatus(t, err, http.StatusBadRequest)
			assert.Empty(t, store.Calls)
		})
	}

	t.Run("id key is looked up by id", func(t *testing.T) {
		svc, store := newUserService()
		store.On("GetByID", ctx, 7).Return(storedUser, true, nil)

		user, err := svc.GetUserByUniqueKey(ctx, model.Query{"id": "7"})
		require.NoError(t, err)
		assert.Equal(t, 7, user.ID)
		store.AssertNotCalled(t, "GetByUniqueKey", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("field lookup is redacted", func(t *testing.T) {
		svc, store := newUserService()
		store.On("GetByUniqueKey", ctx, "accountName", "Aanderson_PoE").Return(storedUser, true, nil)

		user, err := svc.GetUserByUniqueKey(ctx, model.Query{"accountName": "Aanderson_PoE"})
		require.NoError(t, err)
		assert.Empty(t, user.Password)
	})

	t.Run("missing user names the key", func(t *testing.T) {
		svc, store := newUserService()
		store.On("GetByUniqueKey", ctx, "username", "ghost").Return(model.User{}, false, nil)

		_, err := svc.GetUserByUniqueKey(ctx, model.Query{"username": "ghost"})
		requireStatus(t, err, http.StatusNotFound)
		assert.Equal(t, "No user found with provided username.", err.Error())
	})
}

func TestUserService_AuthenticateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("blank credentials", func(t *testing.T) {
		svc, store := newUserService()

		_, err := svc.AuthenticateUser(ctx, "aanderson", "")
		requireStatus(t, err, http.StatusBadRequest)
		assert.Empty(t, store.Calls)
	})

	t.Run("unknown pair is unauthorized", func(t *testing.T) {
		svc, store := newUserService()
		store.On("GetByCredentials", ctx, "aanderson", "wrong").Return(model.User{}, false, nil)

		_, err := svc.AuthenticateUser(ctx, "aanderson", "wrong")
		requireStatus(t, err, http.StatusUnauthorized)
	})

	t.Run("matching pair is redacted", func(t *testing.T) {
		svc, store := newUserService()
		store.On("GetByCredentials", ctx, "aanderson", "hunter22").Return(storedUser, true, nil)

		user, err := svc.AuthenticateUser(ctx, "aanderson", "hunter22")
		require.NoError(t, err)
		assert.Equal(t, 7, user.ID)
		assert.Empty(t, user.Password)
	})
}

func TestUserService_AddNewUser(t *testing.T) {
	ctx := context.Background()
	candidate := model.User{Username: "newbie", Password: "secret1", AccountName: "Newbie_PoE"}

	t.Run("incomplete user is rejected before the store", func(t *testing.T) {
		svc, store := newUserService()

		_, err := svc.AddNewUser(ctx, model.User{Username: "newbie", AccountName: "Newbie_PoE"})
		requireStatus(t, err, http.StatusBadRequest)
		assert.Empty(t, store.Calls)
	})

	t.Run("taken username conflicts", func(t *testing.T) {
		svc, store := newUserService()
		store.On("GetByUniqueKey", ctx, "username", "newbie").Return(storedUser, true, nil)

		_, err := svc.AddNewUser(ctx, candidate)
		requireStatus(t, err, http.StatusConflict)
		assert.Equal(t, "The provided username is already taken.", err.Error())
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("taken account name conflicts", func(t *testing.T) {
		svc, store := newUserService()
		store.On("GetByUniqueKey", ctx, "username", "newbie").Return(model.User{}, false, nil)
		store.On("GetByUniqueKey", ctx, "accountName", "Newbie_PoE").Return(storedUser, true, nil)

		_, err := svc.AddNewUser(ctx, candidate)
		requireStatus(t, err, http.StatusConflict)
		assert.Equal(t, "The provided account name is already taken.", err.Error())
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("failed availability lookup is not read as available", func(t *testing.T) {
		svc, store := newUserService()
		store.On("GetByUniqueKey", ctx, "username", "newbie").Return(model.User{}, false, errors.New("timeout"))

		_, err := svc.AddNewUser(ctx, candidate)
		requireStatus(t, err, http.StatusInternalServerError)
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("free user is saved and redacted", func(t *testing.T) {
		svc, store := newUserService()
		store.On("GetByUniqueKey", ctx, "username", "newbie").Return(model.User{}, false, nil)
		store.On("GetByUniqueKey", ctx, "accountName", "Newbie_PoE").Return(model.User{}, false, nil)

		saved := candidate
		saved.ID = 12
		store.On("Save", ctx, candidate).Return(saved, nil)

		user, err := svc.AddNewUser(ctx, candidate)
		require.NoError(t, err)
		assert.Equal(t, 12, user.ID)
		assert.Empty(t, user.Password)
		store.AssertNumberOfCalls(t, "Save", 1)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("every field is required", func(t *testing.T) {
		svc, store := newUserService()

		_, err := svc.UpdateUser(ctx, model.User{Username: "a", Password: "b", AccountName: "c"})
		requireStatus(t, err, http.StatusBadRequest)
		assert.Empty(t, store.Calls)
	})

	t.Run("store outcome is returned", func(t *testing.T) {
		svc, store := newUserService()
		store.On("Update", ctx, storedUser).Return(true, nil)

		ok, err := svc.UpdateUser(ctx, storedUser)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestUserService_DeleteByID(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		svc, store := newUserService()

		_, err := svc.DeleteByID(ctx, 0)
		requireStatus(t, err, http.StatusBadRequest)
		assert.Empty(t, store.Calls)
	})

	t.Run("missing user is not deleted", func(t *testing.T) {
		svc, store := newUserService()
		store.On("GetByID", ctx, 5).Return(model.User{}, false, nil)

		_, err := svc.DeleteByID(ctx, 5)
		requireStatus(t, err, http.StatusNotFound)
		store.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})

	t.Run("existing user is deleted once", func(t *testing.T) {
		svc, store := newUserService()
		store.On("GetByID", ctx, 7).Return(storedUser, true, nil)
		store.On("DeleteByID", ctx, 7).Return(true, nil)

		ok, err := svc.DeleteByID(ctx, 7)
		require.NoError(t, err)
		assert.True(t, ok)
		store.AssertNumberOfCalls(t, "DeleteByID", 1)
	})
}
