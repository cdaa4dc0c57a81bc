package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/ladder-stats/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCharacterService() (*CharacterService, *mockCharacterStore) {
	store := &mockCharacterStore{}
	return NewCharacterService(store), store
}

func ladderEntry(rank int, name string, level int) model.LadderEntry {
	return model.LadderEntry{Rank: rank, Character: model.LadderCharacter{Name: name, Level: level}}
}

func TestCharacterService_GetAllChars(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store is not found", func(t *testing.T) {
		svc, store := newCharacterService()
		store.On("GetAll", ctx).Return([]model.Character{}, nil)

		_, err := svc.GetAllChars(ctx)
		requireStatus(t, err, http.StatusNotFound)
	})

	t.Run("returns every character", func(t *testing.T) {
		svc, store := newCharacterService()
		store.On("GetAll", ctx).Return([]model.Character{{ID: 1}, {ID: 2}}, nil)

		chars, err := svc.GetAllChars(ctx)
		require.NoError(t, err)
		assert.Len(t, chars, 2)
	})
}

func TestCharacterService_GetCharByID(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid owner id", func(t *testing.T) {
		svc, store := newCharacterService()

		_, err := svc.GetCharByID(ctx, -1)
		requireStatus(t, err, http.StatusBadRequest)
		assert.Empty(t, store.Calls)
	})

	t.Run("owner without characters", func(t *testing.T) {
		svc, store := newCharacterService()
		store.On("GetByID", ctx, 4).Return([]model.Character{}, nil)

		_, err := svc.GetCharByID(ctx, 4)
		requireStatus(t, err, http.StatusNotFound)
	})
}

func TestCharacterService_GetCharByUniqueKey(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown key", func(t *testing.T) {
		svc, store := newCharacterService()

		_, err := svc.GetCharByUniqueKey(ctx, model.Query{"owner": "x"})
		requireStatus(t, err, http.StatusBadRequest)
		assert.Empty(t, store.Calls)
	})

	t.Run("blank value", func(t *testing.T) {
		svc, store := newCharacterService()

		_, err := svc.GetCharByUniqueKey(ctx, model.Query{"charName": ""})
		requireStatus(t, err, http.StatusBadRequest)
		assert.Empty(t, store.Calls)
	})

	t.Run("malformed number is rejected before the store", func(t *testing.T) {
		for _, query := range []model.Query{{"rank": "abc"}, {"charLevel": "1.5"}, {"rank": "-2"}} {
			svc, store := newCharacterService()

			_, err := svc.GetCharByUniqueKey(ctx, query)
			requireStatus(t, err, http.StatusBadRequest)
			assert.Empty(t, store.Calls)
		}
	})

	t.Run("numeric key reaches the store", func(t *testing.T) {
		svc, store := newCharacterService()
		store.On("GetByUniqueKey", ctx, "rank", "4").Return(model.Character{ID: 12, Rank: 4}, true, nil)

		char, err := svc.GetCharByUniqueKey(ctx, model.Query{"rank": "4"})
		require.NoError(t, err)
		assert.Equal(t, 12, char.ID)
	})

	t.Run("id key returns the first owned character", func(t *testing.T) {
		svc, store := newCharacterService()
		store.On("GetByID", ctx, 3).Return([]model.Character{{ID: 10, CharName: "First"}, {ID: 11}}, nil)

		char, err := svc.GetCharByUniqueKey(ctx, model.Query{"id": "3"})
		require.NoError(t, err)
		assert.Equal(t, "First", char.CharName)
	})

	t.Run("missing character names the key", func(t *testing.T) {
		svc, store := newCharacterService()
		store.On("GetByUniqueKey", ctx, "charName", "Nobody").Return(model.Character{}, false, nil)

		_, err := svc.GetCharByUniqueKey(ctx, model.Query{"charName": "Nobody"})
		requireStatus(t, err, http.StatusNotFound)
		assert.Equal(t, "No character found with provided charName.", err.Error())
	})
}

func TestCharacterService_AddNewChar(t *testing.T) {
	ctx := context.Background()
	entries := []model.LadderEntry{
		ladderEntry(1, "Alpha", 95),
		ladderEntry(2, "Beta", 90),
		ladderEntry(3, "Gamma", 85),
	}
	account := model.Character{AccountName: "Acct"}

	t.Run("unknown account is not found", func(t *testing.T) {
		svc, store := newCharacterService()
		store.On("GetByUniqueKey", ctx, "accountName", "Ghost").Return(model.Character{}, false, nil)

		_, err := svc.AddNewChar(ctx, entries, "Ghost", "Standard")
		requireStatus(t, err, http.StatusNotFound)
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("empty batch persists nothing", func(t *testing.T) {
		svc, store := newCharacterService()
		store.On("GetByUniqueKey", ctx, "accountName", "Acct").Return(account, true, nil)

		char, err := svc.AddNewChar(ctx, nil, "Acct", "Standard")
		require.NoError(t, err)
		assert.Equal(t, model.Character{}, char)
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("saves in order and returns the last", func(t *testing.T) {
		svc, store := newCharacterService()
		store.On("GetByUniqueKey", ctx, "accountName", "Acct").Return(account, true, nil)

		var saved []string
		store.On("Save", ctx, mock.AnythingOfType("model.Character")).
			Run(func(args mock.Arguments) {
				saved = append(saved, args.Get(1).(model.Character).CharName)
			}).
			Return(model.Character{ID: 3, CharName: "Gamma", AccountName: "Acct", LeagueName: "Standard", Rank: 3, CharLevel: 85}, nil)

		char, err := svc.AddNewChar(ctx, entries, "Acct", "Standard")
		require.NoError(t, err)
		assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, saved)
		assert.Equal(t, "Gamma", char.CharName)
	})

	t.Run("failure stops the batch and keeps earlier saves", func(t *testing.T) {
		svc, store := newCharacterService()
		store.On("GetByUniqueKey", ctx, "accountName", "Acct").Return(account, true, nil)

		boom := errors.New("insert failed")
		store.On("Save", ctx, model.NewCharacter(entries[0], "Acct", "Standard")).Return(model.Character{ID: 1}, nil)
		store.On("Save", ctx, model.NewCharacter(entries[1], "Acct", "Standard")).Return(model.Character{}, boom)

		_, err := svc.AddNewChar(ctx, entries, "Acct", "Standard")
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "entry 2 of 3")
		store.AssertNumberOfCalls(t, "Save", 2)
	})
}

func TestCharacterService_UpdateChar(t *testing.T) {
	ctx := context.Background()

	t.Run("rank must be positive", func(t *testing.T) {
		svc, store := newCharacterService()

		_, err := svc.UpdateChar(ctx, model.Character{ID: 1, Rank: 0, CharLevel: 80})
		requireStatus(t, err, http.StatusBadRequest)
		assert.Empty(t, store.Calls)
	})

	t.Run("names are not required", func(t *testing.T) {
		svc, store := newCharacterService()
		char := model.Character{ID: 1, Rank: 4, CharLevel: 80}
		store.On("Update", ctx, char).Return(true, nil)

		ok, err := svc.UpdateChar(ctx, char)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestCharacterService_DeleteByID(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid owner id", func(t *testing.T) {
		svc, store := newCharacterService()

		_, err := svc.DeleteByID(ctx, 0)
		requireStatus(t, err, http.StatusBadRequest)
		assert.Empty(t, store.Calls)
	})

	t.Run("deletes once", func(t *testing.T) {
		svc, store := newCharacterService()
		store.On("DeleteByID", ctx, 2).Return(true, nil)

		ok, err := svc.DeleteByID(ctx, 2)
		require.NoError(t, err)
		assert.True(t, ok)
		store.AssertNumberOfCalls(t, "DeleteByID", 1)
	})
}
