package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/deppfellow/ladder-stats/internal/errs"
	"github.com/deppfellow/ladder-stats/internal/model"
	"github.com/deppfellow/ladder-stats/internal/validation"
	"github.com/rs/zerolog"
)

// integerCharKeys are searchable fields holding positive whole numbers.
var integerCharKeys = map[string]bool{"rank": true, "charLevel": true}

// CharacterService owns character lookups, batch ingestion of ladder
// entries, rank/level updates and per-owner deletion.
type CharacterService struct {
	store CharacterStore
}

func NewCharacterService(store CharacterStore) *CharacterService {
	return &CharacterService{store: store}
}

func (s *CharacterService) GetAllChars(ctx context.Context) ([]model.Character, error) {
	chars, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(chars) == 0 {
		return nil, errs.NewNotFoundError("No characters found.", true, nil)
	}

	return chars, nil
}

// GetCharByID returns the characters owned by the user with ownerID.
func (s *CharacterService) GetCharByID(ctx context.Context, ownerID int) ([]model.Character, error) {
	if !validation.IsValidID(ownerID) {
		return nil, invalidIDError()
	}

	chars, err := s.store.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if len(chars) == 0 {
		return nil, errs.NewNotFoundError("No characters found for provided id.", true, nil)
	}

	return chars, nil
}

// GetCharByUniqueKey looks a character up by one of its fields. An "id"
// key is read as an owner id and returns that owner's first character.
func (s *CharacterService) GetCharByUniqueKey(ctx context.Context, query model.Query) (model.Character, error) {
	key, value, err := singleKey(query, model.Character{})
	if err != nil {
		return model.Character{}, err
	}

	if key == "id" {
		id, ok := validation.ParseID(value)
		if !ok {
			return model.Character{}, invalidIDError()
		}
		chars, err := s.GetCharByID(ctx, id)
		if err != nil {
			return model.Character{}, err
		}
		return chars[0], nil
	}

	if integerCharKeys[key] {
		n, ok := validation.ParseID(value)
		if !ok {
			return model.Character{}, invalidNumberError(key)
		}
		value = strconv.Itoa(n)
	} else if !validation.IsValidStrings(value) {
		return model.Character{}, invalidValueError(key)
	}

	char, found, err := s.store.GetByUniqueKey(ctx, key, value)
	if err != nil {
		return model.Character{}, err
	}

	if !found {
		return model.Character{}, errs.NewNotFoundError("No character found with provided "+key+".", true, nil)
	}

	return char, nil
}

// AddNewChar persists one character per ladder entry for accountName in
// leagueName and returns the last one persisted.
//
// The owning account must already exist. Entries are saved one at a time
// in input order with no surrounding transaction: when entry k fails,
// entries before it stay persisted and the store error is returned.
func (s *CharacterService) AddNewChar(ctx context.Context, entries []model.LadderEntry, accountName, leagueName string) (model.Character, error) {
	logger := zerolog.Ctx(ctx)

	if _, err := s.GetCharByUniqueKey(ctx, model.Query{"accountName": accountName}); err != nil {
		return model.Character{}, err
	}

	var last model.Character
	for i, entry := range entries {
		persisted, err := s.store.Save(ctx, model.NewCharacter(entry, accountName, leagueName))
		if err != nil {
			logger.Error().
				Err(err).
				Str("account_name", accountName).
				Int("entry", i+1).
				Int("batch_size", len(entries)).
				Msg("ladder batch partially applied")
			return model.Character{}, fmt.Errorf("persisting ladder entry %d of %d: %w", i+1, len(entries), err)
		}
		last = persisted
	}

	logger.Info().
		Str("account_name", accountName).
		Str("league_name", leagueName).
		Int("characters", len(entries)).
		Msg("persisted ladder batch")

	return last, nil
}

// UpdateChar changes rank and level of an existing character. id, rank
// and charLevel must be positive; the remaining fields are ignored.
func (s *CharacterService) UpdateChar(ctx context.Context, character model.Character) (bool, error) {
	if !validation.IsValidObject(character, "accountName", "charName", "leagueName") {
		return false, errs.NewBadRequestError("Invalid character provided (invalid values found).", true, nil, nil, nil)
	}

	return s.store.Update(ctx, character)
}

// DeleteByID removes every character owned by ownerID.
func (s *CharacterService) DeleteByID(ctx context.Context, ownerID int) (bool, error) {
	if !validation.IsValidID(ownerID) {
		return false, invalidIDError()
	}

	return s.store.DeleteByID(ctx, ownerID)
}
