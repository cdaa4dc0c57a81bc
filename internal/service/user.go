package service

import (
	"context"
	"errors"

	"github.com/deppfellow/ladder-stats/internal/errs"
	"github.com/deppfellow/ladder-stats/internal/model"
	"github.com/deppfellow/ladder-stats/internal/validation"
	"github.com/rs/zerolog"
)

// UserService owns the user lifecycle: lookups, authentication,
// registration with uniqueness checks, updates and deletion. Every user it
// returns has its password removed.
type UserService struct {
	store UserStore
}

func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

// GetAllUsers returns every user. An empty store is a ResourceNotFound.
func (s *UserService) GetAllUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(users) == 0 {
		return nil, errs.NewNotFoundError("No users found.", true, nil)
	}

	return model.RemovePasswords(users), nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (model.User, error) {
	if !validation.IsValidID(id) {
		return model.User{}, invalidIDError()
	}

	user, found, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.User{}, err
	}

	if !found {
		return model.User{}, errs.NewNotFoundError("No user found with provided id.", true, nil)
	}

	return model.RemovePassword(user), nil
}

// GetUserByUniqueKey looks a user up by one of its fields, e.g.
// {"username": "aanderson"}.
func (s *UserService) GetUserByUniqueKey(ctx context.Context, query model.Query) (model.User, error) {
	key, value, err := singleKey(query, model.User{})
	if err != nil {
		return model.User{}, err
	}

	if key == "id" {
		id, ok := validation.ParseID(value)
		if !ok {
			return model.User{}, invalidIDError()
		}
		return s.GetUserByID(ctx, id)
	}

	if !validation.IsValidStrings(value) {
		return model.User{}, invalidValueError(key)
	}

	user, found, err := s.store.GetByUniqueKey(ctx, key, value)
	if err != nil {
		return model.User{}, err
	}

	if !found {
		return model.User{}, errs.NewNotFoundError("No user found with provided "+key+".", true, nil)
	}

	return model.RemovePassword(user), nil
}

// AuthenticateUser resolves a credential pair. A pair that matches no user
// is an AuthenticationError, not a ResourceNotFound.
func (s *UserService) AuthenticateUser(ctx context.Context, username, password string) (model.User, error) {
	if !validation.IsValidStrings(username, password) {
		return model.User{}, errs.NewBadRequestError("Username and password are required.", true, nil, nil, nil)
	}

	user, found, err := s.store.GetByCredentials(ctx, username, password)
	if err != nil {
		return model.User{}, err
	}

	if !found {
		return model.User{}, errs.NewUnauthorizedError("Bad credentials provided.", true)
	}

	return model.RemovePassword(user), nil
}

// AddNewUser registers a user after checking that both its username and
// its account name are free. The check and the insert are separate store
// calls, so two concurrent registrations can both pass the check.
func (s *UserService) AddNewUser(ctx context.Context, user model.User) (model.User, error) {
	logger := zerolog.Ctx(ctx)

	if !validation.IsValidObject(user, "id") {
		return model.User{}, errs.NewBadRequestError("Invalid property values found in provided user.", true, nil, nil, nil)
	}

	available, err := s.isAvailable(ctx, "username", user.Username)
	if err != nil {
		return model.User{}, err
	}
	if !available {
		logger.Debug().Str("username", user.Username).Msg("username is unavailable")
		return model.User{}, errs.NewConflictError("The provided username is already taken.", true)
	}

	available, err = s.isAvailable(ctx, "accountName", user.AccountName)
	if err != nil {
		return model.User{}, err
	}
	if !available {
		logger.Debug().Str("account_name", user.AccountName).Msg("account name is unavailable")
		return model.User{}, errs.NewConflictError("The provided account name is already taken.", true)
	}

	user.ID = 0
	persisted, err := s.store.Save(ctx, user)
	if err != nil {
		return model.User{}, err
	}

	logger.Info().
		Int("user_id", persisted.ID).
		Str("account_name", persisted.AccountName).
		Msg("registered new user")

	return model.RemovePassword(persisted), nil
}

// UpdateUser replaces the mutable fields of an existing user. Every field,
// id included, must be present. A username change is refused by the store.
func (s *UserService) UpdateUser(ctx context.Context, user model.User) (bool, error) {
	if !validation.IsValidObject(user) {
		return false, errs.NewBadRequestError("Invalid user provided (invalid values found).", true, nil, nil, nil)
	}

	return s.store.Update(ctx, user)
}

// DeleteByID removes an existing user.
func (s *UserService) DeleteByID(ctx context.Context, id int) (bool, error) {
	if !validation.IsValidID(id) {
		return false, invalidIDError()
	}

	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return false, err
	}

	if _, err := s.store.DeleteByID(ctx, user.ID); err != nil {
		return false, err
	}

	zerolog.Ctx(ctx).Info().Int("user_id", user.ID).Msg("deleted user")

	return true, nil
}

// isAvailable reports whether no user holds value in field. Only a
// ResourceNotFound lookup means available. Store failures are logged and
// surface as InternalServerError instead of being read as "available".
func (s *UserService) isAvailable(ctx context.Context, field, value string) (bool, error) {
	_, err := s.GetUserByUniqueKey(ctx, model.Query{field: value})
	if err == nil {
		return false, nil
	}

	if errs.IsNotFound(err) {
		return true, nil
	}

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return false, err
	}

	zerolog.Ctx(ctx).Error().
		Err(err).
		Str("field", field).
		Msg("availability lookup failed")

	return false, errs.NewInternalServerError()
}
