package handler

import (
	"github.com/deppfellow/ladder-stats/internal/errs"
	"github.com/deppfellow/ladder-stats/internal/lib/job"
	"github.com/deppfellow/ladder-stats/internal/middleware"
	"github.com/deppfellow/ladder-stats/internal/model"
	"github.com/deppfellow/ladder-stats/internal/server"
	"github.com/deppfellow/ladder-stats/internal/service"
	"github.com/deppfellow/ladder-stats/internal/validation"
	"github.com/labstack/echo/v4"
)

// protectedUserID is the seeded administrator, which cannot be deleted
// through the API.
const protectedUserID = 1

// ListUsersRequest either lists every user or, when one filter is set,
// looks a single user up by it.
type ListUsersRequest struct {
	ID          string `query:"id"`
	Username    string `query:"username"`
	AccountName string `query:"accountName"`
}

func (r *ListUsersRequest) Validate() error {
	return nil
}

func (r *ListUsersRequest) query() model.Query {
	return filters(map[string]string{
		"id":          r.ID,
		"username":    r.Username,
		"accountName": r.AccountName,
	})
}

type UserIDRequest struct {
	ID string `param:"id"`
}

func (r *UserIDRequest) Validate() error {
	return nil
}

type RegisterRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=32"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
	AccountName string `json:"accountName" validate:"required,max=64"`
}

func (r *RegisterRequest) Validate() error {
	return validation.Struct(r)
}

type UpdateUserRequest struct {
	ID          int    `json:"id" validate:"required,gt=0"`
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
	AccountName string `json:"accountName" validate:"required,max=64"`
}

func (r *UpdateUserRequest) Validate() error {
	return validation.Struct(r)
}

// MutationResponse reports the outcome of an update.
type MutationResponse struct {
	Success bool `json:"success"`
}

type UserHandler struct {
	Handler
	users *service.UserService
	jobs  service.TaskEnqueuer
}

func NewUserHandler(s *server.Server, users *service.UserService, jobs service.TaskEnqueuer) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
		jobs:    jobs,
	}
}

func (h *UserHandler) ListUsers(c echo.Context, req *ListUsersRequest) (any, error) {
	ctx := c.Request().Context()

	if query := req.query(); len(query) > 0 {
		return h.users.GetUserByUniqueKey(ctx, query)
	}

	return h.users.GetAllUsers(ctx)
}

func (h *UserHandler) GetUser(c echo.Context, req *UserIDRequest) (model.User, error) {
	return h.users.GetUserByUniqueKey(c.Request().Context(), model.Query{"id": req.ID})
}

// Register creates the user and queues the admin notification. A failed
// enqueue does not undo the registration.
func (h *UserHandler) Register(c echo.Context, req *RegisterRequest) (model.User, error) {
	user, err := h.users.AddNewUser(c.Request().Context(), model.User{
		Username:    req.Username,
		Password:    req.Password,
		AccountName: req.AccountName,
	})
	if err != nil {
		return model.User{}, err
	}

	logger := middleware.GetLogger(c)

	task, err := job.NewAccountRegisteredTask(user.ID, user.Username, user.AccountName)
	if err != nil {
		logger.Error().Err(err).Int("user_id", user.ID).Msg("failed to build registration task")
		return user, nil
	}

	if _, err := h.jobs.Enqueue(task); err != nil {
		logger.Error().Err(err).Int("user_id", user.ID).Msg("failed to enqueue registration email")
	}

	return user, nil
}

func (h *UserHandler) UpdateUser(c echo.Context, req *UpdateUserRequest) (MutationResponse, error) {
	ok, err := h.users.UpdateUser(c.Request().Context(), model.User{
		ID:          req.ID,
		Username:    req.Username,
		Password:    req.Password,
		AccountName: req.AccountName,
	})
	if err != nil {
		return MutationResponse{}, err
	}

	return MutationResponse{Success: ok}, nil
}

func (h *UserHandler) DeleteUser(c echo.Context, req *UserIDRequest) error {
	id, ok := validation.ParseID(req.ID)
	if ok && id == protectedUserID {
		return errs.NewForbiddenError("The administrator account cannot be deleted.", true)
	}

	_, err := h.users.DeleteByID(c.Request().Context(), id)
	return err
}

// filters keeps the non-empty entries of params as a lookup query.
func filters(params map[string]string) model.Query {
	query := model.Query{}
	for key, value := range params {
		if value != "" {
			query[key] = value
		}
	}
	return query
}
