package handler

import (
	"github.com/deppfellow/ladder-stats/internal/model"
	"github.com/deppfellow/ladder-stats/internal/server"
	"github.com/deppfellow/ladder-stats/internal/service"
	"github.com/deppfellow/ladder-stats/internal/validation"
	"github.com/labstack/echo/v4"
)

type ListCharactersRequest struct {
	AccountName string `query:"accountName"`
	CharName    string `query:"charName"`
	LeagueName  string `query:"leagueName"`
}

func (r *ListCharactersRequest) Validate() error {
	return nil
}

type OwnerIDRequest struct {
	ID string `param:"id"`
}

func (r *OwnerIDRequest) Validate() error {
	return nil
}

// LadderRequest names the ladder to pull for an account.
type LadderRequest struct {
	AccountName string `json:"accountName" validate:"required,max=64"`
	LeagueName  string `json:"leagueName" validate:"required,max=64"`
}

func (r *LadderRequest) Validate() error {
	return validation.Struct(r)
}

type UpdateCharacterRequest struct {
	ID          int    `json:"id" validate:"required,gt=0"`
	AccountName string `json:"accountName"`
	CharName    string `json:"charName"`
	LeagueName  string `json:"leagueName"`
	Rank        int    `json:"rank" validate:"required,gt=0"`
	CharLevel   int    `json:"charLevel" validate:"required,gt=0,max=100"`
}

func (r *UpdateCharacterRequest) Validate() error {
	return validation.Struct(r)
}

// ScheduledResponse carries the id of a queued background task.
type ScheduledResponse struct {
	TaskID string `json:"taskId"`
}

type CharacterHandler struct {
	Handler
	chars  *service.CharacterService
	ladder *service.LadderService
}

func NewCharacterHandler(s *server.Server, chars *service.CharacterService, ladder *service.LadderService) *CharacterHandler {
	return &CharacterHandler{
		Handler: NewHandler(s),
		chars:   chars,
		ladder:  ladder,
	}
}

func (h *CharacterHandler) ListCharacters(c echo.Context, req *ListCharactersRequest) (any, error) {
	ctx := c.Request().Context()

	query := filters(map[string]string{
		"accountName": req.AccountName,
		"charName":    req.CharName,
		"leagueName":  req.LeagueName,
	})
	if len(query) > 0 {
		return h.chars.GetCharByUniqueKey(ctx, query)
	}

	return h.chars.GetAllChars(ctx)
}

func (h *CharacterHandler) GetCharacters(c echo.Context, req *OwnerIDRequest) ([]model.Character, error) {
	id, _ := validation.ParseID(req.ID)
	return h.chars.GetCharByID(c.Request().Context(), id)
}

// Ingest pulls the ladder synchronously and returns what was stored.
func (h *CharacterHandler) Ingest(c echo.Context, req *LadderRequest) (service.IngestResult, error) {
	return h.ladder.Ingest(c.Request().Context(), req.AccountName, req.LeagueName)
}

// Refresh queues the same work as Ingest on the job server.
func (h *CharacterHandler) Refresh(c echo.Context, req *LadderRequest) (ScheduledResponse, error) {
	taskID, err := h.ladder.ScheduleIngest(c.Request().Context(), req.AccountName, req.LeagueName)
	if err != nil {
		return ScheduledResponse{}, err
	}
	return ScheduledResponse{TaskID: taskID}, nil
}

func (h *CharacterHandler) UpdateCharacter(c echo.Context, req *UpdateCharacterRequest) (MutationResponse, error) {
	ok, err := h.chars.UpdateChar(c.Request().Context(), model.Character{
		ID:          req.ID,
		AccountName: req.AccountName,
		CharName:    req.CharName,
		LeagueName:  req.LeagueName,
		Rank:        req.Rank,
		CharLevel:   req.CharLevel,
	})
	if err != nil {
		return MutationResponse{}, err
	}
	return MutationResponse{Success: ok}, nil
}

func (h *CharacterHandler) DeleteCharacters(c echo.Context, req *OwnerIDRequest) error {
	id, _ := validation.ParseID(req.ID)
	_, err := h.chars.DeleteByID(c.Request().Context(), id)
	return err
}
