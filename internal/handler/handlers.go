package handler

import (
	"github.com/deppfellow/ladder-stats/internal/server"
	"github.com/deppfellow/ladder-stats/internal/service"
)

// Handlers groups every HTTP handler so the router receives one object.
type Handlers struct {
	Health    *HealthHandler
	OpenAPI   *OpenAPIHandler
	Auth      *AuthHandler
	User      *UserHandler
	Character *CharacterHandler
	Stat      *StatHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(s),
		OpenAPI:   NewOpenAPIHandler(s),
		Auth:      NewAuthHandler(s, services.Auth),
		User:      NewUserHandler(s, services.User, services.Job.Client),
		Character: NewCharacterHandler(s, services.Character, services.Ladder),
		Stat:      NewStatHandler(s, services.Stat, services.Ladder),
	}
}
