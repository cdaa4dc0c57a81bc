package repository

import (
	"github.com/deppfellow/ladder-stats/internal/server"
)

type Repositories struct {
	User      *UserRepository
	Character *CharacterRepository
	Stat      *StatRepository
}

func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		User:      NewUserRepository(s.DB.Pool),
		Character: NewCharacterRepository(s.DB.Pool),
		Stat:      NewStatRepository(s.DB.Pool),
	}
}
