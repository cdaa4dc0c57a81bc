package service

import (
	"context"
	"time"

	"github.com/deppfellow/ladder-stats/internal/lib/job"
	"github.com/deppfellow/ladder-stats/internal/lib/ladder"
	"github.com/deppfellow/ladder-stats/internal/lib/leaderboard"
	"github.com/deppfellow/ladder-stats/internal/lib/session"
	"github.com/deppfellow/ladder-stats/internal/repository"
	"github.com/deppfellow/ladder-stats/internal/server"
)

type Services struct {
	Auth      *AuthService
	User      *UserService
	Character *CharacterService
	Stat      *StatService
	Ladder    *LadderService
	Job       *job.JobService
}

// NewService wires every service onto the shared server resources and
// registers the job handlers that call back into them.
func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	userService := NewUserService(repos.User)
	characterService := NewCharacterService(repos.Character)
	statService := NewStatService(repos.Stat)

	ladderClient := ladder.NewClient(
		s.Config.Integration.LadderAPIURL,
		s.Config.Integration.LadderLimit,
		time.Duration(s.Config.Integration.LadderTimeout)*time.Second,
	)
	board := leaderboard.New(s.Redis)
	ladderService := NewLadderService(characterService, statService, ladderClient, board, s.Job.Client)

	sessions := session.NewStore(s.Redis, time.Duration(s.Config.Auth.SessionTTL)*time.Second)
	authService := NewAuthService(userService, sessions, s.Config.Admin)

	s.Job.InitHandlers(s.Config, s.Logger, func(ctx context.Context, accountName, leagueName string) error {
		_, err := ladderService.Ingest(ctx, accountName, leagueName)
		return err
	})

	return &Services{
		Auth:      authService,
		User:      userService,
		Character: characterService,
		Stat:      statService,
		Ladder:    ladderService,
		Job:       s.Job,
	}, nil
}
