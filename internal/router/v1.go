package router

import (
	"net/http"

	"github.com/deppfellow/ladder-stats/internal/handler"
	"github.com/deppfellow/ladder-stats/internal/middleware"
	"github.com/labstack/echo/v4"
)

func registerAuthRoutes(g *echo.Group, h *handler.Handlers) {
	auth := g.Group("/auth")
	auth.POST("", handler.Handle(h.Auth.Handler, h.Auth.Login, http.StatusOK))
	auth.DELETE("", handler.HandleNoContent(h.Auth.Handler, h.Auth.Logout, http.StatusNoContent))
}

func registerUserRoutes(g *echo.Group, h *handler.Handlers, auth *middleware.AuthMiddleware) {
	users := g.Group("/users")
	users.POST("", handler.Handle(h.User.Handler, h.User.Register, http.StatusCreated))
	users.GET("", handler.Handle(h.User.Handler, h.User.ListUsers, http.StatusOK), auth.RequireAdmin)
	users.GET("/:id", handler.Handle(h.User.Handler, h.User.GetUser, http.StatusOK), auth.RequireAuth)
	users.PUT("", handler.HandleStrict(h.User.Handler, h.User.UpdateUser, http.StatusOK), auth.RequireAdmin)
	users.DELETE("/:id", handler.HandleNoContent(h.User.Handler, h.User.DeleteUser, http.StatusNoContent), auth.RequireAdmin)
}

func registerCharacterRoutes(g *echo.Group, h *handler.Handlers, auth *middleware.AuthMiddleware) {
	chars := g.Group("/characters")
	chars.GET("", handler.Handle(h.Character.Handler, h.Character.ListCharacters, http.StatusOK))
	chars.GET("/:id", handler.Handle(h.Character.Handler, h.Character.GetCharacters, http.StatusOK))
	chars.POST("", handler.Handle(h.Character.Handler, h.Character.Ingest, http.StatusCreated), auth.RequireAuth)
	chars.POST("/refresh", handler.Handle(h.Character.Handler, h.Character.Refresh, http.StatusAccepted), auth.RequireAuth)
	chars.PUT("", handler.HandleStrict(h.Character.Handler, h.Character.UpdateCharacter, http.StatusOK), auth.RequireAuth)
	chars.DELETE("/:id", handler.HandleNoContent(h.Character.Handler, h.Character.DeleteCharacters, http.StatusNoContent), auth.RequireAdmin)
}

func registerStatRoutes(g *echo.Group, h *handler.Handlers) {
	stats := g.Group("/stats")
	stats.GET("", handler.Handle(h.Stat.Handler, h.Stat.ListStats, http.StatusOK))
	stats.GET("/owner", handler.Handle(h.Stat.Handler, h.Stat.GetOwner, http.StatusOK))
	stats.GET("/history", handler.Handle(h.Stat.Handler, h.Stat.GetHistory, http.StatusOK))
	stats.GET("/history/export", handler.HandleFile(h.Stat.Handler, h.Stat.ExportHistory, http.StatusOK, "stats.csv", "text/csv"))
	stats.GET("/leaderboard", handler.Handle(h.Stat.Handler, h.Stat.Leaderboard, http.StatusOK))
}
