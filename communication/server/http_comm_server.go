package server

import (
	"errors"
	"net/http"
	"spiel/bot"
	"spiel/communication"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Server exposes one bot over HTTP so another process can seat it.
type Server struct {
	bot    bot.Bot
	name   string
	router *gin.Engine
}

func NewServer(name string, b bot.Bot) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{bot: b, name: name, router: gin.New()}
	s.router.Use(gin.Recovery())
	s.router.GET("/ping", s.handlePing)
	s.router.POST("/step", s.handleStep)
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until the listener fails.
func (s *Server) Start(addr string) error {
	log.Info().Msgf("serving bot %s on %s", s.name, addr)
	return s.router.Run(addr)
}

func (s *Server) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
		"bot":     s.name,
	})
}

func (s *Server) handleStep(c *gin.Context) {
	var req communication.StepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, communication.ErrorResponse{Error: "bad request: " + err.Error()})
		return
	}

	action, err := s.bot.Step(c.Request.Context(), req.State())
	switch {
	case errors.Is(err, bot.ErrNoLegalActions):
		c.JSON(http.StatusUnprocessableEntity, communication.ErrorResponse{Error: err.Error()})
		return
	case err != nil:
		log.Warn().Msgf("bot %s failed on %s: %v", s.name, req.Game, err)
		c.JSON(http.StatusInternalServerError, communication.ErrorResponse{Error: err.Error()})
		return
	}

	log.Debug().Msgf("bot %s played %d for player %d", s.name, action, req.Player)
	c.JSON(http.StatusOK, communication.StepResponse{Action: action})
}
