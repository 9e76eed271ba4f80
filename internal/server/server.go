// SPDX-License-Identifier: AGPL-3.0-only

// Package server exposes the daemon's network surface: a WebSocket stream of
// monitor state and a small JSON API for brightness and gamma commands.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/display"
	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/events"
	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/gamma"
)

// ErrRateLimitExceeded is returned when brightness commands exceed the rate
// limit.
var ErrRateLimitExceeded = errors.New("rate limit exceeded")

const (
	// rateLimitPerSecond is the maximum number of brightness commands per
	// second; slider drags send the latest position repeatedly.
	rateLimitPerSecond = 20

	// rateLimitBurst is the maximum burst size for brightness commands.
	rateLimitBurst = 5
)

// Server hosts the HTTP and WebSocket endpoints.
type Server struct {
	manager  *display.Manager
	emitter  *events.Emitter
	hub      *hub
	http     *http.Server
	listener net.Listener
	limiter  *rate.Limiter

	cancelSub func()
	dimmer    func(deviceName string, level int) error
}

// Option is a functional option for configuring a Server.
type Option func(*Server)

// WithGammaDimmer substitutes the gamma-ramp call, for testing.
func WithGammaDimmer(fn func(deviceName string, level int) error) Option {
	return func(s *Server) {
		s.dimmer = fn
	}
}

// New creates a server bound to the given address.
func New(manager *display.Manager, emitter *events.Emitter, addr string, opts ...Option) *Server {
	s := &Server{
		manager: manager,
		emitter: emitter,
		limiter: rate.NewLimiter(rateLimitPerSecond, rateLimitBurst),
		dimmer:  gamma.Dim,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.hub = newHub(func() []byte {
		payload, err := json.Marshal(manager.Snapshot())
		if err != nil {
			log.Error().Err(err).Msg("Failed to marshal monitor snapshot")
			return nil
		}
		return payload
	})

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/ws", func(c *gin.Context) {
		s.hub.handleWebSocket(c.Writer, c.Request)
	})

	api := engine.Group("/api/v1")
	api.GET("/monitors", s.listMonitors)
	api.POST("/brightness", s.setBrightness)
	api.POST("/gamma", s.setGamma)

	s.http = &http.Server{Addr: addr, Handler: engine}
	return s
}

// Start binds the listener, starts the hub and begins forwarding published
// monitor changes to connected clients.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.http.Addr, err)
	}
	s.listener = listener

	go s.hub.run()

	sub, cancel := s.emitter.Subscribe()
	s.cancelSub = cancel
	go func() {
		for infos := range sub {
			payload, err := json.Marshal(infos)
			if err != nil {
				log.Error().Err(err).Msg("Failed to marshal monitor update")
				continue
			}
			s.hub.broadcast <- payload
		}
	}()

	go func() {
		if err := s.http.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	log.Info().Str("addr", listener.Addr().String()).Msg("Server started")
	return nil
}

// Addr returns the bound listen address. Valid after Start; useful when the
// configured port is 0.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.http.Addr
	}
	return s.listener.Addr().String()
}

// Stop shuts the server down, disconnecting all clients.
func (s *Server) Stop(ctx context.Context) error {
	if s.cancelSub != nil {
		s.cancelSub()
	}
	s.hub.stop()
	return s.http.Shutdown(ctx)
}

func (s *Server) listMonitors(c *gin.Context) {
	c.JSON(http.StatusOK, s.manager.Snapshot())
}

type brightnessRequest struct {
	DeviceName string `json:"device_name" binding:"required"`
	Value      *int   `json:"value" binding:"required"`
}

func (s *Server) setBrightness(c *gin.Context) {
	if !s.limiter.Allow() {
		log.Warn().Msg("Rate limit exceeded for brightness command")
		c.JSON(http.StatusTooManyRequests, gin.H{"error": ErrRateLimitExceeded.Error()})
		return
	}

	var req brightnessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if *req.Value < -100 || *req.Value > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "value must be between -100 and 100"})
		return
	}

	if err := s.manager.SetBrightness(req.DeviceName, *req.Value); err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, display.ErrDeviceNotFound):
			status = http.StatusNotFound
		case errors.Is(err, display.ErrOverlayUnavailable):
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusAccepted)
}

type gammaRequest struct {
	DeviceName string `json:"device_name" binding:"required"`
	Level      *int   `json:"level" binding:"required"`
}

func (s *Server) setGamma(c *gin.Context) {
	var req gammaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if *req.Level < -100 || *req.Level > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "level must be between -100 and 0"})
		return
	}

	device, err := s.manager.Lookup(req.DeviceName)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	device.Release()

	if err := s.dimmer(req.DeviceName, *req.Level); err != nil {
		log.Error().Err(err).Str("device", req.DeviceName).Msg("Failed to set gamma ramp")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusOK)
}
