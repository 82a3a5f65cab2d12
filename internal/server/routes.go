package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/danmuck/rowctl/internal/auth"
	"github.com/danmuck/rowctl/internal/capture"
	"github.com/danmuck/rowctl/internal/ingest"
	"github.com/danmuck/rowctl/internal/observability"
	"github.com/danmuck/rowctl/internal/protocol"
	"github.com/danmuck/rowctl/internal/protocol/ident"
	"github.com/danmuck/rowctl/internal/protocol/rowing"
	"github.com/danmuck/rowctl/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NotificationRequest is the body of the decode and notification routes.
type NotificationRequest struct {
	Characteristic string `json:"characteristic" binding:"required"`
	Payload        string `json:"payload"`
	User           string `json:"user,omitempty"`
}

// bodyOverhead covers the JSON keys, the characteristic and the user around
// the hex payload.
const bodyOverhead = 1024

type CharacteristicInfo struct {
	Name        string    `json:"name"`
	UUID        uuid.UUID `json:"uuid"`
	Service     string    `json:"service"`
	Index       uint8     `json:"index"`
	Implemented bool      `json:"implemented"`
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.Appeared).String(),
			"service": s.Name,
			"version": "0.1.0",
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/v1")
	v1.GET("/characteristics", s.listCharacteristics)
	v1.GET("/enumerations", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"enumerations": rowing.Enumerations()})
	})
	v1.POST("/decode", s.decode)

	guarded := v1.Group("")
	if s.authToken != "" {
		guarded.Use(auth.Middleware(auth.StaticToken{Token: s.authToken}))
	}
	guarded.POST("/notifications", s.notify)
	guarded.GET("/workouts/:user", s.listWorkouts)
	guarded.GET("/workouts/:user/:id/summary", s.workoutSummary)
}

func (s *Server) listCharacteristics(c *gin.Context) {
	all := ident.All()
	out := make([]CharacteristicInfo, 0, len(all))
	for _, ch := range all {
		out = append(out, CharacteristicInfo{
			Name:        ch.String(),
			UUID:        ch.UUID(),
			Service:     ch.Service.String(),
			Index:       ch.Index,
			Implemented: s.registry.Implemented(ch),
		})
	}
	c.JSON(http.StatusOK, gin.H{"characteristics": out})
}

// bindNotification parses the body shared by decode and notify. It writes
// the error response itself and reports whether the handler should go on.
func (s *Server) bindNotification(c *gin.Context) (ingest.Notification, bool) {
	// Hex with separators needs up to three characters per byte.
	limit := int64(3*s.MaxPayload + bodyOverhead)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	var req NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "body too large", "max": limit})
			return ingest.Notification{}, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return ingest.Notification{}, false
	}
	if req.User != "" {
		if err := store.ValidateUser(req.User); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return ingest.Notification{}, false
		}
	}
	id, err := ident.ParseIdentifier(req.Characteristic)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return ingest.Notification{}, false
	}
	payload, err := capture.ParsePayload(req.Payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return ingest.Notification{}, false
	}
	if len(payload) > s.MaxPayload {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "payload too large", "max": s.MaxPayload})
		return ingest.Notification{}, false
	}
	if ch, ok := ident.Lookup(id); ok {
		c.Set(observability.ContextCharacteristic, ch.String())
	}
	return ingest.Notification{ID: id, Payload: payload, Source: req.User}, true
}

func (s *Server) decode(c *gin.Context) {
	n, ok := s.bindNotification(c)
	if !ok {
		return
	}
	rec, err := s.registry.Decode(n.ID, n.Payload)
	observability.RecordDecode(characteristicLabel(n.ID), protocol.Kind(err), len(n.Payload))
	if err != nil {
		respondDecodeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"characteristic": rec.Characteristic().String(),
		"record":         rec,
	})
}

func (s *Server) notify(c *gin.Context) {
	if s.pipeline == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ingest disabled"})
		return
	}
	n, ok := s.bindNotification(c)
	if !ok {
		return
	}
	err := s.pipeline.Handle(c.Request.Context(), n)
	var de *protocol.DecodeError
	switch {
	case err == nil:
		c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
	case errors.As(err, &de):
		respondDecodeError(c, err)
	default:
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}

func (s *Server) listWorkouts(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage disabled"})
		return
	}
	ids, err := s.store.ListWorkouts(c.Param("user"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	c.JSON(http.StatusOK, gin.H{"workouts": ids})
}

func (s *Server) workoutSummary(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage disabled"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workout id"})
		return
	}
	sum, err := s.store.LoadSummary(c.Param("user"), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func respondDecodeError(c *gin.Context, err error) {
	body := gin.H{"error": err.Error(), "kind": protocol.Kind(err)}
	var fe *rowing.FieldError
	if errors.As(err, &fe) {
		body["field"] = fe.Field
		body["offset"] = fe.Offset
	}
	_ = c.Error(err)
	c.JSON(http.StatusUnprocessableEntity, body)
}

func respondStoreError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrInvalidUser):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func characteristicLabel(id uuid.UUID) string {
	ch, _ := ident.Lookup(id)
	return ch.String()
}
