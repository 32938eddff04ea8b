package handlers

import (
	"net/http"
	"time"

	requestRepo "zora/database/repository/request"
	"zora/models"
	"zora/services/advisory"
	"zora/services/trip"
	"zora/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func chatMessage(sender, text string) models.ChatMessage {
	return models.ChatMessage{Sender: sender, Text: text, Timestamp: time.Now()}
}

// AdvisoryHandler fronts the AI advisory collaborator. Every endpoint
// degrades to an empty suggestion instead of surfacing an advisory failure.
type AdvisoryHandler struct {
	Svc     advisory.Service
	TripSvc trip.Service
	Repo    requestRepo.RequestRepository
	Logger  *zap.Logger
}

func NewAdvisoryHandler(svc advisory.Service, tripSvc trip.Service, repo requestRepo.RequestRepository, logger *zap.Logger) *AdvisoryHandler {
	return &AdvisoryHandler{Svc: svc, TripSvc: tripSvc, Repo: repo, Logger: logger}
}

// Itinerary generates and stores an AI travel guide for the request.
func (h *AdvisoryHandler) Itinerary(c *gin.Context) {
	ctx := c.Request.Context()
	req, err := h.Repo.GetByID(ctx, c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "request not found", err.Error())
		return
	}

	plan, err := h.Svc.GenerateItinerary(ctx, req)
	if err != nil {
		h.Logger.Warn("Itinerary generation failed", zap.String("request", req.ID), zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"itinerary": nil})
		return
	}

	if _, err := h.TripSvc.AttachItinerary(ctx, req.ID, plan); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to store itinerary", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"itinerary": plan})
}

// RadarAlert scans a request for operational risks.
func (h *AdvisoryHandler) RadarAlert(c *gin.Context) {
	ctx := c.Request.Context()
	req, err := h.Repo.GetByID(ctx, c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "request not found", err.Error())
		return
	}

	alert, err := h.Svc.RadarAlert(ctx, req)
	if err != nil {
		h.Logger.Warn("Radar alert failed", zap.String("request", req.ID), zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"alert": nil})
		return
	}
	if alert != nil {
		if _, err := h.TripSvc.AttachRadarAlert(ctx, req.ID, alert); err != nil {
			h.Logger.Warn("Failed to store radar alert", zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, gin.H{"alert": alert})
}

// OfferAdvice gives the calling partner bidding advice for a request.
func (h *AdvisoryHandler) OfferAdvice(c *gin.Context) {
	ctx := c.Request.Context()
	req, err := h.Repo.GetByID(ctx, c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "request not found", err.Error())
		return
	}

	advice, err := h.Svc.OfferAdvice(ctx, req)
	if err != nil {
		h.Logger.Warn("Offer advice failed", zap.String("request", req.ID), zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"advice": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"advice": advice})
}

// ExpertChat relays a client message to the expert advisor and appends both
// turns to the request's expert transcript.
func (h *AdvisoryHandler) ExpertChat(c *gin.Context) {
	var input struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}

	ctx := c.Request.Context()
	requestID := c.Param("id")

	reply, err := h.Svc.ExpertChat(ctx, requestID, input.Message)
	if err != nil {
		h.Logger.Warn("Expert chat failed", zap.String("request", requestID), zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"reply": nil})
		return
	}

	if _, err := h.TripSvc.AddChatMessage(ctx, requestID, trip.ThreadExpert,
		chatMessage("Client", input.Message)); err != nil {
		h.Logger.Warn("Failed to store expert chat turn", zap.Error(err))
	}
	if _, err := h.TripSvc.AddChatMessage(ctx, requestID, trip.ThreadExpert,
		chatMessage("Expert", reply)); err != nil {
		h.Logger.Warn("Failed to store expert chat turn", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
