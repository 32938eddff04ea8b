package handlers

import (
	"net/http"

	"zora/models"
	"zora/services/trip"
	"zora/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OfferHandler exposes partner bidding over HTTP.
type OfferHandler struct {
	Svc    trip.Service
	Logger *zap.Logger
}

func NewOfferHandler(svc trip.Service, logger *zap.Logger) *OfferHandler {
	return &OfferHandler{Svc: svc, Logger: logger}
}

// SubmitOffer records or revises the calling partner's bid on a request.
// Edge validation lives here: the engine itself accepts any shape.
func (h *OfferHandler) SubmitOffer(c *gin.Context) {
	var offer models.PartnerOffer
	if err := c.ShouldBindJSON(&offer); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid offer payload", err.Error())
		return
	}
	if role := c.GetString("role"); role == "partner" {
		offer.PartnerID = c.GetString("subjectID")
	}
	if offer.Price <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid offer payload", "price must be positive")
		return
	}

	req, err := h.Svc.SubmitOffer(c.Request.Context(), c.Param("id"), offer)
	if err != nil {
		utils.JSONError(c, http.StatusConflict, "failed to submit offer", err.Error())
		return
	}
	c.JSON(http.StatusOK, req)
}

// RejectOffer sends a single offer back to its partner for correction.
func (h *OfferHandler) RejectOffer(c *gin.Context) {
	var input struct {
		Note string `json:"note"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}

	req, err := h.Svc.RejectOfferForRevision(c.Request.Context(), c.Param("id"), c.Param("offerId"), input.Note)
	if err != nil {
		utils.JSONError(c, http.StatusConflict, "failed to reject offer", err.Error())
		return
	}
	c.JSON(http.StatusOK, req)
}
