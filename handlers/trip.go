package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"zora/models"
	"zora/services/notification"
	"zora/services/trip"
	"zora/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TripHandler exposes the request lifecycle over HTTP.
type TripHandler struct {
	Svc    trip.Service
	Notify notification.NotificationService
	Logger *zap.Logger
}

func NewTripHandler(svc trip.Service, notify notification.NotificationService, logger *zap.Logger) *TripHandler {
	return &TripHandler{Svc: svc, Notify: notify, Logger: logger}
}

// CreateRequest registers a new trip brief for the calling client.
func (h *TripHandler) CreateRequest(c *gin.Context) {
	var req models.TravelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload", err.Error())
		return
	}
	if role := c.GetString("role"); role == "client" {
		req.ClientID = c.GetString("subjectID")
	}

	created, err := h.Svc.CreateRequest(c.Request.Context(), &req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create request", err.Error())
		return
	}

	h.notify(c, "Admin", fmt.Sprintf("New trip request to %s", created.To), "request", created.ID)
	c.JSON(http.StatusCreated, created)
}

// Dispatch sends the request out to partners for bidding.
func (h *TripHandler) Dispatch(c *gin.Context) {
	req, err := h.Svc.DispatchToPartners(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.lifecycleError(c, err)
		return
	}
	h.notify(c, "Partner", fmt.Sprintf("New request open for bids: %s", req.To), "dispatch", req.ID)
	c.JSON(http.StatusOK, req)
}

// Rank runs the advisory ranking step over the current valid offers.
func (h *TripHandler) Rank(c *gin.Context) {
	req, err := h.Svc.RankOffers(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.lifecycleError(c, err)
		return
	}
	if req.Status == models.StatusOfferReady {
		h.notify(c, "Client", "Your top travel offers are ready for review", "offers", req.ID)
	}
	c.JSON(http.StatusOK, req)
}

// SelectOffer commits the client to one of the presented offers.
func (h *TripHandler) SelectOffer(c *gin.Context) {
	var input struct {
		OfferID string `json:"offerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}

	req, err := h.Svc.SelectFinalOffer(c.Request.Context(), c.Param("id"), input.OfferID)
	if err != nil {
		h.lifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// RejectOffers declines the whole shortlist with a reason.
func (h *TripHandler) RejectOffers(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}

	req, err := h.Svc.RejectPresentedOffers(c.Request.Context(), c.Param("id"), input.Reason)
	if err != nil {
		h.lifecycleError(c, err)
		return
	}
	h.notify(c, "Admin", "Client rejected the presented offers", "revision", req.ID)
	c.JSON(http.StatusOK, req)
}

// Pay charges the client for the final offer.
func (h *TripHandler) Pay(c *gin.Context) {
	req, err := h.Svc.ProcessPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, trip.ErrPaymentDeclined) {
			// Distinct user-visible failure; the request stays payable.
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "payment declined", "request": req})
			return
		}
		h.lifecycleError(c, err)
		return
	}

	h.notify(c, "Admin", fmt.Sprintf("Booking %s confirmed and paid", req.ID), "payment", req.ID)
	h.email(c, models.SimulatedEmail{
		Recipient: req.ClientID,
		Subject:   "Your booking is confirmed",
		Body:      fmt.Sprintf("Payment received for your trip to %s. Booking reference: %s.", req.To, req.ID),
		RequestID: req.ID,
	})
	c.JSON(http.StatusOK, req)
}

// ReleasePayout releases the partner payout for a confirmed booking.
func (h *TripHandler) ReleasePayout(c *gin.Context) {
	req, err := h.Svc.ReleasePayout(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.lifecycleError(c, err)
		return
	}
	h.notify(c, "Partner", "Your payout has been released", "payout", req.ID)
	if req.FinalOffer != nil {
		h.email(c, models.SimulatedEmail{
			Recipient: req.FinalOffer.PartnerID,
			Subject:   "Payout released",
			Body:      fmt.Sprintf("Your payout for booking %s has been released.", req.ID),
			RequestID: req.ID,
		})
	}
	c.JSON(http.StatusOK, req)
}

// Complete marks a paid-out trip as finished.
func (h *TripHandler) Complete(c *gin.Context) {
	req, err := h.Svc.CompleteTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.lifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// Chat appends a message to one of the request's chat threads.
func (h *TripHandler) Chat(c *gin.Context) {
	var input struct {
		Thread string `json:"thread" binding:"required"`
		Sender string `json:"sender" binding:"required"`
		Text   string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}

	req, err := h.Svc.AddChatMessage(c.Request.Context(), c.Param("id"), input.Thread,
		models.ChatMessage{Sender: input.Sender, Text: input.Text})
	if err != nil {
		h.lifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// Metrics returns the derived financial aggregates.
func (h *TripHandler) Metrics(c *gin.Context) {
	m, err := h.Svc.Metrics(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute metrics", err.Error())
		return
	}
	c.JSON(http.StatusOK, m)
}

// lifecycleError maps engine errors onto HTTP statuses.
func (h *TripHandler) lifecycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, trip.ErrNoValidOffers),
		errors.Is(err, trip.ErrInvalidTransition),
		errors.Is(err, trip.ErrOfferNotFound):
		utils.JSONError(c, http.StatusConflict, "operation refused", err.Error())
	case errors.Is(err, trip.ErrNoFinalOffer),
		errors.Is(err, trip.ErrAlreadyStamped),
		errors.Is(err, trip.ErrFinalOfferSet):
		utils.JSONError(c, http.StatusUnprocessableEntity, "invariant violation", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "request operation failed", err.Error())
	}
}

func (h *TripHandler) notify(c *gin.Context, role, message, category, requestID string) {
	if h.Notify == nil {
		return
	}
	if err := h.Notify.Notify(c.Request.Context(), role, message, category, requestID); err != nil {
		h.Logger.Warn("Failed to store notification", zap.Error(err))
	}
}

func (h *TripHandler) email(c *gin.Context, email models.SimulatedEmail) {
	if h.Notify == nil {
		return
	}
	if err := h.Notify.QueueEmail(c.Request.Context(), email); err != nil {
		h.Logger.Warn("Failed to queue email", zap.Error(err))
	}
}
