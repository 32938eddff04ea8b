package handlers

import (
	"net/http"
	"os"
	"time"

	ledgerRepo "zora/database/repository/ledger"
	settingsRepo "zora/database/repository/settings"
	"zora/services/notification"
	"zora/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes platform governance: the commission rate, the legal
// ledger, and the notification feeds.
type AdminHandler struct {
	Settings settingsRepo.SettingsRepository
	Ledger   ledgerRepo.LedgerRepository
	Notify   notification.NotificationService
}

func NewAdminHandler(settings settingsRepo.SettingsRepository, ledger ledgerRepo.LedgerRepository, notify notification.NotificationService) *AdminHandler {
	return &AdminHandler{Settings: settings, Ledger: ledger, Notify: notify}
}

// Login authenticates the platform operator against the ADMIN_KEY env var.
func (h *AdminHandler) Login(c *gin.Context) {
	var input struct {
		Key string `json:"key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid login payload", err.Error())
		return
	}

	adminKey := os.Getenv("ADMIN_KEY")
	if adminKey == "" || input.Key != adminKey {
		utils.JSONError(c, http.StatusUnauthorized, "authentication failed", "invalid admin key")
		return
	}

	token, err := utils.GenerateToken("admin", "admin", 12*time.Hour)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetCommissionRate returns the current platform commission rate.
func (h *AdminHandler) GetCommissionRate(c *gin.Context) {
	rate, err := h.Settings.GetCommissionRate(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch commission rate", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"commissionRate": rate})
}

// SetCommissionRate stores a new global commission rate. Stamped historical
// transactions are unaffected.
func (h *AdminHandler) SetCommissionRate(c *gin.Context) {
	var input struct {
		Rate float64 `json:"rate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}
	if input.Rate <= 0 || input.Rate >= 1 {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload", "rate must be between 0 and 1")
		return
	}

	if err := h.Settings.SetCommissionRate(c.Request.Context(), input.Rate); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to store commission rate", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"commissionRate": input.Rate})
}

// GetLedger returns the governance ledger, optionally filtered by event type.
func (h *AdminHandler) GetLedger(c *gin.Context) {
	ctx := c.Request.Context()
	if eventType := c.Query("eventType"); eventType != "" {
		records, err := h.Ledger.GetByEventType(ctx, eventType)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to fetch ledger", err.Error())
			return
		}
		c.JSON(http.StatusOK, records)
		return
	}

	records, err := h.Ledger.GetAll(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch ledger", err.Error())
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetNotifications lists the caller role's notifications.
func (h *AdminHandler) GetNotifications(c *gin.Context) {
	role := c.Query("role")
	if role == "" {
		role = "Admin"
	}
	notifications, err := h.Notify.NotificationsFor(c.Request.Context(), role)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch notifications", err.Error())
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// GetEmails lists the simulated email outbox.
func (h *AdminHandler) GetEmails(c *gin.Context) {
	emails, err := h.Notify.Emails(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch emails", err.Error())
		return
	}
	c.JSON(http.StatusOK, emails)
}

// MarkNotificationsRead marks a role's notifications as read.
func (h *AdminHandler) MarkNotificationsRead(c *gin.Context) {
	var input struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}
	if err := h.Notify.MarkRead(c.Request.Context(), input.Role); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to mark notifications read", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
