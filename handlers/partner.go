package handlers

import (
	"net/http"
	"strings"
	"time"

	"zora/models"
	"zora/services/partner"
	"zora/utils"

	"github.com/gin-gonic/gin"
)

// PartnerHandler exposes partner profile management over HTTP.
type PartnerHandler struct {
	Svc partner.PartnerService
}

func NewPartnerHandler(svc partner.PartnerService) *PartnerHandler {
	return &PartnerHandler{Svc: svc}
}

func (h *PartnerHandler) Register(c *gin.Context) {
	var input struct {
		models.Partner
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid partner payload", err.Error())
		return
	}

	p, err := h.Svc.RegisterPartner(c.Request.Context(), &input.Partner, input.Password)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to register partner", err.Error())
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *PartnerHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid login payload", err.Error())
		return
	}

	p, err := h.Svc.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication failed", "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(p.ID, "partner", 24*time.Hour)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "partner": p})
}

// Logout blacklists the presented token until its natural expiry.
func (h *PartnerHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := utils.RevokeAuthToken(c.Request.Context(), token, 24*time.Hour); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to revoke token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *PartnerHandler) Update(c *gin.Context) {
	var p models.Partner
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid partner payload", err.Error())
		return
	}
	p.ID = c.Param("id")

	updated, err := h.Svc.UpdatePartner(c.Request.Context(), &p)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to update partner", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *PartnerHandler) SignAgreement(c *gin.Context) {
	var input struct {
		Version string `json:"version" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}

	p, err := h.Svc.SignAgreement(c.Request.Context(), c.Param("id"), input.Version)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to sign agreement", err.Error())
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PartnerHandler) Get(c *gin.Context) {
	p, err := h.Svc.GetPartnerByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "partner not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PartnerHandler) List(c *gin.Context) {
	partners, err := h.Svc.GetAllPartners(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list partners", err.Error())
		return
	}
	c.JSON(http.StatusOK, partners)
}

func (h *PartnerHandler) Delete(c *gin.Context) {
	if err := h.Svc.DeletePartner(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to delete partner", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}
