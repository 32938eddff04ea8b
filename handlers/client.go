package handlers

import (
	"net/http"
	"strings"
	"time"

	"zora/models"
	"zora/services/client"
	"zora/utils"

	"github.com/gin-gonic/gin"
)

// ClientHandler exposes client profile management over HTTP.
type ClientHandler struct {
	Svc client.ClientService
}

func NewClientHandler(svc client.ClientService) *ClientHandler {
	return &ClientHandler{Svc: svc}
}

func (h *ClientHandler) Register(c *gin.Context) {
	var input struct {
		models.Client
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid client payload", err.Error())
		return
	}

	created, err := h.Svc.RegisterClient(c.Request.Context(), &input.Client, input.Password)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to register client", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ClientHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid login payload", err.Error())
		return
	}

	cl, err := h.Svc.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication failed", "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(cl.ID, "client", 24*time.Hour)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "client": cl})
}

// Logout blacklists the presented token until its natural expiry.
func (h *ClientHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := utils.RevokeAuthToken(c.Request.Context(), token, 24*time.Hour); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to revoke token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *ClientHandler) Update(c *gin.Context) {
	var cl models.Client
	if err := c.ShouldBindJSON(&cl); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid client payload", err.Error())
		return
	}
	cl.ID = c.Param("id")

	updated, err := h.Svc.UpdateClient(c.Request.Context(), &cl)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to update client", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ClientHandler) SignAgreement(c *gin.Context) {
	var input struct {
		Version string `json:"version" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}

	cl, err := h.Svc.SignAgreement(c.Request.Context(), c.Param("id"), input.Version)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to sign agreement", err.Error())
		return
	}
	c.JSON(http.StatusOK, cl)
}

func (h *ClientHandler) Get(c *gin.Context) {
	cl, err := h.Svc.GetClientByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "client not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, cl)
}

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.Svc.GetAllClients(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list clients", err.Error())
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.Svc.DeleteClient(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to delete client", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}
