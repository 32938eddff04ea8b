package handlers

import (
	"net/http"

	requestRepo "zora/database/repository/request"
	"zora/models"
	"zora/utils"

	"github.com/gin-gonic/gin"
)

// RequestQueryHandler serves read-only request views straight from the
// repository; reads do not go through the lifecycle engine.
type RequestQueryHandler struct {
	Repo requestRepo.RequestRepository
}

func NewRequestQueryHandler(repo requestRepo.RequestRepository) *RequestQueryHandler {
	return &RequestQueryHandler{Repo: repo}
}

// Get returns a single request by ID.
func (h *RequestQueryHandler) Get(c *gin.Context) {
	req, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "request not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, req)
}

// List returns requests scoped to the caller: clients see their own,
// admins and partners see everything.
func (h *RequestQueryHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		requests []models.TravelRequest
		err      error
	)
	if c.GetString("role") == "client" {
		requests, err = h.Repo.GetByClientID(ctx, c.GetString("subjectID"))
	} else if status := c.Query("status"); status != "" {
		requests, err = h.Repo.GetByStatus(ctx, models.RequestStatus(status))
	} else {
		requests, err = h.Repo.GetAll(ctx)
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list requests", err.Error())
		return
	}
	c.JSON(http.StatusOK, requests)
}
