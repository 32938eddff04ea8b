package handlers

import (
	"net/http"

	featuredRepo "zora/database/repository/featured"
	partnerRepo "zora/database/repository/partner"
	"zora/models"
	"zora/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FeaturedOfferHandler manages partner promotional packages.
type FeaturedOfferHandler struct {
	Repo     featuredRepo.FeaturedOfferRepository
	Partners partnerRepo.PartnerRepository
}

func NewFeaturedOfferHandler(repo featuredRepo.FeaturedOfferRepository, partners partnerRepo.PartnerRepository) *FeaturedOfferHandler {
	return &FeaturedOfferHandler{Repo: repo, Partners: partners}
}

func (h *FeaturedOfferHandler) Create(c *gin.Context) {
	var offer models.FeaturedOffer
	if err := c.ShouldBindJSON(&offer); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid featured offer payload", err.Error())
		return
	}
	if role := c.GetString("role"); role == "partner" {
		offer.PartnerID = c.GetString("subjectID")
	}

	partner, err := h.Partners.GetByID(c.Request.Context(), offer.PartnerID)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "unknown partner", err.Error())
		return
	}

	offer.ID = "FO-" + uuid.New().String()
	offer.PartnerName = partner.Name
	if err := h.Repo.Create(c.Request.Context(), &offer); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create featured offer", err.Error())
		return
	}
	c.JSON(http.StatusCreated, offer)
}

func (h *FeaturedOfferHandler) Update(c *gin.Context) {
	var offer models.FeaturedOffer
	if err := c.ShouldBindJSON(&offer); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid featured offer payload", err.Error())
		return
	}
	offer.ID = c.Param("id")

	if err := h.Repo.Update(c.Request.Context(), &offer); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to update featured offer", err.Error())
		return
	}
	c.JSON(http.StatusOK, offer)
}

func (h *FeaturedOfferHandler) Delete(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to delete featured offer", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

func (h *FeaturedOfferHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	if partnerID := c.Query("partnerId"); partnerID != "" {
		offers, err := h.Repo.GetByPartnerID(ctx, partnerID)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to list featured offers", err.Error())
			return
		}
		c.JSON(http.StatusOK, offers)
		return
	}

	offers, err := h.Repo.GetAll(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list featured offers", err.Error())
		return
	}
	c.JSON(http.StatusOK, offers)
}
