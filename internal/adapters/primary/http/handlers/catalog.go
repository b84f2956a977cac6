package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"prompt-catalog-service/internal/adapters/primary/http/dto"
)

func (h *Handler) ListCategories(c *gin.Context) {
	index, err := h.catalogSvc.Categories(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list categories failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoriesResponse{
		Categories: index.Categories,
		Hierarchy:  index.Hierarchy,
		Counts:     index.Counts,
	})
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.catalogSvc.Stats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("get stats failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatsResponse{
		TotalPrompts: stats.TotalPrompts,
		Categories:   stats.Categories,
	})
}
