package handlers

import (
	"github.com/gin-gonic/gin"

	"prompt-catalog-service/internal/core/services"
)

type Handler struct {
	catalogSvc  *services.CatalogService
	createLimit gin.HandlerFunc
}

// New builds the HTTP handler set. createLimit, when non-nil, is applied
// to the create endpoint only; anonymous submissions are the one write
// path worth throttling.
func New(catalogSvc *services.CatalogService, createLimit gin.HandlerFunc) *Handler {
	if createLimit == nil {
		createLimit = func(c *gin.Context) { c.Next() }
	}
	return &Handler{catalogSvc: catalogSvc, createLimit: createLimit}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/prompts", h.ListPrompts)
	r.GET("/prompts/:id", h.GetPrompt)
	r.POST("/prompts", h.createLimit, h.CreatePrompt)

	r.GET("/categories", h.ListCategories)
	r.GET("/stats", h.GetStats)
}
