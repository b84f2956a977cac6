package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"prompt-catalog-service/internal/adapters/primary/http/dto"
	"prompt-catalog-service/internal/core/domain"
)

// maxLimit caps a single listing page.
const maxLimit = 500

func (h *Handler) ListPrompts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(domain.DefaultLimit)))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit > maxLimit {
		limit = maxLimit
	}

	sortKey := domain.SortKey(c.DefaultQuery("sort", string(domain.SortByDate)))
	if sortKey != domain.SortByDate && sortKey != domain.SortByPopularity {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidSortKey.Error()})
		return
	}

	q := domain.Query{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     sortKey,
		Limit:    limit,
		Offset:   offset,
	}

	prompts, total, err := h.catalogSvc.List(c.Request.Context(), q)
	if err != nil {
		log.WithError(err).Error("list prompts failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.PromptResponse, 0, len(prompts))
	for _, p := range prompts {
		items = append(items, dto.ToPromptResponse(p))
	}

	c.JSON(http.StatusOK, dto.ListPromptsResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetPrompt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid prompt id"})
		return
	}

	prompt, err := h.catalogSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPromptDetailResponse(prompt))
}

func (h *Handler) CreatePrompt(c *gin.Context) {
	var req dto.CreatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prompt, err := h.catalogSvc.Create(
		c.Request.Context(),
		req.Title, req.PromptText, req.Category, req.Source, req.Tags,
	)
	if err != nil {
		log.WithError(err).Error("create prompt failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPromptResponse(prompt))
}
