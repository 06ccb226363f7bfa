package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bitskill_backend/internal/services"
	"bitskill_backend/internal/services/dto"
)

type CategoryHandler struct {
	*BaseHandler
	categoryService services.CategoryService
}

func NewCategoryHandler(base *BaseHandler, categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		BaseHandler:     base,
		categoryService: categoryService,
	}
}

func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	{
		categories.GET("", h.List)
		categories.GET("/:id", h.GetByID)
	}
}

func (h *CategoryHandler) List(c *gin.Context) {
	db := h.GetDB(c)

	categories, err := h.categoryService.List(c.Request.Context(), db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoryListResponse{Categories: categories})
}

func (h *CategoryHandler) GetByID(c *gin.Context) {
	db := h.GetDB(c)

	category, err := h.categoryService.GetByID(c.Request.Context(), db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}
