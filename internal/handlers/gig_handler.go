package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bitskill_backend/internal/middleware"
	"bitskill_backend/internal/services"
	"bitskill_backend/internal/services/dto"
)

type GigHandler struct {
	*BaseHandler
	gigService services.GigService
}

func NewGigHandler(base *BaseHandler, gigService services.GigService) *GigHandler {
	return &GigHandler{
		BaseHandler: base,
		gigService:  gigService,
	}
}

func (h *GigHandler) RegisterRoutes(rg *gin.RouterGroup) {
	gigs := rg.Group("/gigs")
	{
		gigs.GET("", h.Search)
		// Статический /gigs/my имеет приоритет над /gigs/:id
		gigs.GET("/:id", h.GetByID)
	}

	protected := rg.Group("/gigs")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", h.Create)
		protected.GET("/my", h.ListMy)
		protected.PUT("/:id", h.Update)
		protected.DELETE("/:id", h.Delete)
	}
}

// Search - список открытых гигов с фильтрами и пагинацией
func (h *GigHandler) Search(c *gin.Context) {
	var req dto.SearchGigsRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.gigService.Search(c.Request.Context(), db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *GigHandler) GetByID(c *gin.Context) {
	db := h.GetDB(c)

	gig, err := h.gigService.GetByID(c.Request.Context(), db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"gig": gig})
}

func (h *GigHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateGigRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	gig, err := h.gigService.Create(c.Request.Context(), db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Gig created successfully",
		"gig":     gig,
	})
}

// ListMy - гиги текущего пользователя, включая закрытые
func (h *GigHandler) ListMy(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	gigs, err := h.gigService.ListByOwner(c.Request.Context(), db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"gigs": gigs})
}

func (h *GigHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateGigRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	gig, err := h.gigService.Update(c.Request.Context(), db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Gig updated successfully",
		"gig":     gig,
	})
}

func (h *GigHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.gigService.Delete(c.Request.Context(), db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gig deleted successfully"})
}
