package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bitskill_backend/internal/middleware"
	"bitskill_backend/internal/services"
	"bitskill_backend/internal/services/dto"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

// RegisterRoutes - все маршруты откликов требуют аутентификации
func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	applications := rg.Group("/applications")
	applications.Use(middleware.AuthMiddleware())
	{
		applications.POST("", h.Apply)
		applications.GET("/gig/:gigId", h.ListForGig)
		applications.GET("/my", h.ListMy)
		applications.PATCH("/:id/status", h.UpdateStatus)
		applications.DELETE("/:id", h.Withdraw)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	application, err := h.applicationService.Apply(c.Request.Context(), db, userID, req.GigID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Application submitted successfully",
		"application": application,
	})
}

// ListForGig - отклики на гиг, только для владельца гига
func (h *ApplicationHandler) ListForGig(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	applications, err := h.applicationService.ListForGig(c.Request.Context(), db, userID, c.Param("gigId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": applications})
}

func (h *ApplicationHandler) ListMy(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	applications, err := h.applicationService.ListMy(c.Request.Context(), db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": applications})
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	application, err := h.applicationService.UpdateStatus(c.Request.Context(), db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Application status updated successfully",
		"application": application,
	})
}

func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.applicationService.Withdraw(c.Request.Context(), db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application withdrawn successfully"})
}
