package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bitskill_backend/internal/middleware"
	"bitskill_backend/internal/services"
	"bitskill_backend/internal/services/dto"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("/:id", h.GetByID)
	}

	protected := rg.Group("/users")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.PUT("/profile", h.UpdateProfile)
	}
}

// GetByID - публичный профиль пользователя
func (h *UserHandler) GetByID(c *gin.Context) {
	db := h.GetDB(c)

	user, err := h.userService.GetByID(c.Request.Context(), db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.userService.UpdateProfile(c.Request.Context(), db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    user,
	})
}
