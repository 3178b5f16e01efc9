package delivery

import (
	"net/http"

	authdto "taskboard-backend/internal/auth/dto"
	"taskboard-backend/internal/auth/usecase"
	"taskboard-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// POST /api/auth/signup
func (h *AuthHandler) SignUp(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	var req authdto.SignUpRequest
	if !response.BindJSON(c, &req) {
		return
	}

	resp, err := h.authUsecase.SignUp(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// POST /api/auth/signin
func (h *AuthHandler) SignIn(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	var req authdto.SignInRequest
	if !response.BindJSON(c, &req) {
		return
	}

	resp, err := h.authUsecase.SignIn(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	user, err := h.authUsecase.Me(c.Request.Context(), c.GetString(ContextUserID))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, authdto.NewUserResponse(user))
}

// POST /api/fcm/register
func (h *AuthHandler) RegisterFCMToken(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	var req authdto.RegisterFCMTokenRequest
	if !response.BindJSON(c, &req) {
		return
	}

	if err := h.authUsecase.RegisterFCMToken(c.Request.Context(), c.GetString(ContextUserID), &req); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Token registered"})
}

// DELETE /api/fcm/:token
func (h *AuthHandler) UnregisterFCMToken(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	if err := h.authUsecase.UnregisterFCMToken(c.Request.Context(), c.GetString(ContextUserID), c.Param("token")); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Token removed"})
}
