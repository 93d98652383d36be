package api

import (
	"net/http"

	reqdto "mesa-booking/internal/handler/dto/request"
	resdto "mesa-booking/internal/handler/dto/response"
	"mesa-booking/internal/handler/httperr"
	"mesa-booking/internal/pkg/config"
	"mesa-booking/internal/pkg/cookie"
	"mesa-booking/internal/pkg/errs"
	"mesa-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	cookieCfg    config.CookieConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		cookieCfg:    cfg.Cookie,
	}
}

// @Summary Login
// @Description Forwards credentials to the restaurant backend and stores the issued token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		h.abortWithAuthError(c, err, "Login failed.")
		return
	}

	h.respondWithToken(c, result)
}

// @Summary Register
// @Description Creates a customer account in the restaurant backend
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration request"
// @Success 201 {object} resdto.RegisterResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.authCommands.Register(c.Request.Context(), req)
	if err != nil {
		h.abortWithAuthError(c, err, "Registration failed.")
		return
	}

	c.JSON(http.StatusCreated, resdto.RegisterResponse{Message: result.Message})
}

// @Summary Login with identity provider
// @Description Passes the identity token obtained by the browser to the backend
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.GoogleLoginRequest true "Identity token"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/auth/google-login [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req reqdto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.authCommands.GoogleLogin(c.Request.Context(), req)
	if err != nil {
		h.abortWithAuthError(c, err, "Login failed.")
		return
	}

	h.respondWithToken(c, result)
}

// @Summary Logout
// @Description Drops the stored token
// @Tags auth
// @Success 204 "No Content"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, result *commands.LoginResult) {
	cookie.SetTokenCookie(c, h.cookieCfg, result.Token, result.TTL)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		Token:     result.Token,
		ExpiresIn: int64(result.TTL.Seconds()),
	})
}

func (h *AuthHandler) abortWithAuthError(c *gin.Context, err error, fallback string) {
	if errs.Is(err, commands.ErrInvalidCredentials) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}
	abortWithGatewayError(c, err, fallback)
}
