package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/resumecraft/resume-builder-api/internal/core/domain"
	"github.com/resumecraft/resume-builder-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	users       ports.UserRepository
}

func NewAuthHandler(authService ports.AuthService, users ports.UserRepository) *AuthHandler {
	return &AuthHandler{authService: authService, users: users}
}

// Signup registers a new user from a provider credential.
//
// @Summary      Sign up with an identity-provider credential
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialRequest  true  "Provider credential"
// @Success      201   {object}  signupResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req credentialRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	user, err := h.authService.Signup(c.Request().Context(), req.Credential)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingCredential):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "credential is missing"})
		case errors.Is(err, domain.ErrInvalidCredential):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid user detected, please try again"})
		case errors.Is(err, domain.ErrUserExists):
			return c.JSON(http.StatusConflict, errorResponse{Error: "user already registered"})
		}
		return err
	}

	return c.JSON(http.StatusCreated, signupResponse{
		Message: "signup was successful",
		User:    user,
	})
}

// Login exchanges a provider credential for a session token and the stored resume.
//
// @Summary      Log in with an identity-provider credential
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialRequest  true  "Provider credential"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	user, resume, err := h.authService.Login(c.Request().Context(), req.Credential)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingCredential):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "credential is missing"})
		case errors.Is(err, domain.ErrInvalidCredential):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid user detected, please try again"})
		case errors.Is(err, domain.ErrUserNotFound):
			// Unregistered email is a 400 here, not a 404: the client
			// flow expects "please sign up" on this path.
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "you are not registered, please sign up"})
		}
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Message: "login was successful",
		User:    user,
		Resume:  resume,
	})
}

// Me returns the stored profile for the session token's email.
//
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	email, _ := c.Get("email").(string)
	if email == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	user, err := h.users.FindByEmail(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
		}
		return err
	}

	// The persisted token is the one minted at signup; don't echo it back.
	user.Token = ""
	return c.JSON(http.StatusOK, user)
}
