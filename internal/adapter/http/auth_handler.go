package http

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/travel-booking-client/internal/adapter/http/middleware"
	"github.com/flight-search/travel-booking-client/internal/adapter/http/response"
	"github.com/flight-search/travel-booking-client/internal/catalog"
	"github.com/flight-search/travel-booking-client/internal/domain"
	"github.com/flight-search/travel-booking-client/internal/infrastructure/logger"
)

// AccountService issues and resolves bearer tokens.
type AccountService interface {
	middleware.Authenticator
	Login(creds domain.Credentials) (domain.LoginResult, error)
	Refresh(token string) (domain.LoginResult, error)
	Logout(token string)
}

// AuthHandler handles the /auth endpoints.
type AuthHandler struct {
	accounts  AccountService
	validator *domain.Validator
	log       *logger.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(accounts AccountService, v *domain.Validator, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		accounts:  accounts,
		validator: v,
		log:       logger.OrNop(log).WithComponent("stubapi"),
	}
}

// Login handles POST /auth/login. Wrong credentials are a success=false
// envelope so the client shows the server's message.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	creds := ToDomainCredentials(&req)
	if err := h.validator.ValidateCredentials(creds); err != nil {
		var verrs *domain.ValidationErrors
		if errors.As(err, &verrs) {
			return validationFailed(c, verrs)
		}
		return response.ValidationError(c, err.Error(), nil)
	}

	res, err := h.accounts.Login(creds)
	if err != nil {
		h.log.Warn().Str("email", creds.Email).Msg("login rejected")
		return response.Rejected(c, response.MsgInvalidCredentials)
	}
	h.log.Info().Str("user_id", res.User.ID).Msg("login")
	return response.OK(c, res, "Login successful")
}

// Logout handles POST /auth/logout. It revokes the presented token, if any,
// and always succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	if token := middleware.BearerToken(c); token != "" {
		h.accounts.Logout(token)
	}
	return response.OK(c, nil, "Logged out")
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "")
	}
	return response.OK(c, user, "")
}

// Refresh handles POST /auth/refresh.
func (h *AuthHandler) Refresh(c echo.Context) error {
	res, err := h.accounts.Refresh(middleware.CurrentToken(c))
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidToken) {
			return response.Unauthorized(c, response.MsgInvalidToken)
		}
		return response.InternalServerError(c)
	}
	return response.OK(c, res, "Token refreshed")
}
