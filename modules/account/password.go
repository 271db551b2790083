package account

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/toolgate/handler"
	"github.com/dmitrymomot/toolgate/internal/views"
	"github.com/dmitrymomot/toolgate/pkg/auth"
)

const registeredMessage = "Registration successful. Please check your email to activate your account."

var (
	errEmailTaken = handler.NewHTTPError(http.StatusBadRequest, "email_already_exists", "A user with this email already exists.")
	errBadLogin   = handler.NewHTTPError(http.StatusUnauthorized, "invalid_credentials", "Invalid credentials")
	errBadRefresh = handler.NewHTTPError(http.StatusUnauthorized, "token_not_valid", "Token is invalid or expired")
)

// DetailResponse carries a human-readable outcome.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// RegisterRequest is the registration form. Every field is required.
type RegisterRequest struct {
	FirstName      string `json:"first_name" validate:"required"`
	LastName       string `json:"last_name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required"`
	Password       string `json:"password" validate:"required"`
	RepeatPassword string `json:"repeat_password" validate:"required,eqfield=Password"`
}

func (m *Module) register(ctx handler.Context, req RegisterRequest) handler.Response {
	_, err := m.auth.Register(withActivationBaseURL(ctx, m.cfg.ActivationBaseURL), auth.RegisterParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
	})
	switch {
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		return handler.Fail(errEmailTaken)
	case errors.Is(err, auth.ErrPasswordRequired):
		verr := handler.NewValidationError()
		verr.Add("password", "password is required")
		return handler.Fail(verr)
	case err != nil:
		return handler.Fail(err)
	}

	return handler.JSON(DetailResponse{Detail: registeredMessage})
}

// ActivateRequest holds the activation link segments.
type ActivateRequest struct {
	UID   string `path:"uid"`
	Token string `path:"token"`
}

func (m *Module) activate(ctx handler.Context, req ActivateRequest) handler.Response {
	_, err := m.auth.Activate(ctx, req.UID, req.Token)
	switch {
	case errors.Is(err, auth.ErrInvalidActivationLink):
		return handler.Text(http.StatusBadRequest, "Invalid activation link")
	case errors.Is(err, auth.ErrExpiredActivationLink):
		return handler.Text(http.StatusBadRequest, "Invalid or expired activation link.")
	case err != nil:
		return handler.Fail(err)
	}

	return handler.Templ(views.ActivatedPage(m.brand))
}

// LoginRequest holds password credentials. Missing fields are not
// validated; they fail authentication with the same 401 as wrong ones.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserSummary is the public part of a user returned on login.
type UserSummary struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

// LoginResponse carries the issued token pair and the user summary.
type LoginResponse struct {
	Refresh string      `json:"refresh"`
	Access  string      `json:"access"`
	User    UserSummary `json:"user"`
}

func (m *Module) login(ctx handler.Context, req LoginRequest) handler.Response {
	user, pair, err := m.auth.Login(ctx, req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		return handler.Fail(errBadLogin)
	}
	if err != nil {
		return handler.Fail(err)
	}

	return handler.JSON(LoginResponse{
		Refresh: pair.Refresh,
		Access:  pair.Access,
		User: UserSummary{
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Role:      user.Role,
		},
	})
}

// RefreshRequest carries a refresh token.
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// RefreshResponse carries a new access token.
type RefreshResponse struct {
	Access string `json:"access"`
}

func (m *Module) refresh(ctx handler.Context, req RefreshRequest) handler.Response {
	access, err := m.auth.Refresh(ctx, req.Refresh)
	if errors.Is(err, auth.ErrInvalidSession) {
		return handler.Fail(errBadRefresh)
	}
	if err != nil {
		return handler.Fail(err)
	}
	return handler.JSON(RefreshResponse{Access: access})
}
