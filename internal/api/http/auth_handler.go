package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"equiprent-backend/internal/logger"
	"equiprent-backend/internal/service"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type tokenResponse struct {
	User         any    `json:"user,omitempty"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var body signupRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" || body.Password == "" || body.Name == "" {
		Fail(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}

	user, access, refresh, err := h.authSvc.Signup(r.Context(), body.Name, body.Email, body.Phone, body.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			Fail(w, http.StatusConflict, err.Error())
			return
		}
		logger.Error("Signup failed", "email", body.Email, "error", err)
		Fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	Success(w, tokenResponse{User: user, AccessToken: access, RefreshToken: refresh}, "Account created successfully")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" || body.Password == "" {
		Fail(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, access, refresh, err := h.authSvc.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			Fail(w, http.StatusUnauthorized, err.Error())
			return
		}
		logger.Error("Login failed", "email", body.Email, "error", err)
		Fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	Success(w, tokenResponse{User: user, AccessToken: access, RefreshToken: refresh}, "Logged in successfully")
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var body refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.RefreshToken == "" {
		Fail(w, http.StatusBadRequest, "Refresh token is required")
		return
	}

	if err := h.authSvc.Logout(r.Context(), body.RefreshToken); err != nil {
		Fail(w, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	Success(w, nil, "Logged out successfully")
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var body refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.RefreshToken == "" {
		Fail(w, http.StatusBadRequest, "Refresh token is required")
		return
	}

	access, refresh, err := h.authSvc.RefreshToken(r.Context(), body.RefreshToken)
	if err != nil {
		Fail(w, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	Success(w, tokenResponse{AccessToken: access, RefreshToken: refresh}, "Token refreshed successfully")
}
