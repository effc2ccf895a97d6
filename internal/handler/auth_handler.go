package handlers

import (
	"encoding/json"
	"net/http"

	"blogspace/internal/service"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName" validate:"required"`
}

type UserResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

type AuthResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	_, err := h.AuthService.Register(r.Context(), service.RegisterRequest{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// issue tokens right away so the client lands signed in
	user, accessToken, refreshToken, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         UserResponse{UserID: user.UserID, Email: user.Email},
	}, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, accessToken, refreshToken, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         UserResponse{UserID: user.UserID, Email: user.Email},
	}, http.StatusOK)
}

func (h *Handlers) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refreshToken" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, accessToken, refreshToken, err := h.AuthService.RefreshTokens(r.Context(), req.RefreshToken)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         UserResponse{UserID: user.UserID, Email: user.Email},
	}, http.StatusOK)
}

// Logout invalidates the caller's stored refresh token. The access token
// simply expires on its own.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	if err := h.AuthService.Logout(r.Context(), userID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, MessageResponse{Message: "logged out successfully"}, http.StatusOK)
}
