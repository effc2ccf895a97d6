package handlers

import (
	"net/http"
)

type CurrentUserResponse struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// GetCurrentUser resolves the authenticated identity together with its
// display profile.
func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	user, err := h.UserRepo.GetUserByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	profile, err := h.UserRepo.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, CurrentUserResponse{
		UserID:   user.UserID,
		Email:    user.Email,
		FullName: profile.FullName,
	}, http.StatusOK)
}
