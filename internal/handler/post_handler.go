package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"blogspace/internal/service"
)

type PostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type PostsGetResponse struct {
	Posts []service.PostSummary `json:"posts"`
}

// GetPosts returns all posts newest first, each reduced to its card
// summary. The optional q parameter is a case-insensitive substring
// filter over title and content.
func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	posts, err := h.PostService.ListPosts(r.Context(), query)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, PostsGetResponse{Posts: posts}, http.StatusOK)
}

// GetPost returns a single post with its full content verbatim.
func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, post, http.StatusOK)
}

// GetPostForEdit returns the post for form population, but only to its
// author; anyone else gets a 403 and never sees editable state.
func (h *Handlers) GetPostForEdit(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	post, err := h.PostService.GetPostForEdit(r.Context(), postID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, post, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "you must be logged in to create a post", http.StatusUnauthorized)
		return
	}

	var req PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), service.CreatePostRequest{
		AuthorID: userID,
		Title:    req.Title,
		Content:  req.Content,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, post, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.PostService.UpdatePost(r.Context(), service.UpdatePostRequest{
		PostID:  postID,
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, MessageResponse{Message: "post updated successfully"}, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	if err := h.PostService.DeletePost(r.Context(), postID, userID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, MessageResponse{Message: "post deleted successfully"}, http.StatusOK)
}
