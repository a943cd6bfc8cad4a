package handlers

import (
	"net/http"

	"github.com/sambbaron/posts/internal/repository"
	"github.com/sambbaron/posts/internal/utils"
)

type Handler struct {
	Repo  repository.PostRepository
	Posts *PostHandler
}

func NewHandler(repo repository.PostRepository) *Handler {
	return &Handler{
		Repo:  repo,
		Posts: NewPostHandler(repo),
	}
}

// Health reports whether the store answers.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Ping(r.Context()); err != nil {
		utils.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
