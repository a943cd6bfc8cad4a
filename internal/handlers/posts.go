package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sambbaron/posts/internal/filter"
	"github.com/sambbaron/posts/internal/models"
	"github.com/sambbaron/posts/internal/repository"
	"github.com/sambbaron/posts/internal/utils"
	"github.com/sambbaron/posts/internal/validate"
)

type PostHandler struct {
	Repo repository.PostRepository
}

func NewPostHandler(repo repository.PostRepository) *PostHandler {
	return &PostHandler{Repo: repo}
}

// deleteResponse pairs the confirmation with the posts left after the delete.
type deleteResponse struct {
	Message string        `json:"message"`
	Posts   []models.Post `json:"posts"`
}

// ---------------------- CREATE ----------------------

func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	raw, err := utils.ReadBody(w, r)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}

	doc, err := validate.Parse(raw)
	if err != nil {
		utils.WriteError(w, r, &utils.Error{
			Kind:    utils.MalformedInput,
			Message: "Request body must be valid JSON",
			Err:     err,
		})
		return
	}

	if err := validate.PostSchema.Validate(doc); err != nil {
		utils.WriteError(w, r, &utils.Error{
			Kind:    utils.UnprocessableEntity,
			Message: err.Error(),
			Err:     err,
		})
		return
	}

	// both fields were checked as strings above
	title, _ := doc.Lookup("title")
	body, _ := doc.Lookup("body")

	post, err := h.Repo.Insert(r.Context(), models.Post{Title: title.Str, Body: body.Str})
	if err != nil {
		utils.WriteError(w, r, utils.Internal(err))
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/posts/%d", post.ID))
	utils.JSON(w, http.StatusCreated, post)
}

// ---------------------- GET ONE ----------------------

func (h *PostHandler) GetPostByID(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}

	post, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		utils.WriteError(w, r, lookupError(id, err))
		return
	}

	utils.JSON(w, http.StatusOK, post)
}

// ---------------------- LIST ----------------------

func (h *PostHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Repo.List(r.Context(), filter.FromQuery(r.URL.Query()))
	if err != nil {
		utils.WriteError(w, r, utils.Internal(err))
		return
	}

	utils.JSON(w, http.StatusOK, posts)
}

// ---------------------- DELETE ----------------------

func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}

	if _, err := h.Repo.GetByID(r.Context(), id); err != nil {
		utils.WriteError(w, r, lookupError(id, err))
		return
	}

	// a concurrent delete may have won since the lookup
	if err := h.Repo.DeleteByID(r.Context(), id); err != nil {
		utils.WriteError(w, r, lookupError(id, err))
		return
	}

	remaining, err := h.Repo.List(r.Context(), filter.Filter{})
	if err != nil {
		utils.WriteError(w, r, utils.Internal(err))
		return
	}

	utils.JSON(w, http.StatusOK, deleteResponse{
		Message: fmt.Sprintf("Post %d deleted", id),
		Posts:   remaining,
	})
}

// postID parses the {id} path segment. Anything that is not an integer
// cannot name a post and is reported as not found.
func postID(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, notFound(idStr)
	}
	return id, nil
}

func lookupError(id int64, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(strconv.FormatInt(id, 10))
	}
	return utils.Internal(err)
}

func notFound(id string) *utils.Error {
	return utils.NewError(utils.NotFound, "Could not find post with id %s", id)
}
