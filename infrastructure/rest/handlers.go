package rest

import (
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"posts-lab/errors"
	"posts-lab/services"
)

var validate = validator.New()

type Handlers struct {
	posts    services.IPostService
	comments services.ICommentService
	log      *slog.Logger
}

func NewHandlers(posts services.IPostService, comments services.ICommentService, log *slog.Logger) *Handlers {
	return &Handlers{posts: posts, comments: comments, log: log}
}

func (h *Handlers) createPost(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		writeError(w, errors.ErrUnauthenticated)
		return
	}

	var req CreatePostRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeStatus(w, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.posts.CreatePost(req.Title, req.Content, user.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPostResponse(post))
}

func (h *Handlers) listPosts(w http.ResponseWriter, _ *http.Request) {
	posts, err := h.posts.FindAllPosts()
	if err != nil {
		writeError(w, err)
		return
	}
	responses := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, toPostResponse(post))
	}
	writeJSON(w, http.StatusOK, responses)
}

func (h *Handlers) getPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeStatus(w, http.StatusBadRequest, "id must be a UUID")
		return
	}

	post, err := h.posts.GetPost(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostDetailResponse(post))
}

func (h *Handlers) updatePost(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		writeError(w, errors.ErrUnauthenticated)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeStatus(w, http.StatusBadRequest, "id must be a UUID")
		return
	}

	var req UpdatePostRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeStatus(w, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.posts.UpdatePost(id, req.Title, req.Content, user.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostResponse(post))
}

func (h *Handlers) deletePost(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		writeError(w, errors.ErrUnauthenticated)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeStatus(w, http.StatusBadRequest, "id must be a UUID")
		return
	}

	if err := h.posts.RemovePost(id, user.UserID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) createComment(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		writeError(w, errors.ErrUnauthenticated)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeStatus(w, http.StatusBadRequest, "id must be a UUID")
		return
	}

	var req CreateCommentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeStatus(w, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := h.comments.AddComment(id, req.Text, user.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCommentResponse(comment))
}

func (h *Handlers) listComments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeStatus(w, http.StatusBadRequest, "id must be a UUID")
		return
	}

	comments, err := h.comments.GetCommentsByPostID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	responses := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, toCommentResponse(comment))
	}
	writeJSON(w, http.StatusOK, responses)
}

func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["id"])
}

func decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeStatus(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeError maps the domain error taxonomy onto HTTP statuses. Every
// service failure lands on exactly one status; anything unexpected is
// a storage failure and surfaces as 500 without detail.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case stderrors.Is(err, errors.ErrEmptyTitle), stderrors.Is(err, errors.ErrEmptyText):
		writeStatus(w, http.StatusBadRequest, err.Error())
	case stderrors.Is(err, errors.ErrUnauthenticated):
		writeStatus(w, http.StatusUnauthorized, err.Error())
	case stderrors.Is(err, errors.ErrNotPostOwner):
		writeStatus(w, http.StatusForbidden, err.Error())
	case stderrors.Is(err, errors.ErrPostNotFound), stderrors.Is(err, errors.ErrCommentNotFound):
		writeStatus(w, http.StatusNotFound, err.Error())
	default:
		writeStatus(w, http.StatusInternalServerError, "internal error")
	}
}
