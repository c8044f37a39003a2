package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Alvarenga144/InventorySuite/internal/http/respond"
	"github.com/Alvarenga144/InventorySuite/internal/user"
)

type Handler struct {
	svc    *user.Service
	tokens *user.TokenManager
}

func NewHandler(svc *user.Service, tokens *user.TokenManager) *Handler {
	return &Handler{svc: svc, tokens: tokens}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
}

type registerRequest struct {
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token      string    `json:"token"`
	Email      string    `json:"email"`
	FirstName  string    `json:"nombre"`
	LastName   string    `json:"apellido"`
	UserID     uuid.UUID `json:"userId"`
	Expiration time.Time `json:"expiration"`
}

func (h *Handler) respondWithToken(w http.ResponseWriter, u *user.User) {
	token, expiresAt, err := h.tokens.Issue(u)
	if err != nil {
		slog.Error("failed to issue token", "error", err, "user_id", u.ID)
		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	respond.JSON(w, http.StatusOK, authResponse{
		Token:      token,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		UserID:     u.ID,
		Expiration: expiresAt,
	})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.svc.Register(r.Context(), user.RegisterParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		var vErr *user.ValidationError

		switch {
		case errors.Is(err, user.ErrEmailTaken):
			respond.Error(w, http.StatusBadRequest, "email already registered")
		case errors.As(err, &vErr):
			respond.Error(w, http.StatusBadRequest, vErr.Error())
		default:
			slog.Error("failed to register user", "error", err)
			respond.Error(w, http.StatusInternalServerError, "internal error")
		}

		return
	}

	h.respondWithToken(w, u)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			respond.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		slog.Error("failed to log in user", "error", err)
		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	h.respondWithToken(w, u)
}
