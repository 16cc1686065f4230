package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/albapay/albapay-backend-go/internal/domain/user"
	"github.com/albapay/albapay-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	userService user.UserService
}

func NewAuthHandler(userService user.UserService) AuthHandler {
	return &AuthHandlerImpl{userService: userService}
}

// Register implements AuthHandler.
func (h *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req user.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	auth, err := h.userService.Register(r.Context(), req)
	if err != nil {
		slog.Error("Failed to register user", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Account created successfully", auth)
}

// Login implements AuthHandler.
func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req user.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	auth, err := h.userService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, auth)
}
