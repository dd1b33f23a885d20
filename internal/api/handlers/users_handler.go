package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rohitYaduvanshi/Propertix-Backend/internal/api/types"
	"github.com/rohitYaduvanshi/Propertix-Backend/internal/services"
)

// maxBodyBytes bounds the registration payload.
const maxBodyBytes = 1 << 20

type UsersHandler struct {
	users services.UserService
}

func NewUsersHandler(users services.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// Register godoc
// @Summary      Register a user by wallet address
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      types.RegisterRequest  true  "User to register"
// @Success      201   {object}  types.RegisterResponse
// @Failure      400   {object}  types.APIResponse
// @Failure      409   {object}  types.APIResponse
// @Failure      500   {object}  types.APIResponse
// @Router       /api/auth/register [post]
func (h *UsersHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest

	// An empty body is treated like {} so it fails on the missing wallet.
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}

	u, err := h.users.Register(r.Context(), services.RegisterInput{
		Name:          req.Name,
		Email:         req.Email,
		Role:          req.Role,
		WalletAddress: req.WalletAddress,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, types.RegisterResponse{
		Success: true,
		Message: "User registered",
		User:    u,
	})
}

// GetByWallet godoc
// @Summary      Fetch a user profile by wallet address
// @Tags         auth
// @Produce      json
// @Param        address  path      string  true  "Wallet address (case-insensitive)"
// @Success      200      {object}  models.User
// @Failure      404      {object}  types.APIResponse
// @Failure      500      {object}  types.APIResponse
// @Router       /api/auth/user/{address} [get]
func (h *UsersHandler) GetByWallet(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.GetByWallet(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}
