package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Nishan123/yumm-ai/logger"
	"github.com/Nishan123/yumm-ai/middleware"
	"github.com/Nishan123/yumm-ai/models"
	"github.com/Nishan123/yumm-ai/services"

	"go.uber.org/zap"
)

type AuthController struct {
	auth         *services.AuthService
	jwtSecretKey []byte
}

func NewAuthController(auth *services.AuthService, jwtSecretKey []byte) *AuthController {
	return &AuthController{auth: auth, jwtSecretKey: jwtSecretKey}
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := c.auth.Register(r.Context(), req.Email, req.Name, req.Password)
	if errors.Is(err, models.ErrEmailTaken) {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		logger.Error("registration failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	token, err := middleware.GenerateJWT(user.UID, user.Email, c.jwtSecretKey)
	if err != nil {
		logger.Error("token generation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	writeData(w, http.StatusCreated, authResponse{User: user, Token: token})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := c.auth.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		logger.Error("login failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	token, err := middleware.GenerateJWT(user.UID, user.Email, c.jwtSecretKey)
	if err != nil {
		logger.Error("token generation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	writeData(w, http.StatusOK, authResponse{User: user, Token: token})
}

func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	user, err := c.auth.GetUser(r.Context(), userID)
	if errors.Is(err, models.ErrNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		logger.Error("failed to fetch user", zap.String("user_id", userID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	writeData(w, http.StatusOK, user)
}
