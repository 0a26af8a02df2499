package handler

import (
	"net/http"

	"shopdesk/internal/service"

	"github.com/rs/zerolog"
)

// AuthHandler handles owner login HTTP requests.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("handler", "auth").Logger(),
	}
}

type loginRequest struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

type otpRequest struct {
	Mobile string `json:"mobile"`
	OTP    string `json:"otp,omitempty"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Login handles POST /api/auth/login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	token, err := h.service.Login(r.Context(), req.Mobile, req.Password)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

// RequestOTP handles POST /api/auth/otp/request requests.
func (h *AuthHandler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	var req otpRequest
	if err := decodeJSON(r, &req); err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	if err := h.service.RequestOTP(r.Context(), req.Mobile); err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	// Always 202: whether the mobile exists is not disclosed.
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "OTP sent if the mobile number is registered"})
}

// VerifyOTP handles POST /api/auth/otp/verify requests.
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req otpRequest
	if err := decodeJSON(r, &req); err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	token, err := h.service.VerifyOTP(r.Context(), req.Mobile, req.OTP)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}
