package service

import (
	"context"
	"fmt"
	"time"

	"shopdesk/internal/auth"
	"shopdesk/internal/billing"
	"shopdesk/internal/model"
	"shopdesk/internal/repository"

	"github.com/rs/zerolog"
)

const otpLength = 6

type authService struct {
	ownerRepo repository.OwnerRepository
	tokens    *auth.TokenIssuer
	otpTTL    time.Duration
	clock     billing.Clock
	logger    zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(
	ownerRepo repository.OwnerRepository,
	tokens *auth.TokenIssuer,
	otpTTL time.Duration,
	clock billing.Clock,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		ownerRepo: ownerRepo,
		tokens:    tokens,
		otpTTL:    otpTTL,
		clock:     clock,
		logger:    logger.With().Str("service", "auth").Logger(),
	}
}

// Login verifies an owner's mobile number and password and returns a session
// token. A missing owner and a wrong password produce the same error.
func (s *authService) Login(ctx context.Context, mobile, password string) (string, error) {
	owner, err := s.ownerRepo.GetByMobile(ctx, mobile)
	if err != nil {
		return "", fmt.Errorf("failed to get owner: %w", err)
	}
	if owner == nil || !auth.CheckPassword(owner.PasswordHash, password) {
		return "", model.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(owner.ID, s.clock.Now())
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("owner_id", owner.ID.String()).Msg("owner logged in")
	return token, nil
}

// RequestOTP generates a one-time code for the owner and stores it with an
// expiry. The code is logged in place of an SMS gateway.
func (s *authService) RequestOTP(ctx context.Context, mobile string) error {
	owner, err := s.ownerRepo.GetByMobile(ctx, mobile)
	if err != nil {
		return fmt.Errorf("failed to get owner: %w", err)
	}
	if owner == nil {
		// Do not reveal which mobile numbers exist.
		s.logger.Warn().Str("mobile", mobile).Msg("OTP requested for unknown mobile")
		return nil
	}

	code, err := auth.GenerateOTP(otpLength)
	if err != nil {
		return err
	}

	expiresAt := s.clock.Now().Add(s.otpTTL)
	if err := s.ownerRepo.SetOTP(ctx, owner.ID, code, expiresAt); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	s.logger.Info().
		Str("owner_id", owner.ID.String()).
		Str("otp", code).
		Time("expires_at", expiresAt).
		Msg("OTP issued")

	return nil
}

// VerifyOTP checks a one-time code and returns a session token. A verified
// code is cleared so it cannot be replayed.
func (s *authService) VerifyOTP(ctx context.Context, mobile, otp string) (string, error) {
	owner, err := s.ownerRepo.GetByMobile(ctx, mobile)
	if err != nil {
		return "", fmt.Errorf("failed to get owner: %w", err)
	}
	if owner == nil {
		return "", model.ErrInvalidOTP
	}

	now := s.clock.Now()
	if owner.OTPCode == "" || owner.OTPCode != otp ||
		owner.OTPExpiresAt == nil || now.After(*owner.OTPExpiresAt) {
		return "", model.ErrInvalidOTP
	}

	if err := s.ownerRepo.ClearOTP(ctx, owner.ID); err != nil {
		return "", fmt.Errorf("failed to clear OTP: %w", err)
	}

	token, err := s.tokens.Issue(owner.ID, now)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("owner_id", owner.ID.String()).Msg("owner logged in via OTP")
	return token, nil
}
