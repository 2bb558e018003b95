package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"fastlane-backend/internal/apperrors"
	"fastlane-backend/internal/domain"
	"fastlane-backend/internal/logger"
	"fastlane-backend/internal/repository"
	"fastlane-backend/internal/security"
)

type authService struct {
	accountRepo repository.AccountRepository
	tokenRepo   repository.TokenRepository
	tokens      security.TokenManager
}

func NewAuthService(accountRepo repository.AccountRepository, tokenRepo repository.TokenRepository, tokens security.TokenManager) AuthService {
	return &authService{accountRepo: accountRepo, tokenRepo: tokenRepo, tokens: tokens}
}

// Login verifies the credentials and issues an access token. Every failure
// mode reads the same to the caller: unknown email, wrong password and
// malformed input all come back as access denied.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.Account, string, error) {
	logger.EnterMethod("authService.Login")

	req := &LoginRequest{Email: &email, Password: &password}
	if err := req.Validate(); err != nil {
		logger.ExitMethodWithError("authService.Login", err)
		return nil, "", err
	}

	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		err = apperrors.New(apperrors.AccessDenied)
		logger.ExitMethodWithError("authService.Login", err)
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		err = apperrors.New(apperrors.AccessDenied)
		logger.ExitMethodWithError("authService.Login", err)
		return nil, "", err
	}

	token, err := s.tokens.GenerateAccessToken(account)
	if err != nil {
		logger.ExitMethodWithError("authService.Login", err)
		return nil, "", apperrors.From(err)
	}
	if err := s.tokenRepo.Save(ctx, token, account.ID); err != nil {
		logger.ExitMethodWithError("authService.Login", err)
		return nil, "", apperrors.From(err)
	}
	logger.ExitMethod("authService.Login", "accountID", account.ID)
	return account, token, nil
}

// Logout revokes the presented token so it stops authenticating requests even
// though its JWT expiry has not passed yet.
func (s *authService) Logout(ctx context.Context, token string) error {
	logger.EnterMethod("authService.Logout")
	if err := s.tokenRepo.Revoke(ctx, token); err != nil {
		logger.ExitMethodWithError("authService.Logout", err)
		return apperrors.From(err)
	}
	logger.ExitMethod("authService.Logout")
	return nil
}
