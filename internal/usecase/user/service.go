package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/adiwarman/forum-api/domain"
	"github.com/adiwarman/forum-api/internal/auth"
)

type service struct {
	userRepo   domain.UserRepository
	tokenStore domain.RefreshTokenStore
	jwtSecret  []byte
	accessTTL  time.Duration
}

var _ domain.UserUsecase = (*service)(nil)

// NewService will create a new user service object
func NewService(userRepo domain.UserRepository, tokenStore domain.RefreshTokenStore, jwtSecret []byte, accessTTL time.Duration) *service {
	return &service{
		userRepo:   userRepo,
		tokenStore: tokenStore,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
	}
}

func (s *service) Register(ctx context.Context, username, password, fullname string) (domain.User, error) {
	if err := s.userRepo.VerifyAvailableUsername(ctx, username); err != nil {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		Username: username,
		Password: string(hash),
		Fullname: fullname,
	}
	if err := s.userRepo.Insert(ctx, &user); err != nil {
		return domain.User{}, err
	}

	return user, nil
}

func (s *service) Login(ctx context.Context, username, password string) (domain.TokenPair, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		// Unknown user and wrong password are indistinguishable to the caller.
		return domain.TokenPair{}, domain.ErrNotAuthenticated
	}
	if err != nil {
		return domain.TokenPair{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return domain.TokenPair{}, domain.ErrNotAuthenticated
	}

	accessToken, err := auth.GenerateAccessToken(s.jwtSecret, user.ID, user.Username, s.accessTTL)
	if err != nil {
		return domain.TokenPair{}, err
	}

	refreshToken := uuid.NewString()
	if err := s.tokenStore.Save(ctx, refreshToken, user.ID); err != nil {
		logrus.Errorf("failed to save refresh token: %v", err)
		return domain.TokenPair{}, err
	}

	return domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	userID, err := s.tokenStore.Resolve(ctx, refreshToken)
	if err != nil {
		return "", err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	return auth.GenerateAccessToken(s.jwtSecret, user.ID, user.Username, s.accessTTL)
}

func (s *service) Logout(ctx context.Context, refreshToken string) error {
	if _, err := s.tokenStore.Resolve(ctx, refreshToken); err != nil {
		return err
	}
	return s.tokenStore.Delete(ctx, refreshToken)
}
