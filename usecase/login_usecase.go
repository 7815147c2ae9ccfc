package usecase

import (
	"context"
	"time"

	"github.com/Super-Badmen-Viper/CineSong/domain"
	"github.com/Super-Badmen-Viper/CineSong/domain/domain_util"
)

type loginUsecase struct {
	userRepository domain.UserRepository
	timeout        time.Duration
}

func NewLoginUsecase(userRepository domain.UserRepository, timeout time.Duration) domain.LoginUsecase {
	return &loginUsecase{
		userRepository: userRepository,
		timeout:        timeout,
	}
}

func (u *loginUsecase) GetUserByName(ctx context.Context, name string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	return u.userRepository.GetByName(ctx, name)
}

func (u *loginUsecase) CreateAccessToken(user *domain.User, secret string, expiryHour int) (string, error) {
	claims := &domain.JwtCustomClaims{
		Name: user.Name,
		ID:   user.ID.Hex(),
	}
	claims.ExpiresAt = domain_util.NewExpiry(expiryHour)
	return domain_util.CreateAccessToken(claims, secret)
}
