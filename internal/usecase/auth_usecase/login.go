package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"farmmarket/internal/domain/model"
	"farmmarket/internal/repository"
)

var (
	//メール不存在もパスワード不一致も同じエラーにする
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user inactive")
)

// アクセストークンの発行を約束。実装はmainで組む
type TokenIssuer interface {
	Issue(userID int64, role model.Role, tokenVersion int, now time.Time) (string, time.Time, error)
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	User        model.User
	AccessToken string
	ExpiresAt   time.Time
}

type LoginUsecase struct {
	users    repository.UserRepository
	verifier PasswordVerifier
	issuer   TokenIssuer
	clock    Clock
}

// DI
func NewLoginUsecase(
	users repository.UserRepository,
	verifier PasswordVerifier,
	issuer TokenIssuer,
	clock Clock,
) *LoginUsecase {
	return &LoginUsecase{
		users:    users,
		verifier: verifier,
		issuer:   issuer,
		clock:    clock,
	}
}

func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (LoginOutput, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return LoginOutput{}, ErrInvalidCredentials
	}

	user, err := u.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return LoginOutput{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginOutput{}, err
	}

	if !u.verifier.Verify(user.PasswordHash, in.Password) {
		return LoginOutput{}, ErrInvalidCredentials
	}

	if !user.IsActive {
		return LoginOutput{}, ErrUserInactive
	}

	now := u.clock.Now()
	token, expiresAt, err := u.issuer.Issue(user.ID, user.Role, user.TokenVersion, now)
	if err != nil {
		return LoginOutput{}, err
	}

	//最終ログインを残す。失敗してもログインは成立させる
	user.LastLoginAt = &now
	user.UpdatedAt = now
	_ = u.users.Update(ctx, user)

	return LoginOutput{
		User:        *user,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
