package auth

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"farmmarket/internal/domain/model"
	"farmmarket/internal/repository"
)

// 会員登録の入力。roleに応じたプロフィールも一緒に作る
type RegisterUserInput struct {
	Email    string
	Password string
	Role     string
	Name     string
	Location string
	Phone    string
}

// 会員登録の出力
type RegisterUserOutput struct {
	User model.User
}

var (
	// 入力が不正
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrInvalidRole        = errors.New("invalid role")
	ErrNameRequired       = errors.New("name required")
	ErrLocationRequired   = errors.New("location required")

	// 競合
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// 現在の時間
type Clock interface {
	Now() time.Time
}

// RegisterUserUsecaseは会員登録の処理。
// User行とroleプロフィール行は同一トランザクションで作る
type RegisterUserUsecase struct {
	tx     repository.TransactionManager
	hasher PasswordHasher
	clock  Clock
}

// DI
func NewRegisterUserUsecase(
	tx repository.TransactionManager,
	hasher PasswordHasher,
	clock Clock,
) *RegisterUserUsecase {
	return &RegisterUserUsecase{
		tx:     tx,
		hasher: hasher,
		clock:  clock,
	}
}

func (u *RegisterUserUsecase) Execute(ctx context.Context, in RegisterUserInput) (RegisterUserOutput, error) {
	email := strings.TrimSpace(in.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return RegisterUserOutput{}, ErrInvalidEmailFormat
	}

	// パスワード最低文字数（MVP: 8）
	if len(in.Password) < 8 {
		return RegisterUserOutput{}, ErrPasswordTooShort
	}

	role := model.Role(strings.ToUpper(strings.TrimSpace(in.Role)))
	switch role {
	case model.RoleCustomer, model.RoleFarmer, model.RoleCourier:
	default:
		return RegisterUserOutput{}, ErrInvalidRole
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return RegisterUserOutput{}, ErrNameRequired
	}

	//農家は集荷場所として必須
	location := strings.TrimSpace(in.Location)
	if role == model.RoleFarmer && location == "" {
		return RegisterUserOutput{}, ErrLocationRequired
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return RegisterUserOutput{}, err
	}

	now := u.clock.Now()
	user := model.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = u.tx.WithinTx(ctx, func(r repository.TxRepos) error {
		if err := r.Users().Create(ctx, &user); err != nil {
			//email一意制約に当たったら409相当
			if errors.Is(err, repository.ErrDuplicate) {
				return ErrEmailAlreadyExists
			}
			return err
		}

		switch role {
		case model.RoleCustomer:
			_, err = r.Customers().Create(ctx, model.Customer{
				UserID:    user.ID,
				Name:      name,
				Location:  location,
				CreatedAt: now,
				UpdatedAt: now,
			})
		case model.RoleFarmer:
			_, err = r.Farmers().Create(ctx, model.Farmer{
				UserID:    user.ID,
				Name:      name,
				Location:  location,
				CreatedAt: now,
				UpdatedAt: now,
			})
		case model.RoleCourier:
			_, err = r.Couriers().Create(ctx, model.Courier{
				UserID:    user.ID,
				Name:      name,
				Phone:     strings.TrimSpace(in.Phone),
				Location:  location,
				CreatedAt: now,
				UpdatedAt: now,
			})
		}
		return err
	})
	if err != nil {
		return RegisterUserOutput{}, err
	}

	return RegisterUserOutput{User: user}, nil
}
