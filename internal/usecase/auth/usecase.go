package auth

import (
	"context"
	"errors"
	"time"

	domain "loanflow-backend/internal/domain/user"
	"loanflow-backend/pkg/id"
	"loanflow-backend/pkg/token"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Usecase struct {
	users  domain.Repository
	secret []byte
	ttl    time.Duration
}

func NewUsecase(users domain.Repository, secret []byte, ttl time.Duration) *Usecase {
	return &Usecase{users: users, secret: secret, ttl: ttl}
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthDTO struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Register creates a CUSTOMER account and returns a signed token. Admin
// accounts are provisioned out of band, never through this endpoint.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*AuthDTO, error) {
	_, err := u.users.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, domain.ErrEmailTaken
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usr := &domain.User{
		UserID:       id.New(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
	}
	if err := u.users.Create(ctx, usr); err != nil {
		return nil, err
	}
	return u.issue(usr)
}

// Login verifies credentials and returns a signed token. A missing account
// and a wrong password are indistinguishable to the caller.
func (u *Usecase) Login(ctx context.Context, in LoginInput) (*AuthDTO, error) {
	usr, err := u.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u.issue(usr)
}

func (u *Usecase) issue(usr *domain.User) (*AuthDTO, error) {
	tok, err := token.Sign(u.secret, usr.UserID, usr.Email, usr.Name, string(usr.Role), u.ttl)
	if err != nil {
		return nil, err
	}
	return &AuthDTO{Token: tok, Role: string(usr.Role), Name: usr.Name, Email: usr.Email}, nil
}
