package services

import (
	"database/sql"
	"errors"

	"shopledger/internal/auth"
	"shopledger/internal/domain"
	"shopledger/internal/repos"
	"shopledger/internal/validate"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrBadCreds = errors.New("invalid email or password")

type AuthService struct {
	Users  *repos.UserRepo
	Tokens *auth.Tokens
}

func NewAuthService(users *repos.UserRepo, tokens *auth.Tokens) *AuthService {
	return &AuthService{Users: users, Tokens: tokens}
}

func (s *AuthService) Signup(email, password, shopName string) (*domain.User, string, error) {
	email, ok := validate.Email(email)
	if !ok {
		return nil, "", &domain.ValidationError{Msg: "email is not valid"}
	}
	if !validate.Password(password) {
		return nil, "", &domain.ValidationError{Msg: "password is not strong enough"}
	}
	shopName, ok = validate.ShopName(shopName)
	if !ok {
		return nil, "", &domain.ValidationError{Msg: "shop name is required"}
	}
	if _, err := s.Users.ByEmail(email); err == nil {
		return nil, "", &domain.ValidationError{Msg: "email already in use"}
	} else if err != sql.ErrNoRows {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, "", err
	}
	u := &domain.User{ID: uuid.NewString(), Email: email, ShopName: shopName, Hash: string(hash)}
	if err := s.Users.Create(u); err != nil {
		return nil, "", err
	}
	tok, err := s.Tokens.Mint(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, tok, nil
}

func (s *AuthService) Login(email, password string) (*domain.User, string, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, "", ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, "", ErrBadCreds
	}
	tok, err := s.Tokens.Mint(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, tok, nil
}

// Resolve turns a verified bearer token into the owning user.
func (s *AuthService) Resolve(token string) (*domain.User, error) {
	uid, err := s.Tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	return s.Users.ByID(uid)
}

func (s *AuthService) Profile(userID string) (*domain.User, error) {
	return s.Users.ByID(userID)
}
