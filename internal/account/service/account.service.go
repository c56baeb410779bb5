package service

import (
	"database/sql"
	"errors"

	"docbuilder/internal/account/model"
	"docbuilder/internal/account/repository"
	"docbuilder/pkg/token"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailExists     = errors.New("email already exist")
	ErrPhoneExists     = errors.New("phone number already exist")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidOwner    = errors.New("invalid user")
)

type AccountService struct {
	Repo   *repository.AccountRepository
	Tokens *token.Issuer
}

func NewAccountService(repo *repository.AccountRepository, tokens *token.Issuer) *AccountService {
	return &AccountService{Repo: repo, Tokens: tokens}
}

// Signup creates an account after checking email and phone uniqueness.
// Email is checked first, so a request colliding on both reports the email.
func (s *AccountService) Signup(req model.SignupRequest) (string, error) {
	emailTaken, err := s.Repo.EmailExists(req.Email)
	if err != nil {
		return "", err
	}
	if emailTaken {
		return "", ErrEmailExists
	}

	phoneTaken, err := s.Repo.PhoneExists(req.Phone)
	if err != nil {
		return "", err
	}
	if phoneTaken {
		return "", ErrPhoneExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	if err := s.Repo.Create(id, req.Username, req.Name, req.Email, req.Phone, string(hash)); err != nil {
		return "", err
	}
	return id, nil
}

// Login verifies credentials and issues a signed token. The token is not
// required by the REST operations; only the event feed verifies it.
func (s *AccountService) Login(email, password string) (string, string, error) {
	account, err := s.Repo.GetByEmail(email)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", "", ErrInvalidEmail
		}
		return "", "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidPassword
	}

	signed, err := s.Tokens.Issue(account.ID, account.Email)
	if err != nil {
		return "", "", err
	}
	return account.ID, signed, nil
}

func (s *AccountService) Get(id string) (*model.Account, error) {
	account, err := s.Repo.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrInvalidOwner
		}
		return nil, err
	}
	return account, nil
}

// Logout only acknowledges the request for a known account; tokens are
// stateless, the client discards its copy.
func (s *AccountService) Logout(id string) error {
	exists, err := s.Repo.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrInvalidOwner
	}
	return nil
}
