package repository

import (
	"database/sql"

	"docbuilder/internal/account/model"
	"docbuilder/pkg/logger"
)

type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

func (r *AccountRepository) Create(id, username, name, email, phone, passwordHash string) error {
	_, err := r.DB.Exec(`INSERT INTO accounts (id, username, name, email, phone, password_hash, created_at) VALUES ($1, $2, $3, $4, $5, $6, NOW())`,
		id, username, name, email, phone, passwordHash)
	if err != nil {
		logger.Sugar.Errorf("Failed to create account: %v", err)
	}
	return err
}

func (r *AccountRepository) EmailExists(email string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM accounts WHERE email = $1)", email).Scan(&exists)
	if err != nil {
		logger.Sugar.Errorf("Failed to check email %s: %v", email, err)
	}
	return exists, err
}

func (r *AccountRepository) PhoneExists(phone string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM accounts WHERE phone = $1)", phone).Scan(&exists)
	if err != nil {
		logger.Sugar.Errorf("Failed to check phone %s: %v", phone, err)
	}
	return exists, err
}

// Exists is the single existence lookup every authorized store operation
// performs against the supplied owner id.
func (r *AccountRepository) Exists(id string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM accounts WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		logger.Sugar.Errorf("Failed to check account %s: %v", id, err)
	}
	return exists, err
}

func (r *AccountRepository) GetByEmail(email string) (*model.Account, error) {
	var a model.Account
	err := r.DB.QueryRow("SELECT id, username, name, email, phone, password_hash, created_at FROM accounts WHERE email = $1", email).
		Scan(&a.ID, &a.Username, &a.Name, &a.Email, &a.Phone, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Sugar.Errorf("Failed to get account by email %s: %v", email, err)
		}
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepository) GetByID(id string) (*model.Account, error) {
	var a model.Account
	err := r.DB.QueryRow("SELECT id, username, name, email, phone, password_hash, created_at FROM accounts WHERE id = $1", id).
		Scan(&a.ID, &a.Username, &a.Name, &a.Email, &a.Phone, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Sugar.Errorf("Failed to get account %s: %v", id, err)
		}
		return nil, err
	}
	return &a, nil
}
