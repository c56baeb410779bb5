package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"docbuilder/internal/account/model"
	"docbuilder/internal/account/service"
	"docbuilder/pkg/logger"
	"docbuilder/pkg/response"
)

type AccountHandler struct {
	Service *service.AccountService
}

func NewAccountHandler(svc *service.AccountService) *AccountHandler {
	return &AccountHandler{Service: svc}
}

func (h *AccountHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, "Invalid request body")
		return
	}

	userID, err := h.Service.Signup(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailExists):
			response.Fail(w, "email already exist")
		case errors.Is(err, service.ErrPhoneExists):
			response.Fail(w, "Phone number already exist")
		default:
			logger.Sugar.Errorf("Handler: Failed to sign up: %v", err)
			response.Fail(w, "Failed to create user")
		}
		return
	}

	response.JSON(w, model.SignupResponse{Base: response.OK("User created successfully"), UserID: userID})
}

func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, "Invalid request body")
		return
	}

	userID, signed, err := h.Service.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			response.Fail(w, "Invalid email")
		case errors.Is(err, service.ErrInvalidPassword):
			response.Fail(w, "Invalid password")
		default:
			logger.Sugar.Errorf("Handler: Failed to log in: %v", err)
			response.Fail(w, "Failed to log in")
		}
		return
	}

	response.JSON(w, model.LoginResponse{Base: response.OK("Login successful"), UserID: userID, Token: signed})
}

func (h *AccountHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req model.OwnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, "Invalid request body")
		return
	}

	account, err := h.Service.Get(req.UserID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOwner) {
			response.Fail(w, "Invalid user")
		} else {
			logger.Sugar.Errorf("Handler: Failed to fetch user %s: %v", req.UserID, err)
			response.Fail(w, "Failed to fetch user")
		}
		return
	}

	response.JSON(w, model.AccountResponse{Base: response.OK("User fetched successfully"), User: account})
}

func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req model.OwnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, "Invalid request body")
		return
	}

	if err := h.Service.Logout(req.UserID); err != nil {
		if errors.Is(err, service.ErrInvalidOwner) {
			response.Fail(w, "Invalid user")
		} else {
			logger.Sugar.Errorf("Handler: Failed to log out user %s: %v", req.UserID, err)
			response.Fail(w, "Failed to log out")
		}
		return
	}

	response.JSON(w, response.OK("User logged out successfully"))
}
