package services

import (
	"context"
	"log"

	"limetrip/internal/models/db_models"
	"limetrip/internal/models/request_models"
	"limetrip/internal/models/response_models"
	"limetrip/internal/repositories"
	"limetrip/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	GetProfile(ctx context.Context, userId string) (*response_models.ProfileResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		log.Printf("Token generation failed: %v", err)
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Username:     request.Username,
		FullName:     request.FullName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         "user", // default role
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) GetProfile(ctx context.Context, userId string) (*response_models.ProfileResponse, error) {
	account, err := a.accountRepo.FindById(ctx, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	return &response_models.ProfileResponse{
		ID:       account.ID.String(),
		Username: account.Username,
		FullName: account.FullName,
		Name:     account.Name,
		Email:    account.Email,
	}, nil
}
