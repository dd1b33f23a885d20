package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/rohitYaduvanshi/Propertix-Backend/internal/models"
	"github.com/rohitYaduvanshi/Propertix-Backend/internal/repository"
	appErr "github.com/rohitYaduvanshi/Propertix-Backend/pkg/errors"
	"github.com/rohitYaduvanshi/Propertix-Backend/pkg/logger"
)

// RegisterInput carries the registration fields. Optional fields are nil
// when the client omitted them.
type RegisterInput struct {
	Name          *string
	Email         *string
	Role          *string
	WalletAddress string `validate:"required"`
}

type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	GetByWallet(ctx context.Context, wallet string) (*models.User, error)
}

type userService struct {
	users    repository.UserRepository
	validate *validator.Validate
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{
		users:    users,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Register stores a new user. A wallet address that is already registered,
// in any letter case, is rejected with CodeAlreadyExists.
func (s *userService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.WalletAddress = models.NormalizeWallet(in.WalletAddress)
	if err := s.validate.Struct(in); err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInvalid, "walletAddress is required").WithMeta("field", "walletAddress")
	}

	user := &models.User{
		Name:          in.Name,
		Email:         in.Email,
		Role:          in.Role,
		WalletAddress: in.WalletAddress,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if appErr.IsCode(err, appErr.CodeAlreadyExists) {
			return nil, appErr.Wrap(err, appErr.CodeAlreadyExists, "wallet address already registered")
		}
		logger.L().Error("register user failed", zap.String("wallet", in.WalletAddress), zap.Error(err))
		return nil, appErr.Wrap(err, appErr.CodeInternal, "failed to register user")
	}

	return user, nil
}

// GetByWallet looks a user up by wallet address, ignoring letter case.
func (s *userService) GetByWallet(ctx context.Context, wallet string) (*models.User, error) {
	wallet = models.NormalizeWallet(wallet)
	if wallet == "" {
		return nil, appErr.New(appErr.CodeNotFound, "user not found")
	}

	var user models.User
	if err := s.users.GetByWallet(ctx, wallet, &user); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, err
		}
		logger.L().Error("get user by wallet failed", zap.String("wallet", wallet), zap.Error(err))
		return nil, appErr.Wrap(err, appErr.CodeInternal, "failed to fetch user")
	}

	return &user, nil
}
