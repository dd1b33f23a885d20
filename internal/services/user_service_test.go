package services

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rohitYaduvanshi/Propertix-Backend/internal/models"
	appErr "github.com/rohitYaduvanshi/Propertix-Backend/pkg/errors"
	"github.com/rohitYaduvanshi/Propertix-Backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Set(zap.NewNop())
	os.Exit(m.Run())
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id any, dest *models.User) error {
	args := m.Called(ctx, id, dest)
	return args.Error(0)
}

func (m *mockUserRepository) GetByWallet(ctx context.Context, wallet string, dest *models.User) error {
	args := m.Called(ctx, wallet, dest)
	if v := args.Get(0); v != nil {
		*dest = *v.(*models.User)
		return nil
	}
	return args.Error(1)
}

func strPtr(s string) *string { return &s }

func TestRegisterLowercasesWallet(t *testing.T) {
	for _, in := range []string{"0xABC123", "0xabc123", "0xAbC123"} {
		repo := new(mockUserRepository)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.WalletAddress == "0xabc123"
		})).Return(nil)
		svc := NewUserService(repo)

		u, err := svc.Register(context.Background(), RegisterInput{
			Name:          strPtr("Alice"),
			Email:         strPtr("a@x.com"),
			Role:          strPtr("buyer"),
			WalletAddress: in,
		})
		require.NoError(t, err)
		assert.Equal(t, "0xabc123", u.WalletAddress)
		assert.Equal(t, "Alice", *u.Name)
		assert.Equal(t, "buyer", *u.Role)
		repo.AssertExpectations(t)
	}
}

func TestRegisterMissingWalletDoesNotTouchStorage(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{Name: strPtr("Bob"), WalletAddress: ""})
	require.Error(t, err)
	assert.True(t, appErr.IsCode(err, appErr.CodeInvalid))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterKeepsSurroundingWhitespace(t *testing.T) {
	repo := new(mockUserRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.WalletAddress == "  0xabc123 "
	})).Return(nil)
	svc := NewUserService(repo)

	u, err := svc.Register(context.Background(), RegisterInput{WalletAddress: "  0xAbC123 "})
	require.NoError(t, err)
	assert.Equal(t, "  0xabc123 ", u.WalletAddress)
	repo.AssertExpectations(t)
}

func TestRegisterDuplicateIsDeterministic(t *testing.T) {
	repo := new(mockUserRepository)
	repo.On("Create", mock.Anything, mock.Anything).
		Return(appErr.Wrap(errors.New("UNIQUE constraint failed"), appErr.CodeAlreadyExists, "entity already exists"))
	svc := NewUserService(repo)

	for i := 0; i < 2; i++ {
		_, err := svc.Register(context.Background(), RegisterInput{WalletAddress: "0xABC"})
		require.Error(t, err)
		assert.True(t, appErr.IsCode(err, appErr.CodeAlreadyExists))
	}
}

func TestRegisterStorageFailure(t *testing.T) {
	repo := new(mockUserRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))
	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{WalletAddress: "0xABC"})
	require.Error(t, err)
	assert.True(t, appErr.IsCode(err, appErr.CodeInternal))
}

func TestGetByWalletIsCaseInsensitive(t *testing.T) {
	user := &models.User{ID: uuid.New(), WalletAddress: "0xabc123"}
	repo := new(mockUserRepository)
	repo.On("GetByWallet", mock.Anything, "0xabc123", mock.Anything).Return(user, nil)
	svc := NewUserService(repo)

	lower, err := svc.GetByWallet(context.Background(), "0xabc123")
	require.NoError(t, err)
	upper, err := svc.GetByWallet(context.Background(), "0XABC123")
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
	repo.AssertNumberOfCalls(t, "GetByWallet", 2)
}

func TestGetByWalletNotFoundIsNotStorageFailure(t *testing.T) {
	repo := new(mockUserRepository)
	repo.On("GetByWallet", mock.Anything, "0xdeadbeef", mock.Anything).
		Return(nil, appErr.New(appErr.CodeNotFound, "user not found"))
	svc := NewUserService(repo)

	_, err := svc.GetByWallet(context.Background(), "0xDEADBEEF")
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
	assert.False(t, appErr.IsCode(err, appErr.CodeInternal))
}

func TestGetByWalletStorageFailure(t *testing.T) {
	repo := new(mockUserRepository)
	repo.On("GetByWallet", mock.Anything, "0x1", mock.Anything).
		Return(nil, appErr.Wrap(errors.New("i/o timeout"), appErr.CodeInternal, "get user by wallet failed"))
	svc := NewUserService(repo)

	_, err := svc.GetByWallet(context.Background(), "0x1")
	assert.True(t, appErr.IsCode(err, appErr.CodeInternal))
}

func TestGetByWalletEmptyIsNotFound(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo)

	_, err := svc.GetByWallet(context.Background(), "")
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
	repo.AssertNotCalled(t, "GetByWallet", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetByWalletWhitespaceIsNotFound(t *testing.T) {
	repo := new(mockUserRepository)
	repo.On("GetByWallet", mock.Anything, "  ", mock.Anything).
		Return(nil, appErr.New(appErr.CodeNotFound, "user not found"))
	svc := NewUserService(repo)

	_, err := svc.GetByWallet(context.Background(), "  ")
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
	assert.False(t, appErr.IsCode(err, appErr.CodeInvalid))
	repo.AssertExpectations(t)
}
