package impl

import (
	"context"
	"testing"

	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"
	"flora/internal/domain/repository"
	mockRepo "flora/internal/mocks/repository"
	mockSvc "flora/internal/mocks/service"
	"flora/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (usecase.AuthUsecase, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher, *mockSvc.MockTokenService) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	service := NewAuthService(AuthServiceParams{
		UserRepo:     mockUserRepo,
		Hasher:       mockHasher,
		TokenService: mockTokens,
		Logger:       newDiscardLogger(),
	})

	return service, mockUserRepo, mockHasher, mockTokens
}

func TestAuthService_Register_Success(t *testing.T) {
	service, mockUserRepo, mockHasher, _ := newAuthService(t)
	ctx := context.Background()

	mockHasher.EXPECT().Hash("hunter22").Return("$2a$10$hashed", nil)
	mockUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = 42
		}).
		Return(nil)

	user, err := service.Register(ctx, usecase.RegisterInput{
		Username:  "  alice  ",
		Password:  "hunter22",
		FirstName: "Alice",
		LastName:  "Smith",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "$2a$10$hashed", user.PasswordHash)
	assert.Equal(t, entity.RoleGrower, user.Role)
	assert.False(t, user.RegisteredAt.IsZero())
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	service, _, _, _ := newAuthService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, usecase.RegisterInput{Username: "   ", Password: "pw"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidRequest)

	_, err = service.Register(ctx, usecase.RegisterInput{Username: "alice", Password: ""})
	require.ErrorIs(t, err, domainerrors.ErrInvalidRequest)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	service, mockUserRepo, mockHasher, _ := newAuthService(t)
	ctx := context.Background()

	mockHasher.EXPECT().Hash("pw").Return("hash", nil)
	mockUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrUsernameTaken)

	_, err := service.Register(ctx, usecase.RegisterInput{Username: "alice", Password: "pw"})
	require.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	service, _, mockHasher, _ := newAuthService(t)
	ctx := context.Background()

	mockHasher.EXPECT().Hash("pw").Return("", errors.New("cost out of range"))

	_, err := service.Register(ctx, usecase.RegisterInput{Username: "alice", Password: "pw"})
	require.ErrorIs(t, err, domainerrors.ErrInternalError)
}

func TestAuthService_Login_Success(t *testing.T) {
	service, mockUserRepo, mockHasher, mockTokens := newAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           7,
		Username:     "alice",
		PasswordHash: "hash",
		Role:         entity.RoleGrower,
	}

	mockUserRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	mockHasher.EXPECT().Check("pw", "hash").Return(true)
	mockTokens.EXPECT().
		Issue(mock.AnythingOfType("*entity.Principal")).
		Return("signed.jwt.token", nil)

	output, err := service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.Token)
	assert.Equal(t, user, output.User)
}

func TestAuthService_Login_WhitespaceUsername(t *testing.T) {
	service, _, _, _ := newAuthService(t)
	ctx := context.Background()

	_, err := service.Login(ctx, usecase.LoginInput{Username: "   ", Password: "pw"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidRequest)
}

func TestAuthService_Login_TrimsUsername(t *testing.T) {
	service, mockUserRepo, mockHasher, mockTokens := newAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: 7, Username: "alice", PasswordHash: "hash", Role: entity.RoleGrower}

	mockUserRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	mockHasher.EXPECT().Check("pw", "hash").Return(true)
	mockTokens.EXPECT().
		Issue(mock.AnythingOfType("*entity.Principal")).
		Return("signed.jwt.token", nil)

	output, err := service.Login(ctx, usecase.LoginInput{Username: "  alice  ", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.Token)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	service, mockUserRepo, _, _ := newAuthService(t)
	ctx := context.Background()

	mockUserRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := service.Login(ctx, usecase.LoginInput{Username: "ghost", Password: "pw"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	service, mockUserRepo, mockHasher, _ := newAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: 7, Username: "alice", PasswordHash: "hash", Role: entity.RoleGrower}

	mockUserRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	mockHasher.EXPECT().Check("wrong", "hash").Return(false)

	_, err := service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "wrong"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_RepositoryFailure(t *testing.T) {
	service, mockUserRepo, _, _ := newAuthService(t)
	ctx := context.Background()

	mockUserRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, errors.New("connection refused"))

	_, err := service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "pw"})
	require.ErrorIs(t, err, domainerrors.ErrAuthServiceUnavailable)
}

func TestAuthService_Login_TokenFailure(t *testing.T) {
	service, mockUserRepo, mockHasher, mockTokens := newAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: 7, Username: "alice", PasswordHash: "hash", Role: entity.RoleGrower}

	mockUserRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	mockHasher.EXPECT().Check("pw", "hash").Return(true)
	mockTokens.EXPECT().
		Issue(mock.AnythingOfType("*entity.Principal")).
		Return("", errors.New("no signing key"))

	_, err := service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "pw"})
	require.ErrorIs(t, err, domainerrors.ErrAuthServiceUnavailable)
}

func TestAuthService_CurrentUser_Success(t *testing.T) {
	service, mockUserRepo, _, _ := newAuthService(t)
	ctx := ctxWithPrincipal(7, entity.RoleGrower)

	user := &entity.User{ID: 7, Username: "alice", Role: entity.RoleGrower}
	mockUserRepo.EXPECT().FindByID(ctx, int64(7)).Return(user, nil)

	got, err := service.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthService_CurrentUser_Unauthenticated(t *testing.T) {
	service, _, _, _ := newAuthService(t)

	_, err := service.CurrentUser(context.Background())
	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
