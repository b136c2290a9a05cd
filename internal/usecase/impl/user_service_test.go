package impl

import (
	"testing"

	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"
	"flora/internal/domain/repository"
	mockRepo "flora/internal/mocks/repository"
	"flora/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (usecase.UserUsecase, *mockRepo.MockUserRepository) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(UserServiceParams{
		UserRepo: mockUserRepo,
		Logger:   newDiscardLogger(),
	})

	return service, mockUserRepo
}

func TestUserService_List_AdminSeesAll(t *testing.T) {
	service, mockUserRepo := newUserService(t)
	ctx := ctxWithPrincipal(1, entity.RoleAdmin)

	users := []*entity.User{{ID: 1}, {ID: 2}}
	mockUserRepo.EXPECT().FindAll(ctx).Return(users, nil)

	got, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestUserService_List_GrowerForbidden(t *testing.T) {
	service, _ := newUserService(t)
	ctx := ctxWithPrincipal(1, entity.RoleGrower)

	_, err := service.List(ctx)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_Get_OwnAccount(t *testing.T) {
	service, mockUserRepo := newUserService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	user := &entity.User{ID: 5, Username: "alice"}
	mockUserRepo.EXPECT().FindByID(ctx, int64(5)).Return(user, nil)

	got, err := service.Get(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_Get_OtherAccountForbidden(t *testing.T) {
	service, mockUserRepo := newUserService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mockUserRepo.EXPECT().FindByID(ctx, int64(6)).Return(&entity.User{ID: 6}, nil)

	_, err := service.Get(ctx, 6)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_Get_NotFound(t *testing.T) {
	service, mockUserRepo := newUserService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mockUserRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrUserNotFound)

	_, err := service.Get(ctx, 99)
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_SearchByName_GrowerForbidden(t *testing.T) {
	service, _ := newUserService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	_, err := service.SearchByName(ctx, "ali")
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_SearchByName_TrimsFragment(t *testing.T) {
	service, mockUserRepo := newUserService(t)
	ctx := ctxWithPrincipal(1, entity.RoleSuperAdmin)

	mockUserRepo.EXPECT().SearchByName(ctx, "ali").Return([]*entity.User{{ID: 5}}, nil)

	got, err := service.SearchByName(ctx, "  ali  ")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestUserService_Update_KeepsUsernameWhenBlank(t *testing.T) {
	service, mockUserRepo := newUserService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	user := &entity.User{ID: 5, Username: "alice", FirstName: "Old"}
	mockUserRepo.EXPECT().FindByID(ctx, int64(5)).Return(user, nil)
	mockUserRepo.EXPECT().Update(ctx, user).Return(nil)

	got, err := service.Update(ctx, usecase.UpdateUserInput{ID: 5, FirstName: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "Alice", got.FirstName)
}

func TestUserService_Update_OtherAccountForbidden(t *testing.T) {
	service, mockUserRepo := newUserService(t)
	ctx := ctxWithPrincipal(5, entity.RoleAdmin)

	mockUserRepo.EXPECT().FindByID(ctx, int64(6)).Return(&entity.User{ID: 6}, nil)

	// Admins read everything but mutate only their own account.
	_, err := service.Update(ctx, usecase.UpdateUserInput{ID: 6, Username: "other"})
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_Update_UsernameTaken(t *testing.T) {
	service, mockUserRepo := newUserService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	user := &entity.User{ID: 5, Username: "alice"}
	mockUserRepo.EXPECT().FindByID(ctx, int64(5)).Return(user, nil)
	mockUserRepo.EXPECT().Update(ctx, user).Return(repository.ErrUsernameTaken)

	_, err := service.Update(ctx, usecase.UpdateUserInput{ID: 5, Username: "bob"})
	require.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestUserService_UpdateRole_SuperAdminOnly(t *testing.T) {
	service, _ := newUserService(t)

	_, err := service.UpdateRole(ctxWithPrincipal(1, entity.RoleAdmin), 5, entity.RoleAdmin)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = service.UpdateRole(ctxWithPrincipal(1, entity.RoleGrower), 5, entity.RoleAdmin)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_UpdateRole_Success(t *testing.T) {
	service, mockUserRepo := newUserService(t)
	ctx := ctxWithPrincipal(1, entity.RoleSuperAdmin)

	user := &entity.User{ID: 5, Role: entity.RoleGrower}
	mockUserRepo.EXPECT().FindByID(ctx, int64(5)).Return(user, nil)
	mockUserRepo.EXPECT().Update(ctx, user).Return(nil)

	got, err := service.UpdateRole(ctx, 5, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, got.Role)
}

func TestUserService_UpdateRole_UnknownRole(t *testing.T) {
	service, _ := newUserService(t)
	ctx := ctxWithPrincipal(1, entity.RoleSuperAdmin)

	_, err := service.UpdateRole(ctx, 5, entity.Role("ROLE_WIZARD"))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestUserService_Delete_NotFoundBeforePolicy(t *testing.T) {
	service, mockUserRepo := newUserService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mockUserRepo.EXPECT().ExistsByID(ctx, int64(99)).Return(false, nil)

	// Absence wins over the ownership denial so clients can tell them apart.
	err := service.Delete(ctx, 99)
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_Delete_OtherAccountForbidden(t *testing.T) {
	service, mockUserRepo := newUserService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	mockUserRepo.EXPECT().ExistsByID(ctx, int64(6)).Return(true, nil)

	err := service.Delete(ctx, 6)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_Delete_SuperAdminDeletesAnyone(t *testing.T) {
	service, mockUserRepo := newUserService(t)
	ctx := ctxWithPrincipal(1, entity.RoleSuperAdmin)

	mockUserRepo.EXPECT().ExistsByID(ctx, int64(6)).Return(true, nil)
	mockUserRepo.EXPECT().Delete(ctx, int64(6)).Return(nil)

	require.NoError(t, service.Delete(ctx, 6))
}
