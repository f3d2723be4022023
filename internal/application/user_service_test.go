package application

import (
	"testing"
	"time"

	"github.com/dasomcenter/dasom-api/internal/api/middleware"
	"github.com/dasomcenter/dasom-api/internal/domain/user"
	"github.com/dasomcenter/dasom-api/internal/repository"
	"github.com/dasomcenter/dasom-api/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupUserServiceMocks(t *testing.T) (*UserService, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{
		User: mockUser,
	}
	return NewUserService(repos), mockUser
}

func stubTokenGeneration(t *testing.T) {
	t.Helper()
	orig := middleware.GenerateToken
	middleware.GenerateToken = func(userID uint, username string, isAdmin bool, expire time.Duration) (string, error) {
		return "test-token", nil
	}
	t.Cleanup(func() { middleware.GenerateToken = orig })
}

func TestRegister_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("alice").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		u.UID = 1
		return nil
	})

	usr, err := svc.Register(user.CreateUserInput{Username: "alice", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, user.RoleStaff, usr.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte("123456")))
}

func TestRegister_UsernameTaken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("admin").Return(user.User{UID: 1}, nil)

	_, err := svc.Register(user.CreateUserInput{Username: "admin", Password: "123456"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLogin_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)
	stubTokenGeneration(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	mockUser.EXPECT().GetUserByUsername("alice").Return(user.User{
		UID:      1,
		Username: "alice",
		Password: string(hashed),
		Role:     user.RoleAdmin,
	}, nil)

	usr, token, err := svc.Login("alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "test-token", token)
	assert.True(t, usr.IsAdmin())
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	mockUser.EXPECT().GetUserByUsername("alice").Return(user.User{Password: string(hashed)}, nil)

	_, _, err := svc.Login("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("ghost").Return(user.User{}, gorm.ErrRecordNotFound)

	_, _, err := svc.Login("ghost", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDelete_LastAdminRefused(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	admin := user.User{UID: 1, Username: "root", Role: user.RoleAdmin}
	mockUser.EXPECT().GetUserByID(uint(1)).Return(admin, nil)
	mockUser.EXPECT().ListUsers().Return([]user.User{
		admin,
		{UID: 2, Username: "helper", Role: user.RoleStaff},
	}, nil)

	err := svc.Delete(1)
	assert.ErrorIs(t, err, ErrLastAdmin)
}

func TestDelete_AdminWithPeerAllowed(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	admin := user.User{UID: 1, Username: "root", Role: user.RoleAdmin}
	mockUser.EXPECT().GetUserByID(uint(1)).Return(admin, nil)
	mockUser.EXPECT().ListUsers().Return([]user.User{
		admin,
		{UID: 2, Username: "other", Role: user.RoleAdmin},
	}, nil)
	mockUser.EXPECT().DeleteUser(uint(1)).Return(nil)

	assert.NoError(t, svc.Delete(1))
}

func TestUpdate_DowngradeLastAdminRefused(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	admin := user.User{UID: 1, Username: "root", Role: user.RoleAdmin}
	staffRole := user.RoleStaff
	mockUser.EXPECT().GetUserByID(uint(1)).Return(admin, nil)
	mockUser.EXPECT().ListUsers().Return([]user.User{admin}, nil)

	_, err := svc.Update(1, user.UpdateUserInput{Role: &staffRole})
	assert.ErrorIs(t, err, ErrLastAdmin)
}
