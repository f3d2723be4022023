package application

import (
	"errors"
	"time"

	"github.com/dasomcenter/dasom-api/internal/api/middleware"
	"github.com/dasomcenter/dasom-api/internal/domain/user"
	"github.com/dasomcenter/dasom-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordHashFailure = errors.New("failed to hash password")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrLastAdmin           = errors.New("cannot remove the last admin")
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) Register(input user.CreateUserInput) (user.User, error) {
	_, err := s.Repos.User.GetUserByUsername(input.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, err
	}
	if err == nil {
		return user.User{}, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrPasswordHashFailure
	}

	role := user.RoleStaff
	if input.Role != "" {
		role = input.Role
	}
	usr := user.User{
		Username: input.Username,
		Password: string(hashed),
		FullName: input.FullName,
		Email:    input.Email,
		Role:     role,
	}
	return usr, s.Repos.User.SaveUser(&usr)
}

func (s *UserService) Login(username, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByUsername(username)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(usr.UID, usr.Username, usr.IsAdmin(), 24*time.Hour)
	if err != nil {
		return user.User{}, "", err
	}
	return usr, token, nil
}

func (s *UserService) List() ([]user.User, error) {
	return s.Repos.User.ListUsers()
}

func (s *UserService) Get(id uint) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, ErrUserNotFound
	}
	return usr, err
}

func (s *UserService) Update(id uint, input user.UpdateUserInput) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, ErrUserNotFound
	}
	if err != nil {
		return user.User{}, err
	}

	if input.FullName != nil {
		usr.FullName = *input.FullName
	}
	if input.Email != nil {
		usr.Email = *input.Email
	}
	if input.Role != nil && *input.Role != usr.Role {
		if usr.IsAdmin() && *input.Role != user.RoleAdmin {
			if err := s.checkNotLastAdmin(usr.UID); err != nil {
				return user.User{}, err
			}
		}
		usr.Role = *input.Role
	}
	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.User{}, ErrPasswordHashFailure
		}
		usr.Password = string(hashed)
	}
	return usr, s.Repos.User.SaveUser(&usr)
}

func (s *UserService) Delete(id uint) error {
	usr, err := s.Repos.User.GetUserByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}
	if usr.IsAdmin() {
		if err := s.checkNotLastAdmin(usr.UID); err != nil {
			return err
		}
	}
	return s.Repos.User.DeleteUser(id)
}

func (s *UserService) checkNotLastAdmin(selfID uint) error {
	users, err := s.Repos.User.ListUsers()
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.UID != selfID && u.IsAdmin() {
			return nil
		}
	}
	return ErrLastAdmin
}
