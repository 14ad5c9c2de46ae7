package services_test

import (
	"fmt"
	"testing"

	"wardrobe/internal/apperrors"
	"wardrobe/internal/models"
	"wardrobe/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_secret")

	user := &models.User{Email: "new@example.com", Name: "New User", Password: "password123"}

	mockRepo.On("GetByEmail", "new@example.com").Return(nil, fmt.Errorf("not found")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := service.RegisterUser(user)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// The password is stored hashed, never in the clear
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))

	// New accounts start on local storage at level 1
	assert.Equal(t, models.StorageLocal, user.StorageType)
	assert.Equal(t, 1, user.AuthLevel)
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_secret")

	existing := &models.User{ID: "user-1", Email: "taken@example.com"}
	mockRepo.On("GetByEmail", "taken@example.com").Return(existing, nil).Once()

	err := service.RegisterUser(&models.User{Email: "taken@example.com", Password: "password123"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_secret")

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	user := &models.User{ID: "user-1", Email: "login@example.com", Password: string(hashed)}

	// Successful login yields a token carrying the user's identity
	mockRepo.On("GetByEmail", "login@example.com").Return(user, nil).Once()
	token, err := service.LoginUser("login@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "login@example.com", claims["email"])
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser_BadCredentials(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_secret")

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{ID: "user-1", Email: "login@example.com", Password: string(hashed)}

	// Wrong password and unknown email fail identically
	mockRepo.On("GetByEmail", "login@example.com").Return(user, nil).Once()
	_, err := service.LoginUser("login@example.com", "wrongpassword")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	mockRepo.On("GetByEmail", "ghost@example.com").Return(nil, fmt.Errorf("not found")).Once()
	_, err = service.LoginUser("ghost@example.com", "password123")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken_Invalid(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_secret")

	_, err := service.ValidateToken("not.a.token")
	assert.Error(t, err)

	// A token signed with a different secret is rejected
	other := services.NewAuthService(mockRepo, "other_secret")
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{ID: "user-1", Email: "login@example.com", Password: string(hashed)}
	mockRepo.On("GetByEmail", "login@example.com").Return(user, nil).Once()
	token, err := other.LoginUser("login@example.com", "password123")
	assert.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}
