package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/ecotrack/greenpoints/internal/domain"
	"github.com/ecotrack/greenpoints/internal/handlers/rewards"
	"github.com/ecotrack/greenpoints/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *rewards.MockService, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	rewardService := rewards.NewMockService(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, rewardService, hashService, jwtService)
	defer ctrl.Finish()
	return service, repo, rewardService, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, rewardService, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		email         string
		userName      string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful registration",
			email:    "anna@example.com",
			userName: "Anna",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "anna@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
				rewardService.EXPECT().CreateAccount(context.Background(), gomock.Any()).Return(nil, nil)
			},
			expectedUser: &domain.User{
				ID:           1,
				Email:        "anna@example.com",
				Name:         "Anna",
				PasswordHash: "hashedpassword",
			},
			expectedError: nil,
		},
		{
			name:     "User already exists",
			email:    "anna@example.com",
			userName: "Anna",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "anna@example.com").Return(&domain.User{ID: 1}, nil)
			},
			expectedUser:  nil,
			expectedError: errors.New("email already taken"),
		},
		{
			name:     "Hashing error",
			email:    "anna@example.com",
			userName: "Anna",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "anna@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hashing error"))
			},
			expectedUser:  nil,
			expectedError: errors.New("hashing error"),
		},
		{
			name:     "Account creation error",
			email:    "anna@example.com",
			userName: "Anna",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "anna@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
				rewardService.EXPECT().CreateAccount(context.Background(), gomock.Any()).Return(nil, errors.New("account creation error"))
			},
			expectedUser:  nil,
			expectedError: errors.New("account creation error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), tt.email, tt.userName, tt.password)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedUser, user)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, _, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		email         string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful authentication",
			email:    "anna@example.com",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "anna@example.com").Return(&domain.User{
					ID:           1,
					Email:        "anna@example.com",
					PasswordHash: "hashedpassword",
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedUser: &domain.User{
				ID:           1,
				Email:        "anna@example.com",
				PasswordHash: "hashedpassword",
			},
			expectedError: nil,
		},
		{
			name:     "Unknown user",
			email:    "ghost@example.com",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "ghost@example.com").Return(nil, nil)
			},
			expectedUser:  nil,
			expectedError: errors.New("invalid credentials"),
		},
		{
			name:     "Wrong password",
			email:    "anna@example.com",
			password: "wrongpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "anna@example.com").Return(&domain.User{
					ID:           1,
					Email:        "anna@example.com",
					PasswordHash: "hashedpassword",
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "wrongpassword").Return(false)
			},
			expectedUser:  nil,
			expectedError: errors.New("invalid credentials"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), tt.email, tt.password)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedUser, user)
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, _, jwtService := NewMock(t)

	t.Run("Successful token generation", func(t *testing.T) {
		jwtService.EXPECT().GenerateJWT(1, gomock.Any()).Return("some-jwt-token", nil)

		token, err := service.GenerateToken(1)
		assert.NoError(t, err)
		assert.Equal(t, "some-jwt-token", token)
	})

	t.Run("Token generation error", func(t *testing.T) {
		jwtService.EXPECT().GenerateJWT(1, gomock.Any()).Return("", errors.New("token generation error"))

		token, err := service.GenerateToken(1)
		assert.Error(t, err)
		assert.Empty(t, token)
	})
}

func TestUpdateProfile(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		userName      string
		prepareMock   func(userRepo *MockRepo)
		expectedUser  *domain.User
		expectedError string
	}{
		{
			name:     "Successful update",
			email:    "anna.new@example.com",
			userName: "Anna",
			prepareMock: func(userRepo *MockRepo) {
				userRepo.EXPECT().FindByEmail(context.Background(), "anna.new@example.com").Return(nil, nil)
				userRepo.EXPECT().
					Update(context.Background(), &domain.User{ID: 1, Email: "anna.new@example.com", Name: "Anna"}).
					Return(&domain.User{ID: 1, Email: "anna.new@example.com", Name: "Anna", PasswordHash: "hashedpassword"}, nil)
			},
			expectedUser: &domain.User{
				ID:           1,
				Email:        "anna.new@example.com",
				Name:         "Anna",
				PasswordHash: "hashedpassword",
			},
		},
		{
			name:     "Keeping own email is allowed",
			email:    "anna@example.com",
			userName: "Anna B",
			prepareMock: func(userRepo *MockRepo) {
				userRepo.EXPECT().FindByEmail(context.Background(), "anna@example.com").
					Return(&domain.User{ID: 1, Email: "anna@example.com", Name: "Anna"}, nil)
				userRepo.EXPECT().
					Update(context.Background(), &domain.User{ID: 1, Email: "anna@example.com", Name: "Anna B"}).
					Return(&domain.User{ID: 1, Email: "anna@example.com", Name: "Anna B", PasswordHash: "hashedpassword"}, nil)
			},
			expectedUser: &domain.User{
				ID:           1,
				Email:        "anna@example.com",
				Name:         "Anna B",
				PasswordHash: "hashedpassword",
			},
		},
		{
			name:     "Email taken by another user",
			email:    "boris@example.com",
			userName: "Anna",
			prepareMock: func(userRepo *MockRepo) {
				userRepo.EXPECT().FindByEmail(context.Background(), "boris@example.com").
					Return(&domain.User{ID: 2, Email: "boris@example.com", Name: "Boris"}, nil)
			},
			expectedError: "email already taken",
		},
		{
			name:     "Update failure",
			email:    "anna.new@example.com",
			userName: "Anna",
			prepareMock: func(userRepo *MockRepo) {
				userRepo.EXPECT().FindByEmail(context.Background(), "anna.new@example.com").Return(nil, nil)
				userRepo.EXPECT().Update(context.Background(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, _, _, _ := NewMock(t)
			tt.prepareMock(userRepo)

			user, err := service.UpdateProfile(context.Background(), 1, tt.email, tt.userName)
			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}
