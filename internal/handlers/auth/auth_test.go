package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecotrack/greenpoints/internal/domain"
	"github.com/ecotrack/greenpoints/internal/dto"
	"github.com/ecotrack/greenpoints/pkg/auth"
	"github.com/ecotrack/greenpoints/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"email":"anna@example.com","name":"Anna","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "anna@example.com", "Anna", "password123").Return(&domain.User{
					ID:           1,
					Email:        "anna@example.com",
					Name:         "Anna",
					PasswordHash: "hashedpassword",
				}, nil)
				service.EXPECT().GenerateToken(1).Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "User already exists",
			body: `{"email":"anna@example.com","name":"Anna","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "anna@example.com", "Anna", "password123").Return(nil, errors.New("email already taken"))
			},
			expectedCode:  http.StatusConflict,
			expectedError: "email already taken",
		},
		{
			name: "Invalid request body",
			body: `{invalid json`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"email":"anna@example.com","name":"Anna","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "anna@example.com", "Anna", "password123").Return(&domain.User{
					ID:           1,
					Email:        "anna@example.com",
					Name:         "Anna",
					PasswordHash: "hashedpassword",
				}, nil)
				service.EXPECT().
					GenerateToken(1).
					Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Register(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(w.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				assert.Contains(t, w.Header().Get("Authorization"), "Bearer ")
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"email":"anna@example.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "anna@example.com", "password123").Return(&domain.User{
					ID:    1,
					Email: "anna@example.com",
				}, nil)
				service.EXPECT().GenerateToken(1).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"email":"anna@example.com","password":"wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "anna@example.com", "wrongpassword").Return(nil, errors.New("invalid credentials"))
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "Invalid request body",
			body: `{invalid json`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(w.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				assert.Contains(t, w.Header().Get("Authorization"), "Bearer ")
			}
		})
	}
}

func TestUpdateSettingsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful update",
			body: `{"email":"anna.new@example.com","name":"Anna"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateProfile(gomock.Any(), 1, "anna.new@example.com", "Anna").
					Return(&domain.User{ID: 1, Email: "anna.new@example.com", Name: "Anna"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Email taken by another user",
			body: `{"email":"boris@example.com","name":"Anna"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateProfile(gomock.Any(), 1, "boris@example.com", "Anna").
					Return(nil, errors.New("email already taken"))
			},
			expectedCode:  http.StatusConflict,
			expectedError: "email already taken",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Missing fields",
			body:          `{"email":"","name":""}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPut, "/settings", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()

			handler.UpdateSettings(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(w.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.ProfileResponseDTO
				err := json.NewDecoder(w.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "anna.new@example.com", resp.Email)
			}
		})
	}
}
