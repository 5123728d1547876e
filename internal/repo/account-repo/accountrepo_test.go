package accountrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/ecotrack/greenpoints/internal/domain"
	"github.com/ecotrack/greenpoints/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func accountRows(updatedAt time.Time) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "user_id", "points", "level", "is_available", "updated_at"}).
		AddRow(1, 1, 120, 1, true, updatedAt)
}

func TestRepository_GetByUserID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.RewardAccount
	}{
		{
			name:   "Valid userID returns account",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, user_id, points, level, is_available, updated_at
					FROM reward_accounts
					WHERE user_id = $1`)).
					WithArgs(1).
					WillReturnRows(accountRows(now))
			},
			expectErr: false,
			result: &domain.RewardAccount{
				ID:          1,
				UserID:      1,
				Points:      120,
				Level:       1,
				IsAvailable: true,
				UpdatedAt:   now,
			},
		},
		{
			name:   "Non-existing userID returns nil",
			userID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, user_id, points, level, is_available, updated_at
					FROM reward_accounts
					WHERE user_id = $1`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, user_id, points, level, is_available, updated_at
					FROM reward_accounts
					WHERE user_id = $1`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByUserID(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.NotNil(t, result)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.RewardAccount
	}{
		{
			name:   "Locks and returns account",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, user_id, points, level, is_available, updated_at
					FROM reward_accounts
					WHERE user_id = $1
					FOR UPDATE`)).
					WithArgs(1).
					WillReturnRows(accountRows(now))
			},
			expectErr: false,
			result: &domain.RewardAccount{
				ID:          1,
				UserID:      1,
				Points:      120,
				Level:       1,
				IsAvailable: true,
				UpdatedAt:   now,
			},
		},
		{
			name:   "Non-existing userID returns nil",
			userID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, user_id, points, level, is_available, updated_at
					FROM reward_accounts
					WHERE user_id = $1
					FOR UPDATE`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetForUpdate(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.RewardAccount
	}{
		{
			name:   "Successfully creates account",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					INSERT INTO reward_accounts (user_id, points, level, is_available)
					VALUES ($1, 0, 1, TRUE)
					RETURNING id, user_id, points, level, is_available, updated_at`)).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "points", "level", "is_available", "updated_at"}).
						AddRow(1, 1, 0, 1, true, now),
					)
			},
			expectErr: false,
			result: &domain.RewardAccount{
				ID:          1,
				UserID:      1,
				Points:      0,
				Level:       1,
				IsAvailable: true,
				UpdatedAt:   now,
			},
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					INSERT INTO reward_accounts (user_id, points, level, is_available)
					VALUES ($1, 0, 1, TRUE)
					RETURNING id, user_id, points, level, is_available, updated_at`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_AddPoints(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		delta     int
		mockSetup func()
		expectErr bool
		result    *domain.RewardAccount
	}{
		{
			name:  "Successfully adds points",
			delta: 10,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					UPDATE reward_accounts
					SET points = points + $1, updated_at = now()
					WHERE user_id = $2
					RETURNING id, user_id, points, level, is_available, updated_at`)).
					WithArgs(10, 1).
					WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "points", "level", "is_available", "updated_at"}).
						AddRow(1, 1, 130, 1, true, now),
					)
			},
			expectErr: false,
			result: &domain.RewardAccount{
				ID:          1,
				UserID:      1,
				Points:      130,
				Level:       1,
				IsAvailable: true,
				UpdatedAt:   now,
			},
		},
		{
			name:  "Database error",
			delta: 10,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					UPDATE reward_accounts
					SET points = points + $1, updated_at = now()
					WHERE user_id = $2
					RETURNING id, user_id, points, level, is_available, updated_at`)).
					WithArgs(10, 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.AddPoints(context.Background(), 1, tt.delta)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_SetPoints(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.RewardAccount
	}{
		{
			name: "Successfully sets points",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					UPDATE reward_accounts
					SET points = $1, updated_at = now()
					WHERE user_id = $2 AND points = $3
					RETURNING id, user_id, points, level, is_available, updated_at`)).
					WithArgs(20, 1, 120).
					WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "points", "level", "is_available", "updated_at"}).
						AddRow(1, 1, 20, 1, true, now),
					)
			},
			expectErr: false,
			result: &domain.RewardAccount{
				ID:          1,
				UserID:      1,
				Points:      20,
				Level:       1,
				IsAvailable: true,
				UpdatedAt:   now,
			},
		},
		{
			name: "Stale snapshot returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					UPDATE reward_accounts
					SET points = $1, updated_at = now()
					WHERE user_id = $2 AND points = $3
					RETURNING id, user_id, points, level, is_available, updated_at`)).
					WithArgs(20, 1, 120).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					UPDATE reward_accounts
					SET points = $1, updated_at = now()
					WHERE user_id = $2 AND points = $3
					RETURNING id, user_id, points, level, is_available, updated_at`)).
					WithArgs(20, 1, 120).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.SetPoints(context.Background(), 1, 120, 20)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Leaderboard(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.LeaderboardEntry
	}{
		{
			name: "Returns ranked entries",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"user_id", "name", "points", "level"}).
					AddRow(2, "Anna", 320, 2).
					AddRow(1, "Boris", 120, 1)
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT a.user_id, u.name, a.points, a.level
					FROM reward_accounts a
					JOIN users u ON u.id = a.user_id
					ORDER BY a.points DESC`)).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.LeaderboardEntry{
				{UserID: 2, UserName: "Anna", Points: 320, Level: 2},
				{UserID: 1, UserName: "Boris", Points: 120, Level: 1},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT a.user_id, u.name, a.points, a.level
					FROM reward_accounts a
					JOIN users u ON u.id = a.user_id
					ORDER BY a.points DESC`)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Leaderboard(context.Background())

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}
