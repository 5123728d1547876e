package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/ecotrack/greenpoints/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		txn       *domain.Transaction
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully creates transaction",
			txn: &domain.Transaction{
				UserID:      1,
				Type:        "earned_report",
				Amount:      10,
				Description: "Points earned for reporting waste",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					INSERT INTO transactions (user_id, type, amount, description)
					VALUES ($1, $2, $3, $4)
					RETURNING id, created_at`)).
					WithArgs(1, "earned_report", 10, "Points earned for reporting waste").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(17, now))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			txn: &domain.Transaction{
				UserID:      1,
				Type:        "redeemed",
				Amount:      100,
				Description: "Redeemed Reusable bottle",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					INSERT INTO transactions (user_id, type, amount, description)
					VALUES ($1, $2, $3, $4)`)).
					WithArgs(1, "redeemed", 100, "Redeemed Reusable bottle").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.txn)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, 17, result.ID)
				assert.Equal(t, now, result.CreatedAt)
			}
		})
	}
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Transaction
	}{
		{
			name: "Returns recent transactions",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "type", "amount", "description", "created_at"}).
					AddRow(2, 1, "earned_collect", 15, "Points earned for collecting waste", now).
					AddRow(1, 1, "earned_report", 10, "Points earned for reporting waste", now.Add(-time.Hour))
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, user_id, type, amount, description, created_at
					FROM transactions
					WHERE user_id = $1
					ORDER BY created_at DESC
					LIMIT $2`)).
					WithArgs(1, 10).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.Transaction{
				{ID: 2, UserID: 1, Type: "earned_collect", Amount: 15, Description: "Points earned for collecting waste", CreatedAt: now},
				{ID: 1, UserID: 1, Type: "earned_report", Amount: 10, Description: "Points earned for reporting waste", CreatedAt: now.Add(-time.Hour)},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, user_id, type, amount, description, created_at
					FROM transactions
					WHERE user_id = $1`)).
					WithArgs(1, 10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUserID(context.Background(), 1, 10)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_SumByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    int
	}{
		{
			name: "Sums earned minus redeemed",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT COALESCE(SUM(CASE WHEN type LIKE 'earned%' THEN amount ELSE -amount END), 0)
					FROM transactions
					WHERE user_id = $1`)).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(25))
			},
			expectErr: false,
			result:    25,
		},
		{
			name: "Empty ledger sums to zero",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT COALESCE(SUM(CASE WHEN type LIKE 'earned%' THEN amount ELSE -amount END), 0)
					FROM transactions
					WHERE user_id = $1`)).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(0))
			},
			expectErr: false,
			result:    0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT COALESCE(SUM(CASE WHEN type LIKE 'earned%' THEN amount ELSE -amount END), 0)
					FROM transactions
					WHERE user_id = $1`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.SumByUserID(context.Background(), 1)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}
