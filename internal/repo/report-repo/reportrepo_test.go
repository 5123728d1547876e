package reportrepo

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

func reportColumnNames() []string {
	return []string{"id", "user_id", "location", "waste_type", "amount", "image_url", "status", "verification_status", "collector_id", "created_at"}
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		report    *domain.Report
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully creates report",
			report: &domain.Report{
				UserID:             1,
				Location:           "40.7128,-74.0060",
				WasteType:          "plastic",
				Amount:             "2.5 kg",
				ImageURL:           "https://cdn.example.com/waste/42.jpg",
				Status:             "pending",
				VerificationStatus: "pending",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					INSERT INTO reports (user_id, location, waste_type, amount, image_url, status, verification_status)
					VALUES ($1, $2, $3, $4, $5, $6, $7)
					RETURNING id, created_at`)).
					WithArgs(1, "40.7128,-74.0060", "plastic", "2.5 kg", "https://cdn.example.com/waste/42.jpg", "pending", "pending").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(42, now))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			report: &domain.Report{
				UserID:             1,
				Location:           "40.7128,-74.0060",
				WasteType:          "plastic",
				Amount:             "2.5 kg",
				Status:             "pending",
				VerificationStatus: "pending",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					INSERT INTO reports (user_id, location, waste_type, amount, image_url, status, verification_status)
					VALUES ($1, $2, $3, $4, $5, $6, $7)`)).
					WithArgs(1, "40.7128,-74.0060", "plastic", "2.5 kg", "", "pending", "pending").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.report)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, 42, result.ID)
				assert.Equal(t, now, result.CreatedAt)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.Report
	}{
		{
			name: "Valid id returns report",
			id:   42,
			mockSetup: func() {
				rows := pgxmock.NewRows(reportColumnNames()).
					AddRow(42, 1, "40.7128,-74.0060", "plastic", "2.5 kg", "https://cdn.example.com/waste/42.jpg", "pending", "pending", nil, now)
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, user_id, location, waste_type, amount, image_url, status, verification_status, collector_id, created_at
					FROM reports
					WHERE id = $1`)).
					WithArgs(42).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Report{
				ID:                 42,
				UserID:             1,
				Location:           "40.7128,-74.0060",
				WasteType:          "plastic",
				Amount:             "2.5 kg",
				ImageURL:           "https://cdn.example.com/waste/42.jpg",
				Status:             "pending",
				VerificationStatus: "pending",
				CreatedAt:          now,
			},
		},
		{
			name: "Non-existing id returns nil",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, user_id, location, waste_type, amount, image_url, status, verification_status, collector_id, created_at
					FROM reports
					WHERE id = $1`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			id:   42,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, user_id, location, waste_type, amount, image_url, status, verification_status, collector_id, created_at
					FROM reports
					WHERE id = $1`)).
					WithArgs(42).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindRecent(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Report
	}{
		{
			name: "Returns recent reports",
			mockSetup: func() {
				rows := pgxmock.NewRows(reportColumnNames()).
					AddRow(43, 2, "51.5074,-0.1278", "glass", "1 kg", "", "pending", "pending", nil, now).
					AddRow(42, 1, "40.7128,-74.0060", "plastic", "2.5 kg", "", "collected", "verified", nil, now.Add(-time.Hour))
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, user_id, location, waste_type, amount, image_url, status, verification_status, collector_id, created_at
					FROM reports
					ORDER BY created_at DESC
					LIMIT $1`)).
					WithArgs(10).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.Report{
				{ID: 43, UserID: 2, Location: "51.5074,-0.1278", WasteType: "glass", Amount: "1 kg", Status: "pending", VerificationStatus: "pending", CreatedAt: now},
				{ID: 42, UserID: 1, Location: "40.7128,-74.0060", WasteType: "plastic", Amount: "2.5 kg", Status: "collected", VerificationStatus: "verified", CreatedAt: now.Add(-time.Hour)},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, user_id, location, waste_type, amount, image_url, status, verification_status, collector_id, created_at
					FROM reports
					ORDER BY created_at DESC`)).
					WithArgs(10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindRecent(context.Background(), 10)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindForVerification(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Report
	}{
		{
			name: "Returns unverified reports with images",
			mockSetup: func() {
				rows := pgxmock.NewRows(reportColumnNames()).
					AddRow(42, 1, "40.7128,-74.0060", "plastic", "2.5 kg", "https://cdn.example.com/waste/42.jpg", "pending", "pending", nil, now)
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, user_id, location, waste_type, amount, image_url, status, verification_status, collector_id, created_at
					FROM reports
					WHERE verification_status = 'pending' AND image_url <> ''
					ORDER BY created_at ASC
					LIMIT $1`)).
					WithArgs(1000).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.Report{
				{ID: 42, UserID: 1, Location: "40.7128,-74.0060", WasteType: "plastic", Amount: "2.5 kg", ImageURL: "https://cdn.example.com/waste/42.jpg", Status: "pending", VerificationStatus: "pending", CreatedAt: now},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, user_id, location, waste_type, amount, image_url, status, verification_status, collector_id, created_at
					FROM reports
					WHERE verification_status = 'pending' AND image_url <> ''`)).
					WithArgs(1000).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindForVerification(context.Background(), 1000)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	collectorID := 9

	tests := []struct {
		name        string
		status      string
		collectorID *int
		mockSetup   func()
		expectErr   bool
		result      *domain.Report
	}{
		{
			name:        "Successfully updates status with collector",
			status:      "in_progress",
			collectorID: &collectorID,
			mockSetup: func() {
				rows := pgxmock.NewRows(reportColumnNames()).
					AddRow(42, 1, "40.7128,-74.0060", "plastic", "2.5 kg", "", "in_progress", "pending", &collectorID, now)
				mock.ExpectQuery(regexp.QuoteMeta(`
					UPDATE reports
					SET status = $1, collector_id = COALESCE($2, collector_id)
					WHERE id = $3
					RETURNING id, user_id, location, waste_type, amount, image_url, status, verification_status, collector_id, created_at`)).
					WithArgs("in_progress", &collectorID, 42).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Report{
				ID:                 42,
				UserID:             1,
				Location:           "40.7128,-74.0060",
				WasteType:          "plastic",
				Amount:             "2.5 kg",
				Status:             "in_progress",
				VerificationStatus: "pending",
				CollectorID:        &collectorID,
				CreatedAt:          now,
			},
		},
		{
			name:   "Non-existing report returns nil",
			status: "in_progress",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					UPDATE reports
					SET status = $1, collector_id = COALESCE($2, collector_id)
					WHERE id = $3`)).
					WithArgs("in_progress", (*int)(nil), 42).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:   "Database error",
			status: "in_progress",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					UPDATE reports
					SET status = $1, collector_id = COALESCE($2, collector_id)
					WHERE id = $3`)).
					WithArgs("in_progress", (*int)(nil), 42).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.UpdateStatus(context.Background(), 42, tt.status, tt.collectorID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_UpdateVerification(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully updates verification",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(`
						UPDATE reports
						SET verification_status = $1
						WHERE id = $2`)).
						WithArgs("verified", 42).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(`
						UPDATE reports
						SET verification_status = $1
						WHERE id = $2`)).
						WithArgs("verified", 42).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateVerification(context.Background(), 42, "verified")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_SaveCollectedWaste(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		collected *domain.CollectedWaste
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully saves collected waste",
			collected: &domain.CollectedWaste{
				ReportID:       42,
				CollectorID:    9,
				CollectionDate: now,
				Status:         "verified",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					INSERT INTO collected_wastes (report_id, collector_id, collection_date, status)
					VALUES ($1, $2, $3, $4)
					RETURNING id`)).
					WithArgs(42, 9, now, "verified").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(11))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			collected: &domain.CollectedWaste{
				ReportID:       42,
				CollectorID:    9,
				CollectionDate: now,
				Status:         "verified",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					INSERT INTO collected_wastes (report_id, collector_id, collection_date, status)
					VALUES ($1, $2, $3, $4)`)).
					WithArgs(42, 9, now, "verified").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.SaveCollectedWaste(context.Background(), tt.collected)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, 11, result.ID)
			}
		})
	}
}
