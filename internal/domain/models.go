package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Transaction is an append-only ledger entry. Amount is always stored
// positive; the sign is implied by Type.
type Transaction struct {
	ID          int       `db:"id"`
	UserID      int       `db:"user_id"`
	Type        string    `db:"type"`
	Amount      int       `db:"amount"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// RewardAccount caches the running point total per user. The transaction
// log is the source of truth; Points must stay recomputable from it.
type RewardAccount struct {
	ID          int       `db:"id"`
	UserID      int       `db:"user_id"`
	Points      int       `db:"points"`
	Level       int       `db:"level"`
	IsAvailable bool      `db:"is_available"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type CatalogEntry struct {
	ID             int    `db:"id"`
	Name           string `db:"name"`
	Cost           int    `db:"cost"`
	Description    string `db:"description"`
	CollectionInfo string `db:"collection_info"`
	IsAvailable    bool   `db:"is_available"`
}

type Coupon struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Code      string    `db:"code"`
	Discount  int       `db:"discount"`
	Expiry    time.Time `db:"expiry"`
	CreatedAt time.Time `db:"created_at"`
}

type Report struct {
	ID                 int       `db:"id"`
	UserID             int       `db:"user_id"`
	Location           string    `db:"location"`
	WasteType          string    `db:"waste_type"`
	Amount             string    `db:"amount"`
	ImageURL           string    `db:"image_url"`
	Status             string    `db:"status"`
	VerificationStatus string    `db:"verification_status"`
	CollectorID        *int      `db:"collector_id"`
	CreatedAt          time.Time `db:"created_at"`
}

type CollectedWaste struct {
	ID             int       `db:"id"`
	ReportID       int       `db:"report_id"`
	CollectorID    int       `db:"collector_id"`
	CollectionDate time.Time `db:"collection_date"`
	Status         string    `db:"status"`
}

type Notification struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Message   string    `db:"message"`
	Type      string    `db:"type"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
}

// LeaderboardEntry is a reward account joined with its owner for display.
type LeaderboardEntry struct {
	UserID   int    `db:"user_id"`
	UserName string `db:"user_name"`
	Points   int    `db:"points"`
	Level    int    `db:"level"`
}
