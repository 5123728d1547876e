package rewardservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ecotrack/greenpoints/internal/domain"
	"github.com/ecotrack/greenpoints/internal/pg"
)

type TransactionRepo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	FindByUserID(ctx context.Context, userID int, limit int) ([]domain.Transaction, error)
	SumByUserID(ctx context.Context, userID int) (int, error)
}

type AccountRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.RewardAccount, error)
	GetForUpdate(ctx context.Context, userID int) (*domain.RewardAccount, error)
	Create(ctx context.Context, userID int) (*domain.RewardAccount, error)
	AddPoints(ctx context.Context, userID int, delta int) (*domain.RewardAccount, error)
	SetPoints(ctx context.Context, userID int, oldPoints, newPoints int) (*domain.RewardAccount, error)
	Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

type CouponRepo interface {
	Create(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Coupon, error)
}

type CatalogRepo interface {
	FindByID(ctx context.Context, id int) (*domain.CatalogEntry, error)
	FindAvailable(ctx context.Context) ([]domain.CatalogEntry, error)
}

// Transaction types. Amounts are stored positive; earned_* add to the
// balance, redeemed subtracts.
const (
	TypeEarnedReport  = "earned_report"
	TypeEarnedCollect = "earned_collect"
	TypeRedeemed      = "redeemed"
)

// Earning sources accepted by RecordEarning.
const (
	SourceReport  = "report"
	SourceCollect = "collect"
)

// CashOutRewardID is the synthetic catalog id that redeems the full balance.
const CashOutRewardID = 0

const (
	couponTTL          = 30 * 24 * time.Hour
	couponCodeAttempts = 3
	transactionLimit   = 10
)

var (
	ErrInvalidAmount          = errors.New("point amount must be positive")
	ErrRewardNotFound         = errors.New("reward not found")
	ErrInsufficientBalance    = errors.New("insufficient balance")
	ErrNothingToRedeem        = errors.New("no points available to redeem")
	ErrConcurrentModification = errors.New("concurrent balance modification")
	ErrStoreUnavailable       = errors.New("store unavailable")
)

// Service is the reward ledger engine. The transaction log is the source of
// truth for balances; the reward account row is a cache refreshed atomically
// with every mutation.
type Service struct {
	transactionRepo TransactionRepo
	accountRepo     AccountRepo
	couponRepo      CouponRepo
	catalogRepo     CatalogRepo
	txManager       pg.TXManager
}

func New(transactionRepo TransactionRepo, accountRepo AccountRepo, couponRepo CouponRepo, catalogRepo CatalogRepo, txManager pg.TXManager) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		couponRepo:      couponRepo,
		catalogRepo:     catalogRepo,
		txManager:       txManager,
	}
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

// GetBalance folds the user's full transaction log and clamps the result at
// zero. Pure read, safe to call concurrently.
func (s *Service) GetBalance(ctx context.Context, userID int) (int, error) {
	sum, err := s.transactionRepo.SumByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to sum transactions", zap.Int("userID", userID), zap.Error(err))
		return 0, storeErr(err)
	}
	if sum < 0 {
		sum = 0
	}
	return sum, nil
}

// GetTransactions returns the user's most recent ledger entries, newest first.
func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.FindByUserID(ctx, userID, transactionLimit)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Int("userID", userID), zap.Error(err))
		return nil, storeErr(err)
	}
	return transactions, nil
}

// CreateAccount creates a zero-point reward account for a new user.
func (s *Service) CreateAccount(ctx context.Context, userID int) (*domain.RewardAccount, error) {
	account, err := s.accountRepo.Create(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create reward account", zap.Int("userID", userID), zap.Error(err))
		return nil, storeErr(err)
	}
	return account, nil
}

// RecordEarning appends an earned_<source> transaction and bumps the cached
// account total in one database transaction. The account is created lazily on
// first earning.
func (s *Service) RecordEarning(ctx context.Context, userID int, source string, points int, description string) (*domain.Transaction, error) {
	if points <= 0 {
		return nil, ErrInvalidAmount
	}

	var txnType string
	switch source {
	case SourceReport:
		txnType = TypeEarnedReport
	case SourceCollect:
		txnType = TypeEarnedCollect
	default:
		return nil, fmt.Errorf("unknown earning source: %s", source)
	}

	var txn *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if account == nil {
			if _, err := s.accountRepo.Create(ctx, userID); err != nil {
				return err
			}
		}

		txn, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			UserID:      userID,
			Type:        txnType,
			Amount:      points,
			Description: description,
		})
		if err != nil {
			return err
		}

		_, err = s.accountRepo.AddPoints(ctx, userID, points)
		return err
	})
	if err != nil {
		zap.L().Error("failed to record earning", zap.Int("userID", userID), zap.Error(err))
		return nil, storeErr(err)
	}
	return txn, nil
}

// GetAvailableRewards returns the catalog filtered to available entries,
// prefixed with the synthetic cash-out entry whose cost is the current
// balance.
func (s *Service) GetAvailableRewards(ctx context.Context, userID int) ([]domain.CatalogEntry, error) {
	balance, err := s.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.catalogRepo.FindAvailable(ctx)
	if err != nil {
		zap.L().Error("failed to fetch reward catalog", zap.Error(err))
		return nil, storeErr(err)
	}

	rewards := make([]domain.CatalogEntry, 0, len(entries)+1)
	rewards = append(rewards, domain.CatalogEntry{
		ID:             CashOutRewardID,
		Name:           "Your Points",
		Cost:           balance,
		Description:    "Redeem your earned points",
		CollectionInfo: "Points earned from reporting and collecting waste",
		IsAvailable:    true,
	})
	rewards = append(rewards, entries...)
	return rewards, nil
}

// RedeemReward is the plain redemption variant: catalog entries are redeemed
// without a coupon. Reward id 0 cashes out the full balance and always issues
// a coupon.
func (s *Service) RedeemReward(ctx context.Context, userID, rewardID int) (*domain.RewardAccount, *domain.Coupon, error) {
	return s.redeem(ctx, userID, rewardID, false)
}

// RedeemForCoupon performs the same ledger mutation as RedeemReward and
// additionally issues a coupon worth a tenth of the redeemed cost.
func (s *Service) RedeemForCoupon(ctx context.Context, userID, rewardID int) (*domain.RewardAccount, *domain.Coupon, error) {
	return s.redeem(ctx, userID, rewardID, true)
}

// redeem applies balance check, account update, transaction append and coupon
// issue as one atomic unit. The account row is locked for the duration, and
// the points update is conditional on the value observed under the lock.
func (s *Service) redeem(ctx context.Context, userID, rewardID int, withCoupon bool) (*domain.RewardAccount, *domain.Coupon, error) {
	var (
		account *domain.RewardAccount
		coupon  *domain.Coupon
	)

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		acct, err := s.accountRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return storeErr(err)
		}
		if acct == nil {
			if acct, err = s.accountRepo.Create(ctx, userID); err != nil {
				return storeErr(err)
			}
		}

		sum, err := s.transactionRepo.SumByUserID(ctx, userID)
		if err != nil {
			return storeErr(err)
		}
		balance := sum
		if balance < 0 {
			balance = 0
		}

		var cost int
		var description string
		if rewardID == CashOutRewardID {
			if balance <= 0 {
				return ErrNothingToRedeem
			}
			cost = balance
			description = fmt.Sprintf("Redeemed all points: %d", balance)
			withCoupon = true
		} else {
			entry, err := s.catalogRepo.FindByID(ctx, rewardID)
			if err != nil {
				return storeErr(err)
			}
			if entry == nil || !entry.IsAvailable {
				return ErrRewardNotFound
			}
			if entry.Cost > balance {
				return ErrInsufficientBalance
			}
			cost = entry.Cost
			description = fmt.Sprintf("Redeemed: %s", entry.Name)
		}

		updated, err := s.accountRepo.SetPoints(ctx, userID, acct.Points, balance-cost)
		if err != nil {
			return storeErr(err)
		}
		if updated == nil {
			return ErrConcurrentModification
		}

		if _, err := s.transactionRepo.Create(ctx, &domain.Transaction{
			UserID:      userID,
			Type:        TypeRedeemed,
			Amount:      cost,
			Description: description,
		}); err != nil {
			return storeErr(err)
		}

		if withCoupon {
			coupon, err = s.issueCoupon(ctx, userID, cost/10, time.Now().Add(couponTTL))
			if err != nil {
				return err
			}
		}

		account = updated
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrStoreUnavailable) {
			zap.L().Error("redemption failed", zap.Int("userID", userID), zap.Int("rewardID", rewardID), zap.Error(err))
		} else {
			zap.L().Warn("redemption rejected", zap.Int("userID", userID), zap.Int("rewardID", rewardID), zap.Error(err))
		}
		return nil, nil, err
	}
	return account, coupon, nil
}

// IssueCoupon persists a coupon with a fresh unique code. It has no balance
// interaction; redemption paths call it after their own ledger mutation.
func (s *Service) IssueCoupon(ctx context.Context, userID, discount int, expiry time.Time) (*domain.Coupon, error) {
	if discount < 0 {
		return nil, ErrInvalidAmount
	}
	coupon, err := s.issueCoupon(ctx, userID, discount, expiry)
	if err != nil {
		zap.L().Error("failed to issue coupon", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return coupon, nil
}

// issueCoupon runs each insert attempt in its own nested transaction. A code
// collision only rolls back that attempt's savepoint, so a caller holding an
// open transaction can still retry with a fresh code.
func (s *Service) issueCoupon(ctx context.Context, userID, discount int, expiry time.Time) (*domain.Coupon, error) {
	for attempt := 0; attempt < couponCodeAttempts; attempt++ {
		var coupon *domain.Coupon
		err := s.txManager.Begin(ctx, func(ctx context.Context) error {
			var err error
			coupon, err = s.couponRepo.Create(ctx, &domain.Coupon{
				UserID:   userID,
				Code:     newCouponCode(),
				Discount: discount,
				Expiry:   expiry,
			})
			return err
		})
		if err == nil {
			return coupon, nil
		}
		if pg.IsUniqueViolation(err) {
			// code collision, try a fresh one
			continue
		}
		return nil, storeErr(err)
	}
	return nil, fmt.Errorf("%w: coupon code collisions exhausted retries", ErrStoreUnavailable)
}

func newCouponCode() string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("COUPON-%d-%s", time.Now().UnixMilli(), suffix)
}

func (s *Service) GetCoupons(ctx context.Context, userID int) ([]domain.Coupon, error) {
	coupons, err := s.couponRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch coupons", zap.Int("userID", userID), zap.Error(err))
		return nil, storeErr(err)
	}
	return coupons, nil
}

func (s *Service) GetLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	entries, err := s.accountRepo.Leaderboard(ctx)
	if err != nil {
		zap.L().Error("failed to fetch leaderboard", zap.Error(err))
		return nil, storeErr(err)
	}
	return entries, nil
}
