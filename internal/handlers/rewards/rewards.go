package rewards

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ecotrack/greenpoints/internal/domain"
	"github.com/ecotrack/greenpoints/internal/dto"
	"github.com/ecotrack/greenpoints/internal/service/rewardservice"
	"github.com/ecotrack/greenpoints/pkg/auth"
	"github.com/ecotrack/greenpoints/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (int, error)
	GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error)
	CreateAccount(ctx context.Context, userID int) (*domain.RewardAccount, error)
	GetAvailableRewards(ctx context.Context, userID int) ([]domain.CatalogEntry, error)
	RedeemReward(ctx context.Context, userID, rewardID int) (*domain.RewardAccount, *domain.Coupon, error)
	RedeemForCoupon(ctx context.Context, userID, rewardID int) (*domain.RewardAccount, *domain.Coupon, error)
	GetCoupons(ctx context.Context, userID int) ([]domain.Coupon, error)
	GetLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

type RewardHandler struct {
	rewardService Service
}

func New(rewardService Service) *RewardHandler {
	return &RewardHandler{
		rewardService: rewardService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current reward balance
//	@Description	Retrieve the current reward point balance for the authenticated user.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *RewardHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.rewardService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Balance: balance,
	})
}

// GetTransactions godoc
//
//	@Summary		Get recent point transactions
//	@Description	Get the most recent reward point transactions for the authenticated user, newest first.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionDTO	"Recent transactions"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/user/transactions [get]
func (h *RewardHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	transactions, err := h.rewardService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	response := make([]dto.TransactionDTO, len(transactions))
	for i, txn := range transactions {
		response[i] = dto.TransactionDTO{
			ID:          txn.ID,
			Type:        txn.Type,
			Amount:      txn.Amount,
			Description: txn.Description,
			Date:        txn.CreatedAt.Format(time.RFC3339),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetRewards godoc
//
//	@Summary		List redeemable rewards
//	@Description	List the rewards the authenticated user can redeem, including the full cash-out option when the balance is positive.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.RewardDTO	"Available rewards"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/rewards [get]
func (h *RewardHandler) GetRewards(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	rewards, err := h.rewardService.GetAvailableRewards(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch rewards")
		return
	}

	response := make([]dto.RewardDTO, len(rewards))
	for i, reward := range rewards {
		response[i] = dto.RewardDTO{
			ID:             reward.ID,
			Name:           reward.Name,
			Cost:           reward.Cost,
			Description:    reward.Description,
			CollectionInfo: reward.CollectionInfo,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Redeem godoc
//
//	@Summary		Redeem a reward
//	@Description	Spend points on a catalog reward, or pass the cash-out reward id 0 to redeem the entire balance.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RedeemRequestDTO	true	"Redemption request payload"
//	@Success		200		{object}	dto.RedeemResponseDTO	"Balance after redemption"
//	@Failure		400		{object}	utils.Response			"Nothing to redeem"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"Insufficient balance"
//	@Failure		404		{object}	utils.Response			"Reward not found"
//	@Failure		409		{object}	utils.Response			"Balance changed concurrently"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/rewards/redeem [post]
func (h *RewardHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	h.redeem(w, r, h.rewardService.RedeemReward)
}

// RedeemForCoupon godoc
//
//	@Summary		Redeem a reward for a coupon
//	@Description	Spend points on a reward and receive a discount coupon valid for thirty days.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RedeemRequestDTO	true	"Redemption request payload"
//	@Success		200		{object}	dto.RedeemResponseDTO	"Balance after redemption and the issued coupon"
//	@Failure		400		{object}	utils.Response			"Nothing to redeem"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"Insufficient balance"
//	@Failure		404		{object}	utils.Response			"Reward not found"
//	@Failure		409		{object}	utils.Response			"Balance changed concurrently"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/rewards/redeem/coupon [post]
func (h *RewardHandler) RedeemForCoupon(w http.ResponseWriter, r *http.Request) {
	h.redeem(w, r, h.rewardService.RedeemForCoupon)
}

func (h *RewardHandler) redeem(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, userID, rewardID int) (*domain.RewardAccount, *domain.Coupon, error)) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.RedeemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, coupon, err := fn(r.Context(), userID, req.RewardID)
	if err != nil {
		switch {
		case errors.Is(err, rewardservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, rewardservice.ErrRewardNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, rewardservice.ErrNothingToRedeem):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, rewardservice.ErrConcurrentModification):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, rewardservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response := dto.RedeemResponseDTO{Balance: account.Points}
	if coupon != nil {
		response.Coupon = &dto.CouponDTO{
			Code:     coupon.Code,
			Discount: coupon.Discount,
			Expiry:   coupon.Expiry,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetCoupons godoc
//
//	@Summary		Get issued coupons
//	@Description	Get the coupons issued to the authenticated user, newest first.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.CouponDTO	"Issued coupons"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/coupons [get]
func (h *RewardHandler) GetCoupons(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	coupons, err := h.rewardService.GetCoupons(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch coupons")
		return
	}

	response := make([]dto.CouponDTO, len(coupons))
	for i, coupon := range coupons {
		response[i] = dto.CouponDTO{
			Code:     coupon.Code,
			Discount: coupon.Discount,
			Expiry:   coupon.Expiry,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetLeaderboard godoc
//
//	@Summary		Get the points leaderboard
//	@Description	Get users ranked by reward points, highest first.
//	@Tags			Rewards
//	@Produce		json
//	@Success		200	{array}		dto.LeaderboardEntryDTO	"Ranked users"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/leaderboard [get]
func (h *RewardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.rewardService.GetLeaderboard(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch leaderboard")
		return
	}

	response := make([]dto.LeaderboardEntryDTO, len(entries))
	for i, entry := range entries {
		response[i] = dto.LeaderboardEntryDTO{
			UserID: entry.UserID,
			Name:   entry.UserName,
			Points: entry.Points,
			Level:  entry.Level,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
