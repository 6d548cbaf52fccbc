package services

import (
	"context"
	"fmt"
	"math"
	"math/big"

	"github.com/cyphera/swarm-api/internal/client/aggregator"
	"github.com/cyphera/swarm-api/internal/db"
	"github.com/cyphera/swarm-api/internal/helpers"
	"github.com/cyphera/swarm-api/internal/logger"
	"github.com/cyphera/swarm-api/internal/template"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SwapPlanService turns a swap action into a per-wallet execution plan.
// Preview and execute share this computation: building a plan never mutates
// persisted state.
type SwapPlanService struct {
	queries    db.Querier
	contexts   WalletContextProvider
	aggregator SwapAggregator
	feeBps     int64
	logger     *zap.Logger
}

// NewSwapPlanService creates a new swap plan service. feeBps is the platform
// fee in basis points, deducted from the buy side of every leg.
func NewSwapPlanService(queries db.Querier, contexts WalletContextProvider, agg SwapAggregator, feeBps int64) *SwapPlanService {
	return &SwapPlanService{
		queries:    queries,
		contexts:   contexts,
		aggregator: agg,
		feeBps:     feeBps,
		logger:     logger.Log,
	}
}

// SwapPlanEntry is one wallet's leg of the plan. Entries with a non-empty
// Error are excluded from on-chain submission but still appear in the plan.
type SwapPlanEntry struct {
	MembershipID    uuid.UUID `json:"membership_id"`
	WalletAddress   string    `json:"wallet_address"`
	SellAmount      *big.Int  `json:"sell_amount"`
	BuyAmount       *big.Int  `json:"buy_amount"`
	FeeAmount       *big.Int  `json:"fee_amount"`
	To              string    `json:"to"`
	Data            string    `json:"data"`
	Value           *big.Int  `json:"value"`
	AllowanceTarget string    `json:"allowance_target"`
	Error           string    `json:"error,omitempty"`
}

// SwapPlan is the full batch plan with aggregate totals. Totals are sums over
// the entries, never re-derived independently.
type SwapPlan struct {
	SellToken       string           `json:"sell_token"`
	BuyToken        string           `json:"buy_token"`
	Entries         []*SwapPlanEntry `json:"entries"`
	TotalSellAmount *big.Int         `json:"total_sell_amount"`
	TotalBuyAmount  *big.Int         `json:"total_buy_amount"`
	TotalFeeAmount  *big.Int         `json:"total_fee_amount"`
	SuccessCount    int              `json:"success_count"`
	ErrorCount      int              `json:"error_count"`
}

// PercentToBps converts a percentage with up to two fractional digits into
// basis points.
func PercentToBps(percent float64) int64 {
	return int64(math.Round(percent * 100))
}

// BuildPlan computes the per-wallet plan for a swap action over the swarm's
// active memberships. A wallet whose balance lookup or quote fails gets an
// error entry; the rest of the batch proceeds.
func (s *SwapPlanService) BuildPlan(ctx context.Context, swarmID uuid.UUID, action *template.SwapAction) (*SwapPlan, error) {
	memberships, err := s.queries.ListActiveMembershipsBySwarm(ctx, swarmID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active memberships: %w", err)
	}

	sellBps := PercentToBps(action.SellPercentage)
	slippageBps := PercentToBps(action.SlippagePercentage)

	plan := &SwapPlan{
		SellToken:       action.SellToken,
		BuyToken:        action.BuyToken,
		TotalSellAmount: big.NewInt(0),
		TotalBuyAmount:  big.NewInt(0),
		TotalFeeAmount:  big.NewInt(0),
	}

	var quotable []*SwapPlanEntry
	for _, membership := range memberships {
		entry := &SwapPlanEntry{
			MembershipID:  membership.ID,
			WalletAddress: membership.WalletAddress,
			SellAmount:    big.NewInt(0),
			BuyAmount:     big.NewInt(0),
			FeeAmount:     big.NewInt(0),
			Value:         big.NewInt(0),
		}
		plan.Entries = append(plan.Entries, entry)

		wctx, err := s.contexts.GetWalletContext(ctx, membership.WalletAddress, []string{action.SellToken})
		if err != nil {
			entry.Error = fmt.Sprintf("failed to fetch wallet context: %v", err)
			continue
		}

		balance := wctx.TokenBalances[helpers.NormalizeAddress(action.SellToken)]
		if balance == nil || balance.Sign() == 0 {
			entry.Error = fmt.Sprintf("no %s balance to sell", action.SellToken)
			continue
		}

		sellAmount := new(big.Int).Mul(balance, big.NewInt(sellBps))
		sellAmount.Div(sellAmount, big.NewInt(10000))
		if sellAmount.Sign() == 0 {
			entry.Error = "sell amount rounds to zero"
			continue
		}

		entry.SellAmount = sellAmount
		quotable = append(quotable, entry)
	}

	if len(quotable) > 0 {
		requests := make([]aggregator.QuoteRequest, len(quotable))
		for i, entry := range quotable {
			requests[i] = aggregator.QuoteRequest{
				WalletAddress: entry.WalletAddress,
				SellToken:     action.SellToken,
				BuyToken:      action.BuyToken,
				SellAmount:    entry.SellAmount,
				SlippageBps:   slippageBps,
			}
		}

		results, err := s.aggregator.GetSwapExecuteData(ctx, requests)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch swap quotes: %w", err)
		}
		if len(results) != len(quotable) {
			return nil, fmt.Errorf("aggregator returned %d results for %d wallets", len(results), len(quotable))
		}

		for i, result := range results {
			entry := quotable[i]
			if result.Error != "" {
				entry.SellAmount = big.NewInt(0)
				entry.Error = result.Error
				continue
			}

			fee := new(big.Int).Mul(result.BuyAmount, big.NewInt(s.feeBps))
			fee.Div(fee, big.NewInt(10000))

			entry.To = result.To
			entry.Data = result.Data
			entry.Value = result.Value
			entry.AllowanceTarget = result.AllowanceTarget
			entry.FeeAmount = fee
			entry.BuyAmount = new(big.Int).Sub(result.BuyAmount, fee)
		}
	}

	for _, entry := range plan.Entries {
		if entry.Error != "" {
			plan.ErrorCount++
			continue
		}
		plan.SuccessCount++
		plan.TotalSellAmount.Add(plan.TotalSellAmount, entry.SellAmount)
		plan.TotalBuyAmount.Add(plan.TotalBuyAmount, entry.BuyAmount)
		plan.TotalFeeAmount.Add(plan.TotalFeeAmount, entry.FeeAmount)
	}

	s.logger.Info("Built swap plan",
		zap.String("swarm_id", swarmID.String()),
		zap.Int("wallets", len(plan.Entries)),
		zap.Int("success_count", plan.SuccessCount),
		zap.Int("error_count", plan.ErrorCount),
	)

	return plan, nil
}
