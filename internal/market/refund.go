package market

import (
	"context"

	"go.uber.org/zap"

	"github.com/wavemint/marketplace/internal/logger"
	"github.com/wavemint/marketplace/internal/xrpl"
)

// Refund returns the buyer's XRP with a memo naming the reason. It never
// fails: any error is logged and reported as an empty hash, leaving the
// caller to surface "refunded: false" and the operator to reconcile
// manually. Failing louder here would not change the outcome.
func (s *Service) Refund(ctx context.Context, ledger xrpl.Ledger, buyerAddress string, amountDrops uint64, reason string) string {
	if buyerAddress == "" || amountDrops == 0 {
		return ""
	}

	res, err := ledger.SendPayment(ctx, xrpl.PaymentParams{
		Destination: buyerAddress,
		AmountDrops: amountDrops,
		Memo:        "Refund: " + reason,
	})
	if err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("buyer", buyerAddress),
			zap.Uint64("amount_drops", amountDrops),
			zap.String("message", "refund submission failed"))
		return ""
	}
	if !res.Success() {
		logger.ErrorCtx(ctx, nil,
			zap.String("buyer", buyerAddress),
			zap.Uint64("amount_drops", amountDrops),
			zap.String("result_code", res.ResultCode),
			zap.String("message", "refund transaction rejected by ledger"))
		return ""
	}

	logger.InfoCtx(ctx, "refunded buyer",
		zap.String("buyer", buyerAddress),
		zap.Uint64("amount_drops", amountDrops),
		zap.String("tx_hash", res.Hash))
	return res.Hash
}
