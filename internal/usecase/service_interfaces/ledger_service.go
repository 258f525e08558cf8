package service_interfaces

import (
	"context"

	"github.com/api-sage/retail-bank-ledger/internal/adapter/console/models"
	"github.com/api-sage/retail-bank-ledger/internal/commons"
)

type LedgerService interface {
	PostTransaction(ctx context.Context, req models.PostTransactionRequest) (commons.Response[models.PostTransactionResponse], error)
	AddInterestRule(ctx context.Context, req models.AddInterestRuleRequest) (commons.Response[models.InterestRuleResponse], error)
	AccrueInterest(ctx context.Context, accountID string, year int, month int) (commons.Response[models.AccrueInterestResponse], error)
}
