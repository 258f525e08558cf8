package service_interfaces

import (
	"context"

	"github.com/api-sage/retail-bank-ledger/internal/adapter/console/models"
	"github.com/api-sage/retail-bank-ledger/internal/commons"
)

type StatementService interface {
	ListTransactions(ctx context.Context, accountID string, withBalance bool) (commons.Response[models.StatementResponse], error)
	MonthlyStatement(ctx context.Context, accountID string, yearMonth string) (commons.Response[models.StatementResponse], error)
	ListRules(ctx context.Context) (commons.Response[models.StatementResponse], error)
}
