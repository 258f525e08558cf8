package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/api-sage/retail-bank-ledger/internal/adapter/console/models"
	"github.com/api-sage/retail-bank-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/retail-bank-ledger/internal/commons"
	"github.com/api-sage/retail-bank-ledger/internal/domain"
	"github.com/api-sage/retail-bank-ledger/internal/logger"
	"github.com/api-sage/retail-bank-ledger/internal/usecase/service_interfaces"
)

// Verify that StatementService implements the service_interfaces.StatementService interface
var _ service_interfaces.StatementService = (*StatementService)(nil)

const (
	statementRowFormat   = "| %-8s | %-11s | %-4s | %6s | %7s |"
	transactionRowFormat = "| %-8s | %-11s | %-4s | %6s |"
	ruleRowFormat        = "| %-8s | %-6s | %8s |"
)

type StatementService struct {
	accountRepo repo_interfaces.AccountRepository
	ruleRepo    repo_interfaces.RuleRepository
	ledger      service_interfaces.LedgerService
}

func NewStatementService(
	accountRepo repo_interfaces.AccountRepository,
	ruleRepo repo_interfaces.RuleRepository,
	ledger service_interfaces.LedgerService,
) *StatementService {
	return &StatementService{
		accountRepo: accountRepo,
		ruleRepo:    ruleRepo,
		ledger:      ledger,
	}
}

func (s *StatementService) ListTransactions(ctx context.Context, accountID string, withBalance bool) (commons.Response[models.StatementResponse], error) {
	logger.Info("statement service list transactions request", logger.Fields{
		"accountId":   accountID,
		"withBalance": withBalance,
	})

	account, err := s.accountRepo.Get(ctx, accountID)
	if err != nil {
		logger.Error("statement service list transactions account lookup failed", err, logger.Fields{
			"accountId": accountID,
		})
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.StatementResponse]("validation failed", fmt.Sprintf("Account %s does not exist.", accountID)), err
		}
		return commons.ErrorResponse[models.StatementResponse]("failed to list transactions", "Unable to list transactions right now"), err
	}

	lines := []string{fmt.Sprintf("Account: %s", accountID)}
	if withBalance {
		lines = append(lines, fmt.Sprintf(statementRowFormat, "Date", "Txn Id", "Type", "Amount", "Balance"))
	} else {
		lines = append(lines, fmt.Sprintf(transactionRowFormat, "Date", "Txn Id", "Type", "Amount"))
	}

	txns := account.Transactions()
	sortTransactions(txns)

	runningBalance := domain.Money{}
	for _, txn := range txns {
		runningBalance = applyToBalance(runningBalance, txn)
		if withBalance {
			lines = append(lines, fmt.Sprintf(statementRowFormat,
				domain.FormatDate(txn.Date), txn.ID, string(txn.Kind), txn.Amount.String(), runningBalance.String()))
		} else {
			lines = append(lines, fmt.Sprintf(transactionRowFormat,
				domain.FormatDate(txn.Date), txn.ID, string(txn.Kind), txn.Amount.String()))
		}
	}

	response := models.StatementResponse{
		AccountID: accountID,
		Statement: strings.Join(lines, "\n"),
	}

	logger.Info("statement service list transactions success", logger.Fields{
		"accountId": accountID,
		"count":     len(txns),
	})

	return commons.SuccessResponse("transactions listed successfully", response), nil
}

// MonthlyStatement renders one account's activity for a YYYYMM month,
// accruing that month's interest first so the interest entry appears even if
// it was never explicitly calculated. The opening balance is the balance at
// the end of the day before the month starts.
func (s *StatementService) MonthlyStatement(ctx context.Context, accountID string, yearMonth string) (commons.Response[models.StatementResponse], error) {
	logger.Info("statement service monthly statement request", logger.Fields{
		"accountId": accountID,
		"yearMonth": yearMonth,
	})

	year, month, err := parseYearMonth(yearMonth)
	if err != nil {
		logger.Error("statement service monthly statement parse selector failed", err, nil)
		return commons.ErrorResponse[models.StatementResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.Get(ctx, accountID)
	if err != nil {
		logger.Error("statement service monthly statement account lookup failed", err, logger.Fields{
			"accountId": accountID,
		})
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.StatementResponse]("validation failed", fmt.Sprintf("Account %s does not exist.", accountID)), err
		}
		return commons.ErrorResponse[models.StatementResponse]("failed to generate statement", "Unable to generate statement right now"), err
	}

	if _, err := s.ledger.AccrueInterest(ctx, accountID, year, month); err != nil {
		logger.Error("statement service monthly statement accrual failed", err, logger.Fields{
			"accountId": accountID,
			"yearMonth": yearMonth,
		})
		return commons.ErrorResponse[models.StatementResponse]("failed to generate statement", "Unable to generate statement right now"), err
	}

	monthStart, monthEnd := monthBounds(year, month)

	var monthTxns []domain.Transaction
	for _, txn := range account.Transactions() {
		if !txn.Date.Before(monthStart) && !txn.Date.After(monthEnd) {
			monthTxns = append(monthTxns, txn)
		}
	}
	if len(monthTxns) == 0 {
		err := domain.ErrNoTransactionsInPeriod
		logger.Error("statement service monthly statement empty period", err, logger.Fields{
			"accountId": accountID,
			"yearMonth": yearMonth,
		})
		return commons.ErrorResponse[models.StatementResponse]("validation failed",
			fmt.Sprintf("No transactions found for account %s in %s.", accountID, yearMonth)), err
	}

	sortTransactions(monthTxns)

	lines := []string{
		fmt.Sprintf("Account: %s", accountID),
		fmt.Sprintf(statementRowFormat, "Date", "Txn Id", "Type", "Amount", "Balance"),
	}

	runningBalance := account.BalanceAsOf(monthStart.AddDays(-1))
	for _, txn := range monthTxns {
		runningBalance = applyToBalance(runningBalance, txn)
		lines = append(lines, fmt.Sprintf(statementRowFormat,
			domain.FormatDate(txn.Date), txn.ID, string(txn.Kind), txn.Amount.String(), runningBalance.String()))
	}

	response := models.StatementResponse{
		AccountID: accountID,
		Statement: strings.Join(lines, "\n"),
	}

	logger.Info("statement service monthly statement success", logger.Fields{
		"accountId": accountID,
		"yearMonth": yearMonth,
		"count":     len(monthTxns),
	})

	return commons.SuccessResponse("statement generated successfully", response), nil
}

func (s *StatementService) ListRules(ctx context.Context) (commons.Response[models.StatementResponse], error) {
	logger.Info("statement service list rules request", nil)

	rules, err := s.ruleRepo.All(ctx)
	if err != nil {
		logger.Error("statement service list rules failed", err, nil)
		return commons.ErrorResponse[models.StatementResponse]("failed to list rules", "Unable to list rules right now"), err
	}

	if len(rules) == 0 {
		return commons.SuccessResponse("no rules defined", models.StatementResponse{
			Statement: "No interest rules defined.",
		}), nil
	}

	lines := []string{
		"Interest rules:",
		fmt.Sprintf(ruleRowFormat, "Date", "RuleId", "Rate (%)"),
	}
	for _, rule := range rules {
		lines = append(lines, fmt.Sprintf(ruleRowFormat,
			domain.FormatDate(rule.EffectiveDate), rule.RuleID, rule.RatePercent.String()))
	}

	logger.Info("statement service list rules success", logger.Fields{
		"count": len(rules),
	})

	return commons.SuccessResponse("rules listed successfully", models.StatementResponse{
		Statement: strings.Join(lines, "\n"),
	}), nil
}

func sortTransactions(txns []domain.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		if txns[i].Date != txns[j].Date {
			return txns[i].Date.Before(txns[j].Date)
		}
		return txns[i].ID < txns[j].ID
	})
}

func applyToBalance(balance domain.Money, txn domain.Transaction) domain.Money {
	if txn.Kind == domain.KindWithdrawal {
		return balance.Sub(txn.Amount)
	}
	return balance.Add(txn.Amount)
}

// parseYearMonth accepts only selectors of exactly six digits. The original
// console tolerated shorter inputs like "20231" by reading everything after
// the year as the month; that lenient parse is rejected here on purpose.
func parseYearMonth(raw string) (int, int, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) != 6 || !isDigits(raw) {
		return 0, 0, domain.ErrInvalidMonthSelector
	}

	year, err := strconv.Atoi(raw[:4])
	if err != nil {
		return 0, 0, domain.ErrInvalidMonthSelector
	}
	month, err := strconv.Atoi(raw[4:])
	if err != nil {
		return 0, 0, domain.ErrInvalidMonthSelector
	}
	if month < 1 || month > 12 {
		return 0, 0, domain.ErrInvalidMonthSelector
	}
	return year, month, nil
}
