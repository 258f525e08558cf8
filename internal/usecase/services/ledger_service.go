package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/api-sage/retail-bank-ledger/internal/adapter/console/models"
	"github.com/api-sage/retail-bank-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/retail-bank-ledger/internal/commons"
	"github.com/api-sage/retail-bank-ledger/internal/domain"
	"github.com/api-sage/retail-bank-ledger/internal/logger"
	"github.com/api-sage/retail-bank-ledger/internal/usecase/service_interfaces"
	"github.com/shopspring/decimal"
)

// Verify that LedgerService implements the service_interfaces.LedgerService interface
var _ service_interfaces.LedgerService = (*LedgerService)(nil)

var (
	oneHundred  = decimal.NewFromInt(100)
	daysPerYear = decimal.NewFromInt(365)
)

type LedgerService struct {
	accountRepo repo_interfaces.AccountRepository
	ruleRepo    repo_interfaces.RuleRepository
	// Per-date transaction sequence counters, keyed by the 8-digit date
	// text. Incremented only after every validation step has passed.
	counters map[string]int
}

func NewLedgerService(accountRepo repo_interfaces.AccountRepository, ruleRepo repo_interfaces.RuleRepository) *LedgerService {
	return &LedgerService{
		accountRepo: accountRepo,
		ruleRepo:    ruleRepo,
		counters:    make(map[string]int),
	}
}

func (s *LedgerService) PostTransaction(ctx context.Context, req models.PostTransactionRequest) (commons.Response[models.PostTransactionResponse], error) {
	logger.Info("ledger service post transaction request", logger.Fields{
		"payload": req,
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service post transaction validation failed", err, nil)
		return commons.ErrorResponse[models.PostTransactionResponse]("validation failed", err.Error()), err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		logger.Error("ledger service post transaction parse date failed", err, nil)
		return commons.ErrorResponse[models.PostTransactionResponse]("validation failed", err.Error()), err
	}

	kind, err := parseKind(req.Type)
	if err != nil {
		logger.Error("ledger service post transaction parse type failed", err, nil)
		return commons.ErrorResponse[models.PostTransactionResponse]("validation failed", err.Error()), err
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		logger.Error("ledger service post transaction parse amount failed", err, nil)
		return commons.ErrorResponse[models.PostTransactionResponse]("validation failed", err.Error()), err
	}

	accountID := strings.TrimSpace(req.AccountID)
	account, err := s.accountRepo.GetOrCreate(ctx, accountID)
	if err != nil {
		logger.Error("ledger service post transaction account lookup failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[models.PostTransactionResponse]("failed to post transaction", "Unable to post transaction right now"), err
	}

	if kind == domain.KindWithdrawal && !account.CanWithdraw(amount, date) {
		err := domain.ErrInsufficientFunds
		logger.Error("ledger service post transaction rejected", err, logger.Fields{
			"accountId": accountID,
			"amount":    amount.String(),
		})
		return commons.ErrorResponse[models.PostTransactionResponse]("validation failed", err.Error()), err
	}

	txn := domain.Transaction{
		ID:        s.nextTransactionID(strings.TrimSpace(req.Date)),
		Date:      date,
		AccountID: accountID,
		Kind:      kind,
		Amount:    amount,
	}
	account.AddTransaction(txn)

	response := models.PostTransactionResponse{
		AccountID:     accountID,
		TransactionID: txn.ID,
		Date:          domain.FormatDate(date),
		Type:          string(kind),
		Amount:        amount.String(),
	}

	logger.Info("ledger service post transaction success", logger.Fields{
		"accountId":     response.AccountID,
		"transactionId": response.TransactionID,
	})

	return commons.SuccessResponse("transaction posted successfully", response), nil
}

func (s *LedgerService) AddInterestRule(ctx context.Context, req models.AddInterestRuleRequest) (commons.Response[models.InterestRuleResponse], error) {
	logger.Info("ledger service add interest rule request", logger.Fields{
		"payload": req,
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service add interest rule validation failed", err, nil)
		return commons.ErrorResponse[models.InterestRuleResponse]("validation failed", err.Error()), err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		logger.Error("ledger service add interest rule parse date failed", err, nil)
		return commons.ErrorResponse[models.InterestRuleResponse]("validation failed", err.Error()), err
	}

	rate, err := parseRate(req.Rate)
	if err != nil {
		logger.Error("ledger service add interest rule parse rate failed", err, nil)
		return commons.ErrorResponse[models.InterestRuleResponse]("validation failed", err.Error()), err
	}

	rule := domain.InterestRule{
		EffectiveDate: date,
		RuleID:        strings.TrimSpace(req.RuleID),
		RatePercent:   rate,
	}
	if err := s.ruleRepo.Upsert(ctx, rule); err != nil {
		logger.Error("ledger service add interest rule repository failed", err, logger.Fields{
			"ruleId": rule.RuleID,
		})
		return commons.ErrorResponse[models.InterestRuleResponse]("failed to add interest rule", "Unable to add interest rule right now"), err
	}

	response := models.InterestRuleResponse{
		Date:   domain.FormatDate(date),
		RuleID: rule.RuleID,
		Rate:   rate.String(),
	}

	logger.Info("ledger service add interest rule success", logger.Fields{
		"ruleId": response.RuleID,
		"date":   response.Date,
	})

	return commons.SuccessResponse("interest rule added successfully", response), nil
}

// AccrueInterest computes day-weighted simple interest for one account and
// calendar month, posting the total as an interest transaction dated on the
// month's last day. The month is partitioned at every date where the balance
// or the applicable rate changes; each sub-period contributes
// balance * rate / 100 * days / 365 at full precision, and only the grand
// total is quantized. Accrual is idempotent per account and month.
func (s *LedgerService) AccrueInterest(ctx context.Context, accountID string, year int, month int) (commons.Response[models.AccrueInterestResponse], error) {
	logger.Info("ledger service accrue interest request", logger.Fields{
		"accountId": accountID,
		"year":      year,
		"month":     month,
	})

	if month < 1 || month > 12 {
		err := domain.ErrInvalidMonthSelector
		logger.Error("ledger service accrue interest rejected", err, nil)
		return commons.ErrorResponse[models.AccrueInterestResponse]("validation failed", err.Error()), err
	}

	period := fmt.Sprintf("%04d%02d", year, month)
	notApplicable := func(reason string) commons.Response[models.AccrueInterestResponse] {
		logger.Info("ledger service accrue interest not applicable", logger.Fields{
			"accountId": accountID,
			"period":    period,
			"reason":    reason,
		})
		return commons.SuccessResponse(reason, models.AccrueInterestResponse{
			AccountID:  accountID,
			Period:     period,
			Applicable: false,
		})
	}

	account, err := s.accountRepo.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return notApplicable("interest not applicable: account does not exist"), nil
		}
		logger.Error("ledger service accrue interest account lookup failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[models.AccrueInterestResponse]("failed to accrue interest", "Unable to accrue interest right now"), err
	}

	monthStart, monthEnd := monthBounds(year, month)

	active := false
	accrued := false
	for _, txn := range account.Transactions() {
		if txn.Date.After(monthEnd) {
			continue
		}
		active = true
		if txn.Kind == domain.KindInterest && !txn.Date.Before(monthStart) {
			accrued = true
		}
	}
	if !active {
		return notApplicable("interest not applicable: account has no activity in or before this month"), nil
	}
	if accrued {
		return notApplicable("interest not applicable: interest already accrued for this month"), nil
	}

	rules, err := s.ruleRepo.All(ctx)
	if err != nil {
		logger.Error("ledger service accrue interest rules lookup failed", err, nil)
		return commons.ErrorResponse[models.AccrueInterestResponse]("failed to accrue interest", "Unable to accrue interest right now"), err
	}

	total := accrueOverMonth(account, rules, monthStart, monthEnd)

	response := models.AccrueInterestResponse{
		AccountID:  accountID,
		Period:     period,
		Amount:     total.String(),
		Applicable: true,
	}

	if total.IsPositive() {
		account.AddTransaction(domain.Transaction{
			Date:      monthEnd,
			AccountID: accountID,
			Kind:      domain.KindInterest,
			Amount:    total,
		})
		response.Posted = true
	}

	logger.Info("ledger service accrue interest success", logger.Fields{
		"accountId": accountID,
		"period":    period,
		"amount":    response.Amount,
		"posted":    response.Posted,
	})

	return commons.SuccessResponse("interest accrued successfully", response), nil
}

// accrueOverMonth partitions [monthStart, monthEnd] at every in-month
// transaction date and rule effective date, then sums each sub-period's
// unrounded interest. The month-end breakpoint never starts a period of its
// own; periods before the first effective rule contribute nothing.
func accrueOverMonth(account *domain.Account, rules []domain.InterestRule, monthStart, monthEnd civil.Date) domain.Money {
	marks := map[civil.Date]struct{}{monthStart: {}}
	for _, txn := range account.Transactions() {
		if !txn.Date.Before(monthStart) && !txn.Date.After(monthEnd) {
			marks[txn.Date] = struct{}{}
		}
	}
	for _, rule := range rules {
		if !rule.EffectiveDate.Before(monthStart) && !rule.EffectiveDate.After(monthEnd) {
			marks[rule.EffectiveDate] = struct{}{}
		}
	}

	breakpoints := make([]civil.Date, 0, len(marks))
	for d := range marks {
		breakpoints = append(breakpoints, d)
	}
	sort.Slice(breakpoints, func(i, j int) bool {
		return breakpoints[i].Before(breakpoints[j])
	})

	total := decimal.Zero
	for i, start := range breakpoints {
		if start == monthEnd {
			continue
		}

		next := monthEnd.AddDays(1)
		if i+1 < len(breakpoints) {
			next = breakpoints[i+1]
		}
		days := next.DaysSince(start)

		rate, ok := rateInEffect(rules, start)
		if !ok {
			continue
		}

		balance := account.BalanceAsOf(start)
		periodInterest := balance.Decimal().
			Mul(rate.Decimal()).
			Div(oneHundred).
			Mul(decimal.NewFromInt(int64(days))).
			Div(daysPerYear)
		total = total.Add(periodInterest)
	}

	return domain.NewMoney(total)
}

// rateInEffect returns the rate of the latest rule effective on or before
// the given date. Rules arrive sorted ascending by effective date.
func rateInEffect(rules []domain.InterestRule, on civil.Date) (domain.Money, bool) {
	var rate domain.Money
	found := false
	for _, rule := range rules {
		if rule.EffectiveDate.After(on) {
			break
		}
		rate = rule.RatePercent
		found = true
	}
	return rate, found
}

func (s *LedgerService) nextTransactionID(dateText string) string {
	s.counters[dateText]++
	return fmt.Sprintf("%s-%02d", dateText, s.counters[dateText])
}

func parseDate(raw string) (civil.Date, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) != 8 || !isDigits(raw) {
		return civil.Date{}, domain.ErrInvalidDate
	}

	t, err := time.Parse("20060102", raw)
	if err != nil {
		return civil.Date{}, domain.ErrInvalidDate
	}
	return civil.DateOf(t), nil
}

func parseKind(raw string) (domain.TransactionKind, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "D":
		return domain.KindDeposit, nil
	case "W":
		return domain.KindWithdrawal, nil
	default:
		return "", domain.ErrInvalidType
	}
}

func parseAmount(raw string) (domain.Money, error) {
	amount, err := domain.MoneyFromString(raw)
	if err != nil {
		return domain.Money{}, domain.ErrInvalidAmount
	}
	if !amount.IsPositive() {
		return domain.Money{}, domain.ErrNonPositiveAmount
	}
	return amount, nil
}

func parseRate(raw string) (domain.Money, error) {
	rate, err := domain.MoneyFromString(raw)
	if err != nil {
		return domain.Money{}, domain.ErrInvalidRate
	}
	if !rate.IsPositive() || rate.GreaterThanOrEqual(domain.NewMoney(oneHundred)) {
		return domain.Money{}, domain.ErrRateOutOfRange
	}
	return rate, nil
}

func isDigits(s string) bool {
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
