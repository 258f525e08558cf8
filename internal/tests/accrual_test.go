package services_test

import (
	"context"
	"testing"

	"github.com/api-sage/retail-bank-ledger/internal/adapter/console/models"
	"github.com/api-sage/retail-bank-ledger/internal/usecase/services"
)

func mustAccrue(t *testing.T, ledger *services.LedgerService, account string, year, month int) models.AccrueInterestResponse {
	t.Helper()
	resp, err := ledger.AccrueInterest(context.Background(), account, year, month)
	if err != nil {
		t.Fatalf("accrue %s %d-%02d: %v", account, year, month, err)
	}
	if resp.Data == nil {
		t.Fatal("expected accrual response data")
	}
	return *resp.Data
}

func TestAccrueInterestSingleRuleFullMonth(t *testing.T) {
	ledger, _ := newServices(t)
	mustPost(t, ledger, "20230101", "AC001", "D", "1000.00")
	mustAddRule(t, ledger, "20230101", "RULE01", "5.00")

	result := mustAccrue(t, ledger, "AC001", 2023, 1)
	if !result.Applicable || !result.Posted {
		t.Fatalf("expected applicable, posted accrual, got %+v", result)
	}
	// 1000 * 5% * 31 / 365
	if result.Amount != "4.25" {
		t.Fatalf("january interest = %s, want 4.25", result.Amount)
	}
}

func TestAccrueInterestPartitionsAtBalanceChanges(t *testing.T) {
	ledger, _ := newServices(t)
	mustPost(t, ledger, "20230101", "AC001", "D", "1000.00")
	mustPost(t, ledger, "20230115", "AC001", "D", "500.00")
	mustPost(t, ledger, "20230120", "AC001", "W", "200.00")
	mustAddRule(t, ledger, "20230101", "RULE01", "5.00")

	result := mustAccrue(t, ledger, "AC001", 2023, 1)
	// 1000 x 14d + 1500 x 5d + 1300 x 12d, each at 5%/365, rounded once.
	if result.Amount != "5.08" {
		t.Fatalf("january interest = %s, want 5.08", result.Amount)
	}
}

func TestAccrueInterestPartitionsAtRuleChanges(t *testing.T) {
	ledger, _ := newServices(t)
	mustPost(t, ledger, "20230101", "AC001", "D", "1000.00")
	mustAddRule(t, ledger, "20230101", "RULE01", "5.00")
	mustAddRule(t, ledger, "20230115", "RULE02", "6.00")

	result := mustAccrue(t, ledger, "AC001", 2023, 1)
	// 1000 x 5% x 14/365 + 1000 x 6% x 17/365
	if result.Amount != "4.71" {
		t.Fatalf("january interest = %s, want 4.71", result.Amount)
	}
}

func TestAccrueInterestZeroBalancePostsNothing(t *testing.T) {
	ledger, statements := newServices(t)
	mustPost(t, ledger, "20230110", "AC001", "D", "500.00")
	mustPost(t, ledger, "20230110", "AC001", "W", "500.00")
	mustAddRule(t, ledger, "20230101", "RULE01", "5.00")

	result := mustAccrue(t, ledger, "AC001", 2023, 1)
	if !result.Applicable {
		t.Fatalf("expected applicable accrual, got %+v", result)
	}
	if result.Amount != "0.00" || result.Posted {
		t.Fatalf("expected zero interest with nothing posted, got %+v", result)
	}

	resp, err := statements.ListTransactions(context.Background(), "AC001", false)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if got := countRows(resp.Data.Statement); got != 2 {
		t.Fatalf("expected only the deposit and withdrawal rows, got %d", got)
	}
}

func TestAccrueInterestWithoutAnyRuleAccruesZero(t *testing.T) {
	ledger, _ := newServices(t)
	mustPost(t, ledger, "20230101", "AC001", "D", "1000.00")

	result := mustAccrue(t, ledger, "AC001", 2023, 1)
	if result.Amount != "0.00" || result.Posted {
		t.Fatalf("expected zero interest without rules, got %+v", result)
	}
}

func TestAccrueInterestIsIdempotentPerMonth(t *testing.T) {
	ledger, statements := newServices(t)
	mustPost(t, ledger, "20230101", "AC001", "D", "1000.00")
	mustAddRule(t, ledger, "20230101", "RULE01", "5.00")

	first := mustAccrue(t, ledger, "AC001", 2023, 1)
	if !first.Posted {
		t.Fatalf("expected first accrual to post, got %+v", first)
	}

	second := mustAccrue(t, ledger, "AC001", 2023, 1)
	if second.Applicable {
		t.Fatalf("expected second accrual to be not applicable, got %+v", second)
	}

	resp, err := statements.ListTransactions(context.Background(), "AC001", false)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if got := countRows(resp.Data.Statement); got != 2 {
		t.Fatalf("expected exactly one interest transaction after repeated accrual, got %d rows", got)
	}
}

func TestAccrueInterestCompoundsAcrossMonths(t *testing.T) {
	ledger, _ := newServices(t)
	mustPost(t, ledger, "20230101", "AC001", "D", "1000.00")
	mustAddRule(t, ledger, "20230101", "RULE01", "5.00")

	january := mustAccrue(t, ledger, "AC001", 2023, 1)
	if january.Amount != "4.25" {
		t.Fatalf("january interest = %s, want 4.25", january.Amount)
	}

	// February opens at 1004.25: 1004.25 * 5% * 28 / 365.
	february := mustAccrue(t, ledger, "AC001", 2023, 2)
	if february.Amount != "3.85" {
		t.Fatalf("february interest = %s, want 3.85", february.Amount)
	}
}

func TestAccrueInterestLeapFebruaryStillDividesBy365(t *testing.T) {
	ledger, _ := newServices(t)
	mustPost(t, ledger, "20240201", "AC001", "D", "1000.00")
	mustAddRule(t, ledger, "20240201", "RULE01", "5.00")

	result := mustAccrue(t, ledger, "AC001", 2024, 2)
	// 29 days at 5%, divisor stays 365.
	if result.Amount != "3.97" {
		t.Fatalf("leap february interest = %s, want 3.97", result.Amount)
	}
}

func TestAccrueInterestNotApplicableForInactiveAccount(t *testing.T) {
	ledger, _ := newServices(t)

	unknown := mustAccrue(t, ledger, "NOBODY", 2023, 1)
	if unknown.Applicable {
		t.Fatalf("expected not applicable for unknown account, got %+v", unknown)
	}

	mustPost(t, ledger, "20230301", "AC001", "D", "100.00")
	early := mustAccrue(t, ledger, "AC001", 2023, 1)
	if early.Applicable {
		t.Fatalf("expected not applicable before first transaction, got %+v", early)
	}
}

func TestAccrueInterestTransactionOnRuleChangeDateCountsOnce(t *testing.T) {
	ledger, _ := newServices(t)
	mustPost(t, ledger, "20230101", "AC001", "D", "1000.00")
	mustAddRule(t, ledger, "20230101", "RULE01", "5.00")
	mustAddRule(t, ledger, "20230115", "RULE02", "6.00")
	mustPost(t, ledger, "20230115", "AC001", "D", "1000.00")

	result := mustAccrue(t, ledger, "AC001", 2023, 1)
	// 1000 x 5% x 14/365 + 2000 x 6% x 17/365: the shared breakpoint on the
	// 15th starts a single period with both the new balance and the new rate.
	if result.Amount != "7.51" {
		t.Fatalf("january interest = %s, want 7.51", result.Amount)
	}
}
