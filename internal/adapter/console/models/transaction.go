package models

import (
	"fmt"
	"strings"

	"github.com/api-sage/retail-bank-ledger/internal/domain"
)

type PostTransactionRequest struct {
	Date      string `json:"date"`
	AccountID string `json:"accountId"`
	Type      string `json:"type"`
	Amount    string `json:"amount"`
}

func (r PostTransactionRequest) Validate() error {
	if strings.TrimSpace(r.Date) == "" {
		return fmt.Errorf("date is required: %w", domain.ErrInvalidDate)
	}
	if strings.TrimSpace(r.AccountID) == "" {
		return fmt.Errorf("account is required")
	}
	if strings.TrimSpace(r.Type) == "" {
		return fmt.Errorf("type is required: %w", domain.ErrInvalidType)
	}
	if strings.TrimSpace(r.Amount) == "" {
		return fmt.Errorf("amount is required: %w", domain.ErrInvalidAmount)
	}
	return nil
}

type PostTransactionResponse struct {
	AccountID     string `json:"accountId"`
	TransactionID string `json:"transactionId"`
	Date          string `json:"date"`
	Type          string `json:"type"`
	Amount        string `json:"amount"`
}

type AccrueInterestResponse struct {
	AccountID  string `json:"accountId"`
	Period     string `json:"period"`
	Amount     string `json:"amount"`
	Applicable bool   `json:"applicable"`
	Posted     bool   `json:"posted"`
}
