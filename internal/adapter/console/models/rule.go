package models

import (
	"fmt"
	"strings"

	"github.com/api-sage/retail-bank-ledger/internal/domain"
)

type AddInterestRuleRequest struct {
	Date   string `json:"date"`
	RuleID string `json:"ruleId"`
	Rate   string `json:"rate"`
}

func (r AddInterestRuleRequest) Validate() error {
	if strings.TrimSpace(r.Date) == "" {
		return fmt.Errorf("date is required: %w", domain.ErrInvalidDate)
	}
	if strings.TrimSpace(r.RuleID) == "" {
		return fmt.Errorf("ruleId is required")
	}
	if strings.TrimSpace(r.Rate) == "" {
		return fmt.Errorf("rate is required: %w", domain.ErrInvalidRate)
	}
	return nil
}

type InterestRuleResponse struct {
	Date   string `json:"date"`
	RuleID string `json:"ruleId"`
	Rate   string `json:"rate"`
}
