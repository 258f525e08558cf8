package memory

import (
	"context"
	"sort"

	"github.com/api-sage/retail-bank-ledger/internal/domain"
)

type RuleRepository struct {
	rules []domain.InterestRule
}

func NewRuleRepository() *RuleRepository {
	return &RuleRepository{}
}

func (r *RuleRepository) Upsert(_ context.Context, rule domain.InterestRule) error {
	kept := r.rules[:0]
	for _, existing := range r.rules {
		if existing.EffectiveDate != rule.EffectiveDate {
			kept = append(kept, existing)
		}
	}
	r.rules = append(kept, rule)

	sort.Slice(r.rules, func(i, j int) bool {
		return r.rules[i].EffectiveDate.Before(r.rules[j].EffectiveDate)
	})
	return nil
}

func (r *RuleRepository) All(_ context.Context) ([]domain.InterestRule, error) {
	out := make([]domain.InterestRule, len(r.rules))
	copy(out, r.rules)
	return out, nil
}
