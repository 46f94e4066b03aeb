package conflict

import (
	"sync"

	"github.com/MKhiriev/go-fin-sync/internal/logger"
	"github.com/MKhiriev/go-fin-sync/models"
)

// Stats reports how many rules are registered per record type.
type Stats struct {
	TransactionRules int `json:"transactionRules"`
	CategoryRules    int `json:"categoryRules"`
}

// Resolver holds the rule sets for transactions and categories. It is safe
// for concurrent use; rules may be added while resolutions are running.
type Resolver struct {
	log *logger.Logger

	mu           sync.RWMutex
	transactions *RuleSet[models.Transaction]
	categories   *RuleSet[models.Category]
}

// NewResolver returns a resolver loaded with the default rules.
func NewResolver(log *logger.Logger) *Resolver {
	r := &Resolver{log: log.Component("conflict")}
	r.ResetToDefaults()
	return r
}

// ResolveTransaction resolves one transaction conflict.
func (r *Resolver) ResolveTransaction(rec Record[models.Transaction]) Resolution[models.Transaction] {
	r.mu.RLock()
	res := r.transactions.Resolve(rec)
	r.mu.RUnlock()

	r.logResolution("transaction conflict resolved", rec.Local.ID, res.Rule, res.Kind, res.Confidence, res.Reason)
	return res
}

// ResolveTransactions resolves conflicts in order.
func (r *Resolver) ResolveTransactions(recs []Record[models.Transaction]) []Resolution[models.Transaction] {
	out := make([]Resolution[models.Transaction], len(recs))
	for i, rec := range recs {
		out[i] = r.ResolveTransaction(rec)
	}
	return out
}

// ResolveCategory resolves one category conflict.
func (r *Resolver) ResolveCategory(rec Record[models.Category]) Resolution[models.Category] {
	r.mu.RLock()
	res := r.categories.Resolve(rec)
	r.mu.RUnlock()

	r.logResolution("category conflict resolved", rec.Local.ID, res.Rule, res.Kind, res.Confidence, res.Reason)
	return res
}

// ResolveCategories resolves conflicts in order.
func (r *Resolver) ResolveCategories(recs []Record[models.Category]) []Resolution[models.Category] {
	out := make([]Resolution[models.Category], len(recs))
	for i, rec := range recs {
		out[i] = r.ResolveCategory(rec)
	}
	return out
}

// AddTransactionRule registers additional transaction rules.
func (r *Resolver) AddTransactionRule(rules ...Rule[models.Transaction]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.transactions.clone()
	next.Add(rules...)
	r.transactions = next
}

// AddCategoryRule registers additional category rules.
func (r *Resolver) AddCategoryRule(rules ...Rule[models.Category]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.categories.clone()
	next.Add(rules...)
	r.categories = next
}

// Stats returns the number of registered rules.
func (r *Resolver) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return Stats{
		TransactionRules: r.transactions.Len(),
		CategoryRules:    r.categories.Len(),
	}
}

// ResetToDefaults drops custom rules.
func (r *Resolver) ResetToDefaults() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transactions = NewRuleSet(DefaultTransactionRules()...)
	r.categories = NewRuleSet(DefaultCategoryRules()...)
}

func (r *Resolver) logResolution(msg, id, rule string, kind Kind, confidence float64, reason string) {
	r.log.Info().
		Str("entity_id", id).
		Str("rule", rule).
		Str("resolution", string(kind)).
		Float64("confidence", confidence).
		Str("reason", reason).
		Msg(msg)
}

// RemoteWins resolves rec to the remote copy without consulting any rule.
// It is used when rule-based resolution is switched off.
func RemoteWins[T any](rec Record[T]) Resolution[T] {
	return Resolution[T]{
		Kind:       KindRemote,
		Data:       rec.Remote,
		Confidence: 0.5,
		Reason:     "rule-based resolution disabled, using remote version",
		Rule:       "remote_only",
	}
}
