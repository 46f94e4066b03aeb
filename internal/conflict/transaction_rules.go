package conflict

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-fin-sync/internal/validators"
	"github.com/MKhiriev/go-fin-sync/models"
)

// Transaction rule names.
const (
	RuleDataIntegrity       = "data_integrity"
	RulePreferNonDeleted    = "prefer_non_deleted"
	RuleMostRecentAmount    = "most_recent_amount"
	RuleMergeNonConflicting = "merge_non_conflicting"
)

// genericDescriptions are placeholder descriptions a merge may replace.
var genericDescriptions = []string{"", "Transação", "Transaction"}

// DefaultTransactionRules returns the built-in transaction rules.
func DefaultTransactionRules() []Rule[models.Transaction] {
	return []Rule[models.Transaction]{
		{
			Name:     RuleDataIntegrity,
			Priority: 100,
			Condition: func(rec Record[models.Transaction]) bool {
				return validators.IsValidTransaction(rec.Local) != validators.IsValidTransaction(rec.Remote)
			},
			Resolve: func(rec Record[models.Transaction]) Resolution[models.Transaction] {
				if validators.IsValidTransaction(rec.Local) {
					return Resolution[models.Transaction]{
						Kind:       KindLocal,
						Data:       rec.Local,
						Confidence: 1.0,
						Reason:     "local version has valid data, remote is corrupted",
					}
				}
				return Resolution[models.Transaction]{
					Kind:       KindRemote,
					Data:       rec.Remote,
					Confidence: 1.0,
					Reason:     "remote version has valid data, local is corrupted",
				}
			},
		},
		{
			Name:     RulePreferNonDeleted,
			Priority: 95,
			Condition: func(rec Record[models.Transaction]) bool {
				return rec.Local.IsDeleted() != rec.Remote.IsDeleted()
			},
			Resolve: func(rec Record[models.Transaction]) Resolution[models.Transaction] {
				if rec.Local.IsDeleted() {
					return Resolution[models.Transaction]{
						Kind:       KindRemote,
						Data:       rec.Remote,
						Confidence: 0.95,
						Reason:     "remote version is not deleted",
					}
				}
				return Resolution[models.Transaction]{
					Kind:       KindLocal,
					Data:       rec.Local,
					Confidence: 0.95,
					Reason:     "local version is not deleted",
				}
			},
		},
		{
			Name:     RuleMostRecentAmount,
			Priority: 90,
			Condition: func(rec Record[models.Transaction]) bool {
				return rec.Local.Amount != rec.Remote.Amount
			},
			Resolve: func(rec Record[models.Transaction]) Resolution[models.Transaction] {
				// ties go to remote
				if rec.Local.LastModified().After(rec.Remote.LastModified()) {
					return Resolution[models.Transaction]{
						Kind:       KindLocal,
						Data:       rec.Local,
						Confidence: 0.8,
						Reason:     "local version has more recent amount update",
					}
				}
				return Resolution[models.Transaction]{
					Kind:       KindRemote,
					Data:       rec.Remote,
					Confidence: 0.8,
					Reason:     "remote version has more recent amount update",
				}
			},
		},
		{
			Name:      RuleMergeNonConflicting,
			Priority:  70,
			Condition: func(Record[models.Transaction]) bool { return true },
			Resolve:   mergeTransactions,
		},
	}
}

func mergeTransactions(rec Record[models.Transaction]) Resolution[models.Transaction] {
	local, remote := rec.Local, rec.Remote

	merged := local
	merged.Tags = slices.Clone(local.Tags)

	if slices.Contains(genericDescriptions, strings.TrimSpace(merged.Description)) &&
		strings.TrimSpace(remote.Description) != "" {
		merged.Description = remote.Description
	}

	if remote.Notes != "" && local.Notes != remote.Notes {
		if merged.Notes != "" {
			merged.Notes = merged.Notes + "\n\n[Remote]: " + remote.Notes
		} else {
			merged.Notes = remote.Notes
		}
	}

	if remote.LastModified().After(local.LastModified()) {
		merged.UpdatedAt = remote.UpdatedAt
	}

	return Resolution[models.Transaction]{
		Kind:       KindMerge,
		Data:       merged,
		Confidence: 0.9,
		Reason:     "merged non-conflicting fields",
	}
}
