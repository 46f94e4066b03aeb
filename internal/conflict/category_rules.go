package conflict

import (
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-fin-sync/models"
)

// Category rule names.
const (
	RuleSystemCategoriesServerWins = "system_categories_server_wins"
	RuleCustomCategoriesLocalWins  = "custom_categories_local_wins"
	RuleMergeCategoryProperties    = "merge_category_properties"
)

// DefaultCategoryRules returns the built-in category rules.
//
// Local edits of custom categories win, except when the local copy still
// shows a placeholder color or icon that the remote copy has replaced: then
// the merge rule runs so the concrete value is not lost.
func DefaultCategoryRules() []Rule[models.Category] {
	return []Rule[models.Category]{
		{
			Name:     RuleSystemCategoriesServerWins,
			Priority: 100,
			Condition: func(rec Record[models.Category]) bool {
				return rec.Remote.IsSystem
			},
			Resolve: func(rec Record[models.Category]) Resolution[models.Category] {
				return Resolution[models.Category]{
					Kind:       KindRemote,
					Data:       rec.Remote,
					Confidence: 1.0,
					Reason:     "system categories always use server version",
				}
			},
		},
		{
			Name:     RuleCustomCategoriesLocalWins,
			Priority: 80,
			Condition: func(rec Record[models.Category]) bool {
				return rec.Local.IsCustom && rec.Remote.IsCustom && !overridesPlaceholder(rec)
			},
			Resolve: func(rec Record[models.Category]) Resolution[models.Category] {
				return Resolution[models.Category]{
					Kind:       KindLocal,
					Data:       rec.Local,
					Confidence: 0.9,
					Reason:     "custom categories prefer local modifications",
				}
			},
		},
		{
			Name:      RuleMergeCategoryProperties,
			Priority:  70,
			Condition: func(Record[models.Category]) bool { return true },
			Resolve:   mergeCategories,
		},
	}
}

func mergeCategories(rec Record[models.Category]) Resolution[models.Category] {
	local, remote := rec.Local, rec.Remote
	merged := local

	if utf8.RuneCountInString(remote.Name) > utf8.RuneCountInString(merged.Name) {
		merged.Name = remote.Name
	}
	if isPlaceholderColor(merged.Color) && !isPlaceholderColor(remote.Color) {
		merged.Color = remote.Color
	}
	if isPlaceholderIcon(merged.Icon) && !isPlaceholderIcon(remote.Icon) {
		merged.Icon = remote.Icon
	}

	return Resolution[models.Category]{
		Kind:       KindMerge,
		Data:       merged,
		Confidence: 0.85,
		Reason:     "merged category properties",
	}
}

// overridesPlaceholder reports whether remote carries a concrete color or
// icon where local still has a placeholder.
func overridesPlaceholder(rec Record[models.Category]) bool {
	return (isPlaceholderColor(rec.Local.Color) && !isPlaceholderColor(rec.Remote.Color)) ||
		(isPlaceholderIcon(rec.Local.Icon) && !isPlaceholderIcon(rec.Remote.Icon))
}

func isPlaceholderColor(c string) bool {
	return c == "" || strings.EqualFold(c, models.DefaultCategoryColor)
}

func isPlaceholderIcon(i string) bool {
	return i == "" || i == models.DefaultCategoryIcon
}
