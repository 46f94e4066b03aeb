package validators

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-fin-sync/models"
)

// Field names accepted by [ValidateTransaction] and [ValidateCategory].
const (
	FieldID          = "id"
	FieldAmount      = "amount"
	FieldDescription = "description"
	FieldDate        = "date"
	FieldType        = "type"
	FieldName        = "name"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses a transaction date in any of the accepted layouts:
// RFC 3339 with or without fraction, a zone-less timestamp, or a bare date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, err
}

// ValidateTransaction checks the basic validity of t. With no fields all
// checks run; otherwise only the named ones.
func ValidateTransaction(t models.Transaction, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldAmount, FieldDescription, FieldDate, FieldType}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(t.ID) == "" {
				errs = append(errs, ErrEmptyID)
			}
		case FieldAmount:
			if !(t.Amount > 0) {
				errs = append(errs, ErrInvalidAmount)
			}
		case FieldDescription:
			if strings.TrimSpace(t.Description) == "" {
				errs = append(errs, ErrEmptyDescription)
			}
		case FieldDate:
			if _, err := ParseDate(t.Date); t.Date == "" || err != nil {
				errs = append(errs, ErrInvalidDate)
			}
		case FieldType:
			if t.Type != models.TransactionIncome && t.Type != models.TransactionExpense {
				errs = append(errs, ErrInvalidTxType)
			}
		default:
			errs = append(errs, ErrUnknownField)
		}
	}

	return errors.Join(errs...)
}

// IsValidTransaction reports whether t passes every check of
// [ValidateTransaction].
func IsValidTransaction(t models.Transaction) bool {
	return ValidateTransaction(t) == nil
}

var categoryTypes = []models.CategoryType{models.CategoryIncome, models.CategoryExpense, models.CategoryBoth}

// ValidateCategory checks that c has an id, a name and a known type.
func ValidateCategory(c models.Category, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldType}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(c.ID) == "" {
				errs = append(errs, ErrEmptyID)
			}
		case FieldName:
			if strings.TrimSpace(c.Name) == "" {
				errs = append(errs, ErrEmptyName)
			}
		case FieldType:
			if !slices.Contains(categoryTypes, c.Type) {
				errs = append(errs, ErrInvalidCatType)
			}
		default:
			errs = append(errs, ErrUnknownField)
		}
	}

	return errors.Join(errs...)
}
