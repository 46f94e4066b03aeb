package validators

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fin-sync/models"
)

// EntityValidator validates ledger entities and delta uploads.
type EntityValidator struct{}

func NewEntityValidator() Validator {
	return &EntityValidator{}
}

func (v *EntityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Transaction:
		return ValidateTransaction(value, fields...)
	case *models.Transaction:
		return ValidateTransaction(*value, fields...)

	case models.Category:
		return ValidateCategory(value, fields...)
	case *models.Category:
		return ValidateCategory(*value, fields...)

	case models.SyncDelta:
		return v.validateDelta(value)
	case *models.SyncDelta:
		return v.validateDelta(*value)

	case models.DeltaUploadRequest:
		return v.validateUpload(value)
	case *models.DeltaUploadRequest:
		return v.validateUpload(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *EntityValidator) validateUpload(req models.DeltaUploadRequest) error {
	if strings.TrimSpace(req.DeviceID) == "" {
		return ErrEmptyDeviceID
	}
	if len(req.Deltas) == 0 {
		return ErrEmptyDeltas
	}

	for i, d := range req.Deltas {
		if err := v.validateDelta(d); err != nil {
			return fmt.Errorf("delta %d (%s %s): %w", i, d.EntityType, d.EntityID, err)
		}
	}

	return nil
}

func (v *EntityValidator) validateDelta(d models.SyncDelta) error {
	if strings.TrimSpace(d.EntityID) == "" {
		return ErrEmptyID
	}

	switch d.Action {
	case models.ActionDelete:
		if d.EntityType != models.EntityTransaction && d.EntityType != models.EntityCategory {
			return ErrInvalidEntityType
		}
		return nil
	case models.ActionCreate, models.ActionUpdate:
	default:
		return ErrInvalidAction
	}

	if len(d.Data) == 0 || string(d.Data) == "null" {
		return ErrEmptyData
	}

	switch d.EntityType {
	case models.EntityTransaction:
		var t models.Transaction
		if err := json.Unmarshal(d.Data, &t); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedData, err)
		}
		if t.ID != d.EntityID {
			return ErrEntityIDMismatch
		}
		return ValidateTransaction(t)

	case models.EntityCategory:
		var c models.Category
		if err := json.Unmarshal(d.Data, &c); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedData, err)
		}
		if c.ID != d.EntityID {
			return ErrEntityIDMismatch
		}
		return ValidateCategory(c)

	default:
		return ErrInvalidEntityType
	}
}
