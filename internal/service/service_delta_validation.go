package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fin-sync/internal/validators"
	"github.com/MKhiriev/go-fin-sync/models"
)

// DeltaValidationService rejects malformed uploads before they reach the
// wrapped DeltaService.
type DeltaValidationService struct {
	inner     DeltaService
	validator validators.Validator
}

func NewDeltaValidationService() DeltaServiceWrapper {
	return &DeltaValidationService{
		validator: validators.NewEntityValidator(),
	}
}

func (v *DeltaValidationService) GetDeltas(ctx context.Context, userID int64, since time.Time) (models.DeltaSync, error) {
	if userID == 0 {
		return models.DeltaSync{}, ErrNoUserID
	}

	return v.inner.GetDeltas(ctx, userID, since)
}

func (v *DeltaValidationService) ApplyDeltas(ctx context.Context, userID int64, req models.DeltaUploadRequest) error {
	if userID == 0 {
		return ErrNoUserID
	}

	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ApplyDeltas(ctx, userID, req)
}

func (v *DeltaValidationService) Wrap(wrapped DeltaService) DeltaService {
	v.inner = wrapped
	return v
}
