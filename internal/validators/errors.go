package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyID           = errors.New("id is required")
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
	ErrEmptyDescription  = errors.New("description is required")
	ErrInvalidDate       = errors.New("date is missing or unparsable")
	ErrInvalidTxType     = errors.New("transaction type must be income or expense")
	ErrEmptyName         = errors.New("name is required")
	ErrInvalidCatType    = errors.New("category type must be income, expense or both")
	ErrInvalidEntityType = errors.New("unknown entity type")
	ErrInvalidAction     = errors.New("unknown sync action")
	ErrEmptyData         = errors.New("data is required for create and update")
	ErrMalformedData     = errors.New("data does not decode into the entity type")
	ErrEntityIDMismatch  = errors.New("entity id does not match data id")
	ErrEmptyDeviceID     = errors.New("device id is required")
	ErrEmptyDeltas       = errors.New("deltas list cannot be empty")
)
