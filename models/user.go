package models

// User is the authenticated account as seen by the sync client. It is
// derived from the claims of the stored access token.
type User struct {
	// ID is the numeric user identifier carried in the "sub" claim.
	ID int64 `json:"id"`

	// IsPremium mirrors the optional "premium" claim.
	IsPremium bool `json:"isPremium"`
}
