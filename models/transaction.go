// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is a single income or expense entry of the ledger.
//
// Date is kept as the raw string received from the client so that a
// malformed value can still be represented (and rejected by the conflict
// resolver's integrity rule) instead of failing JSON decoding.
type Transaction struct {
	ID            string          `json:"id"`
	Type          TransactionType `json:"type"`
	Amount        float64         `json:"amount"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Date          string          `json:"date"`
	Notes         string          `json:"notes,omitempty"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Tags          []string        `json:"tags,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

func (t Transaction) EntityID() string        { return t.ID }
func (t Transaction) EntityType() EntityType  { return EntityTransaction }
func (t Transaction) LastModified() time.Time { return laterOf(t.CreatedAt, t.UpdatedAt) }
func (t Transaction) IsDeleted() bool         { return t.DeletedAt != nil }

// Normalize returns a copy with all timestamps in UTC and an empty tag list
// collapsed to nil, so that two copies read from different sources
// serialize identically.
func (t Transaction) Normalize() Transaction {
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = utcPtr(t.UpdatedAt)
	t.DeletedAt = utcPtr(t.DeletedAt)
	if len(t.Tags) == 0 {
		t.Tags = nil
	}
	return t
}
