// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CategoryType tells which transaction types a category may be assigned to.
type CategoryType string

const (
	CategoryIncome  CategoryType = "income"
	CategoryExpense CategoryType = "expense"
	CategoryBoth    CategoryType = "both"
)

// Placeholder values a category carries until the user picks real ones.
const (
	DefaultCategoryColor = "#CCCCCC"
	DefaultCategoryIcon  = "folder"
)

// Category groups transactions. System categories are server-owned reference
// data; custom categories belong to the user.
type Category struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Icon     string       `json:"icon"`
	Color    string       `json:"color"`
	Type     CategoryType `json:"type"`
	Budget   *float64     `json:"budget,omitempty"`
	IsCustom bool         `json:"isCustom"`
	IsSystem bool         `json:"isSystem,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

func (c Category) EntityID() string        { return c.ID }
func (c Category) EntityType() EntityType  { return EntityCategory }
func (c Category) LastModified() time.Time { return laterOf(c.CreatedAt, c.UpdatedAt) }
func (c Category) IsDeleted() bool         { return c.DeletedAt != nil }

// Normalize returns a copy with all timestamps in UTC.
func (c Category) Normalize() Category {
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = utcPtr(c.UpdatedAt)
	c.DeletedAt = utcPtr(c.DeletedAt)
	return c
}
