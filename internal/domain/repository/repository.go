// Package repository defines the data-access ports.
package repository

import (
	"context"
)

// KVStore is the durable key-value store used to persist the style
// catalog and the learning-progress aggregate under fixed namespaces.
type KVStore interface {
	// Get returns the bytes stored under ns; ok is false when absent.
	Get(ctx context.Context, ns string) (data []byte, ok bool, err error)
	// Set stores data under ns, replacing any previous value.
	Set(ctx context.Context, ns string, data []byte) error
}

// IDGenerator produces globally unique identifiers.
type IDGenerator func() string

// Pagination holds paging parameters.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// NewPagination creates pagination with sane bounds.
func NewPagination(page, pageSize int) Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return Pagination{Page: page, PageSize: pageSize}
}

// Offset returns the row offset for the page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Limit returns the page size.
func (p Pagination) Limit() int {
	return p.PageSize
}
