package domain

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicateLink = errors.New("link already exists")
)

// URLRecord is a stored row. Link is the canonical URL and the unique key.
type URLRecord struct {
	ID        int64     `db:"id"`
	Link      string    `db:"link"`
	IsFraud   bool      `db:"is_fraud"`
	CreatedAt time.Time `db:"created_at"`
}

// NewURLRecord is what callers hand to the store; id and created_at are
// assigned by the store.
type NewURLRecord struct {
	Link    string
	IsFraud bool
}

// InsertResult reports the outcome of a partial-success batch insert.
// Failed lists links that could not be written for a reason other than a
// conflict.
type InsertResult struct {
	Inserted  []URLRecord
	Conflicts int
	Failed    []string
}

// Entry is the caller-facing view of a URLRecord with an opaque id.
type Entry struct {
	ID        string    `json:"id"`
	Link      string    `json:"link"`
	IsFraud   bool      `json:"isFraud"`
	CreatedAt time.Time `json:"createdAt"`
}

type AddStatus string

const (
	AddStatusInserted AddStatus = "inserted"
	AddStatusExists   AddStatus = "exists"
)

type AddResult struct {
	Status AddStatus
	Entry  Entry
}

type CheckResult struct {
	Found bool
	Entry *Entry
}

type BatchResult struct {
	InsertedCount   int      `json:"insertedCount"`
	InvalidInputs   []string `json:"invalid"`
	SkippedExisting int      `json:"skippedExisting"`
	FailedBatches   int      `json:"failedBatches"`
}

type LinkRequest struct {
	Link string `json:"link"`
}

type BulkRequest struct {
	Links LinkList `json:"links"`
}

type AddResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    Entry  `json:"data"`
}

type CheckResponse struct {
	Success bool   `json:"success"`
	Found   bool   `json:"found"`
	Data    *Entry `json:"data,omitempty"`
}

type BulkResponse struct {
	Success bool `json:"success"`
	BatchResult
}

type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    Entry  `json:"data"`
}

type HealthResponse struct {
	Status     string `json:"status"`
	Classifier string `json:"classifier"`
}
