package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionFilters contains filtering options for transaction queries.
// Nil bounds leave that side of the created_at range open
type TransactionFilters struct {
	UserID     uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Type       TransactionType
	CategoryID *uuid.UUID
	Offset     int
	Limit      int
}
