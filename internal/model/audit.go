package model

import (
	"time"

	"github.com/google/uuid"
)

// Append-only records. Rows are never updated once written.

// BackupOperation tracks one table snapshot written to object storage.
type BackupOperation struct {
	ID          int64     `json:"id"`
	BackupDate  time.Time `json:"backup_date"`
	TableName   string    `json:"table_name"`
	RowsCount   int64     `json:"rows_count"`
	StoragePath string    `json:"storage_path"`
}

// OperationType names a background operation performed on an object.
type OperationType string

const (
	OperationTypeRecalculateAverageRating OperationType = "RecalculateAverageRating"
	OperationTypeSendEmail                OperationType = "SendEmail"
	OperationTypeTableBackup              OperationType = "TableBackup"
)

// EntityType names the kind of object an operation or change refers to.
type EntityType string

const (
	EntityTypeProvider EntityType = "Provider"
	EntityTypeWorkshop EntityType = "Workshop"
	EntityTypeParent   EntityType = "Parent"
)

type OperationWithObject struct {
	ID            uuid.UUID     `json:"id"`
	OperationType OperationType `json:"operation_type"`
	EntityType    *EntityType   `json:"entity_type"`
	EntityID      *uuid.UUID    `json:"entity_id"`
	EventDateTime time.Time     `json:"event_date_time"`
	RowSeparator  string        `json:"row_separator"`
	Comment       string        `json:"comment"`
}

type ParentBlockedByAdminLog struct {
	ID            int64     `json:"id"`
	ParentID      uuid.UUID `json:"parent_id"`
	UserID        string    `json:"user_id"`
	OperationDate time.Time `json:"operation_date"`
	Reason        string    `json:"reason"`
	IsBlocked     bool      `json:"is_blocked"`
}

// ChangesLog is one changed property of a tracked entity.
type ChangesLog struct {
	ID           int64     `json:"id"`
	EntityType   string    `json:"entity_type"`
	EntityID     string    `json:"entity_id"`
	PropertyName string    `json:"property_name"`
	OldValue     string    `json:"old_value"`
	NewValue     string    `json:"new_value"`
	UpdatedDate  time.Time `json:"updated_date"`
	UserID       string    `json:"user_id"`
}
