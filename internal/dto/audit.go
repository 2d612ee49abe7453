package dto

import (
	"time"

	"github.com/google/uuid"

	"outofschool/internal/model"
)

type BackupOperationDTO struct {
	ID          int64     `json:"id"`
	BackupDate  time.Time `json:"backup_date"`
	TableName   string    `json:"table_name" validate:"required"`
	RowsCount   int64     `json:"rows_count"`
	StoragePath string    `json:"storage_path"`
}

// BackupRequest asks for a snapshot of one table.
type BackupRequest struct {
	TableName string `json:"table_name" validate:"required"`
}

type OperationWithObjectDTO struct {
	ID            uuid.UUID           `json:"id"`
	OperationType model.OperationType `json:"operation_type" validate:"required,oneof=RecalculateAverageRating SendEmail TableBackup"`
	EntityType    *model.EntityType   `json:"entity_type" validate:"omitempty,oneof=Provider Workshop Parent"`
	EntityID      *uuid.UUID          `json:"entity_id"`
	EventDateTime *time.Time          `json:"event_date_time"`
	RowSeparator  string              `json:"row_separator"`
	Comment       string              `json:"comment" validate:"max=500"`
}

// OperationWithObjectFilter selects operations. Nil fields match anything.
type OperationWithObjectFilter struct {
	OperationType model.OperationType `query:"operation_type" validate:"required"`
	EntityID      *uuid.UUID          `query:"entity_id"`
	EntityType    *model.EntityType   `query:"entity_type"`
	EventDateTime *time.Time          `query:"event_date_time"`
	// RowSeparator is ignored when empty.
	RowSeparator string `query:"row_separator"`
}

type ChangesLogDTO struct {
	ID           int64     `json:"id"`
	EntityType   string    `json:"entity_type"`
	EntityID     string    `json:"entity_id"`
	PropertyName string    `json:"property_name"`
	OldValue     string    `json:"old_value"`
	NewValue     string    `json:"new_value"`
	UpdatedDate  time.Time `json:"updated_date"`
	UserID       string    `json:"user_id"`
}

type ChangesLogFilter struct {
	EntityType   string `query:"entity_type" validate:"required"`
	EntityID     string `query:"entity_id"`
	PropertyName string `query:"property_name"`
	PageQuery
}

// BlockedProviderParentBlockDTO blocks a parent from a provider's workshops.
type BlockedProviderParentBlockDTO struct {
	ParentID   uuid.UUID `json:"parent_id" validate:"required"`
	ProviderID uuid.UUID `json:"provider_id" validate:"required"`
	Reason     string    `json:"reason" validate:"required,max=500"`
}

// BlockedProviderParentUnblockDTO lifts a previously created block.
type BlockedProviderParentUnblockDTO struct {
	ParentID   uuid.UUID `json:"parent_id" validate:"required"`
	ProviderID uuid.UUID `json:"provider_id" validate:"required"`
}

type BlockedProviderParentDTO struct {
	ID            uuid.UUID  `json:"id"`
	ParentID      uuid.UUID  `json:"parent_id"`
	ProviderID    uuid.UUID  `json:"provider_id"`
	Reason        string     `json:"reason"`
	UserIDBlock   string     `json:"user_id_block"`
	UserIDUnblock string     `json:"user_id_unblock"`
	DateTimeFrom  time.Time  `json:"date_time_from"`
	DateTimeTo    *time.Time `json:"date_time_to"`
}
