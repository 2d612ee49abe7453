package postgres

import (
	"database/sql"

	"github.com/google/uuid"

	"outofschool/internal/model"
	"outofschool/internal/repository"
)

// Table schemas. Column order must match the Fields order.

var userSchema = Schema[model.User]{
	Table: "users",
	Columns: []string{
		"id", "first_name", "middle_name", "last_name", "email", "phone_number",
		"role", "is_blocked", "is_registered", "created_at",
	},
	Fields: func(u *model.User) []any {
		return []any{
			&u.ID, &u.FirstName, &u.MiddleName, &u.LastName, &u.Email, &u.PhoneNumber,
			&u.Role, &u.IsBlocked, &u.IsRegistered, &u.CreatedAt,
		}
	},
	SoftDelete: true,
	OrderBy:    "created_at DESC, id",
}

var parentSchema = Schema[model.Parent]{
	Table:   "parents",
	Columns: []string{"id", "user_id", "gender", "date_of_birth"},
	Fields: func(p *model.Parent) []any {
		return []any{&p.ID, &p.UserID, &p.Gender, &p.DateOfBirth}
	},
	SoftDelete: true,
}

var providerSchema = Schema[model.Provider]{
	Table: "providers",
	Columns: []string{
		"id", "full_title", "short_title", "email", "phone_number", "website", "edrpou_ipn",
		"director", "founder", "type_id", "institution_status_id", "status", "is_blocked",
		"user_id", "legal_city", "legal_street", "legal_building_number",
	},
	Fields: func(p *model.Provider) []any {
		return []any{
			&p.ID, &p.FullTitle, &p.ShortTitle, &p.Email, &p.PhoneNumber, &p.Website, &p.EdrpouIpn,
			&p.Director, &p.Founder, &p.TypeID, &p.InstitutionStatusID, &p.Status, &p.IsBlocked,
			&p.UserID, &p.LegalAddress.City, &p.LegalAddress.Street, &p.LegalAddress.BuildingNumber,
		}
	},
	SoftDelete: true,
	OrderBy:    "full_title, id",
}

var workshopSchema = Schema[model.Workshop]{
	Table: "workshops",
	Columns: []string{
		"id", "title", "email", "phone", "min_age", "max_age", "price", "description",
		"provider_id", "provider_title", "category_id",
	},
	Fields: func(w *model.Workshop) []any {
		return []any{
			&w.ID, &w.Title, &w.Email, &w.Phone, &w.MinAge, &w.MaxAge, &w.Price, &w.Description,
			&w.ProviderID, &w.ProviderTitle, &w.CategoryID,
		}
	},
	SoftDelete: true,
	OrderBy:    "title, id",
}

var categorySchema = Schema[model.Category]{
	Table:   "categories",
	Columns: []string{"id", "title", "description"},
	Fields: func(c *model.Category) []any {
		return []any{&c.ID, &c.Title, &c.Description}
	},
	GeneratedKey: true,
}

var citySchema = Schema[model.City]{
	Table:   "cities",
	Columns: []string{"id", "name", "district", "region", "latitude", "longitude"},
	Fields: func(c *model.City) []any {
		return []any{&c.ID, &c.Name, &c.District, &c.Region, &c.Latitude, &c.Longitude}
	},
	GeneratedKey: true,
	OrderBy:      "name, id",
}

var institutionStatusSchema = Schema[model.InstitutionStatus]{
	Table:   "institution_statuses",
	Columns: []string{"id", "name", "name_en"},
	Fields: func(s *model.InstitutionStatus) []any {
		return []any{&s.ID, &s.Name, &s.NameEn}
	},
	GeneratedKey: true,
	SoftDelete:   true,
}

var providerTypeSchema = Schema[model.ProviderType]{
	Table:   "provider_types",
	Columns: []string{"id", "name"},
	Fields: func(t *model.ProviderType) []any {
		return []any{&t.ID, &t.Name}
	},
	GeneratedKey: true,
	SoftDelete:   true,
}

var backupOperationSchema = Schema[model.BackupOperation]{
	Table:   "backup_operations",
	Columns: []string{"id", "backup_date", "table_name", "rows_count", "storage_path"},
	Fields: func(b *model.BackupOperation) []any {
		return []any{&b.ID, &b.BackupDate, &b.TableName, &b.RowsCount, &b.StoragePath}
	},
	GeneratedKey: true,
	OrderBy:      "backup_date DESC, id DESC",
}

var operationWithObjectSchema = Schema[model.OperationWithObject]{
	Table: "operations_with_objects",
	Columns: []string{
		"id", "operation_type", "entity_type", "entity_id", "event_date_time", "row_separator", "comment",
	},
	Fields: func(o *model.OperationWithObject) []any {
		return []any{&o.ID, &o.OperationType, &o.EntityType, &o.EntityID, &o.EventDateTime, &o.RowSeparator, &o.Comment}
	},
	OrderBy: "event_date_time DESC, id",
}

var parentBlockedByAdminLogSchema = Schema[model.ParentBlockedByAdminLog]{
	Table:   "parent_blocked_by_admin_log",
	Columns: []string{"id", "parent_id", "user_id", "operation_date", "reason", "is_blocked"},
	Fields: func(l *model.ParentBlockedByAdminLog) []any {
		return []any{&l.ID, &l.ParentID, &l.UserID, &l.OperationDate, &l.Reason, &l.IsBlocked}
	},
	GeneratedKey: true,
	OrderBy:      "operation_date DESC, id DESC",
}

var changesLogSchema = Schema[model.ChangesLog]{
	Table: "changes_log",
	Columns: []string{
		"id", "entity_type", "entity_id", "property_name", "old_value", "new_value", "updated_date", "user_id",
	},
	Fields: func(c *model.ChangesLog) []any {
		return []any{&c.ID, &c.EntityType, &c.EntityID, &c.PropertyName, &c.OldValue, &c.NewValue, &c.UpdatedDate, &c.UserID}
	},
	GeneratedKey: true,
	OrderBy:      "updated_date DESC, id DESC",
}

func NewUserPostgres(db *sql.DB) repository.EntityRepository[string, model.User] {
	return NewEntityPostgres[string](db, userSchema)
}

func NewParentPostgres(db *sql.DB) repository.EntityRepository[uuid.UUID, model.Parent] {
	return NewEntityPostgres[uuid.UUID](db, parentSchema)
}

func NewProviderPostgres(db *sql.DB) repository.EntityRepository[uuid.UUID, model.Provider] {
	return NewEntityPostgres[uuid.UUID](db, providerSchema)
}

func NewWorkshopPostgres(db *sql.DB) repository.EntityRepository[uuid.UUID, model.Workshop] {
	return NewEntityPostgres[uuid.UUID](db, workshopSchema)
}

func NewCategoryPostgres(db *sql.DB) repository.EntityRepository[int64, model.Category] {
	return NewEntityPostgres[int64](db, categorySchema)
}

func NewCityPostgres(db *sql.DB) repository.EntityRepository[int64, model.City] {
	return NewEntityPostgres[int64](db, citySchema)
}

func NewInstitutionStatusPostgres(db *sql.DB) repository.EntityRepository[int64, model.InstitutionStatus] {
	return NewEntityPostgres[int64](db, institutionStatusSchema)
}

func NewProviderTypePostgres(db *sql.DB) repository.EntityRepository[int64, model.ProviderType] {
	return NewEntityPostgres[int64](db, providerTypeSchema)
}

func NewBackupOperationPostgres(db *sql.DB) repository.EntityRepository[int64, model.BackupOperation] {
	return NewEntityPostgres[int64](db, backupOperationSchema)
}

func NewOperationWithObjectPostgres(db *sql.DB) repository.EntityRepository[uuid.UUID, model.OperationWithObject] {
	return NewEntityPostgres[uuid.UUID](db, operationWithObjectSchema)
}

func NewParentBlockedByAdminLogPostgres(db *sql.DB) repository.EntityRepository[int64, model.ParentBlockedByAdminLog] {
	return NewEntityPostgres[int64](db, parentBlockedByAdminLogSchema)
}

func NewChangesLogPostgres(db *sql.DB) repository.EntityRepository[int64, model.ChangesLog] {
	return NewEntityPostgres[int64](db, changesLogSchema)
}
