package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"outofschool/internal/dto"
	"outofschool/internal/model"
	"outofschool/internal/service"
)

func BlockProviderParent(svc service.BlockedProviderParentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := userID(c)
		if err != nil {
			return err
		}
		var in dto.BlockedProviderParentBlockDTO
		if err := bindJSON(c, &in); err != nil {
			return err
		}
		out, err := svc.Block(c.UserContext(), &in, uid)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

func UnblockProviderParent(svc service.BlockedProviderParentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := userID(c)
		if err != nil {
			return err
		}
		var in dto.BlockedProviderParentUnblockDTO
		if err := bindJSON(c, &in); err != nil {
			return err
		}
		out, err := svc.Unblock(c.UserContext(), &in, uid)
		if err != nil {
			return err
		}
		return c.JSON(out)
	}
}

// GetProviderParentBlock expects parent_id and provider_id query values.
func GetProviderParentBlock(svc service.BlockedProviderParentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		parentID, err := optionalUUIDQuery(c, "parent_id")
		if err != nil {
			return err
		}
		providerID, err := optionalUUIDQuery(c, "provider_id")
		if err != nil {
			return err
		}
		if parentID == nil || providerID == nil {
			return badRequest("INVALID_QUERY", "parent_id and provider_id are required")
		}
		out, err := svc.GetBlock(c.UserContext(), *parentID, *providerID)
		if err != nil {
			return err
		}
		return c.JSON(out)
	}
}

// CreateOperation logs a background operation.
//
// @Summary  Log an operation with an object
// @Tags     operations
// @Accept   json
// @Produce  json
// @Param    body body dto.OperationWithObjectDTO true "operation"
// @Success  201 {object} dto.OperationWithObjectDTO
// @Router   /api/v1/operations [post]
func CreateOperation(svc service.OperationWithObjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.OperationWithObjectDTO
		if err := bindJSON(c, &in); err != nil {
			return err
		}
		out, err := svc.Create(c.UserContext(), &in)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

func ListOperations(svc service.OperationWithObjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := operationFilter(c)
		if err != nil {
			return err
		}
		items, err := svc.GetAll(c.UserContext(), f)
		if err != nil {
			return err
		}
		return c.JSON(items)
	}
}

func OperationExists(svc service.OperationWithObjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := operationFilter(c)
		if err != nil {
			return err
		}
		exists, err := svc.IsExists(c.UserContext(), f)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"exists": exists})
	}
}

func DeleteOperation(svc service.OperationWithObjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return err
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func operationFilter(c *fiber.Ctx) (dto.OperationWithObjectFilter, error) {
	f := dto.OperationWithObjectFilter{
		OperationType: model.OperationType(c.Query("operation_type")),
		RowSeparator:  c.Query("row_separator"),
	}
	var err error
	if f.EntityID, err = optionalUUIDQuery(c, "entity_id"); err != nil {
		return f, err
	}
	if f.EventDateTime, err = optionalTimeQuery(c, "event_date_time"); err != nil {
		return f, err
	}
	if et := c.Query("entity_type"); et != "" {
		t := model.EntityType(et)
		f.EntityType = &t
	}
	return f, validateStruct(f)
}

// ListChanges returns a page of the changes log of one entity type.
//
// @Summary  List logged property changes
// @Tags     changes-log
// @Produce  json
// @Param    entity_type   query string true  "entity type"
// @Param    entity_id     query string false "entity id"
// @Param    property_name query string false "property name"
// @Param    limit         query int    false "page size (1-100)"
// @Param    offset        query int    false "offset"
// @Success  200 {object} dto.ListResult[dto.ChangesLogDTO]
// @Router   /api/v1/changes-log [get]
func ListChanges(svc service.ChangesLogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pq, err := pageQuery(c)
		if err != nil {
			return err
		}
		f := dto.ChangesLogFilter{
			EntityType:   c.Query("entity_type"),
			EntityID:     c.Query("entity_id"),
			PropertyName: c.Query("property_name"),
			PageQuery:    pq,
		}
		if err := validateStruct(f); err != nil {
			return err
		}
		res, err := svc.GetChanges(c.UserContext(), f)
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}

func ListBackups(tracker service.BackupTrackerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := tracker.GetAll(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(items)
	}
}

func ListBackupTables(svc service.BackupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Tables())
	}
}

// CreateBackup snapshots one table to object storage.
//
// @Summary  Back up a table
// @Tags     backups
// @Accept   json
// @Produce  json
// @Param    body body dto.BackupRequest true "table"
// @Success  201 {object} dto.BackupOperationDTO
// @Failure  400 {object} errorPayload
// @Router   /api/v1/backups [post]
func CreateBackup(svc service.BackupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.BackupRequest
		if err := bindJSON(c, &in); err != nil {
			return err
		}
		out, err := svc.BackupTable(c.UserContext(), in.TableName)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// DownloadBackup streams the stored snapshot.
func DownloadBackup(svc service.BackupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := int64Param(c, "id")
		if err != nil {
			return err
		}
		rc, op, err := svc.Open(c.UserContext(), id)
		if err != nil {
			return err
		}
		c.Attachment(op.TableName + "-" + strconv.FormatInt(op.ID, 10) + ".jsonl")
		// Attachment guesses the type from the extension
		c.Set(fiber.HeaderContentType, service.BackupContentType)
		// fasthttp closes rc once the body is written
		return c.SendStream(rc)
	}
}

const (
	defaultURLExpiry = 15 * time.Minute
	maxURLExpiry     = 7 * 24 * time.Hour
)

// BackupURL returns a presigned download URL. expiry is a Go duration, 15m by default.
func BackupURL(svc service.BackupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := int64Param(c, "id")
		if err != nil {
			return err
		}
		expiry := defaultURLExpiry
		if s := c.Query("expiry"); s != "" {
			expiry, err = time.ParseDuration(s)
			if err != nil || expiry <= 0 || expiry > maxURLExpiry {
				return badRequest("INVALID_EXPIRY", "expiry must be a duration between 1s and 168h")
			}
		}
		url, err := svc.DownloadURL(c.UserContext(), id, expiry)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"url": url, "expires_in": int64(expiry.Seconds())})
	}
}
