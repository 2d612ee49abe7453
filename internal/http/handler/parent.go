package handler

import (
	"github.com/gofiber/fiber/v2"

	"outofschool/internal/dto"
	"outofschool/internal/service"
)

// CreateParent turns the calling user into a parent.
//
// @Summary  Create the parent profile of the calling user
// @Tags     parents
// @Accept   json
// @Produce  json
// @Param    X-User-ID header string true "acting user id"
// @Param    body body dto.ParentCreateDTO true "parent"
// @Success  201 {object} dto.ParentDTO
// @Failure  409 {object} errorPayload
// @Router   /api/v1/parents [post]
func CreateParent(svc service.ParentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := userID(c)
		if err != nil {
			return err
		}
		var in dto.ParentCreateDTO
		if err := bindJSON(c, &in); err != nil {
			return err
		}
		out, err := svc.Create(c.UserContext(), uid, &in)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

func GetParent(svc service.ParentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return err
		}
		out, err := svc.GetByID(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(out)
	}
}

func GetParentByUser(svc service.ParentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := svc.GetByUserID(c.UserContext(), c.Params("userId"))
		if err != nil {
			return err
		}
		return c.JSON(out)
	}
}

// UpdateParent updates personal data. The body id is the user id.
func UpdateParent(svc service.ParentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.ShortUserDTO
		if err := bindJSON(c, &in); err != nil {
			return err
		}
		out, err := svc.Update(c.UserContext(), &in)
		if err != nil {
			return err
		}
		return c.JSON(out)
	}
}

func DeleteParent(svc service.ParentService) fiber.Handler {
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

// BlockUnblockParent is an administrator action; the caller is the admin.
//
// @Summary  Block or unblock a parent
// @Tags     parents
// @Accept   json
// @Param    X-User-ID header string true "administrator user id"
// @Param    body body dto.BlockUnblockParentDTO true "request"
// @Success  204
// @Router   /api/v1/parents/block [put]
func BlockUnblockParent(svc service.ParentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin, err := userID(c)
		if err != nil {
			return err
		}
		var in dto.BlockUnblockParentDTO
		if err := bindJSON(c, &in); err != nil {
			return err
		}
		if err := svc.BlockUnblock(c.UserContext(), admin, &in); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
