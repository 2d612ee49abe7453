package handler

import (
	"github.com/gofiber/fiber/v2"

	"outofschool/internal/dto"
	"outofschool/internal/service"
)

// CreateProvider registers a provider. Contact collisions are reported
// together as api_errors with status 400.
//
// @Summary  Create a provider
// @Tags     providers
// @Accept   json
// @Produce  json
// @Param    body body dto.ProviderDTO true "provider"
// @Success  201 {object} dto.ProviderDTO
// @Failure  400 {object} apiErrorsPayload
// @Router   /api/v1/providers [post]
func CreateProvider(svc service.ProviderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.ProviderDTO
		if err := bindJSON(c, &in); err != nil {
			return err
		}
		out, apiErrs, err := svc.Create(c.UserContext(), &in)
		if err != nil {
			return err
		}
		if apiErrs.HasErrors() {
			return writeAPIErrors(c, apiErrs)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// ListProviders returns a page of providers.
//
// @Summary  List providers
// @Tags     providers
// @Produce  json
// @Param    limit  query int false "page size (1-100)"
// @Param    offset query int false "offset"
// @Success  200 {object} dto.ListResult[dto.ProviderDTO]
// @Router   /api/v1/providers [get]
func ListProviders(svc service.ProviderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pq, err := pageQuery(c)
		if err != nil {
			return err
		}
		res, err := svc.GetAll(c.UserContext(), pq)
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}

func GetProvider(svc service.ProviderService) fiber.Handler {
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

// UpdateProvider records tracked property changes under the acting user.
func UpdateProvider(svc service.ProviderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return err
		}
		uid, err := userID(c)
		if err != nil {
			return err
		}
		var in dto.ProviderDTO
		if err := bindJSON(c, &in); err != nil {
			return err
		}
		in.ID = id
		out, err := svc.Update(c.UserContext(), &in, uid)
		if err != nil {
			return err
		}
		return c.JSON(out)
	}
}

func DeleteProvider(svc service.ProviderService) fiber.Handler {
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
