package handler

import (
	"github.com/gofiber/fiber/v2"

	"outofschool/internal/dto"
	"outofschool/internal/service"
)

func CreateWorkshop(svc service.WorkshopService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.WorkshopDTO
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

func ListWorkshops(svc service.WorkshopService) fiber.Handler {
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

// ListProviderWorkshops pages through the workshops of the provider in the path.
//
// @Summary  List workshops of a provider
// @Tags     workshops
// @Produce  json
// @Param    id     path  string true  "provider id"
// @Param    limit  query int    false "page size (1-100)"
// @Param    offset query int    false "offset"
// @Success  200 {object} dto.ListResult[dto.WorkshopDTO]
// @Router   /api/v1/providers/{id}/workshops [get]
func ListProviderWorkshops(svc service.WorkshopService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return err
		}
		pq, err := pageQuery(c)
		if err != nil {
			return err
		}
		res, err := svc.GetByProviderID(c.UserContext(), id, pq)
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}

func GetWorkshop(svc service.WorkshopService) fiber.Handler {
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

func UpdateWorkshop(svc service.WorkshopService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return err
		}
		var in dto.WorkshopDTO
		if err := bindJSON(c, &in); err != nil {
			return err
		}
		in.ID = id
		out, err := svc.Update(c.UserContext(), &in)
		if err != nil {
			return err
		}
		return c.JSON(out)
	}
}

func DeleteWorkshop(svc service.WorkshopService) fiber.Handler {
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
