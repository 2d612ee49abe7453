package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"outofschool/internal/dto"
	"outofschool/internal/http/middleware"
	"outofschool/internal/service"
)

// dictionaryService is the CRUD surface shared by the reference dictionaries.
type dictionaryService[D any] interface {
	Create(ctx context.Context, d *D) (*D, error)
	GetAll(ctx context.Context) ([]D, error)
	GetByID(ctx context.Context, id int64) (*D, error)
	Update(ctx context.Context, d *D) (*D, error)
	Delete(ctx context.Context, id int64) error
}

// dictionaryHandler serves one dictionary. setID copies the path id into the body on update.
type dictionaryHandler[D any] struct {
	svc   dictionaryService[D]
	setID func(d *D, id int64)
}

func newDictionaryHandler[D any](svc dictionaryService[D], setID func(d *D, id int64)) *dictionaryHandler[D] {
	return &dictionaryHandler[D]{svc: svc, setID: setID}
}

func (h *dictionaryHandler[D]) register(r fiber.Router) {
	r.Get("/", h.List())
	r.Post("/", h.Create())
	r.Get("/:id", h.Get())
	r.Put("/:id", h.Update())
	r.Delete("/:id", h.Delete())
}

func (h *dictionaryHandler[D]) List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := h.svc.GetAll(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(items)
	}
}

func (h *dictionaryHandler[D]) Get() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := int64Param(c, "id")
		if err != nil {
			return err
		}
		item, err := h.svc.GetByID(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(item)
	}
}

func (h *dictionaryHandler[D]) Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in D
		if err := bindJSON(c, &in); err != nil {
			return err
		}
		out, err := h.svc.Create(c.UserContext(), &in)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

func (h *dictionaryHandler[D]) Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := int64Param(c, "id")
		if err != nil {
			return err
		}
		var in D
		if err := bindJSON(c, &in); err != nil {
			return err
		}
		h.setID(&in, id)
		out, err := h.svc.Update(c.UserContext(), &in)
		if err != nil {
			return err
		}
		return c.JSON(out)
	}
}

func (h *dictionaryHandler[D]) Delete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := int64Param(c, "id")
		if err != nil {
			return err
		}
		if err := h.svc.Delete(c.UserContext(), id); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// SearchCities lists cities whose name starts with the "name" query value.
//
// @Summary  Search cities by name prefix
// @Tags     cities
// @Produce  json
// @Param    name query string true "name prefix"
// @Success  200 {array} dto.CityDTO
// @Router   /api/v1/cities/search [get]
func SearchCities(svc service.CityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Query("name")
		if name == "" {
			return badRequest("INVALID_QUERY", "name is required")
		}
		items, err := svc.GetByName(c.UserContext(), name)
		if err != nil {
			return err
		}
		return c.JSON(items)
	}
}

// Institution statuses are served in the language resolved by middleware.Language.

func ListInstitutionStatuses(svc service.InstitutionStatusService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.GetAll(c.UserContext(), middleware.GetLanguage(c, dto.LanguageUA))
		if err != nil {
			return err
		}
		return c.JSON(items)
	}
}

func GetInstitutionStatus(svc service.InstitutionStatusService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := int64Param(c, "id")
		if err != nil {
			return err
		}
		item, err := svc.GetByID(c.UserContext(), id, middleware.GetLanguage(c, dto.LanguageUA))
		if err != nil {
			return err
		}
		return c.JSON(item)
	}
}

func CreateInstitutionStatus(svc service.InstitutionStatusService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.InstitutionStatusDTO
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

func UpdateInstitutionStatus(svc service.InstitutionStatusService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := int64Param(c, "id")
		if err != nil {
			return err
		}
		var in dto.InstitutionStatusDTO
		if err := bindJSON(c, &in); err != nil {
			return err
		}
		in.ID = id
		out, err := svc.Update(c.UserContext(), &in, middleware.GetLanguage(c, dto.LanguageUA))
		if err != nil {
			return err
		}
		return c.JSON(out)
	}
}

func DeleteInstitutionStatus(svc service.InstitutionStatusService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := int64Param(c, "id")
		if err != nil {
			return err
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
