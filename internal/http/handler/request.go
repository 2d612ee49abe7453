package handler

import (
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"outofschool/internal/dto"
)

// UserIDHeader carries the acting user's id, set by the authenticating gateway.
const UserIDHeader = "X-User-ID"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names instead of Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			name, _, _ = strings.Cut(f.Tag.Get("query"), ",")
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// validateStruct returns a 400 VALIDATION_FAILED error listing every failed rule.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return badRequest("VALIDATION_FAILED", err.Error())
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fe.Field()+": "+fe.Tag())
	}
	return &requestError{
		status:  fiber.StatusBadRequest,
		code:    "VALIDATION_FAILED",
		message: "request validation failed",
		details: details,
	}
}

// bindJSON decodes the body into v and validates it.
func bindJSON(c *fiber.Ctx, v any) error {
	if err := c.BodyParser(v); err != nil {
		return badRequest("INVALID_BODY", "invalid request body")
	}
	return validateStruct(v)
}

func uuidParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, badRequest("INVALID_ID", "invalid id format")
	}
	return id, nil
}

func int64Param(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, badRequest("INVALID_ID", "invalid id format")
	}
	return id, nil
}

// userID returns the acting user id or a 400 when the header is missing.
func userID(c *fiber.Ctx) (string, error) {
	id := strings.TrimSpace(c.Get(UserIDHeader))
	if id == "" {
		return "", badRequest("USER_ID_REQUIRED", UserIDHeader+" header is required")
	}
	return id, nil
}

// pageQuery parses limit and offset. Missing values are left zero and
// defaulted by the services.
func pageQuery(c *fiber.Ctx) (dto.PageQuery, error) {
	var pq dto.PageQuery
	if s := c.Query("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil {
			return pq, badRequest("INVALID_LIMIT", "invalid limit")
		}
		pq.Limit = limit
	}
	if s := c.Query("offset"); s != "" {
		offset, err := strconv.Atoi(s)
		if err != nil {
			return pq, badRequest("INVALID_OFFSET", "invalid offset")
		}
		pq.Offset = offset
	}
	return pq, validateStruct(pq)
}

func optionalUUIDQuery(c *fiber.Ctx, name string) (*uuid.UUID, error) {
	s := c.Query(name)
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, badRequest("INVALID_QUERY", "invalid "+name)
	}
	return &id, nil
}

func optionalTimeQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	s := c.Query(name)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, badRequest("INVALID_QUERY", "invalid "+name+", expected RFC 3339")
	}
	return &t, nil
}
