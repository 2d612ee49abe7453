package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"outofschool/internal/dto"
	"outofschool/internal/localizer"
)

// LanguageLocalKey holds the dto.Language resolved for the request.
const LanguageLocalKey = "language"

// Language resolves the response language from the "lang" query parameter,
// then the first Accept-Language tag, then def. The result is stored in
// Locals and in the user context read by the services.
func Language(def dto.Language) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := def
		if q := c.Query("lang"); q != "" {
			lang = dto.ParseLanguage(q, def)
		} else if h := c.Get(fiber.HeaderAcceptLanguage); h != "" {
			lang = dto.ParseLanguage(primaryTag(h), def)
		}
		c.Locals(LanguageLocalKey, lang)
		c.SetUserContext(localizer.WithLanguage(c.UserContext(), lang))
		return c.Next()
	}
}

// GetLanguage returns the language stored by Language, or def.
func GetLanguage(c *fiber.Ctx, def dto.Language) dto.Language {
	if l, ok := c.Locals(LanguageLocalKey).(dto.Language); ok {
		return l
	}
	return def
}

// primaryTag turns "en-US,en;q=0.9" into "en". Ukrainian browsers send "uk".
func primaryTag(h string) string {
	tag, _, _ := strings.Cut(h, ",")
	tag, _, _ = strings.Cut(tag, ";")
	tag, _, _ = strings.Cut(strings.TrimSpace(tag), "-")
	if strings.EqualFold(tag, "uk") {
		return string(dto.LanguageUA)
	}
	return tag
}
