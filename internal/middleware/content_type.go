package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/jam-build-entities/internal/types"
)

// MergePatchJSON is the media type of RFC 7396 merge patches
const MergePatchJSON = "application/merge-patch+json"

// RequireContentType rejects requests whose media type is not one of accepted
func RequireContentType(accepted ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		contentType := c.Get(fiber.HeaderContentType)
		mediaType := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))

		for _, a := range accepted {
			if mediaType == a {
				return c.Next()
			}
		}
		return types.UnsupportedMediaType(contentType)
	}
}
