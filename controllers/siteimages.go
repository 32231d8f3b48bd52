package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"atelier/catalog"
)

// GET /site-images
func GetSiteImages(svc *catalog.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		images, err := svc.FetchSiteImages(context.Background())
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(images)
	}
}

// GET /site-images/:key
func GetSiteImage(svc *catalog.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Params("key")

		image, err := svc.FetchSiteImageByKey(context.Background(), key)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if image == nil {
			return c.Status(404).JSON(fiber.Map{"error": "not found"})
		}
		return c.JSON(image)
	}
}

// GET /site-images/:key/resolve?fallback=
func ResolveSiteImage(svc *catalog.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Params("key")
		fallback := c.Query("fallback")

		url := svc.ResolveImageWithFallback(context.Background(), key, fallback)
		return c.JSON(fiber.Map{"key": key, "image_url": url})
	}
}

// PUT /site-images/:key
func UpdateSiteImage(svc *catalog.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Params("key")

		var input struct {
			ImageURL string  `json:"image_url"`
			AltText  *string `json:"alt_text"`
		}
		if err := c.BodyParser(&input); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Cannot parse JSON"})
		}
		if input.ImageURL == "" {
			return c.Status(400).JSON(fiber.Map{"error": "image_url is required"})
		}

		if err := svc.UpdateSiteImage(context.Background(), key, input.ImageURL, input.AltText); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"message": "Site image updated", "key": key})
	}
}
