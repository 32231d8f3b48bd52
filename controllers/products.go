package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"atelier/catalog"
)

// GET /products?brand=&category=
func GetProducts(svc *catalog.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		brand := c.Query("brand")
		category := c.Query("category")

		products, err := svc.FetchProducts(context.Background(), brand, category)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(products)
	}
}

// GET /products/:slug
func GetProductBySlug(svc *catalog.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := c.Params("slug")

		product, err := svc.FetchProductBySlug(context.Background(), slug)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if product == nil {
			return c.Status(404).JSON(fiber.Map{"error": "not found"})
		}
		return c.JSON(product)
	}
}
