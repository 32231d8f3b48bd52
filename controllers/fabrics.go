package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"atelier/catalog"
)

// GET /fabrics?brand=
func GetFabrics(svc *catalog.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		brand := c.Query("brand")

		fabrics, err := svc.FetchAllFabrics(context.Background(), brand)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fabrics)
	}
}

// GET /product-fabrics/:product_id
func GetProductFabrics(svc *catalog.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		productID := c.Params("product_id")

		fabrics, err := svc.FetchProductFabrics(context.Background(), productID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fabrics)
	}
}
