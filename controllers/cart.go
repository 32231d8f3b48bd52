package controllers

import (
	"github.com/gofiber/fiber/v2"

	"atelier/cart"
	"atelier/models"
)

const sessionCookie = "cart_session"

func cartForRequest(c *fiber.Ctx, carts *cart.Manager) *cart.Cart {
	sid := c.Cookies(sessionCookie)
	if sid == "" {
		sid = carts.NewSession()
		c.Cookie(&fiber.Cookie{
			Name:     sessionCookie,
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
		})
	}
	return carts.Get(sid)
}

// GET /cart
func GetCart(carts *cart.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(cartForRequest(c, carts).Snapshot())
	}
}

// POST /cart/items
func AddCartItem(carts *cart.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input struct {
			ProductID string            `json:"product_id"`
			Name      string            `json:"name"`
			Price     float64           `json:"price"`
			Image     string            `json:"image"`
			Category  string            `json:"category"`
			Quantity  int               `json:"quantity"`
			Sizing    models.Sizing     `json:"sizing"`
			Fabric    *models.FabricRef `json:"fabric"`
		}
		if err := c.BodyParser(&input); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Cannot parse JSON"})
		}
		if input.ProductID == "" || input.Name == "" {
			return c.Status(400).JSON(fiber.Map{"error": "product_id and name are required"})
		}
		if input.Quantity < 1 {
			return c.Status(400).JSON(fiber.Map{"error": "quantity must be at least 1"})
		}
		if input.Sizing.Type != models.SizingStandard && input.Sizing.Type != models.SizingCustom {
			return c.Status(400).JSON(fiber.Map{"error": "sizing type must be standard or custom"})
		}

		ct := cartForRequest(c, carts)
		ct.AddItem(models.CartItem{
			ID:       cart.ConfigID(input.ProductID, input.Sizing, input.Fabric),
			Name:     input.Name,
			Price:    input.Price,
			Image:    input.Image,
			Category: input.Category,
			Quantity: input.Quantity,
			Sizing:   input.Sizing,
			Fabric:   input.Fabric,
		})
		return c.JSON(ct.Snapshot())
	}
}

// PUT /cart/items/:id
func UpdateCartItem(carts *cart.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input struct {
			Quantity int `json:"quantity"`
		}
		if err := c.BodyParser(&input); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Cannot parse JSON"})
		}

		ct := cartForRequest(c, carts)
		ct.UpdateQuantity(c.Params("id"), input.Quantity)
		return c.JSON(ct.Snapshot())
	}
}

// DELETE /cart/items/:id
func RemoveCartItem(carts *cart.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ct := cartForRequest(c, carts)
		ct.RemoveItem(c.Params("id"))
		return c.JSON(ct.Snapshot())
	}
}

// DELETE /cart
func ClearCart(carts *cart.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ct := cartForRequest(c, carts)
		ct.Clear()
		return c.JSON(ct.Snapshot())
	}
}

// PUT /cart/open
func SetCartOpen(carts *cart.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input struct {
			Open bool `json:"open"`
		}
		if err := c.BodyParser(&input); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Cannot parse JSON"})
		}

		ct := cartForRequest(c, carts)
		ct.SetOpen(input.Open)
		return c.JSON(ct.Snapshot())
	}
}
