package routes

import (
	"atelier/cart"
	"atelier/catalog"
	"atelier/controllers"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, svc *catalog.Service, carts *cart.Manager) {

	// catalog
	app.Get("/products", controllers.GetProducts(svc))
	app.Get("/products/:slug", controllers.GetProductBySlug(svc))

	// fabrics
	app.Get("/fabrics", controllers.GetFabrics(svc))
	app.Get("/product-fabrics/:product_id", controllers.GetProductFabrics(svc))

	// site images
	app.Get("/site-images", controllers.GetSiteImages(svc))
	app.Get("/site-images/:key", controllers.GetSiteImage(svc))
	app.Get("/site-images/:key/resolve", controllers.ResolveSiteImage(svc))
	app.Put("/site-images/:key", controllers.UpdateSiteImage(svc))

	// cart
	app.Get("/cart", controllers.GetCart(carts))
	app.Post("/cart/items", controllers.AddCartItem(carts))
	app.Put("/cart/items/:id", controllers.UpdateCartItem(carts))
	app.Delete("/cart/items/:id", controllers.RemoveCartItem(carts))
	app.Delete("/cart", controllers.ClearCart(carts))
	app.Put("/cart/open", controllers.SetCartOpen(carts))
}
