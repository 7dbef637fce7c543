package handlers

import (
	"github.com/gofiber/fiber/v2"

	"stockroom/internal/domain"
	"stockroom/internal/log"
	"stockroom/internal/repos"
	"stockroom/internal/validate"
)

type ProductHandler struct {
	Products *repos.ProductRepo
}

// Pointer fields distinguish a missing price/quantity from a legitimate
// zero value.
type productReq struct {
	Name     string        `json:"name"`
	Price    *domain.Money `json:"price"`
	Quantity *int          `json:"quantity"`
}

// check returns the 400 message for a bad body, or "" when valid.
func (r *productReq) check() string {
	if _, ok := validate.Name(r.Name); !ok || r.Price == nil || r.Quantity == nil {
		return "Name, price, and quantity are required"
	}
	if *r.Price < 0 || *r.Quantity < 0 {
		return "Price and quantity must be non-negative"
	}
	return ""
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	items, err := h.Products.List()
	if err != nil {
		log.Error(c, "products.list", err, nil)
		return errJSON(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(items)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ProductID(c.Params("id"))
	if !ok {
		return errJSON(c, fiber.StatusNotFound, "Product not found")
	}
	p, err := h.Products.Get(id)
	if err != nil {
		log.Error(c, "products.get", err, nil)
		return errJSON(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if p == nil {
		return errJSON(c, fiber.StatusNotFound, "Product not found")
	}
	return c.JSON(p)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req productReq
	if err := c.BodyParser(&req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Name, price, and quantity are required")
	}
	if msg := req.check(); msg != "" {
		return errJSON(c, fiber.StatusBadRequest, msg)
	}

	id, err := h.Products.Create(req.Name, *req.Price, *req.Quantity)
	if err != nil {
		log.Error(c, "products.create", err, nil)
		return errJSON(c, fiber.StatusInternalServerError, "Internal server error")
	}

	log.Audit(c, "products.create", map[string]any{"product_id": id})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Product created successfully",
		"productId": id,
	})
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ProductID(c.Params("id"))
	if !ok {
		return errJSON(c, fiber.StatusNotFound, "Product not found")
	}
	var req productReq
	if err := c.BodyParser(&req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Name, price, and quantity are required")
	}
	if msg := req.check(); msg != "" {
		return errJSON(c, fiber.StatusBadRequest, msg)
	}

	found, err := h.Products.Update(id, req.Name, *req.Price, *req.Quantity)
	if err != nil {
		log.Error(c, "products.update", err, nil)
		return errJSON(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if !found {
		return errJSON(c, fiber.StatusNotFound, "Product not found")
	}

	log.Audit(c, "products.update", map[string]any{"product_id": id})
	return c.JSON(fiber.Map{"message": "Product updated successfully"})
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ProductID(c.Params("id"))
	if !ok {
		return errJSON(c, fiber.StatusNotFound, "Product not found")
	}

	found, err := h.Products.Delete(id)
	if err != nil {
		log.Error(c, "products.delete", err, nil)
		return errJSON(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if !found {
		return errJSON(c, fiber.StatusNotFound, "Product not found")
	}

	log.Audit(c, "products.delete", map[string]any{"product_id": id})
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
