package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"storehub/internal/services"
)

// InventoryHandler handles HTTP requests for store/product join rows.
type InventoryHandler struct {
	service  *services.InventoryService
	validate *validator.Validate
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(service *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the inventory routes with the Fiber app.
func (h *InventoryHandler) RegisterRoutes(router fiber.Router) {
	inventoryRoutes := router.Group("/inventories")
	inventoryRoutes.Get("/", h.HandleGetInventories)
	inventoryRoutes.Get("/store/:storeID/products", h.HandleGetStoreProducts)
	inventoryRoutes.Get("/product/:productID/stores", h.HandleGetProductStores)
	inventoryRoutes.Get("/:id", h.HandleGetInventoryByID)
	inventoryRoutes.Post("/", h.HandleCreateInventory)
	inventoryRoutes.Put("/:id", h.HandleUpdateInventory)
	inventoryRoutes.Delete("/:id", h.HandleDeleteInventory)
}

func (h *InventoryHandler) HandleGetInventories(c *fiber.Ctx) error {
	inventories, err := h.service.GetAllInventories(c.UserContext())
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "", fiber.Map{"inventories": inventories})
}

func (h *InventoryHandler) HandleGetInventoryByID(c *fiber.Ctx) error {
	inventory, err := h.service.GetInventoryByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "", fiber.Map{"inventory": inventory})
}

// CreateInventoryRequest pairs a store and a product by public ID.
type CreateInventoryRequest struct {
	StoreID   int64            `json:"storeID" validate:"required,gt=0"`
	ProductID int64            `json:"productID" validate:"required,gt=0"`
	Price     *decimal.Decimal `json:"price" validate:"required"`
}

func (h *InventoryHandler) HandleCreateInventory(c *fiber.Ctx) error {
	var req CreateInventoryRequest
	if err := bind(c, h.validate, &req); err != nil {
		return err
	}
	inventory, err := h.service.CreateInventory(c.UserContext(), req.StoreID, req.ProductID, *req.Price)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, "", fiber.Map{"inventory": inventory})
}

// UpdateInventoryRequest replaces the price of a join row.
type UpdateInventoryRequest struct {
	Price *decimal.Decimal `json:"price" validate:"required"`
}

func (h *InventoryHandler) HandleUpdateInventory(c *fiber.Ctx) error {
	var req UpdateInventoryRequest
	if err := bind(c, h.validate, &req); err != nil {
		return err
	}
	inventory, err := h.service.UpdateInventory(c.UserContext(), c.Params("id"), *req.Price)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "", fiber.Map{"inventory": inventory})
}

func (h *InventoryHandler) HandleDeleteInventory(c *fiber.Ctx) error {
	inventory, err := h.service.DeleteInventory(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Inventory entry deleted successfully", fiber.Map{"inventory": inventory})
}

// HandleGetStoreProducts lists the products of a store with their prices.
func (h *InventoryHandler) HandleGetStoreProducts(c *fiber.Ctx) error {
	storeID, err := paramID(c, "storeID", "store")
	if err != nil {
		return err
	}
	products, err := h.service.GetStoreProducts(c.UserContext(), storeID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "", fiber.Map{"products": products})
}

// HandleGetProductStores lists the stores carrying a product with their prices.
func (h *InventoryHandler) HandleGetProductStores(c *fiber.Ctx) error {
	productID, err := paramID(c, "productID", "product")
	if err != nil {
		return err
	}
	stores, err := h.service.GetProductStores(c.UserContext(), productID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "", fiber.Map{"stores": stores})
}
