package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"storehub/internal/models"
	"storehub/internal/repositories"
	"storehub/internal/services"
	"storehub/internal/storage"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	images   storage.ImageStore
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, images storage.ImageStore) *ProductHandler {
	return &ProductHandler{
		service:  service,
		images:   images,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.UserContext())
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "", fiber.Map{"products": products})
}

// HandleGetProductByID retrieves a single product by its public ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID, err := paramID(c, "id", "product")
	if err != nil {
		return err
	}
	product, err := h.service.GetProductByID(c.UserContext(), productID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "", fiber.Map{"product": product})
}

// CreateProductRequest is the body of a new product, JSON or multipart.
type CreateProductRequest struct {
	Name        string `json:"name" form:"name" validate:"required"`
	Description string `json:"description" form:"description"`
}

// HandleCreateProduct creates a new product, with an optional multipart
// "image" file.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := bind(c, h.validate, &req); err != nil {
		return err
	}

	product := &models.Product{Name: req.Name, Description: req.Description}
	if isMultipart(c) {
		image, err := saveImage(c, h.images, "image")
		if err != nil {
			return err
		}
		product.Image = image
	}
	if err := h.service.CreateProduct(c.UserContext(), product); err != nil {
		return discardImage(h.images, product.Image, err)
	}
	return respond(c, fiber.StatusCreated, "", fiber.Map{"product": product})
}

// UpdateProductRequest holds the optional fields of a product update.
type UpdateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// HandleUpdateProduct updates an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	productID, err := paramID(c, "id", "product")
	if err != nil {
		return err
	}
	var req UpdateProductRequest
	if err := bind(c, h.validate, &req); err != nil {
		return err
	}
	product, err := h.service.UpdateProduct(c.UserContext(), productID, repositories.ProductChanges{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "", fiber.Map{"product": product})
}

// HandleDeleteProduct deletes a product and its inventory rows.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID, err := paramID(c, "id", "product")
	if err != nil {
		return err
	}
	product, err := h.service.DeleteProduct(c.UserContext(), productID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Product deleted successfully", fiber.Map{"product": product})
}
