package handlers

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"storehub/internal/errs"
	"storehub/internal/models"
	"storehub/internal/repositories"
	"storehub/internal/services"
	"storehub/internal/storage"
)

const invalidLocation = `Invalid location format. Use { "type": "Point", "coordinates": [long, lat] }`

// StoreHandler handles HTTP requests for stores.
type StoreHandler struct {
	service  *services.StoreService
	images   storage.ImageStore
	validate *validator.Validate
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(service *services.StoreService, images storage.ImageStore) *StoreHandler {
	return &StoreHandler{
		service:  service,
		images:   images,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the store routes with the Fiber app.
func (h *StoreHandler) RegisterRoutes(router fiber.Router) {
	storeRoutes := router.Group("/stores")
	storeRoutes.Get("/", h.HandleGetStores)
	storeRoutes.Get("/:id", h.HandleGetStoreByID)
	storeRoutes.Post("/", h.HandleCreateStore)
	storeRoutes.Put("/:id", h.HandleUpdateStore)
	storeRoutes.Delete("/:id", h.HandleDeleteStore)
}

func (h *StoreHandler) HandleGetStores(c *fiber.Ctx) error {
	stores, err := h.service.GetAllStores(c.UserContext())
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "", fiber.Map{"stores": stores})
}

func (h *StoreHandler) HandleGetStoreByID(c *fiber.Ctx) error {
	storeID, err := paramID(c, "id", "store")
	if err != nil {
		return err
	}
	store, err := h.service.GetStoreByID(c.UserContext(), storeID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "", fiber.Map{"store": store})
}

// CreateStoreRequest is the JSON form of a new store. Multipart requests send
// the same fields as form values with location as a JSON string.
type CreateStoreRequest struct {
	Name     string          `json:"name" validate:"required"`
	Address  string          `json:"address" validate:"required"`
	Location json.RawMessage `json:"location"`
}

// HandleCreateStore accepts JSON or multipart with an optional "storeImage"
// file.
func (h *StoreHandler) HandleCreateStore(c *fiber.Ctx) error {
	var (
		req   CreateStoreRequest
		image *string
		err   error
	)
	if isMultipart(c) {
		req = CreateStoreRequest{
			Name:     c.FormValue("name"),
			Address:  c.FormValue("address"),
			Location: json.RawMessage(c.FormValue("location")),
		}
		if err := check(h.validate, &req); err != nil {
			return err
		}
	} else if err := bind(c, h.validate, &req); err != nil {
		return err
	}

	location, err := parseLocation(req.Location)
	if err != nil {
		return err
	}
	if isMultipart(c) {
		if image, err = saveImage(c, h.images, "storeImage"); err != nil {
			return err
		}
	}

	store := &models.Store{
		Name:       req.Name,
		Address:    req.Address,
		Location:   *location,
		StoreImage: image,
	}
	if err := h.service.CreateStore(c.UserContext(), store); err != nil {
		return discardImage(h.images, image, err)
	}
	return respond(c, fiber.StatusCreated, "", fiber.Map{"store": store})
}

// UpdateStoreRequest holds the optional fields of a store update.
type UpdateStoreRequest struct {
	Name       *string         `json:"name"`
	Address    *string         `json:"address"`
	Location   json.RawMessage `json:"location"`
	StoreImage *string         `json:"storeImage"`
}

func (h *StoreHandler) HandleUpdateStore(c *fiber.Ctx) error {
	storeID, err := paramID(c, "id", "store")
	if err != nil {
		return err
	}
	var req UpdateStoreRequest
	if err := bind(c, h.validate, &req); err != nil {
		return err
	}

	changes := repositories.StoreChanges{
		Name:       req.Name,
		Address:    req.Address,
		StoreImage: req.StoreImage,
	}
	if len(req.Location) > 0 && string(req.Location) != "null" {
		if changes.Location, err = parseLocation(req.Location); err != nil {
			return err
		}
	}
	store, err := h.service.UpdateStore(c.UserContext(), storeID, changes)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "", fiber.Map{"store": store})
}

func (h *StoreHandler) HandleDeleteStore(c *fiber.Ctx) error {
	storeID, err := paramID(c, "id", "store")
	if err != nil {
		return err
	}
	store, err := h.service.DeleteStore(c.UserContext(), storeID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Store deleted successfully", fiber.Map{"store": store})
}

func parseLocation(raw json.RawMessage) (*models.GeoPoint, error) {
	if len(raw) == 0 {
		return nil, errs.Validation(invalidLocation)
	}
	var p models.GeoPoint
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, errs.Wrap(errs.KindValidation, invalidLocation, err)
	}
	return &p, nil
}
