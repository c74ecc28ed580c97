package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"storehub/internal/errs"
	"storehub/internal/middleware"
	"storehub/internal/models"
	"storehub/internal/services"
	"storehub/internal/storage"
)

// UserHandler serves the authenticated user's profile and favorites.
type UserHandler struct {
	service  *services.UserService
	images   storage.ImageStore
	validate *validator.Validate
}

func NewUserHandler(service *services.UserService, images storage.ImageStore) *UserHandler {
	return &UserHandler{
		service:  service,
		images:   images,
		validate: newValidator(),
	}
}

// RegisterRoutes mounts /user. Every route except next-userid goes through
// auth.
func (h *UserHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	userRoutes := router.Group("/user")
	userRoutes.Get("/next-userid", h.HandleNextUserID)
	userRoutes.Get("/profile", auth, h.HandleProfile)
	userRoutes.Put("/update/:id", auth, h.HandleUpdate)
	userRoutes.Post("/upload-image", auth, h.HandleUploadImage)
	userRoutes.Get("/profile-image", auth, h.HandleProfileImage)
	userRoutes.Get("/favorite-stores", auth, h.HandleFavoriteStores)
	userRoutes.Post("/favorite-stores/:storeId", auth, h.HandleAddFavoriteStore)
	userRoutes.Delete("/favorite-stores/:storeId", auth, h.HandleRemoveFavoriteStore)
}

func (h *UserHandler) HandleNextUserID(c *fiber.Ctx) error {
	next, err := h.service.NextUserID(c.UserContext())
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "", fiber.Map{"nextUserID": next})
}

func (h *UserHandler) HandleProfile(c *fiber.Ctx) error {
	user, err := h.service.GetProfile(c.UserContext(), middleware.CurrentUser(c).ID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "", fiber.Map{"user": user})
}

// UpdateUserRequest holds the optional fields of a profile update.
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=3,max=50"`
	Gender   *string `json:"gender" validate:"omitempty,oneof=male female"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Level    *int    `json:"level" validate:"omitempty,min=1,max=4"`
	Password *string `json:"password" validate:"omitempty,strongpassword"`
}

// HandleUpdate updates the caller's account. The path carries the public
// user ID.
func (h *UserHandler) HandleUpdate(c *fiber.Ctx) error {
	userID, err := paramID(c, "id", "user")
	if err != nil {
		return err
	}
	var req UpdateUserRequest
	if err := bind(c, h.validate, &req); err != nil {
		return err
	}

	in := services.UserUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Level:    req.Level,
		Password: req.Password,
	}
	if req.Gender != nil {
		g := models.Gender(*req.Gender)
		in.Gender = &g
	}
	user, err := h.service.UpdateUser(c.UserContext(), middleware.CurrentUser(c), userID, in)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "", fiber.Map{"user": user})
}

// HandleUploadImage stores the multipart "image" file as the profile image.
func (h *UserHandler) HandleUploadImage(c *fiber.Ctx) error {
	path, err := saveImage(c, h.images, "image")
	if err != nil {
		return err
	}
	if path == nil {
		return errs.Validation("No image uploaded")
	}
	user, err := h.service.SetProfileImage(c.UserContext(), middleware.CurrentUser(c).ID, *path)
	if err != nil {
		return discardImage(h.images, path, err)
	}
	return respond(c, fiber.StatusOK, "", fiber.Map{"imageUrl": *path, "user": user})
}

func (h *UserHandler) HandleProfileImage(c *fiber.Ctx) error {
	path, err := h.service.ProfileImage(c.UserContext(), middleware.CurrentUser(c).ID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "", fiber.Map{"imageUrl": path})
}

func (h *UserHandler) HandleFavoriteStores(c *fiber.Ctx) error {
	stores, err := h.service.FavoriteStores(c.UserContext(), middleware.CurrentUser(c).ID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "", fiber.Map{"favoriteStores": stores})
}

func (h *UserHandler) HandleAddFavoriteStore(c *fiber.Ctx) error {
	storeID, err := paramID(c, "storeId", "store")
	if err != nil {
		return err
	}
	stores, err := h.service.AddFavoriteStore(c.UserContext(), middleware.CurrentUser(c).ID, storeID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "", fiber.Map{"favoriteStores": stores})
}

func (h *UserHandler) HandleRemoveFavoriteStore(c *fiber.Ctx) error {
	storeID, err := paramID(c, "storeId", "store")
	if err != nil {
		return err
	}
	stores, err := h.service.RemoveFavoriteStore(c.UserContext(), middleware.CurrentUser(c).ID, storeID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "", fiber.Map{"favoriteStores": stores})
}
