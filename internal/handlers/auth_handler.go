package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"storehub/internal/models"
	"storehub/internal/services"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    newValidator(),
	}
}

// RegisterRoutes registers the authentication routes. Extra handlers, such as
// a rate limiter, run before every route of the group.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, extra ...fiber.Handler) {
	authRoutes := router.Group("/auth", extra...)
	authRoutes.Post("/signup", h.HandleSignup)
	authRoutes.Post("/login", h.HandleLogin)
}

// SignupRequest represents the request body for signup.
type SignupRequest struct {
	Name            string `json:"name" validate:"required,min=3,max=50"`
	Gender          string `json:"gender" validate:"omitempty,oneof=male female"`
	Email           string `json:"email" validate:"required,email"`
	Level           int    `json:"level" validate:"omitempty,min=1,max=4"`
	Password        string `json:"password" validate:"required,strongpassword"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// HandleSignup handles new user registration.
func (h *AuthHandler) HandleSignup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := bind(c, h.validate, &req); err != nil {
		return err
	}

	user, err := h.authService.Signup(c.UserContext(), services.SignupInput{
		Name:     req.Name,
		Gender:   models.Gender(req.Gender),
		Email:    req.Email,
		Level:    req.Level,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, "Signup successfully", fiber.Map{"user": user})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles user login and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := bind(c, h.validate, &req); err != nil {
		return err
	}

	token, err := h.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Login successful", token)
}
