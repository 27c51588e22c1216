package http

import (
	"errors"

	"ot-inventory/internal/auth/usecase"
	"ot-inventory/internal/shared/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthHTTPHandler handles HTTP requests for authentication
type AuthHTTPHandler struct {
	usecase usecase.AuthUsecaseInterface
}

// NewAuthHTTPHandler creates a new authentication HTTP handler
func NewAuthHTTPHandler(uc usecase.AuthUsecaseInterface) *AuthHTTPHandler {
	return &AuthHTTPHandler{usecase: uc}
}

// LoginResponse is the body returned by a successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// SetupAuthRoutesWithMiddleware sets up authentication routes with middleware
func (h *AuthHTTPHandler) SetupAuthRoutesWithMiddleware(router fiber.Router, middleware *AuthMiddleware) {
	// Public routes (no authentication required)
	router.Post("/signup", middleware.RateLimiter(), h.Signup)
	router.Post("/login", middleware.RateLimiter(), h.Login)

	// Protected routes (authentication required)
	protected := router.Group("/", middleware.Protect())
	protected.Get("/me", h.GetCurrentUser)
}

// Signup handles user registration
func (h *AuthHTTPHandler) Signup(c *fiber.Ctx) error {
	var req usecase.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Username and password are required",
		})
	}

	user, err := h.usecase.Signup(c.Context(), req)
	if err != nil {
		if errors.Is(err, usecase.ErrUsernameTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Username already taken",
			})
		}
		// Unexpected store faults must not leak detail to the caller.
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Signup failed",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login handles user login
func (h *AuthHTTPHandler) Login(c *fiber.Ctx) error {
	var req usecase.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	token, err := h.usecase.Login(c.Context(), req)
	if err != nil {
		// Lookup miss and password mismatch arrive here as the same error and
		// leave as the same response body.
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid credentials",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Login failed",
		})
	}

	return c.JSON(LoginResponse{AccessToken: token})
}

// GetCurrentUser returns current user information
func (h *AuthHTTPHandler) GetCurrentUser(c *fiber.Ctx) error {
	userID, err := utils.GetUserIDFromContext(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	user, err := h.usecase.GetUserByID(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	return c.JSON(user)
}
