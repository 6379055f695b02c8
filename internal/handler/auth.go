package handler

import (
	"context"  // context with cancellation for DB calls
	"net/http" // HTTP status codes and primitives
	"strings"  // string trimming for request fields
	"time"     // timeouts for DB calls and event timestamps

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/iliyamo/user-item-service/internal/apperr"     // error taxonomy
	"github.com/iliyamo/user-item-service/internal/config"     // app configuration
	"github.com/iliyamo/user-item-service/internal/middleware" // context keys for claims
	"github.com/iliyamo/user-item-service/internal/queue"      // domain event payloads
	"github.com/iliyamo/user-item-service/internal/repository" // DB repositories
	queue_publisher "github.com/iliyamo/user-item-service/internal/service"
	"github.com/iliyamo/user-item-service/internal/utils" // hashing and token issuing
)

// AuthHandler bundles dependencies for registration and login.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type registerReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register hashes the password and persists the user. Uniqueness is
// enforced by the store's constraint on username; a detected violation
// maps to 409. The plaintext password never leaves this function.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return apperr.New(apperr.ValidationMissing, "invalid body")
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" || req.Role == "" {
		return apperr.New(apperr.ValidationMissing, "username/password/role required")
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return apperr.Wrap(apperr.StoreError, "hash password failed", err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Username, hash, req.Role)
	if err != nil {
		if err == repository.ErrUsernameExists {
			return apperr.New(apperr.Conflict, "username already exists")
		}
		return apperr.Wrap(apperr.StoreError, "create user failed", err)
	}

	// Fire-and-forget notification; a broker outage must not fail the
	// registration that already committed.
	go func(ev queue.UserRegisteredEvent) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishUserRegistered(ctx, ev)
	}(queue.UserRegisteredEvent{
		UserID:       uid,
		Username:     req.Username,
		Role:         req.Role,
		RegisteredAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{"message": "User registered successfully"})
}

// Login verifies credentials and returns a signed access token. Unknown
// usernames and wrong passwords produce the identical response so the
// endpoint cannot be used to enumerate accounts.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return apperr.New(apperr.ValidationMissing, "invalid body")
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return apperr.New(apperr.ValidationMissing, "username/password required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == repository.ErrNotFound {
			return apperr.New(apperr.InvalidCredentials, "Invalid credentials")
		}
		return apperr.Wrap(apperr.StoreError, "query failed", err)
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return apperr.New(apperr.InvalidCredentials, "Invalid credentials")
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Username, u.Role, h.Cfg.TokenTTLMin)
	if err != nil {
		return apperr.Wrap(apperr.StoreError, "issue token failed", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"token": access.Token})
}

// Protected echoes the verified claims back to the caller. It exists to
// let clients check a token without touching any resource.
func (h *AuthHandler) Protected(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"user_id":  c.Get(middleware.CtxUserID),
		"username": c.Get(middleware.CtxUsername),
		"role":     c.Get(middleware.CtxRole),
	})
}
