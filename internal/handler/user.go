package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/user-item-service/internal/apperr"
	"github.com/iliyamo/user-item-service/internal/config"
	"github.com/iliyamo/user-item-service/internal/repository"
	"github.com/iliyamo/user-item-service/internal/utils"
)

// UserHandler bundles dependencies for the protected user endpoints.
type UserHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewUserHandler(cfg config.Config, u *repository.UserRepo) *UserHandler {
	return &UserHandler{Cfg: cfg, Users: u}
}

type updateUserReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// List returns all users without their password hashes.
func (h *UserHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		return apperr.Wrap(apperr.StoreError, "list users failed", err)
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns a single user by id.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c, "user")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return apperr.New(apperr.NotFound, "user not found")
		}
		return apperr.Wrap(apperr.StoreError, "query failed", err)
	}
	return c.JSON(http.StatusOK, u)
}

// Update applies any subset of {username, password, role} to a user. The
// password, when present, is re-hashed before it reaches the store. A body
// that provides none of the fields is a validation error, not a no-op: an
// UPDATE with zero assignments must never be built.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c, "user")
	if err != nil {
		return err
	}
	var req updateUserReq
	if err := c.Bind(&req); err != nil {
		return apperr.New(apperr.ValidationMissing, "invalid body")
	}

	var upd repository.UserUpdate
	if v := strings.TrimSpace(req.Username); v != "" {
		upd.Username = &v
	}
	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
		if err != nil {
			return apperr.Wrap(apperr.StoreError, "hash password failed", err)
		}
		upd.PasswordHash = &hash
	}
	if v := strings.TrimSpace(req.Role); v != "" {
		upd.Role = &v
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	switch err := h.Users.Update(ctx, id, upd); err {
	case nil:
		return c.JSON(http.StatusOK, echo.Map{"message": "User updated successfully"})
	case repository.ErrNoFields:
		return apperr.New(apperr.ValidationMissing, "no fields to update")
	case repository.ErrNotFound:
		return apperr.New(apperr.NotFound, "user not found")
	case repository.ErrUsernameExists:
		return apperr.New(apperr.Conflict, "username already exists")
	default:
		return apperr.Wrap(apperr.StoreError, "update user failed", err)
	}
}

// Delete physically removes a user row.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "user")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return apperr.New(apperr.NotFound, "user not found")
		}
		return apperr.Wrap(apperr.StoreError, "delete user failed", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User deleted successfully"})
}
