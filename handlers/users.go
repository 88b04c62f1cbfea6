// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/newsboard/cliparse"
	"github.com/danielhkuo/newsboard/middleware"
	"github.com/danielhkuo/newsboard/models"
)

type UserHandler struct {
	db  *sqlx.DB
	cfg cliparse.Config
}

func NewUserHandler(db *sqlx.DB, cfg cliparse.Config) *UserHandler {
	return &UserHandler{db: db, cfg: cfg}
}

// GetUsers handles GET /api/users
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	var users []models.User
	if err := h.db.Select(&users, `SELECT username, name, avatar_url FROM users`); err != nil {
		middleware.HandleError(w, err)
		return
	}

	if users == nil {
		users = []models.User{}
	}

	middleware.JSONResponse(w, http.StatusOK, models.UsersResponse{Users: users})
}

// GetUserByUsername handles GET /api/users/{username}
func (h *UserHandler) GetUserByUsername(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	var user models.User
	err := h.db.Get(&user,
		`SELECT username, name, avatar_url FROM users WHERE username = $1`, username)

	if errors.Is(err, sql.ErrNoRows) {
		middleware.HandleError(w, models.NotFound())
		return
	}
	if err != nil {
		middleware.HandleError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.UserResponse{User: user})
}
