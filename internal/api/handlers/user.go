package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/rajeev970/smartagri-go/internal/middleware"
	"github.com/rajeev970/smartagri-go/internal/models"
)

// UserStore is the subset of pgx pool operations the user handler needs.
type UserStore interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// UserHandler serves registration, login and profile endpoints. Without a
// database connection the handler runs in demo mode: registration is
// disabled and only the demo account can log in.
type UserHandler struct {
	store      UserStore
	auth       *middleware.AuthMiddleware
	jwtExpiry  time.Duration
	bcryptCost int
	logger     *logrus.Logger
}

// NewUserHandler creates a user handler. store may be nil in demo mode.
func NewUserHandler(store UserStore, auth *middleware.AuthMiddleware, jwtExpiry time.Duration, bcryptCost int, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		store:      store,
		auth:       auth,
		jwtExpiry:  jwtExpiry,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

const (
	demoUserID   = "demo-user-id"
	demoUsername = "demo"
	demoPassword = "demo"
)

// Register handles POST /api/auth/register.
func (h *UserHandler) Register(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"success": false, "message": "Registration is disabled in demo mode"})
		return
	}

	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid registration request: " + err.Error()})
		return
	}
	if req.UserType == "" {
		req.UserType = "farmer"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.bcryptCost)
	if err != nil {
		h.logger.WithError(err).Error("Failed to hash password")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		UserType:     req.UserType,
		State:        req.State,
		District:     req.District,
		CreatedAt:    time.Now().UTC(),
	}

	_, err = h.store.Exec(c.Request.Context(),
		`INSERT INTO users (id, username, email, password_hash, user_type, state, district, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Username, user.Email, user.PasswordHash,
		user.UserType, user.State, user.District, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Username or email already exists"})
			return
		}
		h.logger.WithError(err).Error("Failed to create user")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	token, err := h.auth.GenerateToken(user.ID, user.Username, h.jwtExpiry)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"token":   token,
		"user":    toUserResponse(user),
	})
}

// Login handles POST /api/auth/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid login request"})
		return
	}

	if h.store == nil {
		h.loginDemo(c, req)
		return
	}

	var user models.User
	err := h.store.QueryRow(c.Request.Context(),
		`SELECT id, username, email, password_hash, user_type, state, district, created_at
		 FROM users WHERE username = $1`, req.Username).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash,
			&user.UserType, &user.State, &user.District, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}
		h.logger.WithError(err).Error("Failed to look up user")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	token, err := h.auth.GenerateToken(user.ID, user.Username, h.jwtExpiry)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    toUserResponse(user),
	})
}

// Profile handles GET /api/auth/profile. Requires auth middleware upstream.
func (h *UserHandler) Profile(c *gin.Context) {
	userID := c.GetString("user_id")

	if h.store == nil || userID == demoUserID {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"user": models.UserResponse{
				ID:       demoUserID,
				Username: demoUsername,
				Email:    "demo@example.com",
				UserType: "farmer",
				State:    "All India",
				District: "All districts",
			},
		})
		return
	}

	var user models.User
	err := h.store.QueryRow(c.Request.Context(),
		`SELECT id, username, email, password_hash, user_type, state, district, created_at
		 FROM users WHERE id = $1`, userID).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash,
			&user.UserType, &user.State, &user.District, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		h.logger.WithError(err).Error("Failed to load profile")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": toUserResponse(user)})
}

func (h *UserHandler) loginDemo(c *gin.Context, req models.LoginRequest) {
	if req.Username != demoUsername || req.Password != demoPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	token, err := h.auth.GenerateToken(demoUserID, demoUsername, h.jwtExpiry)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": models.UserResponse{
			ID:       demoUserID,
			Username: demoUsername,
			Email:    "demo@example.com",
			UserType: "farmer",
		},
	})
}

func toUserResponse(u models.User) models.UserResponse {
	return models.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		UserType: u.UserType,
		State:    u.State,
		District: u.District,
	}
}
