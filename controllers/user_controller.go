package controllers

import (
	"log"
	"net/http"

	"car-rental-backend/services"
	"car-rental-backend/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type credentialsPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type addUserPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// editUserPayload leaves a field unchanged when it is absent or empty.
type editUserPayload struct {
	ID       entityID `json:"_id" binding:"required"`
	Username string   `json:"username"`
	Password string   `json:"password"`
	Role     string   `json:"role"`
}

func (p editUserPayload) update() services.UserUpdate {
	var upd services.UserUpdate
	if p.Username != "" {
		upd.Username = &p.Username
	}
	if p.Password != "" {
		upd.Password = &p.Password
	}
	if p.Role != "" {
		upd.Role = &p.Role
	}
	return upd
}

type deleteUserPayload struct {
	UserID entityID `json:"userid" binding:"required"`
}

// ---------------------------
// Controller
// ---------------------------

type UserController struct {
	Users    *services.UserService
	Sessions *services.SessionService
}

func NewUserController(users *services.UserService, sessions *services.SessionService) *UserController {
	return &UserController{Users: users, Sessions: sessions}
}

func (ctrl *UserController) Register(c *gin.Context) {
	var req credentialsPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	if _, err := ctrl.Users.Register(req.Username, req.Password); err != nil {
		respondServiceError(c, "register", err)
		return
	}
	c.JSON(http.StatusOK, "User registered successfully")
}

// Login answers {token, expiresAt, user}. The role in user is informational;
// protected routes re-read it from the database.
func (ctrl *UserController) Login(c *gin.Context) {
	var req credentialsPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	user, err := ctrl.Users.Login(req.Username, req.Password)
	if err != nil {
		respondServiceError(c, "login", err)
		return
	}
	token, expiresAt, err := ctrl.Sessions.Issue(user)
	if err != nil {
		log.Printf("issue session for user %d: %v", user.ID, err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "failed to create session")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresAt": expiresAt,
		"user":      user,
	})
}

func (ctrl *UserController) GetAllUsers(c *gin.Context) {
	users, err := ctrl.Users.List()
	if err != nil {
		respondServiceError(c, "list users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (ctrl *UserController) AddUser(c *gin.Context) {
	var req addUserPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	if _, err := ctrl.Users.Create(req.Username, req.Password, req.Role); err != nil {
		respondServiceError(c, "add user", err)
		return
	}
	c.JSON(http.StatusOK, "User added successfully")
}

func (ctrl *UserController) EditUser(c *gin.Context) {
	var req editUserPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	if _, err := ctrl.Users.Update(uint(req.ID), req.update()); err != nil {
		respondServiceError(c, "edit user", err)
		return
	}
	c.JSON(http.StatusOK, "User updated successfully")
}

// DeleteUser also removes the user's bookings. Unknown ids succeed.
func (ctrl *UserController) DeleteUser(c *gin.Context) {
	var req deleteUserPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	if err := ctrl.Users.Delete(uint(req.UserID)); err != nil {
		respondServiceError(c, "delete user", err)
		return
	}
	c.JSON(http.StatusOK, "User deleted successfully")
}
