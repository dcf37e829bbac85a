package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yeremiapane/store-order-api/auth"
	"github.com/yeremiapane/store-order-api/models"
	"github.com/yeremiapane/store-order-api/utils"
)

type EmployeeController struct {
	DB     *gorm.DB
	Tokens *auth.TokenService
}

func NewEmployeeController(db *gorm.DB, tokens *auth.TokenService) *EmployeeController {
	return &EmployeeController{DB: db, Tokens: tokens}
}

// Register creates an employee. The password is hashed before it ever touches
// the store; the role defaults to shopper and only the two known roles are
// accepted.
func (ec *EmployeeController) Register(c *gin.Context) {
	type request struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role" binding:"omitempty,oneof=admin shopper"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	role := models.Role(req.Role)
	if role == "" {
		role = models.RoleShopper
	}

	employee := models.Employee{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         role,
	}

	if err := ec.DB.Create(&employee).Error; err != nil {
		utils.ErrorLogger.Printf("failed to create employee: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New employee registered: %s (role=%s)", employee.Email, employee.Role)
	c.JSON(http.StatusCreated, employee)
}

// Login checks the credentials and returns a signed token. Unknown email and
// wrong password collapse to the same 401 so the response does not confirm
// which one failed.
func (ec *EmployeeController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var employee models.Employee
	if err := ec.DB.Where("email = ?", input.Email).First(&employee).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := ec.Tokens.Issue(employee.ID, employee.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Login successful for %s (role=%s)", employee.Email, employee.Role)
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout is a static acknowledgement. Tokens are not invalidated server-side;
// they simply expire.
func (ec *EmployeeController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out."})
}

// GetAllEmployees lists the directory for admins. Password hashes never
// appear in the projection.
func (ec *EmployeeController) GetAllEmployees(c *gin.Context) {
	var employees []models.Employee
	if err := ec.DB.Order("id").Find(&employees).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	type summary struct {
		ID    uint        `json:"id"`
		Name  string      `json:"name"`
		Email string      `json:"email"`
		Role  models.Role `json:"role"`
	}
	out := make([]summary, 0, len(employees))
	for _, e := range employees {
		out = append(out, summary{ID: e.ID, Name: e.Name, Email: e.Email, Role: e.Role})
	}

	c.JSON(http.StatusOK, out)
}
