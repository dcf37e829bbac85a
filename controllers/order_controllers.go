package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/store-order-api/auth"
	"github.com/yeremiapane/store-order-api/middlewares"
	"github.com/yeremiapane/store-order-api/models"
	"github.com/yeremiapane/store-order-api/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// GetAllOrders lists orders with their items, narrowed by the caller's
// visibility scope. A shopper with nothing assigned gets an empty list, not
// an error.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	ident, ok := middlewares.IdentityFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("identity not found in context"))
		return
	}

	var filters auth.OrderFilters
	if v, exists := c.GetQuery("status"); exists {
		filters.Status = &v
	}
	if v, exists := c.GetQuery("isDelivery"); exists {
		filters.IsDelivery = &v
	}

	scope := auth.ListScope(ident, filters)

	orders := make([]models.Order, 0)
	if err := scope.Apply(oc.DB.Preload("Items")).Order("id").Find(&orders).Error; err != nil {
		utils.ErrorLogger.Printf("failed to list orders: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrderByID returns one order with its items. Not-found is resolved
// before ownership, so an unknown id is 404 for everyone.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	ident, ok := middlewares.IdentityFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("identity not found in context"))
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	var order models.Order
	if err := oc.DB.Preload("Items").First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	if d := auth.Authorize(ident, auth.OpRead, order.EmployeeID); !d.Allowed {
		utils.RespondError(c, http.StatusForbidden, errors.New(d.Reason.Message()))
		return
	}

	c.JSON(http.StatusOK, order)
}

// CreateOrder creates an order. Admin only.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	ident, ok := middlewares.IdentityFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("identity not found in context"))
		return
	}

	if d := auth.Authorize(ident, auth.OpCreate, nil); !d.Allowed {
		utils.RespondError(c, http.StatusForbidden, errors.New(d.Reason.Message()))
		return
	}

	type request struct {
		CustomerName string  `json:"customerName" binding:"required"`
		PickupTime   *string `json:"pickupTime"`
		IsDelivery   bool    `json:"isDelivery"`
		Status       string  `json:"status"`
		EmployeeID   *uint   `json:"employeeId"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Status == "" {
		req.Status = "pending"
	}

	order := models.Order{
		CustomerName: req.CustomerName,
		PickupTime:   req.PickupTime,
		IsDelivery:   req.IsDelivery,
		Status:       req.Status,
		EmployeeID:   req.EmployeeID,
	}

	if err := oc.DB.Create(&order).Error; err != nil {
		utils.ErrorLogger.Printf("failed to create order: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// UpdateOrder patches an order. Admins may touch any order; a shopper only
// the one assigned to them, with the same fields available once allowed.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	ident, ok := middlewares.IdentityFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("identity not found in context"))
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	// Ownership is checked against the stored record, never the payload.
	if d := auth.Authorize(ident, auth.OpUpdate, order.EmployeeID); !d.Allowed {
		utils.RespondError(c, http.StatusForbidden, errors.New(d.Reason.Message()))
		return
	}

	type request struct {
		CustomerName *string `json:"customerName"`
		PickupTime   *string `json:"pickupTime"`
		IsDelivery   *bool   `json:"isDelivery"`
		Status       *string `json:"status"`
		EmployeeID   *uint   `json:"employeeId"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.CustomerName != nil {
		order.CustomerName = *req.CustomerName
	}
	if req.PickupTime != nil {
		order.PickupTime = req.PickupTime
	}
	if req.IsDelivery != nil {
		order.IsDelivery = *req.IsDelivery
	}
	if req.Status != nil {
		order.Status = *req.Status
	}
	if req.EmployeeID != nil {
		order.EmployeeID = req.EmployeeID
	}

	if err := oc.DB.Save(&order).Error; err != nil {
		utils.ErrorLogger.Printf("failed to update order %d: %v", order.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := oc.DB.Preload("Items").First(&order, order.ID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// DeleteOrder removes an order. Admin only. The order's items survive with
// their order reference cleared, in one transaction.
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	ident, ok := middlewares.IdentityFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("identity not found in context"))
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	if d := auth.Authorize(ident, auth.OpDelete, order.EmployeeID); !d.Allowed {
		utils.RespondError(c, http.StatusForbidden, errors.New(d.Reason.Message()))
		return
	}

	err = oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Item{}).Where("order_id = ?", order.ID).Update("order_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		utils.ErrorLogger.Printf("failed to delete order %d: %v", order.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted."})
}
