package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/store-order-api/models"
	"github.com/yeremiapane/store-order-api/utils"
)

// ItemController handles line items. Items carry no ownership rule: any
// authenticated employee may manage them.
type ItemController struct {
	DB *gorm.DB
}

func NewItemController(db *gorm.DB) *ItemController {
	return &ItemController{DB: db}
}

func (ic *ItemController) GetAllItems(c *gin.Context) {
	items := make([]models.Item, 0)
	if err := ic.DB.Order("id").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (ic *ItemController) CreateItem(c *gin.Context) {
	type request struct {
		Name       string  `json:"name" binding:"required"`
		Price      float64 `json:"price"`
		Department *string `json:"department"`
		InStock    *bool   `json:"inStock"`
		OrderID    *uint   `json:"orderId"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	item := models.Item{
		Name:       req.Name,
		Price:      req.Price,
		Department: req.Department,
		InStock:    inStock,
		OrderID:    req.OrderID,
	}

	if err := ic.DB.Create(&item).Error; err != nil {
		utils.ErrorLogger.Printf("failed to create item: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (ic *ItemController) UpdateItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("item not found"))
		return
	}

	var item models.Item
	if err := ic.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("item not found"))
		return
	}

	type request struct {
		Name       *string  `json:"name"`
		Price      *float64 `json:"price"`
		Department *string  `json:"department"`
		InStock    *bool    `json:"inStock"`
		OrderID    *uint    `json:"orderId"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Department != nil {
		item.Department = req.Department
	}
	if req.InStock != nil {
		item.InStock = *req.InStock
	}
	if req.OrderID != nil {
		item.OrderID = req.OrderID
	}

	if err := ic.DB.Save(&item).Error; err != nil {
		utils.ErrorLogger.Printf("failed to update item %d: %v", item.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (ic *ItemController) DeleteItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("item not found"))
		return
	}

	var item models.Item
	if err := ic.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("item not found"))
		return
	}

	if err := ic.DB.Delete(&item).Error; err != nil {
		utils.ErrorLogger.Printf("failed to delete item %d: %v", item.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted."})
}
