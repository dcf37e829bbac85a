package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/store-order-api/auth"
	"github.com/yeremiapane/store-order-api/controllers"
	"github.com/yeremiapane/store-order-api/middlewares"
)

func SetupRouter(db *gorm.DB, tokens *auth.TokenService) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	employeeCtrl := controllers.NewEmployeeController(db, tokens)
	orderCtrl := controllers.NewOrderController(db)
	itemCtrl := controllers.NewItemController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Credential endpoints are public but throttled harder.
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", employeeCtrl.Register)
		public.POST("/login", employeeCtrl.Login)
	}

	authed := r.Group("/")
	authed.Use(middlewares.AuthRequired(tokens))
	{
		authed.POST("/logout", employeeCtrl.Logout)

		authed.GET("/orders", orderCtrl.GetAllOrders)
		authed.GET("/orders/:id", orderCtrl.GetOrderByID)
		authed.POST("/orders", orderCtrl.CreateOrder)
		authed.PATCH("/orders/:id", orderCtrl.UpdateOrder)
		authed.DELETE("/orders/:id", orderCtrl.DeleteOrder)

		authed.GET("/items", itemCtrl.GetAllItems)
		authed.POST("/items", itemCtrl.CreateItem)
		authed.PATCH("/items/:id", itemCtrl.UpdateItem)
		authed.DELETE("/items/:id", itemCtrl.DeleteItem)

		authed.GET("/employees", middlewares.RequireAdmin(), employeeCtrl.GetAllEmployees)
	}

	return r
}
