package routes

import (
	"github.com/kapilkaushal24/restaurant-management-api/controllers"
	"github.com/kapilkaushal24/restaurant-management-api/middlewares"
	"github.com/kapilkaushal24/restaurant-management-api/pkg/authz"
	"github.com/kapilkaushal24/restaurant-management-api/repository"
	"github.com/kapilkaushal24/restaurant-management-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Deps struct {
	DB     *gorm.DB
	Tokens *services.TokenService
	Cache  *repository.MenuCache
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	userRepo := repository.NewUserRepository(deps.DB)
	restRepo := repository.NewRestaurantRepository(deps.DB)
	menuRepo := repository.NewMenuRepository(deps.DB)
	orderRepo := repository.NewOrderRepository(deps.DB)

	authSvc := services.NewAuthService(userRepo, deps.Tokens)
	restSvc := services.NewRestaurantService(restRepo)
	menuSvc := services.NewMenuService(menuRepo, deps.Cache)
	orderSvc := services.NewOrderService(deps.DB, orderRepo, restRepo)

	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	authed := middlewares.Auth(deps.Tokens)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/register-bulk", authCtrl.RegisterBulk)
		a.POST("/login", authCtrl.Login)
		a.POST("/refresh-token", authCtrl.Refresh)
		a.GET("/users", authed, middlewares.Require(authz.ActionListUsers), authCtrl.ListUsers)
	}

	// Restaurants: public reads, admin-only mutations
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/search", restCtrl.Search)
	r.GET("/restaurants/:id", restCtrl.Get)
	restAdmin := r.Group("/restaurants", authed, middlewares.Require(authz.ActionRestaurantWrite))
	{
		restAdmin.POST("", restCtrl.Create)
		restAdmin.PUT("/:id", restCtrl.Update)
		restAdmin.DELETE("/:id", restCtrl.Delete)
	}

	// Menu: public reads, staff/admin mutations
	menu := r.Group("/menu")
	{
		menu.GET("/categories/restaurant/:restaurantId", menuCtrl.ListCategories)
		menu.GET("/categories/:id", menuCtrl.GetCategory)
		menu.GET("/items/category/:categoryId", menuCtrl.ListItems)
		menu.GET("/items/search", menuCtrl.SearchItems)
		menu.GET("/items/:id", menuCtrl.GetItem)
	}
	menuWrite := r.Group("/menu", authed, middlewares.Require(authz.ActionCatalogWrite))
	{
		menuWrite.POST("/categories", menuCtrl.CreateCategory)
		menuWrite.DELETE("/categories/:id", menuCtrl.DeleteCategory)
		menuWrite.POST("/items", menuCtrl.CreateItem)
		menuWrite.PUT("/items/:id", menuCtrl.UpdateItem)
		menuWrite.DELETE("/items/:id", menuCtrl.DeleteItem)
	}

	// Orders: everything requires a valid token
	orders := r.Group("/orders", authed)
	{
		orders.GET("", middlewares.Require(authz.ActionListAllOrders), orderCtrl.ListAll)
		orders.GET("/my-orders", orderCtrl.ListMine)
		orders.GET("/:id", orderCtrl.Get) // ownership checked in the service
		orders.POST("", middlewares.Require(authz.ActionCreateOrder), orderCtrl.Create)
		orders.PATCH("/:id/status", middlewares.Require(authz.ActionUpdateOrderStatus), orderCtrl.UpdateStatus)
	}
}
