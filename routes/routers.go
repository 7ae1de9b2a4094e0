package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Goqerti/yeni/controllers"
	"github.com/Goqerti/yeni/middleware"
)

func SetupRoutes(router *gin.Engine, orderController *controllers.OrderController) {
	router.Use(middleware.RequestIDMiddleware())

	v1 := router.Group("/api/v1")
	v1.Use(middleware.ActorMiddleware())

	v1.GET("/orders", orderController.GetOrders)
	v1.POST("/orders", orderController.CreateOrder)
	v1.PUT("/orders/:satisNo", orderController.UpdateOrder)
	v1.DELETE("/orders/:satisNo", orderController.DeleteOrder)
	v1.PUT("/orders/:satisNo/note", orderController.UpdateOrderNote)

	v1.GET("/search/:rezNomresi", orderController.SearchOrderByRezNo)

	v1.GET("/reservations", orderController.GetReservations)
	v1.GET("/reports", orderController.GetReports)
	v1.GET("/companies", orderController.GetOrdersByCompany)
	v1.GET("/debts", orderController.GetDebts)
	v1.GET("/notifications", orderController.GetNotifications)
}
