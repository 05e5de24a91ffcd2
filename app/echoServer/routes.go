package echoServer

import (
	"github.com/labstack/echo/v4"

	"github.com/zirachw/CarGoOwner/app/echoServer/controller/customer"
	"github.com/zirachw/CarGoOwner/app/echoServer/controller/notification"
	"github.com/zirachw/CarGoOwner/app/echoServer/controller/rental"
	"github.com/zirachw/CarGoOwner/app/echoServer/controller/report"
	"github.com/zirachw/CarGoOwner/app/echoServer/controller/vehicle"
)

type C struct {
	Vehicle      *vehicle.Controller
	Customer     *customer.Controller
	Rental       *rental.Controller
	Notification *notification.Controller
	Report       *report.Controller
}

func Register(e *echo.Echo, c C) {
	v1 := e.Group("/v1")

	// Vehicles
	v1.GET("/vehicles", c.Vehicle.List)
	v1.GET("/vehicles/colors", c.Vehicle.Colors)
	v1.GET("/vehicles/years", c.Vehicle.Years)
	v1.GET("/vehicles/available", c.Vehicle.Available)
	v1.GET("/vehicles/:plate", c.Vehicle.Detail)
	v1.POST("/vehicles", c.Vehicle.Create)
	v1.PUT("/vehicles/:plate", c.Vehicle.Update)
	v1.DELETE("/vehicles", c.Vehicle.Delete)
	v1.GET("/vehicles/:plate/image", c.Vehicle.Image)
	v1.PUT("/vehicles/:plate/image", c.Vehicle.UploadImage)

	// Customers
	v1.GET("/customers", c.Customer.List)
	v1.GET("/customers/available", c.Customer.Available)
	v1.GET("/customers/:nik", c.Customer.Detail)
	v1.POST("/customers", c.Customer.Create)
	v1.PUT("/customers/:nik", c.Customer.Update)
	v1.DELETE("/customers", c.Customer.Delete)

	// Rentals
	v1.GET("/rentals", c.Rental.List)
	v1.GET("/rentals/:id", c.Rental.Detail)
	v1.POST("/rentals", c.Rental.Book)
	v1.POST("/rentals/:id/return", c.Rental.Return)
	v1.POST("/rentals/:id/pay", c.Rental.Pay)
	v1.DELETE("/rentals", c.Rental.Delete)

	// Notifications
	v1.GET("/notifications", c.Notification.List)
	v1.GET("/notifications/task", c.Notification.Task)
	v1.PUT("/notifications/task", c.Notification.SetTask)

	// Reports
	v1.GET("/reports/availability", c.Report.Availability)
	v1.GET("/reports/history", c.Report.History)
	v1.GET("/reports/revenue", c.Report.Revenue)
	v1.GET("/reports/revenue/months", c.Report.Months)
	v1.GET("/reports/revenue/export", c.Report.Export)
}
