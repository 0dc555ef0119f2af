package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"car-rental-backend/controllers"
	"car-rental-backend/middleware"
)

func corsConfig(origins []string) cors.Config {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}
}

// SetupRouter mounts the REST surface. auth must authenticate the caller
// (middleware.RequireAuth); admin routes add middleware.RequireAdmin on top.
func SetupRouter(
	cc *controllers.CarController,
	bc *controllers.BookingController,
	uc *controllers.UserController,
	auth gin.HandlerFunc,
	origins []string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.Use(cors.New(corsConfig(origins)))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	admin := []gin.HandlerFunc{auth, middleware.RequireAdmin()}
	withAdmin := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, admin...), h)
	}

	api := r.Group("/api")
	{
		cars := api.Group("/cars")
		{
			// static paths before /:carId
			cars.GET("/getallcars", cc.GetAllCars)
			cars.POST("/addcar", withAdmin(cc.AddCar)...)
			cars.PUT("/editcar", withAdmin(cc.EditCar)...)
			cars.DELETE("/deletecar", withAdmin(cc.DeleteCar)...)
			cars.GET("/:carId", cc.GetCar)
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("/quote", bc.Quote)
			bookings.POST("/bookcar", auth, bc.BookCar)
			bookings.GET("/getallbookings", withAdmin(bc.GetAllBookings)...)
			bookings.PUT("/editbooking", withAdmin(bc.EditBooking)...)
			bookings.DELETE("/deletebooking", withAdmin(bc.DeleteBooking)...)
		}

		users := api.Group("/users")
		{
			users.POST("/register", uc.Register)
			users.POST("/login", uc.Login)
			users.GET("/getallusers", withAdmin(uc.GetAllUsers)...)
			users.POST("/adduser", withAdmin(uc.AddUser)...)
			users.PUT("/edituser", withAdmin(uc.EditUser)...)
			users.DELETE("/deleteuser", withAdmin(uc.DeleteUser)...)
		}
	}

	return r
}
