package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/beautyplaza/beautyplaza-api/controllers"
	"github.com/beautyplaza/beautyplaza-api/cron"
	"github.com/beautyplaza/beautyplaza-api/db"
	"github.com/beautyplaza/beautyplaza-api/redis"
	"github.com/beautyplaza/beautyplaza-api/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	if os.Getenv("AUTO_MIGRATE") == "true" {
		db.Migrate()
	}
	redis.InitRedis()
	controllers.InitBooking()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Beauty Plaza API")
	})

	routes.SetupAuthRoutes(app)
	routes.SetupUserRoutes(app)
	routes.SetupTechnicianRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupLoyaltyRoutes(app)
	routes.SetupGiftCardRoutes(app)
	routes.SetupPromotionRoutes(app)
	routes.SetupReferralRoutes(app)
	routes.SetupSettingRoutes(app)

	cron.StartCronJobs()

	log.Fatal(app.Listen(":8000"))
}
