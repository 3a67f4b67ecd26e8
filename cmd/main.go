package main

import (
	"github.com/Abhivera/dietly-prototype-backend/config"
	"github.com/Abhivera/dietly-prototype-backend/routes"
	"github.com/Abhivera/dietly-prototype-backend/services"
	"github.com/Abhivera/dietly-prototype-backend/utils"
)

func main() {
	config.InitLogger()
	config.InitDB()
	utils.InitS3()
	utils.InitMailer()

	cache := services.NewRedisCache(config.InitRedis())

	progressSvc := services.NewProgressService(config.DB)
	reminder := services.NewReminderService(config.DB, progressSvc, config.Logger)
	cron := reminder.Start()
	defer cron.Stop()

	r := routes.SetupRouter(config.DB, cache, config.Logger)
	r.Run(":8080")
}
