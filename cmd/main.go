package main

import (
	"github.com/ayiqazmi/MyCalorie/config"
	"github.com/ayiqazmi/MyCalorie/routes"
	"github.com/ayiqazmi/MyCalorie/services"
	"github.com/ayiqazmi/MyCalorie/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	hub := services.NewRealtimeHub()
	services.InitAlertDeps(config.DB, hub)

	r := routes.SetupRouter(hub)
	r.Run(":8080")
}
