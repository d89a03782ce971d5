package main

import (
	"github.com/pjoshi23/CalorIQ/config"
	"github.com/pjoshi23/CalorIQ/routes"
	"github.com/pjoshi23/CalorIQ/services"
	"github.com/pjoshi23/CalorIQ/utils"

	log "github.com/sirupsen/logrus"
)

func main() {
	db := config.InitDB()
	utils.InitS3()

	hub := services.NewRealtimeHub()

	push, err := services.NewPushService(db)
	if err != nil {
		log.WithError(err).Warn("push notifications disabled")
		push = nil
	}

	rek, err := services.NewRekognitionService()
	if err != nil {
		log.WithError(err).Warn("label-detection fallback disabled")
		rek = nil
	}

	r := routes.SetupRouter(db, hub, push, rek)
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
