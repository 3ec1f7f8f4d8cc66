package main

import (
	"log"

	"github.com/Jomy2323/dei-pms-submission/app/appearance"
	"github.com/Jomy2323/dei-pms-submission/app/gateway"
	"github.com/Jomy2323/dei-pms-submission/app/session"
	"github.com/Jomy2323/dei-pms-submission/app/workflow"
	"github.com/Jomy2323/dei-pms-submission/config"
	"github.com/Jomy2323/dei-pms-submission/db"
	"github.com/Jomy2323/dei-pms-submission/route"
)

func main() {
	config.Logger()
	config.LoadEnv()

	db.ConnectDB()

	surface := appearance.New()
	remote := gateway.New(config.Env.DMSAPIURL, config.Env.DMSTimeout, surface, config.Env.DebugMode)
	sessions := session.New(remote, session.NewSQLStore(db.GetDB()))

	app := config.NewApp()

	route.SetupRoutes(app, route.Services{
		Sessions:  sessions,
		People:    workflow.NewPeople(remote),
		Theses:    workflow.NewTheses(remote),
		Defenses:  workflow.NewDefenses(remote),
		Dashboard: workflow.NewDashboard(remote),
		Surface:   surface,
	})

	log.Fatal(app.Listen(":" + config.Env.AppPort))
}
