package main

import (
	"context"

	"medibook/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize application with all dependencies
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Close()

	// Verify the store answers before reporting ready
	if _, err := app.Admin.GetHospitals(context.Background()); err != nil {
		logrus.Fatalf("Storage check failed: %v", err)
	}

	logrus.Infof("Ledger ready: env=%s, storage=%s", app.Config.App.Env, app.Config.Storage.Driver)
}
