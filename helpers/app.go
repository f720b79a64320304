package helpers

import (
	"os"

	"github.com/pocketbase/pocketbase"
)

func CreateApp() *pocketbase.PocketBase {
	app := pocketbase.NewWithConfig(pocketbase.Config{
		HideStartBanner: false,
		DefaultDev:      os.Getenv("APP_ENV") != "prod",
	})

	return app
}
