package main

import (
	"fmt"

	"github.com/ebarbosa87/pixmart/internal/app"
	"github.com/ebarbosa87/pixmart/internal/config"
	"github.com/ebarbosa87/pixmart/internal/logger"
)

func main() {
	// load configuration
	config := config.NewConfig()
	// initialize the logger
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()
	// run the service
	app.Run(config)
}
