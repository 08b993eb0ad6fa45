package main

import (
	"fmt"
	"log"

	"github.com/gorilla/handlers"
	"go.uber.org/zap"

	"github.com/hankgalt/geocell/pkg/app"
	"github.com/hankgalt/geocell/pkg/config"
	"github.com/hankgalt/geocell/pkg/logging"
	"github.com/hankgalt/geocell/pkg/services/codec"
)

func main() {
	// initialize logger instance
	logging.InitializeLogger()

	// create app config,
	// throws app startup error if required config is missing
	config, err := config.GetAppConfig(logging.Logger)
	if err != nil {
		logging.Logger.Fatal("unable to setup config", zap.Error(err))
		return
	}

	// create codec service instance
	codecService := codec.New(logging.Logger, config.Server.DefaultPrecision)

	// create app instance
	// requires codecService and logger instance
	servicePort := fmt.Sprintf(":%d", config.Server.Port)
	app := app.NewApp(servicePort, codecService, logging.Logger)
	app.Handler = handlers.CORS()(app.Handler)

	// start listening for requests and serving responses
	logging.Logger.Info("listening for geocell requests", zap.Int("port", config.Server.Port))
	log.Fatal(app.ListenAndServe())
}
