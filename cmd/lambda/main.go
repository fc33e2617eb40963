package main

import (
	"context"
	lambdaadapter "housemate-alexa/internal/adapters/input/lambda"
	"housemate-alexa/internal/adapters/output/config"
	"housemate-alexa/internal/adapters/output/housemate"
	"housemate-alexa/internal/domain/service"
	"housemate-alexa/internal/logging"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	// Lambda deployments are configured through HOUSEMATE_* variables; the
	// file is optional.
	cfg, err := config.NewViperConfigRepository(os.Getenv("CONFIG_PATH")).Get(context.Background())
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Logger error: %v", err)
	}
	defer logger.Sync()

	router := service.NewRouter(housemate.NewFactory(cfg.Backend, logger), logger)
	lambda.Start(lambdaadapter.NewHandler(router, logger).Invoke)
}
