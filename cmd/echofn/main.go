package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/raywall/fast-lambda-client/pkg/config"
	"github.com/raywall/fast-lambda-client/pkg/functions"
	"github.com/raywall/fast-lambda-client/pkg/logger"
)

// Injetável para testes
var lambdaStarter = func(handler interface{}) { lambda.Start(handler) }

func main() {
	run(os.Getenv("LOG_LEVEL"))
}

// run registra o handler de uppercase no runtime do Lambda.
func run(level string) {
	base := logger.Configure(config.LoggingConf{Enabled: true, Level: level})

	handler := func(ctx context.Context, input string) (string, error) {
		return functions.Uppercase(base.WithContext(ctx), input)
	}
	lambdaStarter(handler)
}
