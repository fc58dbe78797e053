package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/raywall/fast-lambda-client/envloader"
	"github.com/raywall/fast-lambda-client/invoker"
	"github.com/raywall/fast-lambda-client/pkg/config"
	"github.com/raywall/fast-lambda-client/pkg/loader"
	"github.com/raywall/fast-lambda-client/pkg/logger"
	"github.com/raywall/fast-lambda-client/pkg/observability"
)

// overrides permite ajustar a configuração carregada sem editar o YAML.
type overrides struct {
	ConfigSource       string        `env:"LAMBDA_CLIENT_CONFIG" envDefault:"client.yaml"`
	FunctionName       string        `env:"LAMBDA_FUNCTION_NAME"`
	ServiceURL         string        `env:"LAMBDA_SERVICE_URL"`
	ExpectedStatusCode *int          `env:"LAMBDA_EXPECTED_STATUS_CODE"`
	Debug              *bool         `env:"LAMBDA_DEBUG"`
	Timeout            time.Duration `env:"LAMBDA_TIMEOUT"`
}

// Injetável para testes
var lookupEnv envloader.LookupFunc = os.LookupEnv

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

// run carrega a configuração, invoca a função e escreve a resposta em stdout.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var env overrides
	if err := envloader.LoadWithLookup(&env, lookupEnv); err != nil {
		return err
	}

	flags := flag.NewFlagSet("invoke", flag.ContinueOnError)
	flags.SetOutput(stderr)
	source := flags.String("config", env.ConfigSource, "Caminho do YAML ou URI s3:// / dynamodb://")
	payload := flags.String("payload", "", "Payload JSON enviado à função")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *payload != "" && !json.Valid([]byte(*payload)) {
		return errors.New("payload não é um JSON válido")
	}

	fileCfg, err := loader.Load(ctx, *source)
	if err != nil {
		return err
	}
	applyOverrides(&fileCfg.Client, env)
	if err := config.NewValidator().Validate(fileCfg); err != nil {
		return fmt.Errorf("overrides de ambiente inválidos: %w", err)
	}

	base := logger.ConfigureWriter(fileCfg.Logging, stderr).
		With().
		Str("correlation_id", uuid.NewString()).
		Logger()
	onMetricsError := func(err error) {
		base.Warn().Err(err).Msg("Falha ao registrar métricas da invocação")
	}

	provider, err := observability.SetupMetrics(fileCfg.Metrics)
	if err != nil {
		return err
	}
	defer provider.Close()

	client, err := invoker.New(ctx, fileCfg.Client, logger.NewZerologAdapter(base), invoker.WithMetrics(provider), invoker.WithMetricsErrorHandler(onMetricsError))
	if err != nil {
		return err
	}
	defer client.Close()

	var response *json.RawMessage
	if *payload != "" {
		response, err = invoker.InvokeRequestResponse[json.RawMessage, json.RawMessage](ctx, client, json.RawMessage(*payload))
	} else {
		response, err = invoker.InvokeResponse[json.RawMessage](ctx, client)
	}
	if err != nil {
		return err
	}

	if response != nil {
		fmt.Fprintln(stdout, string(*response))
	}
	return nil
}

func applyOverrides(cfg *invoker.Config, env overrides) {
	if env.FunctionName != "" {
		cfg.InvokeRequestConfig.FunctionName = env.FunctionName
	}
	if env.ExpectedStatusCode != nil {
		cfg.InvokeRequestConfig.ExpectedStatusCode = env.ExpectedStatusCode
	}
	if env.Debug != nil {
		cfg.DebugMode = *env.Debug
	}

	if env.ServiceURL == "" && env.Timeout == 0 {
		return
	}
	if cfg.LambdaConfig == nil {
		cfg.LambdaConfig = &invoker.LambdaConfig{}
	}
	if env.ServiceURL != "" {
		cfg.LambdaConfig.ServiceURL = env.ServiceURL
	}
	if env.Timeout > 0 {
		cfg.LambdaConfig.Timeout = env.Timeout.String()
	}
}
