package invoker

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/raywall/fast-lambda-client/pkg/metrics"
	"github.com/raywall/fast-lambda-client/pkg/serializer"
	"github.com/rs/zerolog/log"
)

// Região usada com credenciais anônimas quando nenhuma foi configurada.
// Emuladores locais ignoram a região, mas o SDK exige uma.
const defaultAnonymousRegion = "us-east-1"

// InvokeAPI abstrai o cliente do SDK (permite Mocking).
type InvokeAPI interface {
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

// Option customiza o Client na construção.
type Option func(*Client)

// WithMetrics envia métricas de cada invocação para o provider.
func WithMetrics(provider metrics.Provider) Option {
	return func(c *Client) {
		c.metrics = metrics.NewRecorder(provider, c.config.InvokeRequestConfig.FunctionName)
	}
}

// WithMetricsErrorHandler recebe as falhas de envio de métricas. Elas nunca
// interrompem a invocação. O padrão é um warning no logger global do zerolog.
func WithMetricsErrorHandler(handler func(error)) Option {
	return func(c *Client) {
		if handler != nil {
			c.onMetricsError = handler
		}
	}
}

// Client invoca sempre a mesma função, descrita em Config.InvokeRequestConfig.
// É seguro para uso concorrente.
type Client struct {
	config       Config
	lambdaConfig LambdaConfig
	api          InvokeAPI
	logger       Logger
	metrics      *metrics.Recorder

	onMetricsError func(error)

	httpClient *http.Client // nil quando a API foi injetada
	closeOnce  sync.Once
	closed     atomic.Bool
}

// New valida a configuração e cria o cliente do SDK com credenciais anônimas
// ou com a cadeia padrão da AWS (env, profile, IAM role).
func New(ctx context.Context, cfg Config, logger Logger, opts ...Option) (*Client, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	lambdaCfg := LambdaConfig{}
	if cfg.LambdaConfig != nil {
		lambdaCfg = *cfg.LambdaConfig
	}

	timeout, err := lambdaCfg.GetTimeout()
	if err != nil {
		return nil, fmt.Errorf("configuração do lambda inválida: %w", err)
	}

	httpClient := &http.Client{
		Transport: http.DefaultTransport.(*http.Transport).Clone(),
		Timeout:   timeout,
	}

	awsCfg, err := loadAWSConfig(ctx, cfg.UseAnonymousCredentials, lambdaCfg, httpClient)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração AWS: %w", err)
	}
	lambdaCfg.Region = awsCfg.Region

	api := lambda.NewFromConfig(awsCfg, func(o *lambda.Options) {
		if lambdaCfg.ServiceURL != "" {
			o.BaseEndpoint = aws.String(lambdaCfg.ServiceURL)
		}
	})

	c := newClient(cfg, lambdaCfg, logger, api, opts)
	c.httpClient = httpClient
	return c, nil
}

// NewWithAPI cria o Client sobre uma implementação já pronta de InvokeAPI.
func NewWithAPI(cfg Config, logger Logger, api InvokeAPI, opts ...Option) (*Client, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	lambdaCfg := LambdaConfig{}
	if cfg.LambdaConfig != nil {
		lambdaCfg = *cfg.LambdaConfig
	}
	return newClient(cfg, lambdaCfg, logger, api, opts), nil
}

func newClient(cfg Config, lambdaCfg LambdaConfig, logger Logger, api InvokeAPI, opts []Option) *Client {
	if logger == nil {
		logger = NopLogger{}
	}

	c := &Client{
		config:       cfg,
		lambdaConfig: lambdaCfg,
		api:          api,
		logger:       logger,

		onMetricsError: warnMetricsError,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func validateConfig(cfg Config) error {
	if cfg.InvokeRequestConfig == nil {
		return &MissingParameterError{Parameter: "InvokeRequestConfig"}
	}
	return nil
}

func loadAWSConfig(ctx context.Context, anonymous bool, lambdaCfg LambdaConfig, httpClient *http.Client) (aws.Config, error) {
	if anonymous {
		region := lambdaCfg.Region
		if region == "" {
			region = defaultAnonymousRegion
		}
		return aws.Config{
			Region:           region,
			Credentials:      aws.AnonymousCredentials{},
			HTTPClient:       httpClient,
			RetryMaxAttempts: lambdaCfg.MaxAttempts,
		}, nil
	}

	opts := []func(*config.LoadOptions) error{
		config.WithHTTPClient(httpClient),
	}
	if lambdaCfg.Region != "" {
		opts = append(opts, config.WithRegion(lambdaCfg.Region))
	}
	if lambdaCfg.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(lambdaCfg.Profile))
	}
	if lambdaCfg.MaxAttempts > 0 {
		opts = append(opts, config.WithRetryMaxAttempts(lambdaCfg.MaxAttempts))
	}
	return config.LoadDefaultConfig(ctx, opts...)
}

// InvokeLambda executa o InvokeInput e aplica o pós-processamento comum:
// log de debug, logs da função, erro de função e validação do status code.
// Erros de transporte são retornados sem alteração.
func (c *Client) InvokeLambda(ctx context.Context, input *lambda.InvokeInput) (*lambda.InvokeOutput, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}

	if c.config.DebugMode {
		c.logClientConfig()
	}

	start := time.Now()
	output, err := c.api.Invoke(ctx, input)
	if err != nil {
		c.reportMetrics(c.metrics.RecordError("transport"))
		return nil, err
	}
	c.reportMetrics(c.metrics.RecordInvocation(output.StatusCode, time.Since(start)))

	c.logResult(output)
	c.logFunctionError(output)
	c.validateStatusCode(output)

	return output, nil
}

// Close libera as conexões do transporte HTTP. Chamadas repetidas não fazem nada.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		if c.httpClient != nil {
			c.httpClient.CloseIdleConnections()
		}
	})
	return nil
}

func warnMetricsError(err error) {
	log.Warn().Err(err).Msg("Falha ao registrar métricas da invocação")
}

func (c *Client) reportMetrics(err error) {
	if err != nil {
		c.onMetricsError(err)
	}
}

func (c *Client) logClientConfig() {
	json, err := serializer.Serialize(c.lambdaConfig)
	if err != nil {
		c.logger.Error(fmt.Sprintf("Client config: %v", err))
		return
	}
	c.logger.Debug("Client config: " + json)
}

func (c *Client) logResult(output *lambda.InvokeOutput) {
	if output.LogResult == nil || *output.LogResult == "" {
		return
	}

	data, err := base64.StdEncoding.DecodeString(*output.LogResult)
	if err != nil {
		c.logger.Error(fmt.Sprintf("Invalid log result from Lambda: %v", err))
		return
	}
	if len(data) == 0 {
		return
	}
	c.logger.Info("Logs from Lambda:\n" + string(data))
}

func (c *Client) logFunctionError(output *lambda.InvokeOutput) {
	if output.FunctionError == nil || *output.FunctionError == "" {
		return
	}
	c.reportMetrics(c.metrics.RecordError(*output.FunctionError))
	c.logger.Error("Function error: " + *output.FunctionError)
}

func (c *Client) validateStatusCode(output *lambda.InvokeOutput) {
	expected := c.config.InvokeRequestConfig.ExpectedStatusCode
	if expected == nil || int(output.StatusCode) == *expected {
		return
	}
	c.reportMetrics(c.metrics.RecordStatusMismatch(int(output.StatusCode), *expected))
	c.logger.Warn(fmt.Sprintf("Invalid Status Code. Actual: %d, Expected: %d", output.StatusCode, *expected))
}
