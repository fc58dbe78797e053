package invoker

import (
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

// Valores aceitos em InvokeRequestConfig.InvocationType e LogType.
const (
	InvocationTypeRequestResponse = string(types.InvocationTypeRequestResponse)
	InvocationTypeEvent           = string(types.InvocationTypeEvent)
	InvocationTypeDryRun          = string(types.InvocationTypeDryRun)

	LogTypeNone = string(types.LogTypeNone)
	LogTypeTail = string(types.LogTypeTail)
)

// Config reúne tudo que o Client precisa. É criada uma vez pelo chamador e
// não é alterada pelo Client.
type Config struct {
	UseAnonymousCredentials bool                 `yaml:"use_anonymous_credentials"`
	LambdaConfig            *LambdaConfig        `yaml:"lambda_config"`
	InvokeRequestConfig     *InvokeRequestConfig `yaml:"invoke_request_config" validate:"required"`
	DebugMode               bool                 `yaml:"debug_mode"`
}

// LambdaConfig descreve o transporte/endpoint do serviço.
// É serializada como está no log de debug ("Client config: ...").
type LambdaConfig struct {
	ServiceURL  string `yaml:"service_url" validate:"omitempty,url"`
	Region      string `yaml:"region"`
	Profile     string `yaml:"profile"`
	MaxAttempts int    `yaml:"max_attempts" validate:"gte=0"`
	Timeout     string `yaml:"timeout"` // Ex: "500ms", "30s"
}

// InvokeRequestConfig define qual função chamar e como.
type InvokeRequestConfig struct {
	FunctionName   string            `yaml:"function_name" validate:"required,max=170"`
	InvocationType string            `yaml:"invocation_type" validate:"omitempty,oneof=RequestResponse Event DryRun"`
	LogType        string            `yaml:"log_type" validate:"omitempty,oneof=None Tail"`
	Qualifier      string            `yaml:"qualifier"`
	ClientContext  map[string]string `yaml:"client_context"`

	// ExpectedStatusCode é apenas consultivo: divergência gera warning.
	ExpectedStatusCode *int `yaml:"expected_status_code" validate:"omitempty,gte=100,lt=600"`
}

// GetTimeout retorna o timeout do cliente HTTP. Zero significa sem timeout.
func (l LambdaConfig) GetTimeout() (time.Duration, error) {
	if l.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(l.Timeout)
	if err != nil {
		return 0, fmt.Errorf("timeout inválido '%s': %w", l.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("timeout inválido '%s': negativo", l.Timeout)
	}
	return d, nil
}
