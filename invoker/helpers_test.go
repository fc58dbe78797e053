package invoker

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockInvokeAPI struct {
	mock.Mock
}

func (m *MockInvokeAPI) Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lambda.InvokeOutput), args.Error(1)
}

// recordingLogger guarda as mensagens por nível.
type recordingLogger struct {
	mu    sync.Mutex
	infos []string
	warns []string
	errs  []string
	debug []string
}

func (l *recordingLogger) Info(m string)  { l.append(&l.infos, m) }
func (l *recordingLogger) Warn(m string)  { l.append(&l.warns, m) }
func (l *recordingLogger) Error(m string) { l.append(&l.errs, m) }
func (l *recordingLogger) Debug(m string) { l.append(&l.debug, m) }

func (l *recordingLogger) append(dst *[]string, m string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*dst = append(*dst, m)
}

type MockProvider struct {
	mu    sync.Mutex
	Names []string
}

func (m *MockProvider) record(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Names = append(m.Names, name)
	return nil
}

func (m *MockProvider) Count(name string, _ float64, _ []string) error     { return m.record(name) }
func (m *MockProvider) Gauge(name string, _ float64, _ []string) error     { return m.record(name) }
func (m *MockProvider) Histogram(name string, _ float64, _ []string) error { return m.record(name) }

func intPtr(v int) *int { return &v }

func newTestConfig() Config {
	return Config{
		UseAnonymousCredentials: true,
		DebugMode:               false,
		LambdaConfig: &LambdaConfig{
			ServiceURL: "http://127.0.0.1:3001",
		},
		InvokeRequestConfig: &InvokeRequestConfig{
			FunctionName:       "HelloFromLambdaFunction",
			InvocationType:     InvocationTypeRequestResponse,
			ExpectedStatusCode: intPtr(200),
		},
	}
}
