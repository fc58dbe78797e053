package invoker

import (
	"context"
	"net/http/httptest"
	"testing"

	emulator "github.com/raywall/fast-lambda-client/tools/emulator/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Testes ponta a ponta: SDK real com credenciais anônimas contra o emulador local.

func startEmulator(t *testing.T) *httptest.Server {
	t.Helper()
	server := &emulator.ServerConfig{
		Functions: []emulator.FunctionConfig{
			{Name: "HelloFromLambdaFunction", Handler: "uppercase"},
			{Name: "Broken", Handler: "fail", ErrorMessage: "kaboom"},
		},
	}
	srv := httptest.NewServer(server.Router())
	t.Cleanup(srv.Close)
	return srv
}

func newEmulatorClient(t *testing.T, srv *httptest.Server, mutate func(*Config)) (*Client, *recordingLogger) {
	t.Helper()
	cfg := newTestConfig()
	cfg.LambdaConfig.ServiceURL = srv.URL
	cfg.LambdaConfig.MaxAttempts = 1
	if mutate != nil {
		mutate(&cfg)
	}

	logger := &recordingLogger{}
	client, err := New(context.Background(), cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client, logger
}

func TestIntegration_RequestResponse(t *testing.T) {
	srv := startEmulator(t)
	client, logger := newEmulatorClient(t, srv, nil)

	actual, err := InvokeRequestResponse[string, string](context.Background(), client, "abcde")
	require.NoError(t, err)
	require.NotNil(t, actual)
	assert.Equal(t, "ABCDE", *actual)

	require.Len(t, logger.infos, 1)
	assert.Equal(t, "Response from Lambda:\n\"ABCDE\"", logger.infos[0])
	assert.Empty(t, logger.warns)
	assert.Empty(t, logger.errs)
	assert.Empty(t, logger.debug)
}

func TestIntegration_DebugMode(t *testing.T) {
	srv := startEmulator(t)
	client, logger := newEmulatorClient(t, srv, func(c *Config) { c.DebugMode = true })

	_, err := InvokeRequestResponse[string, string](context.Background(), client, "abcde")
	require.NoError(t, err)

	require.Len(t, logger.debug, 1)
	assert.Contains(t, logger.debug[0], "Client config:")
	assert.Contains(t, logger.debug[0], `"ServiceURL": "`+srv.URL+`"`)
	assert.Contains(t, logger.debug[0], `"Region": "us-east-1"`)
}

func TestIntegration_InvalidStatusCode(t *testing.T) {
	srv := startEmulator(t)
	client, logger := newEmulatorClient(t, srv, func(c *Config) {
		c.InvokeRequestConfig.ExpectedStatusCode = intPtr(100)
	})

	_, err := InvokeRequestResponse[string, string](context.Background(), client, "abcde")
	require.NoError(t, err)

	require.Len(t, logger.warns, 1)
	assert.Equal(t, "Invalid Status Code. Actual: 200, Expected: 100", logger.warns[0])
	assert.Empty(t, logger.errs)
	assert.Empty(t, logger.debug)
}

func TestIntegration_TailLogs(t *testing.T) {
	srv := startEmulator(t)
	client, logger := newEmulatorClient(t, srv, func(c *Config) {
		c.InvokeRequestConfig.LogType = LogTypeTail
	})

	_, err := InvokeRequestResponse[string, string](context.Background(), client, "abcde")
	require.NoError(t, err)

	require.Len(t, logger.infos, 2)
	assert.Contains(t, logger.infos[0], "Logs from Lambda:\nSTART RequestId:")
	assert.Contains(t, logger.infos[0], "uppercase: 5 caracteres")
}

func TestIntegration_EventReturnsNoResponse(t *testing.T) {
	srv := startEmulator(t)
	client, logger := newEmulatorClient(t, srv, func(c *Config) {
		c.InvokeRequestConfig.InvocationType = InvocationTypeEvent
		c.InvokeRequestConfig.ExpectedStatusCode = intPtr(202)
	})

	actual, err := InvokeRequestResponse[string, string](context.Background(), client, "abcde")
	require.NoError(t, err)
	assert.Nil(t, actual)
	assert.Empty(t, logger.infos)
	assert.Empty(t, logger.warns)
}

func TestIntegration_FunctionError(t *testing.T) {
	srv := startEmulator(t)
	client, logger := newEmulatorClient(t, srv, func(c *Config) {
		c.InvokeRequestConfig.FunctionName = "Broken"
	})

	require.NoError(t, client.Invoke(context.Background()))
	require.Len(t, logger.errs, 1)
	assert.Equal(t, "Function error: Unhandled", logger.errs[0])
}

func TestIntegration_UnknownFunction(t *testing.T) {
	srv := startEmulator(t)
	client, logger := newEmulatorClient(t, srv, func(c *Config) {
		c.InvokeRequestConfig.FunctionName = "DoesNotExist"
	})

	_, err := InvokeRequestResponse[string, string](context.Background(), client, "abcde")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ResourceNotFoundException")
	assert.Empty(t, logger.infos)
	assert.Empty(t, logger.warns)
}
