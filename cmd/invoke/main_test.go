package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/raywall/fast-lambda-client/envloader"
	"github.com/raywall/fast-lambda-client/invoker"
	emulator "github.com/raywall/fast-lambda-client/tools/emulator/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const clientYAML = `
version: "1.0"
client:
  use_anonymous_credentials: true
  lambda_config:
    service_url: "%s"
    max_attempts: 1
  invoke_request_config:
    function_name: "Uppercase"
    log_type: "Tail"
    expected_status_code: 200
logging:
  enabled: true
  level: "info"
  format: "json"
`

func setup(t *testing.T, env map[string]string) string {
	t.Helper()

	server := &emulator.ServerConfig{Functions: []emulator.FunctionConfig{
		{Name: "Uppercase", Handler: "uppercase"},
		{Name: "HelloFromLambdaFunction", Handler: "static", Response: map[string]string{"message": "hello world"}},
	}}
	srv := httptest.NewServer(server.Router())
	t.Cleanup(srv.Close)

	path := filepath.Join(t.TempDir(), "client.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf(clientYAML, srv.URL)), 0o600))

	original := lookupEnv
	lookupEnv = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	t.Cleanup(func() { lookupEnv = original })

	return path
}

func TestRun_RequestResponse(t *testing.T) {
	path := setup(t, nil)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-config", path, "-payload", `"hello"`}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "\"HELLO\"\n", stdout.String())
	assert.Contains(t, stderr.String(), `"correlation_id"`)
	assert.Contains(t, stderr.String(), "Logs from Lambda:")
	assert.NotContains(t, stderr.String(), "Invalid Status Code")
}

func TestRun_EnvOverrides(t *testing.T) {
	path := setup(t, map[string]string{
		"LAMBDA_FUNCTION_NAME":        "HelloFromLambdaFunction",
		"LAMBDA_EXPECTED_STATUS_CODE": "202",
	})

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-config", path}, &stdout, &stderr)
	require.NoError(t, err)

	assert.JSONEq(t, `{"message":"hello world"}`, stdout.String())
	assert.Contains(t, stderr.String(), "Invalid Status Code. Actual: 200, Expected: 202")
}

func TestRun_ConfigFromEnvironment(t *testing.T) {
	path := setup(t, nil)
	lookupEnv = func(key string) (string, bool) {
		if key == "LAMBDA_CLIENT_CONFIG" {
			return path, true
		}
		return "", false
	}

	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-payload", `"x"`}, &stdout, &bytes.Buffer{}))
	assert.Equal(t, "\"X\"\n", stdout.String())
}

func TestRun_Errors(t *testing.T) {
	path := setup(t, nil)

	t.Run("Payload inválido", func(t *testing.T) {
		err := run(context.Background(), []string{"-config", path, "-payload", "{nope"}, &bytes.Buffer{}, &bytes.Buffer{})
		assert.EqualError(t, err, "payload não é um JSON válido")
	})

	t.Run("Config inexistente", func(t *testing.T) {
		err := run(context.Background(), []string{"-config", filepath.Join(t.TempDir(), "x.yaml")}, &bytes.Buffer{}, &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("Flag desconhecida", func(t *testing.T) {
		err := run(context.Background(), []string{"-nope"}, &bytes.Buffer{}, &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("Override fora do intervalo", func(t *testing.T) {
		lookupEnv = func(key string) (string, bool) {
			if key == "LAMBDA_EXPECTED_STATUS_CODE" {
				return "42", true
			}
			return "", false
		}
		var stdout bytes.Buffer
		err := run(context.Background(), []string{"-config", path, "-payload", `"x"`}, &stdout, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ExpectedStatusCode")
		assert.Contains(t, err.Error(), "gte")
		assert.Empty(t, stdout.String(), "a função não deve ser invocada")
	})

	t.Run("Override de URL inválida", func(t *testing.T) {
		lookupEnv = func(key string) (string, bool) {
			if key == "LAMBDA_SERVICE_URL" {
				return "not a url", true
			}
			return "", false
		}
		err := run(context.Background(), []string{"-config", path}, &bytes.Buffer{}, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ServiceURL")
	})

	t.Run("Override inválido", func(t *testing.T) {
		lookupEnv = func(key string) (string, bool) {
			if key == "LAMBDA_TIMEOUT" {
				return "logo", true
			}
			return "", false
		}
		err := run(context.Background(), []string{"-config", path}, &bytes.Buffer{}, &bytes.Buffer{})
		var fieldErr *envloader.FieldError
		assert.ErrorAs(t, err, &fieldErr)
	})
}

func TestApplyOverrides(t *testing.T) {
	expected := 201
	debug := true
	cfg := invoker.Config{InvokeRequestConfig: &invoker.InvokeRequestConfig{FunctionName: "A"}}

	applyOverrides(&cfg, overrides{
		FunctionName:       "B",
		ServiceURL:         "http://127.0.0.1:3001",
		ExpectedStatusCode: &expected,
		Debug:              &debug,
		Timeout:            1500000000,
	})

	assert.Equal(t, "B", cfg.InvokeRequestConfig.FunctionName)
	assert.Equal(t, 201, *cfg.InvokeRequestConfig.ExpectedStatusCode)
	assert.True(t, cfg.DebugMode)
	require.NotNil(t, cfg.LambdaConfig)
	assert.Equal(t, "http://127.0.0.1:3001", cfg.LambdaConfig.ServiceURL)
	assert.Equal(t, "1.5s", cfg.LambdaConfig.Timeout)

	untouched := invoker.Config{InvokeRequestConfig: &invoker.InvokeRequestConfig{FunctionName: "A"}}
	applyOverrides(&untouched, overrides{})
	assert.Nil(t, untouched.LambdaConfig)
	assert.Equal(t, "A", untouched.InvokeRequestConfig.FunctionName)
}
