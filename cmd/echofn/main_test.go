package main

import (
	"context"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_RegistersUppercaseHandler(t *testing.T) {
	var registered interface{}
	original := lambdaStarter
	lambdaStarter = func(handler interface{}) { registered = handler }
	defer func() { lambdaStarter = original }()

	run("error")

	handler, ok := registered.(func(context.Context, string) (string, error))
	require.True(t, ok, "handler registrado com assinatura inesperada: %T", registered)

	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "req-1"})
	out, err := handler(ctx, "hello world")
	require.NoError(t, err)
	assert.Equal(t, "HELLO WORLD", out)
}
