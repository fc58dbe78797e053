package invoker

import (
	"encoding/base64"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/raywall/fast-lambda-client/pkg/serializer"
)

// clientContext segue o formato do ClientContext do Lambda; só "custom" é usado.
type clientContext struct {
	Custom map[string]string `json:"custom"`
}

// CreateInvokeRequest monta o InvokeInput sem payload.
func CreateInvokeRequest(cfg InvokeRequestConfig) *lambda.InvokeInput {
	input := &lambda.InvokeInput{
		FunctionName:   aws.String(cfg.FunctionName),
		InvocationType: types.InvocationType(cfg.InvocationType),
		LogType:        types.LogType(cfg.LogType),
	}

	if cfg.Qualifier != "" {
		input.Qualifier = aws.String(cfg.Qualifier)
	}

	if len(cfg.ClientContext) > 0 {
		// map[string]string sempre serializa
		data, _ := json.Marshal(clientContext{Custom: cfg.ClientContext})
		input.ClientContext = aws.String(base64.StdEncoding.EncodeToString(data))
	}

	return input
}

// CreateInvokeRequestWithPayload monta o InvokeInput com o payload serializado em JSON.
func CreateInvokeRequestWithPayload[TPayload any](payload TPayload, cfg InvokeRequestConfig) (*lambda.InvokeInput, error) {
	input := CreateInvokeRequest(cfg)

	body, err := serializer.Serialize(payload)
	if err != nil {
		return nil, err
	}
	input.Payload = []byte(body)

	return input, nil
}
