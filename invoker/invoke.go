package invoker

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/raywall/fast-lambda-client/pkg/serializer"
)

// InvokeRequestResponse envia request e desserializa a resposta em TResp.
// Payload vazio (ex: invocação Event) retorna nil sem erro.
func InvokeRequestResponse[TReq, TResp any](ctx context.Context, c *Client, request TReq) (*TResp, error) {
	input, err := CreateInvokeRequestWithPayload(request, *c.config.InvokeRequestConfig)
	if err != nil {
		return nil, err
	}

	output, err := c.InvokeLambda(ctx, input)
	if err != nil {
		return nil, err
	}
	return responseFromPayload[TResp](c, output)
}

// InvokeRequest envia request e descarta a resposta.
func InvokeRequest[TReq any](ctx context.Context, c *Client, request TReq) error {
	input, err := CreateInvokeRequestWithPayload(request, *c.config.InvokeRequestConfig)
	if err != nil {
		return err
	}

	_, err = c.InvokeLambda(ctx, input)
	return err
}

// InvokeResponse invoca sem payload e desserializa a resposta em TResp.
func InvokeResponse[TResp any](ctx context.Context, c *Client) (*TResp, error) {
	output, err := c.InvokeLambda(ctx, CreateInvokeRequest(*c.config.InvokeRequestConfig))
	if err != nil {
		return nil, err
	}
	return responseFromPayload[TResp](c, output)
}

// Invoke invoca sem payload e descarta a resposta.
func (c *Client) Invoke(ctx context.Context) error {
	_, err := c.InvokeLambda(ctx, CreateInvokeRequest(*c.config.InvokeRequestConfig))
	return err
}

func responseFromPayload[TResp any](c *Client, output *lambda.InvokeOutput) (*TResp, error) {
	if len(output.Payload) == 0 {
		return nil, nil
	}

	body := string(output.Payload)
	c.logger.Info("Response from Lambda:\n" + body)

	resp, err := serializer.Deserialize[TResp](body)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
