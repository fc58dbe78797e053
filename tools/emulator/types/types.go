package types

import (
	"context"
	"io"
)

// Handler executa uma invocação. O que for escrito em logs aparece no
// LogResult quando o cliente pede LogType=Tail.
type Handler func(ctx context.Context, payload []byte, logs io.Writer) ([]byte, error)

// FunctionError é o corpo retornado quando o handler falha
// (acompanhado do header X-Amz-Function-Error).
type FunctionError struct {
	ErrorMessage string `json:"errorMessage"`
	ErrorType    string `json:"errorType"`
}

// ServiceError é o corpo dos erros da própria API (ex: função inexistente).
type ServiceError struct {
	Type    string `json:"Type"`
	Message string `json:"message"`
}
