package invoker

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingParameter é a causa de todo MissingParameterError.
	ErrMissingParameter = errors.New("invoker: missing required parameter")

	// ErrClientClosed é retornado por invocações feitas após Close.
	ErrClientClosed = errors.New("invoker: client is closed")
)

// MissingParameterError é retornado pelo construtor quando um parâmetro
// obrigatório da configuração não foi informado.
type MissingParameterError struct {
	// Parameter é o nome do campo ausente (ex: "InvokeRequestConfig").
	Parameter string
}

// Error retorna uma mensagem identificando o campo ausente.
//
// Exemplo de Retorno: "invoker: value cannot be null (parameter 'InvokeRequestConfig')"
func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("invoker: value cannot be null (parameter '%s')", e.Parameter)
}

// Is permite errors.Is(err, ErrMissingParameter).
func (e *MissingParameterError) Is(target error) bool {
	return target == ErrMissingParameter
}
