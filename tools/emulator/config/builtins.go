package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/raywall/fast-lambda-client/pkg/functions"
	"github.com/raywall/fast-lambda-client/tools/emulator/types"
)

// builtins mapeia o campo "handler" da configuração para a implementação.
var builtins = map[string]func(fn FunctionConfig) types.Handler{
	"uppercase": func(fn FunctionConfig) types.Handler {
		return func(ctx context.Context, payload []byte, logs io.Writer) ([]byte, error) {
			var input string
			if err := json.Unmarshal(payload, &input); err != nil {
				return nil, fmt.Errorf("payload deve ser uma string JSON: %w", err)
			}
			out, err := functions.Uppercase(ctx, input)
			if err != nil {
				return nil, err
			}
			fmt.Fprintf(logs, "uppercase: %d caracteres\n", len(input))
			return json.Marshal(out)
		}
	},
	"echo": func(fn FunctionConfig) types.Handler {
		return func(ctx context.Context, payload []byte, logs io.Writer) ([]byte, error) {
			return payload, nil
		}
	},
	"static": func(fn FunctionConfig) types.Handler {
		return func(ctx context.Context, payload []byte, logs io.Writer) ([]byte, error) {
			if fn.Response == nil {
				return nil, nil
			}
			return json.Marshal(fn.Response)
		}
	},
	"fail": func(fn FunctionConfig) types.Handler {
		return func(ctx context.Context, payload []byte, logs io.Writer) ([]byte, error) {
			msg := fn.ErrorMessage
			if msg == "" {
				msg = "function failed"
			}
			fmt.Fprintln(logs, msg)
			return nil, errors.New(msg)
		}
	},
}
