package config

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/raywall/fast-lambda-client/tools/emulator/types"
	"github.com/rs/zerolog/log"
)

const (
	headerInvocationType  = "X-Amz-Invocation-Type"
	headerLogType         = "X-Amz-Log-Type"
	headerLogResult       = "X-Amz-Log-Result"
	headerFunctionError   = "X-Amz-Function-Error"
	headerExecutedVersion = "X-Amz-Executed-Version"
	headerRequestID       = "X-Amzn-RequestId"
	headerErrorType       = "X-Amzn-ErrorType"

	// O Lambda devolve apenas os últimos 4 KB do log.
	maxLogTail = 4 * 1024

	accountID = "000000000000"
	region    = "us-east-1"
)

// FunctionConfig descreve uma função emulada.
type FunctionConfig struct {
	Name         string      `json:"name"`
	Handler      string      `json:"handler"`                 // uppercase | echo | static | fail
	Response     interface{} `json:"response,omitempty"`      // Para handler "static"
	ErrorMessage string      `json:"error_message,omitempty"` // Para handler "fail"
	Logs         []string    `json:"logs,omitempty"`          // Linhas extras no log da execução

	// Func substitui o handler embutido (uso programático/testes).
	Func types.Handler `json:"-"`
}

func (fn FunctionConfig) resolveHandler() (types.Handler, error) {
	if fn.Func != nil {
		return fn.Func, nil
	}
	factory, ok := builtins[fn.Handler]
	if !ok {
		return nil, fmt.Errorf("handler desconhecido para a função %s: '%s'", fn.Name, fn.Handler)
	}
	return factory(fn), nil
}

// NewInvokeHandler atende POST /2015-03-31/functions/{name}/invocations.
func (s *ServerConfig) NewInvokeHandler() http.HandlerFunc {
	registry := make(map[string]FunctionConfig, len(s.Functions))
	for _, fn := range s.Functions {
		registry[fn.Name] = fn
	}

	return func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set(headerRequestID, requestID)

		name := functionName(mux.Vars(r)["name"])
		fn, ok := registry[name]
		if !ok {
			sendServiceError(w, http.StatusNotFound, "ResourceNotFoundException",
				fmt.Sprintf("Function not found: arn:aws:lambda:%s:%s:function:%s", region, accountID, name))
			return
		}

		handler, err := fn.resolveHandler()
		if err != nil {
			sendServiceError(w, http.StatusInternalServerError, "ServiceException", err.Error())
			return
		}

		invocationType := r.Header.Get(headerInvocationType)
		if invocationType == "" {
			invocationType = "RequestResponse"
		}

		switch invocationType {
		case "DryRun":
			w.WriteHeader(http.StatusNoContent)
			return
		case "RequestResponse", "Event":
		default:
			sendServiceError(w, http.StatusBadRequest, "InvalidParameterValueException",
				fmt.Sprintf("Unsupported invocation type: %s", invocationType))
			return
		}

		payload, err := io.ReadAll(r.Body)
		if err != nil {
			sendServiceError(w, http.StatusBadRequest, "InvalidRequestContentException", err.Error())
			return
		}

		// Eventos também são executados de forma síncrona: o chamador só não vê o resultado.
		var logs bytes.Buffer
		start := time.Now()
		fmt.Fprintf(&logs, "START RequestId: %s Version: $LATEST\n", requestID)
		for _, line := range fn.Logs {
			fmt.Fprintln(&logs, line)
		}
		out, handlerErr := handler(r.Context(), payload, &logs)
		writeEndReport(&logs, requestID, time.Since(start))

		log.Info().
			Str("function", name).
			Str("request_id", requestID).
			Str("invocation_type", invocationType).
			Bool("error", handlerErr != nil).
			Msg("invocação emulada")

		if invocationType == "Event" {
			w.WriteHeader(http.StatusAccepted)
			return
		}

		if r.Header.Get(headerLogType) == "Tail" {
			w.Header().Set(headerLogResult, encodeLogTail(logs.Bytes()))
		}
		w.Header().Set(headerExecutedVersion, "$LATEST")

		if handlerErr != nil {
			w.Header().Set(headerFunctionError, "Unhandled")
			out, _ = json.Marshal(types.FunctionError{
				ErrorMessage: handlerErr.Error(),
				ErrorType:    errorType(handlerErr),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if len(out) > 0 {
			if _, err := w.Write(out); err != nil {
				log.Error().Err(err).Msg("Erro ao escrever resposta")
			}
		}
	}
}

// functionName aceita nome simples, ARN completo ou parcial (com ou sem qualifier).
func functionName(raw string) string {
	if idx := strings.Index(raw, ":function:"); idx >= 0 {
		raw = raw[idx+len(":function:"):]
	}
	if idx := strings.Index(raw, ":"); idx >= 0 {
		raw = raw[:idx]
	}
	return raw
}

func writeEndReport(w io.Writer, requestID string, d time.Duration) {
	ms := float64(d.Microseconds()) / 1000
	fmt.Fprintf(w, "END RequestId: %s\n", requestID)
	fmt.Fprintf(w, "REPORT RequestId: %s\tDuration: %.2f ms\tBilled Duration: %.f ms\t\n", requestID, ms, math.Ceil(ms))
}

func encodeLogTail(logs []byte) string {
	if len(logs) > maxLogTail {
		logs = logs[len(logs)-maxLogTail:]
	}
	return base64.StdEncoding.EncodeToString(logs)
}

func errorType(err error) string {
	t := reflect.TypeOf(err)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

func sendServiceError(w http.ResponseWriter, status int, errType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(headerErrorType, errType)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(types.ServiceError{Type: "User", Message: message}); err != nil {
		log.Error().Err(err).Msg("Erro ao encode response")
	}
}
