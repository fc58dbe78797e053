package metrics

import (
	"fmt"
	"strconv"
	"time"
)

// Recorder traduz eventos de invocação em chamadas ao Provider.
// Um Recorder com provider nil não faz nada.
type Recorder struct {
	provider Provider
	baseTags []string
}

// NewRecorder cria um Recorder que marca todas as métricas com a função invocada.
func NewRecorder(provider Provider, functionName string) *Recorder {
	return &Recorder{
		provider: provider,
		baseTags: []string{"function:" + functionName},
	}
}

// RecordInvocation registra uma invocação concluída (contador + latência).
func (r *Recorder) RecordInvocation(statusCode int32, latency time.Duration) error {
	tags := r.tags("status:" + strconv.Itoa(int(statusCode)))
	if err := r.send(InvokeCount, 1, tags); err != nil {
		return err
	}
	return r.send(InvokeLatency, float64(latency.Milliseconds()), tags)
}

// RecordStatusMismatch registra um status code diferente do esperado.
func (r *Recorder) RecordStatusMismatch(actual, expected int) error {
	return r.send(InvokeStatusMismatch, 1, r.tags(
		"actual:"+strconv.Itoa(actual),
		"expected:"+strconv.Itoa(expected),
	))
}

// RecordError registra uma falha de transporte ou de função.
func (r *Recorder) RecordError(kind string) error {
	return r.send(InvokeError, 1, r.tags("kind:"+kind))
}

func (r *Recorder) tags(extra ...string) []string {
	if r == nil {
		return extra
	}
	out := make([]string, 0, len(r.baseTags)+len(extra))
	out = append(out, r.baseTags...)
	return append(out, extra...)
}

func (r *Recorder) send(def MetricDefinition, val float64, tags []string) error {
	if r == nil || r.provider == nil {
		return nil
	}

	switch def.Type {
	case TypeCount:
		return r.provider.Count(def.Name, val, tags)
	case TypeGauge:
		return r.provider.Gauge(def.Name, val, tags)
	case TypeHistogram:
		return r.provider.Histogram(def.Name, val, tags)
	default:
		return fmt.Errorf("tipo de métrica desconhecido: %s", def.Type)
	}
}
