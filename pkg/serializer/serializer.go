package serializer

import (
	"encoding/json"
	"fmt"
)

const indent = "  "

// Serialize converte um valor para JSON indentado (2 espaços).
// É o mesmo formato usado no payload enviado ao Lambda e nos logs de debug.
func Serialize[T any](value T) (string, error) {
	data, err := json.MarshalIndent(value, "", indent)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar %T: %w", value, err)
	}
	return string(data), nil
}

// Deserialize converte um JSON para T.
// String vazia retorna o valor zero de T, sem erro.
func Deserialize[T any](data string) (T, error) {
	var result T
	if data == "" {
		return result, nil
	}
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return result, fmt.Errorf("erro ao desserializar para %T: %w", result, err)
	}
	return result, nil
}
