package injector

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/raywall/fast-lambda-client/pkg/awsclient"
)

// Regex para capturar padrões ${tipo.chave}
// Ex: ${env.FUNCTION_NAME}, ${ssm./app/lambda/url}, ${secret.lambda_ctx}
var pattern = regexp.MustCompile(`\$\{(env|ssm|secret)\.([^}]+)\}`)

// Resolver busca o valor de uma chave em uma fonte externa (SSM, Secrets Manager).
type Resolver func(ctx context.Context, key string) (interface{}, error)

type Injector struct {
	ssm    Resolver
	secret Resolver
}

type Option func(*Injector)

// WithSSMResolver substitui a busca padrão no Parameter Store.
func WithSSMResolver(r Resolver) Option {
	return func(i *Injector) { i.ssm = r }
}

// WithSecretResolver substitui a busca padrão no Secrets Manager.
func WithSecretResolver(r Resolver) Option {
	return func(i *Injector) { i.secret = r }
}

func New(opts ...Option) *Injector {
	i := &Injector{
		ssm: func(ctx context.Context, key string) (interface{}, error) {
			return awsclient.GetParameter(ctx, os.Getenv("AWS_REGION"), key, true)
		},
		secret: func(ctx context.Context, key string) (interface{}, error) {
			return awsclient.GetSecret(ctx, os.Getenv("AWS_REGION"), key)
		},
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

func (i *Injector) Inject(ctx context.Context, target interface{}) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("target deve ser um ponteiro para struct não nulo")
	}
	return i.injectRecursive(ctx, v.Elem())
}

func (i *Injector) injectRecursive(ctx context.Context, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		for k := 0; k < t.NumField(); k++ {
			field := t.Field(k)
			value := v.Field(k)
			if !field.IsExported() {
				continue
			}

			// 1. Strings com interpolação "${...}"
			if value.Kind() == reflect.String && value.CanSet() {
				newValue, err := i.interpolateString(ctx, value.String())
				if err != nil {
					return fmt.Errorf("campo %s: %w", field.Name, err)
				}
				value.SetString(newValue)
				continue
			}

			// 2. Recursão
			if err := i.injectRecursive(ctx, value); err != nil {
				return err
			}
		}

	case reflect.Map:
		if !v.IsNil() && v.Type().Key().Kind() == reflect.String {
			return i.injectMap(ctx, v)
		}

	case reflect.Ptr:
		if !v.IsNil() {
			return i.injectRecursive(ctx, v.Elem())
		}

	case reflect.Slice:
		for j := 0; j < v.Len(); j++ {
			elem := v.Index(j)
			if elem.Kind() == reflect.String {
				newValue, err := i.interpolateString(ctx, elem.String())
				if err != nil {
					return err
				}
				elem.SetString(newValue)
				continue
			}
			if err := i.injectRecursive(ctx, elem); err != nil {
				return err
			}
		}
	}
	return nil
}

// interpolateString realiza a substituição baseada em Regex
func (i *Injector) interpolateString(ctx context.Context, input string) (string, error) {
	if !strings.Contains(input, "${") {
		return input, nil
	}

	var err error
	result := pattern.ReplaceAllStringFunc(input, func(match string) string {
		if err != nil {
			return match
		}
		// match é algo como "${env.VAR_NAME}"
		parts := strings.SplitN(match[2:len(match)-1], ".", 2)
		if len(parts) != 2 {
			return match
		}

		val, resolveErr := i.fetchValue(ctx, parts[0], parts[1])
		if resolveErr != nil {
			err = resolveErr
			return match
		}
		return fmt.Sprintf("%v", val)
	})

	return result, err
}

// injectMap lida com mapas de string (client_context, tags) e mapas dinâmicos
func (i *Injector) injectMap(ctx context.Context, v reflect.Value) error {
	iter := v.MapRange()
	updates := make(map[string]reflect.Value)

	for iter.Next() {
		elem := iter.Value()
		if elem.Kind() == reflect.Interface {
			elem = elem.Elem()
		}
		if !elem.IsValid() {
			continue
		}

		switch elem.Kind() {
		case reflect.String:
			newVal, err := i.interpolateString(ctx, elem.String())
			if err != nil {
				return fmt.Errorf("chave %s: %w", iter.Key().String(), err)
			}
			nv := reflect.ValueOf(newVal)
			if v.Type().Elem().Kind() == reflect.String {
				nv = nv.Convert(v.Type().Elem())
			}
			updates[iter.Key().String()] = nv
		case reflect.Map:
			if err := i.injectMap(ctx, elem); err != nil {
				return err
			}
		}
	}

	for k, val := range updates {
		v.SetMapIndex(reflect.ValueOf(k).Convert(v.Type().Key()), val)
	}
	return nil
}

// fetchValue centraliza a busca de dados
func (i *Injector) fetchValue(ctx context.Context, sourceType, key string) (interface{}, error) {
	switch sourceType {
	case "env":
		// Variável não encontrada vira string vazia
		return os.Getenv(key), nil
	case "ssm":
		return i.ssm(ctx, key)
	case "secret":
		return i.secret(ctx, key)
	}
	return nil, fmt.Errorf("fonte desconhecida: %s", sourceType)
}
