package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ConfigValidator struct {
	validate *validator.Validate
}

// NewValidator cria uma nova instância do validador
func NewValidator() *ConfigValidator {
	return &ConfigValidator{
		validate: validator.New(),
	}
}

// Validate realiza validações estruturais (tags) e semânticas (lógica)
func (cv *ConfigValidator) Validate(cfg *FileConfig) error {
	// 1. Validação Estrutural (Tags do struct: required, oneof, etc)
	if err := cv.validate.Struct(cfg); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			var errMsgs []string
			for _, e := range validationErrors {
				errMsgs = append(errMsgs, fmt.Sprintf("Campo '%s' falhou na regra '%s'", e.Namespace(), e.Tag()))
			}
			return fmt.Errorf("erros de validação estrutural:\n- %s", strings.Join(errMsgs, "\n- "))
		}
		return fmt.Errorf("erro de validação estrutural: %w", err)
	}

	// 2. Validação Semântica (Regras de negócio da configuração)
	if err := cv.validateSemantics(cfg); err != nil {
		return fmt.Errorf("erro de validação semântica: %w", err)
	}

	return nil
}

func (cv *ConfigValidator) validateSemantics(cfg *FileConfig) error {
	client := cfg.Client
	lambdaCfg := client.LambdaConfig

	if lambdaCfg != nil {
		// 1. Timeout precisa ser uma duração válida
		if _, err := lambdaCfg.GetTimeout(); err != nil {
			return err
		}

		// 2. Profile é ignorado com credenciais anônimas
		if client.UseAnonymousCredentials && lambdaCfg.Profile != "" {
			return fmt.Errorf("'profile' não pode ser usado com 'use_anonymous_credentials'")
		}
	}

	// 3. Qualifier duplicado: ARN qualificado + campo qualifier
	invoke := client.InvokeRequestConfig
	if invoke != nil && invoke.Qualifier != "" && strings.Count(invoke.FunctionName, ":") == 7 {
		return fmt.Errorf("function_name já contém qualifier; remova 'qualifier'")
	}

	return nil
}
