// Package fast_lambda_client reúne um cliente enxuto para a API Invoke do AWS
// Lambda e as ferramentas de apoio para usá-lo em serviços e em desenvolvimento
// local.
//
// Visão Geral:
// O cliente monta a requisição, delega a chamada ao aws-sdk-go-v2, confere o
// status code retornado, decodifica e registra o log da execução (LogType Tail)
// e desserializa o payload de resposta. Transporte, retries e credenciais
// continuam sob responsabilidade do SDK.
//
// Sub-Pacotes Principais:
//
// 1. invoker:
//   - Client com credenciais anônimas (emulador) ou cadeia padrão da AWS.
//   - Variantes genéricas: InvokeRequestResponse, InvokeRequest, InvokeResponse e Invoke.
//   - Interface Logger (Info, Warn, Error, Debug) e métricas opcionais.
//
// 2. pkg/config, pkg/loader e envloader:
//   - Configuração em YAML (arquivo, s3:// ou dynamodb://), com ${env.*},
//     ${ssm.*} e ${secret.*} resolvidos antes da validação.
//   - Overrides por variáveis de ambiente.
//
// 3. tools/emulator:
//   - Servidor local na rota da API Invoke, com handlers embutidos.
//
// Exemplo de Início Rápido:
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//		"log"
//
//		"github.com/raywall/fast-lambda-client/invoker"
//	)
//
//	func main() {
//		client, err := invoker.New(context.Background(), invoker.Config{
//			UseAnonymousCredentials: true,
//			LambdaConfig:            &invoker.LambdaConfig{ServiceURL: "http://127.0.0.1:3001"},
//			InvokeRequestConfig:     &invoker.InvokeRequestConfig{FunctionName: "Uppercase"},
//		}, invoker.NopLogger{})
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer client.Close()
//
//		out, err := invoker.InvokeRequestResponse[string, string](context.Background(), client, "hello")
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println(*out) // HELLO
//	}
package fast_lambda_client
