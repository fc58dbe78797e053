// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// Package invoker fornece um cliente fino sobre a API Invoke do AWS Lambda
// (aws-sdk-go-v2/service/lambda).
//
// Visão Geral:
// O `invoker` monta o InvokeInput a partir de uma configuração fixa, delega a
// chamada ao SDK, decodifica e registra os logs de execução retornados (LogResult),
// compara o status code com o esperado e desserializa o payload de resposta.
// Transporte, credenciais, retry e pooling de conexões pertencem ao SDK.
//
// Funcionalidades Principais:
//   - Credenciais anônimas (emuladores locais, SAM CLI) ou cadeia padrão da AWS.
//   - Variantes tipadas de invocação via genéricos (com/sem request, com/sem response).
//   - Status code divergente gera apenas um warning: a chamada não falha.
//   - Logger plugável (interface Logger) e métricas opcionais (WithMetrics).
//
// Exemplo de Uso:
//
//	expected := 200
//	cfg := invoker.Config{
//		UseAnonymousCredentials: true,
//		LambdaConfig: &invoker.LambdaConfig{ServiceURL: "http://127.0.0.1:3001"},
//		InvokeRequestConfig: &invoker.InvokeRequestConfig{
//			FunctionName:       "HelloFromLambdaFunction",
//			InvocationType:     invoker.InvocationTypeRequestResponse,
//			ExpectedStatusCode: &expected,
//		},
//	}
//
//	client, err := invoker.New(ctx, cfg, invoker.NopLogger{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	resp, err := invoker.InvokeRequestResponse[string, string](ctx, client, "abcde")
//	// *resp == "ABCDE"
package invoker
