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
// Package emulator fornece um servidor HTTP local que responde na rota da API
// Invoke do AWS Lambda, para desenvolvimento e testes de integração do cliente
// sem depender da conta AWS.
//
// O SDK (aws-sdk-go-v2/service/lambda) é apontado para o emulador via
// BaseEndpoint ("service_url" na configuração do cliente) com credenciais
// anônimas. O emulador atende:
//
//	POST /2015-03-31/functions/{name}/invocations
//
// e respeita os cabeçalhos usados pelo Lambda:
//   - X-Amz-Invocation-Type: RequestResponse (200), Event (202, sem corpo), DryRun (204).
//   - X-Amz-Log-Type: Tail devolve os últimos 4 KB do log em X-Amz-Log-Result (base64).
//   - X-Amz-Function-Error: Unhandled quando o handler falha; o corpo traz
//     errorMessage e errorType.
//   - Função desconhecida: 404 com X-Amzn-ErrorType ResourceNotFoundException.
//
// Estrutura de Configuração (JSON): um array de servidores, cada um com sua
// porta e suas funções. Handlers embutidos: uppercase, echo, static, fail.
//
//	[
//	  {
//	    "port": 3001,
//	    "functions": [
//	      { "name": "HelloFromLambdaFunction", "handler": "static",
//	        "response": { "message": "hello world" } },
//	      { "name": "Uppercase", "handler": "uppercase" },
//	      { "name": "Broken", "handler": "fail", "error_message": "boom" }
//	    ]
//	  }
//	]
//
// Uso programático (testes):
//
//	srv := config.ServerConfig{Functions: []config.FunctionConfig{{
//	    Name: "Sum",
//	    Func: func(ctx context.Context, payload []byte, logs io.Writer) ([]byte, error) {
//	        return []byte("42"), nil
//	    },
//	}}}
//	ts := httptest.NewServer(srv.Router())
//	defer ts.Close()
package emulator
