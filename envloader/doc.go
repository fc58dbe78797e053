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
// Package envloader carrega variáveis de ambiente diretamente para campos de
// uma struct Go, usando as tags `env` (nome da variável) e `envDefault`
// (valor padrão).
//
// Tipos suportados: string, int*, uint*, bool, float*, time.Duration,
// []string (separado por vírgula) e ponteiros para esses tipos. Ponteiros só
// são alocados quando a variável (ou o default) tem valor, o que permite
// distinguir "não informado" de "zero". Structs aninhadas e ponteiros para
// structs são percorridos recursivamente.
//
// O CLI de invocação usa o pacote para sobrescrever a configuração carregada
// do YAML:
//
//	type Overrides struct {
//	    FunctionName       string        `env:"LAMBDA_FUNCTION_NAME"`
//	    ExpectedStatusCode *int          `env:"LAMBDA_EXPECTED_STATUS_CODE"`
//	    Timeout            time.Duration `env:"LAMBDA_TIMEOUT" envDefault:"30s"`
//	}
//
//	var o Overrides
//	if err := envloader.Load(&o); err != nil {
//	    log.Fatal(err)
//	}
//	if o.ExpectedStatusCode != nil {
//	    cfg.InvokeRequestConfig.ExpectedStatusCode = o.ExpectedStatusCode
//	}
//
// Para testes, LoadWithLookup aceita uma função de busca no lugar de os.LookupEnv.
package envloader
