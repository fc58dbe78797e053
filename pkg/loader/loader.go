package loader

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/raywall/fast-lambda-client/pkg/awsclient"
	localConfig "github.com/raywall/fast-lambda-client/pkg/config"
	"github.com/raywall/fast-lambda-client/pkg/config/injector"
	"gopkg.in/yaml.v3"
)

// Load é o atalho usado pelo CLI: cria um UniversalLoader e carrega a fonte.
func Load(ctx context.Context, source string) (*localConfig.FileConfig, error) {
	return NewUniversalLoader().Load(ctx, source)
}

// --- Interfaces para Mocking ---

type S3Downloader interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type DynamoGetter interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// UniversalLoader lê a configuração do cliente de um arquivo local, S3 ou DynamoDB.
type UniversalLoader struct {
	validator *localConfig.ConfigValidator
	injector  *injector.Injector
	region    string
}

type Option func(*UniversalLoader)

// WithInjector troca o injector padrão (útil para resolver ssm/secret sem AWS).
func WithInjector(inj *injector.Injector) Option {
	return func(ul *UniversalLoader) { ul.injector = inj }
}

// WithRegion define a região usada pelos clients de S3 e DynamoDB.
func WithRegion(region string) Option {
	return func(ul *UniversalLoader) { ul.region = region }
}

func NewUniversalLoader(opts ...Option) *UniversalLoader {
	ul := &UniversalLoader{
		validator: localConfig.NewValidator(),
		injector:  injector.New(),
		region:    os.Getenv("AWS_REGION"),
	}
	for _, opt := range opts {
		opt(ul)
	}
	return ul
}

// Load detecta o esquema da fonte e carrega a configuração.
func (ul *UniversalLoader) Load(ctx context.Context, source string) (*localConfig.FileConfig, error) {
	var rawData []byte
	var err error

	switch {
	case strings.HasPrefix(source, "s3://"):
		cfg, cfgErr := awsclient.GetAWSConfig(ctx, ul.region)
		if cfgErr != nil {
			return nil, fmt.Errorf("falha ao carregar config AWS: %w", cfgErr)
		}
		rawData, err = ul.loadFromS3Internal(ctx, s3.NewFromConfig(cfg), source)

	case strings.HasPrefix(source, "dynamodb://"):
		cfg, cfgErr := awsclient.GetAWSConfig(ctx, ul.region)
		if cfgErr != nil {
			return nil, fmt.Errorf("falha ao carregar config AWS: %w", cfgErr)
		}
		rawData, err = ul.loadFromDynamoDBInternal(ctx, dynamodb.NewFromConfig(cfg), source)

	default:
		rawData, err = ul.loadFromFile(source)
	}

	if err != nil {
		return nil, fmt.Errorf("falha leitura config (%s): %w", source, err)
	}

	return ul.Parse(ctx, rawData)
}

func (ul *UniversalLoader) loadFromFile(path string) ([]byte, error) {
	// Aceita "file://client.yaml" e "client.yaml"
	return os.ReadFile(strings.TrimPrefix(path, "file://"))
}

func (ul *UniversalLoader) loadFromS3Internal(ctx context.Context, client S3Downloader, uri string) ([]byte, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("URL S3 inválida: %w", err)
	}
	bucket := u.Host
	key := strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return nil, fmt.Errorf("URL S3 deve ter bucket e chave: %s", uri)
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

func (ul *UniversalLoader) loadFromDynamoDBInternal(ctx context.Context, client DynamoGetter, uri string) ([]byte, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("URL DynamoDB inválida: %w", err)
	}

	tableName := u.Host
	pkValue := strings.TrimPrefix(u.Path, "/")

	// Query params opcionais: dynamodb://tabela/chave?col=dado&pk=ClientId
	colName := u.Query().Get("col")
	if colName == "" {
		colName = "config"
	}

	pkName := u.Query().Get("pk")
	if pkName == "" {
		pkName = "id"
	}

	out, err := client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &tableName,
		Key: map[string]types.AttributeValue{
			pkName: &types.AttributeValueMemberS{Value: pkValue},
		},
	})
	if err != nil {
		return nil, err
	}

	if out.Item == nil {
		return nil, fmt.Errorf("item não encontrado no DynamoDB")
	}

	var itemMap map[string]interface{}
	if err := attributevalue.UnmarshalMap(out.Item, &itemMap); err != nil {
		return nil, err
	}

	content, ok := itemMap[colName].(string)
	if !ok {
		return nil, fmt.Errorf("coluna '%s' inválida ou vazia no DynamoDB", colName)
	}

	return []byte(content), nil
}

// Parse faz unmarshal do YAML, resolve ${env/ssm/secret} e valida.
func (ul *UniversalLoader) Parse(ctx context.Context, data []byte) (*localConfig.FileConfig, error) {
	var cfg localConfig.FileConfig

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("YAML malformado: %w", err)
	}

	if ul.injector != nil {
		if err := ul.injector.Inject(ctx, &cfg); err != nil {
			return nil, fmt.Errorf("falha na injeção de variáveis: %w", err)
		}
	}

	if ul.validator != nil {
		if err := ul.validator.Validate(&cfg); err != nil {
			return nil, fmt.Errorf("validação da configuração falhou: %w", err)
		}
	}

	return &cfg, nil
}
