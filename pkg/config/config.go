package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	pkgtls "github.com/cloud-wave-best-zizon/backoffice-service/pkg/tls"
)

type Config struct {
	Port              string `envconfig:"PORT" default:"8080"`
	AWSRegion         string `envconfig:"AWS_REGION" default:"ap-northeast-2"`
	CustomerTableName string `envconfig:"CUSTOMER_TABLE_NAME" default:"customers"`
	ProductTableName  string `envconfig:"PRODUCT_TABLE_NAME" default:"products"`
	OrderTableName    string `envconfig:"ORDER_TABLE_NAME" default:"orders"`
	KafkaBrokers      string `envconfig:"KAFKA_BROKERS" default:""` // empty disables eventing
	LogLevel          string `envconfig:"LOG_LEVEL" default:"info"`
	LocalMode         bool   `envconfig:"LOCAL_MODE" default:"true"` // run against DynamoDB Local, no AWS account
	DynamoDBEndpoint  string `envconfig:"DYNAMODB_ENDPOINT" default:"http://localhost:8000"`

	// Every store call is bounded by this; a hung store surfaces as a
	// retryable failure instead of a stuck request.
	OperationTimeout time.Duration `envconfig:"OPERATION_TIMEOUT" default:"5s"`

	TLS pkgtls.TLSConfig
}

func Load() (*Config, error) {
	// .env next to the binary, same as the original deployment. Missing
	// file is fine.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
