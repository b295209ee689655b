package config

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	BackendMemory   = "memory"
	BackendDynamoDB = "dynamodb"
	BackendRedis    = "redis"
)

// Config holds application configuration.
//
// Values come from the environment (a .env file is loaded by the entrypoint)
// with the defaults below.
type Config struct {
	Port     int
	LogLevel string
	Timezone string
	Currency string

	StoreBackend      string
	InvitationBackend string
	PaymentBackend    string
	KVNamespace       string

	KVTable          string
	InvitationsTable string
	PaymentsTable    string
	AWSRegion        string
	DynamoDBEndpoint string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
}

// Load reads the configuration.
func Load() Config {
	return load(viper.New())
}

func load(v *viper.Viper) Config {
	v.SetDefault("PORT", 8080)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("TIMEZONE", "")
	v.SetDefault("CURRENCY", "£")
	v.SetDefault("STORE_BACKEND", BackendMemory)
	v.SetDefault("INVITATION_BACKEND", BackendMemory)
	v.SetDefault("PAYMENT_BACKEND", BackendMemory)
	v.SetDefault("KV_NAMESPACE", "")
	v.SetDefault("KV_TABLE", "kv_store")
	v.SetDefault("INVITATIONS_TABLE", "team_invitations")
	v.SetDefault("PAYMENTS_TABLE", "payments")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("MERCADOPAGO_ACCESS_TOKEN", "")
	v.SetDefault("PAYMENT_GATEWAY_MOCK", false)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return Config{
		Port:                   v.GetInt("PORT"),
		LogLevel:               strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))),
		Timezone:               strings.TrimSpace(v.GetString("TIMEZONE")),
		Currency:               strings.TrimSpace(v.GetString("CURRENCY")),
		StoreBackend:           normalizeBackend(v.GetString("STORE_BACKEND")),
		InvitationBackend:      normalizeBackend(v.GetString("INVITATION_BACKEND")),
		PaymentBackend:         normalizeBackend(v.GetString("PAYMENT_BACKEND")),
		KVNamespace:            strings.TrimSpace(v.GetString("KV_NAMESPACE")),
		KVTable:                v.GetString("KV_TABLE"),
		InvitationsTable:       v.GetString("INVITATIONS_TABLE"),
		PaymentsTable:          v.GetString("PAYMENTS_TABLE"),
		AWSRegion:              v.GetString("AWS_REGION"),
		DynamoDBEndpoint:       strings.TrimSpace(v.GetString("DYNAMODB_ENDPOINT")),
		RedisAddr:              v.GetString("REDIS_ADDR"),
		RedisPassword:          v.GetString("REDIS_PASSWORD"),
		RedisDB:                v.GetInt("REDIS_DB"),
		MercadoPagoAccessToken: strings.TrimSpace(v.GetString("MERCADOPAGO_ACCESS_TOKEN")),
		PaymentGatewayMock:     v.GetBool("PAYMENT_GATEWAY_MOCK"),
	}
}

func normalizeBackend(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case BackendDynamoDB:
		return BackendDynamoDB
	case BackendRedis:
		return BackendRedis
	default:
		return BackendMemory
	}
}
