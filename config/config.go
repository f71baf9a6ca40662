package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
)

const (
	DocstoreDriverPostgres  = "postgres"
	DocstoreDriverFirestore = "firestore"
)

type (
	APP struct {
		Name      string
		Host      string
		Port      string
		Env       string
		JWTSecret string
	}
	DB struct {
		User         string
		Password     string
		Name         string
		Host         string
		Port         string
		PoolMaxConns int32
	}
	Docstore struct {
		Driver             string
		FirestoreProjectID string
	}
	GCS struct {
		BucketImages string
	}
	MQ struct {
		User         string
		Password     string
		Vhost        string
		Host         string
		AmqpPort     string
		Exchange     string
		ExchangeType string
		QueueName    string
	}

	Config struct {
		App      APP
		DB       DB
		Docstore Docstore
		GCS      GCS
		MQ       MQ
	}
)

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt32(key string, def int32) int32 {
	v, err := strconv.ParseInt(getEnv(key, ""), 10, 32)
	if err != nil {
		return def
	}
	return int32(v)
}

func Load() Config {
	app := APP{
		Name:      getEnv("SERVICE_NAME", ""),
		Host:      getEnv("SERVICE_HOST", ""),
		Port:      getEnv("SERVICE_PORT", ""),
		Env:       getEnv("SERVICE_ENV", ""),
		JWTSecret: getEnv("SERVICE_JWT_SECRET", ""),
	}
	db := DB{
		User:         getEnv("POSTGRES_USER", ""),
		Password:     getEnv("POSTGRES_PASSWORD", ""),
		Name:         getEnv("POSTGRES_DB", ""),
		Host:         getEnv("POSTGRES_HOST", ""),
		Port:         getEnv("POSTGRES_PORT", ""),
		PoolMaxConns: getEnvInt32("POSTGRES_POOL_MAX_CONNS", 0),
	}
	ds := Docstore{
		Driver:             getEnv("DOCSTORE_DRIVER", DocstoreDriverPostgres),
		FirestoreProjectID: getEnv("FIRESTORE_PROJECT_ID", ""),
	}
	gcs := GCS{
		BucketImages: getEnv("GCS_BUCKET_IMAGES", ""),
	}
	mq := MQ{
		User:         getEnv("RABBITMQ_USER", ""),
		Password:     getEnv("RABBITMQ_PASSWORD", ""),
		Vhost:        getEnv("RABBITMQ_VHOST", ""),
		Host:         getEnv("RABBITMQ_HOST", ""),
		AmqpPort:     getEnv("RABBITMQ_AMQP_PORT", ""),
		Exchange:     getEnv("RABBITMQ_EXCHANGE", ""),
		ExchangeType: getEnv("RABBITMQ_EXCHANGE_TYPE", ""),
		QueueName:    getEnv("RABBITMQ_QUEUE_NAME", ""),
	}

	return Config{
		App:      app,
		DB:       db,
		Docstore: ds,
		GCS:      gcs,
		MQ:       mq,
	}
}

func (c Config) DBDSN() (string, error) {
	if c.DB.User == "" || c.DB.Name == "" || c.DB.Host == "" || c.DB.Port == "" {
		return "", fmt.Errorf("incomplete DB config")
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.Name,
	), nil
}

func (c Config) AMQPDSN() (string, error) {
	if c.MQ.User == "" || c.MQ.Host == "" || c.MQ.AmqpPort == "" {
		return "", fmt.Errorf("invalid MQ config: user, host and amqp port are required")
	}

	return fmt.Sprintf(
		"%s://%s@%s:%s/%s",
		"amqp",
		url.UserPassword(c.MQ.User, c.MQ.Password).String(),
		c.MQ.Host,
		c.MQ.AmqpPort,
		url.PathEscape(c.MQ.Vhost),
	), nil
}
