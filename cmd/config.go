package main

import "time"

type Config struct {
	HTTPHost string `env:"HTTP_HOST,default=localhost"`
	HTTPPort int    `env:"HTTP_PORT,default=8080"`
	GrpcHost string `env:"GRPC_HOST,default=localhost"`
	GrpcPort int    `env:"GRPC_PORT,default=9090"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	JwtSecret      string `env:"JWT_SECRET,required=true"`

	MqttBroker     string        `env:"MQTT_BROKER,required=true"`
	MqttClientID   string        `env:"MQTT_CLIENT_ID,required=true"`
	MqttTopic      string        `env:"MQTT_TOPIC,required=true"`
	PublishTimeout time.Duration `env:"PUBLISH_TIMEOUT,default=5s"`

	LogLevel string `env:"LOG_LEVEL,default=info"`
}
