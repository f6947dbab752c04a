package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Bot       BotConfig       `mapstructure:"bot"`
	Transport TransportConfig `mapstructure:"transport"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RabbitMQ  RabbitMQConfig  `mapstructure:"rabbitmq"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
}

type ServerConfig struct {
	Port             string        `mapstructure:"port"`
	ReadTimeout      time.Duration `mapstructure:"read_timeout"`
	WriteTimeout     time.Duration `mapstructure:"write_timeout"`
	MaxHeaderBytes   int           `mapstructure:"max_header_bytes"`
	GracefulShutdown time.Duration `mapstructure:"graceful_shutdown"`
}

type BotConfig struct {
	Token         string `mapstructure:"token"`
	APIBase       string `mapstructure:"api_base"`
	UsageHint     bool   `mapstructure:"usage_hint"`
	UsageHintText string `mapstructure:"usage_hint_text"`
}

type TransportConfig struct {
	Mode        string        `mapstructure:"mode"`
	Workers     int           `mapstructure:"workers"`
	PollTimeout time.Duration `mapstructure:"poll_timeout"`
	SkipUpdates bool          `mapstructure:"skip_updates"`
	WebhookPath string        `mapstructure:"webhook_path"`
}

type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type RabbitMQConfig struct {
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"`
	Name          string `mapstructure:"name"`
	Password      string `mapstructure:"password"`
	Queue         string `mapstructure:"queue"`
	Exchange      string `mapstructure:"exchange"`
	ReplyExchange string `mapstructure:"reply_exchange"`
	ConsumerTag   string `mapstructure:"consumer_tag"`
}

type KafkaConfig struct {
	BootstrapServers string `mapstructure:"bootstrap_servers"`
	RetryBackoffMs   int    `mapstructure:"retry_backoff_ms"`
	BatchSize        int    `mapstructure:"batch_size"`
	Acks             string `mapstructure:"acks"`
}

const TransportPolling = "polling"
const TransportWebhook = "webhook"
const TransportAMQP = "amqp"

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[DEBUG] [Photo-Bot] No .env file found; using environment as-is")
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("internal/configs")
	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("[DEBUG] [Photo-Bot] Config file not found; using defaults or environment variables")
		} else {
			log.Fatalf("[DEBUG] [Photo-Bot] Error reading config file: %s", err)
		}
	}
	var config Config
	err = viper.Unmarshal(&config)
	if err != nil {
		log.Fatalf("[DEBUG] [Photo-Bot] Unable to decode into struct, %v", err)
	}
	if token := os.Getenv("BOT_TOKEN"); token != "" {
		config.Bot.Token = token
	}
	if config.Bot.Token == "" {
		log.Fatal("[DEBUG] [Photo-Bot] Missing BOT_TOKEN. Check your .env file")
	}
	docker_flag := os.Getenv("DOCKER")
	if docker_flag == "TRUE" {
		LoadDockerConfig(&config)
		log.Println("[DEBUG] [Photo-Bot] Successful Load Config (docker)")
		return config
	}
	log.Println("[DEBUG] [Photo-Bot] Successful Load Config (localhost)")
	return config
}

func LoadDockerConfig(config *Config) {
	redis := os.Getenv("REDIS_HOST")
	kafka := os.Getenv("KAFKA_BOOTSTRAP_SERVERS")
	rabbit := os.Getenv("RABBITMQ_HOST")
	db := os.Getenv("DB_HOST")
	config.Redis.Host = redis
	config.Kafka.BootstrapServers = kafka
	config.RabbitMQ.Host = rabbit
	config.Database.Host = db
}
