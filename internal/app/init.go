package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/Tamjid17/TGBot/internal/brokers/kafka"
	"github.com/Tamjid17/TGBot/internal/configs"
	"github.com/Tamjid17/TGBot/internal/pipeline"
	"github.com/Tamjid17/TGBot/internal/repository/cache"
	"github.com/Tamjid17/TGBot/internal/repository/database"
	"github.com/Tamjid17/TGBot/internal/server"
	"github.com/Tamjid17/TGBot/internal/service"
	"github.com/Tamjid17/TGBot/internal/transport"
	"github.com/Tamjid17/TGBot/internal/transport/rabbitmq"
	"github.com/Tamjid17/TGBot/internal/transport/telegram"
	"github.com/Tamjid17/TGBot/internal/transport/webhook"
)

type PhotoBotApplication struct {
	config configs.Config
	server *server.Server
}

func NewPhotoBotApplication(config configs.Config) *PhotoBotApplication {
	return &PhotoBotApplication{config: config}
}

func (a *PhotoBotApplication) Start() error {
	defer func() {
		buf := make([]byte, 1<<20)
		n := runtime.Stack(buf, true)
		log.Printf("[DEBUG] [Photo-Bot] Count of active goroutines: %v", runtime.NumGoroutine())
		log.Printf("[DEBUG] [Photo-Bot] Active goroutines:\n%s", buf[:n])
	}()
	pg, err := database.NewPostgresConnection(a.config.Database)
	if err != nil {
		return err
	}
	defer pg.Close()
	redis, err := cache.NewRedisConnection(a.config.Redis)
	if err != nil {
		return err
	}
	defer redis.Close()
	kafkaProducer := kafka.NewKafkaProducer(a.config.Kafka)
	defer kafkaProducer.Close()
	defer kafkaProducer.LogClose()
	photoDatabase := database.NewPhotoDatabase(pg)
	photoCache := cache.NewPhotoCache(redis)
	photoService := service.NewPhotoServiceImplement(photoDatabase, photoCache, kafkaProducer)
	defer photoService.Stop()
	eventPipeline := pipeline.NewPipeline(photoService, kafkaProducer, a.config.Bot)

	var consumer transport.Consumer
	var webhookHandler http.Handler
	switch a.config.Transport.Mode {
	case configs.TransportPolling:
		client := telegram.NewClient(a.config.Bot)
		consumer = telegram.NewPoller(a.config.Transport, client, eventPipeline, kafkaProducer)
	case configs.TransportWebhook:
		client := telegram.NewClient(a.config.Bot)
		webhookHandler = webhook.NewHandler(eventPipeline, client, kafkaProducer)
	case configs.TransportAMQP:
		rabbitConsumer, err := rabbitmq.NewRabbitConsumer(a.config.RabbitMQ, eventPipeline, kafkaProducer)
		if err != nil {
			return err
		}
		consumer = rabbitConsumer
	default:
		return fmt.Errorf("unknown transport mode: %q", a.config.Transport.Mode)
	}

	router := server.NewRouter(pg, redis)
	a.server = server.NewServer(a.config.Server, router.Build(a.config.Transport, webhookHandler))
	kafkaProducer.LogStart()

	serverError := make(chan error, 1)
	go func() {
		if err := a.server.Run(); err != nil && err != http.ErrServerClosed {
			serverError <- err
		}
		close(serverError)
	}()
	consumerError := make(chan error, 1)
	if consumer != nil {
		defer consumer.Close()
		go func() {
			if err := consumer.Run(); err != nil {
				consumerError <- err
			}
			close(consumerError)
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-quit:
		log.Printf("[DEBUG] [Photo-Bot] Server shutting down with signal: %v", sig)
	case err := <-serverError:
		log.Printf("[DEBUG] [Photo-Bot] Server startup failed: %v", err)
		return err
	case err := <-consumerError:
		log.Printf("[DEBUG] [Photo-Bot] Consumer stopped: %v", err)
		if shutdownErr := a.Stop(); shutdownErr != nil {
			return shutdownErr
		}
		return err
	}

	return a.Stop()
}

func (a *PhotoBotApplication) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.GracefulShutdown)
	defer cancel()
	log.Println("[DEBUG] [Photo-Bot] Server is shutting down...")
	if err := a.server.Shutdown(ctx); err != nil {
		log.Printf("[DEBUG] [Photo-Bot] Server shutdown error: %v", err)
		return err
	}
	log.Println("[DEBUG] [Photo-Bot] Server has shutted down successfully")
	return nil
}
