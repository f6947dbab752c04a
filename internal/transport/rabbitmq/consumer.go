package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/Tamjid17/TGBot/internal/brokers/kafka"
	"github.com/Tamjid17/TGBot/internal/configs"
	"github.com/Tamjid17/TGBot/internal/model"
	"github.com/Tamjid17/TGBot/internal/transport"
	"github.com/streadway/amqp"
)

// RabbitConsumer is the queue-fed transport: an upstream gateway
// republishes platform updates onto an exchange and this consumer
// drains them into the pipeline. Replies are published back to a
// reply exchange keyed by chat.
type RabbitConsumer struct {
	conn        *amqp.Connection
	channel     *amqp.Channel
	queue       amqp.Queue
	config      configs.RabbitMQConfig
	handler     transport.EventHandler
	logproducer kafka.KafkaProducerService
	ctx         context.Context
	cancel      context.CancelFunc
	wg          *sync.WaitGroup
}

func NewRabbitConsumer(config configs.RabbitMQConfig, handler transport.EventHandler, logproducer kafka.KafkaProducerService) (*RabbitConsumer, error) {
	connString := fmt.Sprintf("amqp://%s:%s@%s:%s/", config.Name, config.Password, config.Host, strconv.Itoa(config.Port))
	conn, err := amqp.Dial(connString)
	if err != nil {
		log.Printf("[DEBUG] [Photo-Bot] Failed to connect to Rabbit-Consumer: %v", err)
		return nil, err
	}
	channel, err := conn.Channel()
	if err != nil {
		log.Printf("[DEBUG] [Photo-Bot] Failed to open a channel to Rabbit-Consumer: %v", err)
		conn.Close()
		return nil, err
	}
	err = channel.ExchangeDeclare(config.Exchange, "topic", true, false, false, false, nil)
	if err != nil {
		log.Printf("[DEBUG] [Photo-Bot] Failed to declare an exchange to Rabbit-Consumer: %v", err)
		conn.Close()
		return nil, err
	}
	err = channel.ExchangeDeclare(config.ReplyExchange, "topic", true, false, false, false, nil)
	if err != nil {
		log.Printf("[DEBUG] [Photo-Bot] Failed to declare a reply exchange to Rabbit-Consumer: %v", err)
		conn.Close()
		return nil, err
	}
	queue, err := channel.QueueDeclare(config.Queue, true, false, false, false, nil)
	if err != nil {
		log.Printf("[DEBUG] [Photo-Bot] Failed to declare a queue to Rabbit-Consumer: %v", err)
		conn.Close()
		return nil, err
	}
	err = channel.QueueBind(queue.Name, "update.#", config.Exchange, false, nil)
	if err != nil {
		log.Printf("[DEBUG] [Photo-Bot] Failed to bind a queue to Rabbit-Consumer: %v", err)
		conn.Close()
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	log.Println("[DEBUG] [Photo-Bot] Successful connect to Rabbit-Consumer")
	return &RabbitConsumer{
		conn:        conn,
		channel:     channel,
		queue:       queue,
		config:      config,
		handler:     handler,
		logproducer: logproducer,
		ctx:         ctx,
		cancel:      cancel,
		wg:          &sync.WaitGroup{},
	}, nil
}

func (rc *RabbitConsumer) Run() error {
	const place = "RabbitConsumer-Run"
	msgs, err := rc.channel.Consume(
		rc.queue.Name,
		rc.config.ConsumerTag,
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Printf("[DEBUG] [Photo-Bot] Failed to consume messages: %v", err)
		return err
	}
	rc.wg.Add(1)
	defer rc.wg.Done()
	for {
		select {
		case <-rc.ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				rc.logproducer.NewPhotoLog(kafka.LogLevelInfo, place, "", "Rabbit's channel closed, stopping worker")
				return nil
			}
			var update transport.Update
			err := json.Unmarshal(msg.Body, &update)
			if err != nil {
				rc.logproducer.NewPhotoLog(kafka.LogLevelError, place, "", fmt.Sprintf("Failed to unmarshal update: %v", err))
				msg.Nack(false, false)
				continue
			}
			handleCtx, cancel := context.WithTimeout(rc.ctx, 30*time.Second)
			replies := rc.handler.HandleEvent(handleCtx, transport.EventFromUpdate(update))
			for _, reply := range replies {
				if err := rc.publishReply(reply); err != nil {
					rc.logproducer.NewPhotoLog(kafka.LogLevelError, place, "", fmt.Sprintf("Failed to publish reply to chat %d: %v", reply.ChatID, err))
				}
			}
			cancel()
			err = msg.Ack(false)
			if err != nil {
				rc.logproducer.NewPhotoLog(kafka.LogLevelError, place, "", fmt.Sprintf("Failed to acknowledge message: %v", err))
			}
		}
	}
}

func (rc *RabbitConsumer) publishReply(reply model.Reply) error {
	body, err := json.Marshal(reply)
	if err != nil {
		return err
	}
	routingKey := fmt.Sprintf("reply.%d", reply.ChatID)
	return rc.channel.Publish(
		rc.config.ReplyExchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   time.Now(),
		},
	)
}

func (rc *RabbitConsumer) Close() {
	rc.cancel()
	rc.channel.Close()
	rc.wg.Wait()
	rc.conn.Close()
	log.Println("[DEBUG] [Photo-Bot] Successful close Rabbit-Consumer")
}
