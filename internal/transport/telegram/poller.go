package telegram

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Tamjid17/TGBot/internal/brokers/kafka"
	"github.com/Tamjid17/TGBot/internal/configs"
	"github.com/Tamjid17/TGBot/internal/transport"
)

// Poller drains the platform's long-poll update feed and fans updates
// out to a bounded worker pool. Updates from one getUpdates batch are
// dispatched in order to the queue; the pool size bounds concurrency.
type Poller struct {
	client      *Client
	handler     transport.EventHandler
	logproducer kafka.KafkaProducerService
	workers     int
	pollTimeout time.Duration
	skipUpdates bool
	updates     chan transport.Update
	ctx         context.Context
	cancel      context.CancelFunc
	wg          *sync.WaitGroup
}

func NewPoller(cfg configs.TransportConfig, client *Client, handler transport.EventHandler, logproducer kafka.KafkaProducerService) *Poller {
	ctx, cancel := context.WithCancel(context.Background())
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	return &Poller{
		client:      client,
		handler:     handler,
		logproducer: logproducer,
		workers:     workers,
		pollTimeout: cfg.PollTimeout,
		skipUpdates: cfg.SkipUpdates,
		updates:     make(chan transport.Update, 100),
		ctx:         ctx,
		cancel:      cancel,
		wg:          &sync.WaitGroup{},
	}
}

func (p *Poller) Run() error {
	const place = "Poller-Run"
	var offset int64
	if p.skipUpdates {
		backlog, err := p.client.GetUpdates(p.ctx, -1, 0)
		if err != nil {
			log.Printf("[DEBUG] [Photo-Bot] Failed to skip pending updates: %v", err)
		} else if len(backlog) > 0 {
			offset = backlog[len(backlog)-1].UpdateID + 1
		}
	}
	for i := 1; i <= p.workers; i++ {
		p.wg.Add(1)
		go p.updateWorker(i)
	}
	log.Printf("[DEBUG] [Photo-Bot] Starting long-poll transport with %d workers", p.workers)
	for {
		select {
		case <-p.ctx.Done():
			return nil
		default:
		}
		batch, err := p.client.GetUpdates(p.ctx, offset, p.pollTimeout)
		if err != nil {
			if p.ctx.Err() != nil {
				return nil
			}
			p.logproducer.NewPhotoLog(kafka.LogLevelError, place, "", fmt.Sprintf("Failed to fetch updates: %v", err))
			time.Sleep(1 * time.Second)
			continue
		}
		for _, update := range batch {
			offset = update.UpdateID + 1
			select {
			case p.updates <- update:
			case <-p.ctx.Done():
				return nil
			}
		}
	}
}

func (p *Poller) updateWorker(i int) {
	const place = "Poller-UpdateWorker"
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case update, ok := <-p.updates:
			if !ok {
				log.Printf("[INFO] [Photo-Bot] [Worker: %v] Update channel closed, stopping worker", i)
				return
			}
			replies := p.handler.HandleEvent(p.ctx, transport.EventFromUpdate(update))
			for _, reply := range replies {
				sendCtx, cancel := context.WithTimeout(p.ctx, 10*time.Second)
				if err := p.client.SendReply(sendCtx, reply); err != nil {
					// The record is already durable; a lost reply is not rolled back.
					p.logproducer.NewPhotoLog(kafka.LogLevelError, place, "", fmt.Sprintf("Failed to deliver reply to chat %d: %v", reply.ChatID, err))
				}
				cancel()
			}
		}
	}
}

func (p *Poller) Close() {
	p.cancel()
	p.wg.Wait()
	log.Println("[DEBUG] [Photo-Bot] Successful close long-poll transport")
}
