package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lunchscan/internal/attendance"
	"lunchscan/internal/config"
	"lunchscan/internal/queue"
	"lunchscan/internal/store"
)

// Worker consumes scan events from the queue and writes the audit trail.
func main() {
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("shutdown signal received")
		cancel()
	}()

	db, err := store.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer db.Close()

	redisClient := store.NewRedis(cfg.RedisAddr)

	var q queue.Queue
	if cfg.QueueBackend == "memory" {
		q = queue.NewInMemory(64)
	} else {
		q = queue.NewRedisQueue(redisClient.Client, "lunchscan:scans")
	}

	repo := attendance.NewRepository(db.Client)

	messages, err := q.Consume(ctx)
	if err != nil {
		log.Fatalf("queue consume init failed: %v", err)
	}

	log.Println("worker started, waiting for scan events...")
	for msg := range messages {
		if msg.Type != "scan" {
			continue
		}

		rec, err := attendance.DecodeAudit(msg.Body)
		if err != nil {
			log.Printf("bad audit message: %v", err)
			continue
		}

		if err := repo.InsertAudit(ctx, rec); err != nil {
			log.Printf("audit insert for %s failed: %v", rec.EmpID, err)
			continue
		}
		log.Printf("audited %s -> %s", rec.EmpID, rec.Status)
	}

	log.Println("worker stopped")
}
