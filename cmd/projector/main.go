package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/example/boho-storefront/internal/infrastructure/stream"
	"github.com/example/boho-storefront/internal/projection"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err == nil {
		log.Println("[Projector] Loaded configuration from .env")
	}

	// Configuration from environment variables
	kafkaBrokersStr := getEnv("KAFKA_BROKERS", "localhost:9092")
	kafkaBrokers := strings.Split(kafkaBrokersStr, ",")
	kafkaTopic := getEnv("KAFKA_TOPIC", "storefront-events")
	consumerGroup := getEnv("KAFKA_CONSUMER_GROUP", "projector")
	statsAddr := getEnv("STATS_ADDR", ":8081")

	log.Println("[Projector] ========================================")
	log.Println("[Projector] Casa Petrada - Activity Projector")
	log.Println("[Projector] ========================================")
	log.Printf("[Projector] Kafka: %v", kafkaBrokers)
	log.Printf("[Projector] Topic: %s", kafkaTopic)
	log.Printf("[Projector] Group: %s", consumerGroup)

	// Initialize projector
	projector := projection.NewProjector()

	// Initialize Kafka consumer
	consumer := stream.NewConsumer(kafkaBrokers, kafkaTopic, consumerGroup)
	defer consumer.Close()

	// Start consuming
	go func() {
		log.Println("[Projector] Starting event consumer...")
		log.Printf("[Projector] Listening to topic: %s", kafkaTopic)
		if err := consumer.Consume(ctx, projector.HandleEvent); err != nil {
			log.Printf("[Projector] Consumer error: %v", err)
		}
	}()

	// Expose the aggregated counters for dashboards
	mux := http.NewServeMux()
	mux.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(projector.Snapshot())
	})

	server := &http.Server{
		Addr:    statsAddr,
		Handler: mux,
	}

	go func() {
		log.Printf("[Projector] Stats endpoint on %s", statsAddr)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("[Projector] Stats server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[Projector] Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	server.Shutdown(shutdownCtx)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
