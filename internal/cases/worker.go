package cases

import (
	"context"
	"log"
	"time"
)

const (
	warrantTTLHours   = 72
	expirySweepPeriod = 15 * time.Minute
)

// StartExpiryWorker sweeps pending warrants in the background and
// expires the ones older than the TTL. It stops when ctx is cancelled.
func StartExpiryWorker(ctx context.Context, service *Service) {
	go func() {
		log.Println("warrant expiry worker started")

		ticker := time.NewTicker(expirySweepPeriod)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Println("warrant expiry worker stopped")
				return
			case <-ticker.C:
				n, err := service.ExpireStaleWarrants(ctx, warrantTTLHours)
				if err != nil {
					log.Printf("warrant expiry sweep failed: %v", err)
					continue
				}
				if n > 0 {
					log.Printf("expired %d stale warrants", n)
				}
			}
		}
	}()
}
