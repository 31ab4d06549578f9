package main

import (
	"context"
	"time"

	"github.com/MohcineSafi/Battle-Arena/internal/logging"
	"github.com/MohcineSafi/Battle-Arena/internal/service"
)

// startPacingScanner ticks the match scheduler until ctx is cancelled:
// matches begin after the prepare delay, enemy turns are played once their
// delay has passed and idle matches are dropped.
func startPacingScanner(ctx context.Context, svc *service.Service, tick time.Duration) {
	go func() {
		ticker := time.NewTicker(tick)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if err := svc.AdvanceDue(ctx, now); err != nil && ctx.Err() == nil {
					logging.Error("pacing scanner failed", err, nil)
				}
			}
		}
	}()
}
