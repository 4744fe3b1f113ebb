package controller

import (
	"context"
	"log"
	"sync"
	"time"
)

// UpdatePlayers refreshes the player directory from sleeper. The directory
// backs name resolution for sleeper matchup payloads, which carry ids only.
func (c *controller) UpdatePlayers(ctx context.Context) error {
	start := c.clock.Now()
	log.Printf("update players starting at %v", start.Format(time.DateTime))

	players, err := c.sleeper.LoadPlayers()
	if err != nil {
		return err
	}

	if err := c.db.SavePlayers(ctx, players); err != nil {
		return err
	}

	log.Printf("update players finished, %d players took %v", len(players), c.clock.Since(start))
	return nil
}

func (c *controller) RunPeriodicPlayerUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

			if err := c.UpdatePlayers(ctx); err != nil {
				log.Printf("%v", err)
			}
			cancel()
		}
	}
}
