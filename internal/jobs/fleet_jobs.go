package jobs

import (
	"context"
	"time"

	"lankadrive-backend/internal/logger"
	"lankadrive-backend/internal/utils"
)

// PruneExpiredBlockedDates drops blocked dates that are already in the
// past from every car. The blocked set only exists to answer future
// availability questions, so stale entries are just noise that grows the
// rows forever.
func (jr *JobRunner) PruneExpiredBlockedDates() {
	jr.runWithRecovery("PruneExpiredBlockedDates", func() {
		ctx := context.Background()

		cars, err := jr.store.CarRepository.List(ctx)
		if err != nil {
			logger.Error("Failed to list cars", "error", err)
			return
		}

		today, err := utils.ParseDate(time.Now().UTC().Format("2006-01-02"))
		if err != nil {
			logger.Error("Failed to resolve today's date", "error", err)
			return
		}

		prunedCars := 0
		for _, car := range cars {
			kept := make([]string, 0, len(car.BookedDates))
			for _, ds := range car.BookedDates {
				d, err := utils.ParseDate(ds)
				if err != nil {
					// Unparseable entries are dropped along with the stale ones.
					continue
				}
				if !d.Before(today) {
					kept = append(kept, ds)
				}
			}
			if len(kept) == len(car.BookedDates) {
				continue
			}

			if err := jr.store.CarRepository.ReplaceBookedDates(ctx, car.ID, kept); err != nil {
				logger.Error("Failed to prune blocked dates", "car_id", car.ID, "error", err)
				continue
			}
			prunedCars++
			logger.Debug("Pruned blocked dates",
				"car_id", car.ID,
				"before", len(car.BookedDates),
				"after", len(kept))
		}

		logger.Info("Pruned expired blocked dates", "cars_updated", prunedCars)
	})
}
