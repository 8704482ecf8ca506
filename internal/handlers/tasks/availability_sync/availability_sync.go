package availability_sync

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type Service interface {
	RecomputeAvailability(ctx context.Context) (int64, error)
}

// AvailabilitySync периодически пересчитывает справочные флаги available
// в каталогах ресурсов по реестру назначений. Флаг только для отображения,
// проверка занятости всегда идёт по реестру.
type AvailabilitySync struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewAvailabilitySync(log logger.Logger, service Service, interval time.Duration) *AvailabilitySync {
	return &AvailabilitySync{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (a *AvailabilitySync) TTL() time.Duration {
	return a.interval
}

func (a *AvailabilitySync) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.interval)
	defer cancel()

	rowsAffected, err := a.service.RecomputeAvailability(ctxWithTimeout)

	if rowsAffected > 0 {
		a.log.With(
			logger.NewField("flags_changed", rowsAffected),
		).Info("availability sync")
	}

	return err
}

func (a *AvailabilitySync) Info() string {
	return "availability sync"
}
