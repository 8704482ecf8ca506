//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"dispatch/internal/handlers/tasks/availability_sync"
	"dispatch/internal/pkg/config"

	assignmentRepo "dispatch/internal/repository/assignment"
	auditRepo "dispatch/internal/repository/audit"
	serviceRepo "dispatch/internal/repository/service"
	dispatchService "dispatch/internal/service/dispatch"

	"dispatch/pkg/logger"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideSyncInterval,

		provideServiceRepository,
		provideAssignmentRepository,
		provideAuditRepository,

		provideServiceDispatch,

		provideAvailabilitySyncTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDispatch), new(*dispatchService.Dispatch)),

		wire.Bind(new(dispatchService.ServiceRepository), new(*serviceRepo.Repository)),
		wire.Bind(new(dispatchService.AssignmentRepository), new(*assignmentRepo.Repository)),
		wire.Bind(new(dispatchService.AuditRepository), new(*auditRepo.Repository)),

		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),

		wire.Bind(new(availability_sync.Service), new(*dispatchService.Dispatch)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-booking-cancelled)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideServiceRepository,
		provideAssignmentRepository,
		provideAuditRepository,

		provideServiceDispatch,

		wire.Bind(new(dispatchService.ServiceRepository), new(*serviceRepo.Repository)),
		wire.Bind(new(dispatchService.AssignmentRepository), new(*assignmentRepo.Repository)),
		wire.Bind(new(dispatchService.AuditRepository), new(*auditRepo.Repository)),

		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
