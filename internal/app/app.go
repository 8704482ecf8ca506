package app

import (
	"context"
	"time"

	service_assign_post "dispatch/internal/handlers/rest/service_assign_post"
	service_audit_get "dispatch/internal/handlers/rest/service_audit_get"
	service_get "dispatch/internal/handlers/rest/service_get"
	service_post "dispatch/internal/handlers/rest/service_post"
	service_status_post "dispatch/internal/handlers/rest/service_status_post"
	service_supplemental_post "dispatch/internal/handlers/rest/service_supplemental_post"
	services_get "dispatch/internal/handlers/rest/services_get"
	"dispatch/internal/handlers/tasks/availability_sync"
	"dispatch/internal/pkg/config"

	assignmentRepo "dispatch/internal/repository/assignment"
	auditRepo "dispatch/internal/repository/audit"
	serviceRepo "dispatch/internal/repository/service"
	dispatchService "dispatch/internal/service/dispatch"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	SyncInterval time.Duration
)

type Application struct {
	ServiceDispatch   ServiceDispatch
	BackgroundWorkers *background.Worker
}

type ServiceDispatch interface {
	service_post.Service
	service_get.Service
	services_get.Service
	service_assign_post.Service
	service_supplemental_post.Service
	service_status_post.Service
	service_audit_get.Service
}

type KafkaWorkerApp struct {
	DispatchService *dispatchService.Dispatch
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideServiceRepository(querier *querier.Querier) *serviceRepo.Repository {
	return serviceRepo.New(querier)
}

func provideAssignmentRepository(querier *querier.Querier) *assignmentRepo.Repository {
	return assignmentRepo.New(querier)
}

func provideAuditRepository(querier *querier.Querier) *auditRepo.Repository {
	return auditRepo.New(querier)
}

func provideServiceDispatch(
	services dispatchService.ServiceRepository,
	assignments dispatchService.AssignmentRepository,
	audit dispatchService.AuditRepository,
	txManager dispatchService.TxManager,
) *dispatchService.Dispatch {
	return dispatchService.New(services, assignments, audit, txManager)
}

func provideSyncInterval(cfg *config.Config) SyncInterval {
	return SyncInterval(cfg.Tasks.AvailabilitySyncInterval)
}

func provideAvailabilitySyncTask(
	log logger.Logger,
	dispatchSvc availability_sync.Service,
	interval SyncInterval,
) *availability_sync.AvailabilitySync {
	return availability_sync.NewAvailabilitySync(log, dispatchSvc, time.Duration(interval))
}

func provideTaskList(
	availabilitySyncTask *availability_sync.AvailabilitySync,
) []background.Task {
	return []background.Task{
		availabilitySyncTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
