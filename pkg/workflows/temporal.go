// Package workflows connects to Temporal and hosts workers for scheduled jobs.
package workflows

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	"go.temporal.io/sdk/interceptor"
	temporallog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"

	"github.com/ghuser/wardrobe/pkg/logger"
)

// TemporalClient wraps the Temporal SDK client with project-level configuration.
type TemporalClient struct {
	Client    client.Client
	Namespace string
	tracing   interceptor.Interceptor
	log       logger.Logger
}

// NewTemporalClient dials Temporal with OTel tracing. Call Close on shutdown.
func NewTemporalClient(ctx context.Context, hostPort, namespace string, log logger.Logger) (*TemporalClient, error) {
	tracing, err := temporalotel.NewTracingInterceptor(temporalotel.TracerOptions{
		Tracer: otel.Tracer("temporal"),
	})
	if err != nil {
		return nil, fmt.Errorf("create temporal otel interceptor: %w", err)
	}

	c, err := client.DialContext(ctx, client.Options{
		HostPort:     hostPort,
		Namespace:    namespace,
		Logger:       newTemporalLogger(log),
		Interceptors: []interceptor.ClientInterceptor{tracing},
	})
	if err != nil {
		return nil, fmt.Errorf("dial temporal server at %s: %w", hostPort, err)
	}

	log.Info("temporal client connected", "host_port", hostPort, "namespace", namespace)

	return &TemporalClient{Client: c, Namespace: namespace, tracing: tracing, log: log}, nil
}

// NewWorker creates a worker polling taskQueue. Register workflows and
// activities on it, then Start or Run it.
func (tc *TemporalClient) NewWorker(taskQueue string) worker.Worker {
	return worker.New(tc.Client, taskQueue, worker.Options{
		Interceptors: []interceptor.WorkerInterceptor{tc.tracing},
	})
}

// CronSpec describes a workflow started on a cron schedule.
type CronSpec struct {
	WorkflowID string
	TaskQueue  string
	Schedule   string
	Workflow   any
	Args       []any
}

// EnsureCron starts spec's workflow unless a run with the same id is already
// active, which makes it safe to call from every worker instance at boot.
func (tc *TemporalClient) EnsureCron(ctx context.Context, spec CronSpec) error {
	_, err := tc.Client.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:           spec.WorkflowID,
		TaskQueue:    spec.TaskQueue,
		CronSchedule: spec.Schedule,
	}, spec.Workflow, spec.Args...)

	var started *serviceerror.WorkflowExecutionAlreadyStarted
	if errors.As(err, &started) {
		tc.log.InfoContext(ctx, "cron workflow already running", "workflow_id", spec.WorkflowID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("start cron workflow %s: %w", spec.WorkflowID, err)
	}
	tc.log.InfoContext(ctx, "cron workflow started", "workflow_id", spec.WorkflowID, "schedule", spec.Schedule)
	return nil
}

// Ping checks that the frontend service answers.
func (tc *TemporalClient) Ping(ctx context.Context) error {
	if _, err := tc.Client.CheckHealth(ctx, &client.CheckHealthRequest{}); err != nil {
		return fmt.Errorf("temporal health: %w", err)
	}
	return nil
}

// Close shuts down the client connection.
func (tc *TemporalClient) Close() {
	tc.Client.Close()
	tc.log.Info("temporal client closed")
}

// temporalLogger adapts logger.Logger to Temporal's log.Logger interface.
type temporalLogger struct {
	log logger.Logger
}

func newTemporalLogger(log logger.Logger) temporallog.Logger {
	return &temporalLogger{log: log}
}

func (l *temporalLogger) Debug(msg string, keyvals ...interface{}) { l.log.Debug(msg, keyvals...) }
func (l *temporalLogger) Info(msg string, keyvals ...interface{})  { l.log.Info(msg, keyvals...) }
func (l *temporalLogger) Warn(msg string, keyvals ...interface{})  { l.log.Warn(msg, keyvals...) }
func (l *temporalLogger) Error(msg string, keyvals ...interface{}) { l.log.Error(msg, keyvals...) }
