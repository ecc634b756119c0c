// Package workflows schedules reminder delivery on Temporal.
package workflows

import (
	"context"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	pkgworkflows "github.com/ghuser/wardrobe/pkg/workflows"
	appsvcs "github.com/ghuser/wardrobe/services/reminder/application/services"
)

// DispatchWorkflowID identifies the single cron run shared by all workers.
const DispatchWorkflowID = "wardrobe-reminder-dispatch"

// Dispatcher sends the reminders due at a wall-clock minute.
type Dispatcher interface {
	DispatchDue(ctx context.Context, at time.Time) (appsvcs.DispatchResult, error)
}

// Activities hosts the reminder activities on a worker.
type Activities struct {
	Dispatcher Dispatcher
}

// DispatchDue is the activity behind DispatchRemindersWorkflow.
func (a *Activities) DispatchDue(ctx context.Context, at time.Time) (appsvcs.DispatchResult, error) {
	activity.GetLogger(ctx).Info("dispatching reminders", "at", at.Format(time.RFC3339))
	return a.Dispatcher.DispatchDue(ctx, at)
}

// DispatchRemindersWorkflow runs once per cron tick and dispatches the
// reminders due at the tick's minute.
func DispatchRemindersWorkflow(ctx workflow.Context) (appsvcs.DispatchResult, error) {
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 50 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    3,
		},
	})

	at := workflow.Now(ctx).Truncate(time.Minute)
	var a *Activities
	var res appsvcs.DispatchResult
	if err := workflow.ExecuteActivity(ctx, a.DispatchDue, at).Get(ctx, &res); err != nil {
		return appsvcs.DispatchResult{}, err
	}
	return res, nil
}

// Register adds the reminder workflow and its activities to w.
func Register(w worker.Registry, d Dispatcher) {
	w.RegisterWorkflow(DispatchRemindersWorkflow)
	w.RegisterActivity(&Activities{Dispatcher: d})
}

// Cron describes the recurring dispatch run for TemporalClient.EnsureCron.
func Cron(taskQueue, schedule string) pkgworkflows.CronSpec {
	return pkgworkflows.CronSpec{
		WorkflowID: DispatchWorkflowID,
		TaskQueue:  taskQueue,
		Schedule:   schedule,
		Workflow:   DispatchRemindersWorkflow,
	}
}
