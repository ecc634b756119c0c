package workflows

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/testsuite"

	appsvcs "github.com/ghuser/wardrobe/services/reminder/application/services"
)

type fakeDispatcher struct {
	mu       sync.Mutex
	calls    []time.Time
	failures int
}

func (f *fakeDispatcher) DispatchDue(_ context.Context, at time.Time) (appsvcs.DispatchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, at)
	if len(f.calls) <= f.failures {
		return appsvcs.DispatchResult{}, errors.New("database unavailable")
	}
	return appsvcs.DispatchResult{Due: 3, Sent: 2, Failed: 1}, nil
}

type ReminderWorkflowSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite
	env *testsuite.TestWorkflowEnvironment
}

func TestReminderWorkflowSuite(t *testing.T) {
	suite.Run(t, new(ReminderWorkflowSuite))
}

func (s *ReminderWorkflowSuite) SetupTest() {
	s.env = s.NewTestWorkflowEnvironment()
	s.env.SetStartTime(time.Date(2025, 1, 5, 23, 0, 42, 0, time.UTC))
}

func (s *ReminderWorkflowSuite) AfterTest(_, _ string) {
	s.env.AssertExpectations(s.T())
}

func (s *ReminderWorkflowSuite) TestDispatchesAtTickMinute() {
	d := &fakeDispatcher{}
	s.env.RegisterActivity(&Activities{Dispatcher: d})

	s.env.ExecuteWorkflow(DispatchRemindersWorkflow)

	s.Require().True(s.env.IsWorkflowCompleted())
	s.Require().NoError(s.env.GetWorkflowError())
	var res appsvcs.DispatchResult
	s.Require().NoError(s.env.GetWorkflowResult(&res))
	s.Equal(appsvcs.DispatchResult{Due: 3, Sent: 2, Failed: 1}, res)

	s.Require().Len(d.calls, 1)
	s.True(d.calls[0].Equal(time.Date(2025, 1, 5, 23, 0, 0, 0, time.UTC)), d.calls[0])
}

func (s *ReminderWorkflowSuite) TestRetriesTransientFailures() {
	d := &fakeDispatcher{failures: 2}
	s.env.RegisterActivity(&Activities{Dispatcher: d})

	s.env.ExecuteWorkflow(DispatchRemindersWorkflow)

	s.Require().True(s.env.IsWorkflowCompleted())
	s.Require().NoError(s.env.GetWorkflowError())
	s.Len(d.calls, 3)
}

func (s *ReminderWorkflowSuite) TestGivesUpAfterMaxAttempts() {
	d := &fakeDispatcher{failures: 10}
	s.env.RegisterActivity(&Activities{Dispatcher: d})

	s.env.ExecuteWorkflow(DispatchRemindersWorkflow)

	s.Require().True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
	s.Len(d.calls, 3)
}

func TestCronSpec(t *testing.T) {
	spec := Cron("wardrobe-reminders", "@every 1m")
	if spec.WorkflowID != DispatchWorkflowID || spec.TaskQueue != "wardrobe-reminders" || spec.Schedule != "@every 1m" {
		t.Fatalf("unexpected cron spec: %+v", spec)
	}
	if spec.Workflow == nil {
		t.Fatal("cron spec has no workflow")
	}
}
