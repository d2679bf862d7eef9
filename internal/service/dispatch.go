package service

import (
	"context"
	"fmt"

	"go.temporal.io/sdk/client"
)

const (
	// TaskQueue is the Temporal task queue shared with the worker.
	TaskQueue = "group-checkin-queue"

	// DispatchWorkflowName is the registered name of the boarding-pass
	// dispatch workflow on the worker side.
	DispatchWorkflowName = "BoardingPassDispatchWorkflow"
)

// Dispatcher hands a group's boarding passes off for asynchronous delivery.
type Dispatcher interface {
	DispatchBoardingPasses(ctx context.Context, groupID string) (workflowID string, err error)
}

// TemporalDispatcher starts the dispatch workflow on a Temporal cluster.
type TemporalDispatcher struct {
	temporalClient client.Client
}

func NewTemporalDispatcher(temporalClient client.Client) *TemporalDispatcher {
	return &TemporalDispatcher{temporalClient: temporalClient}
}

func (d *TemporalDispatcher) DispatchBoardingPasses(ctx context.Context, groupID string) (string, error) {
	workflowID := "dispatch-" + groupID
	opts := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: TaskQueue,
	}
	_, err := d.temporalClient.ExecuteWorkflow(ctx, opts, DispatchWorkflowName, groupID)
	if err != nil {
		return "", fmt.Errorf("failed to start dispatch workflow: %w", err)
	}
	return workflowID, nil
}
