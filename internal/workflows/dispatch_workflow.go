// Package workflows contains the Temporal workflow definitions.
package workflows

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/cx-tal-miterani/group-checkin/internal/activities"
)

// DispatchWorkflowResult is the result of the dispatch workflow
type DispatchWorkflowResult struct {
	Sent   int      `json:"sent"`
	Emails []string `json:"emails"`
}

// BoardingPassDispatchWorkflow emails every generated boarding pass of a
// group, then records the deliveries.
func BoardingPassDispatchWorkflow(ctx workflow.Context, groupID string) (*DispatchWorkflowResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Dispatch workflow started", "groupId", groupID)

	activityOpts := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOpts)

	var recipients []activities.Recipient
	if err := workflow.ExecuteActivity(ctx, "LoadRecipients", groupID).Get(ctx, &recipients); err != nil {
		logger.Error("Failed to load recipients", "error", err)
		return nil, err
	}

	result := &DispatchWorkflowResult{}
	for _, r := range recipients {
		err := workflow.ExecuteActivity(ctx, "SendBoardingPass", activities.SendBoardingPassInput{
			GroupID:     groupID,
			PassengerID: r.PassengerID,
			Email:       r.Email,
		}).Get(ctx, nil)
		if err != nil {
			logger.Error("Failed to send boarding pass", "passengerId", r.PassengerID, "error", err)
			return nil, err
		}
		result.Sent++
		result.Emails = append(result.Emails, r.Email)
	}

	if err := workflow.ExecuteActivity(ctx, "MarkPassesSent", groupID).Get(ctx, nil); err != nil {
		logger.Error("Failed to mark passes as sent", "error", err)
		return nil, err
	}

	logger.Info("Dispatch workflow completed", "groupId", groupID, "sent", result.Sent)
	return result, nil
}
