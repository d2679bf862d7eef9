// Package activities implements the worker-side steps of the boarding pass
// dispatch workflow.
package activities

import (
	"context"
	"fmt"
	"time"

	"go.temporal.io/sdk/activity"

	"github.com/cx-tal-miterani/group-checkin/internal/storage"
)

// SendLatency simulates the mail provider round trip per recipient.
const SendLatency = 500 * time.Millisecond

// Recipient is one passenger eligible to receive a boarding pass email.
type Recipient struct {
	PassengerID int    `json:"passengerId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
}

// SendBoardingPassInput identifies a single pass to send.
type SendBoardingPassInput struct {
	GroupID     string `json:"groupId"`
	PassengerID int    `json:"passengerId"`
	Email       string `json:"email"`
}

// Activities bundles the dispatch activities with their storage dependency.
type Activities struct {
	store storage.Store
}

// NewActivities creates the activity set backed by the given store.
func NewActivities(store storage.Store) *Activities {
	return &Activities{store: store}
}

// LoadRecipients returns the passengers of a group that hold a generated
// boarding pass and an email address.
func (a *Activities) LoadRecipients(ctx context.Context, groupID string) ([]Recipient, error) {
	logger := activity.GetLogger(ctx)

	roster, err := a.store.GetRoster(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	passes, err := a.store.GetBoardingPasses(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load boarding passes: %w", err)
	}

	var recipients []Recipient
	for _, p := range roster.Passengers {
		if _, ok := passes.ByPassenger[p.ID]; !ok {
			continue
		}
		if p.Email == "" {
			continue
		}
		recipients = append(recipients, Recipient{
			PassengerID: p.ID,
			Name:        p.FirstName + " " + p.LastName,
			Email:       p.Email,
		})
	}

	logger.Info("Loaded recipients", "groupId", groupID, "count", len(recipients))
	return recipients, nil
}

// SendBoardingPass emails one pass. Delivery is simulated with a fixed
// latency.
func (a *Activities) SendBoardingPass(ctx context.Context, input SendBoardingPassInput) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Sending boarding pass", "groupId", input.GroupID, "passengerId", input.PassengerID)

	select {
	case <-time.After(SendLatency):
	case <-ctx.Done():
		return ctx.Err()
	}

	logger.Info("Boarding pass sent", "passengerId", input.PassengerID, "email", input.Email)
	return nil
}

// MarkPassesSent flips the sent flag on every pass of the group.
func (a *Activities) MarkPassesSent(ctx context.Context, groupID string) error {
	logger := activity.GetLogger(ctx)

	passes, err := a.store.GetBoardingPasses(ctx, groupID)
	if err != nil {
		return fmt.Errorf("failed to load boarding passes: %w", err)
	}

	for id, pass := range passes.ByPassenger {
		pass.EmailSent = true
		passes.ByPassenger[id] = pass
	}

	if err := a.store.PutBoardingPasses(ctx, passes); err != nil {
		return fmt.Errorf("failed to save boarding passes: %w", err)
	}

	logger.Info("Passes marked as sent", "groupId", groupID, "count", len(passes.ByPassenger))
	return nil
}
