package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"mercado-tracker/internal/domain/tracker"
	"mercado-tracker/internal/pkg/clock"
	"mercado-tracker/internal/pkg/errs"
)

type CreateTrackerInput struct {
	SearchTerm    string
	MinPrice      int
	MaxPrice      int
	Condition     string
	Location      string
	NotifyAddress string
}

type TrackerCommands interface {
	Create(ctx context.Context, in CreateTrackerInput) (*tracker.Tracker, error)
	Confirm(ctx context.Context, id uuid.UUID, code string) (*tracker.Tracker, error)
	ResendCode(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type trackerCommandsImpl struct {
	store    TrackerStore
	notifier Notifier
	runner   TrackerRunner
	clock    clock.Clock
	logger   *slog.Logger
}

func NewTrackerCommands(store TrackerStore, notifier Notifier, runner TrackerRunner, clk clock.Clock, logger *slog.Logger) TrackerCommands {
	return &trackerCommandsImpl{
		store:    store,
		notifier: notifier,
		runner:   runner,
		clock:    clk,
		logger:   logger,
	}
}

func (uc *trackerCommandsImpl) Create(ctx context.Context, in CreateTrackerInput) (*tracker.Tracker, error) {
	t, err := tracker.New(in.SearchTerm, in.MinPrice, in.MaxPrice, in.Condition, in.Location, in.NotifyAddress, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	uc.store.InsertTracker(ctx, *t)
	uc.logger.Info("tracker created", "id", t.ID, "term", t.SearchTerm)

	uc.notifier.Notify(ctx, t.NotifyAddress,
		fmt.Sprintf("Your confirmation code for %q is: %s", t.SearchTerm, t.ConfirmationCode))
	return t, nil
}

func (uc *trackerCommandsImpl) Confirm(ctx context.Context, id uuid.UUID, code string) (*tracker.Tracker, error) {
	updated, err := uc.store.UpdateTracker(ctx, id, func(t *tracker.Tracker) error {
		return t.Confirm(code)
	})
	if err != nil {
		return nil, markConfirmErr(err)
	}
	uc.logger.Info("tracker activated", "id", updated.ID, "term", updated.SearchTerm)

	// Immediate first poll so the user sees results without waiting for the
	// next scheduled tick. Same pipeline, same dedup guarantees.
	uc.runner.RunTracker(ctx, updated)

	return &updated, nil
}

func (uc *trackerCommandsImpl) ResendCode(ctx context.Context, id uuid.UUID) error {
	updated, err := uc.store.UpdateTracker(ctx, id, func(t *tracker.Tracker) error {
		return t.RotateCode()
	})
	if err != nil {
		return markResendErr(err)
	}
	uc.logger.Info("confirmation code resent", "id", updated.ID, "term", updated.SearchTerm)

	uc.notifier.Notify(ctx, updated.NotifyAddress,
		fmt.Sprintf("Your new confirmation code for %q is: %s", updated.SearchTerm, updated.ConfirmationCode))
	return nil
}

func (uc *trackerCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.store.DeleteTracker(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("tracker deleted", "id", id)
	return nil
}

func markConfirmErr(err error) error {
	switch {
	case errors.Is(err, tracker.ErrAlreadyActive):
		return errs.Mark(err, errs.ErrTrackerAlreadyActive)
	case errors.Is(err, tracker.ErrCodeMismatch):
		return errs.Mark(err, errs.ErrInvalidConfirmationCode)
	default:
		return err
	}
}

func markResendErr(err error) error {
	if errors.Is(err, tracker.ErrNotPending) {
		return errs.Mark(err, errs.ErrTrackerNotPending)
	}
	return err
}
