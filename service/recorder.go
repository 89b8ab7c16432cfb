package service

import (
	"context"

	"rent-assist/domain"
)

// Recorder receives calculation and cache counters.
type Recorder interface {
	ObserveCalculation(operation string)
	ObserveCache(hit bool)
}

// ChangePublisher receives a change event for each persisted record.
type ChangePublisher interface {
	Publish(ctx context.Context, event domain.ChangeEvent) error
}

type nopRecorder struct{}

func (nopRecorder) ObserveCalculation(string) {}
func (nopRecorder) ObserveCache(bool)         {}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, domain.ChangeEvent) error { return nil }
