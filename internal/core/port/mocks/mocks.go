// Package mocks provides testify mocks for the platform's outbound ports.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"airdrop-platform/internal/core/domain"
	"airdrop-platform/internal/core/port"
)

// PlatformStore mocks port.PlatformStore.
type PlatformStore struct {
	mock.Mock
}

func (m *PlatformStore) Load(ctx context.Context) (*domain.Platform, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).(*domain.Platform)
	return p, args.Error(1)
}

func (m *PlatformStore) Save(ctx context.Context, p *domain.Platform) error {
	return m.Called(ctx, p).Error(0)
}

// AllowanceLedger mocks port.AllowanceLedger.
type AllowanceLedger struct {
	mock.Mock
}

func (m *AllowanceLedger) DebitDelegated(ctx context.Context, asset, owner, delegate string, amount uint64) error {
	return m.Called(ctx, asset, owner, delegate, amount).Error(0)
}

func (m *AllowanceLedger) CreditRecipient(ctx context.Context, asset, recipient string, amount uint64) error {
	return m.Called(ctx, asset, recipient, amount).Error(0)
}

// FeeBank mocks port.FeeBank.
type FeeBank struct {
	mock.Mock
}

func (m *FeeBank) ChargeFee(ctx context.Context, payer string, amount uint64) error {
	return m.Called(ctx, payer, amount).Error(0)
}

func (m *FeeBank) PayOut(ctx context.Context, recipient string, amount uint64) error {
	return m.Called(ctx, recipient, amount).Error(0)
}

// EventRecorder mocks port.EventRecorder.
type EventRecorder struct {
	mock.Mock
}

func (m *EventRecorder) Record(ctx context.Context, ev domain.Event) error {
	return m.Called(ctx, ev).Error(0)
}

func (m *EventRecorder) Aggregate(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*port.StatsResp)
	return resp, args.Error(1)
}
