package domain

import "time"

type EventType string

const (
	EventCampaignCreated EventType = "campaign_created"
	EventCampaignUpdated EventType = "campaign_updated"
	EventAirdrop         EventType = "airdrop"
	EventFeeWithdrawn    EventType = "fee_withdrawn"
)

// Event is an audit record of one completed platform operation. Amount
// carries the fee charged for campaign events, the distributed quantity for
// airdrop events and the paid-out balance for withdrawal events.
type Event struct {
	ID           string
	Type         EventType
	CampaignID   string
	Actor        string
	AssetAddress string
	Amount       uint64
	Recipient    string
	CreatedAt    time.Time
}
