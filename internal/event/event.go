package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/RewardEngine_Go/internal/logger"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Reward engine event types. All are published after the transaction commits.
const (
	DrawCompleted     Type = "gacha.draw.completed"
	MileageClaimed    Type = "gacha.mileage.claimed"
	LotteryPicked     Type = "lottery.picked"
	LotteryBoardReset Type = "lottery.board.reset"
	RaidStarted       Type = "raid.started"
	RaidAttacked      Type = "raid.attacked"
	RaidEnded         Type = "raid.ended"
	ConfigReloaded    Type = "config.reloaded"
	MaintenanceRan    Type = "maintenance.completed"
)

// Typed event payloads for type safety

// DrawPayloadV1 describes one resolved pull. Draws opened by the lottery carry Source "lottery".
type DrawPayloadV1 struct {
	PlayerID    uuid.UUID `json:"player_id"`
	PackType    string    `json:"pack_type"`
	Source      string    `json:"source"`
	Tier        string    `json:"tier"`
	ItemName    string    `json:"item_name"`
	IsDuplicate bool      `json:"is_duplicate"`
	Refund      int64     `json:"refund"`
	Cost        int64     `json:"cost"`
}

// DrawCompletedPayloadV1 is the typed payload for a committed Draw or DrawTen
type DrawCompletedPayloadV1 struct {
	Draws     []DrawPayloadV1 `json:"draws"`
	Timestamp int64           `json:"timestamp"`
}

// MileageClaimedPayloadV1 is the typed payload for milestone claims
type MileageClaimedPayloadV1 struct {
	PlayerID   uuid.UUID `json:"player_id"`
	Milestone  int64     `json:"milestone"`
	RewardType string    `json:"reward_type"`
	Timestamp  int64     `json:"timestamp"`
}

// LotteryPickedPayloadV1 is the typed payload for lottery picks
type LotteryPickedPayloadV1 struct {
	BoardID       string    `json:"board_id"`
	PlayerID      uuid.UUID `json:"player_id"`
	Cell          int       `json:"cell"`
	Grade         string    `json:"grade"`
	RewardType    string    `json:"reward_type"`
	TicketPrice   int64     `json:"ticket_price"`
	BoardWasReset bool      `json:"board_was_reset"`
	Timestamp     int64     `json:"timestamp"`
}

// RaidAttackedPayloadV1 is the typed payload for raid attacks
type RaidAttackedPayloadV1 struct {
	RaidID        int64     `json:"raid_id"`
	PlayerID      uuid.UUID `json:"player_id"`
	Won           bool      `json:"won"`
	AppliedDamage int64     `json:"applied_damage"`
	TotalDamage   int64     `json:"total_damage"`
	Timestamp     int64     `json:"timestamp"`
}

// RaidLifecyclePayloadV1 is the typed payload for raid start and end
type RaidLifecyclePayloadV1 struct {
	RaidID       int64  `json:"raid_id"`
	Name         string `json:"name"`
	Distributed  int64  `json:"distributed,omitempty"`
	Contributors int    `json:"contributors,omitempty"`
	Timestamp    int64  `json:"timestamp"`
}

// ConfigReloadedPayloadV1 is the typed payload for reward config reloads
type ConfigReloadedPayloadV1 struct {
	Success bool   `json:"success"`
	Issues  int    `json:"issues"`
	Error   string `json:"error,omitempty"`
}

// MaintenancePayloadV1 is the typed payload for the daily housekeeping run
type MaintenancePayloadV1 struct {
	AttemptsReset int64  `json:"attempts_reset"`
	ClaimsPruned  int64  `json:"claims_pruned"`
	Error         string `json:"error,omitempty"`
	Timestamp     int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewDrawCompletedEvent creates a draw event
func NewDrawCompletedEvent(draws []DrawPayloadV1) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DrawCompleted,
		Payload: DrawCompletedPayloadV1{Draws: draws, Timestamp: time.Now().Unix()},
	}
}

// NewMileageClaimedEvent creates a milestone claim event
func NewMileageClaimedEvent(playerID uuid.UUID, milestone int64, rewardType string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MileageClaimed,
		Payload: MileageClaimedPayloadV1{
			PlayerID:   playerID,
			Milestone:  milestone,
			RewardType: rewardType,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewLotteryPickedEvent creates a lottery pick event
func NewLotteryPickedEvent(p LotteryPickedPayloadV1) Event {
	p.Timestamp = time.Now().Unix()
	return Event{
		Version:  EventSchemaVersion,
		Type:     LotteryPicked,
		Payload:  p,
		Metadata: map[string]interface{}{"board_id": p.BoardID},
	}
}

// NewLotteryBoardResetEvent creates a board reset event
func NewLotteryBoardResetEvent(boardID string, resetCount int64) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     LotteryBoardReset,
		Payload:  map[string]interface{}{"board_id": boardID, "reset_count": resetCount},
		Metadata: map[string]interface{}{"board_id": boardID},
	}
}

// NewRaidStartedEvent creates a raid start event
func NewRaidStartedEvent(raidID int64, name string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RaidStarted,
		Payload: RaidLifecyclePayloadV1{RaidID: raidID, Name: name, Timestamp: time.Now().Unix()},
	}
}

// NewRaidAttackedEvent creates a raid attack event
func NewRaidAttackedEvent(raidID int64, playerID uuid.UUID, won bool, applied, total int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RaidAttacked,
		Payload: RaidAttackedPayloadV1{
			RaidID:        raidID,
			PlayerID:      playerID,
			Won:           won,
			AppliedDamage: applied,
			TotalDamage:   total,
			Timestamp:     time.Now().Unix(),
		},
	}
}

// NewRaidEndedEvent creates a raid end event
func NewRaidEndedEvent(raidID int64, name string, distributed int64, contributors int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RaidEnded,
		Payload: RaidLifecyclePayloadV1{
			RaidID:       raidID,
			Name:         name,
			Distributed:  distributed,
			Contributors: contributors,
			Timestamp:    time.Now().Unix(),
		},
	}
}

// NewConfigReloadedEvent creates a config reload event
func NewConfigReloadedEvent(issues int, err error) Event {
	p := ConfigReloadedPayloadV1{Success: err == nil, Issues: issues}
	if err != nil {
		p.Error = err.Error()
	}
	return Event{Version: EventSchemaVersion, Type: ConfigReloaded, Payload: p}
}

// NewMaintenanceEvent creates a housekeeping event
func NewMaintenanceEvent(attemptsReset, claimsPruned int64, err error) Event {
	p := MaintenancePayloadV1{AttemptsReset: attemptsReset, ClaimsPruned: claimsPruned, Timestamp: time.Now().Unix()}
	if err != nil {
		p.Error = err.Error()
	}
	return Event{Version: EventSchemaVersion, Type: MaintenanceRan, Payload: p}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish sends evt on bus when one is configured. Failures are logged and
// never fail the operation that already committed.
func Publish(ctx context.Context, bus Bus, evt Event) {
	if bus == nil {
		return
	}
	if err := bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", evt.Type, "error", err)
	}
}
