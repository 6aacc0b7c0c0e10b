package metrics

import (
	"context"

	"github.com/osse101/RewardEngine_Go/internal/event"
	"github.com/osse101/RewardEngine_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.DrawCompleted,
		event.MileageClaimed,
		event.LotteryPicked,
		event.LotteryBoardReset,
		event.RaidStarted,
		event.RaidAttacked,
		event.RaidEnded,
		event.ConfigReloaded,
		event.MaintenanceRan,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if err := record(evt); err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func record(evt event.Event) error {
	switch evt.Type {
	case event.DrawCompleted:
		p, err := event.DecodePayload[event.DrawCompletedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		for _, d := range p.Draws {
			DrawsTotal.WithLabelValues(d.PackType, d.Tier, d.Source).Inc()
			if d.IsDuplicate {
				DuplicatesTotal.WithLabelValues(d.PackType).Inc()
			}
			RefundsTotal.Add(float64(d.Refund))
			if d.Cost > 0 {
				CurrencySpent.WithLabelValues(FeatureGacha).Add(float64(d.Cost))
			}
		}

	case event.MileageClaimed:
		p, err := event.DecodePayload[event.MileageClaimedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		MileageClaims.WithLabelValues(p.RewardType).Inc()

	case event.LotteryPicked:
		p, err := event.DecodePayload[event.LotteryPickedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		LotteryPicks.WithLabelValues(p.Grade).Inc()
		CurrencySpent.WithLabelValues(FeatureLottery).Add(float64(p.TicketPrice))

	case event.LotteryBoardReset:
		LotteryResets.Inc()

	case event.RaidAttacked:
		p, err := event.DecodePayload[event.RaidAttackedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		outcome := OutcomeLoss
		if p.Won {
			outcome = OutcomeWin
		}
		RaidAttacks.WithLabelValues(outcome).Inc()
		RaidDamage.Add(float64(p.AppliedDamage))

	case event.RaidEnded:
		p, err := event.DecodePayload[event.RaidLifecyclePayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		RaidRewards.Add(float64(p.Distributed))

	case event.ConfigReloaded:
		p, err := event.DecodePayload[event.ConfigReloadedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		if !p.Success {
			ConfigReloads.WithLabelValues(ResultFailure).Inc()
			return nil
		}
		ConfigReloads.WithLabelValues(ResultSuccess).Inc()
		ConfigIssues.Set(float64(p.Issues))

	case event.MaintenanceRan:
		p, err := event.DecodePayload[event.MaintenancePayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		if p.Error != "" {
			MaintenanceRuns.WithLabelValues(ResultFailure).Inc()
		} else {
			MaintenanceRuns.WithLabelValues(ResultSuccess).Inc()
		}
		MaintenanceRows.WithLabelValues(TaskResetRaidAttempts).Add(float64(p.AttemptsReset))
		MaintenanceRows.WithLabelValues(TaskPruneFreeDraws).Add(float64(p.ClaimsPruned))
	}
	return nil
}
