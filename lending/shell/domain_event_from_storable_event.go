package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/lending-library-go/journal"
	"github.com/AntonStoeckl/lending-library-go/lending/core"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// DomainEventsFrom converts multiple StorableEvents to DomainEvents.
func DomainEventsFrom(storableEvents journal.StorableEvents) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0, len(storableEvents))

	for _, storableEvent := range storableEvents {
		domainEvent, err := DomainEventFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a StorableEvent to its corresponding DomainEvent.
func DomainEventFrom(storableEvent journal.StorableEvent) (core.DomainEvent, error) {
	switch storableEvent.EventType {
	case core.HolderRegisteredEventType:
		return unmarshalPayload[core.HolderRegistered](storableEvent.PayloadJSON)

	case core.HolderDeregisteredEventType:
		return unmarshalPayload[core.HolderDeregistered](storableEvent.PayloadJSON)

	case core.ItemAddedToCatalogEventType:
		return unmarshalPayload[core.ItemAddedToCatalog](storableEvent.PayloadJSON)

	case core.ItemRemovedFromCatalogEventType:
		return unmarshalPayload[core.ItemRemovedFromCatalog](storableEvent.PayloadJSON)

	case core.ItemLentToHolderEventType:
		return unmarshalPayload[core.ItemLentToHolder](storableEvent.PayloadJSON)

	case core.ItemReturnedByHolderEventType:
		return unmarshalPayload[core.ItemReturnedByHolder](storableEvent.PayloadJSON)

	case core.OverdueReminderSentEventType:
		return unmarshalPayload[core.OverdueReminderSent](storableEvent.PayloadJSON)

	case core.LendingFailedEventType:
		return unmarshalPayload[core.LendingFailed](storableEvent.PayloadJSON)
	}

	return nil, errors.Join(ErrMappingToDomainEventFailed, ErrMappingToDomainEventUnknownEventType)
}

func unmarshalPayload[E core.DomainEvent](payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(E)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, payload)
	if err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return *payload, nil
}
