package shell

import (
	"errors"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/lending-library-go/journal"
)

var ErrMappingToEventMetadataFailed = errors.New("mapping to event metadata failed")

// EventMetadata links journaled events. All events written for one engine call share the CorrelationID,
// and each follow-up names the event before it as its cause.
type EventMetadata struct {
	MessageID     string
	CausationID   string
	CorrelationID string
}

// NewEventMetadata starts a chain: the first event is its own cause and correlation.
func NewEventMetadata() EventMetadata {
	id := uuid.NewString()

	return EventMetadata{MessageID: id, CausationID: id, CorrelationID: id}
}

// FollowUp returns the metadata of the next event in the same chain.
func (m EventMetadata) FollowUp() EventMetadata {
	return EventMetadata{
		MessageID:     uuid.NewString(),
		CausationID:   m.MessageID,
		CorrelationID: m.CorrelationID,
	}
}

// EventMetadataFrom decodes the metadata stored with the event.
func EventMetadataFrom(storableEvent journal.StorableEvent) (EventMetadata, error) {
	var metadata EventMetadata

	if err := jsoniter.ConfigFastest.Unmarshal(storableEvent.MetadataJSON, &metadata); err != nil {
		return EventMetadata{}, errors.Join(ErrMappingToEventMetadataFailed, err)
	}

	return metadata, nil
}
