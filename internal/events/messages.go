package events

import (
	"encoding/json"
	"time"

	"github.com/MrJamesThe3rd/cashbook/internal/cashbook"
)

// ChitChangedMessage tells consumers that a chit changed. It carries ids
// only; consumers read the current state through the API.
type ChitChangedMessage struct {
	CashbookID string    `json:"cashbook_id"`
	ChitID     int       `json:"chit_id"`
	Type       string    `json:"type"`
	Timestamp  time.Time `json:"timestamp"`
}

func NewChitChangedMessage(e cashbook.ChitChanged) *ChitChangedMessage {
	return &ChitChangedMessage{
		CashbookID: e.CashbookID.String(),
		ChitID:     int(e.ChitID),
		Type:       string(e.Type),
		Timestamp:  e.OccurredAt,
	}
}

func (m *ChitChangedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ChitChangedMessageFromJSON(data []byte) (*ChitChangedMessage, error) {
	var msg ChitChangedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}

	return &msg, nil
}
