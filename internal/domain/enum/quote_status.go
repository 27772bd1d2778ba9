package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// QuoteStatus represents the lifecycle of a quote (orçamento)
type QuoteStatus int

const (
	QuoteStatusDraft     QuoteStatus = 0
	QuoteStatusFinalized QuoteStatus = 1
	QuoteStatusApproved  QuoteStatus = 2
	QuoteStatusCanceled  QuoteStatus = 3
)

func (s QuoteStatus) String() string {
	return [...]string{"Draft", "Finalized", "Approved", "Canceled"}[s]
}

func (s QuoteStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *QuoteStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = QuoteStatus(i)
		return nil
	}
	switch str {
	case "Draft":
		*s = QuoteStatusDraft
	case "Finalized":
		*s = QuoteStatusFinalized
	case "Approved":
		*s = QuoteStatusApproved
	case "Canceled":
		*s = QuoteStatusCanceled
	}
	return nil
}

func (s QuoteStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *QuoteStatus) Scan(value interface{}) error {
	if value == nil {
		*s = QuoteStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = QuoteStatus(v)
	case int:
		*s = QuoteStatus(v)
	}
	return nil
}
