package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ExtraKind represents the value shape of an extra option
type ExtraKind int

const (
	ExtraKindTextAmount    ExtraKind = 0
	ExtraKindQtyRate       ExtraKind = 1
	ExtraKindPercentOfBase ExtraKind = 2
)

func (k ExtraKind) String() string {
	return [...]string{"TextAmount", "QtyRate", "PercentOfBase"}[k]
}

func (k ExtraKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *ExtraKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*k = ExtraKind(i)
		return nil
	}
	switch str {
	case "TextAmount":
		*k = ExtraKindTextAmount
	case "QtyRate":
		*k = ExtraKindQtyRate
	case "PercentOfBase":
		*k = ExtraKindPercentOfBase
	}
	return nil
}

func (k ExtraKind) Value() (driver.Value, error) {
	return int64(k), nil
}

func (k *ExtraKind) Scan(value interface{}) error {
	if value == nil {
		*k = ExtraKindTextAmount
		return nil
	}
	switch v := value.(type) {
	case int64:
		*k = ExtraKind(v)
	case int:
		*k = ExtraKind(v)
	}
	return nil
}
