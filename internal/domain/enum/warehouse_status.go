package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// WarehouseStatus represents the reconciliation state of a warehouse record
type WarehouseStatus int

const (
	WarehouseStatusNotStarted WarehouseStatus = 0
	WarehouseStatusPending    WarehouseStatus = 1
	WarehouseStatusFinalized  WarehouseStatus = 2
)

func (s WarehouseStatus) String() string {
	return [...]string{"NotStarted", "Pending", "Finalized"}[s]
}

func (s WarehouseStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *WarehouseStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = WarehouseStatus(i)
		return nil
	}
	switch str {
	case "NotStarted":
		*s = WarehouseStatusNotStarted
	case "Pending":
		*s = WarehouseStatusPending
	case "Finalized":
		*s = WarehouseStatusFinalized
	}
	return nil
}

func (s WarehouseStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *WarehouseStatus) Scan(value interface{}) error {
	if value == nil {
		*s = WarehouseStatusNotStarted
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = WarehouseStatus(v)
	case int:
		*s = WarehouseStatus(v)
	}
	return nil
}
