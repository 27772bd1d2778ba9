package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// OrderStatus represents the fulfillment status of an order (pedido)
type OrderStatus int

const (
	OrderStatusOpen         OrderStatus = 0
	OrderStatusInProduction OrderStatus = 1
	OrderStatusComplete     OrderStatus = 2
	OrderStatusCanceled     OrderStatus = 3
)

func (s OrderStatus) String() string {
	return [...]string{"Open", "InProduction", "Complete", "Canceled"}[s]
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = OrderStatus(i)
		return nil
	}
	switch str {
	case "Open":
		*s = OrderStatusOpen
	case "InProduction":
		*s = OrderStatusInProduction
	case "Complete":
		*s = OrderStatusComplete
	case "Canceled":
		*s = OrderStatusCanceled
	}
	return nil
}

func (s OrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *OrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = OrderStatusOpen
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = OrderStatus(v)
	case int:
		*s = OrderStatus(v)
	}
	return nil
}
