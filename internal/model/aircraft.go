package model

import "time"

// Aircraft is a tracked airframe. It owns zero or more flight records;
// a record must never outlive its aircraft.
type Aircraft struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
