package redis

import "fmt"

// Key prefix for all logbook data
const keyPrefix = "flightlog"

// Key generation functions for each entity type

// aircraftSeqKey returns the Redis key for the aircraft ID sequence
func aircraftSeqKey() string {
	return fmt.Sprintf("%s:seq:aircraft", keyPrefix)
}

// flightSeqKey returns the Redis key for the flight record ID sequence
func flightSeqKey() string {
	return fmt.Sprintf("%s:seq:flight", keyPrefix)
}

// userSeqKey returns the Redis key for the user ID sequence
func userSeqKey() string {
	return fmt.Sprintf("%s:seq:user", keyPrefix)
}

// aircraftKey returns the Redis key for an Aircraft
func aircraftKey(id int64) string {
	return fmt.Sprintf("%s:aircraft:%d", keyPrefix, id)
}

// aircraftIndexKey returns the Redis key for the ZSET of all aircraft
func aircraftIndexKey() string {
	return fmt.Sprintf("%s:idx:aircraft", keyPrefix)
}

// flightKey returns the Redis key for a FlightRecord
func flightKey(id int64) string {
	return fmt.Sprintf("%s:flight:%d", keyPrefix, id)
}

// flightIndexKey returns the Redis key for the ZSET of all flight records
func flightIndexKey() string {
	return fmt.Sprintf("%s:idx:flights", keyPrefix)
}

// flightsForAircraftIndexKey returns the Redis key for the ZSET of an
// aircraft's flight records
func flightsForAircraftIndexKey(aircraftID int64) string {
	return fmt.Sprintf("%s:idx:flights_for_aircraft:%d", keyPrefix, aircraftID)
}

// userKey returns the Redis key for a User
func userKey(id int64) string {
	return fmt.Sprintf("%s:user:%d", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> user_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}
