package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hangar7/flightlog/internal/model"
	"github.com/hangar7/flightlog/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Entities are stored as JSON values; insertion-order listings are kept
// in sorted sets scored by ID.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// ID sequences

func (s *Storage) NextAircraftID(ctx context.Context) (int64, error) {
	return s.client.Incr(ctx, aircraftSeqKey()).Result()
}

func (s *Storage) NextFlightID(ctx context.Context) (int64, error) {
	return s.client.Incr(ctx, flightSeqKey()).Result()
}

func (s *Storage) NextUserID(ctx context.Context) (int64, error) {
	return s.client.Incr(ctx, userSeqKey()).Result()
}

// Aircraft operations

func (s *Storage) SaveAircraft(ctx context.Context, aircraft *model.Aircraft) error {
	data, err := json.Marshal(aircraft)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, aircraftKey(aircraft.ID), data, 0)
	pipe.ZAdd(ctx, aircraftIndexKey(), redis.Z{
		Score:  float64(aircraft.ID),
		Member: aircraft.ID,
	})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetAircraft(ctx context.Context, id int64) (*model.Aircraft, error) {
	data, err := s.client.Get(ctx, aircraftKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAircraftNotFound
		}
		return nil, err
	}

	var aircraft model.Aircraft
	if err := json.Unmarshal(data, &aircraft); err != nil {
		return nil, err
	}
	return &aircraft, nil
}

func (s *Storage) ListAircraft(ctx context.Context) ([]*model.Aircraft, error) {
	ids, err := s.client.ZRange(ctx, aircraftIndexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	list := make([]*model.Aircraft, 0, len(ids))
	for _, idStr := range ids {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			continue
		}
		aircraft, err := s.GetAircraft(ctx, id)
		if err != nil {
			if errors.Is(err, model.ErrAircraftNotFound) {
				continue
			}
			return nil, err
		}
		list = append(list, aircraft)
	}
	return list, nil
}

func (s *Storage) DeleteAircraft(ctx context.Context, id int64) error {
	deleted, err := s.client.Del(ctx, aircraftKey(id)).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return model.ErrAircraftNotFound
	}
	return s.client.ZRem(ctx, aircraftIndexKey(), id).Err()
}

// Flight record operations

func (s *Storage) SaveFlight(ctx context.Context, flight *model.FlightRecord) error {
	data, err := json.Marshal(flight)
	if err != nil {
		return err
	}

	member := redis.Z{Score: float64(flight.ID), Member: flight.ID}

	// Use pipeline for atomic save + index updates
	pipe := s.client.Pipeline()
	pipe.Set(ctx, flightKey(flight.ID), data, 0)
	pipe.ZAdd(ctx, flightIndexKey(), member)
	pipe.ZAdd(ctx, flightsForAircraftIndexKey(flight.AircraftID), member)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetFlight(ctx context.Context, id int64) (*model.FlightRecord, error) {
	data, err := s.client.Get(ctx, flightKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrFlightNotFound
		}
		return nil, err
	}

	var flight model.FlightRecord
	if err := json.Unmarshal(data, &flight); err != nil {
		return nil, err
	}
	return &flight, nil
}

func (s *Storage) ListFlightsForAircraft(ctx context.Context, aircraftID int64) ([]*model.FlightRecord, error) {
	return s.listFlightsByIndex(ctx, flightsForAircraftIndexKey(aircraftID))
}

func (s *Storage) ListAllFlights(ctx context.Context) ([]*model.FlightRecord, error) {
	return s.listFlightsByIndex(ctx, flightIndexKey())
}

func (s *Storage) listFlightsByIndex(ctx context.Context, indexKey string) ([]*model.FlightRecord, error) {
	ids, err := s.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []*model.FlightRecord{}, nil
	}

	keys := make([]string, len(ids))
	for i, idStr := range ids {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return nil, err
		}
		keys[i] = flightKey(id)
	}

	// Fetch all records in one round trip
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	flights := make([]*model.FlightRecord, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // record deleted between index read and fetch
		}
		var flight model.FlightRecord
		if err := json.Unmarshal([]byte(val.(string)), &flight); err != nil {
			return nil, err
		}
		flights = append(flights, &flight)
	}

	return flights, nil
}

func (s *Storage) DeleteFlight(ctx context.Context, id int64) error {
	// The aircraft index key needs the owning aircraft, so read first
	flight, err := s.GetFlight(ctx, id)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, flightKey(id))
	pipe.ZRem(ctx, flightIndexKey(), id)
	pipe.ZRem(ctx, flightsForAircraftIndexKey(flight.AircraftID), id)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) DeleteFlightsForAircraft(ctx context.Context, aircraftID int64) error {
	indexKey := flightsForAircraftIndexKey(aircraftID)

	ids, err := s.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	for _, idStr := range ids {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			continue
		}
		pipe.Del(ctx, flightKey(id))
		pipe.ZRem(ctx, flightIndexKey(), id)
	}
	pipe.Del(ctx, indexKey)
	_, err = pipe.Exec(ctx)
	return err
}

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, userKey(user.ID), data, 0)
	pipe.Set(ctx, usernameIndexKey(user.Username), strconv.FormatInt(user.ID, 10), 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetUser(ctx context.Context, id int64) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	idStr, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return nil, err
	}

	return s.GetUser(ctx, id)
}
