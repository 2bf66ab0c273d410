package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/pkg/e"
)

// StationStore holds static station records.
type StationStore struct {
	mu       sync.RWMutex
	stations map[uuid.UUID]models.Station
}

func NewStationStore(seed ...models.Station) *StationStore {
	s := &StationStore{stations: make(map[uuid.UUID]models.Station, len(seed))}
	for _, st := range seed {
		s.Put(st)
	}
	return s
}

// Put stands in for the registration service.
func (s *StationStore) Put(st models.Station) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stations[st.ID] = st
}

func (s *StationStore) Get(_ context.Context, id uuid.UUID) (*models.Station, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.stations[id]
	if !ok {
		return nil, e.Wrap("memory.StationStore.Get", e.ErrNotFound)
	}
	return &st, nil
}

func (s *StationStore) List(_ context.Context) ([]*models.Station, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Station, 0, len(s.stations))
	for _, st := range s.stations {
		out = append(out, &st)
	}
	slices.SortFunc(out, func(a, b *models.Station) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out, nil
}

type stationSeed struct {
	ID        uuid.UUID `json:"id" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	Latitude  float64   `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64   `json:"longitude" validate:"gte=-180,lte=180"`
	Contact   string    `json:"contact"`
}

// LoadStations reads a JSON array of stations used to seed the in-memory
// backend. Every record needs an id and a name; ids must be unique.
func LoadStations(path string) ([]models.Station, error) {
	const op = "memory.LoadStations"

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var seeds []stationSeed
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("%s: %s: %v: %w", op, path, err, e.ErrInvalidInput)
	}

	validate := validator.New()
	seen := make(map[uuid.UUID]struct{}, len(seeds))
	out := make([]models.Station, 0, len(seeds))
	for i, sd := range seeds {
		if err := validate.Struct(sd); err != nil {
			return nil, fmt.Errorf("%s: station #%d: %v: %w", op, i, err, e.ErrInvalidInput)
		}
		if _, dup := seen[sd.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate station id %s: %w", op, sd.ID, e.ErrInvalidInput)
		}
		seen[sd.ID] = struct{}{}
		out = append(out, models.Station{
			ID:        sd.ID,
			Name:      sd.Name,
			Latitude:  sd.Latitude,
			Longitude: sd.Longitude,
			Contact:   sd.Contact,
		})
	}
	return out, nil
}
