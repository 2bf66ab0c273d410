package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStations(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stations.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadStations_SeedsStoreForRegistration(t *testing.T) {
	ctx := context.Background()
	path := writeStations(t, `[
		{"id": "7d3c1f7e-6b1a-4c55-9a57-1f0b8f0c2a11", "name": "Central", "latitude": 12.97, "longitude": 77.59, "contact": "+91-80-0000"},
		{"id": "b2f9a0d4-3e8c-4d1f-8c5e-6a7b9c0d1e22", "name": "Airport", "latitude": 13.2, "longitude": 77.7}
	]`)

	stations, err := LoadStations(path)
	require.NoError(t, err)
	require.Len(t, stations, 2)

	stores := NewStores(stations...)
	central := uuid.MustParse("7d3c1f7e-6b1a-4c55-9a57-1f0b8f0c2a11")
	got, err := stores.Stations.Get(ctx, central)
	require.NoError(t, err)
	assert.Equal(t, "Central", got.Name)
	assert.Equal(t, "+91-80-0000", got.Contact)

	list, err := stores.Stations.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Airport", list[0].Name)
}

func TestLoadStations_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"id":`},
		{name: "missing id", body: `[{"name": "Central", "latitude": 1, "longitude": 1}]`},
		{name: "missing name", body: `[{"id": "7d3c1f7e-6b1a-4c55-9a57-1f0b8f0c2a11", "latitude": 1, "longitude": 1}]`},
		{name: "latitude out of range", body: `[{"id": "7d3c1f7e-6b1a-4c55-9a57-1f0b8f0c2a11", "name": "X", "latitude": 91, "longitude": 1}]`},
		{name: "duplicate id", body: `[
			{"id": "7d3c1f7e-6b1a-4c55-9a57-1f0b8f0c2a11", "name": "A", "latitude": 1, "longitude": 1},
			{"id": "7d3c1f7e-6b1a-4c55-9a57-1f0b8f0c2a11", "name": "B", "latitude": 2, "longitude": 2}
		]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadStations(writeStations(t, tt.body))
			assert.ErrorIs(t, err, e.ErrInvalidInput)
		})
	}
}

func TestLoadStations_MissingFile(t *testing.T) {
	_, err := LoadStations(filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStationStore_UnknownStation(t *testing.T) {
	_, err := NewStationStore().Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, e.ErrNotFound)
	assert.Contains(t, err.Error(), "memory.StationStore.Get")
}
