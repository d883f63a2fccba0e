package display

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/qdm12/dyndns-scheduler/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDatabase struct {
	calls atomic.Int32
}

func (f *fakeDatabase) DisplaySnapshots() []models.DisplaySnapshot {
	calls := int64(f.calls.Add(1))
	return []models.DisplaySnapshot{{
		Index:              0,
		Hostname:           "a.example.com",
		Status:             "good 1.2.3.4",
		SecondsSinceUpdate: &calls,
	}}
}

func Test_Service(t *testing.T) {
	t.Parallel()

	db := &fakeDatabase{}
	service := New(db, time.Millisecond)

	_, err := service.Start(context.Background())
	require.NoError(t, err)

	snapshots := service.Snapshots()
	require.Len(t, snapshots, 1)
	assert.Equal(t, "a.example.com", snapshots[0].Hostname)

	assert.Eventually(t, func() bool {
		snapshots := service.Snapshots()
		return *snapshots[0].SecondsSinceUpdate > 1
	}, time.Second, time.Millisecond)

	err = service.Stop()
	require.NoError(t, err)
}
