package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorderSnapshot(t *testing.T) {
	r := NewRecorder()
	r.RecordGameCreated()
	r.RecordSuccess("travel", "ongoing")
	r.RecordSuccess("rest", "won")
	r.RecordRejected("invalid_argument")

	s := r.Snapshot()
	assert.Equal(t, uint64(1), s.GamesCreated)
	assert.Equal(t, uint64(3), s.ActionTotal)
	assert.Equal(t, uint64(2), s.ActionSuccess)
	assert.Equal(t, uint64(1), s.ActionRejected)
	assert.Equal(t, uint64(1), s.ByAction["travel"])
	assert.Equal(t, uint64(1), s.ByOutcome["won"])
	assert.Equal(t, uint64(1), s.ByErrorCode["invalid_argument"])

	s.ByAction["travel"] = 99
	assert.Equal(t, uint64(1), r.Snapshot().ByAction["travel"], "snapshot must not alias recorder state")
}
