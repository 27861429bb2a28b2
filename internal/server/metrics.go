package server

import "sync"

type Snapshot struct {
	GamesCreated   uint64            `json:"games_created"`
	ActionTotal    uint64            `json:"action_total"`
	ActionSuccess  uint64            `json:"action_success"`
	ActionRejected uint64            `json:"action_rejected"`
	ByAction       map[string]uint64 `json:"by_action"`
	ByOutcome      map[string]uint64 `json:"by_outcome"`
	ByErrorCode    map[string]uint64 `json:"by_error_code"`
}

// Recorder counts game traffic in memory for the ops endpoint.
type Recorder struct {
	mu        sync.Mutex
	created   uint64
	success   uint64
	rejected  uint64
	byAction  map[string]uint64
	byOutcome map[string]uint64
	byError   map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byAction:  map[string]uint64{},
		byOutcome: map[string]uint64{},
		byError:   map[string]uint64{},
	}
}

func (r *Recorder) RecordGameCreated() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created++
}

// RecordSuccess counts a completed day and the outcome it left the game in.
func (r *Recorder) RecordSuccess(action string, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.byAction[action]++
	r.byOutcome[outcome]++
}

func (r *Recorder) RecordRejected(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected++
	r.byError[code]++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Snapshot{
		GamesCreated:   r.created,
		ActionSuccess:  r.success,
		ActionRejected: r.rejected,
		ActionTotal:    r.success + r.rejected,
		ByAction:       copyCounts(r.byAction),
		ByOutcome:      copyCounts(r.byOutcome),
		ByErrorCode:    copyCounts(r.byError),
	}
}

func copyCounts(in map[string]uint64) map[string]uint64 {
	out := make(map[string]uint64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
