// Package execution drives a workout while it is being performed: edits are
// applied to a local copy first and persisted in the background.
package execution

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/2beens/fittrack/internal/workouts"
	"github.com/2beens/fittrack/pkg/observable"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const (
	DefaultDebounceDelay = 1500 * time.Millisecond
	DefaultGraceDelay    = 100 * time.Millisecond
)

var (
	ErrUnknownSet = errors.New("set does not belong to this workout")
	ErrClosed     = errors.New("session closed")
)

type API interface {
	GetInstance(ctx context.Context, id int) (*workouts.Instance, error)
	UpdateSet(ctx context.Context, setID int, update workouts.SetUpdate) (*workouts.SetUpdateResult, error)
	CompleteInstance(ctx context.Context, id int) (*workouts.Instance, error)
}

// State is what subscribers see. Instance is the local, possibly optimistic,
// copy; Err is the last persist failure, cleared by the next success.
type State struct {
	Instance workouts.Instance
	Err      error
}

type Option func(*Session)

func WithDebounceDelay(d time.Duration) Option {
	return func(s *Session) { s.debounceDelay = d }
}

func WithGraceDelay(d time.Duration) Option {
	return func(s *Session) { s.graceDelay = d }
}

type Session struct {
	api        API
	instanceID int

	debouncer     *Debouncer
	debounceDelay time.Duration
	graceDelay    time.Duration

	// mu orders local edits and server refreshes of state
	mu    sync.Mutex
	state *observable.Value[State]
	// pending holds the local edits still waiting for their debounced write,
	// re-applied whenever state is replaced with server data
	pending    map[string]pendingEdit
	pendingSeq uint64

	ctx    context.Context
	cancel context.CancelFunc
}

type pendingEdit struct {
	seq    uint64
	setID  int
	change func(*workouts.ExerciseSet)
}

// NewSession loads the instance and returns a session editing it. The
// session's background writes live until Close.
func NewSession(ctx context.Context, api API, instanceID int, opts ...Option) (*Session, error) {
	inst, err := api.GetInstance(ctx, instanceID)
	if err != nil {
		return nil, fmt.Errorf("load workout %d: %w", instanceID, err)
	}

	sessionCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s := &Session{
		api:           api,
		instanceID:    instanceID,
		debouncer:     NewDebouncer(),
		debounceDelay: DefaultDebounceDelay,
		graceDelay:    DefaultGraceDelay,
		state:         observable.NewValue(State{Instance: *inst}),
		pending:       map[string]pendingEdit{},
		ctx:           sessionCtx,
		cancel:        cancel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Session) State() State {
	return s.state.Get()
}

// Subscribe calls fn on every state change until the returned func is called.
func (s *Session) Subscribe(fn func(State)) (unsubscribe func()) {
	return s.state.Subscribe(fn)
}

func (s *Session) closed() bool {
	return s.ctx.Err() != nil
}

// edit applies change to the set on a copy of the local instance and
// publishes it.
func (s *Session) edit(setID int, change func(*workouts.ExerciseSet)) error {
	if s.closed() {
		return ErrClosed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.state.Get()
	inst := cloneInstance(current.Instance)
	set := findSet(&inst, setID)
	if set == nil {
		return ErrUnknownSet
	}
	change(set)
	s.state.Set(State{Instance: inst, Err: current.Err})
	return nil
}

func (s *Session) SetReps(setID, reps int) error {
	return s.debouncedEdit(
		setID, "actualReps",
		func(set *workouts.ExerciseSet) { set.ActualReps = &reps },
		workouts.SetUpdate{ActualReps: &reps},
	)
}

func (s *Session) SetWeight(setID int, weight float64) error {
	return s.debouncedEdit(
		setID, "weight",
		func(set *workouts.ExerciseSet) { set.Weight = &weight },
		workouts.SetUpdate{Weight: &weight},
	)
}

// debouncedEdit applies change locally right away and writes update once the
// field has been quiet for the debounce delay.
func (s *Session) debouncedEdit(setID int, field string, change func(*workouts.ExerciseSet), update workouts.SetUpdate) error {
	if err := s.edit(setID, change); err != nil {
		return err
	}

	key := fieldKey(setID, field)
	s.mu.Lock()
	s.pendingSeq++
	seq := s.pendingSeq
	s.pending[key] = pendingEdit{seq: seq, setID: setID, change: change}
	s.mu.Unlock()

	s.debouncer.Schedule(key, s.debounceDelay, func() {
		// the write is in flight now, a failure must not bring it back
		s.mu.Lock()
		if p, ok := s.pending[key]; ok && p.seq == seq {
			delete(s.pending, key)
		}
		s.mu.Unlock()
		_, _ = s.persist(s.ctx, setID, update)
	})
	return nil
}

// ToggleCompleted flips the set and persists it straight away. The answer
// carries the instance status, so a server-side promotion shows up.
func (s *Session) ToggleCompleted(ctx context.Context, setID int) error {
	var completed bool
	err := s.edit(setID, func(set *workouts.ExerciseSet) {
		set.Completed = !set.Completed
		completed = set.Completed
	})
	if err != nil {
		return err
	}
	_, err = s.persist(ctx, setID, workouts.SetUpdate{Completed: &completed})
	return err
}

// persist writes one set update. On success the returned set and instance
// status are merged into the local copy; on failure the copy is refetched.
func (s *Session) persist(ctx context.Context, setID int, update workouts.SetUpdate) (*workouts.SetUpdateResult, error) {
	if s.closed() {
		return nil, ErrClosed
	}

	res, err := s.api.UpdateSet(ctx, setID, update)
	if err != nil {
		log.Errorf("workout %d: persist set %d: %s", s.instanceID, setID, err)
		s.resync(ctx, err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inst := cloneInstance(s.state.Get().Instance)
	if set := findSet(&inst, setID); set != nil {
		*set = res.ExerciseSet
	}
	if res.InstanceStatus != "" {
		inst.Status = res.InstanceStatus
	}
	s.applyPending(&inst)
	s.state.Set(State{Instance: inst})
	return res, nil
}

// resync replaces the local copy with the server's. Edits still waiting for
// their debounced write are re-applied on top; cause is reported through state.
func (s *Session) resync(ctx context.Context, cause error) {
	inst, err := s.api.GetInstance(ctx, s.instanceID)

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.state.Get()
	if err != nil {
		log.Errorf("workout %d: refetch: %s", s.instanceID, err)
		s.state.Set(State{Instance: current.Instance, Err: multierr.Append(cause, err)})
		return
	}
	s.applyPending(inst)
	s.state.Set(State{Instance: *inst, Err: cause})
}

// applyPending must be called with mu held.
func (s *Session) applyPending(inst *workouts.Instance) {
	edits := make([]pendingEdit, 0, len(s.pending))
	for _, p := range s.pending {
		edits = append(edits, p)
	}
	// replay in the order they were made
	sort.Slice(edits, func(i, j int) bool { return edits[i].seq < edits[j].seq })
	for _, p := range edits {
		if set := findSet(inst, p.setID); set != nil {
			p.change(set)
		}
	}
}

// CanComplete is true when every set is done and the workout is not
// completed yet.
func (s *Session) CanComplete() bool {
	inst := s.state.Get().Instance
	return inst.Status != workouts.Status.Completed && workouts.AllSetsCompleted(inst)
}

// Complete writes out pending edits, waits the grace delay so the last
// writes land, then completes the workout.
func (s *Session) Complete(ctx context.Context) (*workouts.Instance, error) {
	if s.closed() {
		return nil, ErrClosed
	}
	if !s.CanComplete() {
		return nil, workouts.ErrSetsIncomplete
	}

	s.debouncer.FlushAll()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.graceDelay):
	}

	completed, err := s.api.CompleteInstance(ctx, s.instanceID)
	if err != nil {
		log.Errorf("workout %d: complete: %s", s.instanceID, err)
		s.resync(ctx, err)
		return nil, err
	}

	s.mu.Lock()
	s.state.Set(State{Instance: *completed})
	s.mu.Unlock()
	return completed, nil
}

// Close drops pending writes. The session is unusable afterwards.
func (s *Session) Close() {
	s.debouncer.Stop()
	s.cancel()

	s.mu.Lock()
	clear(s.pending)
	s.mu.Unlock()
}

func fieldKey(setID int, field string) string {
	return fmt.Sprintf("%d:%s", setID, field)
}

func findSet(inst *workouts.Instance, setID int) *workouts.ExerciseSet {
	for i := range inst.Exercises {
		for j := range inst.Exercises[i].Sets {
			if inst.Exercises[i].Sets[j].ID == setID {
				return &inst.Exercises[i].Sets[j]
			}
		}
	}
	return nil
}

// cloneInstance copies the exercise and set slices so a published state is
// never mutated afterwards.
func cloneInstance(inst workouts.Instance) workouts.Instance {
	exercises := make([]workouts.InstanceExercise, len(inst.Exercises))
	for i, ex := range inst.Exercises {
		ex.Sets = append([]workouts.ExerciseSet(nil), ex.Sets...)
		exercises[i] = ex
	}
	inst.Exercises = exercises
	return inst
}
