package domain

import (
	"time"
)

// WorkflowStatus represents the overall status of a tag/release run
type WorkflowStatus string

const (
	WorkflowStatusPending   WorkflowStatus = "pending"
	WorkflowStatusRunning   WorkflowStatus = "running"
	WorkflowStatusCompleted WorkflowStatus = "completed"
	WorkflowStatusFailed    WorkflowStatus = "failed"
)

// Stage identifies a state of the run state machine
type Stage string

const (
	StageStart          Stage = "start"
	StageInputsResolved Stage = "inputs_resolved"
	StageCommitResolved Stage = "commit_resolved"
	StageReleaseFlow    Stage = "release_flow"
	StageTagFlow        Stage = "tag_flow"
	StageOutputsEmitted Stage = "outputs_emitted"
	StageDone           Stage = "done"
	StageFailed         Stage = "failed"
)

// StageRecord represents a single transition of the run
type StageRecord struct {
	From Stage     `json:"from"`
	To   Stage     `json:"to"`
	At   time.Time `json:"at"`
}

// RunState tracks the progress of a single invocation. It lives only for the
// duration of the process.
type RunState struct {
	RunID       string         `json:"run_id"`
	StartedAt   time.Time      `json:"started_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Stage       Stage          `json:"stage"`
	Transitions []StageRecord  `json:"transitions"`
	Status      WorkflowStatus `json:"status"`
	Error       string         `json:"error,omitempty"`
}

// NewRunState creates a new run state positioned at StageStart
func NewRunState(runID string) *RunState {
	now := time.Now()
	return &RunState{
		RunID:       runID,
		StartedAt:   now,
		UpdatedAt:   now,
		Stage:       StageStart,
		Transitions: []StageRecord{},
		Status:      WorkflowStatusPending,
	}
}

// Advance moves the run to the given stage. Advancing a finished run is a no-op.
func (rs *RunState) Advance(stage Stage) {
	if rs.Finished() {
		return
	}
	now := time.Now()
	rs.Transitions = append(rs.Transitions, StageRecord{From: rs.Stage, To: stage, At: now})
	rs.Stage = stage
	rs.Status = WorkflowStatusRunning
	rs.UpdatedAt = now
}

// Complete marks the run as done
func (rs *RunState) Complete() {
	rs.Advance(StageDone)
	if rs.Stage == StageDone {
		rs.Status = WorkflowStatusCompleted
	}
}

// Fail marks the run as failed with the given error
func (rs *RunState) Fail(err error) {
	if rs.Finished() {
		return
	}
	rs.Advance(StageFailed)
	rs.Status = WorkflowStatusFailed
	if err != nil {
		rs.Error = err.Error()
	}
}

// Finished reports whether the run reached a terminal stage
func (rs *RunState) Finished() bool {
	return rs.Stage == StageDone || rs.Stage == StageFailed
}

// Path returns the sequence of stages visited, starting at StageStart
func (rs *RunState) Path() []Stage {
	path := []Stage{StageStart}
	for _, t := range rs.Transitions {
		path = append(path, t.To)
	}
	return path
}
