package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunState(t *testing.T) {
	t.Run("Should record the happy path", func(t *testing.T) {
		rs := NewRunState("run-1")
		assert.Equal(t, WorkflowStatusPending, rs.Status)
		rs.Advance(StageInputsResolved)
		rs.Advance(StageCommitResolved)
		rs.Advance(StageReleaseFlow)
		rs.Advance(StageOutputsEmitted)
		rs.Complete()
		assert.Equal(t, WorkflowStatusCompleted, rs.Status)
		assert.Equal(t, []Stage{
			StageStart, StageInputsResolved, StageCommitResolved,
			StageReleaseFlow, StageOutputsEmitted, StageDone,
		}, rs.Path())
	})
	t.Run("Should stop advancing after failure", func(t *testing.T) {
		rs := NewRunState("run-2")
		rs.Advance(StageInputsResolved)
		rs.Fail(errors.New("boom"))
		rs.Advance(StageCommitResolved)
		rs.Complete()
		assert.Equal(t, StageFailed, rs.Stage)
		assert.Equal(t, WorkflowStatusFailed, rs.Status)
		assert.Equal(t, "boom", rs.Error)
		assert.True(t, rs.Finished())
		assert.Equal(t, []Stage{StageStart, StageInputsResolved, StageFailed}, rs.Path())
	})
}
