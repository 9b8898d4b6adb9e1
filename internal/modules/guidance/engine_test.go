package guidance

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	engine, err := NewEngine(zerolog.Nop())
	require.NoError(t, err)
	return engine
}

func TestFlowchartDataIsConsistent(t *testing.T) {
	engine := newTestEngine(t)

	assert.Equal(t, 7, engine.StepCount())

	// Every option must lead somewhere the engine can resolve.
	for _, step := range engine.Steps() {
		require.NotEmpty(t, step.Options, "step %d has no options", step.Step)
		for _, opt := range step.Options {
			if opt.AdviceKey != "" {
				_, err := engine.AdviceFor(opt.AdviceKey)
				assert.NoError(t, err)
			} else {
				_, err := engine.Step(opt.Next)
				assert.NoError(t, err)
			}
		}
	}
}

func TestStartBeginsAtStepOne(t *testing.T) {
	engine := newTestEngine(t)

	session := engine.Start()
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, 1, session.Current)
	assert.Equal(t, []int{1}, session.Path)
	assert.False(t, session.Complete())
}

func TestNoBudgetResolvesImmediately(t *testing.T) {
	engine := newTestEngine(t)
	session := engine.Start()

	// "No, I don't have a budget" terminates at step 1 without visiting step 2.
	got, err := engine.Choose(session.ID, 1)
	require.NoError(t, err)
	assert.True(t, got.Complete())
	assert.Equal(t, "createBudget", got.AdviceKey)
	require.NotNil(t, got.Advice)
	assert.Equal(t, "Priority: Create a Budget", got.Advice.Title)
	assert.Equal(t, []int{1}, got.Path)
}

func TestFullWalkToInvesting(t *testing.T) {
	engine := newTestEngine(t)
	session := engine.Start()

	// Answer every step with the choice that advances.
	advancing := []int{0, 1, 0, 0, 1, 0}
	for _, idx := range advancing {
		got, err := engine.Choose(session.ID, idx)
		require.NoError(t, err)
		assert.False(t, got.Complete())
	}

	got, err := engine.Choose(session.ID, 0)
	require.NoError(t, err)
	assert.True(t, got.Complete())
	assert.Equal(t, "startInvesting", got.AdviceKey)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, got.Path)
}

func TestChooseAfterCompleteFails(t *testing.T) {
	engine := newTestEngine(t)
	session := engine.Start()

	_, err := engine.Choose(session.ID, 1)
	require.NoError(t, err)

	_, err = engine.Choose(session.ID, 0)
	assert.ErrorIs(t, err, ErrFlowComplete)
}

func TestChooseRejectsBadOption(t *testing.T) {
	engine := newTestEngine(t)
	session := engine.Start()

	_, err := engine.Choose(session.ID, 2)
	assert.ErrorIs(t, err, ErrInvalidOption)

	_, err = engine.Choose(session.ID, -1)
	assert.ErrorIs(t, err, ErrInvalidOption)

	// A rejected choice leaves the session where it was.
	got, err := engine.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Current)
}

func TestRestartResetsSession(t *testing.T) {
	engine := newTestEngine(t)
	session := engine.Start()

	_, err := engine.Choose(session.ID, 1)
	require.NoError(t, err)

	got, err := engine.Restart(session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, 1, got.Current)
	assert.Equal(t, []int{1}, got.Path)
	assert.False(t, got.Complete())
	assert.Empty(t, got.AdviceKey)
}

func TestUnknownSessionErrors(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = engine.Choose("missing", 0)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = engine.Restart("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestProgress(t *testing.T) {
	engine := newTestEngine(t)
	session := engine.Start()

	assert.Equal(t, 14, session.Progress(engine.StepCount()))

	_, err := engine.Choose(session.ID, 0)
	require.NoError(t, err)
	got, err := engine.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, 29, got.Progress(engine.StepCount()))

	_, err = engine.Choose(session.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 100, got.Progress(engine.StepCount()))
}

func TestEngineValidationCatchesBrokenData(t *testing.T) {
	broken := []Step{
		{
			Step:     1,
			Question: "Q",
			Options:  []Option{{Text: "go", Next: 9}},
		},
	}
	_, err := newEngine(broken, adviceTemplates, zerolog.Nop())
	assert.ErrorIs(t, err, ErrUnknownStep)

	missingAdvice := []Step{
		{
			Step:     1,
			Question: "Q",
			Options:  []Option{{Text: "done", AdviceKey: "nope"}},
		},
	}
	_, err = newEngine(missingAdvice, adviceTemplates, zerolog.Nop())
	assert.ErrorIs(t, err, ErrUnknownAdviceKey)
}
