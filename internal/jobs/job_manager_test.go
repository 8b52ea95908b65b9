package jobs_test

import (
	"errors"
	"testing"

	"orderdesk/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJob struct {
	name     string
	startErr error
	events   *[]string
}

func (j *fakeJob) Name() string { return j.name }

func (j *fakeJob) Start() error {
	if j.startErr != nil {
		return j.startErr
	}
	*j.events = append(*j.events, "start "+j.name)
	return nil
}

func (j *fakeJob) Stop() {
	*j.events = append(*j.events, "stop "+j.name)
}

func TestJobManager_StartAndStopAll(t *testing.T) {
	var events []string
	jm := jobs.NewJobManager(nil,
		&fakeJob{name: "a", events: &events},
		nil,
		&fakeJob{name: "b", events: &events},
	)

	require.NoError(t, jm.StartAll())
	jm.StopAll()
	jm.StopAll()

	assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, events)
}

func TestJobManager_StartFailureStopsStartedJobs(t *testing.T) {
	var events []string
	jm := jobs.NewJobManager(nil,
		&fakeJob{name: "a", events: &events},
		&fakeJob{name: "b", events: &events, startErr: errors.New("bad schedule")},
		&fakeJob{name: "c", events: &events},
	)

	err := jm.StartAll()
	require.ErrorContains(t, err, "failed to start b job")
	assert.Equal(t, []string{"start a", "stop a"}, events)
}
