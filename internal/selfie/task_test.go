package selfie

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewTaskTickInterval(t *testing.T) {
	task := NewTask(nil, nil, nil, nil, "", "", 0)
	require.Equal(t, 5*time.Minute, task.tick)

	task = NewTask(nil, nil, nil, nil, "", "", time.Minute)
	require.Equal(t, time.Minute, task.tick)
}
