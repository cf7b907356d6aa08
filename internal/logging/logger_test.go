package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_DefaultLevel(t *testing.T) {
	t.Setenv("GOALFLOW_LOG_LEVEL", "")

	logger := Init()

	require.NotNil(t, logger)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
}

func TestInit_LevelFromEnvironment(t *testing.T) {
	t.Setenv("GOALFLOW_LOG_LEVEL", "debug")

	logger := Init()

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
}

func TestInit_InvalidLevelFallsBack(t *testing.T) {
	t.Setenv("GOALFLOW_LOG_LEVEL", "not-a-level")

	logger := Init()

	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
}

func TestWithComponent(t *testing.T) {
	entry := WithComponent("tasks")

	require.NotNil(t, entry)
	assert.Equal(t, "tasks", entry.Data["component"])
}
