package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCdkEnv(t *testing.T) {
	t.Setenv("CDK_DEPLOY_ACCOUNT", "")
	t.Setenv("CDK_DEPLOY_REGION", "")
	t.Setenv("CDK_DEFAULT_ACCOUNT", "111111111111")
	t.Setenv("CDK_DEFAULT_REGION", "eu-west-1")

	env := CdkEnv()
	assert.Equal(t, "111111111111", *env.Account)
	assert.Equal(t, "eu-west-1", *env.Region)

	t.Setenv("CDK_DEPLOY_ACCOUNT", "222222222222")
	t.Setenv("CDK_DEPLOY_REGION", "ap-south-1")
	env = CloudFrontEnv()
	assert.Equal(t, "222222222222", *env.Account)
	assert.Equal(t, CloudFrontRegion, *env.Region)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("warn")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))

	_, err = NewLogger("loud")
	assert.Error(t, err)
}
