package config

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
)

// IsStackInSynthesis reports whether the stack holding scope is being synthesized.
// `cdk list` and `cdk destroy` skip bundling, and with it the site configuration.
func IsStackInSynthesis(scope constructs.Construct) bool {
	stack := awscdk.Stack_Of(scope)

	// If the scope is not associated with a stack, return false
	if stack == nil {
		return false
	}

	return *stack.BundlingRequired()
}
