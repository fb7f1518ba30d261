package utils

import (
	"os"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
)

// CloudFrontRegion is the region CloudFront reads viewer certificates from.
const CloudFrontRegion = "us-east-1"

// CdkEnv determines the AWS environment (account+region) in which our stack is to
// be deployed. For more information see: https://docs.aws.amazon.com/cdk/latest/guide/environments.html
func CdkEnv() *awscdk.Environment {
	account := os.Getenv("CDK_DEPLOY_ACCOUNT")
	region := os.Getenv("CDK_DEPLOY_REGION")

	if len(account) == 0 || len(region) == 0 {
		account = os.Getenv("CDK_DEFAULT_ACCOUNT")
		region = os.Getenv("CDK_DEFAULT_REGION")
	}

	return &awscdk.Environment{
		Account: jsii.String(account),
		Region:  jsii.String(region),
	}
}

// CloudFrontEnv is CdkEnv pinned to CloudFrontRegion, so certificates and distributions share a stack.
func CloudFrontEnv() *awscdk.Environment {
	env := CdkEnv()
	env.Region = jsii.String(CloudFrontRegion)
	return env
}
