package main

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"go.uber.org/zap"

	"github.com/trufnetwork/website/infra/config"
	"github.com/trufnetwork/website/infra/lib/utils"
	"github.com/trufnetwork/website/infra/stacks"
)

func main() {
	logger, err := utils.NewLogger(config.MustParseEnv[config.LoggingEnvironmentVariables]().LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	restore := zap.ReplaceGlobals(logger)
	defer restore()

	app := awscdk.NewApp(nil)

	// CloudFront only reads certificates from us-east-1, so the whole stack lives there.
	stacks.WebsiteStack(
		app,
		config.WithStackSuffix(app, "Website"),
		&stacks.WebsiteStackProps{
			StackProps: awscdk.StackProps{
				Env:                   utils.CloudFrontEnv(),
				CrossRegionReferences: jsii.Bool(true),
				Description:           jsii.String("Static websites served from S3 through CloudFront"),
			},
		},
	)

	app.Synth(nil)
}
