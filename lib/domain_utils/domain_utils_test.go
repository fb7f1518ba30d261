package domain_utils

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/assert"
)

func TestHostedZoneFor_ReusesLookup(t *testing.T) {
	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("ZoneStack"), &awscdk.StackProps{
		Env: &awscdk.Environment{
			Account: jsii.String("123456789012"),
			Region:  jsii.String("us-east-1"),
		},
	})
	site := constructs.NewConstruct(stack, jsii.String("Site"))

	first := HostedZoneFor(site, "ExampleDotCom", "example.com")
	second := HostedZoneFor(stack, "ExampleDotCom", "example.com")
	other := HostedZoneFor(stack, "OtherDotCom", "other.com")

	assert.Equal(t, *first.Node().Path(), *second.Node().Path())
	assert.Len(t, *stack.Node().Children(), 3)
	assert.NotEqual(t, *first.Node().Path(), *other.Node().Path())
	assert.Equal(t, "ZoneStack/ExampleDotComHostedZone", *first.Node().Path())
}
