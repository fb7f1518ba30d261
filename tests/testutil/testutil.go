package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
)

// Account and Region every test stack is deployed to.
const (
	Account = "123456789012"
	Region  = "us-east-1"
)

//---------------------------------------------------------------------
// 1. Generic helpers
//---------------------------------------------------------------------

// TmpFile creates a temp file with given content and returns its path.
func TmpFile(t *testing.T, content []byte) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "fixture-*")
	if err != nil {
		t.Fatalf("tmp-file: %v", err)
	}
	if _, err := f.Write(content); err != nil {
		t.Fatalf("tmp-file-write: %v", err)
	}
	f.Close()
	return f.Name()
}

// SiteContent creates a directory holding a minimal static site (index.html and error.html).
func SiteContent(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"index.html": "<html><body>hello</body></html>\n",
		"error.html": "<html><body>not found</body></html>\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write-site-content: %v", err)
		}
	}
	return dir
}

//---------------------------------------------------------------------
// 2. CDK fixtures
//---------------------------------------------------------------------

// HostedZone is a public zone the Route53 context provider should report.
type HostedZone struct {
	Domain string
	ID     string
}

// ZoneContext returns the cached context entry HostedZone_FromLookup reads for zone,
// so tests resolve zones without calling AWS.
func ZoneContext(zone HostedZone) (string, map[string]string) {
	key := fmt.Sprintf("hosted-zone:account=%s:domainName=%s:region=%s", Account, zone.Domain, Region)
	return key, map[string]string{
		"Id":   "/hostedzone/" + zone.ID,
		"Name": zone.Domain + ".",
	}
}

// NewApp returns a CDK app whose context answers lookups for zones.
func NewApp(t *testing.T, context map[string]interface{}, zones ...HostedZone) awscdk.App {
	t.Helper()
	ctx := map[string]interface{}{}
	for k, v := range context {
		ctx[k] = v
	}
	for _, zone := range zones {
		key, value := ZoneContext(zone)
		ctx[key] = value
	}
	return awscdk.NewApp(&awscdk.AppProps{Context: &ctx})
}

// StackProps pins a test stack to Account and Region.
func StackProps() *awscdk.StackProps {
	return StackPropsIn(Region)
}

// StackPropsIn pins a test stack to Account and region.
func StackPropsIn(region string) *awscdk.StackProps {
	return &awscdk.StackProps{
		Env: &awscdk.Environment{
			Account: jsii.String(Account),
			Region:  jsii.String(region),
		},
	}
}

// NewStack creates a stack in a fresh app that knows about zones.
func NewStack(t *testing.T, id string, zones ...HostedZone) awscdk.Stack {
	t.Helper()
	app := NewApp(t, nil, zones...)
	return awscdk.NewStack(app, jsii.String(id), StackProps())
}
