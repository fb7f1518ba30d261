package main

import (
	"bytes"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/route53"
	"github.com/aws/aws-sdk-go/service/route53/route53iface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trufnetwork/website/infra/config/sites"
	"github.com/trufnetwork/website/infra/lib/zonecheck"
	"github.com/trufnetwork/website/infra/tests/testdata"
)

type fakeRoute53 struct {
	route53iface.Route53API
	known map[string]string
}

func (f *fakeRoute53) ListHostedZonesByNameWithContext(_ aws.Context, in *route53.ListHostedZonesByNameInput, _ ...request.Option) (*route53.ListHostedZonesByNameOutput, error) {
	out := &route53.ListHostedZonesByNameOutput{}
	name := aws.StringValue(in.DNSName)
	if id, ok := f.known[name]; ok {
		out.HostedZones = []*route53.HostedZone{{Name: aws.String(name), Id: aws.String("/hostedzone/" + id)}}
	}
	return out, nil
}

func execute(t *testing.T, known map[string]string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(func(string) (route53iface.Route53API, error) {
		return &fakeRoute53{known: known}, nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestZonecheck_Domains(t *testing.T) {
	out, err := execute(t, map[string]string{"example.com.": "Z1"}, "example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "example.com\tZ1")

	_, err = execute(t, map[string]string{"example.com.": "Z1"}, "example.com", "missing.org")
	assert.ErrorIs(t, err, zonecheck.ErrMissingZone)
}

func TestZonecheck_SitesFile(t *testing.T) {
	known := map[string]string{"example.com.": "Z1", "example.org.": "Z2"}
	out, err := execute(t, known, "--sites", testdata.Path("sites", "sites.toml"))
	require.NoError(t, err)
	assert.Contains(t, out, "example.com\tZ1")
	assert.Contains(t, out, "example.org\tZ2")

	_, err = execute(t, known, "--sites", testdata.Path("sites", "empty.toml"))
	assert.ErrorIs(t, err, sites.ErrNoSites)
}
