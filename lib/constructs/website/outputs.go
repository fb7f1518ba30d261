package website

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"

	"github.com/trufnetwork/website/infra/config/domain"
)

// Output IDs, each prefixed with the base domain's resource identifier.
const (
	OutputBucketName     = "BucketName"
	OutputCertificateArn = "CertificateArn"
	OutputDistributionID = "DistributionId"
	OutputSiteURL        = "SiteUrl"
	OutputAliasURL       = "AliasUrl"
)

func (w *Website) addOutputs() {
	ident := w.Topology.ResourceIdentifier
	output := func(id string, value *string, description string) {
		awscdk.NewCfnOutput(w.Construct, jsii.String(id), &awscdk.CfnOutputProps{
			Value:       value,
			Description: jsii.String(description),
		})
	}

	output(ident+OutputBucketName, w.Bucket.BucketName(), "Bucket holding "+w.Topology.SiteDomain)
	output(ident+OutputCertificateArn, w.Certificate.CertificateArn(), "Certificate for "+w.Topology.SiteDomain)
	output(ident+OutputDistributionID, w.Distribution.DistributionId(), "Distribution serving "+w.Topology.SiteDomain)
	output(ident+OutputSiteURL, jsii.String(w.SiteURL()), "Site URL")
	for _, name := range w.Topology.CertificateDomains {
		output(domain.ResourceIdentifier(name)+OutputAliasURL, jsii.String("https://"+name), "Alias of "+w.Topology.SiteDomain)
	}
}
