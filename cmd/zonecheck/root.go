package main

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/route53"
	"github.com/aws/aws-sdk-go/service/route53/route53iface"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/trufnetwork/website/infra/config"
	"github.com/trufnetwork/website/infra/config/sites"
	"github.com/trufnetwork/website/infra/lib/utils"
	"github.com/trufnetwork/website/infra/lib/zonecheck"
)

// clientFactory returns a Route53 client for region.
type clientFactory func(region string) (route53iface.Route53API, error)

type options struct {
	sitesPath string
	logLevel  string
	region    string
	newClient clientFactory
}

func newRootCmd(newClient clientFactory) *cobra.Command {
	opts := &options{newClient: newClient}

	cmd := &cobra.Command{
		Use:   "zonecheck [domains...]",
		Short: "Check that a public hosted zone exists for each base domain",
		Long: `zonecheck looks up every base domain in Route53 and fails when one has no public hosted zone.

Without arguments the base domains are read from the sites file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	logLevel := config.MustParseEnv[config.LoggingEnvironmentVariables]().LogLevel
	cmd.Flags().StringVarP(&opts.sitesPath, "sites", "s", config.DefaultSitesConfigPath, "Sites file read when no domain is given")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", logLevel, "Log level: debug, info, warn or error")
	cmd.Flags().StringVar(&opts.region, "region", utils.CloudFrontRegion, "AWS region of the Route53 API client")

	return cmd
}

func run(cmd *cobra.Command, opts *options, domains []string) error {
	logger, err := utils.NewLogger(opts.logLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.Named("zonecheck")

	if len(domains) == 0 {
		cfg, err := sites.LoadConfig(opts.sitesPath)
		if err != nil {
			return err
		}
		if _, err := sites.Require(cfg); err != nil {
			return fmt.Errorf("%s: %w", opts.sitesPath, err)
		}
		domains = cfg.BaseDomains()
	}
	logger.Debug("checking domains", zap.Strings("domains", domains))

	client, err := opts.newClient(opts.region)
	if err != nil {
		return fmt.Errorf("creating route53 client: %w", err)
	}
	zones, err := zonecheck.New(client, logger).CheckAll(cmd.Context(), domains)
	for _, z := range zones {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", z.Domain, z.ID)
	}
	return err
}

func route53Client(region string) (route53iface.Route53API, error) {
	sess, err := session.NewSessionWithOptions(session.Options{
		Config:            aws.Config{Region: aws.String(region)},
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, err
	}
	return route53.New(sess), nil
}
