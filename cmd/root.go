package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vietdv277/vpcplan/internal/aws"
	"github.com/vietdv277/vpcplan/internal/config"
	"github.com/vietdv277/vpcplan/internal/log"
)

var (
	// Global flags
	profile   string
	region    string
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "vpcplan",
	Short: "vpcplan - plan and build AWS VPC networks",
	Long: `vpcplan turns a small network description into a complete AWS VPC layout:
one VPC, an internet gateway when public subnets exist, one route table per
subnet and a shared network ACL.

Planning (no AWS calls when availability_zones is pinned):
  vpcplan validate -f network.yaml   # Check a network file
  vpcplan plan -f network.yaml       # Show the resources that would be created
  vpcplan graph -f network.yaml      # Render the plan as a DOT or Mermaid graph

Provisioning:
  vpcplan apply -f network.yaml      # Create the planned resources
  vpcplan vpc ls                     # List VPCs created by vpcplan
  vpcplan zones                      # List availability zones in the region

Profile:
  vpcplan use prod --region eu-west-1
  vpcplan status`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "AWS profile to use")
	rootCmd.PersistentFlags().StringVarP(&region, "region", "r", "", "AWS region to use")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format (console, json)")

	// Bind flags to viper
	_ = viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	_ = viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
}

func initConfig() {
	// Read from environment variables, e.g. VPCPLAN_LOG_LEVEL
	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()

	log.Configure(viper.GetString("log_level"), viper.GetString("log_format"))

	// Priority: flag > ~/.vpcplan/config.yaml > AWS environment
	profile = config.ResolveProfile(viper.GetString("profile"))
	region = config.ResolveRegion(viper.GetString("region"))
}

// GetProfile returns the AWS profile
func GetProfile() string {
	return profile
}

// GetRegion returns the AWS region
func GetRegion() string {
	return region
}

// newAWSClient builds the client used by commands that talk to AWS
var newAWSClient = func(ctx context.Context) (*aws.Client, error) {
	client, err := aws.NewClient(ctx,
		aws.WithProfile(GetProfile()),
		aws.WithRegion(GetRegion()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS client: %w", err)
	}
	return client, nil
}
