// Package cli provides the command-line interface for dnsdbq.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/hstern/dnsdb-query/internal/api"
	"github.com/hstern/dnsdb-query/internal/config"
	"github.com/hstern/dnsdb-query/internal/format"
	"github.com/hstern/dnsdb-query/internal/models"
	"github.com/hstern/dnsdb-query/internal/normalize"
	"github.com/hstern/dnsdb-query/internal/results"
)

// PackageVersion is the current version of the CLI
const PackageVersion = "1.0.0"

var (
	configFiles []string
	rrset       string
	rdataName   string
	rdataIP     string
	sortKey     string
	reverse     bool
	jsonOut     bool
	limit       int
	before      string
	after       string
	timeout     int
	insecure    bool
	debug       bool
)

// NewRootCmd creates the dnsdbq root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dnsdbq",
		Short: "Passive DNS lookups against the DNSDB API",
		Long: `Query the DNSDB passive-DNS service by rrset name, rdata name or
rdata IP/network, and print the observations as zone-style text or JSON.`,
		Example: `  # All observations for an rrset, optionally constrained by type and bailiwick
  dnsdbq -r www.example.com
  dnsdbq -r example.com/A/example.com

  # Names that resolved to an address or network
  dnsdbq -n ns.example.com/NS
  dnsdbq -i 198.51.100.0/24

  # Newest 100 records as JSON
  dnsdbq -r example.com -l 100 -s time_last -R -j`,
		Version:       PackageVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				_ = cmd.Usage()
				return fmt.Errorf("unexpected argument %q", args[0])
			}
			return nil
		},
		RunE: run,
	}

	cmd.Flags().StringArrayVarP(&configFiles, "config", "c", nil, "config file (repeatable, later files override earlier ones)")
	cmd.Flags().StringVarP(&rrset, "rrset", "r", "", "rrset query <ONAME>[/<RRTYPE>[/<BAILIWICK>]]")
	cmd.Flags().StringVarP(&rdataName, "rdataname", "n", "", "rdata name query <NAME>[/<RRTYPE>]")
	cmd.Flags().StringVarP(&rdataIP, "rdataip", "i", "", "rdata IP query <IPADDRESS|IPRANGE|IPNETWORK>")
	cmd.Flags().StringVarP(&sortKey, "sort", "s", "", "sort results by field")
	cmd.Flags().BoolVarP(&reverse, "reverse", "R", false, "reverse sort order")
	cmd.Flags().BoolVarP(&jsonOut, "json", "j", false, "output records as JSON")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "limit number of results")
	cmd.Flags().StringVar(&before, "before", "", "only output results seen before this time")
	cmd.Flags().StringVar(&after, "after", "", "only output results seen after this time")
	cmd.Flags().IntVar(&timeout, "timeout", 0, "HTTP timeout in seconds (0 uses the transport default)")
	cmd.Flags().BoolVar(&insecure, "insecure", false, "skip TLS certificate verification")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	setupLogging()

	modes := 0
	for _, s := range []string{rrset, rdataName, rdataIP} {
		if s != "" {
			modes++
		}
	}
	if modes != 1 {
		_ = cmd.Usage()
		return fmt.Errorf("exactly one of --rrset, --rdataname or --rdataip is required")
	}

	fsys := afero.NewOsFs()
	paths := configFiles
	if len(paths) == 0 {
		paths = config.DefaultFiles(fsys)
	}
	slog.Debug("loading config", "paths", paths)
	settings, err := config.Load(fsys, paths)
	if err != nil {
		return err
	}
	cfg, err := config.FromMap(settings)
	if err != nil {
		return err
	}
	config.ApplyIntOverride(cmd.Flags().Changed("timeout"), timeout, &cfg.Timeout)

	// Reject bad time bounds before spending a network round trip.
	var beforeTS, afterTS int64
	if before != "" {
		if beforeTS, err = results.ParseTime(before); err != nil {
			return err
		}
	}
	if after != "" {
		if afterTS, err = results.ParseTime(after); err != nil {
			return err
		}
	}

	client := api.NewClient(cfg.Server, cfg.APIKey, limit,
		time.Duration(cfg.Timeout)*time.Second, insecure)
	ctx := context.Background()

	var recs []models.Record
	render := format.RdataText
	switch {
	case rrset != "":
		name, rrtype, bailiwick := normalize.SplitRRset(rrset)
		recs, err = client.QueryRRset(ctx, name, rrtype, bailiwick)
		render = format.RRsetText
	case rdataName != "":
		name, rrtype, splitErr := normalize.SplitRdata(rdataName)
		if splitErr != nil {
			return splitErr
		}
		recs, err = client.QueryRdataName(ctx, name, rrtype)
	default:
		recs, err = client.QueryRdataIP(ctx, rdataIP)
	}
	if err != nil {
		return err
	}

	if sortKey != "" {
		if err := results.Sort(recs, sortKey, reverse); err != nil {
			return err
		}
	}
	if before != "" {
		recs = results.FilterBefore(recs, beforeTS)
	}
	if after != "" {
		recs = results.FilterAfter(recs, afterTS)
	}

	out := cmd.OutOrStdout()
	for _, rec := range recs {
		if jsonOut {
			fmt.Fprintln(out, rec.JSON())
		} else {
			fmt.Fprintln(out, render(rec))
		}
	}
	return nil
}

func setupLogging() {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
