package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rohanthewiz/serr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rohanthewiz/pageurl"
	"github.com/rohanthewiz/pageurl/config"
	"github.com/rohanthewiz/pageurl/server"
	"github.com/rohanthewiz/pageurl/window"
)

// app carries what every subcommand needs once flags and config are resolved.
type app struct {
	out    io.Writer
	v      *viper.Viper
	cfg    config.Config
	logger *logrus.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, v: viper.New()}
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:           "pageurl",
		Short:         "Inspect page URLs the way the learner pages route them",
		Long:          `Extract topic, story, skill and collection ids, query parameters and exploration versions from page URLs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cfgFile)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pageurl.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "log in JSON")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "report format: text or json")
	rootCmd.SetOut(out)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP inspector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runServe()
		},
	}
	serveCmd.Flags().StringP("address", "a", ":8181", "listen address")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "inspect <href>",
			Short: "Report every field that can be extracted from href",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runInspect(args[0])
			},
		},
		&cobra.Command{
			Use:   "params <href> [name]",
			Short: "Print the query parameters of href, or every value of one parameter",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runParams(args)
			},
		},
		&cobra.Command{
			Use:   "add-field <url> <name> <value>",
			Short: "Append an encoded query field to url",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := fmt.Fprintln(a.out, pageurl.AddField(args[0], args[1], args[2]))
				return err
			},
		},
		serveCmd,
	)

	// Bind flags to viper
	_ = a.v.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag(config.KeyLogJSON, rootCmd.PersistentFlags().Lookup("log-json"))
	_ = a.v.BindPFlag(config.KeyOutput, rootCmd.PersistentFlags().Lookup("output"))
	_ = a.v.BindPFlag(config.KeyServerAddress, serveCmd.Flags().Lookup("address"))

	return rootCmd
}

func (a *app) init(cfgFile string) error {
	config.SetDefaults(a.v)

	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.AddConfigPath(".")
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".pageurl")
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return serr.Wrap(err, "config", cfgFile)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return serr.Wrap(err, "Unable to load config")
	}
	a.cfg = cfg

	a.logger, err = cfg.Log.NewLogger(os.Stderr)
	if err != nil {
		return err
	}
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.WithField("file", used).Debug("Using config file")
	}
	return nil
}

func (a *app) runInspect(href string) error {
	rpt := pageurl.New(window.Parse(href)).Report()
	a.logger.WithField("href", href).Debug("Inspecting")

	if a.cfg.Output == "json" {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(rpt)
	}

	fmt.Fprintf(a.out, "href:     %s\n", rpt.Href)
	fmt.Fprintf(a.out, "pathname: %s\n", rpt.Location.Pathname)
	fmt.Fprintf(a.out, "search:   %s\n", rpt.Location.Search)
	fmt.Fprintf(a.out, "hash:     %s\n", rpt.Location.Hash)
	fmt.Fprintf(a.out, "origin:   %s\n", rpt.Location.Origin)
	fmt.Fprintf(a.out, "iframed:  %t\n", rpt.Iframed)

	for _, fr := range rpt.Fields {
		switch {
		case fr.Found:
			fmt.Fprintf(a.out, "%-26s %s\n", fr.Name, fr.Value)
		case fr.Error != "":
			fmt.Fprintf(a.out, "%-26s (%s)\n", fr.Name, fr.Error)
		default:
			fmt.Fprintf(a.out, "%-26s -\n", fr.Name)
		}
	}
	return nil
}

func (a *app) runParams(args []string) error {
	svc := pageurl.New(window.Parse(args[0]))

	if len(args) == 2 {
		values := svc.QueryFieldValues(args[1])
		if a.cfg.Output == "json" {
			return json.NewEncoder(a.out).Encode(values)
		}
		_, err := fmt.Fprintln(a.out, strings.Join(values, "\n"))
		return err
	}

	params := svc.URLParams()
	if a.cfg.Output == "json" {
		return json.NewEncoder(a.out).Encode(params)
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(a.out, "%s=%s\n", k, params[k])
	}
	return nil
}

func (a *app) runServe() error {
	fmt.Fprintf(a.out, "Starting inspector on %s\n", a.cfg.Server.Address)
	fmt.Fprintf(a.out, "API endpoints:\n")
	fmt.Fprintf(a.out, "  GET /api/v1                - Links\n")
	fmt.Fprintf(a.out, "  GET /api/v1/inspect?href=  - Report for href\n")
	fmt.Fprintf(a.out, "  GET /api/v1/add-field      - Append a query field\n")
	fmt.Fprintf(a.out, "  GET /api/v1/health         - Health check\n")
	fmt.Fprintf(a.out, "  GET /*                     - Report for the requested page\n")

	return server.New(a.cfg.Server.Address, a.logger).Run()
}
