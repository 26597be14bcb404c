package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/cybergodev/leptjson"
)

var errInputsFailed = errors.New("one or more inputs failed to parse")

// NewCLI builds the leptjson command tree
func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "leptjson",
		Short:         "Validate and parse JSON scalar values",
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Log every parse to stderr")

	parseCmd := &cobra.Command{
		Use:   "parse [JSON...]",
		Short: "Parse JSON text given as arguments, or stdin when none",
		RunE:  parseHandler,
	}

	checkCmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Parse files concurrently and print a result table",
		Args:  cobra.MinimumNArgs(1),
		RunE:  checkHandler,
	}

	rootCmd.AddCommand(parseCmd, checkCmd)
	return rootCmd
}

func newProcessor(cmd *cobra.Command) (*leptjson.Processor, error) {
	cfg, err := leptjson.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Debug = true
	}

	p := leptjson.New(cfg)
	p.SetLogger(leptjson.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel()))
	return p, nil
}

func parseHandler(cmd *cobra.Command, args []string) error {
	p, err := newProcessor(cmd)
	if err != nil {
		return err
	}
	defer p.Close()

	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		args = []string{string(data)}
	}

	out := cmd.OutOrStdout()
	failed := false
	for _, text := range args {
		v, err := p.Parse(cmd.Context(), text)
		if err != nil {
			failed = true
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "%s %s\n", v.GetType(), v)
	}

	if failed {
		return errInputsFailed
	}
	return nil
}

func checkHandler(cmd *cobra.Command, args []string) error {
	p, err := newProcessor(cmd)
	if err != nil {
		return err
	}
	defer p.Close()

	texts := make([]string, len(args))
	for i, name := range args {
		data, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		texts[i] = string(data)
	}

	results, err := p.ParseBatch(cmd.Context(), texts)
	if err != nil {
		return err
	}

	var data [][]string
	failed := false
	for _, r := range results {
		value := r.Value.String()
		if r.Err != nil {
			failed = true
			value = "-"
		}
		data = append(data, []string{filepath.Base(args[r.Index]), r.Status.String(), value})
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"FILE", "STATUS", "VALUE"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	if failed {
		return errInputsFailed
	}
	return nil
}
