// Command wheelpick computes the wheel columns of a bounded date/time picker
// and maps selections back onto corrected values.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/datetimepicker"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var debugEnabled bool

func debugf(format string, args ...interface{}) {
	if debugEnabled {
		log.Printf("DEBUG: "+format, args...)
	}
}

type rootFlags struct {
	configPath string
	flags      pickerConfig
	now        func() time.Time
}

func newRootCmd() *cobra.Command {
	rf := &rootFlags{now: time.Now}
	root := &cobra.Command{
		Use:           "wheelpick",
		Short:         "Inspect the columns of a bounded date/time wheel picker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&rf.configPath, "config", "", "YAML picker config file")
	pf.BoolVar(&debugEnabled, "debug", os.Getenv("DEBUG") == "1", "log debug output")
	pf.StringVar(&rf.flags.Type, "type", "", "picker type: datetime, date, year-month or time")
	pf.StringVar(&rf.flags.MinDate, "min", "", "min bound, e.g. 2020-01-15T08:30")
	pf.StringVar(&rf.flags.MaxDate, "max", "", "max bound")
	pf.Int("min-hour", 0, "first hour of a time picker")
	pf.Int("max-hour", 23, "last hour of a time picker")
	pf.Int("min-minute", 0, "first minute of a time picker")
	pf.Int("max-minute", 59, "last minute of a time picker")
	pf.StringVar(&rf.flags.Location, "location", "", "time zone bounds are interpreted in")

	root.AddCommand(
		newRangesCmd(rf),
		newColumnsCmd(rf),
		newCorrectCmd(rf),
		newSelectCmd(rf),
	)
	return root
}

// config resolves the picker Config from the config file and flags, flags
// taking precedence.
func (rf *rootFlags) config(cmd *cobra.Command) (datetimepicker.Config, error) {
	var pc pickerConfig
	if rf.configPath != "" {
		var err error
		if pc, err = readPickerConfigFile(rf.configPath); err != nil {
			return datetimepicker.Config{}, err
		}
		debugf("loaded %s: %+v", rf.configPath, pc)
	}
	flags := rf.flags
	for name, dest := range map[string]**int{
		"min-hour":   &flags.MinHour,
		"max-hour":   &flags.MaxHour,
		"min-minute": &flags.MinMinute,
		"max-minute": &flags.MaxMinute,
	} {
		if !cmd.Flags().Changed(name) {
			continue
		}
		n, err := cmd.Flags().GetInt(name)
		if err != nil {
			return datetimepicker.Config{}, errors.Wrapf(err, "reading --%s", name)
		}
		*dest = &n
	}
	cfg, err := pc.merge(flags).build(rf.now())
	if err != nil {
		return datetimepicker.Config{}, err
	}
	debugf("picker config: type=%s min=%s max=%s hours=[%d, %d] minutes=[%d, %d]",
		cfg.Type, cfg.MinDate, cfg.MaxDate, cfg.MinHour, cfg.MaxHour, cfg.MinMinute, cfg.MaxMinute)
	return cfg, nil
}

func newRangesCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "ranges [value]",
		Short: "Print the legal range of every column around a value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rf.config(cmd)
			if err != nil {
				return err
			}
			v := datetimepicker.CorrectString(cfg, firstArg(args))
			for _, r := range datetimepicker.BuildRanges(cfg, v) {
				fmt.Fprintln(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}
}

func newColumnsCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "columns [value]",
		Short: "Print the column values shown around a value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rf.config(cmd)
			if err != nil {
				return err
			}
			v := datetimepicker.CorrectString(cfg, firstArg(args))
			for _, col := range datetimepicker.BuildColumns(cfg, v).Display {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", col.Field, strings.Join(col.Values, " "))
			}
			return nil
		},
	}
}

func newCorrectCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "correct value...",
		Short: "Print every value moved into the picker's bounds",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rf.config(cmd)
			if err != nil {
				return err
			}
			for _, arg := range args {
				v := datetimepicker.CorrectString(cfg, arg)
				debugf("%q corrected to %s", arg, v)
				fmt.Fprintln(cmd.OutOrStdout(), v.Format(cfg.Type))
			}
			return nil
		},
	}
}

func newSelectCmd(rf *rootFlags) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "select index...",
		Short: "Print the value selected by one index per column",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rf.config(cmd)
			if err != nil {
				return err
			}
			indexes := make([]int, len(args))
			for i, arg := range args {
				if indexes[i], err = strconv.Atoi(arg); err != nil {
					return errors.Wrapf(err, "parsing index %d", i)
				}
			}
			current := datetimepicker.CorrectString(cfg, from)
			cols := datetimepicker.BuildColumns(cfg, current)
			if len(indexes) != len(cols.Origin) {
				return errors.Newf("expected %d indexes, got %d", len(cols.Origin), len(indexes))
			}
			v := datetimepicker.MapSelection(cfg, current, indexes, cols.Origin)
			fmt.Fprintln(cmd.OutOrStdout(), v.Format(cfg.Type))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "value the columns are built around")
	return cmd
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "wheelpick: %v\n", err)
		os.Exit(1)
	}
}
