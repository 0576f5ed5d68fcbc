package kvbench

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func ExitOnError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	fmt.Fprintln(os.Stderr)
	os.Exit(1)
}

// flagToProperty maps run-command flags onto the property names the rest of
// the harness consumes. Only flags the user actually set override property
// files, so "-P file.yaml --workers 4" behaves as expected.
var flagToProperty = map[string]string{
	"store":           PropertyStore,
	"table":           PropertyTableName,
	"key-column":      PropertyKeyColumn,
	"payload-column":  PropertyPayloadColumn,
	"workers":         PropertyWorkers,
	"duration":        PropertyDuration,
	"workload":        PropertyWorkload,
	"read-ratio":      PropertyReadRatio,
	"initial-rows":    PropertyInitialRows,
	"payload-size":    PropertyPayloadSize,
	"pool-size":       PropertyPoolSize,
	"status-interval": PropertyStatusInterval,
	"metrics-addr":    PropertyMetricsAddr,
	"log-level":       PropertyLogLevel,
}

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "kvbench",
		Short: "Benchmark transactional key-value stores",
		Long: `kvbench drives a concurrent read/write workload against a key-value
store binding and reports throughput and exact latency percentiles.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCommand())
	root.AddCommand(newStoresCommand())
	return root
}

func newRunCommand() *cobra.Command {
	var (
		propertyFiles     []string
		propertyOverrides []string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute a benchmark run",
		RunE: func(cmd *cobra.Command, _ []string) error {
			props := NewProperties()
			for _, path := range propertyFiles {
				loaded, err := LoadProperties(path)
				if err != nil {
					return err
				}
				props.Merge(loaded)
			}
			cmd.Flags().Visit(func(f *pflag.Flag) {
				if property, ok := flagToProperty[f.Name]; ok {
					props.Add(property, f.Value.String())
				}
			})
			for _, override := range propertyOverrides {
				parts := strings.SplitN(override, "=", 2)
				if len(parts) != 2 {
					return fmt.Errorf("invalid property %q, expect name=value", override)
				}
				props.Add(parts[0], parts[1])
			}
			return runBenchmark(props)
		},
	}

	flags := cmd.Flags()
	flags.String("store", PropertyStoreDefault,
		`Store binding to benchmark (see "kvbench stores")`)
	flags.String("table", PropertyTableNameDefault,
		"Target table name")
	flags.String("key-column", PropertyKeyColumnDefault,
		"Primary key column")
	flags.String("payload-column", PropertyPayloadColumnDefault,
		"Column used to store the payload string")
	flags.Int("workers", 16,
		"Number of concurrent workers")
	flags.Float64("duration", 60,
		"Benchmark duration in seconds (excluding data preparation)")
	flags.String("workload", PropertyWorkloadDefault,
		"Type of workload to run: read, write or mixed")
	flags.Float64("read-ratio", 0.5,
		"Read ratio for the mixed workload (0.0 - 1.0)")
	flags.Int64("initial-rows", 10000,
		"Number of rows to pre-insert for read workloads")
	flags.Int64("payload-size", 512,
		"Payload size in bytes for inserted rows")
	flags.Int("pool-size", 0,
		"Connection pool size hint for the store binding (0 = binding default)")
	flags.Float64("status-interval", 10,
		"Seconds between live status lines (0 disables them)")
	flags.String("metrics-addr", "",
		"Address to serve prometheus metrics on (empty disables)")
	flags.String("log-level", PropertyLogLevelDefault,
		"Log level: quiet, error, warn, info, debug or verbose")
	flags.StringArrayVarP(&propertyFiles, "property-file", "P", nil,
		"Load properties from a file (k=v lines, or YAML for .yaml/.yml)")
	flags.StringArrayVarP(&propertyOverrides, "property", "p", nil,
		"Set a single property value (name=value)")

	return cmd
}

func runBenchmark(props Properties) error {
	SetLogLevel(props.GetDefault(PropertyLogLevel, PropertyLogLevelDefault))
	config, err := NewBenchmarkConfig(props)
	if err != nil {
		return err
	}
	store, err := NewStore(config.Store, props)
	if err != nil {
		return err
	}
	if err := store.Init(); err != nil {
		return fmt.Errorf("fail to init store %s: %w", config.Store, err)
	}
	defer func() {
		if err := store.Cleanup(); err != nil {
			Warnf("store cleanup failed: %s", err)
		}
	}()
	ServeMetrics(config.MetricsAddr)

	result, err := NewRunner(config, store).Run()
	if err != nil {
		return err
	}
	result.WriteSummary(os.Stdout)
	return nil
}

func newStoresCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stores",
		Short: "List registered store bindings",
		Run: func(_ *cobra.Command, _ []string) {
			names := make([]string, 0, len(Stores))
			for name := range Stores {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				Output("%s", name)
			}
		},
	}
}

func Main() {
	if err := NewRootCommand().Execute(); err != nil {
		ExitOnError("%s", err)
	}
}
