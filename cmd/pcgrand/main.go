package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	httpfrontend "github.com/chihaya/pcgrand/frontend/http"
	"github.com/chihaya/pcgrand/pkg/log"
	"github.com/chihaya/pcgrand/pkg/metrics"
	"github.com/chihaya/pcgrand/pkg/pcg"
	"github.com/chihaya/pcgrand/pkg/random"
	"github.com/chihaya/pcgrand/pkg/stop"
)

// loadConfig reads the config file named by the --config flag, if any, and
// applies the --seed and --seed-name flags on top of it.
func loadConfig(cmd *cobra.Command) (Config, error) {
	var cfg Config

	configFilePath, err := cmd.Flags().GetString("config")
	if err != nil {
		return cfg, err
	}
	if configFilePath != "" {
		configFile, err := ParseConfigFile(configFilePath)
		if err != nil {
			return cfg, err
		}
		cfg = configFile.PCGRand
	}

	seedSet := cmd.Flags().Changed("seed")
	nameSet := cmd.Flags().Changed("seed-name")
	if seedSet && nameSet {
		return cfg, errors.New("--seed and --seed-name are mutually exclusive")
	}

	if seedSet {
		s, err := cmd.Flags().GetUint64("seed")
		if err != nil {
			return cfg, err
		}
		cfg.Seed, cfg.SeedName = &s, ""
	}
	if nameSet {
		name, err := cmd.Flags().GetString("seed-name")
		if err != nil {
			return cfg, err
		}
		cfg.Seed, cfg.SeedName = nil, name
	}

	return cfg.Validate()
}

// generatorFor builds the generator a drawing command uses.
func generatorFor(cmd *cobra.Command) (*pcg.Generator, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log.Debug("built generator", cfg)
	return cfg.NewGenerator(), nil
}

// PreRunCmdFunc configures logging before any command runs.
func PreRunCmdFunc(cmd *cobra.Command, args []string) error {
	debug, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return err
	}
	jsonLog, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	log.SetOutput(cmd.ErrOrStderr())
	log.SetJSON(jsonLog)
	log.SetDebug(debug)
	if debug {
		log.Debug("debug logging enabled")
	}

	return nil
}

// countFlag returns the non-negative value of the --count flag.
func countFlag(cmd *cobra.Command) (int, error) {
	n, err := cmd.Flags().GetInt("count")
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.Errorf("invalid count %d", n)
	}
	return n, nil
}

func printValues[T any](w io.Writer, values ...T) error {
	for _, v := range values {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}

// Uint32CmdFunc prints raw generator outputs.
func Uint32CmdFunc(cmd *cobra.Command, args []string) error {
	g, err := generatorFor(cmd)
	if err != nil {
		return err
	}
	n, err := countFlag(cmd)
	if err != nil {
		return err
	}

	values := make([]uint32, n)
	for i := range values {
		values[i] = g.Uint32()
	}
	return printValues(cmd.OutOrStdout(), values...)
}

// IntCmdFunc prints integers. Which of --min and --max are set selects the
// range: both for [min, max), one for a single bound, none for raw outputs.
func IntCmdFunc(cmd *cobra.Command, args []string) error {
	g, err := generatorFor(cmd)
	if err != nil {
		return err
	}
	n, err := countFlag(cmd)
	if err != nil {
		return err
	}
	min, err := cmd.Flags().GetInt64("min")
	if err != nil {
		return err
	}
	max, err := cmd.Flags().GetInt64("max")
	if err != nil {
		return err
	}
	hasMin, hasMax := cmd.Flags().Changed("min"), cmd.Flags().Changed("max")

	values := make([]int64, n)
	for i := range values {
		switch {
		case hasMin && hasMax:
			values[i], err = g.IntRange(min, max)
		case hasMin:
			values[i], err = g.Intn(min)
		case hasMax:
			values[i], err = g.Intn(max)
		default:
			values[i] = g.Int()
		}
		if err != nil {
			return err
		}
	}
	return printValues(cmd.OutOrStdout(), values...)
}

// FloatCmdFunc prints floats, selecting the range like IntCmdFunc.
func FloatCmdFunc(cmd *cobra.Command, args []string) error {
	g, err := generatorFor(cmd)
	if err != nil {
		return err
	}
	n, err := countFlag(cmd)
	if err != nil {
		return err
	}
	min, err := cmd.Flags().GetFloat64("min")
	if err != nil {
		return err
	}
	max, err := cmd.Flags().GetFloat64("max")
	if err != nil {
		return err
	}
	hasMin, hasMax := cmd.Flags().Changed("min"), cmd.Flags().Changed("max")

	values := make([]float64, n)
	for i := range values {
		switch {
		case hasMin && hasMax:
			values[i], err = g.Float64Range(min, max)
		case hasMin:
			values[i], err = g.Float64n(min)
		case hasMax:
			values[i], err = g.Float64n(max)
		default:
			values[i] = g.Float64()
		}
		if err != nil {
			return err
		}
	}
	return printValues(cmd.OutOrStdout(), values...)
}

// PermCmdFunc prints a permutation of [0, N).
func PermCmdFunc(cmd *cobra.Command, args []string) error {
	size, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.Wrapf(err, "invalid permutation size %q", args[0])
	}

	g, err := generatorFor(cmd)
	if err != nil {
		return err
	}

	perm, err := g.Perm(size)
	if err != nil {
		return err
	}
	return printValues(cmd.OutOrStdout(), perm...)
}

// ShuffleCmdFunc prints its arguments in a random order.
func ShuffleCmdFunc(cmd *cobra.Command, args []string) error {
	g, err := generatorFor(cmd)
	if err != nil {
		return err
	}

	items := append([]string(nil), args...)
	pcg.Shuffle(g, items)
	return printValues(cmd.OutOrStdout(), items...)
}

// ChoiceCmdFunc prints weighted choices: indices into --weights, or the
// positional items when given.
func ChoiceCmdFunc(cmd *cobra.Command, args []string) error {
	g, err := generatorFor(cmd)
	if err != nil {
		return err
	}
	n, err := countFlag(cmd)
	if err != nil {
		return err
	}
	weights, err := cmd.Flags().GetFloat64Slice("weights")
	if err != nil {
		return err
	}

	if len(args) == 0 {
		indices := make([]int, n)
		for i := range indices {
			if indices[i], err = g.WeightedIndex(weights); err != nil {
				return err
			}
		}
		return printValues(cmd.OutOrStdout(), indices...)
	}

	chosen := make([]string, n)
	for i := range chosen {
		if chosen[i], err = pcg.WeightedChoice(g, weights, args); err != nil {
			return err
		}
	}
	return printValues(cmd.OutOrStdout(), chosen...)
}

// StringCmdFunc prints random strings.
func StringCmdFunc(cmd *cobra.Command, args []string) error {
	g, err := generatorFor(cmd)
	if err != nil {
		return err
	}
	n, err := countFlag(cmd)
	if err != nil {
		return err
	}
	length, err := cmd.Flags().GetInt("length")
	if err != nil {
		return err
	}
	alphabet, err := cmd.Flags().GetString("alphabet")
	if err != nil {
		return err
	}
	if alphabet == "" {
		return errors.New("--alphabet must not be empty")
	}

	values := make([]string, n)
	for i := range values {
		values[i] = random.String(g, length, alphabet)
	}
	return printValues(cmd.OutOrStdout(), values...)
}

// ServeCmdFunc runs the HTTP frontend and the metrics server until the
// process receives SIGINT or SIGTERM.
func ServeCmdFunc(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log.Info("loaded config", cfg)

	stoppers := stop.NewGroup()

	if cfg.MetricsAddr != "" {
		stoppers.Add(metrics.NewServer(cfg.MetricsAddr))
	}

	frontend, err := httpfrontend.NewFrontend(cfg.HTTPConfig)
	if err != nil {
		stopAll(stoppers)
		return errors.Wrap(err, "failed to start HTTP frontend")
	}
	stoppers.Add(frontend)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown
	log.Info("shutting down")

	if errs := stopAll(stoppers); len(errs) > 0 {
		return errors.New("failed to shutdown cleanly")
	}
	return nil
}

func stopAll(stoppers *stop.Group) []error {
	errs := stoppers.Stop().Wait()
	for _, err := range errs {
		log.Error("failed while shutting down", log.Err(err))
	}
	return errs
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "pcgrand",
		Short:             "Deterministic PCG random numbers",
		Long:              "Draws reproducible random numbers, permutations and weighted choices from a PCG-XSH-RR generator",
		PersistentPreRunE: PreRunCmdFunc,
		SilenceUsage:      true,
	}

	rootCmd.PersistentFlags().String("config", "", "location of configuration file")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("json", false, "enable json logging")
	rootCmd.PersistentFlags().Uint64("seed", 0, "seed the generator")
	rootCmd.PersistentFlags().String("seed-name", "", "seed the generator from a name")

	u32Cmd := &cobra.Command{
		Use:   "u32",
		Short: "Print raw 32-bit outputs",
		Args:  cobra.NoArgs,
		RunE:  Uint32CmdFunc,
	}
	u32Cmd.Flags().IntP("count", "n", 1, "number of values")

	intCmd := &cobra.Command{
		Use:   "int",
		Short: "Print integers",
		Args:  cobra.NoArgs,
		RunE:  IntCmdFunc,
	}
	intCmd.Flags().IntP("count", "n", 1, "number of values")
	intCmd.Flags().Int64("min", 0, "inclusive lower bound, or the single bound without --max")
	intCmd.Flags().Int64("max", 0, "exclusive upper bound, or the single bound without --min")

	floatCmd := &cobra.Command{
		Use:   "float",
		Short: "Print floats",
		Args:  cobra.NoArgs,
		RunE:  FloatCmdFunc,
	}
	floatCmd.Flags().IntP("count", "n", 1, "number of values")
	floatCmd.Flags().Float64("min", 0, "inclusive lower bound, or the single bound without --max")
	floatCmd.Flags().Float64("max", 0, "exclusive upper bound, or the single bound without --min")

	permCmd := &cobra.Command{
		Use:   "perm N",
		Short: "Print a permutation of 0..N-1",
		Args:  cobra.ExactArgs(1),
		RunE:  PermCmdFunc,
	}

	shuffleCmd := &cobra.Command{
		Use:   "shuffle [item...]",
		Short: "Print the items in a random order",
		RunE:  ShuffleCmdFunc,
	}

	choiceCmd := &cobra.Command{
		Use:   "choice --weights w1,w2,... [item...]",
		Short: "Print weighted choices",
		RunE:  ChoiceCmdFunc,
	}
	choiceCmd.Flags().IntP("count", "n", 1, "number of choices")
	choiceCmd.Flags().Float64Slice("weights", nil, "weights of the choices")

	stringCmd := &cobra.Command{
		Use:   "string",
		Short: "Print random strings",
		Args:  cobra.NoArgs,
		RunE:  StringCmdFunc,
	}
	stringCmd.Flags().IntP("count", "n", 1, "number of strings")
	stringCmd.Flags().Int("length", 16, "length of each string")
	stringCmd.Flags().String("alphabet", random.AlphaNumeric, "bytes to draw from")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve draws over HTTP",
		Args:  cobra.NoArgs,
		RunE:  ServeCmdFunc,
	}

	rootCmd.AddCommand(u32Cmd, intCmd, floatCmd, permCmd, shuffleCmd, choiceCmd, stringCmd, serveCmd)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal("failed when executing root cobra command", log.Err(err))
	}
}
