package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/golangdaddy/circuit/log"
	"github.com/golangdaddy/circuit/pkg/config"
	"github.com/golangdaddy/circuit/pkg/race"
	"github.com/golangdaddy/circuit/pkg/road"
)

const envPrefix = "CIRCUIT"

var (
	cfgFile     string
	logLevel    string
	logFormat   string
	logFile     string
	trackFile   string
	recordsFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "circuit",
	Short: "Pseudo 3D endless track racer",
	Long: `circuit builds a closed road from a YAML track file and races it
in a window, in the terminal or headless to PNG frames.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.circuit.yml)")
	flags.StringVar(&logLevel, "log-level", "info", "controls the log level (debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "text", "controls the log output format (text, json)")
	flags.StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	flags.StringVarP(&trackFile, "track", "t", "assets/tracks/default.yaml", "track file to race on")
	flags.StringVar(&recordsFile, "records", ".circuit-records.json", "lap record file, empty disables records")

	d := config.DefaultConfig()
	flags.Int("screen-width", d.ScreenWidth, "logical screen width in pixels")
	flags.Int("screen-height", d.ScreenHeight, "logical screen height in pixels")
	flags.Int("target-fps", d.TargetFPS, "simulation ticks per second")
	flags.Float64("segment-length", d.SegmentLength, "length of a road segment in world units")
	flags.Float64("road-width", d.RoadWidth, "half width of the road in world units")
	flags.Int("drawn-segments", d.DrawnSegments, "number of segments projected each frame")
	flags.Float64("base-camera-y", d.BaseCameraYPosition, "camera height above the road")
	flags.Float64("camera-distance-to-car", d.CameraDistanceToCar, "distance from the camera to the car")
	flags.Float64("centrifugal-force", d.CentrifugalForce, "pull towards the outside of curves")
	flags.Float64("acceleration-force", d.AccelerationForce, "acceleration as a fraction of max speed per second")
	flags.Float64("deceleration-force", d.DecelerationForce, "coasting deceleration as a fraction of max speed per second")
	flags.Float64("off-road-deceleration-force", d.OffRoadDecelerationForce, "extra deceleration off the road")
	flags.Float64("off-road-max-speed-modifier", d.OffRoadMaxSpeedModifier, "fraction of max speed kept off the road")
	flags.Float64("braking-force", d.BrakingForce, "braking as a fraction of max speed per second")

	// add commands here
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newTUICmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newInspectCmd())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".circuit" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".circuit")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	bindFlags(rootCmd, viper.GetViper())
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, viper.GetViper())
	}
}

// Bind each cobra flag to its associated viper configuration
// (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their
		// equivalent keys with underscores, e.g. --road-width to CIRCUIT_ROAD_WIDTH
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name,
				fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v", f.Name, err)
			}
		}
		// Apply the viper config value to the flag when the flag is not set and viper
		// has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not set flag value for %s: %v", f.Name, err)
			}
		}
	})
}

// setupLogging installs the process wide logger. An empty path keeps the
// default output of the format.
func setupLogging(path string) error {
	var paths []string
	if path != "" {
		paths = append(paths, path)
	}
	logger, err := log.New(logLevel, logFormat, paths...)
	if err != nil {
		return err
	}
	log.ResetDefault(logger)
	return nil
}

// loadConfig decodes the configuration table from the resolved flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := viper.New()
	config.SetDefaults(v)
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	return config.FromViper(v)
}

// loadRace loads the configuration and the track shared by every command.
func loadRace(cmd *cobra.Command) (*config.Config, *road.Track, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	track, err := road.LoadTrack(trackFile, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load track: %w", err)
	}
	return cfg, track, nil
}

// newKeeper loads the record file named by --records. An empty name keeps
// no records.
func newKeeper() (*race.Keeper, error) {
	if recordsFile == "" {
		return race.NewKeeper(nil, ""), nil
	}
	records, err := race.LoadRecords(recordsFile)
	if err != nil {
		return nil, err
	}
	return race.NewKeeper(records, recordsFile), nil
}
