package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/dirsize/internal/dirsize"
)

// EnvPrefix prefixes the environment variables read as configuration,
// e.g. DIRSIZE_EXCLUDE or DIRSIZE_WORKERS.
const EnvPrefix = "DIRSIZE"

// loadOptions resolves the options of a run. Flags set on the command line
// win over environment variables, which win over the config file, which wins
// over the flag defaults.
func loadOptions(cmd *cobra.Command, args []string) (dirsize.Options, error) {
	var options dirsize.Options

	flags := cmd.Flags()

	// Informational flags are not configurable.
	options.Version, _ = flags.GetBool("version")
	options.Integration, _ = flags.GetBool("init")

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return options, fmt.Errorf("binding flags: %w", err)
	}

	if file, _ := flags.GetString("config"); file != "" {
		v.SetConfigFile(file)

		if err := v.ReadInConfig(); err != nil {
			return options, fmt.Errorf("reading config file %q: %w", file, err)
		}
	}

	options.Path = v.GetString("path")
	options.Recursive = v.GetBool("recursive")
	options.Excludes = v.GetStringSlice("exclude")
	options.Workers = v.GetInt("workers")
	options.Sort = v.GetBool("sort")
	options.JSON = v.GetBool("json")
	options.Chart = v.GetBool("chart")
	options.Summary = v.GetBool("summary")
	options.Debug = v.GetBool("debug")
	options.ProgressInterval = v.GetDuration("progress-interval")

	if len(args) > 0 {
		options.Path = args[0]
	}

	if options.Workers < 0 {
		return options, errors.New("workers cannot be negative")
	}

	return options, nil
}
