package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/b97tsk/reboot/cuboid"
	"github.com/b97tsk/reboot/input"
)

const (
	_defaultInput  = "input"
	_defaultFormat = "text"
	_configName    = "reboot"
	_envPrefix     = "REBOOT"
	_maxColumns    = 1 << 22
)

const (
	_keyInput    = "input"
	_keyLimit    = "limit"
	_keyFormat   = "format"
	_keyProgress = "progress"
	_keyVerbose  = "verbose"
)

func main() {
	if err := _newRootCommand().Execute(); err != nil {
		eprintln(err)
		os.Exit(1)
	}
}

func _newRootCommand() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "reboot",
		Short:         "Count the cubes left on after a reactor reboot",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return _loadConfig(v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return _run(cmd, v)
		},
	}

	flags := root.PersistentFlags()
	flags.StringP(_keyInput, "i", _defaultInput, "instruction file, - for stdin")
	flags.StringP(_keyLimit, "l", cuboid.InitializationLimit.String(), "region of the initialization procedure")
	flags.StringP(_keyFormat, "f", _defaultFormat, "output format (text or yaml)")
	flags.BoolP(_keyProgress, "p", false, "show a status line while rebooting")
	flags.BoolP(_keyVerbose, "v", false, "log every step")
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "run",
			Short: "Print the cubes left on, inside the limit and in total",
			RunE: func(cmd *cobra.Command, args []string) error {
				return _run(cmd, v)
			},
		},
		&cobra.Command{
			Use:   "verify",
			Short: "Recount the initialization procedure column by column",
			RunE: func(cmd *cobra.Command, args []string) error {
				return _verify(cmd, v)
			},
		},
	)

	return root
}

func _loadConfig(v *viper.Viper) error {
	v.SetEnvPrefix(_envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName(_configName)
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errors.Wrap(err, "reading config")
		}
	}
	return nil
}

type _Job struct {
	log          *zap.SugaredLogger
	instructions []cuboid.Instruction
	limit        cuboid.Region
}

func _prepare(cmd *cobra.Command, v *viper.Viper) (job _Job, err error) {
	job.log = _newLogger(cmd.ErrOrStderr(), v.GetBool(_keyVerbose)).Named(cmd.Name())

	job.limit, err = input.ParseRegion(v.GetString(_keyLimit))
	if err != nil {
		err = errors.Wrapf(err, "limit %q", v.GetString(_keyLimit))
		return
	}

	name := v.GetString(_keyInput)
	job.instructions, err = _loadInstructions(name)
	if err != nil {
		err = errors.Wrap(err, name)
		return
	}
	job.log.Infow("loaded instructions", "input", name, "count", len(job.instructions))
	return
}

func _run(cmd *cobra.Command, v *viper.Viper) (err error) {
	job, err := _prepare(cmd, v)
	if err != nil {
		return
	}
	defer job.log.Sync()

	format := v.GetString(_keyFormat)
	if format != "text" && format != "yaml" {
		return errors.Errorf("unknown format %q", format)
	}

	var progress *_Progress
	if v.GetBool(_keyProgress) {
		progress = _newProgress(cmd.ErrOrStderr())
	}

	r := _Reactor{log: job.log, progress: progress}
	report := _Report{
		Instructions:   len(job.instructions),
		Initialization: r.reboot("initialization", cuboid.ClipAll(job.instructions, job.limit)),
		Reboot:         r.reboot("reboot", job.instructions),
	}
	report.Initialization.Limit = job.limit.String()

	if format == "yaml" {
		return report.writeYAML(cmd.OutOrStdout())
	}
	report.writeText(cmd.OutOrStdout())
	return nil
}

func _verify(cmd *cobra.Command, v *viper.Viper) (err error) {
	job, err := _prepare(cmd, v)
	if err != nil {
		return
	}
	defer job.log.Sync()

	if n := job.limit.X.Len() * job.limit.Y.Len(); n > _maxColumns {
		return errors.Errorf("limit %v spans %d columns, at most %d can be recounted", job.limit, n, _maxColumns)
	}

	r := _Reactor{log: job.log}
	result := r.reboot("initialization", cuboid.ClipAll(job.instructions, job.limit))
	columns := cuboid.CountColumns(job.instructions, job.limit)
	job.log.Infow("recounted columns", "volume", columns)

	if columns != result.Volume {
		return errors.Errorf("regions hold %d cubes but columns hold %d", result.Volume, columns)
	}
	fprintf(cmd.OutOrStdout(), "OK: %d cubes active in %v\n", columns, job.limit)
	return nil
}
