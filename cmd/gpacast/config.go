package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/YuminosukeSato/gpacast/pkg/errors"
	"github.com/YuminosukeSato/gpacast/pkg/log"
	"github.com/YuminosukeSato/gpacast/predictor"
	"github.com/YuminosukeSato/gpacast/tree"
)

// configEnv names the environment variable holding the config file path.
const configEnv = "GPACAST_CONFIG"

// Settings is the YAML config file layout.
type Settings struct {
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`

	Tree struct {
		MaxDepth   int `yaml:"maxDepth"`
		MinSamples int `yaml:"minSamples"`
	} `yaml:"tree"`

	Output struct {
		Format string `yaml:"format"`
		Chart  string `yaml:"chart"`
	} `yaml:"output"`
}

func defaultSettings() Settings {
	var s Settings
	s.Log.Level = "warn"
	s.Log.Format = "console"
	s.Tree.MaxDepth = tree.DefaultMaxDepth
	s.Tree.MinSamples = tree.DefaultMinSamples
	s.Output.Format = "text"
	return s
}

// loadSettings reads path over the defaults. An empty path falls back to
// $GPACAST_CONFIG, and to the defaults alone when that is unset too.
func loadSettings(path string) (Settings, error) {
	s := defaultSettings()
	if path == "" {
		path = os.Getenv(configEnv)
	}
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, errors.Wrapf(err, "failed to read config file %s", path)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, errors.Wrapf(err, "failed to parse config file %s", path)
	}
	return s, nil
}

// Validate checks every setting.
func (s *Settings) Validate() error {
	if _, err := log.ParseLevel(s.Log.Level); err != nil {
		return errors.NewValidationError("log.level", "must be debug, info, warn or error", s.Log.Level)
	}
	switch s.Log.Format {
	case "json", "console":
	default:
		return errors.NewValidationError("log.format", "must be json or console", s.Log.Format)
	}
	if s.Tree.MaxDepth < 0 {
		return errors.NewValidationError("tree.maxDepth", "must not be negative", s.Tree.MaxDepth)
	}
	if s.Tree.MinSamples < 1 {
		return errors.NewValidationError("tree.minSamples", "must be at least 1", s.Tree.MinSamples)
	}
	switch s.Output.Format {
	case "text", "json":
	default:
		return errors.NewValidationError("output.format", "must be text or json", s.Output.Format)
	}
	return nil
}

type rootCmdConfig struct {
	configPath string
	logLevel   string
	logFormat  string
	maxDepth   int
	minSamples int

	settings Settings
	logger   log.Logger
}

// resolve loads the config file, applies flags that were set explicitly and
// builds the logger.
func (rc *rootCmdConfig) resolve(cmd *cobra.Command) error {
	s, err := loadSettings(rc.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		s.Log.Level = rc.logLevel
	}
	if flags.Changed("log-format") {
		s.Log.Format = rc.logFormat
	}
	if flags.Changed("max-depth") {
		s.Tree.MaxDepth = rc.maxDepth
	}
	if flags.Changed("min-samples") {
		s.Tree.MinSamples = rc.minSamples
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		s.Output.Format, _ = flags.GetString("format")
	}
	if flags.Lookup("chart") != nil && flags.Changed("chart") {
		s.Output.Chart, _ = flags.GetString("chart")
	}
	s.Log.Format = strings.ToLower(s.Log.Format)
	s.Output.Format = strings.ToLower(s.Output.Format)

	if err := s.Validate(); err != nil {
		return err
	}

	level, _ := log.ParseLevel(s.Log.Level)
	var zl *log.ZerologLogger
	if s.Log.Format == "json" {
		zl = log.NewZerologLogger(cmd.ErrOrStderr(), level)
	} else {
		zl = log.NewConsoleLogger(cmd.ErrOrStderr(), level)
	}
	zl.InstallWarnings()

	rc.settings = s
	rc.logger = zl
	return nil
}

// newPredictor trains a predictor with the resolved tree settings.
func (rc *rootCmdConfig) newPredictor() *predictor.Predictor {
	return predictor.New(
		predictor.WithLogger(rc.logger),
		predictor.WithTreeOptions(
			tree.WithMaxDepth(rc.settings.Tree.MaxDepth),
			tree.WithMinSamples(rc.settings.Tree.MinSamples),
		),
	)
}

// trainedModel returns the tree of a fresh predictor, or its training error.
func (rc *rootCmdConfig) trainedModel() (*predictor.Predictor, *tree.Regressor, error) {
	p := rc.newPredictor()
	if p.Model() == nil {
		return nil, nil, errors.Wrap(p.TrainErr(), "training failed")
	}
	return p, p.Model(), nil
}
