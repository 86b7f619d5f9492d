package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/templates/pkg/errors"
	"github.com/arthur-debert/templates/pkg/logging"
	"github.com/arthur-debert/templates/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// FileName is the config file name inside the XDG config home
	FileName = "templates-cli.json"

	// EnvConfigPath overrides the config file location
	EnvConfigPath = "TEMPLATES_CLI_CONFIG"

	// EnvPrefix prefixes per-key overrides, e.g. TEMPLATES_CLI_TEMPLATES_PATH
	EnvPrefix = "TEMPLATES_CLI_"

	keyTemplatesPath    = "templates_path"
	keyClipboardCommand = "clipboard_command"
)

// Config is the resolved configuration handed to the commands.
type Config struct {
	// TemplatesPath is the templates root, with ~ expanded
	TemplatesPath string `koanf:"templates_path"`

	// ClipboardCommand is the program content is piped into by copy
	ClipboardCommand string `koanf:"clipboard_command"`

	// ConfigPath is the file this config was loaded from
	ConfigPath string `koanf:"-"`
}

// DefaultPath returns the config file location
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return paths.ExpandHome(p)
	}
	return filepath.Join(xdg.ConfigHome, FileName)
}

// Load reads the config file at path. A missing file is created with
// templates_path set to ~/templates before loading.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config").With().Str("path", path).Logger()

	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot access config %s", path).
				WithDetail("path", path)
		}
		logger.Info().Msg("Config file not found, creating it with defaults")
		if err := Save(path, paths.DefaultTemplatesPath, ""); err != nil {
			return nil, err
		}
	}

	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, kjson.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load config defaults")
	}

	if err := k.Load(file.Provider(path), kjson.Parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigInvalid, "config %s is not valid JSON", path).
			WithDetail("path", path)
	}

	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigInvalid, "config %s has invalid values", path).
			WithDetail("path", path)
	}

	if strings.TrimSpace(cfg.TemplatesPath) == "" {
		return nil, errors.Newf(errors.ErrConfigInvalid, "templates folder path not found in config %s", path).
			WithDetail("path", path).
			WithDetail("key", keyTemplatesPath)
	}
	if strings.TrimSpace(cfg.ClipboardCommand) == "" {
		cfg.ClipboardCommand = defaultClipboardCommand()
	}

	cfg.TemplatesPath = paths.ExpandHome(cfg.TemplatesPath)
	cfg.ConfigPath = path

	logger.Debug().
		Str("templates_path", cfg.TemplatesPath).
		Str("clipboard_command", cfg.ClipboardCommand).
		Msg("Config loaded")

	return &cfg, nil
}

// Save writes templates_path (and clipboard_command when non-empty) to the
// config file at path, keeping any other keys already present.
func Save(path, templatesPath, clipboardCommand string) error {
	k := koanf.New(".")

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), kjson.Parser()); err != nil {
			return errors.Wrapf(err, errors.ErrConfigInvalid, "config %s is not valid JSON", path).
				WithDetail("path", path)
		}
	}

	if err := k.Set(keyTemplatesPath, templatesPath); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to set templates path")
	}
	if clipboardCommand != "" {
		if err := k.Set(keyClipboardCommand, clipboardCommand); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to set clipboard command")
		}
	}

	raw, err := k.Marshal(kjson.Parser())
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode config")
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to format config")
	}
	pretty.WriteByte('\n')

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "cannot create config directory for %s", path).
			WithDetail("path", path)
	}
	if err := os.WriteFile(path, pretty.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "config not written to %s", path).
			WithDetail("path", path)
	}

	logger := logging.GetLogger("config")
	logger.Debug().Str("path", path).Msg("Config saved")
	return nil
}

func defaultClipboardCommand() string {
	d := koanf.New(".")
	if err := d.Load(&rawBytesProvider{bytes: defaultConfig}, kjson.Parser()); err != nil {
		return ""
	}
	return d.String(keyClipboardCommand)
}
