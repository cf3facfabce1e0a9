package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Badsnus/qrforge/internal/domain/entity"
	"github.com/Badsnus/qrforge/pkg/logger"
	qr "github.com/Badsnus/qrforge/pkg/qrcode"
)

const envPrefix = "QRFORGE"

type HTTP struct {
	Addr            string
	MaxBodySize     int64
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type Config struct {
	Render    entity.RenderOptions
	Preset    string
	Strict    bool
	OutputDir string
	HTTP      HTTP
	Logging   logger.Config
	// File is the config file that was read, empty when running on defaults.
	File string
}

func setDefaults(v *viper.Viper) {
	defaults := entity.DefaultRenderOptions()
	v.SetDefault("render.level", string(defaults.Level))
	v.SetDefault("render.scale", defaults.Scale)
	v.SetDefault("render.border", defaults.Border)
	v.SetDefault("render.preset", "classic")
	v.SetDefault("render.logo", "")
	v.SetDefault("payload.strict", false)
	v.SetDefault("output.dir", "qrcodes")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.max-body-size", int64(64<<10))
	v.SetDefault("http.read-timeout", 5*time.Second)
	v.SetDefault("http.write-timeout", 10*time.Second)
	v.SetDefault("http.shutdown-timeout", 5*time.Second)
	v.SetDefault("settings.debug", false)
	v.SetDefault("settings.timezone", "")
	v.SetDefault("settings.log-to-file", false)
	v.SetDefault("settings.logs-dir", "logs")
}

// Load reads config.yaml from path, or from the working directory when path
// is empty. A missing default file is not an error. QRFORGE_* environment
// variables override file values (QRFORGE_RENDER_SCALE, QRFORGE_HTTP_ADDR, ...).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	presetName := strings.ToLower(v.GetString("render.preset"))
	preset, ok := qr.Presets[presetName]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q", presetName)
	}

	level, ok := entity.ParseECLevel(v.GetString("render.level"))
	if !ok {
		return nil, fmt.Errorf("invalid render.level %q: must be one of L, M, Q, H", v.GetString("render.level"))
	}

	return &Config{
		Render: entity.RenderOptions{
			Level:     level,
			Scale:     v.GetInt("render.scale"),
			Border:    v.GetInt("render.border"),
			Dark:      firstNonEmpty(v.GetString("render.dark"), preset.Dark),
			Light:     firstNonEmpty(v.GetString("render.light"), preset.Light),
			QuietZone: firstNonEmpty(v.GetString("render.quiet-zone"), preset.QuietZone),
			LogoPath:  v.GetString("render.logo"),
		},
		Preset:    presetName,
		Strict:    v.GetBool("payload.strict"),
		OutputDir: v.GetString("output.dir"),
		HTTP: HTTP{
			Addr:            v.GetString("http.addr"),
			MaxBodySize:     v.GetInt64("http.max-body-size"),
			ReadTimeout:     v.GetDuration("http.read-timeout"),
			WriteTimeout:    v.GetDuration("http.write-timeout"),
			ShutdownTimeout: v.GetDuration("http.shutdown-timeout"),
		},
		Logging: logger.Config{
			Debug:     v.GetBool("settings.debug"),
			TimeZone:  v.GetString("settings.timezone"),
			LogToFile: v.GetBool("settings.log-to-file"),
			LogsDir:   v.GetString("settings.logs-dir"),
			Prefix:    "qrforge",
		},
		File: v.ConfigFileUsed(),
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, s := range values {
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}
