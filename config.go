package vlcplayer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Defaults baked into the sample player.
const (
	DefaultURL              = "http://download.blender.org/peach/bigbuckbunny_movies/BigBuckBunny_640x360.m4v"
	DefaultAudioResampler   = "soxr"
	DefaultFileCachingMs    = 1500
	DefaultNetworkCachingMs = 1500
)

// DefaultCodecs is the decoder preference: hardware MediaCodec first, then
// whatever libVLC picks.
var DefaultCodecs = []string{"mediacodec_ndk", "mediacodec_jni", "all"}

// envPrefix namespaces environment overrides.
const envPrefix = "VLCPLAYER_"

// Config holds the engine and media settings applied by the adapter.
type Config struct {
	URL              string   `yaml:"url" mapstructure:"url"`
	Verbose          bool     `yaml:"verbose" mapstructure:"verbose"`
	AudioResampler   string   `yaml:"audio_resampler" mapstructure:"audio_resampler"`
	FileCachingMs    int      `yaml:"file_caching_ms" mapstructure:"file_caching_ms"`
	NetworkCachingMs int      `yaml:"network_caching_ms" mapstructure:"network_caching_ms"`
	Codecs           []string `yaml:"codecs" mapstructure:"codecs"`
	Layout           string   `yaml:"layout" mapstructure:"layout"`
	// ExtraArgs are appended to the libvlc_new arguments.
	ExtraArgs []string `yaml:"extra_args" mapstructure:"extra_args"`
}

// DefaultConfig returns the fixed configuration of the sample player.
func DefaultConfig() Config {
	return Config{
		URL:              DefaultURL,
		Verbose:          true,
		AudioResampler:   DefaultAudioResampler,
		FileCachingMs:    DefaultFileCachingMs,
		NetworkCachingMs: DefaultNetworkCachingMs,
		Codecs:           append([]string(nil), DefaultCodecs...),
		Layout:           SurfaceBestFit.String(),
	}
}

// EngineArgs returns the libvlc_new argument vector.
func (c Config) EngineArgs() []string {
	var args []string
	if c.Verbose {
		args = append(args, "-vvv")
	}
	if c.AudioResampler != "" {
		args = append(args, "--audio-resampler", c.AudioResampler)
	}
	return append(args, c.ExtraArgs...)
}

// MediaOptions returns the per-media options added to every descriptor.
func (c Config) MediaOptions() []string {
	opts := []string{
		fmt.Sprintf(":file-caching=%d", c.FileCachingMs),
		fmt.Sprintf(":network-caching=%d", c.NetworkCachingMs),
	}
	if decoders, err := c.Decoders(); err == nil && len(decoders) > 0 {
		opts = append(opts, decoders.Option())
	}
	return opts
}

// Decoders returns the parsed Codecs preference.
func (c Config) Decoders() (DecoderList, error) {
	return ParseDecoderList(c.Codecs)
}

// SurfaceLayout returns the parsed Layout, falling back to best fit.
func (c Config) SurfaceLayout() SurfaceLayout {
	l, err := ParseSurfaceLayout(c.Layout)
	if err != nil {
		return SurfaceBestFit
	}
	return l
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.URL == "" {
		result = multierror.Append(result, errors.New("url is empty"))
	}
	if c.FileCachingMs < 0 {
		result = multierror.Append(result, fmt.Errorf("file_caching_ms %d is negative", c.FileCachingMs))
	}
	if c.NetworkCachingMs < 0 {
		result = multierror.Append(result, fmt.Errorf("network_caching_ms %d is negative", c.NetworkCachingMs))
	}
	if _, err := c.Decoders(); err != nil {
		result = multierror.Append(result, fmt.Errorf("codecs: %w", err))
	}
	if _, err := ParseSurfaceLayout(c.Layout); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

// LoadConfig starts from DefaultConfig, applies the YAML file at path (if
// path is not empty), loads .env from the working directory if present, and
// finally applies VLCPLAYER_* environment overrides.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}

	if err := applyEnv(&cfg, os.Environ()); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyEnv decodes VLCPLAYER_* variables from environ into cfg. Keys map to
// the mapstructure tags upper-cased, e.g. VLCPLAYER_FILE_CACHING_MS.
// List values are comma separated.
func applyEnv(cfg *Config, environ []string) error {
	overrides := make(map[string]any)
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, envPrefix) {
			continue
		}
		overrides[strings.ToLower(strings.TrimPrefix(key, envPrefix))] = value
	}
	if len(overrides) == 0 {
		return nil
	}

	// Decoded slices are written over the existing backing array by index,
	// so list overrides replace the list instead of patching it.
	if _, ok := overrides["codecs"]; ok {
		cfg.Codecs = nil
	}
	if _, ok := overrides["extra_args"]; ok {
		cfg.ExtraArgs = nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(overrides); err != nil {
		return fmt.Errorf("environment overrides: %w", err)
	}
	return nil
}
