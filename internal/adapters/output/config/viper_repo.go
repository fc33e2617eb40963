package config

import (
	"context"
	"housemate-alexa/internal/domain/model"
	"io/fs"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const EnvPrefix = "HOUSEMATE"

// ViperConfigRepository loads the configuration from an optional JSON file
// overlaid with HOUSEMATE_* environment variables (HOUSEMATE_BACKEND_BASE_URL, ...).
type ViperConfigRepository struct {
	filepath string
}

func NewViperConfigRepository(filepath string) *ViperConfigRepository {
	return &ViperConfigRepository{filepath: filepath}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("backend.base_url", "https://intuso.com/housemate/api/server/1.0")
	v.SetDefault("backend.power_path", "/power")
	v.SetDefault("backend.client_id", "d2a28431-78b6-41b0-ac4a-9405742c0b55")
	v.SetDefault("backend.timeout", 5*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("bridge.enabled", false)
	v.SetDefault("bridge.local_ip", "")
	v.SetDefault("bridge.token", "")
}

func (r *ViperConfigRepository) Get(ctx context.Context) (*model.Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if r.filepath != "" {
		v.SetConfigFile(r.filepath)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, errors.Wrapf(err, "read config %s", r.filepath)
			}
		}
	}

	var cfg model.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &cfg, nil
}
