package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"reform-engine/internal/calculator"
)

// Config holds the full application configuration.
type Config struct {
	Server ServerConfig           `yaml:"server" mapstructure:"server"`
	Log    LogConfig              `yaml:"log" mapstructure:"log"`
	States StatesConfig           `yaml:"states" mapstructure:"states"`
	Model  calculator.Calibration `yaml:"model" mapstructure:"model"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port int    `yaml:"port" mapstructure:"port"`
	Name string `yaml:"name" mapstructure:"name"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// StatesConfig points at an optional replacement state table.
type StatesConfig struct {
	File string `yaml:"file" mapstructure:"file"`
}

// Load reads config.yaml from the working directory, then REFORM_*
// environment variables. PORT is honoured for the server port.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("REFORM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("server.port", "REFORM_SERVER_PORT", "PORT"); err != nil {
		return nil, eris.Wrap(err, "config: bind port")
	}

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.name", "reform-engine")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("states.file", "")
	setModelDefaults(v, calculator.DefaultCalibration())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	if err := cfg.Model.Validate(); err != nil {
		return nil, eris.Wrap(err, "config: model")
	}

	return &cfg, nil
}

func setModelDefaults(v *viper.Viper, cal calculator.Calibration) {
	v.SetDefault("model.baseline_threshold", cal.BaselineThreshold)
	v.SetDefault("model.group_weights.children", cal.GroupWeights.Children)
	v.SetDefault("model.group_weights.parents", cal.GroupWeights.Parents)
	v.SetDefault("model.group_weights.adults", cal.GroupWeights.Adults)
	v.SetDefault("model.group_weights.elderly", cal.GroupWeights.Elderly)
	v.SetDefault("model.group_weights.disabled", cal.GroupWeights.Disabled)
	v.SetDefault("model.enrollment_response_factor", cal.EnrollmentResponseFactor)
	v.SetDefault("model.savings_capture_rate", cal.SavingsCaptureRate)
	v.SetDefault("model.work_requirement_disenrollment", cal.WorkRequirementDisenrollment)
	v.SetDefault("model.work_requirement_admin_cost", cal.WorkRequirementAdminCost)
	v.SetDefault("model.snap_benefit_share", cal.SnapBenefitShare)
	v.SetDefault("model.income_tax_yield", cal.IncomeTaxYield)
	v.SetDefault("model.property_tax_yield", cal.PropertyTaxYield)
	v.SetDefault("model.sin_tax_yield", cal.SinTaxYield)
	v.SetDefault("model.annual_growth_rate", cal.AnnualGrowthRate)
	v.SetDefault("model.trajectory_base_year", cal.TrajectoryBaseYear)
}

// InitLogger builds the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
