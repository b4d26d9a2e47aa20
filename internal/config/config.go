package config

import (
	"time"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/utils"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type AppConfig struct {
	APP struct {
		Name  string `mapstructure:"NAME"`
		Port  string `mapstructure:"PORT"`
		State string `mapstructure:"STATE"`
	}

	DATABASE struct {
		Postgres struct {
			DSN string `mapstructure:"DSN"`
		}
		Redis struct {
			Addr     string `mapstructure:"ADDR"`
			Password string `mapstructure:"PASSWORD"`
			DB       int    `mapstructure:"DB"`
		}
	}

	APP_SECRET struct {
		Paseto struct {
			HexKey string `mapstructure:"HEX_KEY"`
		}
	}

	TASKS struct {
		SettingsCacheTTL                       time.Duration `mapstructure:"SETTINGS_CACHE_TTL"`
		CommentRateLimit                       int           `mapstructure:"COMMENT_RATE_LIMIT"`
		DefaultAllowEmployeeTaskCreation       bool          `mapstructure:"DEFAULT_ALLOW_EMPLOYEE_TASK_CREATION"`
		DefaultAllowEmployeeTaskAssignment     bool          `mapstructure:"DEFAULT_ALLOW_EMPLOYEE_TASK_ASSIGNMENT"`
		DefaultAllowIntraDepartmentAssignments bool          `mapstructure:"DEFAULT_ALLOW_INTRA_DEPARTMENT_ASSIGNMENTS"`
		DefaultAllowMultiTaskAssignment        bool          `mapstructure:"DEFAULT_ALLOW_MULTI_TASK_ASSIGNMENT"`
		DefaultAllowTimelinePriorityEditing    bool          `mapstructure:"DEFAULT_ALLOW_TIMELINE_PRIORITY_EDITING"`
		DefaultCrossDepartmentRedirection      string        `mapstructure:"DEFAULT_CROSS_DEPARTMENT_REDIRECTION"`
	}

	WORKER struct {
		Concurrency int    `mapstructure:"CONCURRENCY"`
		OverdueCron string `mapstructure:"OVERDUE_CRON"`
	}
}

// setDefaults hinterlegt Werte, die application.yaml nicht setzen muss.
func setDefaults(v *viper.Viper) {
	d := entity.DefaultSettingsDefaults()
	v.SetDefault("APP.PORT", "8080")
	v.SetDefault("TASKS.SETTINGS_CACHE_TTL", "10m")
	v.SetDefault("TASKS.COMMENT_RATE_LIMIT", 30)
	v.SetDefault("TASKS.DEFAULT_ALLOW_EMPLOYEE_TASK_CREATION", d.AllowEmployeeTaskCreation)
	v.SetDefault("TASKS.DEFAULT_ALLOW_EMPLOYEE_TASK_ASSIGNMENT", d.AllowEmployeeTaskAssignment)
	v.SetDefault("TASKS.DEFAULT_ALLOW_INTRA_DEPARTMENT_ASSIGNMENTS", d.AllowIntraDepartmentAssignments)
	v.SetDefault("TASKS.DEFAULT_ALLOW_MULTI_TASK_ASSIGNMENT", d.AllowMultiTaskAssignment)
	v.SetDefault("TASKS.DEFAULT_ALLOW_TIMELINE_PRIORITY_EDITING", d.AllowTimelinePriorityEditing)
	v.SetDefault("TASKS.DEFAULT_CROSS_DEPARTMENT_REDIRECTION", string(d.CrossDepartmentRedirection))
	v.SetDefault("WORKER.CONCURRENCY", 10)
	v.SetDefault("WORKER.OVERDUE_CRON", "0 */6 * * *")
}

func LoadConfig() *AppConfig {
	v := viper.New()
	v.SetConfigName("application")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Error().Err(err).Msg("Fehler beim Lesen der Konfigurationsdatei")
		return nil
	}

	return decode(v)
}

func decode(v *viper.Viper) *AppConfig {
	var config AppConfig
	if err := v.Unmarshal(&config); err != nil {
		log.Error().Err(err).Msg("Fehler beim Entpacken der Konfiguration")
		return nil
	}

	if config.DATABASE.Postgres.DSN == "" {
		log.Error().Msg("Datenbank-DSN ist nicht konfiguriert")
		return nil
	}

	if config.APP_SECRET.Paseto.HexKey == "" {
		log.Warn().Msg("Kein PASETO-Schlüssel konfiguriert, es wird ein flüchtiger Schlüssel erzeugt")
		config.APP_SECRET.Paseto.HexKey = utils.GenerateSymmetricKey()
	}

	if !entity.RedirectionPolicy(config.TASKS.DefaultCrossDepartmentRedirection).IsValid() {
		log.Warn().Str("value", config.TASKS.DefaultCrossDepartmentRedirection).Msg("Ungültige Umleitungsrichtlinie, verwende team_lead")
		config.TASKS.DefaultCrossDepartmentRedirection = string(entity.RedirectionTeamLead)
	}

	log.Info().Msg("Konfiguration geladen...")
	return &config
}

// SettingsDefaults liefert die Startwerte für neu angelegte Einstellungszeilen.
func (c *AppConfig) SettingsDefaults() entity.SettingsDefaults {
	return entity.SettingsDefaults{
		AllowEmployeeTaskCreation:       c.TASKS.DefaultAllowEmployeeTaskCreation,
		AllowEmployeeTaskAssignment:     c.TASKS.DefaultAllowEmployeeTaskAssignment,
		AllowIntraDepartmentAssignments: c.TASKS.DefaultAllowIntraDepartmentAssignments,
		AllowMultiTaskAssignment:        c.TASKS.DefaultAllowMultiTaskAssignment,
		AllowTimelinePriorityEditing:    c.TASKS.DefaultAllowTimelinePriorityEditing,
		CrossDepartmentRedirection:      entity.RedirectionPolicy(c.TASKS.DefaultCrossDepartmentRedirection),
	}
}
