package config

import (
	"fmt"
	"time"

	"github.com/DanRulev/vocabquiz/pkg/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App       AppConfig  `mapstructure:"app"`
	BotToken  string     `mapstructure:"bot_token"`
	WebAppURL string     `mapstructure:"web_app_url" validate:"required,url"`
	HTTP      HTTPConfig `mapstructure:"http"`
	DB        DBConfig   `mapstructure:"db"`
	Env       string     `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type HTTPConfig struct {
	Addr            string        `mapstructure:"addr" validate:"required"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"min=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"min=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"min=1"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins" validate:"min=1"`
}

type DBConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=postgres sqlite"`
	URL    string `mapstructure:"url"`
	Path   string `mapstructure:"path" validate:"required_if=Driver sqlite"`
	Conn   DBConn `mapstructure:"conn"`
	Cfg    DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSL      string `mapstructure:"ssl" validate:"omitempty,oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

// DSN returns the connection string for the configured driver. A non-empty URL
// (DATABASE_URL) wins over the discrete postgres fields.
func (c DBConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return "file:" + c.Path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	}

	if c.URL != "" {
		return c.URL
	}

	ssl := c.Conn.SSL
	if ssl == "" {
		ssl = "disable"
	}

	return fmt.Sprintf("host=%v port=%v dbname=%v user=%v password=%v sslmode=%v",
		c.Conn.Host, c.Conn.Port, c.Conn.Name, c.Conn.User, c.Conn.Password, ssl)
}

var envBindings = [][2]string{
	{"env", "ENV"},
	{"bot_token", "BOT_TOKEN"},
	{"web_app_url", "WEB_APP_URL"},
	{"http.addr", "HTTP_ADDR"},
	{"db.driver", "DB_DRIVER"},
	{"db.url", "DATABASE_URL"},
	{"db.path", "DB_PATH"},
	{"db.conn.host", "DB_HOST"},
	{"db.conn.port", "DB_PORT"},
	{"db.conn.user", "DB_USER"},
	{"db.conn.password", "DB_PASSWORD"},
	{"db.conn.name", "DB_NAME"},
	{"db.conn.ssl", "DB_SSL"},
}

// Init reads configs/<name>.yaml, applies environment overrides (a .env file in
// the working directory is loaded first when present) and validates the result.
func Init(args []string) (*Config, error) {
	_ = godotenv.Load()

	flags := pflag.NewFlagSet("vocabquiz", pflag.ContinueOnError)
	flags.String("config", "", "config name without extension, falls back to $CONFIG_NAME")
	flags.String("config-dir", "configs", "directory holding config files")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	v := viper.New()

	v.AutomaticEnv()

	if err := v.BindPFlag("config_name", flags.Lookup("config")); err != nil {
		return nil, fmt.Errorf("failed to bind config flag: %w", err)
	}
	if err := v.BindPFlag("config_dir", flags.Lookup("config-dir")); err != nil {
		return nil, fmt.Errorf("failed to bind config-dir flag: %w", err)
	}

	configName := v.GetString("config_name")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath(v.GetString("config_dir"))
	v.SetConfigName(configName)

	v.SetDefault("env", EnvDevelopment)
	v.SetDefault("app.timeout", 10*time.Second)
	v.SetDefault("http.addr", ":8000")
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
	v.SetDefault("http.allowed_origins", []string{"*"})
	v.SetDefault("db.driver", DriverPostgres)
	v.SetDefault("db.cfg.max_open_conns", 10)
	v.SetDefault("db.cfg.max_idle_conns", 5)

	for _, b := range envBindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", b[1], err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
