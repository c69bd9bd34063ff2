package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"thirupugazh_pos/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	DriverMemory   = "memory"
	DriverDynamoDB = "dynamodb"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Config holds application configuration.
type Config struct {
	App         AppConfig         `mapstructure:"app"`
	HTTP        HTTPConfig        `mapstructure:"http"`
	Storage     StorageConfig     `mapstructure:"storage"`
	DynamoDB    DynamoDBConfig    `mapstructure:"dynamodb"`
	Calendar    CalendarConfig    `mapstructure:"calendar"`
	Menu        []MenuItemConfig  `mapstructure:"menu"`
	Redis       RedisConfig       `mapstructure:"redis"`
	MercadoPago MercadoPagoConfig `mapstructure:"mercadopago"`
	Snowflake   SnowflakeConfig   `mapstructure:"snowflake"`
	Holds       HoldsConfig       `mapstructure:"holds"`
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

type HTTPConfig struct {
	Port string `mapstructure:"port"`
}

// StorageConfig selects the persistence backend. The SQL fields apply to postgres and mysql;
// SQLitePath applies to sqlite.
type StorageConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Name            string        `mapstructure:"name"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	SSLMode         string        `mapstructure:"sslmode"`
	SQLitePath      string        `mapstructure:"sqlite_path"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type DynamoDBConfig struct {
	Region            string `mapstructure:"region"`
	Endpoint          string `mapstructure:"endpoint"`
	AccessKeyID       string `mapstructure:"access_key_id"`
	SecretAccessKey   string `mapstructure:"secret_access_key"`
	BillsTable        string `mapstructure:"bills_table"`
	HoldsTable        string `mapstructure:"holds_table"`
	TransactionsTable string `mapstructure:"transactions_table"`
	ResumeEventsTable string `mapstructure:"resume_events_table"`
}

type CalendarConfig struct {
	TimeZone    string `mapstructure:"time_zone"`
	CutoverHour int    `mapstructure:"cutover_hour"`
}

// MenuItemConfig is one catalog entry. Price is in major units ("580.00").
type MenuItemConfig struct {
	ID    string `mapstructure:"id"`
	Name  string `mapstructure:"name"`
	Price string `mapstructure:"price"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type MercadoPagoConfig struct {
	AccessToken string `mapstructure:"access_token"`
	Mock        bool   `mapstructure:"mock"`
}

type SnowflakeConfig struct {
	Node int64 `mapstructure:"node"`
}

type HoldsConfig struct {
	PageSize int `mapstructure:"page_size"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "thirupugazh-pos")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("http.port", "8080")

	v.SetDefault("storage.driver", DriverMemory)
	v.SetDefault("storage.host", "localhost")
	v.SetDefault("storage.port", "5432")
	v.SetDefault("storage.name", "pos")
	v.SetDefault("storage.user", "pos")
	v.SetDefault("storage.password", "")
	v.SetDefault("storage.sslmode", "disable")
	v.SetDefault("storage.sqlite_path", "pos.db")
	v.SetDefault("storage.max_open_conns", 10)
	v.SetDefault("storage.max_idle_conns", 5)
	v.SetDefault("storage.conn_max_lifetime", "30m")

	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.access_key_id", "local")
	v.SetDefault("dynamodb.secret_access_key", "local")
	v.SetDefault("dynamodb.bills_table", "bills")
	v.SetDefault("dynamodb.holds_table", "holds")
	v.SetDefault("dynamodb.transactions_table", "payment_transactions")
	v.SetDefault("dynamodb.resume_events_table", "resume_events")

	v.SetDefault("calendar.time_zone", "Asia/Kolkata")
	v.SetDefault("calendar.cutover_hour", entities.DefaultCutoverHour)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "720h")

	v.SetDefault("mercadopago.access_token", "")
	v.SetDefault("mercadopago.mock", false)
	v.SetDefault("snowflake.node", 1)
	v.SetDefault("holds.page_size", 50)

	v.SetDefault("payment.modes", []string{"cash", "card", "upi"})
	v.SetDefault("payment.verify_modes", []string{})
	v.SetDefault("payment.require_customer_phone", true)
	v.SetDefault("payment.require_customer_name", false)
}

// New reads pos.yml from the given directories (or /etc/pos and the working directory) and
// overlays POS_* environment variables, e.g. POS_STORAGE_DRIVER for storage.driver. A missing
// file is not an error.
func New(paths ...string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName("pos")
	v.SetConfigType("yml")
	if len(paths) == 0 {
		paths = []string{"/etc/pos", "."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("POS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// Load unmarshals and validates the static part of the configuration.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Storage.Driver {
	case DriverMemory, DriverDynamoDB, DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("storage.driver %q not supported", c.Storage.Driver)
	}
	if c.Calendar.CutoverHour < 0 || c.Calendar.CutoverHour > 23 {
		return fmt.Errorf("calendar.cutover_hour must be between 0 and 23, got %d", c.Calendar.CutoverHour)
	}
	if _, err := time.LoadLocation(c.Calendar.TimeZone); err != nil {
		return fmt.Errorf("calendar.time_zone: %w", err)
	}
	if c.Snowflake.Node < 0 || c.Snowflake.Node > 1023 {
		return fmt.Errorf("snowflake.node must be between 0 and 1023, got %d", c.Snowflake.Node)
	}
	if _, err := c.MenuItems(); err != nil {
		return err
	}
	return nil
}

// DayWindowCalendar builds the business-day calendar from the configured zone and cutover.
func (c Config) DayWindowCalendar() (entities.DayWindowCalendar, error) {
	loc, err := time.LoadLocation(c.Calendar.TimeZone)
	if err != nil {
		return entities.DayWindowCalendar{}, err
	}
	return entities.NewDayWindowCalendar(loc, c.Calendar.CutoverHour), nil
}

// MenuItems converts the configured menu to minor units. A nil result means no menu was
// configured.
func (c Config) MenuItems() ([]entities.MenuItem, error) {
	if len(c.Menu) == 0 {
		return nil, nil
	}
	out := make([]entities.MenuItem, 0, len(c.Menu))
	for i, m := range c.Menu {
		if strings.TrimSpace(m.Name) == "" {
			return nil, fmt.Errorf("menu[%d].name is required", i)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(m.Price))
		if err != nil || price.IsNegative() || price.Shift(2).GreaterThan(decimal.NewFromInt(entities.MaxPriceCents)) {
			return nil, fmt.Errorf("menu[%d].price %q is not a valid amount", i, m.Price)
		}
		out = append(out, entities.MenuItem{
			ID:         m.ID,
			Name:       m.Name,
			PriceCents: price.Shift(2).Round(0).IntPart(),
		})
	}
	return out, nil
}
