package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/tariff"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPPort       string
	RequestTimeout time.Duration
	LogLevel       string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// SweepSchedule is a six field cron expression, seconds first.
	SweepSchedule string
	SweepTimeout  time.Duration

	// RedisAddr enables the distributed sweep lock when set.
	RedisAddr     string
	RedisPassword string
	SweepLockTTL  time.Duration

	// KafkaBrokers enables Kafka reminders when non-empty; otherwise reminders are only logged.
	KafkaBrokers       []string
	KafkaReminderTopic string

	TariffsFile string
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) Validate() error {
	var problems []error
	if c.HTTPPort == "" {
		problems = append(problems, errors.New("config: HTTP_PORT is required"))
	}
	if c.DBHost == "" || c.DBName == "" {
		problems = append(problems, errors.New("config: DB_HOST and DB_NAME are required"))
	}
	if c.SweepSchedule == "" {
		problems = append(problems, errors.New("config: SWEEP_SCHEDULE is required"))
	}
	if c.RequestTimeout <= 0 || c.SweepTimeout <= 0 {
		problems = append(problems, errors.New("config: timeouts must be positive"))
	}
	if c.RedisAddr != "" && c.SweepLockTTL < c.SweepTimeout {
		problems = append(problems, errors.New("config: SWEEP_LOCK_TTL must cover SWEEP_TIMEOUT"))
	}
	if len(c.KafkaBrokers) > 0 && c.KafkaReminderTopic == "" {
		problems = append(problems, errors.New("config: KAFKA_REMINDER_TOPIC is required with KAFKA_BROKERS"))
	}
	return errors.Join(problems...)
}

// TariffFile is the YAML layout of the rate table:
//
//	rates:
//	  small: 100
//	  medium: 300
//	  large: 500
type TariffFile struct {
	Rates map[string]int64 `yaml:"rates"`
}

// LoadRateTable reads the tariff file. An empty path yields the default rates.
func LoadRateTable(path string) (tariff.RateTable, error) {
	if path == "" {
		return tariff.DefaultRateTable(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return tariff.RateTable{}, fmt.Errorf("read tariffs: %w", err)
	}

	var file TariffFile
	if err = yaml.Unmarshal(data, &file); err != nil {
		return tariff.RateTable{}, fmt.Errorf("parse tariffs: %w", err)
	}

	rates := make(map[kernel.Size]int64, len(file.Rates))
	for code, rate := range file.Rates {
		size, sizeErr := kernel.ParseSize(code)
		if sizeErr != nil {
			return tariff.RateTable{}, fmt.Errorf("parse tariffs: %w", sizeErr)
		}
		rates[size] = rate
	}

	table, err := tariff.NewRateTable(rates)
	if err != nil {
		return tariff.RateTable{}, fmt.Errorf("tariffs in %s: %w", path, err)
	}
	return table, nil
}
