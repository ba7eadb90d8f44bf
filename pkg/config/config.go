package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/xaenox/meet-bot/internal/models"
)

// ErrInvalidTimetable is wrapped by every validation failure.
var ErrInvalidTimetable = errors.New("invalid timetable")

type Config struct {
	StartTime  int          `mapstructure:"start_time" validate:"min=0,max=23"`
	EndTime    int          `mapstructure:"end_time" validate:"min=1,max=24,gtfield=StartTime"`
	Weekend    bool         `mapstructure:"weekend"`
	JoinMinute int          `mapstructure:"join_minute" validate:"min=0,max=59"`
	LunchHour  int          `mapstructure:"lunch_hour" validate:"min=-1,max=23"`
	Breaks     BreaksConfig `mapstructure:"breaks"`
	Regular    ClassConfig  `mapstructure:"regular"`
	Labs       ClassConfig  `mapstructure:"labs"`
	Electives  ClassConfig  `mapstructure:"electives"`

	Bot      BotConfig      `mapstructure:"bot"`
	Launcher LauncherConfig `mapstructure:"launcher"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Log      LogConfig      `mapstructure:"log"`
}

type BreaksConfig struct {
	Duration int   `mapstructure:"duration" validate:"min=1"`
	Times    []int `mapstructure:"times" validate:"dive,min=0,max=23"`
}

type ClassConfig struct {
	Special  bool             `mapstructure:"special"`
	Time     map[string][]int `mapstructure:"time" validate:"dive,keys,oneof=mon tue wed thu fri sat sun,endkeys,dive,min=0,max=23"`
	Duration int              `mapstructure:"duration" validate:"min=1"`
	Link     string           `mapstructure:"link" validate:"omitempty,url"`
}

type BotConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval" validate:"min=1s"`
}

type LauncherConfig struct {
	DryRun bool `mapstructure:"dry_run"`
}

type TelegramConfig struct {
	Token  string `mapstructure:"token"`
	ChatID int64  `mapstructure:"chat_id"`
}

type LogConfig struct {
	Env    string `mapstructure:"env" validate:"oneof=development production"`
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
	File   string `mapstructure:"file"`
}

func LoadConfig(path string) (*Config, error) {
	// Meeting links usually live in a .env file next to the config
	envFile := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	v := viper.New()

	// Set default values
	v.SetDefault("start_time", 9)
	v.SetDefault("end_time", 17)
	v.SetDefault("weekend", false)
	v.SetDefault("join_minute", 5)
	v.SetDefault("lunch_hour", 13)
	v.SetDefault("breaks.duration", 1)
	v.SetDefault("breaks.times", []int{})
	v.SetDefault("regular.duration", 1)
	v.SetDefault("labs.duration", 1)
	v.SetDefault("electives.duration", 1)
	v.SetDefault("bot.poll_interval", time.Minute)
	v.SetDefault("launcher.dry_run", false)
	v.SetDefault("log.env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "meeting_bot.log")

	// Enable environment variable support. The prefix keeps section names
	// such as "regular" from being shadowed by the REGULAR link variable.
	v.SetEnvPrefix("MEETBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range map[string]string{
		"regular.link":     "REGULAR",
		"labs.link":        "LABS",
		"electives.link":   "ELECTIVES",
		"telegram.token":   "TELEGRAM_TOKEN",
		"telegram.chat_id": "TELEGRAM_CHAT_ID",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	// Read the config file
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks field ranges and that the timetable is usable as a whole.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimetable, err)
	}

	if c.Regular.Link == "" {
		return fmt.Errorf("%w: regular link is empty (set regular.link or REGULAR)", ErrInvalidTimetable)
	}

	if c.Telegram.Token != "" && c.Telegram.ChatID == 0 {
		return fmt.Errorf("%w: telegram.token is set but telegram.chat_id is missing", ErrInvalidTimetable)
	}

	for name, class := range map[string]ClassConfig{"labs": c.Labs, "electives": c.Electives} {
		if !class.Special || !class.scheduled() {
			continue
		}
		if class.Link == "" {
			return fmt.Errorf("%w: %s are scheduled but have no link", ErrInvalidTimetable, name)
		}
		for day, hours := range class.Time {
			for _, hour := range hours {
				if hour < c.StartTime || hour >= c.EndTime {
					return fmt.Errorf("%w: %s %s %d:00 is outside %d:00-%d:00",
						ErrInvalidTimetable, name, day, hour, c.StartTime, c.EndTime)
				}
			}
		}
	}

	return nil
}

// Timetable converts the loaded configuration into the resolver's input.
func (c *Config) Timetable() models.Timetable {
	breaks := make([]int, 0, len(c.Breaks.Times)*c.Breaks.Duration)
	for _, start := range c.Breaks.Times {
		for offset := 0; offset < c.Breaks.Duration; offset++ {
			breaks = append(breaks, start+offset)
		}
	}

	return models.Timetable{
		Regular:       c.Regular.category(),
		Lab:           c.Labs.category(),
		Elective:      c.Electives.category(),
		BreakHours:    breaks,
		LunchHour:     c.LunchHour,
		StartHour:     c.StartTime,
		EndHour:       c.EndTime,
		AllowWeekends: c.Weekend,
		TriggerMinute: c.JoinMinute,
	}
}

func (c ClassConfig) scheduled() bool {
	for _, hours := range c.Time {
		if len(hours) > 0 {
			return true
		}
	}
	return false
}

func (c ClassConfig) category() models.Category {
	times := make(map[string][]int, len(c.Time))
	for day, hours := range c.Time {
		times[day] = append([]int(nil), hours...)
	}
	return models.Category{
		Special:  c.Special,
		Times:    times,
		Duration: c.Duration,
		Link:     c.Link,
	}
}
