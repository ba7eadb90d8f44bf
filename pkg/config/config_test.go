package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xaenox/meet-bot/internal/models"
)

const fullConfig = `
start_time: 9
end_time: 17
weekend: false
join_minute: 5
lunch_hour: 13
breaks:
  duration: 1
  times: [15]
regular:
  special: false
  duration: 1
  link: https://meet.example.com/regular
labs:
  special: true
  time:
    mon: [11]
    tue: [15]
    wed: [10, 15]
  duration: 2
  link: https://meet.example.com/lab
electives:
  special: true
  time:
    thu: [12]
    fri: [9]
  duration: 1
  link: https://meet.example.com/elective
bot:
  poll_interval: 30s
telegram:
  chat_id: 42
log:
  level: debug
  format: json
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Full(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, fullConfig))
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Bot.PollInterval)
	assert.Equal(t, int64(42), cfg.Telegram.ChatID)
	assert.Equal(t, "json", cfg.Log.Format)

	tt := cfg.Timetable()
	assert.Equal(t, 9, tt.StartHour)
	assert.Equal(t, 17, tt.EndHour)
	assert.Equal(t, 13, tt.LunchHour)
	assert.Equal(t, 5, tt.TriggerMinute)
	assert.Equal(t, []int{15}, tt.BreakHours)
	assert.False(t, tt.AllowWeekends)
	assert.Equal(t, []int{10, 15}, tt.Lab.Times["wed"])
	assert.Equal(t, 2, tt.Lab.Duration)
	assert.True(t, tt.Elective.Special)
	assert.True(t, tt.Lab.ScheduledAt(time.Monday, 11))
	assert.Equal(t, "https://meet.example.com/elective", tt.Category(models.Elective).Link)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "regular:\n  link: https://meet.example.com/r\n"))
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.StartTime)
	assert.Equal(t, 17, cfg.EndTime)
	assert.Equal(t, 5, cfg.JoinMinute)
	assert.Equal(t, 13, cfg.LunchHour)
	assert.Equal(t, 1, cfg.Regular.Duration)
	assert.Equal(t, time.Minute, cfg.Bot.PollInterval)
	assert.Equal(t, "meeting_bot.log", cfg.Log.File)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_LinksFromEnv(t *testing.T) {
	t.Setenv("REGULAR", "https://meet.example.com/from-env")
	t.Setenv("LABS", "https://meet.example.com/lab-env")
	t.Setenv("TELEGRAM_TOKEN", "123:abc")

	cfg, err := LoadConfig(writeConfig(t, fullConfig))
	require.NoError(t, err)

	assert.Equal(t, "https://meet.example.com/from-env", cfg.Regular.Link)
	assert.Equal(t, "https://meet.example.com/lab-env", cfg.Labs.Link)
	assert.Equal(t, "https://meet.example.com/elective", cfg.Electives.Link)
	assert.Equal(t, "123:abc", cfg.Telegram.Token)
}

func TestLoadConfig_DotEnvNextToConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("start_time: 8\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("REGULAR=https://meet.example.com/dotenv\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("REGULAR") })

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://meet.example.com/dotenv", cfg.Regular.Link)
	assert.Equal(t, 8, cfg.StartTime)
}

func TestLoadConfig_ExampleWithEnvLinks(t *testing.T) {
	t.Setenv("REGULAR", "https://meet.example.com/regular-env")
	t.Setenv("LABS", "https://meet.example.com/lab-env")
	t.Setenv("ELECTIVES", "https://meet.example.com/elective-env")

	cfg, err := LoadConfig(filepath.Join("..", "..", "config.example.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "https://meet.example.com/regular-env", cfg.Regular.Link)
	assert.Equal(t, "https://meet.example.com/lab-env", cfg.Labs.Link)
	assert.Equal(t, "https://meet.example.com/elective-env", cfg.Electives.Link)
	assert.Equal(t, 2, cfg.Labs.Duration)
	assert.Equal(t, []int{11}, cfg.Labs.Time["mon"])

	tt := cfg.Timetable()
	assert.Equal(t, 2, tt.Lab.Duration)
	assert.Equal(t, "https://meet.example.com/lab-env", tt.Lab.Link)
}

func TestLoadConfig_MalformedDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("regular:\n  link: https://meet.example.com/r\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("REGULAR=\"https://meet.example.com/unterminated\n"), 0o600))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, ".env")
	assert.NotErrorIs(t, err, ErrInvalidTimetable)
}

func TestLoadConfig_MultiHourBreaks(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
regular:
  link: https://meet.example.com/r
breaks:
  duration: 2
  times: [10]
`))
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11}, cfg.Timetable().BreakHours)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"window reversed", "start_time: 17\nend_time: 9\nregular:\n  link: https://m.example.com\n"},
		{"zero duration", "regular:\n  link: https://m.example.com\nlabs:\n  duration: 0\n"},
		{"bad weekday", "regular:\n  link: https://m.example.com\nlabs:\n  special: true\n  link: https://l.example.com\n  time:\n    monday: [10]\n"},
		{"hour out of range", "regular:\n  link: https://m.example.com\nbreaks:\n  times: [25]\n"},
		{"missing regular link", "start_time: 9\n"},
		{"bad link", "regular:\n  link: not a url\n"},
		{"lab without link", "regular:\n  link: https://m.example.com\nlabs:\n  special: true\n  time:\n    mon: [10]\n"},
		{"lab outside window", "regular:\n  link: https://m.example.com\nlabs:\n  special: true\n  link: https://l.example.com\n  time:\n    mon: [18]\n"},
		{"bad log format", "regular:\n  link: https://m.example.com\nlog:\n  format: xml\n"},
		{"bad log level", "regular:\n  link: https://m.example.com\nlog:\n  level: loud\n"},
		{"telegram token without chat", "regular:\n  link: https://m.example.com\ntelegram:\n  token: abc\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.body))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTimetable)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidTimetable)
}
