package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const validConfig = `
[server]
http_port = 8084
read_timeout = 10
write_timeout = 10
idle_timeout = 60
shutdown_timeout = 15

[logs]
file = "logs/app.log"
level = "info"

[metrics]
enabled = true
path = "/metrics"
service_name = "session-service"

[redis]
addr = "localhost:6379"
booking_lock_ttl = 30

[schedule_service]
url = "http://localhost:8081"
timeout = 5

[auth_service]
url = "http://localhost:8082"
timeout = 5

[profile_service]
url = "http://localhost:8083"
timeout = 5

[mail]
sendgrid_api_key = "SG.test"
from_email = "no-reply@mentorgig.io"
from_name = "MentorGig"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))

	require.NoError(t, err)
	require.Equal(t, 8084, cfg.Server.HTTPPort)
	require.Equal(t, "localhost:6379", cfg.Redis.Addr)
	require.Equal(t, 30, cfg.Redis.BookingLockTTLSec)
	require.Equal(t, "http://localhost:8081", cfg.ScheduleService.URL)
	require.Equal(t, "no-reply@mentorgig.io", cfg.Mail.FromEmail)
	require.True(t, cfg.Metrics.Enabled)
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  string
		wantErr string
	}{
		{
			name:    "missing port",
			mutate:  "http_port = 8084",
			wantErr: "server.http_port",
		},
		{
			name:    "missing schedule service url",
			mutate:  `url = "http://localhost:8081"`,
			wantErr: "schedule_service.url",
		},
		{
			name:    "missing redis addr",
			mutate:  `addr = "localhost:6379"`,
			wantErr: "redis.addr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			broken := strings.Replace(validConfig, tt.mutate, "", 1)

			_, err := Load(writeConfig(t, broken))

			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
