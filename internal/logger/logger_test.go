package logger

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ytget/ytinfo/internal/filesystem"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	config := DefaultConfig()
	config.Output = &buf
	config.Level = INFO

	logger := New(config)
	compLogger := logger.WithComponent(ComponentApp)

	compLogger.Debug("This should not appear")
	compLogger.Info("This should appear")
	compLogger.Warn("This should appear")
	compLogger.Error("This should appear")

	output := buf.String()
	if strings.Contains(output, "This should not appear") {
		t.Error("DEBUG message should be filtered out")
	}
	if strings.Count(output, "This should appear") != 3 {
		t.Errorf("Expected 3 INFO/WARN/ERROR messages, got output %q", output)
	}
}

func TestLogger_Components(t *testing.T) {
	var buf bytes.Buffer
	config := DefaultConfig()
	config.Output = &buf
	config.Components[ComponentDownloader] = false

	logger := New(config)
	appLogger := logger.WithComponent(ComponentApp)
	downloaderLogger := logger.WithComponent(ComponentDownloader)

	appLogger.Info("App message")
	downloaderLogger.Info("Downloader message")

	output := buf.String()
	if !strings.Contains(output, "App message") {
		t.Error("App message should appear")
	}
	if strings.Contains(output, "Downloader message") {
		t.Error("Downloader message should be filtered out")
	}

	logger.EnableComponent(ComponentDownloader)
	downloaderLogger.Info("Downloader enabled")
	if !strings.Contains(buf.String(), "Downloader enabled") {
		t.Error("Downloader message should appear after EnableComponent")
	}
}

func TestLogger_Formats(t *testing.T) {
	var buf bytes.Buffer
	config := DefaultConfig()
	config.Output = &buf
	config.Format = FormatJSON

	logger := New(config)
	compLogger := logger.WithComponent(ComponentApp)

	compLogger.Info("Test message", map[string]interface{}{
		"key": "value",
	})

	output := buf.String()
	if !strings.Contains(output, `"level":"info"`) {
		t.Errorf("JSON format should contain level field, got %s", output)
	}
	if !strings.Contains(output, `"component":"app"`) {
		t.Errorf("JSON format should contain component field, got %s", output)
	}
	if !strings.Contains(output, `"msg":"Test message"`) {
		t.Errorf("JSON format should contain message field, got %s", output)
	}
	if !strings.Contains(output, `"key":"value"`) {
		t.Errorf("JSON format should contain custom field, got %s", output)
	}
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	config := DefaultConfig()
	config.Output = &buf

	logger := New(config)
	compLogger := logger.WithComponent(ComponentApp)

	compLogger.Info("Test message", map[string]interface{}{
		"url":   "https://example.com",
		"count": 42,
	})

	output := buf.String()
	if !strings.Contains(output, `url="https://example.com"`) {
		t.Errorf("Fields should be included in output, got %s", output)
	}
	if !strings.Contains(output, "count=42") {
		t.Errorf("Fields should be included in output, got %s", output)
	}
	if !strings.Contains(output, "component=app") {
		t.Errorf("Component should be included in output, got %s", output)
	}
}

func TestComponentLogger_With(t *testing.T) {
	var buf bytes.Buffer
	config := DefaultConfig()
	config.Output = &buf

	logger := New(config)
	base := logger.WithComponent(ComponentFormat)
	scoped := base.With(map[string]interface{}{"resolution_id": "abc-123"})

	scoped.Info("Scoped message")
	base.Info("Base message")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "resolution_id=abc-123")
	assert.NotContains(t, lines[1], "resolution_id")
}

func TestComponentLogger_NilSafe(t *testing.T) {
	var cl *ComponentLogger
	assert.NotPanics(t, func() {
		cl.Info("ignored")
		cl.With(map[string]interface{}{"k": "v"}).Warn("ignored")
	})
}

func TestLogger_Timestamp(t *testing.T) {
	var buf bytes.Buffer
	config := DefaultConfig()
	config.Output = &buf
	config.Timestamp = true

	logger := New(config)
	logger.WithComponent(ComponentApp).Info("Test message")

	if !strings.Contains(buf.String(), "time=") {
		t.Errorf("Timestamp should be included in output, got %s", buf.String())
	}

	buf.Reset()
	config2 := DefaultConfig()
	config2.Output = &buf
	New(config2).WithComponent(ComponentApp).Info("Test message")
	if strings.Contains(buf.String(), "time=") {
		t.Errorf("Timestamp should be omitted, got %s", buf.String())
	}
}

func TestLogger_Caller(t *testing.T) {
	var buf bytes.Buffer
	config := DefaultConfig()
	config.Output = &buf
	config.ShowCaller = true

	logger := New(config)
	logger.WithComponent(ComponentApp).Info("Test message")

	if !strings.Contains(buf.String(), "file=") {
		t.Errorf("Caller information should be included in output, got %s", buf.String())
	}
}

func TestGlobalLogger(t *testing.T) {
	previous := GetGlobalLogger()
	defer SetGlobalLogger(previous)

	compLogger := WithComponent(ComponentApp)

	var buf bytes.Buffer
	config := DefaultConfig()
	config.Output = &buf
	SetGlobalLogger(New(config))

	compLogger.Info("Global logger test")

	if !strings.Contains(buf.String(), "Global logger test") {
		t.Error("Component logger created before SetGlobalLogger should follow the new global logger")
	}
}

func TestLogger_Concurrency(t *testing.T) {
	var buf bytes.Buffer
	config := DefaultConfig()
	config.Output = &buf

	logger := New(config)
	compLogger := logger.WithComponent(ComponentApp)

	done := make(chan bool, 10)
	for i := 0; i < 10; i++ {
		go func(i int) {
			compLogger.Info("Concurrent message", map[string]interface{}{
				"goroutine": i,
			})
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 10 {
		t.Errorf("Expected 10 log lines, got %d", len(lines))
	}
}

func TestLogger_ComponentConstants(t *testing.T) {
	expected := map[Component]string{
		ComponentApp:        "app",
		ComponentClient:     "client",
		ComponentFetch:      "fetch",
		ComponentFormat:     "format",
		ComponentCipher:     "cipher",
		ComponentDownloader: "downloader",
	}

	for component, expectedValue := range expected {
		if string(component) != expectedValue {
			t.Errorf("Component %s should have value %s, got %s", component, expectedValue, string(component))
		}
	}
	assert.Len(t, Components, len(expected))
}

func TestLogConfig_ToLoggerConfig(t *testing.T) {
	tests := []struct {
		name      string
		config    LogConfig
		level     Level
		format    Format
		enabled   []Component
		disabled  []Component
		expectErr bool
	}{
		{
			name:     "defaults",
			config:   *DefaultLogConfig(),
			level:    INFO,
			format:   FormatText,
			enabled:  []Component{ComponentApp, ComponentFormat},
			disabled: []Component{ComponentClient, ComponentDownloader},
		},
		{
			name:    "all components json debug",
			config:  LogConfig{Level: "debug", Format: "json", Output: "null", Components: "all"},
			level:   DEBUG,
			format:  FormatJSON,
			enabled: Components,
		},
		{
			name:     "mixed case list",
			config:   LogConfig{Level: "WARN", Format: "color", Output: "stdout", Components: " Fetch , cipher"},
			level:    WARN,
			format:   FormatColor,
			enabled:  []Component{ComponentFetch, ComponentCipher},
			disabled: []Component{ComponentApp},
		},
		{name: "bad level", config: LogConfig{Level: "loud"}, expectErr: true},
		{name: "bad format", config: LogConfig{Format: "xml"}, expectErr: true},
		{name: "bad output", config: LogConfig{Output: "syslog"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.config.ToLoggerConfig()
			if tt.expectErr {
				assert.Error(t, err)
				assert.Error(t, tt.config.ValidateConfig())
				return
			}
			require.NoError(t, err)
			assert.NoError(t, tt.config.ValidateConfig())
			assert.Equal(t, tt.level, got.Level)
			assert.Equal(t, tt.format, got.Format)
			for _, c := range tt.enabled {
				assert.True(t, got.Components[c], "component %s should be enabled", c)
			}
			for _, c := range tt.disabled {
				assert.False(t, got.Components[c], "component %s should be disabled", c)
			}
		})
	}
}

func TestLogConfig_FileOutput(t *testing.T) {
	filesystem.SetMemMapFs()
	defer filesystem.SetOsFs()

	config := &LogConfig{Level: "info", Format: "text", Output: "file:/logs/ytinfo.log", Components: "app"}
	logger, err := CreateLoggerFromConfig(config)
	require.NoError(t, err)

	logger.WithComponent(ComponentApp).Info("Written to file")

	file, err := filesystem.API().Open("/logs/ytinfo.log")
	require.NoError(t, err)
	defer file.Close()
	data, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Written to file")
}
