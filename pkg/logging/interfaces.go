package logging

// Logger provides logging functionality with structured fields
type Logger interface {
	Info(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Debug(msg string, fields map[string]interface{})
	WithOperation(operation string) Logger
	WithContext(ctx map[string]interface{}) Logger
}

// LoggerFactory creates different types of loggers
type LoggerFactory interface {
	CreateLogger(component string) Logger
	CreateCommandLogger(commandName string) Logger
	Sync() error
}

// Config controls where log lines go and at which levels
type Config struct {
	File         string `yaml:"file" toml:"file" env:"FILE"`
	FileLevel    string `yaml:"file_level" toml:"file_level" env:"FILE_LEVEL"`
	ConsoleLevel string `yaml:"console_level" toml:"console_level" env:"CONSOLE_LEVEL"`
	Format       string `yaml:"format" toml:"format" env:"FORMAT"`
}

// DefaultConfig mirrors the historical behaviour: info and above to logs.txt,
// everything to the console.
func DefaultConfig() Config {
	return Config{
		File:         "logs.txt",
		FileLevel:    "info",
		ConsoleLevel: "debug",
		Format:       "console",
	}
}
