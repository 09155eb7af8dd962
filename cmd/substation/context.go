package main

import (
	"log/slog"
	"strings"
	"sync"

	"substation/internal/config"
	"substation/internal/document"
	"substation/internal/logging"
	"substation/internal/scriptio"
)

type commandContext struct {
	configFlag   *string
	encodingFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag, encodingFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag, encodingFlag: encodingFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// inputEncoding resolves the encoding used for reading scripts: the
// --encoding flag when given, otherwise the configuration default.
func (c *commandContext) inputEncoding() string {
	if c.encodingFlag != nil && strings.TrimSpace(*c.encodingFlag) != "" {
		return strings.TrimSpace(*c.encodingFlag)
	}
	return c.outputEncoding()
}

// outputEncoding resolves the encoding used for writing scripts.
func (c *commandContext) outputEncoding() string {
	cfg, err := c.ensureConfig()
	if err != nil || cfg == nil {
		return scriptio.DefaultEncoding
	}
	return cfg.Output.Encoding
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil || cfg == nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logging.New(logging.Options{
			Level:  cfg.LogLevel,
			Format: cfg.LogFormat,
			Output: logOutput(),
		})
	})
	return c.logger
}

func (c *commandContext) loadScript(path string) (*document.Document, error) {
	return scriptio.Load(path, c.inputEncoding())
}
