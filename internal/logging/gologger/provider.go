// Package gologger adapts goliatone/go-logger to the builder logging
// contracts so modules stay decoupled from the concrete log backend.
package gologger

import (
	"context"
	"fmt"
	"sort"
	"strings"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/dramac-main/dramac-cms-sub001/internal/logging"
	"github.com/dramac-main/dramac-cms-sub001/pkg/interfaces"
)

// Config captures the options exposed by the go-logger adapter.
type Config struct {
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Provider hands out module loggers backed by a shared go-logger root.
type Provider struct {
	root *glog.BaseLogger
}

// NewProvider constructs a logger provider from the given config. An empty
// level or format keeps go-logger defaults.
func NewProvider(cfg Config) (*Provider, error) {
	options, err := providerOptions(cfg)
	if err != nil {
		return nil, err
	}

	root := glog.NewLogger(options...)
	if focus := trimNames(cfg.Focus); len(focus) > 0 {
		root.Focus(focus...)
	}
	return &Provider{root: root}, nil
}

func providerOptions(cfg Config) ([]glog.Option, error) {
	var options []glog.Option

	if level, ok := levelNames[strings.ToLower(strings.TrimSpace(cfg.Level))]; ok && level != "" {
		options = append(options, glog.WithLevel(level))
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "json":
		options = append(options, glog.WithLoggerTypeJSON())
	case "console":
		options = append(options, glog.WithLoggerTypeConsole())
	case "pretty":
		options = append(options, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("logging: unsupported go-logger format %q", cfg.Format)
	}

	if cfg.AddSource {
		options = append(options, glog.WithAddSource(true))
	}
	return options, nil
}

var levelNames = map[string]string{
	"trace":   glog.Trace,
	"debug":   glog.Debug,
	"info":    glog.Info,
	"warn":    glog.Warn,
	"warning": glog.Warn,
	"error":   glog.Error,
	"fatal":   glog.Fatal,
}

// GetLogger satisfies interfaces.LoggerProvider. An empty name yields the
// root logger.
func (p *Provider) GetLogger(name string) interfaces.Logger {
	if p == nil {
		return logging.NoOp()
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return adapt(p.root)
	}
	return adapt(p.root.GetLogger(name))
}

func adapt(inner glog.Logger) interfaces.Logger {
	if inner == nil {
		return logging.NoOp()
	}
	return &logAdapter{inner: inner}
}

type logAdapter struct {
	inner glog.Logger
}

func (l *logAdapter) Trace(msg string, args ...any) { l.inner.Trace(msg, args...) }
func (l *logAdapter) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l *logAdapter) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l *logAdapter) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }
func (l *logAdapter) Error(msg string, args ...any) { l.inner.Error(msg, args...) }
func (l *logAdapter) Fatal(msg string, args ...any) { l.inner.Fatal(msg, args...) }

func (l *logAdapter) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}

	if with, ok := l.inner.(glog.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		for k, v := range fields {
			copied[k] = v
		}
		return adapt(with.WithFields(copied))
	}

	if with, ok := l.inner.(interface{ With(...any) *glog.BaseLogger }); ok {
		return adapt(with.With(sortedPairs(fields)...))
	}
	return l
}

func (l *logAdapter) WithContext(ctx context.Context) interfaces.Logger {
	if ctx == nil {
		return l
	}
	return adapt(l.inner.WithContext(ctx))
}

// sortedPairs flattens fields into key/value pairs in key order so log lines
// stay stable across runs.
func sortedPairs(fields map[string]any) []any {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]any, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, fields[k])
	}
	return pairs
}

func trimNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
