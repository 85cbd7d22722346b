// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package observability provides structured logging for context-prune.
package observability

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the structured logger interface used throughout the CLI layer.
// The pure pkg/transcript core never imports this package - it reports
// outcomes through return values, not log lines.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Field represents a log field.
type Field struct {
	Key   string
	Value any
}

// logger is the logrus-backed implementation.
type logger struct {
	entry *logrus.Entry
}

// NewLogger creates a new logger writing to stderr at the given level
// ("debug", "info", "warn", "error"). A level that logrus.ParseLevel
// rejects falls back to info.
func NewLogger(level string) Logger {
	base := logrus.New()
	base.SetOutput(os.Stderr)
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	base.SetLevel(lvl)

	return &logger{entry: logrus.NewEntry(base)}
}

func (l *logger) Debug(msg string, fields ...Field) {
	l.withFields(fields).Debug(msg)
}

func (l *logger) Info(msg string, fields ...Field) {
	l.withFields(fields).Info(msg)
}

func (l *logger) Warn(msg string, fields ...Field) {
	l.withFields(fields).Warn(msg)
}

func (l *logger) Error(msg string, fields ...Field) {
	l.withFields(fields).Error(msg)
}

func (l *logger) With(fields ...Field) Logger {
	return &logger{entry: l.withFields(fields)}
}

func (l *logger) withFields(fields []Field) *logrus.Entry {
	if len(fields) == 0 {
		return l.entry
	}
	lf := make(logrus.Fields, len(fields))
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return l.entry.WithFields(lf)
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}
