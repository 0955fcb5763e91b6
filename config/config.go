//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config holds the settings that are fixed when coder starts.
// A Config is built once and never changes afterwards.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Config struct {
	languages  map[string]string // file extension -> highlighting language
	runners    map[string]string // file extension -> interpreter for run-script
	style      string            // highlighting style
	runTimeout time.Duration
	undoLimit  int
	formatGo   bool
	logPath    string
}

type Option func(*Config)

// WithLanguage highlights files with extension ext as language.
func WithLanguage(ext, language string) Option {
	return func(c *Config) {
		c.languages[strings.TrimPrefix(ext, ".")] = language
	}
}

// WithRunner runs files with extension ext using interpreter.
func WithRunner(ext, interpreter string) Option {
	return func(c *Config) {
		c.runners[strings.TrimPrefix(ext, ".")] = interpreter
	}
}

func WithStyle(style string) Option {
	return func(c *Config) {
		c.style = style
	}
}

func WithRunTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.runTimeout = d
	}
}

func WithUndoLimit(n int) Option {
	return func(c *Config) {
		c.undoLimit = n
	}
}

func WithFormatGo(on bool) Option {
	return func(c *Config) {
		c.formatGo = on
	}
}

func WithLogPath(path string) Option {
	return func(c *Config) {
		c.logPath = path
	}
}

func New(options ...Option) *Config {
	c := &Config{
		languages: map[string]string{
			"py":    "python",
			"glade": "xml",
			"pl":    "perl",
		},
		runners: map[string]string{
			"py": "python",
		},
		style:      "monokai",
		runTimeout: 10 * time.Second,
		undoLimit:  1000,
		formatGo:   true,
		logPath:    filepath.Join(os.Getenv("HOME"), ".coderlog"),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return New()
}

func extension(filename string) string {
	return strings.TrimPrefix(filepath.Ext(filename), ".")
}

// Language returns the highlighting language for filename.
// Unknown extensions are returned as the language name itself.
func (c *Config) Language(filename string) string {
	ext := extension(filename)
	if language, ok := c.languages[ext]; ok {
		return language
	}
	return ext
}

// Runner returns the interpreter used to run filename.
func (c *Config) Runner(filename string) (string, bool) {
	interpreter, ok := c.runners[extension(filename)]
	return interpreter, ok
}

func (c *Config) Style() string {
	return c.style
}

func (c *Config) RunTimeout() time.Duration {
	return c.runTimeout
}

func (c *Config) UndoLimit() int {
	return c.undoLimit
}

func (c *Config) FormatGo() bool {
	return c.formatGo
}

func (c *Config) LogPath() string {
	return c.logPath
}
