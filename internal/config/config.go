// corechess - a Go chess engine core (move generation, search, evaluation)
//
// MIT License
//
// Copyright (c) 2024 corechess contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package config holds the engine's configuration: search limits and
// transposition table sizing, read from a TOML file or defaulted when
// none is present.
package config

import (
	"time"

	"github.com/BurntSushi/toml"
)

// SearchConfig holds the search settings. MaxDepth and DefaultMoveTime set
// the default search limits. UseAspiration, UseNullMove and UseLMR are
// loaded from the file, but the search does not read them: aspiration
// windows, null-move pruning and late move reductions are always on.
type SearchConfig struct {
	MaxDepth        int
	DefaultMoveTime time.Duration
	UseAspiration   bool
	UseNullMove     bool
	UseLMR          bool
}

// TTConfig controls the transposition table.
type TTConfig struct {
	SizeMiB int
}

// Config is the engine's full configuration, as read from a TOML file.
type Config struct {
	Search SearchConfig
	TT     TTConfig
}

// Default returns the configuration the engine runs with when no config
// file is present or named on the command line.
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			MaxDepth:        64,
			DefaultMoveTime: 5 * time.Second,
			UseAspiration:   true,
			UseNullMove:     true,
			UseLMR:          true,
		},
		TT: TTConfig{
			SizeMiB: 64,
		},
	}
}

// Load reads a TOML file at path and overlays it onto Default(). A
// partially-specified file is fine: fields it omits keep their default
// value. A missing file, or one that fails to parse, is returned as an
// error; callers that want to fall back to Default() must check for it.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
