/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Loader binds gdbwire-tap's persistent flags to a Viper instance, loads
// an optional config file, and keeps Options.LogLevel live-reloaded while
// the process runs — mirroring the teacher's flag-to-viper-key binding
// idiom (nabbar-golib/config/components/log's RegisterFlag) without that
// package's component-registry machinery, which this single-purpose CLI
// has no use for.
type Loader struct {
	v        *viper.Viper
	onChange func(Options)
}

// NewLoader builds a Loader and registers gdbwire-tap's persistent flags
// on cmd, bound to the matching Viper keys.
func NewLoader(cmd *cobra.Command) (*Loader, error) {
	v := viper.New()
	v.SetEnvPrefix("GDBWIRE_TAP")
	v.AutomaticEnv()

	def := Default()
	cmd.PersistentFlags().String("gdb-path", def.GDBPath, `path to the gdb executable, or "-" to read an MI transcript from stdin`)
	cmd.PersistentFlags().String("work-dir", def.WorkDir, "working directory for the spawned gdb process")
	cmd.PersistentFlags().String("log-level", def.LogLevel, "one of debug, info, warn, error")
	cmd.PersistentFlags().Bool("log-to-stderr", def.LogToStderr, "also emit parse warnings/errors on stderr")
	cmd.PersistentFlags().String("config", "", "path to a config file (yaml, json, toml)")

	for _, key := range []string{"gdb-path", "work-dir", "log-level", "log-to-stderr"} {
		if err := v.BindPFlag(key, cmd.PersistentFlags().Lookup(key)); err != nil {
			return nil, fmt.Errorf("config: bind flag %q: %w", key, err)
		}
	}

	return &Loader{v: v}, nil
}

// Load reads the config file named by the --config flag (if any) and
// returns the validated Options. Call it after cmd.Flags() have been
// parsed.
func (l *Loader) Load(cmd *cobra.Command) (Options, error) {
	if path, _ := cmd.PersistentFlags().GetString("config"); path != "" {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return Options{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	opt, err := l.decode()
	if err != nil {
		return Options{}, err
	}
	if err := opt.Validate(); err != nil {
		return Options{}, err
	}
	return opt, nil
}

func (l *Loader) decode() (Options, error) {
	return Options{
		GDBPath:     l.v.GetString("gdb-path"),
		WorkDir:     l.v.GetString("work-dir"),
		LogLevel:    l.v.GetString("log-level"),
		LogToStderr: l.v.GetBool("log-to-stderr"),
	}, nil
}

// WatchLogLevel arranges for fn to be called with the freshly decoded
// Options every time the backing config file changes on disk. It is a
// no-op if Load was never called with a --config file, since Viper has
// nothing to watch in that case.
func (l *Loader) WatchLogLevel(fn func(Options)) {
	l.onChange = fn
	l.v.OnConfigChange(func(_ fsnotify.Event) {
		if opt, err := l.decode(); err == nil && l.onChange != nil {
			l.onChange(opt)
		}
	})
	l.v.WatchConfig()
}
