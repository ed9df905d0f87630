// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

const (
	// DefaultReplacement is used for dot/space runs when nothing else is configured.
	DefaultReplacement = "_"

	maxReplacementLen = 10
	maxAffixLen       = 100
)

// invalidNameChars are rejected in replacement/prefix/suffix values: path
// separators, the characters Windows refuses in filenames, and NUL.
const invalidNameChars = "/\\:*?\"<>|\x00"

// 📚 Config represents the complete runtime configuration for a rename run.
type Config struct {
	// Replacement substitutes each run of dots and spaces in a filename stem.
	// Empty string deletes the run instead.
	Replacement string `json:"replacement" yaml:"replacement"`

	// Prefix is prepended to each transformed stem.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`

	// Suffix is appended to each transformed stem, before the extension.
	Suffix string `json:"suffix,omitempty" yaml:"suffix,omitempty"`

	// Recursive includes subdirectories (hidden directories are always pruned).
	Recursive bool `json:"recursive,omitempty" yaml:"recursive,omitempty"`

	// IgnorePatterns are doublestar globs matched against file names and
	// root-relative paths; matching files are never considered for renaming.
	IgnorePatterns []string `json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty"`

	// Apply switches from preview to execution mode.
	Apply bool `json:"apply,omitempty" yaml:"apply,omitempty"`

	// Force skips the interactive confirmation in apply mode.
	Force bool `json:"force,omitempty" yaml:"force,omitempty"`
}

// 🏭 Default returns a Config with the stock replacement and everything else off.
func Default() *Config {
	return &Config{
		Replacement: DefaultReplacement,
	}
}

// 🔍 Validate checks that the configuration is safe to run. It is called
// before any directory is scanned; a failure here is fatal.
func (cfg *Config) Validate() error {
	if err := validateNameText("replacement", cfg.Replacement, maxReplacementLen); err != nil {
		return err
	}
	if err := validateNameText("prefix", cfg.Prefix, maxAffixLen); err != nil {
		return err
	}
	if err := validateNameText("suffix", cfg.Suffix, maxAffixLen); err != nil {
		return err
	}
	for _, pattern := range cfg.IgnorePatterns {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid ignore pattern %q", pattern)
		}
	}
	return nil
}

// validateNameText rejects values that could not appear inside a filename.
func validateNameText(label, value string, maxLen int) error {
	if idx := strings.IndexAny(value, invalidNameChars); idx >= 0 {
		return errors.Errorf("invalid character in %s: %q", label, value[idx:idx+1])
	}
	if utf8.RuneCountInString(value) > maxLen {
		return errors.Errorf("%s too long (max %d characters)", label, maxLen)
	}
	return nil
}

// 📝 DisplayReplacement renders the replacement for humans: quoted, or a
// "(removed)" marker when runs are deleted outright.
func (cfg *Config) DisplayReplacement() string {
	if cfg.Replacement == "" {
		return "(removed)"
	}
	return fmt.Sprintf("'%s'", cfg.Replacement)
}

// 📝 String returns a compact one-line representation of the transform settings.
func (cfg *Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "replace=%s", cfg.DisplayReplacement())
	if cfg.Prefix != "" {
		fmt.Fprintf(&b, " prefix='%s'", cfg.Prefix)
	}
	if cfg.Suffix != "" {
		fmt.Fprintf(&b, " suffix='%s'", cfg.Suffix)
	}
	if cfg.Recursive {
		b.WriteString(" recursive")
	}
	return b.String()
}

// 🔧 File is the on-disk configuration shape. Pointer fields distinguish
// "not set" from explicit zero values (an empty replacement is meaningful:
// it deletes dot/space runs).
type File struct {
	Replacement    *string  `json:"replacement,omitempty" yaml:"replacement,omitempty" hcl:"replacement,optional"`
	Prefix         *string  `json:"prefix,omitempty" yaml:"prefix,omitempty" hcl:"prefix,optional"`
	Suffix         *string  `json:"suffix,omitempty" yaml:"suffix,omitempty" hcl:"suffix,optional"`
	Recursive      *bool    `json:"recursive,omitempty" yaml:"recursive,omitempty" hcl:"recursive,optional"`
	IgnorePatterns []string `json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty" hcl:"ignore_patterns,optional"`
}

// 🔄 ApplyTo copies every set field onto cfg, leaving the rest untouched.
// Command-line flags are applied after this and win over file values.
func (f *File) ApplyTo(cfg *Config) {
	if f == nil {
		return
	}
	if f.Replacement != nil {
		cfg.Replacement = *f.Replacement
	}
	if f.Prefix != nil {
		cfg.Prefix = *f.Prefix
	}
	if f.Suffix != nil {
		cfg.Suffix = *f.Suffix
	}
	if f.Recursive != nil {
		cfg.Recursive = *f.Recursive
	}
	if len(f.IgnorePatterns) > 0 {
		cfg.IgnorePatterns = append(cfg.IgnorePatterns[:0:0], f.IgnorePatterns...)
	}
}
