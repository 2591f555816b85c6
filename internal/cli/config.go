package cli

import (
	"context"
	"fmt"
	"iter"

	"github.com/alecthomas/kong"
	"go.abhg.dev/carve/internal/git"
)

// _configTag is the struct tag that connects a flag
// to a git configuration key.
const _configTag = "config"

// GitConfigLister provides access to git-config output.
type GitConfigLister interface {
	ListRegexp(context.Context, ...string) iter.Seq2[git.ConfigEntry, error]
}

var _ GitConfigLister = (*git.Config)(nil)

// Config defines the configuration source for the command line.
// It can be passed to Kong as a [kong.Resolver] to fill in flag values.
//
// Configuration is specified via git-config,
// so it may be system, user, repository, or worktree-level.
//
// Keys are read from the git config section named after the command
// for flags in the CLI grammar tagged with the `config:"key"` tag.
// Flags that are not tagged with `config:"key"` are not configurable.
//
// For example, with the section "carve":
//
//	type someCmd struct {
//		Level string `config:"level"`
//	}
//
// This will read the configuration key "carve.level" from git-config.
//
//	[carve]
//	level = hot
//
// Values are decoded using the same mapper as the flag.
// For single-valued fields, if multiple values are found in the configuration,
// the last value is used.
// For slice fields, all values are combined.
//
// If a flag is passed on the CLI, it takes precedence over the configuration.
type Config struct {
	// section is the top-level section that configuration keys
	// are read from, e.g. "carve" for "carve.*" keys.
	section string

	// items is a map from configuration key (including the section)
	// to list of values for that field.
	items map[git.ConfigKey][]string
}

// LoadConfig loads command line configuration
// from the given section of git-config.
func LoadConfig(ctx context.Context, cfg GitConfigLister, section string) (*Config, error) {
	items := make(map[git.ConfigKey][]string)

	for entry, err := range cfg.ListRegexp(ctx, `^`+section+`\.`) {
		if err != nil {
			return nil, fmt.Errorf("list configuration: %w", err)
		}

		key := entry.Key.Canonical()
		if key.Section() != section {
			// Ignore keys that are not in our namespace.
			// This will never happen if git config --get-regexp
			// behaves correctly, but it's easy to handle.
			continue
		}

		items[key] = append(items[key], entry.Value)
	}

	return &Config{section: section, items: items}, nil
}

// Validate checks if the configuration is valid for the given application.
// This is a no-op, as we allow unknown configuration keys.
func (*Config) Validate(*kong.Application) error { return nil }

// Resolve resolves the value for a flag from configuration.
func (c *Config) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	k := flag.Tag.Get(_configTag)
	if k == "" {
		return nil, nil
	}

	key := git.ConfigKey(c.section + "." + k).Canonical()
	values := c.items[key]
	switch len(values) {
	case 0:
		return nil, nil

	case 1:
		return values[0], nil

	default:
		if flag.IsSlice() {
			if flag.Tag.Sep != -1 {
				// If there are multiple values, and a separator is defined,
				// let Kong split the values.
				return kong.JoinEscaped(values, flag.Tag.Sep), nil
			}

			return nil, fmt.Errorf("key %q has multiple values but no separator is defined", key)
		}

		// Last value wins if there are multiple instances
		// for a single-valued flag.
		return values[len(values)-1], nil
	}
}
