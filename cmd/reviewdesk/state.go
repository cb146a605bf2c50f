package main

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"reviewdesk/internal/colors"
	"reviewdesk/internal/config"
	apperrors "reviewdesk/internal/errors"
	"reviewdesk/internal/kv"
	"reviewdesk/internal/store"
	"reviewdesk/internal/tagtext"
	"reviewdesk/internal/ui/theme"
)

// state bundles the stores backing a command.
type state struct {
	blobs     kv.BlobStore
	design    *store.DesignStore
	templates *store.TemplateStore
	tags      []tagtext.Tag
}

// openState opens the blob store (SQLite at config.StoragePath, or memory
// when ephemeral) and loads the design and template stores from it.
func openState(ctx context.Context, ephemeral bool) (*state, error) {
	defaults, err := designDefaults()
	if err != nil {
		return nil, err
	}
	tags, err := configuredTags()
	if err != nil {
		return nil, err
	}

	var blobs kv.BlobStore
	if ephemeral {
		blobs = kv.NewMemory()
	} else {
		path, err := config.StoragePath()
		if err != nil {
			return nil, err
		}
		db, err := kv.OpenSQLite(ctx, path)
		if err != nil {
			return nil, err
		}
		blobs = db
	}

	return &state{
		blobs:     blobs,
		design:    store.NewDesignStore(ctx, blobs, defaults),
		templates: store.NewTemplateStore(ctx, blobs),
		tags:      tags,
	}, nil
}

// configuredTags returns the tags from the config file, or the stock tags.
func configuredTags() ([]tagtext.Tag, error) {
	tags, err := config.GetTags()
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return store.DefaultTags, nil
	}
	return tags, nil
}

func (s *state) Close() {
	if s == nil || s.blobs == nil {
		return
	}
	_ = s.blobs.Close()
}

// designDefaults builds the design used when nothing is stored yet from the
// theme.* configuration keys. A preset takes precedence over theme.seed.
func designDefaults() (store.Design, error) {
	mode, err := store.ParseMode(strings.TrimSpace(config.GetString(config.KeyThemeMode)))
	if err != nil {
		return store.Design{}, apperrors.New(apperrors.CodeConfigurationError, config.KeyThemeMode, err)
	}
	seed := config.GetString(config.KeyThemeSeed)
	if preset := strings.TrimSpace(config.GetString(config.KeyThemePreset)); preset != "" {
		s, err := presetSeed(preset)
		if err != nil {
			return store.Design{}, apperrors.New(apperrors.CodeConfigurationError, config.KeyThemePreset, err)
		}
		seed = s
	}
	normalized, err := colors.NormalizeHex(seed)
	if err != nil {
		return store.Design{}, apperrors.New(apperrors.CodeConfigurationError, config.KeyThemeSeed, err)
	}
	return store.Design{Mode: mode, PrimaryColor: normalized}, nil
}

func presetSeed(name string) (string, error) {
	seed, ok := theme.PresetSeed(name)
	if !ok {
		return "", apperrors.New(apperrors.CodeNotFound, "unknown preset "+name, nil)
	}
	return seed, nil
}

// applyDesignFlags writes explicitly passed --seed, --preset and --mode into
// the design store so they override the stored design.
func applyDesignFlags(cmd *cobra.Command, flags *rootFlags, design *store.DesignStore) error {
	ctx := cmd.Context()
	var errs []error

	if cmd.Flags().Changed("preset") {
		seed, err := presetSeed(flags.preset)
		if err == nil {
			err = design.SetPrimaryColor(ctx, seed)
		}
		errs = append(errs, err)
	}
	if cmd.Flags().Changed("seed") {
		errs = append(errs, design.SetPrimaryColor(ctx, flags.seed))
	}
	if cmd.Flags().Changed("mode") {
		errs = append(errs, design.SetMode(ctx, store.Mode(strings.TrimSpace(flags.mode))))
	}
	return errors.Join(errs...)
}
