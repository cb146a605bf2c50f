package store

import (
	"context"
	"fmt"

	"reviewdesk/internal/colors"
	apperrors "reviewdesk/internal/errors"
	"reviewdesk/internal/kv"
)

// DesignKey is the blob key of the persisted design settings.
const DesignKey = "app.design.v1"

// Mode is the light or dark appearance.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ParseMode accepts "light" or "dark".
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeLight, ModeDark:
		return Mode(s), nil
	}
	return "", apperrors.New(apperrors.CodeInvalidMode, fmt.Sprintf("unknown mode %q", s), nil)
}

// Design holds the appearance settings.
type Design struct {
	Mode         Mode   `json:"theme"`
	PrimaryColor string `json:"primaryColor"`
}

// DefaultDesign is used when nothing valid is persisted.
var DefaultDesign = Design{Mode: ModeLight, PrimaryColor: colors.Black}

func (d Design) validate() error {
	if _, err := ParseMode(string(d.Mode)); err != nil {
		return err
	}
	_, err := colors.ParseHex(d.PrimaryColor)
	return err
}

// Palette derives the role palette from the primary colour.
func (d Design) Palette() colors.Palette {
	return colors.GeneratePalette(d.PrimaryColor)
}

// DesignStore holds the design settings.
type DesignStore struct {
	*Store[Design]
}

// NewDesignStore loads the design from blobs, falling back to defaults.
// A nil blobs keeps the settings in memory.
func NewDesignStore(ctx context.Context, blobs kv.BlobStore, defaults Design) *DesignStore {
	var p Persister[Design]
	if blobs != nil {
		p = NewBlobPersister[Design](blobs, DesignKey)
	}
	return &DesignStore{Store: Load(ctx, defaults, p, Design.validate)}
}

// SwitchMode toggles between light and dark.
func (s *DesignStore) SwitchMode(ctx context.Context) error {
	return s.Update(ctx, func(d *Design) {
		if d.Mode == ModeDark {
			d.Mode = ModeLight
		} else {
			d.Mode = ModeDark
		}
	})
}

// SetMode sets the appearance explicitly.
func (s *DesignStore) SetMode(ctx context.Context, m Mode) error {
	if _, err := ParseMode(string(m)); err != nil {
		return err
	}
	return s.Update(ctx, func(d *Design) { d.Mode = m })
}

// SetPrimaryColor validates hex and stores it normalized. Invalid input
// leaves the state untouched.
func (s *DesignStore) SetPrimaryColor(ctx context.Context, hex string) error {
	normalized, err := colors.NormalizeHex(hex)
	if err != nil {
		return err
	}
	return s.Update(ctx, func(d *Design) { d.PrimaryColor = normalized })
}
