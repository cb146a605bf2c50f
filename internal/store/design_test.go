package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviewdesk/internal/colors"
	apperrors "reviewdesk/internal/errors"
	"reviewdesk/internal/kv"
)

func TestParseMode(t *testing.T) {
	m, err := ParseMode("dark")
	require.NoError(t, err)
	assert.Equal(t, ModeDark, m)

	_, err = ParseMode("Dark")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidMode))
}

func TestDesignStoreDefaults(t *testing.T) {
	s := NewDesignStore(context.Background(), kv.NewMemory(), DefaultDesign)
	assert.Equal(t, Design{Mode: ModeLight, PrimaryColor: "#000000"}, s.Snapshot())
}

func TestDesignStoreSwitchMode(t *testing.T) {
	ctx := context.Background()
	s := NewDesignStore(ctx, nil, DefaultDesign)

	require.NoError(t, s.SwitchMode(ctx))
	assert.Equal(t, ModeDark, s.Snapshot().Mode)
	require.NoError(t, s.SwitchMode(ctx))
	assert.Equal(t, ModeLight, s.Snapshot().Mode)

	require.NoError(t, s.SetMode(ctx, ModeDark))
	assert.Equal(t, ModeDark, s.Snapshot().Mode)
	assert.Error(t, s.SetMode(ctx, Mode("sepia")))
}

func TestDesignStoreSetPrimaryColor(t *testing.T) {
	ctx := context.Background()
	s := NewDesignStore(ctx, nil, DefaultDesign)

	var got []string
	s.Subscribe(func(d Design) { got = append(got, d.PrimaryColor) })

	require.NoError(t, s.SetPrimaryColor(ctx, "1877f2"))
	assert.Equal(t, "#1877F2", s.Snapshot().PrimaryColor)

	err := s.SetPrimaryColor(ctx, "#12")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidColor))
	assert.Equal(t, "#1877F2", s.Snapshot().PrimaryColor)
	assert.Equal(t, []string{"#1877F2"}, got)

	p := s.Snapshot().Palette()
	assert.Equal(t, "0.450 0.200 214.0", p.Get(colors.RolePrimary).String())
}

func TestDesignStorePersists(t *testing.T) {
	ctx := context.Background()
	blobs := kv.NewMemory()

	first := NewDesignStore(ctx, blobs, DefaultDesign)
	require.NoError(t, first.SetPrimaryColor(ctx, "#E11D48"))
	require.NoError(t, first.SwitchMode(ctx))

	second := NewDesignStore(ctx, blobs, DefaultDesign)
	assert.Equal(t, Design{Mode: ModeDark, PrimaryColor: "#E11D48"}, second.Snapshot())

	raw, err := blobs.Get(ctx, DesignKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"dark","primaryColor":"#E11D48"}`, string(raw))
}

func TestDesignStoreRejectsInvalidPersistedValues(t *testing.T) {
	ctx := context.Background()
	blobs := kv.NewMemory()
	require.NoError(t, blobs.Put(ctx, DesignKey, []byte(`{"theme":"sepia","primaryColor":"#E11D48"}`)))
	assert.Equal(t, DefaultDesign, NewDesignStore(ctx, blobs, DefaultDesign).Snapshot())

	require.NoError(t, blobs.Put(ctx, DesignKey, []byte(`{"theme":"dark","primaryColor":"red"}`)))
	assert.Equal(t, DefaultDesign, NewDesignStore(ctx, blobs, DefaultDesign).Snapshot())
}
