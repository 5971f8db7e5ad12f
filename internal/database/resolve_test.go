package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	sqlitePath := filepath.Join(t.TempDir(), "ruva.db")

	tests := []struct {
		name       string
		settings   Settings
		wantKind   Kind
		wantHandle bool
		wantErr    error
	}{
		{
			name:     "no driver means absent",
			settings: Settings{URL: "sqlite://" + sqlitePath},
			wantKind: KindAbsent,
		},
		{
			name:     "unknown driver fails",
			settings: Settings{Driver: "mongodb", URL: "mongodb://localhost"},
			wantKind: KindFailed,
			wantErr:  ErrUnknownDriver,
		},
		{
			name:     "enabled without url is present but nil",
			settings: Settings{Driver: "sqlite"},
			wantKind: KindPresent,
		},
		{
			name:     "bad mysql dsn fails",
			settings: Settings{Driver: "mysql", URL: "definitely not a dsn"},
			wantKind: KindFailed,
		},
		{
			name:       "sqlite url yields a handle",
			settings:   Settings{Driver: "sqlite", URL: "sqlite://" + sqlitePath},
			wantKind:   KindPresent,
			wantHandle: true,
		},
		{
			name:       "mysql url yields a handle without dialing",
			settings:   Settings{Driver: "mysql", URL: "mysql://root@127.0.0.1:1/ruva"},
			wantKind:   KindPresent,
			wantHandle: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(tt.settings)
			assert.Equal(t, tt.wantKind, res.Kind)
			if tt.wantHandle {
				assert.NotNil(t, res.Handle)
				if c, ok := res.Handle.(interface{ Close() error }); ok {
					_ = c.Close()
				}
			} else {
				assert.Nil(t, res.Handle)
			}
			if tt.wantKind == KindFailed {
				assert.Error(t, res.Err)
				if tt.wantErr != nil {
					assert.True(t, errors.Is(res.Err, tt.wantErr))
				}
			} else {
				assert.NoError(t, res.Err)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "absent", KindAbsent.String())
	assert.Equal(t, "failed", KindFailed.String())
	assert.Equal(t, "present", KindPresent.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestModuleResolvesOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ruva.db")
	m := NewModule(Settings{Driver: "sqlite", URL: path})

	first := m.Resolve()
	require.Equal(t, KindPresent, first.Kind)
	second := m.Resolve()
	assert.Same(t, first.Handle.(*SQLHandle), second.Handle.(*SQLHandle))

	_, err := first.Handle.ListCollections(context.Background())
	require.NoError(t, err)

	require.NoError(t, m.Close())
	_, err = first.Handle.ListCollections(context.Background())
	assert.Error(t, err)
}

func TestModuleCloseWithoutResolve(t *testing.T) {
	m := NewModule(Settings{Driver: "sqlite", URL: filepath.Join(t.TempDir(), "x.db")})
	assert.NoError(t, m.Close())
	assert.Equal(t, KindAbsent, m.Resolve().Kind)
}
