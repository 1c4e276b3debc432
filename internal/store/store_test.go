package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aminegames/gamekiosk/internal/domain"
)

func TestMemoryStorage(t *testing.T) {
	s := NewMemoryStorage()

	_, found, err := s.Load(KeySettings)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Save(KeySettings, []byte(`{"minItems":3}`)))
	data, found, err := s.Load(KeySettings)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"minItems":3}`, string(data))

	t.Run("load returns a copy", func(t *testing.T) {
		data[0] = 'X'
		fresh, _, err := s.Load(KeySettings)
		require.NoError(t, err)
		assert.JSONEq(t, `{"minItems":3}`, string(fresh))
	})

	require.NoError(t, s.Delete(KeySettings))
	_, found, err = s.Load(KeySettings)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Close())
}

func TestBoltStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kiosk.db")

	s, err := NewBoltStorage(path)
	require.NoError(t, err)

	require.NoError(t, s.Save(KeyGamesData, []byte(`{"games":[]}`)))
	require.NoError(t, s.Close())

	// documents survive reopen
	s, err = NewBoltStorage(path)
	require.NoError(t, err)
	defer s.Close()

	data, found, err := s.Load(KeyGamesData)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"games":[]}`, string(data))

	require.NoError(t, s.Delete(KeyGamesData))
	_, found, err = s.Load(KeyGamesData)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestJSONHelpers(t *testing.T) {
	s := NewMemoryStorage()

	in := domain.DefaultSettings()
	require.NoError(t, PutJSON(s, KeySettings, in))

	var out domain.Settings
	found, err := GetJSON(s, KeySettings, &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, in, out)

	t.Run("missing key", func(t *testing.T) {
		var v domain.Settings
		found, err := GetJSON(s, "missing", &v)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("malformed document", func(t *testing.T) {
		require.NoError(t, s.Save(KeySalesHistory, []byte(`{not json`)))
		var v []domain.Order
		_, err := GetJSON(s, KeySalesHistory, &v)
		assert.ErrorIs(t, err, domain.ErrMalformedPersistedData)
	})
}
