package desktop

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/GoArmGo/Wallsplash/internal/domain"
	"github.com/GoArmGo/Wallsplash/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	name string
	args []string
}

func TestSetWallpaper_InvokesGSettingsPerKey(t *testing.T) {
	var calls []call
	run := func(ctx context.Context, name string, args ...string) ([]byte, error) {
		calls = append(calls, call{name: name, args: args})
		return nil, nil
	}
	g := NewGSettings("org.gnome.desktop.background", []string{"picture-uri", "picture-uri-dark"}, run, logger.Discard())

	err := g.SetWallpaper(context.Background(), "/home/joe/Pictures/backgrounds/AbCdEf1234")
	require.NoError(t, err)

	require.Len(t, calls, 2)
	assert.Equal(t, "gsettings", calls[0].name)
	assert.Equal(t, []string{"set", "org.gnome.desktop.background", "picture-uri", "file:///home/joe/Pictures/backgrounds/AbCdEf1234"}, calls[0].args)
	assert.Equal(t, "picture-uri-dark", calls[1].args[2])
}

func TestSetWallpaper_FailureIsDesktopIntegrationError(t *testing.T) {
	run := func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return []byte("No such schema “org.gnome.desktop.background”\n"), errors.New("exit status 1")
	}
	g := NewGSettings("org.gnome.desktop.background", []string{"picture-uri"}, run, logger.Discard())

	err := g.SetWallpaper(context.Background(), "/tmp/backgrounds/AbCdEf1234")

	var deskErr *domain.DesktopIntegrationError
	require.True(t, errors.As(err, &deskErr))
	assert.Equal(t, "file:///tmp/backgrounds/AbCdEf1234", deskErr.URI)
	assert.Contains(t, deskErr.Output, "No such schema")
}

func TestFileURI_EscapesSpaces(t *testing.T) {
	uri, err := FileURI("/home/joe/My Pictures/backgrounds/AbCdEf1234")
	require.NoError(t, err)
	assert.Equal(t, "file:///home/joe/My%20Pictures/backgrounds/AbCdEf1234", uri)
}

func TestPicturesDir_Override(t *testing.T) {
	assert.Equal(t, "/srv/pictures", PicturesDir("/srv/pictures"))
	assert.NotEmpty(t, PicturesDir(""))
}

func TestPrepareBackgroundsDir(t *testing.T) {
	pictures := t.TempDir()

	dir, err := PrepareBackgroundsDir(pictures)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(pictures, "backgrounds"), dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// повторный вызов не ошибка
	_, err = PrepareBackgroundsDir(pictures)
	assert.NoError(t, err)
}
