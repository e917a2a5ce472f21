package settings_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/freshhuk/numbersort/pkg/settings"
	"github.com/stretchr/testify/require"
)

func testFile(t *testing.T, data string) string {
	dir, err := ioutil.TempDir("", "settings")
	require.NoError(t, err)

	t.Cleanup(func() { os.RemoveAll(dir) })

	file := filepath.Join(dir, "numbersort.yml")

	require.NoError(t, ioutil.WriteFile(file, []byte(data), 0600))

	return file
}

func TestLoadMissing(t *testing.T) {
	s, err := settings.Load("/nonexistent/numbersort.yml")
	require.NoError(t, err)
	require.Equal(t, settings.DefaultDelay, s.Delay.Duration())
	require.Equal(t, settings.DefaultPort, s.Port)
}

func TestLoad(t *testing.T) {
	s, err := settings.Load(testFile(t, "delay: 250ms\nport: 4000\n"))
	require.NoError(t, err)
	require.Equal(t, 250*time.Millisecond, s.Delay.Duration())
	require.Equal(t, 4000, s.Port)
}

func TestLoadPartial(t *testing.T) {
	s, err := settings.Load(testFile(t, "port: 5000\n"))
	require.NoError(t, err)
	require.Equal(t, settings.DefaultDelay, s.Delay.Duration())
	require.Equal(t, 5000, s.Port)
}

func TestLoadUnknownKey(t *testing.T) {
	_, err := settings.Load(testFile(t, "delya: 250ms\n"))
	require.Error(t, err)
}

func TestLoadInvalidDelay(t *testing.T) {
	_, err := settings.Load(testFile(t, "delay: fast\n"))
	require.Error(t, err)

	_, err = settings.Load(testFile(t, "delay: -5ms\n"))
	require.EqualError(t, err, "negative delay: -5ms")
}

func TestLoadInvalidPort(t *testing.T) {
	_, err := settings.Load(testFile(t, "port: 0\n"))
	require.EqualError(t, err, "invalid port: 0")

	_, err = settings.Load(testFile(t, "port: 70000\n"))
	require.EqualError(t, err, "invalid port: 70000")
}
