package settings

import (
	"io/ioutil"
	"os"
	"time"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

const (
	DefaultDelay = 100 * time.Millisecond
	DefaultPort  = 3000
)

// Settings are the optional file-level defaults for the server. A missing
// file is not an error; it just means everything stays at its default.
type Settings struct {
	Delay Duration `yaml:"delay,omitempty"`
	Port  int      `yaml:"port,omitempty"`
}

type Duration time.Duration

func Load(file string) (*Settings, error) {
	s := &Settings{
		Delay: Duration(DefaultDelay),
		Port:  DefaultPort,
	}

	data, err := ioutil.ReadFile(file)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := yaml.UnmarshalStrict(data, s); err != nil {
		return nil, errors.WithStack(err)
	}

	if time.Duration(s.Delay) < 0 {
		return nil, errors.Errorf("negative delay: %s", time.Duration(s.Delay))
	}

	if s.Port < 1 || s.Port > 65535 {
		return nil, errors.Errorf("invalid port: %d", s.Port)
	}

	return s, nil
}

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v string

	if err := unmarshal(&v); err != nil {
		return err
	}

	p, err := time.ParseDuration(v)
	if err != nil {
		return errors.WithStack(err)
	}

	*d = Duration(p)

	return nil
}
