package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFile = "data/config.yaml"
	FileEnvKey  = "EXPENSES_CONFIG"
)

type config struct {
	App     AppConfig     `yaml:"app"`
	Metrics MetricsConfig `yaml:"metrics"`
}

func defaults() config {
	return config{
		App: AppConfig{
			CurrencySymbol:      "$",
			DescriptionMaxWidth: 30,
		},
	}
}

type Service struct {
	config config
}

// New loads the file named by EXPENSES_CONFIG, falling back to data/config.yaml.
func New() (*Service, error) {
	path := os.Getenv(FileEnvKey)
	if path == "" {
		path = DefaultFile
	}
	return NewFromFile(path)
}

// NewFromFile reads a yaml config on top of the defaults. A missing file is not an error.
func NewFromFile(path string) (*Service, error) {
	rawYAML, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewFromBytes(nil)
		}
		return nil, errors.Wrap(err, "reading config file")
	}
	return NewFromBytes(rawYAML)
}

func NewFromBytes(rawYAML []byte) (*Service, error) {
	s := &Service{config: defaults()}

	if len(rawYAML) > 0 {
		if err := yaml.Unmarshal(rawYAML, &s.config); err != nil {
			return nil, errors.Wrap(err, "parsing yaml")
		}
	}

	if err := validator.New().Struct(s.config); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}

	return s, nil
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Metrics() *MetricsConfig {
	return &s.config.Metrics
}
