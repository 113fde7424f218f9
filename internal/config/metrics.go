package config

type MetricsConfig struct {
	ListenAddr string `yaml:"addr" validate:"omitempty,hostname_port"`
}

// Addr is empty when the metrics endpoint is disabled.
func (s *MetricsConfig) Addr() string {
	return s.ListenAddr
}

func (s *MetricsConfig) Enabled() bool {
	return s.ListenAddr != ""
}
