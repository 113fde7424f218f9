package config

type AppConfig struct {
	CurrencySymbol      string `yaml:"currency-symbol" validate:"required,max=3"`
	UseCalendarWindows  bool   `yaml:"calendar-windows"`
	DescriptionMaxWidth int    `yaml:"description-width" validate:"min=4,max=200"`
}

func (s *AppConfig) Currency() string {
	return s.CurrencySymbol
}

func (s *AppConfig) CalendarWindows() bool {
	return s.UseCalendarWindows
}

func (s *AppConfig) DescriptionWidth() int {
	return s.DescriptionMaxWidth
}
