package catalog

// Session is a scheduled tutoring slot within an area. Values are kept
// verbatim, including any surrounding spaces.
type Session struct {
	Area       string `yaml:"area" validate:"required"`
	Instructor string `yaml:"instructor" validate:"required"`
	Date       string `yaml:"date" validate:"required"`
	StartTime  string `yaml:"start_time" validate:"required"`
	EndTime    string `yaml:"end_time" validate:"required"`
}

// TimeRange renders the slot as "start - end".
func (s Session) TimeRange() string {
	return s.StartTime + " - " + s.EndTime
}
