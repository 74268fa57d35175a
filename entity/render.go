package entity

// RenderKind selects how a column formats its values.
type RenderKind string

const (
	RenderText  RenderKind = "text"
	RenderTime  RenderKind = "time"
	RenderFixed RenderKind = "fixed"
	RenderCheck RenderKind = "check"
	RenderLabel RenderKind = "label"
)

const defaultTimeFormat = "2006-01-02 15:04"

// Render is a per-column formatting strategy.
// The zero value renders text.
type Render struct {
	Kind   RenderKind        `yaml:"kind,omitempty"`
	Format string            `yaml:"format,omitempty"`
	Places int32             `yaml:"places,omitempty"`
	Labels map[string]string `yaml:"labels,omitempty"`
}

// Apply formats a value, falling back to its string form when the value
// does not suit the kind.
func (rdr Render) Apply(val Value) string {

	switch rdr.Kind {
	case RenderTime:
		tm, err := val.Time()
		if err != nil {
			return val.String()
		}
		format := rdr.Format
		if format == "" {
			format = defaultTimeFormat
		}
		return tm.Format(format)

	case RenderFixed:
		dec, err := val.Decimal()
		if err != nil {
			return val.String()
		}
		return dec.StringFixed(rdr.Places)

	case RenderCheck:
		ok, err := val.Bool()
		if err != nil {
			return val.String()
		}
		if ok {
			return "✓"
		}
		return ""

	case RenderLabel:
		label, ok := rdr.Labels[val.String()]
		if ok {
			return label
		}
		return val.String()
	}

	return val.String()
}
