// props.go - Input field options: variants, sizes and input types
package inputfield

// Variant selects the frame drawn around the input.
type Variant string

const (
	VariantOutlined Variant = "outlined" // rounded border
	VariantFilled   Variant = "filled"   // surface background, no border
	VariantGhost    Variant = "ghost"    // bare text
)

// Size selects the width and horizontal padding of the input.
type Size string

const (
	SizeSmall  Size = "sm"
	SizeMedium Size = "md"
	SizeLarge  Size = "lg"
)

func (s Size) width() int {
	switch s {
	case SizeSmall:
		return 16
	case SizeLarge:
		return 40
	default:
		return 28
	}
}

func (s Size) padding() int {
	switch s {
	case SizeSmall:
		return 0
	case SizeLarge:
		return 2
	default:
		return 1
	}
}

// Type is the kind of text held by the input.
type Type string

const (
	TypeText     Type = "text"
	TypePassword Type = "password"
)

// Props configures an input field. Zero values pick the defaults:
// outlined, medium, text.
type Props struct {
	// Value is the initial text.
	Value string

	Label        string
	Placeholder  string
	HelperText   string // hidden while ErrorMessage is set
	ErrorMessage string

	Disabled bool
	Invalid  bool

	Variant Variant
	Size    Size
	Type    Type

	ShowClearButton    bool
	ShowPasswordToggle bool

	// OnChange receives the new value after every edit, including
	// Clear.
	OnChange func(value string)
}

// withDefaults fills the unset enum fields.
func (p Props) withDefaults() Props {
	if p.Variant == "" {
		p.Variant = VariantOutlined
	}
	if p.Size == "" {
		p.Size = SizeMedium
	}
	if p.Type == "" {
		p.Type = TypeText
	}
	return p
}
