package mode

import "fmt"

type Mode uint8

const (
	SingleSlit Mode = iota
	DoubleSlit
)

func UnmarshalText(text string) (Mode, error) {
	switch text {
	case "single", "s":
		return SingleSlit, nil
	case "double", "d":
		return DoubleSlit, nil
	default:
		return 0, fmt.Errorf("invalid mode: %q", text)
	}
}

func (m Mode) String() string {
	if m == DoubleSlit {
		return "double"
	}
	return "single"
}
