package format

import "fmt"

type Format int8

const (
	HTML Format = iota
	Png
	Csv
	Xlsx
	Gif
)

func UnmarshalText(text string) (Format, error) {
	switch text {
	case "html":
		return HTML, nil
	case "png":
		return Png, nil
	case "csv":
		return Csv, nil
	case "xlsx":
		return Xlsx, nil
	case "gif":
		return Gif, nil
	default:
		return 0, fmt.Errorf("invalid format: %q", text)
	}
}

func (f Format) String() string {
	return f.Ext()
}

func (f Format) Ext() string {
	switch f {
	case Png:
		return "png"
	case Csv:
		return "csv"
	case Xlsx:
		return "xlsx"
	case Gif:
		return "gif"
	default:
		return "html"
	}
}
