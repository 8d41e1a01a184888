package calendar

import (
	"inkdesk/internal/domain"
	"inkdesk/pkg/validator"
)

type Palette struct {
	Name    string `json:"name"`
	Primary string `json:"primary"`
	Accent  string `json:"success500"`
}

var (
	Light = Palette{Name: "light", Primary: "#1F2937", Accent: "#22C55E"}
	Dark  = Palette{Name: "dark", Primary: "#E5E7EB", Accent: "#16A34A"}
)

// PaletteFor picks a palette by theme name. Anything but "dark" is light.
func PaletteFor(theme string) Palette {
	if theme == Dark.Name {
		return Dark
	}
	return Light
}

// MarkDates turns appointments into per-day dots. Dots keep input order and
// every appointment adds its own dot.
func MarkDates(appointments []domain.CalendarAppointment, p Palette) domain.MarkedDates {
	marks := make(domain.MarkedDates)
	for _, a := range appointments {
		day, ok := marks[a.Date]
		if !ok {
			day = domain.DayMarking{
				Dots:          []domain.Dot{},
				Selected:      true,
				SelectedColor: p.Primary,
			}
		}
		day.Dots = append(day.Dots, domain.Dot{
			Key:   validator.DotKey(a.Service.Name),
			Color: a.Service.Color,
		})
		marks[a.Date] = day
	}
	return marks
}

// Focus highlights date with the accent colour, keeping its dots.
func Focus(marks domain.MarkedDates, date string, p Palette) domain.MarkedDates {
	if marks == nil {
		marks = make(domain.MarkedDates)
	}
	day := marks[date]
	day.Selected = true
	day.SelectedColor = p.Accent
	marks[date] = day
	return marks
}
