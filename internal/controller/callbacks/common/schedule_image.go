package common

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/Freeeeeet/tutorhub_bot/internal/model"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Weekly schedule preview: seven day columns, selected windows drawn as
// rounded blocks on an hour grid. Sent as a PNG with the review screen.

const (
	schedImageWidth  = 980
	schedImageHeight = 620
	schedHeader      = 70
	schedLeftLabels  = 56
	schedDayPadding  = 6
	schedMinHour     = 7
	schedMaxHour     = 22
	schedRadius      = 6.0
)

var (
	schedBgColor       = color.RGBA{245, 246, 248, 255}
	schedTextColor     = color.RGBA{80, 85, 90, 255}
	schedHourLineColor = color.NRGBA{150, 150, 150, 90}
	schedEvenDayColor  = color.NRGBA{240, 240, 240, 255}
	schedOddDayColor   = color.NRGBA{228, 228, 228, 255}
	schedBlockColor    = color.RGBA{133, 193, 85, 230}
	schedBlockText     = color.RGBA{20, 24, 28, 255}
)

// RenderScheduleImage draws the weekly schedule of a hire form.
func RenderScheduleImage(title string, week *model.WeekSchedule) ([]byte, error) {
	dc := gg.NewContext(schedImageWidth, schedImageHeight)
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(schedBgColor)
	dc.Clear()

	dc.SetColor(schedTextColor)
	dc.DrawStringAnchored(title, schedImageWidth/2, schedHeader/2, 0.5, 0.5)

	gridTop := float64(schedHeader)
	gridHeight := float64(schedImageHeight) - gridTop - 20
	dayWidth := (float64(schedImageWidth) - schedLeftLabels) / model.DaysInWeek
	hourHeight := gridHeight / float64(schedMaxHour-schedMinHour)

	// Alternating day columns with headers.
	for d := model.Monday; d < model.DaysInWeek; d++ {
		x := schedLeftLabels + float64(d)*dayWidth
		if d%2 == 0 {
			dc.SetColor(schedEvenDayColor)
		} else {
			dc.SetColor(schedOddDayColor)
		}
		dc.DrawRectangle(x, gridTop, dayWidth, gridHeight)
		dc.Fill()

		dc.SetColor(schedTextColor)
		dc.DrawStringAnchored(d.ShortName(), x+dayWidth/2, gridTop-14, 0.5, 0.5)
	}

	// Hour lines and labels.
	for h := schedMinHour; h <= schedMaxHour; h++ {
		y := gridTop + float64(h-schedMinHour)*hourHeight
		dc.SetColor(schedHourLineColor)
		dc.DrawLine(schedLeftLabels, y, schedImageWidth, y)
		dc.Stroke()

		dc.SetColor(schedTextColor)
		dc.DrawStringAnchored(fmt.Sprintf("%02d:00", h), schedLeftLabels/2, y, 0.5, 0.5)
	}

	// Selected windows.
	for d := model.Monday; d < model.DaysInWeek; d++ {
		day := week[d]
		if !day.Selected || day.Start == nil || day.End == nil {
			continue
		}

		startY := minuteY(day.Start.MinuteOfDay(), gridTop, hourHeight)
		endY := minuteY(day.End.MinuteOfDay(), gridTop, hourHeight)
		if endY <= startY {
			continue
		}

		x := schedLeftLabels + float64(d)*dayWidth + schedDayPadding
		w := dayWidth - 2*schedDayPadding

		dc.SetColor(schedBlockColor)
		dc.DrawRoundedRectangle(x, startY, w, endY-startY, schedRadius)
		dc.Fill()

		dc.SetColor(schedBlockText)
		label := fmt.Sprintf("%s-%s", day.Start.Format24(), day.End.Format24())
		dc.DrawStringAnchored(label, x+w/2, (startY+endY)/2, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode schedule image: %w", err)
	}
	return buf.Bytes(), nil
}

// minuteY maps a minute of day onto the grid, clamped to visible hours.
func minuteY(minute int, gridTop, hourHeight float64) float64 {
	if minute < schedMinHour*60 {
		minute = schedMinHour * 60
	}
	if minute > schedMaxHour*60 {
		minute = schedMaxHour * 60
	}
	return gridTop + (float64(minute)/60.0-schedMinHour)*hourHeight
}
