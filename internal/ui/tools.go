package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"localsketch/internal/sketch"
)

// colorSwatch is a small tappable rectangle in the palette.
type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// newToolbar builds the toolbar row: pen/eraser, palette, width slider
// and the board-level actions supplied by the app.
func (a *App) newToolbar() fyne.CanvasObject {
	board := a.board

	// Remember the pen color while the eraser is active.
	lastColor := "black"

	tools := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			_, width := board.Canvas.Pen()
			if width > 10 {
				width = 2.5
			}
			board.Canvas.SetPen(lastColor, width)
		}),
		widget.NewToolbarAction(theme.ContentClearIcon(), func() {
			board.Canvas.SetPen("white", 20)
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DeleteIcon(), board.ClearAll),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), a.saveBoard),
		widget.NewToolbarAction(theme.FolderOpenIcon(), a.openBoard),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), a.exportPDF),
		widget.NewToolbarAction(theme.MediaPhotoIcon(), a.exportPNG),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.MailSendIcon(), a.openShareWindow),
	)

	onColorTapped := func(c color.NRGBA) {
		lastColor = sketch.ColorName(c)
		_, width := board.Canvas.Pen()
		board.Canvas.SetPen(lastColor, width)
	}
	palette := container.NewHBox(
		newColorSwatch(sketch.NamedColor("black"), onColorTapped),
		newColorSwatch(sketch.NamedColor("red"), onColorTapped),
		newColorSwatch(sketch.NamedColor("green"), onColorTapped),
		newColorSwatch(sketch.NamedColor("blue"), onColorTapped),
		newColorSwatch(sketch.NamedColor("yellow"), onColorTapped),
	)

	widthSlider := widget.NewSlider(1, 30)
	widthSlider.SetValue(2.5)
	widthSlider.OnChanged = func(v float64) {
		col, _ := board.Canvas.Pen()
		board.Canvas.SetPen(col, float32(v))
	}
	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(140, 35)), widthSlider)

	return container.NewHBox(
		tools,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		palette,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderBox,
		layout.NewSpacer(),
	)
}
