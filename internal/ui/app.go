package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"localsketch/internal/export"
	"localsketch/internal/sketch"
)

const (
	appID        = "io.localsketch.app"
	windowWidth  = 1024
	windowHeight = 768
)

// Config carries the options the app window is built with.
type Config struct {
	Title     string
	ShareLink string
	Log       zerolog.Logger
}

// App owns the Fyne application, the main window and the board widget.
type App struct {
	fyneApp fyne.App
	win     fyne.Window
	board   *BoardWidget
	status  *widget.Label
	log     zerolog.Logger

	shareLink string
	shareWin  fyne.Window
}

// New builds the main window around the given canvas.
func New(c *sketch.Canvas, cfg Config) *App {
	a := &App{
		fyneApp:   app.NewWithID(appID),
		status:    widget.NewLabel("Ready"),
		log:       cfg.Log.With().Str("component", "ui").Logger(),
		shareLink: cfg.ShareLink,
	}
	a.win = a.fyneApp.NewWindow(cfg.Title)
	a.win.Resize(fyne.NewSize(windowWidth, windowHeight))

	a.board = NewBoardWidget(c)

	content := container.NewBorder(a.newToolbar(), a.status, nil, nil, a.board)
	a.win.SetContent(content)

	// Esc closes the board, C clears it.
	a.win.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyEscape:
			a.win.Close()
		case fyne.KeyC:
			a.board.ClearAll()
		}
	})

	return a
}

// Board exposes the drawing widget so callers can hook its callbacks.
func (a *App) Board() *BoardWidget {
	return a.board
}

// Run shows the window and blocks until it closes.
func (a *App) Run() {
	a.win.ShowAndRun()
}

// SetStatus updates the status bar; safe to call from any goroutine.
func (a *App) SetStatus(text string) {
	fyne.Do(func() {
		a.status.SetText(text)
	})
}

// MergeStroke folds a remote stroke into the board.
func (a *App) MergeStroke(s sketch.Stroke) {
	if a.board.Canvas.Add(s) {
		fyne.Do(a.board.Refresh)
	}
}

// ClearOwner removes a remote user's strokes ("all" clears everything).
func (a *App) ClearOwner(owner string) {
	a.board.Canvas.ClearOwner(owner)
	fyne.Do(a.board.Refresh)
}

// ReplaceBoard swaps in a full board, used for the initial sync.
func (a *App) ReplaceBoard(strokes []sketch.Stroke) {
	a.board.Canvas.Replace(strokes)
	fyne.Do(a.board.Refresh)
}

func (a *App) saveBoard() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		strokes := a.board.Canvas.Snapshot()
		if err := sketch.Save(writer, strokes); err != nil {
			a.log.Error().Err(err).Msg("save failed")
			a.SetStatus("Error saving board")
			return
		}
		a.SetStatus(fmt.Sprintf("Saved %d strokes", len(strokes)))
	}, a.win)
}

func (a *App) openBoard() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		strokes, err := sketch.Load(reader)
		if err != nil {
			a.log.Error().Err(err).Msg("load failed")
			a.SetStatus("Error loading board - invalid format")
			return
		}
		a.board.Canvas.Replace(strokes)
		a.board.Refresh()
		a.SetStatus(fmt.Sprintf("Loaded %d strokes", len(strokes)))
	}, a.win)
}

func (a *App) exportPDF() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if err := export.PDF(path, a.board.Canvas.Snapshot()); err != nil {
			a.log.Error().Err(err).Msg("pdf export failed")
			a.SetStatus("Error exporting PDF")
			return
		}
		a.SetStatus("Exported " + path)
	}, a.win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	d.SetFileName("board.pdf")
	d.Show()
}

func (a *App) exportPNG() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		view := a.board.Canvas.Viewport()
		if err := export.PNG(writer, a.board.Canvas.Snapshot(), view.W, view.H); err != nil {
			a.log.Error().Err(err).Msg("png export failed")
			a.SetStatus("Error exporting PNG")
			return
		}
		a.SetStatus("Exported " + writer.URI().Name())
	}, a.win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
	d.SetFileName("board.png")
	d.Show()
}
