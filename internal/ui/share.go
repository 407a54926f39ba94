package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// openShareWindow shows the join link in its own window. The window is
// created on first use and raised on later clicks, never duplicated.
func (a *App) openShareWindow() {
	if a.shareWin != nil {
		a.shareWin.Show()
		a.shareWin.RequestFocus()
		return
	}

	w := a.fyneApp.NewWindow("Share board")
	w.Resize(fyne.NewSize(360, 140))

	link := a.shareLink
	if link == "" {
		link = "Not hosting - nothing to share"
	}
	label := widget.NewLabel(link)
	label.Alignment = fyne.TextAlignCenter

	copyBtn := widget.NewButton("Copy link", func() {
		a.win.Clipboard().SetContent(a.shareLink)
		a.SetStatus("Link copied")
	})
	if a.shareLink == "" {
		copyBtn.Disable()
	}

	w.SetContent(container.NewVBox(label, copyBtn))
	w.SetOnClosed(func() {
		// Fyne destroys closed windows, so the next click recreates it.
		a.shareWin = nil
	})

	a.shareWin = w
	w.Show()
}
