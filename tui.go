package main

import (
	"gf-tr/models"
	"gf-tr/session"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var (
	app           *tview.Application
	pages         *tview.Pages
	sourceArea    *tview.TextArea
	targetArea    *tview.TextArea
	sourceDrop    *tview.DropDown
	targetDrop    *tview.DropDown
	position      *tview.TextView
	helpView      *tview.TextView
	flex          *tview.Flex
	focusSwitcher = map[tview.Primitive]tview.Primitive{}
	helpText      = `
[yellow]Esc[white]: translate
[yellow]F2[white]: speak source text
[yellow]F3[white]: speak translation
[yellow]F4[white]: start/stop dictation
[yellow]F5[white]: swap texts and languages
[yellow]F6[white]: stop speaking
[yellow]F7[white]: copy translation to clipboard
[yellow]F8[white]: pick source language
[yellow]F9[white]: pick target language
[yellow]PgUp/Down[white]: switch focus
[yellow]Ctrl+c[white]: quit

%s

Press Enter to go back
`
)

func newLanguageDrop(label, code string, set func(code string)) *tview.DropDown {
	drop := tview.NewDropDown().SetLabel(label)
	drop.SetOptions(models.CatalogNames(), func(text string, index int) {
		if index < 0 || index >= len(models.Catalog) {
			return
		}
		set(models.Catalog[index].Code)
	})
	if i := models.CatalogIndex(code); i >= 0 {
		drop.SetCurrentOption(i)
	}
	return drop
}

// syncWidgets copies the store into the widgets; widgets already showing the
// right value are left alone so the cursor does not jump.
func syncWidgets(st session.State) {
	if sourceArea.GetText() != st.SourceText {
		sourceArea.SetText(st.SourceText, true)
	}
	if targetArea.GetText() != st.TargetText {
		targetArea.SetText(st.TargetText, true)
	}
	if i, _ := sourceDrop.GetCurrentOption(); i != models.CatalogIndex(st.SourceLang) {
		sourceDrop.SetCurrentOption(models.CatalogIndex(st.SourceLang))
	}
	if i, _ := targetDrop.GetCurrentOption(); i != models.CatalogIndex(st.TargetLang) {
		targetDrop.SetCurrentOption(models.CatalogIndex(st.TargetLang))
	}
	updateStatusLine()
}

// overlayOpen reports whether a popup, the help page or an open drop-down
// list should get keys before the global bindings.
func overlayOpen() bool {
	return pages.HasPage("helpView") || pages.HasPage(languagePopupPage) ||
		sourceDrop.IsOpen() || targetDrop.IsOpen()
}

func initTUI() {
	theme, ok := colorschemes[cfg.ColorScheme]
	if !ok {
		logger.Warn("unknown color scheme; using default", "name", cfg.ColorScheme)
		theme = colorschemes["default"]
	}
	tview.Styles = theme
	app = tview.NewApplication()
	pages = tview.NewPages()
	st := store.State()
	sourceArea = tview.NewTextArea().
		SetPlaceholder("Enter text")
	sourceArea.SetBorder(true).SetTitle("text")
	sourceArea.SetChangedFunc(func() {
		store.SetSourceText(sourceArea.GetText())
	})
	targetArea = tview.NewTextArea().
		SetPlaceholder("Translation")
	targetArea.SetBorder(true).SetTitle("translation")
	targetArea.SetChangedFunc(func() {
		store.SetTargetText(targetArea.GetText())
	})
	sourceDrop = newLanguageDrop("from: ", st.SourceLang, store.SetSourceLang)
	targetDrop = newLanguageDrop("to: ", st.TargetLang, store.SetTargetLang)
	swapMark := tview.NewTextView().SetText("<->").SetTextAlign(tview.AlignCenter)
	focusSwitcher[sourceArea] = targetArea
	focusSwitcher[targetArea] = sourceDrop
	focusSwitcher[sourceDrop] = targetDrop
	focusSwitcher[targetDrop] = sourceArea
	position = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	textRow := tview.NewFlex().
		AddItem(sourceArea, 0, 1, true).
		AddItem(targetArea, 0, 1, false)
	controlRow := tview.NewFlex().
		AddItem(sourceDrop, 0, 5, false).
		AddItem(swapMark, 5, 0, false).
		AddItem(targetDrop, 0, 5, false)
	flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(textRow, 0, 40, true).
		AddItem(controlRow, 1, 0, false).
		AddItem(position, 1, 0, false)
	helpView = tview.NewTextView().SetDynamicColors(true).SetDoneFunc(func(key tcell.Key) {
		pages.RemovePage("helpView")
	})
	helpView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEsc, tcell.KeyEnter:
			return event
		}
		return nil
	})
	// store updates may come from request and timer goroutines
	store.Subscribe(func(session.State) {
		app.QueueUpdateDraw(func() {
			syncWidgets(store.State())
		})
	})
	translation.OnError = func(err error) {
		setLastError("translation failed")
	}
	dictation.OnChange = func(listening bool) {
		app.QueueUpdateDraw(updateStatusLine)
	}
	syncWidgets(st)
	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if overlayOpen() {
			return event
		}
		switch event.Key() {
		case tcell.KeyEscape:
			setLastError("")
			translation.Go(ctx)
			return nil
		case tcell.KeyF2:
			speech.Speak(session.SideSource)
			return nil
		case tcell.KeyF3:
			speech.Speak(session.SideTarget)
			return nil
		case tcell.KeyF4:
			toggleDictation()
			return nil
		case tcell.KeyF5:
			if !store.Swap() {
				if err := notifyUser("swap", "translate the text first"); err != nil {
					logger.Debug("failed to notify user", "error", err)
				}
			}
			return nil
		case tcell.KeyF6:
			speech.Stop()
			return nil
		case tcell.KeyF7:
			copyTranslation()
			return nil
		case tcell.KeyF8:
			showLanguagePopup(session.SideSource)
			return nil
		case tcell.KeyF9:
			showLanguagePopup(session.SideTarget)
			return nil
		case tcell.KeyF12:
			helpView.SetText(makeHelpText())
			pages.AddPage("helpView", helpView, true, true)
			return nil
		case tcell.KeyPgUp, tcell.KeyPgDn:
			currentF := app.GetFocus()
			if next, ok := focusSwitcher[currentF]; ok {
				app.SetFocus(next)
			}
			return nil
		}
		return event
	})
}

func toggleDictation() {
	// recording start/stop may block on audio devices and on the final transcription
	go func() {
		if err := dictation.Toggle(); err != nil {
			logger.Error("failed to toggle dictation", "error", err)
			setLastError("dictation failed")
			if err := notifyUser("dictation", err.Error()); err != nil {
				logger.Debug("failed to notify user", "error", err)
			}
		}
	}()
}
