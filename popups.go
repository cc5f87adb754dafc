package main

import (
	"fmt"
	"gf-tr/models"
	"gf-tr/session"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const languagePopupPage = "languageSelectionPopup"

func modal(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}

// showLanguagePopup lists the catalog with codes; picking one sets the language of side
func showLanguagePopup(side session.Side) {
	st := store.State()
	current, title, set := st.SourceLang, "Translate from", store.SetSourceLang
	if side == session.SideTarget {
		current, title, set = st.TargetLang, "Translate to", store.SetTargetLang
	}
	prev := app.GetFocus()
	langList := tview.NewList().ShowSecondaryText(false).
		SetSelectedBackgroundColor(tcell.ColorGray)
	langList.SetTitle(title).SetBorder(true)
	for _, lang := range models.Catalog {
		langList.AddItem(fmt.Sprintf("%s (%s)", lang.Name, lang.Code), "", 0, nil)
	}
	if i := models.CatalogIndex(current); i >= 0 {
		langList.SetCurrentItem(i)
	}
	closePopup := func() {
		pages.RemovePage(languagePopupPage)
		if prev != nil {
			app.SetFocus(prev)
		}
	}
	langList.SetSelectedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		if index >= 0 && index < len(models.Catalog) {
			set(models.Catalog[index].Code)
		}
		closePopup()
	})
	langList.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			closePopup()
			return nil
		}
		return event
	})
	pages.AddPage(languagePopupPage, modal(langList, 50, 20), true, true)
	app.SetFocus(langList)
}
