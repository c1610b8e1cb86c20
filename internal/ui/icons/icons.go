package icons

import (
	"log"

	"gioui.org/widget"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

var (
	IconNDASign  *widget.Icon
	IconLink     *widget.Icon
	IconDocument *widget.Icon
	IconAudit    *widget.Icon
	IconAbout    *widget.Icon
	IconDraw     *widget.Icon
	IconCheck    *widget.Icon
	IconError    *widget.Icon
	IconWarning  *widget.Icon
	IconDecline  *widget.Icon
	IconTimer    *widget.Icon
)

func init() {
	loadIcon := func(data []byte, name string) *widget.Icon {
		if len(data) == 0 {
			log.Printf("Icon data for %s is empty!", name)
			return nil
		}
		ic, err := widget.NewIcon(data)
		if err != nil {
			log.Printf("Failed to load %s: %v", name, err)
		}
		return ic
	}

	IconNDASign = loadIcon(icons.ActionVerifiedUser, "IconNDASign")
	IconLink = loadIcon(icons.ContentLink, "IconLink")
	IconDocument = loadIcon(icons.ActionDescription, "IconDocument")
	IconAudit = loadIcon(icons.ActionHistory, "IconAudit")
	IconAbout = loadIcon(icons.ActionInfo, "IconAbout")
	IconDraw = loadIcon(icons.ContentCreate, "IconDraw")
	IconCheck = loadIcon(icons.ActionCheckCircle, "IconCheck")
	IconError = loadIcon(icons.AlertError, "IconError")
	IconWarning = loadIcon(icons.AlertWarning, "IconWarning")
	IconDecline = loadIcon(icons.NavigationCancel, "IconDecline")
	IconTimer = loadIcon(icons.ActionSchedule, "IconTimer")
}
