package screens

import (
	"io"
	"strings"

	"gioui.org/io/clipboard"
	"gioui.org/io/transfer"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/ndalink/ndasign/internal/app"
	"github.com/ndalink/ndasign/internal/ui/icons"
	"github.com/ndalink/ndasign/internal/ui/widgets"
)

type OpenLinkScreen struct {
	App   *app.App
	Theme *material.Theme

	LinkEditor  widget.Editor
	OpenButton  widget.Clickable
	PasteButton widget.Clickable
}

func NewOpenLinkScreen(a *app.App, th *material.Theme) *OpenLinkScreen {
	s := &OpenLinkScreen{
		App:   a,
		Theme: th,
	}
	s.LinkEditor.SingleLine = true
	return s
}

func (s *OpenLinkScreen) Layout(gtx layout.Context) layout.Dimensions {
	if s.OpenButton.Clicked(gtx) {
		if link := strings.TrimSpace(s.LinkEditor.Text()); link != "" {
			s.App.OpenLink(link)
		}
	}

	if s.PasteButton.Clicked(gtx) {
		gtx.Execute(clipboard.ReadCmd{Tag: s})
	}

	for {
		ev, ok := gtx.Event(transfer.TargetFilter{Target: s, Type: "application/text"})
		if !ok {
			break
		}
		switch ev := ev.(type) {
		case transfer.DataEvent:
			rc := ev.Open()
			data, err := io.ReadAll(rc)
			_ = rc.Close()
			if err != nil {
				s.App.LinkStatus = "Clipboard error: could not read clipboard text"
				break
			}
			txt := strings.TrimSpace(string(data))
			if txt == "" {
				s.App.LinkStatus = "Clipboard is empty"
				break
			}
			s.LinkEditor.SetText(txt)
			s.App.LinkStatus = "Signing link pasted from clipboard"
		case transfer.CancelEvent:
			s.App.LinkStatus = "Clipboard paste canceled"
		}
	}

	return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return widgets.CenterInAvailable(gtx, func(gtx layout.Context) layout.Dimensions {
			return widgets.ConstrainMaxWidth(gtx, unit.Dp(860), func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min.X = gtx.Constraints.Max.X
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return layout.Inset{Bottom: unit.Dp(12)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
							return widgets.IconLabel(gtx, s.Theme, icons.IconLink, "Open Signing Link", s.Theme.Palette.ContrastBg, unit.Sp(24))
						})
					}),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return widgets.Section(gtx, widgets.ColorSurface, func(gtx layout.Context) layout.Dimensions {
							return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
								layout.Rigid(material.Body1(s.Theme, "Paste the one-time signing link you received by email.").Layout),
								layout.Rigid(layout.Spacer{Height: unit.Dp(14)}.Layout),
								layout.Rigid(func(gtx layout.Context) layout.Dimensions {
									return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
										layout.Flexed(1, material.Editor(s.Theme, &s.LinkEditor, "https://...").Layout),
										layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
										layout.Rigid(func(gtx layout.Context) layout.Dimensions {
											btn := widgets.SecondaryButton(s.Theme, &s.PasteButton, "Paste")
											return btn.Layout(gtx)
										}),
									)
								}),
								layout.Rigid(layout.Spacer{Height: unit.Dp(14)}.Layout),
								layout.Rigid(func(gtx layout.Context) layout.Dimensions {
									btn := widgets.PrimaryButton(s.Theme, &s.OpenButton, "Open NDA")
									return btn.Layout(gtx)
								}),
							)
						})
					}),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						if s.App.LinkStatus == "" {
							return layout.Dimensions{}
						}
						return layout.Inset{Top: unit.Dp(12)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
							tone := widgets.BannerInfo
							if strings.HasPrefix(s.App.LinkStatus, "Invalid") || strings.HasPrefix(s.App.LinkStatus, "Clipboard error") {
								tone = widgets.BannerError
							}
							return widgets.Banner(gtx, s.Theme, tone, s.App.LinkStatus)
						})
					}),
					layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return widgets.Banner(gtx, s.Theme, widgets.BannerInfo,
							"Each signing link works exactly once. No account or login is needed.")
					}),
				)
			})
		})
	})
}
