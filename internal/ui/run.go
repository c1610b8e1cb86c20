package ui

import (
	"fmt"
	"image/color"

	gioapp "gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"

	"github.com/ndalink/ndasign/internal/app"
	"github.com/ndalink/ndasign/internal/ui/icons"
	"github.com/ndalink/ndasign/internal/ui/screens"
	"github.com/ndalink/ndasign/internal/ui/widgets"
)

func Run(w *gioapp.Window, a *app.App) error {
	fmt.Printf("DEBUG: NDASign Run loop started\n")
	a.Explorer = explorer.NewExplorer(w)
	a.Invalidate = w.Invalidate
	th := NewTheme()
	var ops op.Ops

	// Initialize screens
	openLinkScreen := screens.NewOpenLinkScreen(a, th)
	portalScreen := screens.NewPortalScreen(a, th)
	auditScreen := screens.NewAuditScreen(a, th)
	aboutScreen := screens.NewAboutScreen(a, th)

	// Navigation state
	var (
		tabSign  widget.Clickable
		tabAudit widget.Clickable
		tabAbout widget.Clickable
	)

	lastScreen := a.CurrentScreen

	for {
		e := w.Event()
		a.Explorer.ListenEvents(e)
		switch e := e.(type) {
		case gioapp.DestroyEvent:
			if a.Controller != nil {
				a.Controller.Close()
			}
			return e.Err
		case gioapp.FrameEvent:
			gtx := gioapp.NewContext(&ops, e)

			// Handle Navigation
			if tabSign.Clicked(gtx) {
				if a.Controller != nil {
					a.CurrentScreen = app.ScreenPortal
				} else {
					a.CurrentScreen = app.ScreenOpenLink
				}
			}
			if tabAudit.Clicked(gtx) {
				a.CurrentScreen = app.ScreenAudit
			}
			if tabAbout.Clicked(gtx) {
				a.CurrentScreen = app.ScreenAbout
			}

			// Screen transition logic
			if a.CurrentScreen != lastScreen {
				switch a.CurrentScreen {
				case app.ScreenPortal:
					portalScreen.Reset()
				case app.ScreenAudit:
					auditScreen.RefreshEntries()
				}
				lastScreen = a.CurrentScreen
			}

			// Determine current screen
			var current layout.Widget
			switch a.CurrentScreen {
			case app.ScreenOpenLink:
				current = openLinkScreen.Layout
			case app.ScreenPortal:
				current = portalScreen.Layout
			case app.ScreenAudit:
				current = auditScreen.Layout
			case app.ScreenAbout:
				current = aboutScreen.Layout
			default:
				current = openLinkScreen.Layout
			}

			signActive := a.CurrentScreen == app.ScreenOpenLink || a.CurrentScreen == app.ScreenPortal

			// Main Background & App Border
			layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return widgets.Border(gtx, widgets.ColorBorder, func(gtx layout.Context) layout.Dimensions {
					return widgets.Card(gtx, th.Palette.Bg, func(gtx layout.Context) layout.Dimensions {
						return layout.Flex{
							Axis: layout.Vertical,
						}.Layout(gtx,
							// Navigation Bar
							layout.Rigid(func(gtx layout.Context) layout.Dimensions {
								return layout.Stack{}.Layout(gtx,
									layout.Expanded(func(gtx layout.Context) layout.Dimensions {
										widgets.Card(gtx, widgets.ColorSurface, func(gtx layout.Context) layout.Dimensions { return layout.Dimensions{} })
										return layout.Dimensions{Size: gtx.Constraints.Min}
									}),
									layout.Stacked(func(gtx layout.Context) layout.Dimensions {
										return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
											return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
												layout.Rigid(func(gtx layout.Context) layout.Dimensions {
													return widgets.IconLabel(gtx, th, icons.IconNDASign, "NDASign", th.Palette.ContrastBg, unit.Sp(20))
												}),
												layout.Rigid(layout.Spacer{Width: unit.Dp(32)}.Layout),
												layout.Rigid(navTab(th, &tabSign, icons.IconDocument, "Sign NDA", signActive)),
												layout.Rigid(layout.Spacer{Width: unit.Dp(10)}.Layout),
												layout.Rigid(navTab(th, &tabAudit, icons.IconAudit, "Audit Log", a.CurrentScreen == app.ScreenAudit)),
												layout.Rigid(layout.Spacer{Width: unit.Dp(10)}.Layout),
												layout.Rigid(navTab(th, &tabAbout, icons.IconAbout, "About", a.CurrentScreen == app.ScreenAbout)),
											)
										})
									}),
								)
							}),
							// Separator
							layout.Rigid(func(gtx layout.Context) layout.Dimensions {
								return widgets.VerticalDivider(gtx, color.NRGBA{R: 0xED, G: 0xF1, B: 0xF5, A: 0xFF})
							}),
							// Screen Content
							layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
								return layout.UniformInset(unit.Dp(24)).Layout(gtx, current)
							}),
							// Footer
							layout.Rigid(func(gtx layout.Context) layout.Dimensions {
								return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
									l := material.Caption(th, "NDASign "+app.Version+" · secure one-time signing links")
									l.Color = widgets.ColorMuted
									return l.Layout(gtx)
								})
							}),
						)
					})
				})
			})

			e.Frame(gtx.Ops)
		}
	}
}

func navTab(th *material.Theme, click *widget.Clickable, icon *widget.Icon, label string, active bool) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		bg := color.NRGBA{A: 0}
		fg := th.Palette.Fg
		if active {
			bg = th.Palette.ContrastBg
			fg = th.Palette.ContrastFg
		}
		return material.Clickable(gtx, click, func(gtx layout.Context) layout.Dimensions {
			return widgets.CustomCard(gtx, bg, unit.Dp(8), func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min.X = gtx.Dp(130)
				return widgets.IconLabel(gtx, th, icon, label, fg, unit.Sp(14))
			})
		})
	}
}
