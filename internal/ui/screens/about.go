package screens

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/ndalink/ndasign/internal/app"
	"github.com/ndalink/ndasign/internal/ui/icons"
	"github.com/ndalink/ndasign/internal/ui/widgets"
	"github.com/ndalink/ndasign/internal/update"
)

const sourceCodeURL = "https://github.com/ndalink/ndasign"

type AboutScreen struct {
	App   *app.App
	Theme *material.Theme

	OpenReleases widget.Clickable
	OpenSource   widget.Clickable
	OpenUpdate   widget.Clickable
}

func NewAboutScreen(a *app.App, th *material.Theme) *AboutScreen {
	return &AboutScreen{
		App:   a,
		Theme: th,
	}
}

func (s *AboutScreen) Layout(gtx layout.Context) layout.Dimensions {
	if s.OpenReleases.Clicked(gtx) {
		widgets.OpenURL(update.LatestReleasePageURL)
	}
	if s.OpenSource.Clicked(gtx) {
		widgets.OpenURL(sourceCodeURL)
	}
	if s.OpenUpdate.Clicked(gtx) {
		if url := s.App.UpdateURL(); url != "" {
			widgets.OpenURL(url)
		}
	}

	return widgets.CenterInAvailable(gtx, func(gtx layout.Context) layout.Dimensions {
		return widgets.ConstrainMaxWidth(gtx, unit.Dp(920), func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return widgets.IconLabel(gtx, s.Theme, icons.IconAbout, "About NDASign", s.Theme.Palette.ContrastBg, unit.Sp(24))
				}),
				layout.Rigid(layout.Spacer{Height: unit.Dp(14)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					if s.App.UpdateURL() == "" {
						return layout.Dimensions{}
					}
					return layout.Inset{Bottom: unit.Dp(12)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
							layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
								gtx.Constraints.Min.X = gtx.Constraints.Max.X
								return widgets.Banner(gtx, s.Theme, widgets.BannerWarning,
									"A newer version of NDASign is available.")
							}),
							layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
							layout.Rigid(func(gtx layout.Context) layout.Dimensions {
								btn := widgets.PrimaryButton(s.Theme, &s.OpenUpdate, "Get Update")
								return btn.Layout(gtx)
							}),
						)
					})
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return widgets.Section(gtx, widgets.ColorSurface, func(gtx layout.Context) layout.Dimensions {
						return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
							layout.Rigid(material.Body1(s.Theme, "NDASign is a desktop client for signing non-disclosure agreements sent to you as one-time links.").Layout),
							layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),
							layout.Rigid(material.Body2(s.Theme, "Version "+app.Version).Layout),
							layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
							layout.Rigid(func(gtx layout.Context) layout.Dimensions {
								return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
									layout.Rigid(func(gtx layout.Context) layout.Dimensions {
										btn := widgets.SecondaryButton(s.Theme, &s.OpenReleases, "Releases")
										return btn.Layout(gtx)
									}),
									layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
									layout.Rigid(func(gtx layout.Context) layout.Dimensions {
										btn := widgets.SecondaryButton(s.Theme, &s.OpenSource, "Source Code")
										return btn.Layout(gtx)
									}),
								)
							}),
						)
					})
				}),
				layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return widgets.Section(gtx, widgets.ColorSurface, func(gtx layout.Context) layout.Dimensions {
						return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
							layout.Rigid(material.Body1(s.Theme, "How signing links work").Layout),
							layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
							layout.Rigid(material.Body2(s.Theme, "Each link is unique to one signer and one NDA, and is deactivated permanently once the NDA is signed or declined.").Layout),
							layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
							layout.Rigid(material.Body2(s.Theme, "A local history of your signing activity is kept on this machine. Signing tokens are never stored in full.").Layout),
						)
					})
				}),
			)
		})
	})
}
