package screens

import (
	"encoding/json"
	"log"
	"strconv"
	"strings"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/ndalink/ndasign/internal/app"
	"github.com/ndalink/ndasign/internal/model"
	"github.com/ndalink/ndasign/internal/portal"
	"github.com/ndalink/ndasign/internal/session"
	"github.com/ndalink/ndasign/internal/ui/icons"
	"github.com/ndalink/ndasign/internal/ui/widgets"
)

var deadTitles = map[string]string{
	portal.CodeAlreadySigned: "Already Signed",
	portal.CodeExpired:       "Link Expired",
	portal.CodeRevoked:       "Access Revoked",
	portal.CodeDeclined:      "NDA Declined",
	portal.CodeNetwork:       "Connection Problem",
}

var deadIcons = map[string]*widget.Icon{
	portal.CodeAlreadySigned: icons.IconCheck,
	portal.CodeExpired:       icons.IconTimer,
	portal.CodeRevoked:       icons.IconError,
	portal.CodeDeclined:      icons.IconDecline,
	portal.CodeNetwork:       icons.IconWarning,
}

// PortalScreen renders whatever phase the signing controller is in. Form
// state (typed name, consent, decline reason) lives here and survives
// failed attempts; the signature pad is owned by the controller so that
// re-entering the Sign phase always starts blank.
type PortalScreen struct {
	App   *app.App
	Theme *material.Theme

	MainList widget.List
	DocList  widget.List

	ProceedButton widget.Clickable
	DeclineButton widget.Clickable
	BackButton    widget.Clickable
	SignButton    widget.Clickable
	ClearButton   widget.Clickable
	SaveReceipt   widget.Clickable
	NewLinkButton widget.Clickable

	NameEditor widget.Editor
	Consent    widget.Bool
	PadWidget  widgets.SignaturePad

	DeclineOpen    bool
	ReasonEditor   widget.Editor
	DeclineConfirm widget.Clickable
	DeclineCancel  widget.Clickable

	docFor   *model.SigningSession
	docLines []string
}

func NewPortalScreen(a *app.App, th *material.Theme) *PortalScreen {
	s := &PortalScreen{
		App:   a,
		Theme: th,
	}
	s.MainList.Axis = layout.Vertical
	s.DocList.Axis = layout.Vertical
	s.NameEditor.SingleLine = true
	s.ReasonEditor.SingleLine = true
	return s
}

// Reset clears per-session form state. Called when a new link is opened so
// one signer's typed name or consent never leaks into the next session.
func (s *PortalScreen) Reset() {
	s.NameEditor.SetText("")
	s.Consent.Value = false
	s.DeclineOpen = false
	s.ReasonEditor.SetText("")
	s.PadWidget.Pad = nil
	s.docFor = nil
	s.docLines = nil
	s.DocList.Position = layout.Position{}
}

func (s *PortalScreen) Layout(gtx layout.Context) layout.Dimensions {
	ctrl := s.App.Controller
	if ctrl == nil {
		return widgets.EmptyState(gtx, s.Theme, "No signing session", "Open a signing link to get started.")
	}

	switch phase := ctrl.Phase().(type) {
	case session.Loading:
		return s.layoutLoading(gtx)
	case session.Dead:
		return s.layoutDead(gtx, phase)
	case session.Done:
		return s.layoutDone(gtx, phase)
	case session.Sign:
		return s.layoutSign(gtx, ctrl)
	case session.View:
		return s.layoutView(gtx, ctrl)
	}
	return layout.Dimensions{}
}

func (s *PortalScreen) layoutLoading(gtx layout.Context) layout.Dimensions {
	return widgets.CenterInAvailable(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				sz := gtx.Dp(36)
				gtx.Constraints.Min.X = sz
				gtx.Constraints.Max.X = sz
				return material.Loader(s.Theme).Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
			layout.Rigid(material.Body1(s.Theme, "Loading NDA...").Layout),
		)
	})
}

func (s *PortalScreen) layoutDead(gtx layout.Context, dead session.Dead) layout.Dimensions {
	title := deadTitles[dead.Code]
	if title == "" {
		title = "Page No Longer Available"
	}
	icon := deadIcons[dead.Code]
	if icon == nil {
		icon = icons.IconWarning
	}
	clr := widgets.ColorError
	if dead.Code == portal.CodeAlreadySigned {
		clr = widgets.ColorSuccess
	}
	msg := dead.Message
	if msg == "" {
		msg = "This signing link is no longer active."
	}

	if s.NewLinkButton.Clicked(gtx) {
		s.App.CurrentScreen = app.ScreenOpenLink
	}

	return widgets.CenterInAvailable(gtx, func(gtx layout.Context) layout.Dimensions {
		return widgets.ConstrainMaxWidth(gtx, unit.Dp(560), func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return widgets.IconLabel(gtx, s.Theme, icon, title, clr, unit.Sp(24))
				}),
				layout.Rigid(layout.Spacer{Height: unit.Dp(10)}.Layout),
				layout.Rigid(material.Body1(s.Theme, msg).Layout),
				layout.Rigid(layout.Spacer{Height: unit.Dp(24)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					gtx.Constraints.Min.X = gtx.Constraints.Max.X
					return widgets.Banner(gtx, s.Theme, widgets.BannerInfo,
						"For security, each signing link can only be used once. If you need a new link, please contact the sender.")
				}),
				layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					btn := widgets.SecondaryButton(s.Theme, &s.NewLinkButton, "Open Another Link")
					return btn.Layout(gtx)
				}),
			)
		})
	})
}

func (s *PortalScreen) layoutDone(gtx layout.Context, done session.Done) layout.Dimensions {
	result := done.Result

	if s.SaveReceipt.Clicked(gtx) {
		go s.saveReceipt(result)
	}
	if s.NewLinkButton.Clicked(gtx) {
		s.App.CurrentScreen = app.ScreenOpenLink
	}

	return widgets.CenterInAvailable(gtx, func(gtx layout.Context) layout.Dimensions {
		return widgets.ConstrainMaxWidth(gtx, unit.Dp(560), func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return widgets.IconLabel(gtx, s.Theme, icons.IconCheck, "Successfully Signed", widgets.ColorSuccess, unit.Sp(26))
				}),
				layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),
				layout.Rigid(material.Body2(s.Theme, "A confirmation email has been sent to your inbox.").Layout),
				layout.Rigid(layout.Spacer{Height: unit.Dp(24)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					gtx.Constraints.Min.X = gtx.Constraints.Max.X
					return widgets.Section(gtx, widgets.ColorSurface, func(gtx layout.Context) layout.Dimensions {
						return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
							layout.Rigid(material.Caption(s.Theme, "CONFIRMATION ID").Layout),
							layout.Rigid(func(gtx layout.Context) layout.Dimensions {
								l := material.H6(s.Theme, result.ConfirmationID)
								l.Color = s.Theme.Palette.ContrastBg
								l.Font.Weight = font.Bold
								return l.Layout(gtx)
							}),
							layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
							layout.Rigid(func(gtx layout.Context) layout.Dimensions {
								return widgets.VerticalDivider(gtx, widgets.ColorBorder)
							}),
							layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
							layout.Rigid(func(gtx layout.Context) layout.Dimensions {
								l := material.Body1(s.Theme, result.NDAName)
								l.Font.Weight = font.Bold
								return l.Layout(gtx)
							}),
							layout.Rigid(material.Body2(s.Theme, "Signed by "+result.SignerName).Layout),
							layout.Rigid(material.Caption(s.Theme, formatTimestamp(result.SignedAt)).Layout),
						)
					})
				}),
				layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					gtx.Constraints.Min.X = gtx.Constraints.Max.X
					return widgets.Banner(gtx, s.Theme, widgets.BannerSuccess,
						"This link is now permanently deactivated. Your signature is securely stored.")
				}),
				layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							btn := widgets.SecondaryButton(s.Theme, &s.SaveReceipt, "Save Receipt")
							return btn.Layout(gtx)
						}),
						layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							btn := widgets.SecondaryButton(s.Theme, &s.NewLinkButton, "Done")
							return btn.Layout(gtx)
						}),
					)
				}),
			)
		})
	})
}

func (s *PortalScreen) saveReceipt(result model.SignResult) {
	f, err := s.App.Explorer.CreateFile("nda-receipt.json")
	if err != nil {
		log.Printf("DEBUG: save receipt canceled: %v", err)
		return
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Printf("DEBUG: save receipt failed: %v", err)
	}
}

func (s *PortalScreen) layoutView(gtx layout.Context, ctrl *session.Controller) layout.Dimensions {
	sess := ctrl.Session()

	if s.DeclineButton.Clicked(gtx) && !ctrl.Submitting() {
		s.DeclineOpen = true
	}
	if s.DeclineCancel.Clicked(gtx) {
		// Cancelling the prompt aborts without any network call.
		s.DeclineOpen = false
	}
	if s.DeclineConfirm.Clicked(gtx) {
		s.DeclineOpen = false
		ctrl.Decline(strings.TrimSpace(s.ReasonEditor.Text()))
	}
	if s.ProceedButton.Clicked(gtx) {
		ctrl.Proceed()
		if _, ok := ctrl.Phase().(session.Sign); ok {
			s.PadWidget.Pad = ctrl.Pad()
		}
	}

	return material.List(s.Theme, &s.MainList).Layout(gtx, 1, func(gtx layout.Context, _ int) layout.Dimensions {
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return s.layoutViewHeader(gtx, sess)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if sess.Message == "" {
					return layout.Dimensions{}
				}
				return layout.Inset{Bottom: unit.Dp(10)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					gtx.Constraints.Min.X = gtx.Constraints.Max.X
					return widgets.Banner(gtx, s.Theme, widgets.BannerWarning, "\""+sess.Message+"\"")
				})
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				expiry, ok := sess.Expiry()
				if !ok {
					return layout.Dimensions{}
				}
				return layout.Inset{Bottom: unit.Dp(10)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					gtx.Constraints.Min.X = gtx.Constraints.Max.X
					return widgets.Banner(gtx, s.Theme, widgets.BannerWarning,
						"Link expires: "+expiry.Local().Format("Jan 2, 2006 15:04"))
				})
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return s.layoutReadProgress(gtx, ctrl)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(10)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return s.layoutDocument(gtx, ctrl, sess)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if ctrl.HasRead() {
					return layout.Dimensions{}
				}
				return layout.Inset{Bottom: unit.Dp(10)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					gtx.Constraints.Min.X = gtx.Constraints.Max.X
					return widgets.Banner(gtx, s.Theme, widgets.BannerWarning,
						"Please scroll through the entire document. You must read the full NDA before signing.")
				})
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if notice := ctrl.Notice(); notice != "" {
					return layout.Inset{Bottom: unit.Dp(10)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						gtx.Constraints.Min.X = gtx.Constraints.Max.X
						return widgets.Banner(gtx, s.Theme, widgets.BannerError, notice)
					})
				}
				return layout.Dimensions{}
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min.X = gtx.Constraints.Max.X
				return widgets.Banner(gtx, s.Theme, widgets.BannerInfo,
					"This is a secure, one-time link unique to you. After signing, it will be permanently deactivated.")
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(14)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if s.DeclineOpen {
					return s.layoutDeclinePrompt(gtx)
				}
				return s.layoutViewActions(gtx, ctrl)
			}),
		)
	})
}

func (s *PortalScreen) layoutViewHeader(gtx layout.Context, sess *model.SigningSession) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Start}.Layout(gtx,
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					l := material.H6(s.Theme, sess.NDAName)
					l.Font.Weight = font.Bold
					return l.Layout(gtx)
				}),
				layout.Rigid(material.Caption(s.Theme, "v"+sess.NDAVersion+" · "+sess.NDACategory+" · "+sess.CompanyName).Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					if sess.AssignedBy == "" {
						return layout.Dimensions{}
					}
					return material.Caption(s.Theme, "Assigned by: "+sess.AssignedBy).Layout(gtx)
				}),
			)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return widgets.Card(gtx, s.Theme.Palette.Bg, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(material.Caption(s.Theme, "Signer").Layout),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						l := material.Body1(s.Theme, sess.SignerName)
						l.Font.Weight = font.Bold
						return l.Layout(gtx)
					}),
					layout.Rigid(material.Caption(s.Theme, sess.SignerEmail).Layout),
				)
			})
		}),
	)
}

func (s *PortalScreen) layoutReadProgress(gtx layout.Context, ctrl *session.Controller) layout.Dimensions {
	fill := s.Theme.Palette.ContrastBg
	label := ""
	if ctrl.HasRead() {
		fill = widgets.ColorSuccess
		label = "Read"
	} else {
		label = strconv.Itoa(ctrl.Progress()) + "% read"
	}
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return widgets.ProgressBar(gtx, ctrl.Progress(), fill)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(10)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			l := material.Caption(s.Theme, label)
			l.Color = fill
			l.Font.Weight = font.Bold
			return l.Layout(gtx)
		}),
	)
}

func (s *PortalScreen) layoutDocument(gtx layout.Context, ctrl *session.Controller, sess *model.SigningSession) layout.Dimensions {
	if s.docFor != sess {
		s.docFor = sess
		s.docLines = strings.Split(sess.ContentText(), "\n")
	}

	gtx.Constraints.Max.Y = gtx.Dp(420)
	return widgets.Border(gtx, widgets.ColorBorder, func(gtx layout.Context) layout.Dimensions {
		return widgets.CustomCard(gtx, widgets.ColorSurface, unit.Dp(24), func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min = gtx.Constraints.Max
			dims := material.List(s.Theme, &s.DocList).Layout(gtx, len(s.docLines)+2, func(gtx layout.Context, index int) layout.Dimensions {
				switch index {
				case 0:
					return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							l := material.Subtitle1(s.Theme, "NON-DISCLOSURE AGREEMENT")
							l.Font.Weight = font.Bold
							return l.Layout(gtx)
						}),
						layout.Rigid(material.Caption(s.Theme, sess.NDAName+" · Version "+sess.NDAVersion).Layout),
					)
				case 1:
					return widgets.VerticalDivider(gtx, widgets.ColorBorder)
				}
				line := s.docLines[index-2]
				if line == "" {
					return layout.Spacer{Height: unit.Dp(10)}.Layout(gtx)
				}
				return material.Body1(s.Theme, line).Layout(gtx)
			})
			s.observeScroll(ctrl, dims.Size.Y)
			return dims
		})
	})
}

// observeScroll converts the list position into the read percentage the
// controller tracks. Line heights are close to uniform, so the estimated
// content length gives a stable scroll-top approximation; reaching the end
// of the list always reports 100.
func (s *PortalScreen) observeScroll(ctrl *session.Controller, viewportPx int) {
	pos := s.DocList.Position
	items := len(s.docLines) + 2

	var scrollTop float32
	if items > 0 && pos.Length > 0 {
		mean := float32(pos.Length) / float32(items)
		scrollTop = float32(pos.First)*mean + float32(pos.Offset)
	}
	pct := session.Percent(scrollTop, float32(pos.Length), float32(viewportPx))
	if !pos.BeforeEnd {
		pct = 100
	}
	ctrl.ObserveScroll(pct)
}

func (s *PortalScreen) layoutViewActions(gtx layout.Context, ctrl *session.Controller) layout.Dimensions {
	canProceed := ctrl.HasRead() && !ctrl.Submitting()
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			btn := widgets.DangerButton(s.Theme, &s.DeclineButton, "Decline")
			return btn.Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(10)}.Layout),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			label := "Proceed to Sign"
			if !ctrl.HasRead() {
				label = "Read NDA First"
			}
			btn := widgets.PrimaryButton(s.Theme, &s.ProceedButton, label)
			if !canProceed {
				btn.Background = widgets.ColorBorder
				btn.Color = s.Theme.Palette.Fg
			}
			return btn.Layout(gtx)
		}),
	)
}

func (s *PortalScreen) layoutDeclinePrompt(gtx layout.Context) layout.Dimensions {
	return widgets.Border(gtx, widgets.ColorError, func(gtx layout.Context) layout.Dimensions {
		return widgets.Card(gtx, widgets.ColorSurface, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(material.Subtitle2(s.Theme, "Decline this NDA?").Layout),
				layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
				layout.Rigid(material.Editor(s.Theme, &s.ReasonEditor, "Reason for declining (optional)").Layout),
				layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							btn := widgets.SecondaryButton(s.Theme, &s.DeclineCancel, "Cancel")
							return btn.Layout(gtx)
						}),
						layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							btn := widgets.DangerButton(s.Theme, &s.DeclineConfirm, "Confirm Decline")
							return btn.Layout(gtx)
						}),
					)
				}),
			)
		})
	})
}

func (s *PortalScreen) layoutSign(gtx layout.Context, ctrl *session.Controller) layout.Dimensions {
	sess := ctrl.Session()
	s.PadWidget.Pad = ctrl.Pad()

	name := strings.TrimSpace(s.NameEditor.Text())
	canSubmit := s.Consent.Value && name != "" && !ctrl.Submitting()

	if s.BackButton.Clicked(gtx) && !ctrl.Submitting() {
		ctrl.Back()
	}
	if s.ClearButton.Clicked(gtx) {
		if pad := ctrl.Pad(); pad != nil {
			pad.Clear()
		}
	}
	if s.SignButton.Clicked(gtx) && canSubmit {
		ctrl.SubmitSign(name, s.Consent.Value)
	}

	return material.List(s.Theme, &s.MainList).Layout(gtx, 1, func(gtx layout.Context, _ int) layout.Dimensions {
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return widgets.IconLabel(gtx, s.Theme, icons.IconDraw, "Sign: "+sess.NDAName, s.Theme.Palette.ContrastBg, unit.Sp(20))
			}),
			layout.Rigid(material.Caption(s.Theme, "v"+sess.NDAVersion+" · "+sess.CompanyName).Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(20)}.Layout),
			layout.Rigid(material.Subtitle2(s.Theme, "Draw Your Signature").Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(s.PadWidget.Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				btn := widgets.SecondaryButton(s.Theme, &s.ClearButton, "Clear")
				btn.TextSize = unit.Sp(12)
				return btn.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
			layout.Rigid(material.Subtitle2(s.Theme, "Type Your Full Legal Name").Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return widgets.Border(gtx, widgets.ColorBorder, func(gtx layout.Context) layout.Dimensions {
					return layout.UniformInset(unit.Dp(10)).Layout(gtx,
						material.Editor(s.Theme, &s.NameEditor, sess.SignerName).Layout)
				})
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(14)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				consentName := name
				if consentName == "" {
					consentName = sess.SignerName
				}
				cb := material.CheckBox(s.Theme, &s.Consent,
					"I, "+consentName+", hereby confirm that I have read the entire NDA, understood its terms, and agree to be legally bound by this Non-Disclosure Agreement.")
				return cb.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(14)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if notice := ctrl.Notice(); notice != "" {
					return layout.Inset{Bottom: unit.Dp(10)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						gtx.Constraints.Min.X = gtx.Constraints.Max.X
						return widgets.Banner(gtx, s.Theme, widgets.BannerError, notice)
					})
				}
				return layout.Dimensions{}
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						btn := widgets.SecondaryButton(s.Theme, &s.BackButton, "Back")
						return btn.Layout(gtx)
					}),
					layout.Rigid(layout.Spacer{Width: unit.Dp(10)}.Layout),
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						label := "Sign NDA"
						if ctrl.Submitting() {
							label = "Signing..."
						}
						btn := widgets.PrimaryButton(s.Theme, &s.SignButton, label)
						btn.TextSize = unit.Sp(16)
						if !canSubmit {
							btn.Background = widgets.ColorBorder
							btn.Color = s.Theme.Palette.Fg
						}
						return btn.Layout(gtx)
					}),
				)
			}),
		)
	})
}

func formatTimestamp(ts string) string {
	ts = strings.Replace(ts, "T", " ", 1)
	if len(ts) > 19 {
		ts = ts[:19]
	}
	return ts
}
