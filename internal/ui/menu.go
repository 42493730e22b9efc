package ui

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/oligo/gioview/menu"
	"github.com/oligo/gioview/theme"
)

type menuItem struct {
	label    string
	icon     *widget.Icon
	selected func() bool
	action   func()
}

func (a *App) buildFileMenu() *menu.DropdownMenu {
	return newDropdown([][]menuItem{{
		{label: "Exit", icon: a.icons.exit, action: a.exit},
	}})
}

func (a *App) buildViewMenu() *menu.DropdownMenu {
	return newDropdown([][]menuItem{
		{
			{label: "Light Theme", icon: a.icons.light, action: func() { a.setDark(false) },
				selected: func() bool { return !a.state.Theme.IsDark() }},
			{label: "Dark Theme", icon: a.icons.dark, action: func() { a.setDark(true) },
				selected: func() bool { return a.state.Theme.IsDark() }},
		},
		{
			{label: "Increase Size", icon: a.icons.grow, action: a.increaseSize},
			{label: "Decrease Size", icon: a.icons.shrink, action: a.decreaseSize},
			{label: "Reset Size", icon: a.icons.reset, action: a.resetSize},
		},
	})
}

// newDropdown turns grouped items into a dropdown; each group is separated
// by a divider.
func newDropdown(groups [][]menuItem) *menu.DropdownMenu {
	opts := make([][]menu.MenuOption, 0, len(groups))
	for _, group := range groups {
		row := make([]menu.MenuOption, 0, len(group))
		for _, item := range group {
			item := item
			row = append(row, menu.MenuOption{
				OnClicked: func() error {
					item.action()
					return nil
				},
				Layout: func(gtx menu.C, th *theme.Theme) menu.D {
					return layoutMenuItem(gtx, th, item)
				},
			})
		}
		opts = append(opts, row)
	}
	drop := menu.NewDropdownMenu(opts)
	drop.MaxWidth = unit.Dp(220)
	return drop
}

func layoutMenuItem(gtx layout.Context, th *theme.Theme, item menuItem) layout.Dimensions {
	fg := th.Palette.Fg
	if item.selected != nil && item.selected() {
		fg = th.Palette.ContrastBg
	}
	return layout.Inset{Left: unit.Dp(4), Right: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if item.icon == nil {
					return layout.Dimensions{}
				}
				gtx.Constraints.Min.X = gtx.Dp(unit.Dp(16))
				gtx.Constraints.Max.X = gtx.Constraints.Min.X
				return item.icon.Layout(gtx, fg)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				lbl := material.Body1(th.Theme, item.label)
				lbl.Color = fg
				return lbl.Layout(gtx)
			}),
		)
	})
}
