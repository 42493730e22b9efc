package ui

import (
	"image"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/OpenTraceLab/vkeyboard/pkg/display"
	"github.com/OpenTraceLab/vkeyboard/pkg/keys"
)

func (a *App) layoutKeyboard(gtx layout.Context) layout.Dimensions {
	ctrl := a.state.Keyboard
	rows := ctrl.Layout().Rows()
	st := ctrl.State()
	pal := a.state.Theme.Palette()
	height := unit.Dp(float32(keyHeight) * float32(a.state.Size.Scale()))

	// Clicks are collected before layout so the labels drawn this frame
	// already reflect a toggle.
	for i := range a.keyClicks {
		if a.keyClicks[i].Clicked(gtx) {
			a.pressKey(i)
		}
	}

	children := make([]layout.FlexChild, 0, len(rows))
	base := 0
	for _, row := range rows {
		row, start := row, base
		base += len(row)
		children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.Y = gtx.Dp(height)
			gtx.Constraints.Max.Y = gtx.Constraints.Min.Y
			return a.layoutRow(gtx, row, start, st.CapsLock(), st.Shift(), pal)
		}))
	}
	return layout.Inset{Left: unit.Dp(6), Right: unit.Dp(6), Top: unit.Dp(2), Bottom: unit.Dp(2)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
	})
}

func (a *App) layoutRow(gtx layout.Context, row []keys.Key, start int, capsLock, shift bool, pal display.Palette) layout.Dimensions {
	children := make([]layout.FlexChild, len(row))
	for j, k := range row {
		idx, k := start+j, k
		children[j] = layout.Flexed(widthWeight(k.Width), func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(keyGap).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return a.layoutKey(gtx, idx, k, latched(k.Code, capsLock, shift), pal)
			})
		})
	}
	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx, children...)
}

func (a *App) layoutKey(gtx layout.Context, idx int, k keys.Key, lit bool, pal display.Palette) layout.Dimensions {
	click := &a.keyClicks[idx]
	visual := keyIdle
	switch {
	case click.Pressed() || a.held[idx] || lit:
		visual = keyActive
	case click.Hovered():
		visual = keyHovered
	}
	label := a.state.Keyboard.Label(idx)

	return click.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		size := gtx.Constraints.Max
		gtx.Constraints.Min = size
		rect := image.Rectangle{Max: size}
		r := gtx.Dp(keyRadius)
		paint.FillShape(gtx.Ops, pal.KeyBorder, clip.UniformRRect(rect, r).Op(gtx.Ops))

		fill := pal.KeyFill
		switch visual {
		case keyHovered:
			fill = pal.KeyHover
		case keyActive:
			fill = pal.KeyActive
		}
		inner := rect.Inset(gtx.Dp(unit.Dp(1)))
		paint.FillShape(gtx.Ops, fill, clip.UniformRRect(inner, r).Op(gtx.Ops))

		layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			lbl := material.Label(a.gvTheme.Theme, unit.Sp(float32(a.state.Size.FontSize())), label)
			lbl.Color = pal.KeyText
			lbl.Alignment = text.Middle
			lbl.MaxLines = 1
			if !keys.IsLetterLabel(label) && len([]rune(label)) > 1 {
				lbl.Font.Weight = font.Medium
			}
			return lbl.Layout(gtx)
		})
		return layout.Dimensions{Size: size}
	})
}
