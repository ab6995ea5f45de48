package render

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// NewColorbar builds a vertical gradient legend for a colormap, labelled
// with the values at its top and bottom ends.
func NewColorbar(cmap Colormap, topText, bottomText string) *fyne.Container {
	const barW, barH = 16, 200
	img := image.NewRGBA(image.Rect(0, 0, barW, barH))
	for y := 0; y < barH; y++ {
		c := cmap.At(1 - float64(y)/float64(barH-1))
		for x := 0; x < barW; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	bar := canvas.NewImageFromImage(img)
	bar.FillMode = canvas.ImageFillContain
	bar.SetMinSize(fyne.NewSize(barW, barH))

	top := widget.NewLabel(topText)
	bottom := widget.NewLabel(bottomText)
	return container.NewBorder(top, bottom, nil, nil, bar)
}
