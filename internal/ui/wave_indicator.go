package ui

import (
	"go-wave-spawner/internal/config"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y         float64
	Scale        float64
	Color        color.RGBA
	BossColor    color.RGBA
	OutlineColor color.RGBA
	face         text.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y, scale float64) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Scale:        scale,
		Color:        config.WaveTextColor,
		BossColor:    config.BossWaveColor,
		OutlineColor: config.TextLightColor,
		face:         text.NewGoXFace(basicfont.Face7x13),
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	if waveNumber <= 0 {
		return
	}

	label := toRoman(waveNumber)

	textColor := i.Color
	if waveNumber%10 == 0 {
		textColor = i.BossColor // последняя волна диапазона
	}

	w, _ := text.Measure(label, i.face, 0)
	x := i.X - w*i.Scale/2

	// Обводка
	for dy := -1.0; dy <= 1; dy++ {
		for dx := -1.0; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			i.drawText(screen, label, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	i.drawText(screen, label, x, i.Y, textColor)
}

func (i *WaveIndicator) drawText(screen *ebiten.Image, label string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(i.Scale, i.Scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, label, i.face, op)
}
