//go:build tinygo

package main

import (
	"context"
	"image"
	"log"
	"machine"

	"tinygo.org/x/drivers/st7789"

	"owlface/internal/assets"
	"owlface/internal/clock"
	"owlface/internal/face"
	"owlface/internal/gfx"
	"owlface/internal/host"
	"owlface/internal/ui"
)

// Watch display, centered on a 240x240 ST7789 panel.
const (
	ScreenWidth  = 144
	ScreenHeight = 168
	panelSize    = 240
)

func main() {
	machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 8000000,
		SCK:       machine.LCD_SCK,
		SDO:       machine.LCD_SDI,
		Mode:      3,
	})
	display := st7789.New(machine.SPI0, machine.LCD_RESET, machine.LCD_RS, machine.LCD_CS, machine.LCD_BACKLIGHT_HIGH)
	display.Configure(st7789.Config{Width: panelSize, Height: panelSize})
	display.FillScreen(gfx.ColorOxfordBlue)

	rt := ui.NewRuntime(image.Rect(0, 0, ScreenWidth, ScreenHeight), clock.System{}, assets.Bundled())
	opts := face.DefaultOptions()
	opts.Color = true
	owl := face.New(rt, opts)
	owl.Init()

	err := host.RunPanel(context.Background(), rt, &display, host.PanelConfig{
		Hz: 1,
		X:  (panelSize - ScreenWidth) / 2,
		Y:  (panelSize - ScreenHeight) / 2,
	})

	owl.Deinit()
	if err != nil {
		log.Println(err)
	}
}
