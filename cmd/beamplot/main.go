// Command beamplot renders a steered phased array and its far-field
// beampattern in two camera-linked 3D views.
package main

import (
	"fmt"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/wiless/vlib"

	"github.com/tiiuae/3d-phased-array-plotter/array"
	"github.com/tiiuae/3d-phased-array-plotter/beam"
	"github.com/tiiuae/3d-phased-array-plotter/render"
	"github.com/tiiuae/3d-phased-array-plotter/sphere"
)

func readConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName("beamplot")
	if err := viper.ReadInConfig(); err != nil {
		log.Print("ReadInConfig ", err)
	}
	viper.SetDefault("Wavelength", 0.5)
	viper.SetDefault("NX", 9)
	viper.SetDefault("NY", 9)
	viper.SetDefault("SpacingWl", 0.25)
	viper.SetDefault("NTheta", 60)
	viper.SetDefault("NPhi", 120)
	viper.SetDefault("SteerAzDeg", 45.0)
	viper.SetDefault("SteerElDeg", -45.0)
	viper.SetDefault("Scale", "decibel")
	viper.SetDefault("RangeDb", 30.0)
}

func scaleFromName(name string) beam.Scale {
	if name == "linear" {
		return beam.Linear
	}
	return beam.Decibel
}

func main() {
	readConfig()

	model, err := array.FromMap(viper.AllSettings())
	if err != nil {
		log.Fatal(err)
	}

	az := viper.GetFloat64("SteerAzDeg") * math.Pi / 180
	el := viper.GetFloat64("SteerElDeg") * math.Pi / 180
	theta0, phi0 := sphere.AzElToThetaPhi(az, el)
	model.Steer(theta0, phi0)

	mesh, err := sphere.NewMesh(viper.GetInt("NTheta"), viper.GetInt("NPhi"))
	if err != nil {
		log.Fatal(err)
	}

	scale := scaleFromName(viper.GetString("Scale"))
	rangeDb := viper.GetFloat64("RangeDb")
	field, err := beam.EvaluateFieldFloor(model, mesh.Grid, scale, -rangeDb)
	if err != nil {
		log.Fatal(err)
	}
	peakRel := field.Peak / float64(model.Len())
	log.Infof("%d elements, steered to az=%v el=%v deg, peak %.2f dB re coherent sum",
		model.Len(), viper.GetFloat64("SteerAzDeg"), viper.GetFloat64("SteerElDeg"),
		vlib.Db(peakRel*peakRel))

	arrayView, err := render.NewArrayView(model.Positions(), model.Phases())
	if err != nil {
		log.Fatal(err)
	}
	patternView, err := render.NewPatternView(
		render.Mesh3D{Vertices: mesh.Vertices, Faces: mesh.Faces}, field.Values)
	if err != nil {
		log.Fatal(err)
	}
	arrayView.LinkCamera(patternView)
	patternView.LinkCamera(arrayView)

	a := app.New()
	w := a.NewWindow("array analysis rendering")

	phaseBar := render.NewColorbar(render.PhaseColormap(), "2π", "0")
	beamBar := render.NewColorbar(render.BeamColormap(), "0 dB", fmt.Sprintf("-%g dB", rangeDb))
	if scale == beam.Linear {
		beamBar = render.NewColorbar(render.BeamColormap(), "1", "0")
	}
	left := container.NewBorder(nil, nil, phaseBar, nil, arrayView)
	right := container.NewBorder(nil, nil, nil, beamBar, patternView)
	w.SetContent(container.NewGridWithColumns(2, left, right))
	w.Resize(fyne.NewSize(1000, 500))
	w.ShowAndRun()
}
