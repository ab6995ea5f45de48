// Command beamscan precomputes a set of beams over an azimuth/elevation
// scan and animates the array sweeping through them.
package main

import (
	"fmt"
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/floats"

	"github.com/tiiuae/3d-phased-array-plotter/array"
	"github.com/tiiuae/3d-phased-array-plotter/beam"
	"github.com/tiiuae/3d-phased-array-plotter/render"
	"github.com/tiiuae/3d-phased-array-plotter/sphere"
)

type frame struct {
	values []float64
	phases []float64
}

func readConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName("beamscan")
	if err := viper.ReadInConfig(); err != nil {
		log.Print("ReadInConfig ", err)
	}
	viper.SetDefault("Wavelength", 0.25)
	viper.SetDefault("NX", 9)
	viper.SetDefault("NY", 9)
	viper.SetDefault("SpacingWl", 0.5)
	viper.SetDefault("NTheta", 60)
	viper.SetDefault("NPhi", 120)
	viper.SetDefault("ScanDeg", 45.0)
	viper.SetDefault("ScanSteps", 5)
	viper.SetDefault("RangeDb", 30.0)
	viper.SetDefault("FrameMs", 200)
}

func main() {
	readConfig()

	model, err := array.FromMap(viper.AllSettings())
	if err != nil {
		log.Fatal(err)
	}
	mesh, err := sphere.NewMesh(viper.GetInt("NTheta"), viper.GetInt("NPhi"))
	if err != nil {
		log.Fatal(err)
	}

	scanDeg := viper.GetFloat64("ScanDeg")
	steps := viper.GetInt("ScanSteps")
	if steps < 2 {
		steps = 2
	}
	scan := make([]float64, steps)
	floats.Span(scan, -scanDeg*math.Pi/180, scanDeg*math.Pi/180)
	rangeDb := viper.GetFloat64("RangeDb")

	// the model is steered and evaluated strictly once per beam; every
	// frame later replays a finished snapshot
	frames := make([]frame, 0, steps*steps)
	for i, el := range scan {
		log.Debugf("pre-compute beams: %d/%d", i, steps)
		for _, az := range scan {
			theta0, phi0 := sphere.AzElToThetaPhi(az, el)
			model.Steer(theta0, phi0)
			field, err := beam.EvaluateFieldFloor(model, mesh.Grid, beam.Decibel, -rangeDb)
			if err != nil {
				log.Fatal(err)
			}
			frames = append(frames, frame{
				values: append([]float64(nil), field.Values...),
				phases: append([]float64(nil), model.Phases()...),
			})
		}
	}
	log.Infof("pre-computed %d beams over ±%g deg", len(frames), scanDeg)

	arrayView, err := render.NewArrayView(model.Positions(), frames[0].phases)
	if err != nil {
		log.Fatal(err)
	}
	patternView, err := render.NewPatternView(
		render.Mesh3D{Vertices: mesh.Vertices, Faces: mesh.Faces}, frames[0].values)
	if err != nil {
		log.Fatal(err)
	}
	arrayView.LinkCamera(patternView)
	patternView.LinkCamera(arrayView)

	a := app.New()
	w := a.NewWindow("array analysis rendering")
	left := container.NewBorder(nil, nil, render.NewColorbar(render.PhaseColormap(), "2π", "0"), nil, arrayView)
	right := container.NewBorder(nil, nil, nil,
		render.NewColorbar(render.BeamColormap(), "0 dB", fmt.Sprintf("-%g dB", rangeDb)), patternView)
	w.SetContent(container.NewGridWithColumns(2, left, right))
	w.Resize(fyne.NewSize(1000, 500))

	go func() {
		ticker := time.NewTicker(time.Duration(viper.GetInt("FrameMs")) * time.Millisecond)
		defer ticker.Stop()
		index := 0
		for range ticker.C {
			f := frames[index%len(frames)]
			if err := patternView.SetValues(f.values); err != nil {
				log.Error(err)
			}
			if err := arrayView.SetPhases(f.phases); err != nil {
				log.Error(err)
			}
			index++
		}
	}()

	w.ShowAndRun()
}
