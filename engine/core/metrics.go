package core

import (
	"sync"

	"github.com/spaghettifunk/prism/engine/containers"
)

const avgCount = 30

type MetricsState struct {
	msTimes            *containers.Ring[float64]
	msAvg              float64
	frames             int32
	accumulatedFrameMS float64
	fps                float64
}

var onceMetrics sync.Once
var metricsState *MetricsState = nil

func MetricsInitialize() error {
	onceMetrics.Do(func() {
		metricsState = &MetricsState{
			msTimes: containers.NewRing[float64](avgCount),
		}
	})
	return nil
}

// MetricsUpdate folds one frame's elapsed time (seconds) into the running
// frame-ms average and FPS counter.
func MetricsUpdate(frameElapsedTime float64) {
	frameMS := frameElapsedTime * 1000.0
	metricsState.msTimes.Push(frameMS)
	if metricsState.msTimes.Full() {
		metricsState.msAvg = metricsState.msTimes.Average()
	}

	metricsState.accumulatedFrameMS += frameMS
	if metricsState.accumulatedFrameMS > 1000 {
		metricsState.fps = float64(metricsState.frames)
		metricsState.accumulatedFrameMS -= 1000
		metricsState.frames = 0
	}

	metricsState.frames++
}

func MetricsFPS() float64 {
	return metricsState.fps
}

func MetricsFrameTime() float64 {
	return metricsState.msAvg
}

func MetricsFrame() (float64, float64) {
	return metricsState.fps, metricsState.msAvg
}
