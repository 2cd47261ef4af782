package main

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/alde/aspectratio/internal/worker"
	"github.com/alde/aspectratio/pkg/aspect"
	"github.com/alde/aspectratio/pkg/display"
)

func TestIntegrationPresetsMatchResolutionStrings(t *testing.T) {
	for name, preset := range display.ListPresets() {
		fromPreset, err := aspect.Ratio(preset.Options())
		if err != nil {
			t.Fatalf("Preset %s failed: %v", name, err)
		}

		fromString, err := aspect.Ratio(aspect.Options{Resolution: fromPreset.Resolution})
		if err != nil {
			t.Fatalf("Resolution %s failed: %v", fromPreset.Resolution, err)
		}

		if fromPreset != fromString {
			t.Errorf("Preset %s: explicit and resolution results differ:\n%+v\n%+v", name, fromPreset, fromString)
		}

		back := aspect.ProportionToRatio(fromPreset.ProportionText, aspect.ProportionOptions{AllowAnyDelimiter: true})
		if back != fromPreset.Ratio {
			t.Errorf("Preset %s: proportion %s converts to %v, expected %v", name, fromPreset.ProportionText, back, fromPreset.Ratio)
		}
	}
}

func TestIntegrationWorkerPoolConfiguration(t *testing.T) {
	var resolutions []string
	for w := 100; w <= 2000; w += 100 {
		resolutions = append(resolutions, fmt.Sprintf("%dx%d", w, 2100-w))
	}

	// Sequential results are the reference
	want := make([]aspect.Result, len(resolutions))
	for i, res := range resolutions {
		r, err := aspect.Ratio(aspect.Options{Resolution: res})
		if err != nil {
			t.Fatalf("Ratio(%s) failed: %v", res, err)
		}
		want[i] = r
	}

	for _, workerCount := range []int{1, 2, 4} {
		t.Run(fmt.Sprintf("workers_%d", workerCount), func(t *testing.T) {
			pool := worker.NewPool(context.Background(), workerCount)
			pool.Start()

			go func() {
				defer pool.Stop()
				for i, res := range resolutions {
					if err := pool.Submit(worker.Job{Index: i, ID: res, Options: aspect.Options{Resolution: res}}); err != nil {
						t.Errorf("Submit(%s) failed: %v", res, err)
						return
					}
				}
			}()

			var got []worker.Result
			for r := range pool.Results() {
				got = append(got, r)
			}
			sort.Slice(got, func(i, j int) bool { return got[i].Index < got[j].Index })

			if len(got) != len(want) {
				t.Fatalf("Expected %d results, got %d", len(want), len(got))
			}
			for i := range got {
				if got[i].Error != nil {
					t.Errorf("Job %s failed: %v", got[i].JobID, got[i].Error)
					continue
				}
				if got[i].Ratio != want[i] {
					t.Errorf("Job %s: concurrent result differs from sequential", got[i].JobID)
				}
			}

			t.Logf("Processed %d resolutions with %d workers", len(got), pool.WorkerCount())
		})
	}
}
