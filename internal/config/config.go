package config

import "sync"

// MesherSettings holds per-call-tunable knobs for the mesher: a
// package-level struct behind a single RWMutex, clamped setters, read
// once per call rather than per-voxel.
type MesherSettings struct {
	mu               sync.RWMutex
	ambientOcclusion bool
	greedyMerge      bool
	waterLowerFrac   float32
}

var globalMesherSettings = &MesherSettings{
	ambientOcclusion: true,
	greedyMerge:      true,
	waterLowerFrac:   0.125,
}

// GetAmbientOcclusion returns whether AO shading is applied during meshing.
func GetAmbientOcclusion() bool {
	globalMesherSettings.mu.RLock()
	defer globalMesherSettings.mu.RUnlock()
	return globalMesherSettings.ambientOcclusion
}

// SetAmbientOcclusion enables or disables AO sampling.
func SetAmbientOcclusion(enabled bool) {
	globalMesherSettings.mu.Lock()
	defer globalMesherSettings.mu.Unlock()
	globalMesherSettings.ambientOcclusion = enabled
}

// GetGreedyMerge returns whether Mesh runs the greedy (merged) pass. When
// false, Mesh runs the quick (unmerged) pass instead.
func GetGreedyMerge() bool {
	globalMesherSettings.mu.RLock()
	defer globalMesherSettings.mu.RUnlock()
	return globalMesherSettings.greedyMerge
}

// SetGreedyMerge toggles which pass Mesh runs.
func SetGreedyMerge(enabled bool) {
	globalMesherSettings.mu.Lock()
	defer globalMesherSettings.mu.Unlock()
	globalMesherSettings.greedyMerge = enabled
}

// GetWaterLowerFraction returns the host-shader hint for how far a water
// UP face's rendered top should be lowered below the voxel boundary. This
// is a convenience value for the host; it does not change the packed
// `lower` bit field, which stays a fixed 0 or 2.
func GetWaterLowerFraction() float32 {
	globalMesherSettings.mu.RLock()
	defer globalMesherSettings.mu.RUnlock()
	return globalMesherSettings.waterLowerFrac
}

// SetWaterLowerFraction sets the water-lowering hint, clamped to [0, 0.5].
func SetWaterLowerFraction(frac float32) {
	globalMesherSettings.mu.Lock()
	defer globalMesherSettings.mu.Unlock()
	if frac < 0 {
		frac = 0
	}
	if frac > 0.5 {
		frac = 0.5
	}
	globalMesherSettings.waterLowerFrac = frac
}
