// eco_score.go
//
// Eco-scored rental listing service for the GreenLease platform
// Copyright (c) 2026 GreenLease <dev@greenlease.io>
//
// This file is part of greenlease.
// greenlease is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// greenlease is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with greenlease.
// If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"math"

	"github.com/greenlease/greenlease/internal/models"
)

// Factor weights for the overall eco score. Weights are not renormalized when
// factors are missing: partial data scores strictly lower than full data of
// the same per-factor quality.
const (
	insulationWeight = 0.20
	solarWeight      = 0.25
	waterWeight      = 0.20
	energyWeight     = 0.25
	greenSpaceWeight = 0.10
)

// EcoFactors are the five independent inputs to the eco score. Nil means the
// factor was not provided; an integer rating <= 0 is treated as absent too.
// Proximity participates whenever provided: living at zero miles from green
// space is the best case, not a missing value.
type EcoFactors struct {
	Insulation          *int
	Solar               *int
	WaterConservation   *int
	EnergyEfficiency    *int
	GreenSpaceProximity *float64
}

// FactorsOf extracts the eco factor inputs from a property.
func FactorsOf(p *models.Property) EcoFactors {
	return EcoFactors{
		Insulation:          p.InsulationRating,
		Solar:               p.SolarRating,
		WaterConservation:   p.WaterConservationRating,
		EnergyEfficiency:    p.EnergyEfficiencyRating,
		GreenSpaceProximity: p.GreenSpaceProximity,
	}
}

// ComputeEcoScore produces the weighted composite eco score, rounded to two
// decimal places. Zero present factors yield exactly 0.0. Out-of-range inputs
// are not clamped; they propagate arithmetically into the score.
func ComputeEcoScore(f EcoFactors) float64 {
	total := 0.0
	present := 0

	if f.Insulation != nil && *f.Insulation > 0 {
		total += float64(*f.Insulation) * insulationWeight
		present++
	}
	if f.Solar != nil && *f.Solar > 0 {
		total += float64(*f.Solar) * solarWeight
		present++
	}
	if f.WaterConservation != nil && *f.WaterConservation > 0 {
		total += float64(*f.WaterConservation) * waterWeight
		present++
	}
	if f.EnergyEfficiency != nil && *f.EnergyEfficiency > 0 {
		total += float64(*f.EnergyEfficiency) * energyWeight
		present++
	}
	if f.GreenSpaceProximity != nil {
		total += math.Max(0, 10-*f.GreenSpaceProximity) * greenSpaceWeight
		present++
	}

	if present == 0 {
		return 0.0
	}
	return math.Round(total*100) / 100
}

// EcoTierRange maps a named eco tier onto its score range. The boundaries are
// the same ones the display banding uses. ok is false for unknown labels, in
// which case callers fall back to the unfiltered available listing.
func EcoTierRange(label string) (min, max float64, ok bool) {
	switch label {
	case "excellent":
		return 8.0, 10.0, true
	case "good":
		return 6.0, 7.9, true
	case "fair":
		return 4.0, 5.9, true
	default:
		return 0, 0, false
	}
}
