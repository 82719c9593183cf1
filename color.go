// seehuhn.de/go/color - colour space conversions and gamut mapping
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package color converts colours between RGB colour spaces.
//
// An RGB colour space is described by the CIE 1931 xy coordinates of its
// three primaries and of its white point, collected in a [Chromaticities]
// value.  The package ships the chromaticities of common standard spaces,
// for example [Rec709] and [ACESAP0].
//
// # Transform Matrices
//
// Conversions between linear RGB and CIE 1931 XYZ are 3x3 matrix
// transforms.  [RGBToXYZ] constructs the matrix for a given colour space,
// and [RGBToRGB] the matrix converting directly between two spaces:
//
//	m := color.RGBToRGB(color.Rec709, color.ACESAP0)
//	aces := m.Apply(rgb)
//
// Matrices are combined with [Matrix.Then] or [Compose], inverted with
// [Matrix.Inverse], and applied to colour vectors with [Matrix.Apply].
//
// # Chromatic Adaptation
//
// [ChromaticAdaptation] computes a von Kries adaptation matrix which moves
// XYZ colours from one white point to another.  Use it together with
// [RGBToXYZ] when converting between spaces with different white points:
//
//	fromXYZ, _ := color.RGBToXYZ(color.ACESAP0).Inverse()
//	m := color.Compose(
//	    color.RGBToXYZ(color.Rec709),
//	    color.ChromaticAdaptation(color.Rec709.W, color.ACESAP0.W, color.Bradford),
//	    fromXYZ,
//	)
package color

// A Chromaticity is a point in the CIE 1931 xy chromaticity diagram.
type Chromaticity struct {
	X, Y float64
}

// Chromaticities describes an RGB colour space by the chromaticity
// coordinates of its primaries and its white point.
//
// The primaries must not be collinear.  This is not validated; matrix
// construction from degenerate primaries yields non-finite values.
type Chromaticities struct {
	R, G, B Chromaticity
	W       Chromaticity
}

// Chromaticities of common standard RGB colour spaces.
var (
	// Rec709 describes the Rec.709 colour space, also used by sRGB.
	Rec709 = Chromaticities{
		R: Chromaticity{0.640, 0.330},
		G: Chromaticity{0.300, 0.600},
		B: Chromaticity{0.150, 0.060},
		W: Chromaticity{0.3127, 0.3290},
	}

	// Rec2020 describes the Rec.2020 ultra-high-definition colour space.
	Rec2020 = Chromaticities{
		R: Chromaticity{0.708, 0.292},
		G: Chromaticity{0.170, 0.797},
		B: Chromaticity{0.131, 0.046},
		W: Chromaticity{0.3127, 0.3290},
	}

	// DCIP3 describes the DCI-P3 digital cinema colour space.
	DCIP3 = Chromaticities{
		R: Chromaticity{0.680, 0.320},
		G: Chromaticity{0.265, 0.690},
		B: Chromaticity{0.150, 0.060},
		W: Chromaticity{0.314, 0.351},
	}

	// ACESAP0 describes the ACES AP0 primaries, used by the ACES2065-1
	// colour space.  The primaries span the full visible gamut and the
	// blue primary lies outside the spectral locus.
	ACESAP0 = Chromaticities{
		R: Chromaticity{0.73470, 0.26530},
		G: Chromaticity{0.00000, 1.00000},
		B: Chromaticity{0.00010, -0.07700},
		W: Chromaticity{0.32168, 0.33767},
	}

	// ACESAP1 describes the ACES AP1 primaries, used by the ACEScg,
	// ACEScc and ACEScct colour spaces.
	ACESAP1 = Chromaticities{
		R: Chromaticity{0.713, 0.293},
		G: Chromaticity{0.165, 0.830},
		B: Chromaticity{0.128, 0.044},
		W: Chromaticity{0.32168, 0.33767},
	}

	// AdobeRGB describes the Adobe RGB (1998) colour space.
	AdobeRGB = Chromaticities{
		R: Chromaticity{0.6400, 0.3300},
		G: Chromaticity{0.2100, 0.7100},
		B: Chromaticity{0.1500, 0.0600},
		W: Chromaticity{0.3127, 0.3290},
	}

	// AdobeWideGamutRGB describes the Adobe Wide-gamut RGB colour space.
	AdobeWideGamutRGB = Chromaticities{
		R: Chromaticity{0.7347, 0.2653},
		G: Chromaticity{0.1152, 0.8264},
		B: Chromaticity{0.1566, 0.0177},
		W: Chromaticity{0.3457, 0.3585},
	}

	// ProPhotoRGB describes the Kodak ProPhoto RGB colour space.
	ProPhotoRGB = Chromaticities{
		R: Chromaticity{0.734699, 0.265301},
		G: Chromaticity{0.159597, 0.840403},
		B: Chromaticity{0.036598, 0.000105},
		W: Chromaticity{0.345704, 0.358540},
	}
)

// Chromaticities of standard illuminants, for use with
// [ChromaticAdaptation].
var (
	// D50 is the CIE standard illuminant D50, the white point of the
	// ICC profile connection space.
	D50 = Chromaticity{0.3457, 0.3585}

	// D65 is the CIE standard illuminant D65, the white point of
	// Rec.709, sRGB and Rec.2020.
	D65 = Chromaticity{0.3127, 0.3290}

	// E is the equal-energy illuminant, with equal XYZ coordinates.
	E = Chromaticity{1.0 / 3.0, 1.0 / 3.0}
)

// XYZ returns the CIE 1931 XYZ coordinates of the chromaticity, scaled
// so that Y equals 1.
func (c Chromaticity) XYZ() [3]float64 {
	return [3]float64{c.X / c.Y, 1.0, (1.0 - c.X - c.Y) / c.Y}
}
