package words

import (
	"fmt"

	"github.com/goblimey/go-galileo/galileo/page"
	"github.com/goblimey/go-galileo/galileo/utils"
)

// This file handles word type 1 - ephemeris (1/4).

// Lengths of the fields in the bit stream.
const lenIssueOfData = 10
const lenReferenceTime = 14
const lenMeanAnomaly = 32
const lenEccentricity = 32
const lenRootSemiMajorAxis = 32

// Type1 is word type 1: the ephemeris reference time and the first of the
// Keplerian elements.
type Type1 struct {
	// IssueOfData is the 10-bit IODnav.  It increments when the
	// broadcast ephemeris is updated.
	IssueOfData uint

	// ReferenceTime is t0e, the ephemeris reference time, in seconds
	// of week.
	ReferenceTime float64

	// MeanAnomaly is M0, the mean anomaly at reference time, in radians.
	MeanAnomaly float64

	// Eccentricity is e, dimensionless.
	Eccentricity float64

	// RootSemiMajorAxis is the square root of the semi-major axis, in
	// metres to the power one half.
	RootSemiMajorAxis float64
}

// getType1 decodes a word type 1 page.
func getType1(p *page.Page) *Type1 {

	word1 := p.Word1()
	issueOfData := word1.Uint(lenIssueOfData)
	referenceTime := word1.Uint(lenReferenceTime)

	word2 := p.Word2()
	meanAnomaly := word2.Int(lenMeanAnomaly)

	word3 := p.Word3()
	eccentricity := word3.Uint(lenEccentricity)

	midData := p.MidData()
	rootSemiMajorAxis := midData.Uint(lenRootSemiMajorAxis)

	word := Type1{
		IssueOfData:       uint(issueOfData),
		ReferenceTime:     float64(referenceTime) * 60,
		MeanAnomaly:       float64(meanAnomaly) * utils.Scale(-31) * utils.Pi,
		Eccentricity:      float64(eccentricity) * utils.Scale(-33),
		RootSemiMajorAxis: float64(rootSemiMajorAxis) * utils.Scale(-19),
	}

	return &word
}

// String returns a readable version of a word type 1.
func (word *Type1) String() string {
	return fmt.Sprintf("ephemeris (1/4): IOD %d, t0e %.0f, M0 %e, e %e, sqrt(A) %e",
		word.IssueOfData, word.ReferenceTime, word.MeanAnomaly,
		word.Eccentricity, word.RootSemiMajorAxis)
}
