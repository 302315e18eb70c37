//go:build raydebug

package core

import (
	"fmt"
	"math"
)

const frameTolerance = 1e-5

// checkFrame panics when the frame handed to NewHit is not orthonormal.
// Only compiled with -tags raydebug.
func checkFrame(normal, tangent Vec3) {
	if math.Abs(normal.LengthSquared()-1) > frameTolerance {
		panic(fmt.Sprintf("core: hit normal %v is not unit length", normal))
	}
	if math.Abs(tangent.LengthSquared()-1) > frameTolerance {
		panic(fmt.Sprintf("core: hit tangent %v is not unit length", tangent))
	}
	if math.Abs(normal.Dot(tangent)) > frameTolerance {
		panic(fmt.Sprintf("core: hit normal %v and tangent %v are not perpendicular", normal, tangent))
	}
}
