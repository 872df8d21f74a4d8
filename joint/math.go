// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package joint

import (
	"math"

	"github.com/m576f167/simbody/spatial"
)

// DEG2RAD converts degrees to radians. Only the ball-joint Euler path
// applies this multiplier; every other joint family's θ
// is already in radians.
const DEG2RAD = math.Pi / 180

func sinCos(a spatial.Scalar) (s, c spatial.Scalar) {
	return math.Sin(a), math.Cos(a)
}

func sqrt(v spatial.Scalar) spatial.Scalar {
	return math.Sqrt(v)
}
