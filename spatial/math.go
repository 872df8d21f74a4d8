// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import "math"

func cos(a Scalar) Scalar { return math.Cos(a) }
func sin(a Scalar) Scalar { return math.Sin(a) }
