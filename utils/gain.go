// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// DBToLinear converts decibels to a linear amplitude factor: 10^(db/20).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}
