// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isof

import (
	"math"

	"github.com/thelfer/tfel-sub004/eig"
	"github.com/thelfer/tfel-sub004/stensor"
)

// scalar functions
var (
	positive = func(x float64) float64 { return math.Max(x, 0) }
	negative = func(x float64) float64 { return math.Min(x, 0) }
	exp      = math.Exp
	log      = math.Log
	sqrt     = math.Sqrt
	inv      = func(x float64) float64 { return 1.0 / x }
)

// Heaviside returns the step function with H(0) = 1/2
func Heaviside(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return 0
	}
	return 0.5
}

func negativeStep(x float64) float64 {
	return 1 - Heaviside(x)
}

// PositivePart returns Σ max(λi, 0) ni⊗ni
func PositivePart(t stensor.Stensor, kind eig.Kind) stensor.Stensor {
	return Compute(t, positive, kind)
}

// NegativePart returns Σ min(λi, 0) ni⊗ni
func NegativePart(t stensor.Stensor, kind eig.Kind) stensor.Stensor {
	return Compute(t, negative, kind)
}

// PositivePartDerivative returns the derivative of the positive part
func PositivePartDerivative(t stensor.Stensor, eps float64, kind eig.Kind) stensor.St2toSt2 {
	return ComputeDerivative(t, positive, Heaviside, eps, kind)
}

// NegativePartDerivative returns the derivative of the negative part
func NegativePartDerivative(t stensor.Stensor, eps float64, kind eig.Kind) stensor.St2toSt2 {
	return ComputeDerivative(t, negative, negativeStep, eps, kind)
}

// PositivePartWithDerivative returns the positive part and its derivative
func PositivePartWithDerivative(t stensor.Stensor, eps float64, kind eig.Kind) (stensor.Stensor, stensor.St2toSt2) {
	return ComputeWithDerivative(t, positive, Heaviside, eps, kind)
}

// NegativePartWithDerivative returns the negative part and its derivative
func NegativePartWithDerivative(t stensor.Stensor, eps float64, kind eig.Kind) (stensor.Stensor, stensor.St2toSt2) {
	return ComputeWithDerivative(t, negative, negativeStep, eps, kind)
}

// Exp returns the exponential of t
func Exp(t stensor.Stensor, kind eig.Kind) stensor.Stensor {
	return Compute(t, exp, kind)
}

// ExpWithDerivative returns exp(t) and its derivative
func ExpWithDerivative(t stensor.Stensor, eps float64, kind eig.Kind) (stensor.Stensor, stensor.St2toSt2) {
	return ComputeWithDerivative(t, exp, exp, eps, kind)
}

// Log returns the logarithm of the positive definite tensor t
func Log(t stensor.Stensor, kind eig.Kind) stensor.Stensor {
	return Compute(t, log, kind)
}

// LogWithDerivative returns log(t) and its derivative. t must be positive definite
func LogWithDerivative(t stensor.Stensor, eps float64, kind eig.Kind) (stensor.Stensor, stensor.St2toSt2) {
	return ComputeWithDerivative(t, log, inv, eps, kind)
}

// Sqrt returns the square root of the positive semi-definite tensor t
func Sqrt(t stensor.Stensor, kind eig.Kind) stensor.Stensor {
	return Compute(t, sqrt, kind)
}

// Pow returns t^p for a positive definite tensor t
func Pow(t stensor.Stensor, p float64, kind eig.Kind) stensor.Stensor {
	return Compute(t, func(x float64) float64 { return math.Pow(x, p) }, kind)
}

// HenckyStrain returns log(C)/2 where C = Fᵀ·F is the right Cauchy-Green tensor
func HenckyStrain(C stensor.Stensor, kind eig.Kind) stensor.Stensor {
	return Log(C, kind).Scale(0.5)
}
