// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dynamics implements the recursive articulated-body
// algorithm: a position pass and a velocity pass each run base to tip,
// followed by calcP and calcZ tip to base, and calcAccel base to tip
// again. calcY and calcInternalForce are independent passes used for
// constraint projection and inverse dynamics respectively.
//
// Every pass relies on the node order invariant enforced by
// body.System.AppendNode: a node's index is always strictly greater
// than its parent's, so iterating Nodes forward is a valid base-to-tip
// order and iterating it backward is a valid tip-to-base order, with no
// explicit tree recursion needed.
package dynamics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/m576f167/simbody/body"
	"github.com/m576f167/simbody/spatial"
)

// Position runs the base-to-tip position pass, refreshing each node's
// R_PB/R_GB/O_BG, shift operator and spatial mass properties from its
// joint's current generalized coordinates.
func Position(sys *body.System) {
	nodes := sys.Nodes
	nodes[0].RGB = spatial.Identity3()
	nodes[0].OBG = spatial.Zero3()
	nodes[0].Phi = spatial.NewShiftOp(spatial.Zero3())

	for i := 1; i < len(nodes); i++ {
		n := nodes[i]
		p := nodes[n.Parent]

		rPB, oBP := n.Joint.KinematicsPos(p.RGB)
		n.RPB = rPB

		oBPG := p.RGB.MulVec(oBP)
		n.Phi = spatial.NewShiftOp(oBPG)
		n.RGB = p.RGB.Mul(rPB)
		n.OBG = p.OBG.Add(oBPG)

		n.ComG = n.RGB.MulVec(n.Mass.ComStation)
		n.InertiaOBG = spatial.OrthoTransform(n.Mass.InertiaOB, n.RGB)
		n.Mk = n.Mass.SpatialInertia(n.RGB)
	}
}

// Velocity runs the base-to-tip velocity pass, refreshing each node's
// spatial velocity and gyroscopic/Coriolis bias terms.
func Velocity(sys *body.System) {
	nodes := sys.Nodes
	nodes[0].SVel = spatial.SpatialVec{}

	for i := 1; i < len(nodes); i++ {
		n := nodes[i]
		p := nodes[n.Parent]

		vPBG := n.Joint.KinematicsVel()
		n.VPBG = vPBG
		n.SVel = n.Phi.ShiftMotion(p.SVel).Add(vPBG)

		omega := n.SVel.Angular
		n.B = spatial.SpatialVec{
			Angular: omega.Cross(n.InertiaOBG.MulVec(omega)),
			Linear:  omega.Cross(omega.Cross(n.ComG)).Scale(n.Mass.Mass),
		}

		omegaParent := p.SVel.Angular
		vB, vP := n.SVel.Linear, p.SVel.Linear
		n.A = spatial.SpatialVec{
			Angular: omegaParent.Cross(vPBG.Angular),
			Linear:  omegaParent.Cross(vPBG.Linear).Add(omegaParent.Cross(vB.Sub(vP))),
		}
	}
}

// level walks the parent chain to find a node's distance from ground,
// for diagnostics only.
func level(sys *body.System, idx body.Index) int {
	n := 0
	for idx != 0 {
		idx = sys.Nodes[idx].Parent
		n++
	}
	return n
}

// CalcP runs the tip-to-base articulated-body-inertia pass, populating
// P, D, DI, G, Tau and PsiT on every non-ground node. Returns a
// *SingularConfigurationError if D is not invertible anywhere in the
// tree.
func CalcP(sys *body.System) error {
	nodes := sys.Nodes

	for i := len(nodes) - 1; i >= 1; i-- {
		n := nodes[i]

		p := n.Mk
		for _, ci := range n.Children {
			c := nodes[ci]
			p = p.Add(c.Phi.Conjugate(c.Tau.Mul(c.P)))
		}
		n.P = p

		h := n.Joint.H()
		hDense := hToDense(h)
		pDense := spatialMatToDense(p)

		var hp mat.Dense
		hp.Mul(hDense, pDense)
		var dDense mat.Dense
		dDense.Mul(&hp, hDense.T())
		n.D = denseToRows(&dDense)

		var diDense mat.Dense
		if err := diDense.Inverse(&dDense); err != nil {
			return newSingularConfigurationError(n.Index, level(sys, n.Index), h, err)
		}
		n.DI = denseToRows(&diDense)

		// P·Hᵀ = (H·P)ᵀ since P (an articulated-body inertia) is symmetric.
		var gDense mat.Dense
		gDense.Mul(hp.T(), &diDense)
		n.G = denseColsToSpatialVecs(&gDense)

		var ghDense mat.Dense
		ghDense.Mul(&gDense, hDense)
		identity6 := mat.NewDense(6, 6, nil)
		for k := 0; k < 6; k++ {
			identity6.Set(k, k, 1)
		}
		var tauDense mat.Dense
		tauDense.Sub(identity6, &ghDense)
		n.Tau = denseToSpatialMat(&tauDense)

		n.PsiT = n.Tau.Transpose().Mul(n.Phi.Matrix().Transpose())
	}
	return nil
}

// CalcZ runs the tip-to-base bias-force pass. fExt supplies the
// externally applied spatial force on each node, indexed by
// body.Index; zero entries, a short slice or a nil slice mean no
// external force on the nodes not covered.
func CalcZ(sys *body.System, fExt []spatial.SpatialVec) {
	nodes := sys.Nodes
	ext := func(idx body.Index) spatial.SpatialVec {
		if int(idx) < len(fExt) {
			return fExt[idx]
		}
		return spatial.SpatialVec{}
	}

	for i := len(nodes) - 1; i >= 1; i-- {
		n := nodes[i]

		z := n.P.MulVec(n.A).Add(n.B).Sub(ext(n.Index))
		for _, ci := range n.Children {
			c := nodes[ci]
			z = z.Add(c.Phi.ShiftForce(c.Z.Add(c.GEps)))
		}
		n.Z = z

		dof := n.Joint.DOF()
		tauInt := make([]spatial.Scalar, dof)
		n.Joint.GetInternalForce(tauInt)
		h := n.Joint.H()

		eps := make([]spatial.Scalar, dof)
		for k := 0; k < dof; k++ {
			eps[k] = tauInt[k] - hDotZ(h[k], z)
		}
		n.Eps = eps

		nu := make([]spatial.Scalar, dof)
		for k := 0; k < dof; k++ {
			var sum spatial.Scalar
			for j := 0; j < dof; j++ {
				sum += n.DI[k][j] * eps[j]
			}
			nu[k] = sum
		}
		n.Nu = nu

		gEps := spatial.SpatialVec{}
		for k := range n.G {
			gEps = gEps.Add(n.G[k].Scale(eps[k]))
		}
		n.GEps = gEps
	}
}

// hDotZ computes one row of H dotted against a spatial vector z, i.e.
// one component of H·z.
func hDotZ(hRow []spatial.Scalar, z spatial.SpatialVec) spatial.Scalar {
	return hRow[0]*z.Angular.X + hRow[1]*z.Angular.Y + hRow[2]*z.Angular.Z +
		hRow[3]*z.Linear.X + hRow[4]*z.Linear.Y + hRow[5]*z.Linear.Z
}

// hTransposeTheta computes Hᵀ·θ̈ (or any DOF-sized vector) as a spatial
// vector, given H's rows in [angular|linear] order.
func hTransposeTheta(h [][]spatial.Scalar, v []spatial.Scalar) spatial.SpatialVec {
	var out spatial.SpatialVec
	for k, row := range h {
		out.Angular = out.Angular.Add(spatial.NewVec3(row[0], row[1], row[2]).Scale(v[k]))
		out.Linear = out.Linear.Add(spatial.NewVec3(row[3], row[4], row[5]).Scale(v[k]))
	}
	return out
}

// CalcAccel runs the base-to-tip acceleration pass, setting each
// joint's θ̈ and every node's spatial acceleration. Must be called
// after CalcP and CalcZ.
func CalcAccel(sys *body.System) {
	nodes := sys.Nodes
	nodes[0].SAcc = spatial.SpatialVec{}

	for i := 1; i < len(nodes); i++ {
		n := nodes[i]
		p := nodes[n.Parent]

		alphaShifted := n.Phi.ShiftMotion(p.SAcc)

		dof := n.Joint.DOF()
		thetaDDot := make([]spatial.Scalar, dof)
		for k := 0; k < dof; k++ {
			thetaDDot[k] = n.Nu[k] - n.G[k].Dot(alphaShifted)
		}
		n.Joint.SetAccel(thetaDDot)

		n.SAcc = alphaShifted.Add(hTransposeTheta(n.Joint.H(), thetaDDot)).Add(n.A)
	}
}

// CalcY runs the base-to-tip constraint-projection sensitivity pass.
// Must be called after CalcP.
func CalcY(sys *body.System) {
	nodes := sys.Nodes
	nodes[0].Y = spatial.SpatialMat{}

	for i := 1; i < len(nodes); i++ {
		n := nodes[i]
		p := nodes[n.Parent]

		own := hTransposeDIH(n.Joint.H(), n.DI)
		inherited := n.PsiT.Mul(p.Y).Mul(n.PsiT.Transpose())
		n.Y = own.Add(inherited)
	}
}

// CalcInternalForce runs the standalone tip-to-base inverse-dynamics
// pass, converting the externally supplied spatial force field fExt
// into generalized internal forces added to each joint's τ_int.
// Independent of CalcP/CalcZ/CalcAccel;
// does not require them to have been run first, but does require a
// current position pass so each node's Φ is valid.
func CalcInternalForce(sys *body.System, fExt []spatial.SpatialVec) {
	nodes := sys.Nodes
	ext := func(idx body.Index) spatial.SpatialVec {
		if int(idx) < len(fExt) {
			return fExt[idx]
		}
		return spatial.SpatialVec{}
	}

	for i := len(nodes) - 1; i >= 1; i-- {
		n := nodes[i]

		z := ext(n.Index).Neg()
		for _, ci := range n.Children {
			c := nodes[ci]
			z = z.Add(c.Phi.ShiftForce(c.Z))
		}
		n.Z = z

		dof := n.Joint.DOF()
		h := n.Joint.H()
		tau := make([]spatial.Scalar, dof)
		for k := 0; k < dof; k++ {
			tau[k] = hDotZ(h[k], z)
		}
		n.Joint.AddInternalForce(tau)
	}
}

// Step runs a full forward-dynamics solve: position pass, velocity
// pass, CalcP, CalcZ, CalcAccel. Assumes the tree-wide θ and θ̇ have
// already been written into each joint (e.g. via
// body.System.SetPos/SetVel).
func Step(sys *body.System, fExt []spatial.SpatialVec) error {
	Position(sys)
	Velocity(sys)
	if err := CalcP(sys); err != nil {
		return err
	}
	CalcZ(sys, fExt)
	CalcAccel(sys)
	return nil
}

// EnforceConstraints re-normalizes every node's joint representation,
// a no-op except for quaternion ball joints.
func EnforceConstraints(sys *body.System) {
	for _, n := range sys.Nodes {
		n.Joint.EnforceConstraints()
	}
}
