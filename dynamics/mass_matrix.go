// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/m576f167/simbody/body"
	"github.com/m576f167/simbody/spatial"
)

// MassMatrix computes the tree-wide generalized mass matrix M_gen by
// the composite-rigid-body algorithm: a tip-to-base sweep accumulates
// each node's composite spatial inertia (the same Φ·(·)·Φᵀ shift calcP
// uses, without calcP's τ-projection factor), then for each node its
// diagonal block is H·Ic·Hᵀ and its off-diagonal blocks against every
// ancestor are built by shifting the Ic·Hᵀ force columns up the tree
// one joint at a time. Requires a current position pass.
//
// MassMatrix supplements the recursive driver (which never forms
// M_gen explicitly) for callers that need the explicit generalized
// mass matrix directly, e.g. to check the forward-dynamics solve
// against M_gen·θ̈ + C(θ,θ̇) = τ.
func MassMatrix(sys *body.System) *mat.Dense {
	nodes := sys.Nodes
	n := sys.NumDOF()
	mgen := mat.NewDense(n, n, nil)

	ic := make([]spatial.SpatialMat, len(nodes))
	for i := len(nodes) - 1; i >= 0; i-- {
		node := nodes[i]
		c := node.Mk
		for _, ci := range node.Children {
			c = c.Add(nodes[ci].Phi.Conjugate(ic[ci]))
		}
		ic[i] = c
	}

	offsets := make([]int, len(nodes))
	off := 0
	for i, node := range nodes {
		offsets[i] = off
		off += node.Joint.DOF()
	}

	for i := 1; i < len(nodes); i++ {
		node := nodes[i]
		dofI := node.Joint.DOF()
		if dofI == 0 {
			continue
		}
		hi := hToDense(node.Joint.H())
		icDense := spatialMatToDense(ic[i])

		var f mat.Dense
		f.Mul(icDense, hi.T()) // Ic_i · H_iᵀ, 6 x dofI

		var block mat.Dense
		block.Mul(hi, &f) // H_i · (Ic_i · H_iᵀ), dofI x dofI
		addBlock(mgen, offsets[i], offsets[i], &block)

		// Walk toward ground, shifting the force columns from each
		// body's origin to its parent's with that body's own Φ before
		// contracting against the parent's H.
		cur := &f
		child := node.Index
		j := node.Parent
		for j != body.NoParent && j != 0 {
			pj := nodes[j]
			shifted := shiftForceColumns(nodes[child].Phi, cur)
			hj := hToDense(pj.Joint.H())

			var offBlock mat.Dense
			offBlock.Mul(hj, shifted) // dofJ x dofI
			addBlock(mgen, offsets[j], offsets[i], &offBlock)
			addBlock(mgen, offsets[i], offsets[j], transpose(&offBlock))

			cur = shifted
			child = j
			j = pj.Parent
		}
	}
	return mgen
}

// shiftForceColumns applies ShiftOp.ShiftForce to every column of a
// 6 x k dense matrix, treating each column as a spatial force.
func shiftForceColumns(phi spatial.ShiftOp, m *mat.Dense) *mat.Dense {
	_, k := m.Dims()
	out := mat.NewDense(6, k, nil)
	for col := 0; col < k; col++ {
		v := spatial.SpatialVec{
			Angular: spatial.NewVec3(m.At(0, col), m.At(1, col), m.At(2, col)),
			Linear:  spatial.NewVec3(m.At(3, col), m.At(4, col), m.At(5, col)),
		}
		shifted := phi.ShiftForce(v)
		out.Set(0, col, shifted.Angular.X)
		out.Set(1, col, shifted.Angular.Y)
		out.Set(2, col, shifted.Angular.Z)
		out.Set(3, col, shifted.Linear.X)
		out.Set(4, col, shifted.Linear.Y)
		out.Set(5, col, shifted.Linear.Z)
	}
	return out
}

func addBlock(dst *mat.Dense, rowOff, colOff int, src mat.Matrix) {
	r, c := src.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			dst.Set(rowOff+i, colOff+j, src.At(i, j))
		}
	}
}

func transpose(m *mat.Dense) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(c, r, nil)
	out.Copy(m.T())
	return out
}
