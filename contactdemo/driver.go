// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contactdemo

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/m576f167/simbody/body"
	"github.com/m576f167/simbody/dynamics"
	"github.com/m576f167/simbody/joint"
	"github.com/m576f167/simbody/spatial"
)

// log is the only logging this module does: the articulated-body core
// itself is silent library code, and step-by-step diagnostics belong
// to the driver.
var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// Gravity is the downward (negative-y) acceleration applied to the
// sphere each step.
const Gravity = 9.8

// Sphere describes the falling body of the reference scenario:
// a rigid sphere of the given radius and mass, attached to ground by a
// 3-DOF Cartesian (translate) joint so its generalized coordinates are
// exactly its world-frame center position.
type Sphere struct {
	Radius float64
	Mass   float64
}

// Scenario is the sphere-on-half-space reference driver: a
// single sphere falling under gravity onto the plane y=0, resolved each
// step by Hunt-Crossley normal contact plus regularized Coulomb
// friction (package-level NormalForce/TangentialForce).
type Scenario struct {
	sys    *body.System
	sphere Sphere
	pair   ContactPair
}

// NewScenario builds the one-sphere system: ground
// plus a single Cartesian-jointed sphere, with the contact pair formed
// from sphereMat (the falling body) and groundMat (the half-space).
func NewScenario(sphere Sphere, sphereMat, groundMat Material) (*Scenario, error) {
	sys := body.NewSystem()
	mp := body.MassProperties{
		Mass:       sphere.Mass,
		InertiaOB:  sphere.inertia(),
		ComStation: spatial.Zero3(),
	}
	if _, err := joint.CreateChild(sys, 0, mp, body.CartesianJoint, false, false, joint.Axes{}); err != nil {
		return nil, err
	}
	return &Scenario{
		sys:    sys,
		sphere: sphere,
		pair:   ContactPair{A: sphereMat, B: groundMat},
	}, nil
}

// inertia returns the solid sphere's body-origin inertia tensor,
// (2/5)*m*r^2 on the diagonal. The Cartesian joint never reads it (it
// has no rotational DOF), but System.TotalKineticEnergy and
// MassProperties.SpatialInertia expect a well-formed tensor regardless
// of joint type (body/mass_properties.go).
func (s Sphere) inertia() spatial.Mat33 {
	i := 0.4 * s.Mass * s.Radius * s.Radius
	return spatial.Mat33{
		{i, 0, 0},
		{0, i, 0},
		{0, 0, i},
	}
}

// SetState writes the sphere's position and velocity directly (x, y, z
// and their time derivatives; y is the contact normal axis).
func (s *Scenario) SetState(pos, vel spatial.Vec3) {
	s.sys.SetPos([]spatial.Scalar{pos.X, pos.Y, pos.Z})
	s.sys.SetVel([]spatial.Scalar{vel.X, vel.Y, vel.Z})
}

// State returns the sphere's current position and velocity.
func (s *Scenario) State() (pos, vel spatial.Vec3) {
	q := make([]spatial.Scalar, 3)
	qd := make([]spatial.Scalar, 3)
	s.sys.GetPos(q)
	s.sys.GetVel(qd)
	return spatial.NewVec3(q[0], q[1], q[2]), spatial.NewVec3(qd[0], qd[1], qd[2])
}

// contactForce evaluates the current step's normal and tangential
// (x,z-plane) contact force on the sphere given its height y and
// velocity.
func (s *Scenario) contactForce(y float64, vel spatial.Vec3) spatial.Vec3 {
	d := s.sphere.Radius - y
	if d <= 0 {
		return spatial.Zero3()
	}
	fn := NormalForce(s.pair, s.sphere.Radius, d, -vel.Y)

	slideSpeed := spatial.NewVec3(vel.X, 0, vel.Z).Length()
	var fx, fz float64
	if slideSpeed > 0 {
		ftMag := TangentialForce(s.pair, fn, slideSpeed)
		fx = ftMag * vel.X / slideSpeed
		fz = ftMag * vel.Z / slideSpeed
	}
	return spatial.NewVec3(fx, fn, fz)
}

// Step advances the scenario by dt using semi-implicit Euler
// integration of the forward-dynamics acceleration dynamics.Step
// computes: velocities are updated from the acceleration first, then
// positions from the updated velocities.
func (s *Scenario) Step(dt float64) error {
	pos, vel := s.State()
	contact := s.contactForce(pos.Y, vel)

	fExt := []spatial.SpatialVec{
		{},
		{Linear: spatial.NewVec3(contact.X, contact.Y-s.sphere.Mass*Gravity, contact.Z)},
	}
	if err := dynamics.Step(s.sys, fExt); err != nil {
		return err
	}

	accel := make([]spatial.Scalar, 3)
	s.sys.GetAccel(accel)

	newVel := spatial.NewVec3(vel.X+accel[0]*dt, vel.Y+accel[1]*dt, vel.Z+accel[2]*dt)
	newPos := spatial.NewVec3(pos.X+newVel.X*dt, pos.Y+newVel.Y*dt, pos.Z+newVel.Z*dt)
	s.SetState(newPos, newVel)
	dynamics.EnforceConstraints(s.sys)

	log.Debug().
		Float64("y", newPos.Y).
		Float64("vy", newVel.Y).
		Float64("fn", contact.Y).
		Msg("contactdemo step")
	return nil
}

// Run advances the scenario by n steps of dt each and returns the
// final position and velocity.
func (s *Scenario) Run(dt float64, n int) (pos, vel spatial.Vec3, err error) {
	for i := 0; i < n; i++ {
		if err := s.Step(dt); err != nil {
			return spatial.Vec3{}, spatial.Vec3{}, err
		}
	}
	pos, vel = s.State()
	return pos, vel, nil
}
