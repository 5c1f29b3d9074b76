package scene

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/achilleasa/go-raytrace/types"
)

// Camera construction parameters.
type CameraOptions struct {
	LookFrom types.Vec3
	LookAt   types.Vec3
	Up       types.Vec3

	// Vertical field of view in degrees.
	VFov float64

	// Viewport width / height.
	Aspect float64

	// Lens diameter; 0 gives a pinhole camera.
	Aperture float64

	// Distance to the plane of perfect focus. If zero, the distance
	// between LookFrom and LookAt is used.
	FocusDist float64

	// Shutter interval.
	Time0, Time1 float64

	// Orbit the view direction around the eye (radians).
	Yaw, Pitch float64
}

// The camera maps normalized image coordinates to world-space rays with
// defocus blur and motion blur.
type Camera struct {
	Position types.Vec3
	LookAt   types.Vec3
	Up       types.Vec3
	Pitch    float64
	Yaw      float64

	FOV       float64
	Aspect    float64
	Aperture  float64
	FocusDist float64
	Time0     float64
	Time1     float64

	// Orthonormal basis; W points away from the view direction.
	u, v, w types.Vec3

	lowerLeft  types.Vec3
	horizontal types.Vec3
	vertical   types.Vec3
	lensRadius float64
}

// Create a new camera from a set of options.
func NewCamera(opts CameraOptions) *Camera {
	c := &Camera{
		Position:  opts.LookFrom,
		LookAt:    opts.LookAt,
		Up:        opts.Up,
		Pitch:     opts.Pitch,
		Yaw:       opts.Yaw,
		FOV:       opts.VFov,
		Aspect:    opts.Aspect,
		Aperture:  opts.Aperture,
		FocusDist: opts.FocusDist,
		Time0:     opts.Time0,
		Time1:     opts.Time1,
	}
	if c.FocusDist == 0 {
		c.FocusDist = opts.LookFrom.Sub(opts.LookAt).Len()
	}
	c.Update()
	return c
}

// Apply any pending yaw/pitch to the view direction and rebuild the camera
// basis and viewport. Pending rotations are consumed.
func (c *Camera) Update() {
	if c.Pitch != 0 || c.Yaw != 0 {
		dir := c.LookAt.Sub(c.Position)
		pitchQuat := types.QuatFromAxisAngle(dir.Cross(c.Up), c.Pitch)
		yawQuat := types.QuatFromAxisAngle(c.Up, c.Yaw)
		orientQuat := pitchQuat.Mul(yawQuat).Normalize()

		c.LookAt = c.Position.Add(orientQuat.Rotate(dir))
		c.Pitch, c.Yaw = 0, 0
	}

	halfH := math.Tan(c.FOV * math.Pi / 360.0)
	halfW := c.Aspect * halfH

	c.w = c.Position.Sub(c.LookAt).Normalize()
	c.u = c.Up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	c.horizontal = c.u.Mul(2 * halfW * c.FocusDist)
	c.vertical = c.v.Mul(2 * halfH * c.FocusDist)
	c.lowerLeft = c.Position.
		Sub(c.horizontal.Mul(0.5)).
		Sub(c.vertical.Mul(0.5)).
		Sub(c.w.Mul(c.FocusDist))
	c.lensRadius = c.Aperture / 2
}

// Get the camera basis vectors.
func (c *Camera) Basis() (u, v, w types.Vec3) {
	return c.u, c.v, c.w
}

// Generate a ray through the viewport point at (s, t), where (0, 0) is the
// lower-left corner. The ray starts at a random point on the lens and at a
// random time inside the shutter interval. The lens offset is removed from
// the direction so all rays for (s, t) converge on the focus plane.
func (c *Camera) GetRay(s, t float64, rng *rand.Rand) types.Ray {
	var offset types.Vec3
	if c.lensRadius > 0 {
		rd := types.RandomInUnitDisk(rng).Mul(c.lensRadius)
		offset = c.u.Mul(rd[0]).Add(c.v.Mul(rd[1]))
	}

	time := c.Time0
	if c.Time1 > c.Time0 {
		time = types.RandomInRange(rng, c.Time0, c.Time1)
	}

	origin := c.Position.Add(offset)
	dir := c.lowerLeft.
		Add(c.horizontal.Mul(s)).
		Add(c.vertical.Mul(t)).
		Sub(origin)
	return types.NewRay(origin, dir, time)
}

func (c *Camera) String() string {
	return fmt.Sprintf(
		"Camera:\nEye   : %v\nLookAt: %v\nFOV   : %3.1f\nLens  : %3.3f\nFocus : %3.3f\nTime  : [%3.3f, %3.3f]",
		c.Position, c.LookAt, c.FOV, c.lensRadius, c.FocusDist, c.Time0, c.Time1,
	)
}
