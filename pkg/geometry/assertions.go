package geometry

// Compile-time capability checks
var (
	_ Minimal[float64]     = Plane{}
	_ Minimal[float64]     = Sphere{}
	_ Minimal[TriangleHit] = Triangle{}
	_ Minimal[float64]     = AxisAlignedBox{}

	_ Minimal[IndexedHit[float64]]     = (*List[float64, Sphere])(nil)
	_ Minimal[IndexedHit[float64]]     = (*PlanePack)(nil)
	_ Minimal[IndexedHit[float64]]     = (*SpherePack)(nil)
	_ Minimal[IndexedHit[TriangleHit]] = (*TrianglePack)(nil)
	_ Minimal[IndexedHit[float64]]     = (*BoxPack)(nil)

	_ Intersectable = Plane{}
	_ Intersectable = Sphere{}
	_ Intersectable = Triangle{}
	_ Intersectable = AxisAlignedBox{}
	_ Intersectable = (*List[TriangleHit, Triangle])(nil)
	_ Intersectable = (*PlanePack)(nil)
	_ Intersectable = (*SpherePack)(nil)
	_ Intersectable = (*TrianglePack)(nil)
	_ Intersectable = (*BoxPack)(nil)
	_ Intersectable = (*Scene)(nil)
	_ Intersectable = (*Instance)(nil)
)
