//go:build !raydebug

package core

func checkFrame(normal, tangent Vec3) {}
