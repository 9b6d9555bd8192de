package core

// Size describes pixel or cell dimensions.
type Size struct {
	W int
	H int
}
