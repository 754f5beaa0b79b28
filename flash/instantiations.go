package flash

//go:generate go run ../cmd/tilegen -output zinstantiations.go

// Instantiation is one entry of the supported forward shape grid: the name a
// kernel instantiation is registered under plus the problem it covers.
// The grid itself lives in zinstantiations.go, emitted by cmd/tilegen.
type Instantiation struct {
	Name    string
	Problem Problem
}

// LookupInstantiation returns the grid entry with the given name.
func LookupInstantiation(name string) (Instantiation, bool) {
	for _, inst := range ForwardInstantiationsSM90 {
		if inst.Name == name {
			return inst, true
		}
	}
	return Instantiation{}, false
}
