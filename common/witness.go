package common

import "github.com/nspcc-dev/neo-go/pkg/interop/runtime"

// ErrOwnerWitnessFailed appears when a method restricted to the vault
// owner is called by anyone else.
const ErrOwnerWitnessFailed = "owner witness check failed"

// CheckOwnerWitness checks witness of the passed owner.
// It panics with ErrOwnerWitnessFailed message on fail.
func CheckOwnerWitness(owner []byte) {
	if !runtime.CheckWitness(owner) {
		panic(ErrOwnerWitnessFailed)
	}
}
