package common

import "github.com/nspcc-dev/neo-go/pkg/interop/runtime"

var (
	// ErrWitnessFailed appears when the method must be called
	// by the account passed as an argument but was not.
	ErrWitnessFailed = "witness check failed"
)

// CheckWitness checks witness of the passed caller.
// It panics with ErrWitnessFailed message on fail.
func CheckWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrWitnessFailed)
}

// CheckWitnessOrPanic checks witness of the passed caller and panics with
// the given message on fail. Role checks use it to keep their own error text.
func CheckWitnessOrPanic(caller []byte, panicMsg string) {
	checkWitnessWithPanic(caller, panicMsg)
}

func checkWitnessWithPanic(caller []byte, panicMsg string) {
	if !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}
