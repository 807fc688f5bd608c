// Package main demonstrates the generators in package prng: seeding
// each one, stepping it a handful of times, and then jumping it ahead
// by a large step count to show the jumped state matches what N
// sequential calls would have produced.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/zacharytomlinson/ssrand/prng"
)

func main() {
	steps := flag.Int64("steps", 1000, "number of steps to jump each generator ahead")
	flag.Parse()

	if *steps < 1 {
		log.Fatalf("ssranddemo: -steps must be positive, got %d", *steps)
	}

	demoCong(*steps)
	demoSHR3(*steps)
	demoMWC1(*steps)
	demoLFSR113(*steps)
}

// stepNTimes walks next n times and returns the final output, for
// comparison against the equivalent JumpAhead call.
func stepNTimes(n int64, next func() uint32) uint32 {
	var last uint32
	for i := int64(0); i < n; i++ {
		last = next()
	}
	return last
}

func report(name string, n int64, sequential, jumped uint32) {
	status := "MATCH"
	if sequential != jumped {
		status = "MISMATCH"
	}
	fmt.Fprintf(os.Stdout, "%-8s steps=%-8d sequential=%-12d jumped=%-12d %s\n", name, n, sequential, jumped, status)
}

func demoCong(n int64) {
	const seed uint32 = 2051391225

	sequential := prng.NewCong(seed)
	want := stepNTimes(n, sequential.NextU32)

	jumped := prng.NewCong(seed)
	jumped.JumpAhead(n)

	report("Cong", n, want, jumped.State())
}

func demoSHR3(n int64) {
	const seed uint32 = 3360276411

	sequential, err := prng.NewSHR3(seed)
	if err != nil {
		log.Fatalf("ssranddemo: NewSHR3: %v", err)
	}
	want := stepNTimes(n, sequential.NextU32)

	jumped, err := prng.NewSHR3(seed)
	if err != nil {
		log.Fatalf("ssranddemo: NewSHR3: %v", err)
	}
	jumped.JumpAhead(n)

	report("SHR3", n, want, jumped.State())
}

func demoMWC1(n int64) {
	const seedZ, seedW uint32 = 2374144069, 1046675282

	sequential := prng.NewMWC1(seedZ, seedW)
	want := stepNTimes(n, sequential.NextU32)

	jumped := prng.NewMWC1(seedZ, seedW)
	jumped.JumpAhead(n)
	z, w := jumped.State()

	report("MWC1", n, want, (z<<16)+w)
}

func demoLFSR113(n int64) {
	const s1, s2, s3, s4 uint32 = 2, 8, 16, 128

	sequential, err := prng.NewLFSR113(s1, s2, s3, s4)
	if err != nil {
		log.Fatalf("ssranddemo: NewLFSR113: %v", err)
	}
	want := stepNTimes(n, sequential.NextU32)

	jumped, err := prng.NewLFSR113(s1, s2, s3, s4)
	if err != nil {
		log.Fatalf("ssranddemo: NewLFSR113: %v", err)
	}
	jumped.JumpAhead(n)
	z1, z2, z3, z4 := jumped.State()

	report("LFSR113", n, want, z1^z2^z3^z4)
}
