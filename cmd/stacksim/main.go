// Stacksim - runs a deterministic workload against one byte stack and
// reports its growth cadence for capacity planning.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"

	"github.com/chazu/bytestack/config"
	"github.com/chazu/bytestack/packed"
	"github.com/chazu/bytestack/stack"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	verbosity := flag.Int("v", 0, "Log verbosity (0=notice, 1=info, 2=debug)")
	configDir := flag.String("config", "", "Directory containing bytestack.toml (default: walk up from the working directory)")
	initial := flag.Int("initial", 0, "Initial stack size in bytes (overrides bytestack.toml)")
	step := flag.Int("step", 0, "Growth step in bytes (overrides bytestack.toml)")
	pushes := flag.Int("pushes", 4096, "Number of pushes to run")
	chunk := flag.Int("chunk", 16, "Bytes per push")
	popEvery := flag.Int("pop-every", 4, "Pop once after every n pushes (0 disables popping)")
	usePacked := flag.Bool("packed", false, "Push typed values instead of raw chunks")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stacksim [options]\n\n")
		fmt.Fprintf(os.Stderr, "Runs a deterministic push/pop workload against one byte stack and reports\n")
		fmt.Fprintf(os.Stderr, "its growth cadence.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  stacksim                          # tuning from bytestack.toml or built-ins\n")
		fmt.Fprintf(os.Stderr, "  stacksim -initial 64 -step 64     # override tuning\n")
		fmt.Fprintf(os.Stderr, "  stacksim -pushes 100000 -chunk 8  # heavier workload\n")
		fmt.Fprintf(os.Stderr, "  stacksim -packed -v 1             # typed-value workload, info logging\n")
	}
	flag.Parse()

	commonlog.Configure(*verbosity, nil)
	log := commonlog.GetLogger("stacksim")

	cfg, err := loadConfig(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *initial > 0 {
		cfg.Stack.InitialSize = *initial
	}
	if *step > 0 {
		cfg.Stack.GrowthStep = *step
	}
	log.Infof("tuning: initial %d bytes, step %d bytes", cfg.Stack.InitialSize, cfg.Stack.GrowthStep)

	s, err := cfg.NewStack()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	meter := &stack.Meter{}
	meter.OnGrow = func(oldCap, newCap int) {
		log.Debugf("grow: %d -> %d bytes", oldCap, newCap)
	}
	s.SetMeter(meter)

	if *usePacked {
		err = runPacked(s, *pushes, *popEvery)
	} else {
		err = runRaw(s, *pushes, *chunk, *popEvery)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	report(s, meter, *pushes)

	if err := s.Release(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the tuning: an explicit directory, or a walk up from
// the working directory, or built-in defaults.
func loadConfig(dir string) (*config.Config, error) {
	if dir != "" {
		return config.Load(dir)
	}
	cfg, err := config.FindAndLoad(".")
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return config.Default(), nil
	}
	return cfg, nil
}

// runRaw pushes fixed-size chunks of a repeating byte pattern, discarding
// one chunk after every popEvery pushes.
func runRaw(s *stack.Stack, pushes, chunk, popEvery int) error {
	payload := make([]byte, chunk)
	for i := range payload {
		payload[i] = byte(i*31 + 7)
	}

	for i := 1; i <= pushes; i++ {
		if err := s.Push(payload); err != nil {
			return fmt.Errorf("push %d: %w", i, err)
		}
		if popEvery > 0 && i%popEvery == 0 {
			if err := s.PopDiscard(chunk); err != nil {
				return fmt.Errorf("pop after push %d: %w", i, err)
			}
		}
	}
	return nil
}

// runPacked pushes a rotating set of typed values, popping one back after
// every popEvery pushes.
func runPacked(s *stack.Stack, pushes, popEvery int) error {
	for i := 1; i <= pushes; i++ {
		var v packed.Value
		switch i % 4 {
		case 0:
			v = packed.FromInt32(int32(i))
		case 1:
			v = packed.FromUint64(uint64(i))
		case 2:
			v = packed.FromFloat64(float64(i) / 2)
		case 3:
			v = packed.FromString(fmt.Sprintf("value-%d", i))
		}
		if err := packed.PushValue(s, v); err != nil {
			return fmt.Errorf("push %d: %w", i, err)
		}
		if popEvery > 0 && i%popEvery == 0 {
			if _, err := packed.PopValue(s); err != nil {
				return fmt.Errorf("pop after push %d: %w", i, err)
			}
		}
	}
	return nil
}

// report prints the workload summary.
func report(s *stack.Stack, m *stack.Meter, pushes int) {
	utilization := 0.0
	if s.Cap() > 0 {
		utilization = float64(s.Len()) / float64(s.Cap()) * 100
	}

	fmt.Printf("Pushes:       %d\n", pushes)
	fmt.Printf("Bytes pushed: %d\n", m.BytesPushed())
	fmt.Printf("Bytes popped: %d\n", m.BytesPopped())
	fmt.Printf("Grows:        %d\n", m.Grows())
	fmt.Printf("Peak:         %d bytes\n", m.Peak())
	fmt.Printf("Final:        %d of %d bytes live (%.1f%%)\n", s.Len(), s.Cap(), utilization)
}
