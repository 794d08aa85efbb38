// Command life-run steps a board without a window and reports the population
// of each generation.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"sparse-life/internal/board"
	"sparse-life/pkg/life"

	"github.com/pkg/profile"
)

func main() {
	steps := flag.Int("steps", 100, "generations to simulate")
	every := flag.Int("every", 1, "print the population every N generations (0 prints only the last)")
	out := flag.String("out", "", "write the final generation as a plaintext pattern (- for stdout)")
	random := flag.Bool("random", false, "seed the board randomly instead of loading a pattern")
	cpuProfile := flag.String("cpuprofile", "", "write a CPU profile into this directory")
	flag.String("pattern", "", "plaintext pattern file to load")
	flag.String("board", "100", "nominal board size used for centring and seeding")
	flag.String("seed", "42", "seed for random boards")
	flag.Parse()

	if *cpuProfile != "" {
		p := profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProfile), profile.NoShutdownHook)
		defer p.Stop()
	}

	overrides := map[string]string{}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "pattern":
			overrides["pattern"] = f.Value.String()
		case "board":
			overrides["board_size"] = f.Value.String()
		case "seed":
			overrides["seed"] = f.Value.String()
		}
	})
	cfg := board.FromMap(overrides)

	b, err := board.New(cfg, time.Now())
	if err != nil {
		log.Fatal(err)
	}
	switch {
	case *random:
		b.Randomize()
	case cfg.Pattern != "":
		if err := b.Reload(cfg.Pattern); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatal("either -pattern or -random is required")
	}

	start := time.Now()
	report(os.Stdout, b.Status())
	for i := 1; i <= *steps; i++ {
		b.Step()
		if (*every > 0 && i%*every == 0) || i == *steps {
			report(os.Stdout, b.Status())
		}
	}
	log.Printf("%d generations in %s", *steps, time.Since(start).Round(time.Millisecond))

	if *out != "" {
		if err := writePattern(*out, b.Cells()); err != nil {
			log.Fatal(err)
		}
	}
}

func report(w io.Writer, st board.Status) {
	fmt.Fprintf(w, "%d\t%d\n", st.Generation, st.Population)
}

func writePattern(path string, cells life.CellSet) error {
	text := life.Format(cells)
	if path == "-" {
		_, err := io.WriteString(os.Stdout, text)
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
