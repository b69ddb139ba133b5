// Command yomikiri-dict builds the binary dictionary artefact and its
// metadata sidecar from JMdict and JMnedict XML sources (spec.md §6
// "Build API"). Grounded on the teacher's cmd/readerer/main.go for its
// flag-based CLI shape (no framework: CLI dispatch is out of scope) and
// top-level log.Fatalf-on-error flow.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/yomikiri-go/engine/internal/logging"
	"github.com/yomikiri-go/engine/pkg/dictbuild"
)

func main() {
	jmdictFlag := flag.String("jmdict", "", "path to JMdict XML")
	jmnedictFlag := flag.String("jmnedict", "", "path to JMnedict XML")
	outFlag := flag.String("out", "dictionary.bin", "output path for the binary artefact")
	metadataFlag := flag.String("metadata-out", "", "output path for the JSON metadata sidecar (defaults to <out>.json)")
	userDownloadFlag := flag.Bool("user-download", false, "mark this build as user-initiated rather than bundled")
	flag.Parse()

	logging.InitConsole(zerolog.InfoLevel)

	if *jmdictFlag == "" {
		log.Fatal("Please provide -jmdict")
	}
	if *metadataFlag == "" {
		*metadataFlag = *outFlag + ".json"
	}

	jmdictFile, err := os.Open(*jmdictFlag)
	if err != nil {
		log.Fatalf("Failed to open JMdict file: %v", err)
	}
	defer jmdictFile.Close()

	builder := dictbuild.NewBuilder()
	if err := builder.ReadJMdict(jmdictFile); err != nil {
		log.Fatalf("Failed to read JMdict: %v", err)
	}
	nameBuilder := builder.Next()

	if *jmnedictFlag != "" {
		jmnedictFile, err := os.Open(*jmnedictFlag)
		if err != nil {
			log.Fatalf("Failed to open JMnedict file: %v", err)
		}
		defer jmnedictFile.Close()

		if err := nameBuilder.ReadJMnedict(jmnedictFile); err != nil {
			log.Fatalf("Failed to read JMnedict: %v", err)
		}
	}

	final := nameBuilder.Next()
	artefact, err := final.Write(nil)
	if err != nil {
		log.Fatalf("Failed to build artefact: %v", err)
	}

	if err := os.WriteFile(*outFlag, artefact, 0o644); err != nil {
		log.Fatalf("Failed to write artefact: %v", err)
	}

	metadata := dictbuild.NewMetadata(time.Now(), int64(len(artefact)), *userDownloadFlag)
	metadataJSON, err := metadata.ToJSON()
	if err != nil {
		log.Fatalf("Failed to serialise metadata: %v", err)
	}
	if err := os.WriteFile(*metadataFlag, metadataJSON, 0o644); err != nil {
		log.Fatalf("Failed to write metadata: %v", err)
	}

	logging.Get().Info().
		Str("out", *outFlag).
		Int("bytes", len(artefact)).
		Msg("dictionary artefact built")
}
