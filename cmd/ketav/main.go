// Command ketav normalises legacy Hebrew documents into a canonical
// chunked JSON representation.
package main

import (
	"fmt"
	"os"

	"github.com/otzar-labs/ketav-cli/internal/adapters/driven/config/file"
	"github.com/otzar-labs/ketav-cli/internal/adapters/driven/storage/sqlite"
	"github.com/otzar-labs/ketav-cli/internal/adapters/driven/wordconv"
	"github.com/otzar-labs/ketav-cli/internal/adapters/driving/cli"
	"github.com/otzar-labs/ketav-cli/internal/core/ports/driven"
	"github.com/otzar-labs/ketav-cli/internal/core/services"
	"github.com/otzar-labs/ketav-cli/internal/detect"
	"github.com/otzar-labs/ketav-cli/internal/readers/doc"
	"github.com/otzar-labs/ketav-cli/internal/readers/docx"
	"github.com/otzar-labs/ketav-cli/internal/readers/dostext"
	"github.com/otzar-labs/ketav-cli/internal/readers/idml"
	"github.com/otzar-labs/ketav-cli/internal/writers/jsonw"
)

// version is set via -ldflags at release time.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	registry := services.NewReaderRegistry()
	registry.Register(docx.New())
	registry.Register(doc.New(wordconv.New(configStore.GetString(driven.KeyConverterCommand))))
	registry.Register(idml.New())
	registry.Register(dostext.New(probeFromConfig(configStore)))

	var docStore driven.DocumentStore
	if configStore.GetBool(driven.KeyCatalogEnabled) {
		store, err := sqlite.NewStore("")
		if err != nil {
			return fmt.Errorf("opening catalog: %w", err)
		}
		defer store.Close()
		docStore = store
	}

	pipeline := services.NewPipeline(registry, jsonw.New(), docStore)

	return cli.Execute(cli.Deps{
		Converter:   pipeline,
		Registry:    registry,
		ConfigStore: configStore,
		DocStore:    docStore,
		Version:     version,
	})
}

// probeFromConfig overlays configured thresholds on the default
// encoding probe.
func probeFromConfig(store driven.ConfigStore) detect.Probe {
	probe := detect.DefaultProbe()
	if v := store.GetInt(driven.KeyProbePrefixBytes); v > 0 {
		probe.PrefixBytes = v
	}
	if v := store.GetFloat(driven.KeyProbeHebrewRatio); v > 0 {
		probe.HebrewRatio = v
	}
	if v := store.GetInt(driven.KeyProbeMinHebrew); v > 0 {
		probe.MinHebrewRunes = v
	}
	return probe
}
