package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"pet-health/internal/domain/healthlog"
	"pet-health/internal/domain/records"
	"pet-health/internal/platform/config"
	"pet-health/internal/platform/logger"
)

// newDumpCmd imprime en stdout todas las categorías por mascota, como pet_health/get_store_dump.
func newDumpCmd(cfg *config.Config) *cobra.Command {
	var petID string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Imprime el contenido del store como JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.NewNop()
			a, err := bootstrap(cmd.Context(), *cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			out := map[string]map[string][]records.Fields{}
			if id := strings.TrimSpace(petID); id != "" {
				out[id] = healthlog.EncodePetRecords(a.health.PetDump(id))
			} else {
				for id, r := range a.health.Dump() {
					out[id] = healthlog.EncodePetRecords(r)
				}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{"pets": out})
		},
	}
	cmd.Flags().StringVar(&petID, "pet", "", "solo esta mascota")
	return cmd
}
