package cli

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

// newMetricsCmd dumps process counters in Prometheus text format. There is no
// HTTP endpoint to scrape; a wrapper script can ship this output to a
// pushgateway when needed.
func newMetricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Dump internal counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			families, err := prometheus.DefaultGatherer.Gather()
			if err != nil {
				return err
			}
			enc := expfmt.NewEncoder(os.Stdout, expfmt.NewFormat(expfmt.TypeTextPlain))
			for _, fam := range families {
				if err := enc.Encode(fam); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
