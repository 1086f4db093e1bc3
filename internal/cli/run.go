package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"srtf-simulator/internal/chart"
	"srtf-simulator/internal/requests"
	"srtf-simulator/internal/responses"
	"srtf-simulator/internal/session"
)

func newRunCmd(root *rootOptions) *cobra.Command {
	var (
		file        string
		asJSON      bool
		unitWidth   int
		minBarWidth int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate the processes in a YAML or JSON file",
		Example: `  srtf run -f processes.yaml
  srtf run -f processes.json --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := requests.LoadScheduleFile(file)
			if err != nil {
				return err
			}

			sess := session.New("cli", session.Limits{
				MaxProcesses: root.config.MaxProcesses,
				MaxTime:      root.config.MaxTime,
			}, root.logger)
			for i, job := range request.Processes {
				if _, err := sess.Add(job.Name, job.ArrivalTime, job.BurstTime); err != nil {
					return fmt.Errorf("process #%d: %w", i, err)
				}
			}
			result, err := sess.Run()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(responses.NewScheduleResponse(result))
			}

			opts := chart.Options{
				UnitWidth:   root.config.ChartUnitWidth,
				MinBarWidth: root.config.ChartMinBarWidth,
				MaxWidth:    root.config.ChartMaxWidth,
			}
			if cmd.Flags().Changed("unit-width") {
				opts.UnitWidth = unitWidth
			}
			if cmd.Flags().Changed("min-bar-width") {
				opts.MinBarWidth = minBarWidth
			}
			return chart.Render(out, result, opts)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "process file (YAML or JSON)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().IntVar(&unitWidth, "unit-width", chart.DefaultUnitWidth, "columns per time unit")
	cmd.Flags().IntVar(&minBarWidth, "min-bar-width", chart.DefaultMinBarWidth, "minimum bar width in columns")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
